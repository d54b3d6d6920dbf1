package recommend

import "context"

// Generator is the generation gateway contract (ISP). It may fail; the
// service decides when to call it and when to fall back.
type Generator interface {
	Generate(ctx context.Context, system, prompt string, maxTokens int, temperature float32) (string, error)
}

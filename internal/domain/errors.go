package domain

import "errors"

var (
	// ErrDataFormat signals a catalog source that cannot be parsed. Fatal to startup.
	ErrDataFormat = errors.New("invalid catalog data format")
	// ErrRetrievalFailed signals an index adapter failure. Absorbed by the retrieval engine.
	ErrRetrievalFailed = errors.New("retrieval failed")
	// ErrGenerationFailed signals a generation backend failure. Absorbed via fallback summary.
	ErrGenerationFailed = errors.New("generation failed")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
)

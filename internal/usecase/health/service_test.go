package health

import (
	"context"
	"errors"
	"testing"
)

// --- Mocks ---

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error {
	return m.err
}

type mockChecker struct {
	err error
}

func (m *mockChecker) HealthCheck(_ context.Context) error {
	return m.err
}

// --- Tests ---

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(&mockPinger{}, &mockChecker{})

	report := svc.Check(context.Background())

	if report.Status != Healthy {
		t.Errorf("status: got %q, want %q", report.Status, Healthy)
	}
	if report.Checks["database"] != CheckOK {
		t.Errorf("database check: got %q", report.Checks["database"])
	}
	if report.Checks["embedding"] != CheckOK {
		t.Errorf("embedding check: got %q", report.Checks["embedding"])
	}
}

func TestCheck_DatabaseDown(t *testing.T) {
	svc := New(&mockPinger{err: errors.New("connection refused")}, &mockChecker{})

	report := svc.Check(context.Background())

	if report.Status != Degraded {
		t.Errorf("status: got %q, want %q", report.Status, Degraded)
	}
	if report.Checks["database"] != CheckError {
		t.Errorf("database check: got %q", report.Checks["database"])
	}
	if report.Checks["embedding"] != CheckOK {
		t.Errorf("embedding check: got %q", report.Checks["embedding"])
	}
}

func TestCheck_EmbeddingDown(t *testing.T) {
	svc := New(&mockPinger{}, &mockChecker{err: errors.New("unauthorized")})

	report := svc.Check(context.Background())

	if report.Status != Degraded {
		t.Errorf("status: got %q, want %q", report.Status, Degraded)
	}
	if report.Checks["embedding"] != CheckError {
		t.Errorf("embedding check: got %q", report.Checks["embedding"])
	}
}

func TestCheck_NilEmbeddingChecker(t *testing.T) {
	svc := New(&mockPinger{}, nil)

	report := svc.Check(context.Background())

	if report.Status != Healthy {
		t.Errorf("status: got %q, want %q", report.Status, Healthy)
	}
	if _, ok := report.Checks["embedding"]; ok {
		t.Error("embedding check must be skipped when no checker is configured")
	}
}

package inference

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestPool(t *testing.T, size int) *Pool {
	t.Helper()
	skipIfNoModel(t)

	pool, err := NewPool(testModelPath, size)
	if err != nil {
		if isORTUnavailableError(err) {
			t.Skipf("Skipping: ONNX runtime not available: %v", err)
		}
		t.Fatalf("NewPool failed: %v", err)
	}
	return pool
}

func TestNewPool_ModelNotFound(t *testing.T) {
	_, err := NewPool("testdata/nonexistent.onnx", 2)
	if !errors.Is(err, ErrModelNotFound) {
		t.Errorf("expected ErrModelNotFound, got: %v", err)
	}
}

func TestNewPool_ClampsSize(t *testing.T) {
	for _, size := range []int{0, -5} {
		pool := newTestPool(t, size)
		if pool.Size() != 1 {
			t.Errorf("Size() = %d for requested %d, want 1", pool.Size(), size)
		}
		_ = pool.Close()
	}
}

func TestPool_AcquireRelease(t *testing.T) {
	pool := newTestPool(t, 2)
	defer func() { _ = pool.Close() }()

	ctx := context.Background()

	s1, err := pool.Acquire(ctx)
	if err != nil {
		t.Fatalf("Acquire 1 failed: %v", err)
	}
	s2, err := pool.Acquire(ctx)
	if err != nil {
		t.Fatalf("Acquire 2 failed: %v", err)
	}

	// Pool exhausted: the next acquire blocks until timeout.
	shortCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	if _, err := pool.Acquire(shortCtx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected DeadlineExceeded, got: %v", err)
	}

	pool.Release(s1)
	s3, err := pool.Acquire(ctx)
	if err != nil {
		t.Fatalf("Acquire after release failed: %v", err)
	}

	pool.Release(s2)
	pool.Release(s3)
}

func TestPool_ReleaseNil(t *testing.T) {
	pool := newTestPool(t, 1)
	defer func() { _ = pool.Close() }()

	// Must not panic.
	pool.Release(nil)
}

func TestPool_Close_Idempotent(t *testing.T) {
	pool := newTestPool(t, 2)

	if err := pool.Close(); err != nil {
		t.Errorf("first Close failed: %v", err)
	}
	if err := pool.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}

func TestPool_ReleaseAfterClose(t *testing.T) {
	pool := newTestPool(t, 1)

	session, err := pool.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if err := pool.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// The outstanding session is closed instead of pooled; must not panic.
	pool.Release(session)
}

func TestPool_AcquireAfterClose(t *testing.T) {
	pool := newTestPool(t, 1)
	if err := pool.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	_, err := pool.Acquire(context.Background())
	if !errors.Is(err, ErrPoolClosed) {
		t.Errorf("expected ErrPoolClosed, got: %v", err)
	}
}

package inference

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
)

// Classifier runs a binary-classifier ONNX model over feature batches.
// It is safe for concurrent use via an internal session pool.
type Classifier struct {
	pool   *Pool
	logger *slog.Logger
}

// ClassifierOption configures a Classifier.
type ClassifierOption func(*classifierConfig)

type classifierConfig struct {
	poolSize int
	logger   *slog.Logger
}

// WithPoolSize sets the session pool size (default: runtime.NumCPU()).
func WithPoolSize(n int) ClassifierOption {
	return func(c *classifierConfig) {
		if n > 0 {
			c.poolSize = n
		}
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) ClassifierOption {
	return func(c *classifierConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClassifier loads the model and prepares the session pool.
func NewClassifier(modelPath string, opts ...ClassifierOption) (*Classifier, error) {
	cfg := classifierConfig{
		poolSize: runtime.NumCPU(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	pool, err := NewPool(modelPath, cfg.poolSize)
	if err != nil {
		return nil, err
	}

	return &Classifier{pool: pool, logger: cfg.logger}, nil
}

// Probabilities returns the positive-class probability for each feature row.
func (c *Classifier) Probabilities(ctx context.Context, features [][]float32) ([]float64, error) {
	session, err := c.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring session: %w", err)
	}
	defer c.pool.Release(session)

	c.logger.Debug("running classifier", "rows", len(features))
	return session.Probabilities(ctx, features)
}

// Close releases all pooled sessions.
func (c *Classifier) Close() error {
	return c.pool.Close()
}

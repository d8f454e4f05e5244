// Package inference runs binary-classifier ONNX models over feature vectors
// to produce the positive-class probabilities the validation core consumes.
package inference

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrModelNotFound indicates the model file does not exist.
	ErrModelNotFound = errors.New("inference: model file not found")

	// ErrInvalidModel indicates the model file exists but could not be loaded.
	ErrInvalidModel = errors.New("inference: invalid model format")

	// ErrPoolClosed indicates an acquire on a closed session pool.
	ErrPoolClosed = errors.New("inference: session pool closed")
)

var (
	ortEnvOnce sync.Once
	ortEnvErr  error
)

// initORT initializes the ONNX Runtime environment once.
func initORT() error {
	ortEnvOnce.Do(func() {
		ortEnvErr = ort.InitializeEnvironment()
	})
	return ortEnvErr
}

// Session wraps one ONNX Runtime session for a binary classifier.
//
// The model contract: input "input" is float32 [batch, dims]; output
// "output" is float32 logits, either [batch, 2] (two-class logits, softmax
// applied here) or [batch, 1] (positive-class logit, sigmoid applied here).
type Session struct {
	session *ort.DynamicAdvancedSession
	mu      sync.Mutex
	closed  bool
}

// NewSession creates a session from a classifier model file.
func NewSession(modelPath string) (*Session, error) {
	if _, err := os.Stat(modelPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, modelPath)
		}
		return nil, fmt.Errorf("checking model file: %w", err)
	}

	if err := initORT(); err != nil {
		return nil, fmt.Errorf("initializing ONNX runtime: %w", err)
	}

	options, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("creating session options: %w", err)
	}
	defer func() { _ = options.Destroy() }()

	session, err := ort.NewDynamicAdvancedSession(
		modelPath,
		[]string{"input"},
		[]string{"output"},
		options,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidModel, err)
	}

	return &Session{session: session}, nil
}

// Probabilities runs the classifier over a batch of feature vectors and
// returns the positive-class probability for each row, in row order.
// Every row must have the same number of features.
func (s *Session) Probabilities(ctx context.Context, features [][]float32) ([]float64, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, fmt.Errorf("session is closed")
	}

	batch := len(features)
	if batch == 0 {
		return nil, fmt.Errorf("no feature rows")
	}
	dims := len(features[0])
	if dims == 0 {
		return nil, fmt.Errorf("feature rows are empty")
	}

	flat := make([]float32, 0, batch*dims)
	for i, row := range features {
		if len(row) != dims {
			return nil, fmt.Errorf("row %d has %d features, want %d", i, len(row), dims)
		}
		flat = append(flat, row...)
	}

	inputTensor, err := ort.NewTensor(
		ort.NewShape(int64(batch), int64(dims)),
		flat,
	)
	if err != nil {
		return nil, fmt.Errorf("creating input tensor: %w", err)
	}
	defer func() { _ = inputTensor.Destroy() }()

	// Output slot is nil so Run allocates it with the model's shape.
	outputs := []ort.Value{nil}
	if err := s.session.Run([]ort.Value{inputTensor}, outputs); err != nil {
		return nil, fmt.Errorf("running inference: %w", err)
	}
	if outputs[0] == nil {
		return nil, fmt.Errorf("no output produced")
	}
	defer func() { _ = outputs[0].Destroy() }()

	logitsTensor, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return nil, fmt.Errorf("unexpected output tensor type")
	}

	shape := logitsTensor.GetShape()
	classes := int64(1)
	if len(shape) > 1 {
		classes = shape[len(shape)-1]
	}
	data := logitsTensor.GetData()
	if int64(len(data)) < int64(batch)*classes {
		return nil, fmt.Errorf("output has %d values, want %d", len(data), int64(batch)*classes)
	}

	probs := make([]float64, batch)
	switch classes {
	case 1:
		for i := range probs {
			probs[i] = sigmoid(float64(data[i]))
		}
	case 2:
		for i := range probs {
			probs[i] = softmaxPositive(float64(data[i*2]), float64(data[i*2+1]))
		}
	default:
		return nil, fmt.Errorf("model outputs %d classes, want 1 or 2", classes)
	}
	return probs, nil
}

// Close releases ONNX resources. Safe to call more than once.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	if s.session != nil {
		return s.session.Destroy()
	}
	return nil
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// softmaxPositive returns the positive-class probability from a pair of
// logits, shifted by the max for numerical stability.
func softmaxPositive(negLogit, posLogit float64) float64 {
	m := math.Max(negLogit, posLogit)
	en := math.Exp(negLogit - m)
	ep := math.Exp(posLogit - m)
	return ep / (en + ep)
}

package binclass

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrInvalidInput indicates mismatched lengths, empty slices, or values
	// outside their declared ranges. Returned before any computation.
	ErrInvalidInput = errors.New("binclass: invalid input")

	// ErrUndefinedMetric indicates a metric's denominator was zero in the
	// single-point report. The wrapped message names the metric.
	ErrUndefinedMetric = errors.New("binclass: metric undefined")

	// ErrDegenerateLabels indicates the true labels contain only one class,
	// so ranking metrics (AUC, ROC, precision-recall) cannot be computed.
	ErrDegenerateLabels = errors.New("binclass: true labels contain a single class")
)

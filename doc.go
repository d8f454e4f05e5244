// Package binclass computes binary-classification validation metrics and the
// data series behind standard diagnostic plots.
//
// # Quick Start
//
//	report, err := binclass.Evaluate(predicted, probs, labels)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Accuracy: %.4f  AUC: %.4f\n", report.Accuracy, report.AUC)
//
// # Inputs
//
// All operations take parallel slices: hard predictions in {0, 1},
// positive-class probabilities in [0, 1], and true labels in {0, 1}. Inputs
// are validated before any computation; mismatched lengths, out-of-range
// values, or empty slices return ErrInvalidInput.
//
// # Undefined Metrics
//
// A ratio with a zero denominator (for example precision when the model made
// no positive calls) is never reported as 0. Evaluate returns an error
// wrapping ErrUndefinedMetric, and AUC over single-class labels returns
// ErrDegenerateLabels. Callers that prefer NaN over an error can construct a
// Validator with WithNaNOnUndefined.
//
// # Threshold Sweep
//
// Sweep recomputes accuracy, precision, recall, F1, and positive-call rate
// at 99 decision thresholds (0.01 through 0.99). Unlike Evaluate, the sweep
// is a total function: zero-denominator ratios are coerced to 0 so every
// threshold yields a plottable value.
//
// Every operation is a pure function of its inputs; nothing in this package
// holds state between calls.
package binclass

package binclass

import (
	"fmt"
	"math"
)

// Confusion holds the 2x2 contingency counts for binary classification.
type Confusion struct {
	TP int // predicted 1, label 1
	FP int // predicted 1, label 0
	TN int // predicted 0, label 0
	FN int // predicted 0, label 1
}

// Total returns the number of samples the counts were built from.
func (c Confusion) Total() int {
	return c.TP + c.FP + c.TN + c.FN
}

// Report holds the six-metric validation report for one set of predictions.
// All values are in [0, 1].
type Report struct {
	Accuracy    float64
	F1          float64
	Precision   float64
	Sensitivity float64
	Specificity float64
	AUC         float64
}

// Metric names as they appear in rendered reports.
const (
	NameAccuracy    = "Accuracy"
	NameF1          = "F1 Score"
	NamePrecision   = "Precision"
	NameSensitivity = "Sensitivity"
	NameSpecificity = "Specificity"
	NameAUC         = "AUC"
)

// Map returns the report as a name-to-value mapping with exactly the six
// metric keys. The map is freshly allocated on every call.
func (r Report) Map() map[string]float64 {
	return map[string]float64{
		NameAccuracy:    r.Accuracy,
		NameF1:          r.F1,
		NamePrecision:   r.Precision,
		NameSensitivity: r.Sensitivity,
		NameSpecificity: r.Specificity,
		NameAUC:         r.AUC,
	}
}

// ConfusionMatrix cross-tabulates hard predictions against true labels.
// Both slices must be the same nonzero length with values in {0, 1}.
func ConfusionMatrix(predicted, labels []int) (Confusion, error) {
	if err := validateLabels("predicted", predicted); err != nil {
		return Confusion{}, err
	}
	if err := validateLabels("labels", labels); err != nil {
		return Confusion{}, err
	}
	if len(predicted) != len(labels) {
		return Confusion{}, errLengthMismatch("predicted", len(predicted), len(labels))
	}

	var c Confusion
	for i := range predicted {
		switch {
		case predicted[i] == 1 && labels[i] == 1:
			c.TP++
		case predicted[i] == 1 && labels[i] == 0:
			c.FP++
		case predicted[i] == 0 && labels[i] == 0:
			c.TN++
		default:
			c.FN++
		}
	}
	return c, nil
}

// Evaluate computes the full six-metric report from hard predictions,
// positive-class probabilities, and true labels. It is all-or-nothing:
// any undefined ratio returns an error wrapping ErrUndefinedMetric, and
// single-class labels return an error wrapping ErrDegenerateLabels (AUC
// needs both classes present).
func Evaluate(predicted []int, probs []float64, labels []int) (Report, error) {
	return evaluate(predicted, probs, labels, false)
}

func evaluate(predicted []int, probs []float64, labels []int, nanOnUndefined bool) (Report, error) {
	if err := validateProbs(probs); err != nil {
		return Report{}, err
	}
	if len(probs) != len(labels) {
		return Report{}, errLengthMismatch("probs", len(probs), len(labels))
	}

	c, err := ConfusionMatrix(predicted, labels)
	if err != nil {
		return Report{}, err
	}

	var r Report
	r.Accuracy = float64(c.TP+c.TN) / float64(c.Total())

	if r.Precision, err = ratio(c.TP, c.TP+c.FP, NamePrecision, nanOnUndefined); err != nil {
		return Report{}, err
	}
	if r.Sensitivity, err = ratio(c.TP, c.TP+c.FN, NameSensitivity, nanOnUndefined); err != nil {
		return Report{}, err
	}
	if r.Specificity, err = ratio(c.TN, c.FP+c.TN, NameSpecificity, nanOnUndefined); err != nil {
		return Report{}, err
	}
	if r.F1, err = ratio(2*c.TP, 2*c.TP+c.FP+c.FN, NameF1, nanOnUndefined); err != nil {
		return Report{}, err
	}

	r.AUC, err = AUC(probs, labels)
	if err != nil {
		return Report{}, err
	}
	return r, nil
}

func errLengthMismatch(name string, got, want int) error {
	return fmt.Errorf("%w: %s has %d samples, labels has %d", ErrInvalidInput, name, got, want)
}

// ratio divides num by den. A zero denominator signals ErrUndefinedMetric
// naming the metric, or yields NaN when the caller opted into that instead.
func ratio(num, den int, name string, nanOnUndefined bool) (float64, error) {
	if den == 0 {
		if nanOnUndefined {
			return math.NaN(), nil
		}
		return 0, fmt.Errorf("%w: %s has denominator 0", ErrUndefinedMetric, name)
	}
	return float64(num) / float64(den), nil
}

// validateLabels checks a {0,1} slice for emptiness and range.
func validateLabels(name string, values []int) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: %s is empty", ErrInvalidInput, name)
	}
	for i, v := range values {
		if v != 0 && v != 1 {
			return fmt.Errorf("%w: %s[%d] = %d, want 0 or 1", ErrInvalidInput, name, i, v)
		}
	}
	return nil
}

// validateProbs checks a probability slice for emptiness and range. NaN
// compares false against both bounds, so it is rejected here too.
func validateProbs(probs []float64) error {
	if len(probs) == 0 {
		return fmt.Errorf("%w: probs is empty", ErrInvalidInput)
	}
	for i, p := range probs {
		if !(p >= 0 && p <= 1) {
			return fmt.Errorf("%w: probs[%d] = %v, want [0, 1]", ErrInvalidInput, i, p)
		}
	}
	return nil
}

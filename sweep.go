package binclass

// SweepMetric identifies one of the five metrics tracked across the
// threshold sweep. The set is closed: each metric has its own formula
// rather than a name-to-function lookup.
type SweepMetric int

const (
	// SamplesAboveThreshold is the fraction of samples called positive.
	SamplesAboveThreshold SweepMetric = iota
	SweepAccuracy
	SweepPrecision
	SweepRecall
	SweepF1
)

// SweepMetrics lists the swept metrics in report order.
var SweepMetrics = [...]SweepMetric{
	SamplesAboveThreshold,
	SweepAccuracy,
	SweepPrecision,
	SweepRecall,
	SweepF1,
}

// String returns the metric name as it appears in rendered reports.
func (m SweepMetric) String() string {
	switch m {
	case SamplesAboveThreshold:
		return "Percentage of Samples"
	case SweepAccuracy:
		return "Accuracy"
	case SweepPrecision:
		return "Precision"
	case SweepRecall:
		return "Recall"
	case SweepF1:
		return "F1 Score"
	default:
		return "Unknown"
	}
}

// Point is one (threshold, value) pair in a swept series.
type Point struct {
	Threshold float64
	Value     float64
}

// Series is one metric's curve across the threshold sweep. Points excludes
// thresholds where the value was exactly 0; AtHalf is always the exact value
// at threshold 0.50, recorded even when it is 0.
type Series struct {
	Points []Point
	AtHalf float64
}

const (
	sweepSteps    = 99
	halfStep      = 50
	sweepStepSize = 100
)

// Sweep recomputes the five tracked metrics at thresholds 0.01 through 0.99
// in steps of 0.01. At each threshold a sample is called positive iff its
// probability strictly exceeds the threshold. Zero-denominator ratios are
// coerced to 0 so the sweep stays total over all 99 thresholds; the
// zero-filter on Points then drops them from the plotted series.
func Sweep(probs []float64, labels []int) (map[SweepMetric]Series, error) {
	if err := validateProbs(probs); err != nil {
		return nil, err
	}
	if err := validateLabels("labels", labels); err != nil {
		return nil, err
	}
	if len(probs) != len(labels) {
		return nil, errLengthMismatch("probs", len(probs), len(labels))
	}

	series := make(map[SweepMetric]Series, len(SweepMetrics))
	curves := make(map[SweepMetric][]Point, len(SweepMetrics))
	atHalf := make(map[SweepMetric]float64, len(SweepMetrics))

	for i := 1; i <= sweepSteps; i++ {
		// Thresholds derive from the integer step so 0.50 is exact,
		// never an accumulated floating-point sum.
		t := float64(i) / sweepStepSize
		c := confusionAt(probs, labels, t)

		for _, m := range SweepMetrics {
			v := sweepValue(m, c)
			if i == halfStep {
				atHalf[m] = v
			}
			if v != 0 {
				curves[m] = append(curves[m], Point{Threshold: t, Value: v})
			}
		}
	}

	for _, m := range SweepMetrics {
		series[m] = Series{Points: curves[m], AtHalf: atHalf[m]}
	}
	return series, nil
}

// Thresholded converts probabilities into hard predictions: 1 where the
// probability strictly exceeds t, 0 otherwise.
func Thresholded(probs []float64, t float64) []int {
	predicted := make([]int, len(probs))
	for i, p := range probs {
		if p > t {
			predicted[i] = 1
		}
	}
	return predicted
}

// confusionAt cross-tabulates thresholded predictions against labels.
// Strict inequality: a sample with probability exactly t is negative.
func confusionAt(probs []float64, labels []int, t float64) Confusion {
	var c Confusion
	for i, p := range probs {
		switch {
		case p > t && labels[i] == 1:
			c.TP++
		case p > t && labels[i] == 0:
			c.FP++
		case labels[i] == 0:
			c.TN++
		default:
			c.FN++
		}
	}
	return c
}

// sweepValue computes one metric from the counts, coercing undefined
// ratios to 0.
func sweepValue(m SweepMetric, c Confusion) float64 {
	switch m {
	case SamplesAboveThreshold:
		return float64(c.TP+c.FP) / float64(c.Total())
	case SweepAccuracy:
		return float64(c.TP+c.TN) / float64(c.Total())
	case SweepPrecision:
		return safeRatio(c.TP, c.TP+c.FP)
	case SweepRecall:
		return safeRatio(c.TP, c.TP+c.FN)
	case SweepF1:
		return safeRatio(2*c.TP, 2*c.TP+c.FP+c.FN)
	default:
		return 0
	}
}

func safeRatio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

package binclass

import (
	"errors"
	"testing"
)

func TestSweep_ThresholdRange(t *testing.T) {
	probs := []float64{0.9, 0.8, 0.2, 0.1}
	labels := []int{1, 1, 0, 0}

	series, err := Sweep(probs, labels)
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}
	if len(series) != len(SweepMetrics) {
		t.Fatalf("got %d series, want %d", len(series), len(SweepMetrics))
	}

	// Accuracy never drops to 0 on this fixture, so its series keeps all
	// 99 thresholds.
	acc := series[SweepAccuracy]
	if len(acc.Points) != 99 {
		t.Fatalf("accuracy series has %d points, want 99", len(acc.Points))
	}
	if !almostEqual(acc.Points[0].Threshold, 0.01) {
		t.Errorf("first threshold = %v, want 0.01", acc.Points[0].Threshold)
	}
	if !almostEqual(acc.Points[98].Threshold, 0.99) {
		t.Errorf("last threshold = %v, want 0.99", acc.Points[98].Threshold)
	}
}

func TestSweep_CoverageNonIncreasing(t *testing.T) {
	probs := []float64{0.95, 0.40, 0.70, 0.55, 0.30, 0.20, 0.60, 0.10}
	labels := []int{1, 1, 0, 1, 0, 1, 0, 0}

	series, err := Sweep(probs, labels)
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}

	coverage := series[SamplesAboveThreshold].Points
	for i := 1; i < len(coverage); i++ {
		if coverage[i].Value > coverage[i-1].Value {
			t.Fatalf("coverage increased from %v to %v at threshold %v",
				coverage[i-1].Value, coverage[i].Value, coverage[i].Threshold)
		}
	}
}

func TestSweep_AtHalfMatchesEvaluate(t *testing.T) {
	probs := []float64{0.9, 0.5, 0.3, 0.2, 0.7}
	labels := []int{1, 1, 0, 0, 1}

	// Derive hard predictions the same way the sweep does at t=0.50.
	predicted := make([]int, len(probs))
	positives := 0
	for i, p := range probs {
		if p > 0.5 {
			predicted[i] = 1
			positives++
		}
	}

	report, err := Evaluate(predicted, probs, labels)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	series, err := Sweep(probs, labels)
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}

	checks := []struct {
		metric SweepMetric
		want   float64
	}{
		{SamplesAboveThreshold, float64(positives) / float64(len(probs))},
		{SweepAccuracy, report.Accuracy},
		{SweepPrecision, report.Precision},
		{SweepRecall, report.Sensitivity},
		{SweepF1, report.F1},
	}
	for _, c := range checks {
		got := series[c.metric].AtHalf
		if !almostEqual(got, c.want) {
			t.Errorf("%s at 0.5 = %v, want %v", c.metric, got, c.want)
		}
	}
}

func TestSweep_StrictInequalityAtThreshold(t *testing.T) {
	// A probability exactly equal to the threshold classifies negative.
	probs := []float64{0.5, 0.6}
	labels := []int{0, 1}

	series, err := Sweep(probs, labels)
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}

	// At t=0.50 only the 0.6 sample is called positive.
	if got := series[SamplesAboveThreshold].AtHalf; !almostEqual(got, 0.5) {
		t.Errorf("coverage at 0.5 = %v, want 0.5", got)
	}
	if got := series[SweepRecall].AtHalf; !almostEqual(got, 1.0) {
		t.Errorf("recall at 0.5 = %v, want 1.0", got)
	}
}

func TestSweep_ZeroValuesFiltered(t *testing.T) {
	probs := []float64{0.3, 0.4}
	labels := []int{0, 1}

	series, err := Sweep(probs, labels)
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}

	recall := series[SweepRecall]

	// Above 0.39 no sample is called positive, recall coerces to 0, and
	// those thresholds are filtered from the series.
	if len(recall.Points) != 39 {
		t.Fatalf("recall series has %d points, want 39", len(recall.Points))
	}
	last := recall.Points[len(recall.Points)-1]
	if !almostEqual(last.Threshold, 0.39) {
		t.Errorf("last recall threshold = %v, want 0.39", last.Threshold)
	}
	for _, p := range recall.Points {
		if p.Value == 0 {
			t.Errorf("zero value left in series at threshold %v", p.Threshold)
		}
	}

	// The 0.50 value is still recorded even though it is zero.
	if recall.AtHalf != 0 {
		t.Errorf("recall at 0.5 = %v, want 0", recall.AtHalf)
	}
}

func TestSweep_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		probs  []float64
		labels []int
	}{
		{name: "empty", probs: nil, labels: nil},
		{name: "length mismatch", probs: []float64{0.5}, labels: []int{1, 0}},
		{name: "probability out of range", probs: []float64{-0.1, 0.5}, labels: []int{1, 0}},
		{name: "label out of range", probs: []float64{0.5, 0.5}, labels: []int{1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sweep(tt.probs, tt.labels)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got: %v", err)
			}
		})
	}
}

func TestThresholded(t *testing.T) {
	probs := []float64{0.2, 0.5, 0.7}

	got := Thresholded(probs, 0.5)
	want := []int{0, 0, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Thresholded()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSweepMetric_String(t *testing.T) {
	want := map[SweepMetric]string{
		SamplesAboveThreshold: "Percentage of Samples",
		SweepAccuracy:         "Accuracy",
		SweepPrecision:        "Precision",
		SweepRecall:           "Recall",
		SweepF1:               "F1 Score",
	}
	for m, name := range want {
		if m.String() != name {
			t.Errorf("String() = %q, want %q", m.String(), name)
		}
	}
}

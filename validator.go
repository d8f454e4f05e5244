package binclass

import "log/slog"

// Validator bundles the full validation pass: scalar report, confusion
// counts, ranking curves, and the threshold sweep, computed together from
// one prediction set. It holds presentation preferences only; every call to
// Validate is a pure function of its inputs.
type Validator struct {
	classNames     [2]string
	nanOnUndefined bool
	logger         *slog.Logger
}

// Result is everything a reporting or plotting layer needs for one
// validation run. It is created fresh per call and never retained.
type Result struct {
	Report           Report
	Confusion        Confusion
	ROC              []ROCPoint
	PR               []PRPoint
	AveragePrecision float64
	Sweep            map[SweepMetric]Series
}

// New creates a Validator.
func New(opts ...Option) *Validator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Validator{
		classNames:     cfg.classNames,
		nanOnUndefined: cfg.nanOnUndefined,
		logger:         cfg.logger,
	}
}

// ClassNames returns the configured (negative, positive) display names.
func (v *Validator) ClassNames() [2]string {
	return v.classNames
}

// Validate runs the full evaluation over one prediction set. Single-class
// labels fail with ErrDegenerateLabels regardless of WithNaNOnUndefined:
// that is a data problem, not an arithmetic one, and the ranking curves
// cannot be produced from it.
func (v *Validator) Validate(predicted []int, probs []float64, labels []int) (*Result, error) {
	report, err := evaluate(predicted, probs, labels, v.nanOnUndefined)
	if err != nil {
		return nil, err
	}

	roc, err := ROCCurve(probs, labels)
	if err != nil {
		return nil, err
	}
	pr, err := PRCurve(probs, labels)
	if err != nil {
		return nil, err
	}
	ap, err := AveragePrecision(probs, labels)
	if err != nil {
		return nil, err
	}
	sweep, err := Sweep(probs, labels)
	if err != nil {
		return nil, err
	}

	confusion, err := ConfusionMatrix(predicted, labels)
	if err != nil {
		return nil, err
	}

	v.logger.Debug("validation complete",
		"samples", confusion.Total(),
		"accuracy", report.Accuracy,
		"auc", report.AUC)

	return &Result{
		Report:           report,
		Confusion:        confusion,
		ROC:              roc,
		PR:               pr,
		AveragePrecision: ap,
		Sweep:            sweep,
	}, nil
}

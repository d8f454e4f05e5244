package binclass

import "log/slog"

// Option configures a Validator.
type Option func(*config)

type config struct {
	classNames     [2]string
	nanOnUndefined bool
	logger         *slog.Logger
}

func defaultConfig() config {
	return config{
		classNames: [2]string{"Negative", "Positive"},
		logger:     slog.Default(),
	}
}

// WithClassNames sets the display names for the negative and positive
// classes (defaults: "Negative", "Positive"). Used by rendering layers for
// confusion-matrix axes.
func WithClassNames(negative, positive string) Option {
	return func(c *config) {
		if negative != "" {
			c.classNames[0] = negative
		}
		if positive != "" {
			c.classNames[1] = positive
		}
	}
}

// WithNaNOnUndefined reports zero-denominator metrics as NaN instead of
// failing the whole report. The value is still never coerced to 0; NaN keeps
// the undefined state visible to consumers that prefer a full report.
func WithNaNOnUndefined() Option {
	return func(c *config) {
		c.nanOnUndefined = true
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

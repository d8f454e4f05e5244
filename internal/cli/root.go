// Package cli implements the binclass-cli commands.
package cli

import (
	binclass "github.com/jamesainslie/go-binclass"
	"github.com/jamesainslie/go-binclass/internal/config"
	"github.com/spf13/cobra"
)

var (
	// cfgFile is the config path from --config; empty means the default
	// file is tried and may be absent.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "binclass-cli",
		Short: "Validation reports and plots for binary classifiers",
		Long: `binclass-cli turns a predictions file (or an ONNX classifier run over a
feature file) into a binary-classification validation report: confusion
matrix, accuracy, precision, sensitivity, specificity, F1, AUC, a 99-step
threshold sweep, and the standard diagnostic plots.`,
		SilenceUsage: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./binclass.yaml)")
}

// newValidator builds a Validator from the loaded config.
func newValidator(cfg *config.Config) *binclass.Validator {
	opts := []binclass.Option{
		binclass.WithClassNames(cfg.NegativeClass, cfg.PositiveClass),
	}
	if cfg.NaNOnUndefined {
		opts = append(opts, binclass.WithNaNOnUndefined())
	}
	return binclass.New(opts...)
}

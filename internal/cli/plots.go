package cli

import (
	"fmt"

	"github.com/jamesainslie/go-binclass/internal/config"
	"github.com/jamesainslie/go-binclass/internal/dataset"
	"github.com/jamesainslie/go-binclass/internal/render"
	"github.com/spf13/cobra"
)

var plotsOutDir string

var plotsCmd = &cobra.Command{
	Use:   "plots FILE",
	Short: "Render the validation plots for a predictions file",
	Long: `Renders the confusion-matrix heatmap, ROC curve, precision-recall curve,
and one threshold chart per swept metric as PNG files.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if plotsOutDir != "" {
			cfg.OutputDir = plotsOutDir
		}

		set, err := dataset.Load(args[0])
		if err != nil {
			return err
		}

		res, err := newValidator(cfg).Validate(set.Predicted, set.Probs, set.Labels)
		if err != nil {
			return err
		}

		paths, err := render.WriteAll(res, render.Options{
			Dir:        cfg.OutputDir,
			ClassNames: [2]string{cfg.NegativeClass, cfg.PositiveClass},
			Size:       cfg.PlotSize,
		})
		if err != nil {
			return err
		}

		for _, p := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	},
}

func init() {
	plotsCmd.Flags().StringVarP(&plotsOutDir, "out", "o", "", "output directory (overrides config)")
	rootCmd.AddCommand(plotsCmd)
}

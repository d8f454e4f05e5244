package cli

import (
	"fmt"

	binclass "github.com/jamesainslie/go-binclass"
	"github.com/jamesainslie/go-binclass/inference"
	"github.com/jamesainslie/go-binclass/internal/config"
	"github.com/jamesainslie/go-binclass/internal/dataset"
	"github.com/jamesainslie/go-binclass/internal/render"
	"github.com/spf13/cobra"
)

var (
	inferModel     string
	inferThreshold float64
	inferPlots     bool
	inferOutDir    string
)

var inferCmd = &cobra.Command{
	Use:   "infer FEATURES",
	Short: "Run an ONNX classifier over a feature file and validate the output",
	Long: `Reads a CSV feature file, runs each row through the configured ONNX
classifier, thresholds the probabilities into hard predictions, and prints
the validation report. The feature file must carry a "label" column so the
predictions can be scored.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if inferModel != "" {
			cfg.ModelPath = inferModel
		}
		if cfg.ModelPath == "" {
			return fmt.Errorf("no model path given (set model_path in the config or pass --model)")
		}

		features, labels, err := dataset.LoadFeatures(args[0])
		if err != nil {
			return err
		}
		if labels == nil {
			return fmt.Errorf("%s has no label column, cannot score predictions", args[0])
		}

		classifier, err := inference.NewClassifier(cfg.ModelPath,
			inference.WithPoolSize(cfg.PoolSize))
		if err != nil {
			return err
		}
		defer func() { _ = classifier.Close() }()

		probs, err := classifier.Probabilities(cmd.Context(), features)
		if err != nil {
			return err
		}

		predicted := binclass.Thresholded(probs, inferThreshold)
		res, err := newValidator(cfg).Validate(predicted, probs, labels)
		if err != nil {
			return err
		}

		printReport(cmd.OutOrStdout(), res, [2]string{cfg.NegativeClass, cfg.PositiveClass})

		if !inferPlots {
			return nil
		}
		dir := cfg.OutputDir
		if inferOutDir != "" {
			dir = inferOutDir
		}
		paths, err := render.WriteAll(res, render.Options{
			Dir:        dir,
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
	inferCmd.Flags().StringVarP(&inferModel, "model", "m", "", "ONNX model path (overrides config)")
	inferCmd.Flags().Float64VarP(&inferThreshold, "threshold", "t", 0.5, "decision threshold for hard predictions")
	inferCmd.Flags().BoolVar(&inferPlots, "plots", false, "also render the validation plots")
	inferCmd.Flags().StringVarP(&inferOutDir, "out", "o", "", "plot output directory (overrides config)")
	rootCmd.AddCommand(inferCmd)
}

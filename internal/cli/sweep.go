package cli

import (
	"fmt"
	"io"
	"strings"

	binclass "github.com/jamesainslie/go-binclass"
	"github.com/jamesainslie/go-binclass/internal/dataset"
	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep FILE",
	Short: "Print the threshold-sweep table for a predictions file",
	Long: `Recomputes positive-call rate, accuracy, precision, recall, and F1 at
decision thresholds 0.01 through 0.99 and prints them as a table. Values
filtered from a metric's series (exact zeros) print as "-".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := dataset.Load(args[0])
		if err != nil {
			return err
		}

		series, err := binclass.Sweep(set.Probs, set.Labels)
		if err != nil {
			return err
		}

		printSweep(cmd.OutOrStdout(), series)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}

func printSweep(w io.Writer, series map[binclass.SweepMetric]binclass.Series) {
	// Index each series by threshold so the table can show filtered
	// entries explicitly.
	byThreshold := make(map[binclass.SweepMetric]map[float64]float64, len(binclass.SweepMetrics))
	for _, m := range binclass.SweepMetrics {
		values := make(map[float64]float64, len(series[m].Points))
		for _, p := range series[m].Points {
			values[p.Threshold] = p.Value
		}
		byThreshold[m] = values
	}

	fmt.Fprintf(w, "%-8s %-10s %-10s %-10s %-10s %-10s\n",
		"Thresh", "Coverage", "Accuracy", "Precision", "Recall", "F1")
	fmt.Fprintln(w, strings.Repeat("-", 60))

	for i := 1; i <= 99; i++ {
		t := float64(i) / 100
		fmt.Fprintf(w, "%-8.2f", t)
		for _, m := range binclass.SweepMetrics {
			if v, ok := byThreshold[m][t]; ok {
				fmt.Fprintf(w, " %-10.4f", v)
			} else {
				fmt.Fprintf(w, " %-10s", "-")
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintln(w, "At threshold 0.50:")
	for _, m := range binclass.SweepMetrics {
		fmt.Fprintf(w, "  %-22s %.4f\n", m.String(), series[m].AtHalf)
	}
}

package cli

import (
	"fmt"
	"io"

	binclass "github.com/jamesainslie/go-binclass"
	"github.com/jamesainslie/go-binclass/internal/config"
	"github.com/jamesainslie/go-binclass/internal/dataset"
	"github.com/spf13/cobra"
)

// reportOrder fixes the metric order in printed reports.
var reportOrder = []string{
	binclass.NameAccuracy,
	binclass.NameF1,
	binclass.NamePrecision,
	binclass.NameSensitivity,
	binclass.NameSpecificity,
	binclass.NameAUC,
}

var reportCmd = &cobra.Command{
	Use:   "report FILE",
	Short: "Print the validation report for a predictions file",
	Long: `Reads a predictions file (.csv with predicted/probability/label columns,
or .json with predicted/probabilities/labels arrays) and prints the
confusion counts and the six-metric validation report.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		set, err := dataset.Load(args[0])
		if err != nil {
			return err
		}

		res, err := newValidator(cfg).Validate(set.Predicted, set.Probs, set.Labels)
		if err != nil {
			return err
		}

		printReport(cmd.OutOrStdout(), res, [2]string{cfg.NegativeClass, cfg.PositiveClass})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func printReport(w io.Writer, res *binclass.Result, classNames [2]string) {
	c := res.Confusion
	fmt.Fprintf(w, "Samples: %d (%s=%d, %s=%d)\n",
		c.Total(),
		classNames[1], c.TP+c.FN,
		classNames[0], c.FP+c.TN)
	fmt.Fprintf(w, "Confusion: TP=%d FP=%d TN=%d FN=%d\n\n", c.TP, c.FP, c.TN, c.FN)

	values := res.Report.Map()
	for _, name := range reportOrder {
		fmt.Fprintf(w, "%-12s %.4f\n", name, values[name])
	}
	fmt.Fprintf(w, "%-12s %.4f\n", "AP", res.AveragePrecision)
}

// Command transfusion runs the blood-donation classification study end to
// end and prints the numbered report to stdout. Run with no arguments it
// reads transfusion.data from the working directory, falling back to the
// seeded synthetic table when the file is absent.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/reddysravanii/Blood-Donation-Forecast/pkg/experiment"
	"github.com/reddysravanii/Blood-Donation-Forecast/pkg/report"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "transfusion",
		Short:         "Train and evaluate the blood-donation classifier",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	defaults := experiment.DefaultConfig()
	cmd.Flags().String("data", defaults.DataPath, "path to the donation table")
	cmd.Flags().Int64("seed", defaults.Seed, "random seed for the synthetic generator and splits")
	cmd.Flags().String("plot-dir", ".", "directory for the output figures")
	cmd.Flags().Bool("no-plots", false, "skip writing figures")
	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	// An optional transfusion.yaml in the working directory may override the
	// defaults; flags win over the file.
	v.SetConfigName("transfusion")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg := experiment.DefaultConfig()
	cfg.DataPath = v.GetString("data")
	cfg.Seed = v.GetInt64("seed")

	sum, err := experiment.Run(cfg, logger)
	if err != nil {
		return err
	}
	report.Print(os.Stdout, sum)

	if !v.GetBool("no-plots") {
		if err := report.SavePlots(sum, v.GetString("plot-dir")); err != nil {
			return fmt.Errorf("writing figures: %w", err)
		}
	}
	return nil
}

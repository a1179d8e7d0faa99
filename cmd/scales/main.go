// Command scales resolves the axes of a chart configuration over a data
// file and prints the result.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	jsonLogs bool
	verbose  bool
	log      = zap.NewNop().Sugar()
)

var rootCmd = &cobra.Command{
	Use:   "scales",
	Short: "Resolve cartesian chart scales",
	Long: `scales resolves which axis of a chart is the domain and which the range
axis, the chart orientation and the domain of every configured axis.

Examples:
  scales resolve --options chart.yaml --data data.json
  scales resolve --options chart.yaml --data data.json --width 600 --height 400`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(jsonLogs, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		log = l
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json", false, "log as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")
	rootCmd.AddCommand(resolveCmd)
}

func newLogger(jsonOutput, debug bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	if jsonOutput {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

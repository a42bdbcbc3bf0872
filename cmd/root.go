package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pseudocodeus/csvprof/internal/logging"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "csvprof",
	Short: "CSV profiling and automation toolbox",
	Long: `Interactive command-line utilities around a CSV profiling
engine: fingerprint, encoding-detect, and multi-strategy parse a
directory of CSV files into one columnar report`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(logLevel, logFormat)
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is built-in defaults)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format (text, json)")
}

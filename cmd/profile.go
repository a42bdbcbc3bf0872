package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/pseudocodeus/csvprof/internal/config"
	"github.com/pseudocodeus/csvprof/internal/profiler"
)

var (
	dataDir     string
	reportFile  string
	sampleSize  int
	noValidator bool
	workers     int
	fileTimeout time.Duration
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Profile a directory of CSV files into one report",
	Long: `Recursively scan a directory for .csv files and profile each
one: content hash, encoding guess, three independent parse probes, and
an optional csvstat validation, aggregated into a parquet report.

Examples:
  csvprof profile                                  # defaults (test_csvs/)
  csvprof profile --dir data/ --report out.parquet
  csvprof profile --no-validator --workers 2
  csvprof profile --config csvprof.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := buildConfig(cmd)
		if err != nil {
			log.Fatalf("Invalid configuration: %v", err)
		}

		runner := profiler.NewRunner(cfg)

		var bar *progressbar.ProgressBar
		runner.OnDiscover = func(total int) {
			if total == 0 {
				return
			}
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionSetDescription("[cyan][reset] Profiling files..."),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionShowCount(),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}
		runner.OnFile = func(path string) {
			if bar != nil {
				bar.Add(1)
			}
		}

		summary, _, err := runner.Run(context.Background())
		if bar != nil {
			bar.Finish()
		}

		fmt.Printf("\nFiles discovered: %d\n", summary.Discovered)
		fmt.Printf("Files profiled:   %d (%s)\n", summary.Profiled, humanize.Bytes(uint64(summary.TotalBytes)))
		fmt.Printf("Files skipped:    %d\n", summary.Skipped)

		if err != nil {
			log.Fatalf("Batch failed: %v", err)
		}
		if summary.Written {
			fmt.Printf("Report written to %s\n", cfg.ReportFile)
		} else {
			fmt.Println("Nothing to profile, no report written.")
		}
	},
}

// buildConfig layers flag overrides on top of the config file (or the
// defaults when no file is given).
func buildConfig(cmd *cobra.Command) (config.ProfilingConfig, error) {
	cfg := config.Default()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dir") {
		cfg.DataDir = dataDir
	}
	if cmd.Flags().Changed("report") {
		cfg.ReportFile = reportFile
	}
	if cmd.Flags().Changed("sample-size") {
		cfg.SampleSize = sampleSize
	}
	if cmd.Flags().Changed("no-validator") {
		cfg.CsvstatEnabled = !noValidator
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}
	if cmd.Flags().Changed("file-timeout") {
		cfg.FileTimeout = fileTimeout
	}

	return cfg, cfg.Validate()
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.Flags().StringVarP(&dataDir, "dir", "d", config.DefaultDataDir,
		"Directory to scan recursively for .csv files")
	profileCmd.Flags().StringVarP(&reportFile, "report", "o", config.DefaultReportFile,
		"Output parquet report path")
	profileCmd.Flags().IntVar(&sampleSize, "sample-size", config.DefaultSampleSize,
		"Bytes sampled for encoding detection")
	profileCmd.Flags().BoolVar(&noValidator, "no-validator", false,
		"Skip the external csvstat validation step")
	profileCmd.Flags().IntVarP(&workers, "workers", "w", 0,
		"Concurrent files (default: number of CPUs)")
	profileCmd.Flags().DurationVar(&fileTimeout, "file-timeout", config.DefaultFileTimeout,
		"Wall-clock budget per file")
}

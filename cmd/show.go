package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/pseudocodeus/csvprof/internal/config"
	"github.com/pseudocodeus/csvprof/internal/report"
)

var (
	showVerbose bool
	showOutput  string
)

var showCmd = &cobra.Command{
	Use:   "show [report file]",
	Short: "Print a previously written profile report",
	Long: `Read a parquet profile report back and print one block per
profiled file, including the per-probe results side by side.

Examples:
  csvprof show                          # default report path
  csvprof show out.parquet --verbose
  csvprof show out.parquet --output summary.txt`,
	Run: func(cmd *cobra.Command, args []string) {
		path := config.DefaultReportFile
		if len(args) > 0 {
			path = args[0]
		}

		records, err := report.Read(path)
		if err != nil {
			log.Fatalf("Failed to read report: %v", err)
		}

		var out io.Writer = os.Stdout
		if showOutput != "" {
			f, err := os.Create(showOutput)
			if err != nil {
				log.Fatalf("Failed to create output file: %v", err)
			}
			defer f.Close()
			out = f
		}

		fmt.Fprintf(out, "Report: %s (%d files)\n", path, len(records))
		for _, rec := range records {
			printRecord(out, rec)
		}
	},
}

func printRecord(out io.Writer, rec report.FileRecord) {
	fmt.Fprintf(out, "\nFile: %s\n", rec.Path)
	fmt.Fprintf(out, "- Size: %s\n", humanize.Bytes(uint64(rec.SizeBytes)))
	fmt.Fprintf(out, "- Modified: %s\n", rec.LastModified.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "- SHA256: %s\n", rec.SHA256)
	fmt.Fprintf(out, "- Encoding: %s (confidence %.2f)\n", rec.Encoding, rec.EncodingConfidence)

	printProbe(out, "sequential", rec.SequentialSuccess, rec.SequentialRows, rec.SequentialCols, rec.SequentialError)
	printProbe(out, "permissive", rec.PermissiveSuccess, rec.PermissiveRows, rec.PermissiveCols, rec.PermissiveError)
	printProbe(out, "strict", rec.StrictSuccess, rec.StrictRows, rec.StrictCols, rec.StrictError)

	if rec.CsvstatSuccess == nil {
		fmt.Fprintf(out, "- csvstat: skipped\n")
	} else {
		printProbe(out, "csvstat", *rec.CsvstatSuccess, rec.CsvstatRows, rec.CsvstatCols, rec.CsvstatError)
	}

	if showVerbose {
		if len(rec.SequentialHeaders) > 0 {
			fmt.Fprintf(out, "  Headers: %s\n", strings.Join(rec.SequentialHeaders, ", "))
		}
		if len(rec.StrictColTypes) > 0 {
			fmt.Fprintf(out, "  Types:   %s\n", strings.Join(rec.StrictColTypes, ", "))
		}
	}
}

func printProbe(out io.Writer, name string, success bool, rows, cols *int64, probeErr *string) {
	if success {
		fmt.Fprintf(out, "- %s: ok, %s rows x %s cols\n", name, fmtCount(rows), fmtCount(cols))
		return
	}
	msg := "unknown error"
	if probeErr != nil {
		msg = *probeErr
	}
	fmt.Fprintf(out, "- %s: FAILED (%s)\n", name, msg)
}

func fmtCount(v *int64) string {
	if v == nil {
		return "?"
	}
	return fmt.Sprintf("%d", *v)
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVarP(&showVerbose, "verbose", "v", false,
		"Include headers and inferred column types")
	showCmd.Flags().StringVar(&showOutput, "output", "",
		"Write the summary to a file instead of stdout")
}

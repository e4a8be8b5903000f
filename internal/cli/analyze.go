package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"essaylens/internal/batch"
)

var (
	colorRed    = color.New(color.FgRed, color.Bold)
	colorGreen  = color.New(color.FgGreen, color.Bold)
	colorYellow = color.New(color.FgYellow)
	colorCyan   = color.New(color.FgCyan)
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file...]",
	Short: "Score files or stdin for machine-generated text",
	Long: `Score one or more documents (.txt, .md, .docx, .pdf) and print a
report per file. With no arguments the text is read from stdin.

Examples:
  essaylens analyze essay.docx
  essaylens analyze --json submissions/*.txt
  cat essay.txt | essaylens analyze`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().Bool("json", false, "emit reports as JSON")
	analyzeCmd.Flags().Int("workers", 0, "parallel workers (0 = one per CPU)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("getting json flag: %w", err)
	}
	workers, err := cmd.Flags().GetInt("workers")
	if err != nil {
		return fmt.Errorf("getting workers flag: %w", err)
	}

	a, err := buildApp()
	if err != nil {
		return err
	}
	defer a.log.Sync() //nolint:errcheck

	var reports []batch.FileReport
	if len(args) == 0 {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		result, err := a.engine.Detect(string(raw))
		if err != nil {
			return err
		}
		reports = []batch.FileReport{{Path: "stdin", AnalysisID: uuid.NewString(), Result: result}}
	} else {
		reports = batch.Run(a.engine, args, workers)
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}

	for _, report := range reports {
		printReport(cmd.OutOrStdout(), report)
	}
	return nil
}

func printReport(w io.Writer, report batch.FileReport) {
	if report.Error != "" {
		colorYellow.Fprintf(w, "%s: %s\n", report.Path, report.Error)
		return
	}

	res := report.Result
	fmt.Fprintf(w, "%s: score %.1f/100, %s confidence, ", report.Path, res.Score, res.Confidence)
	if res.LikelyGenerated {
		colorRed.Fprintln(w, "likely machine-generated")
	} else {
		colorGreen.Fprintln(w, "likely human-written")
	}
	for _, flag := range res.Flags {
		fmt.Fprintf(w, "  - %s: %s\n", flag.Label, flag.Rationale)
	}
}

package cli

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"

	"essaylens/internal/corpus"
	"essaylens/internal/ingest"
	"essaylens/internal/workspace"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Manage the word-frequency corpus",
}

var corpusBuildCmd = &cobra.Command{
	Use:   "build <dir>",
	Short: "Build a frequency corpus from reference documents",
	Long: `Walk a directory of reference documents (.txt, .md, .docx, .pdf),
count word frequencies, and write them to a sqlite corpus. Only
aggregate counts are stored, never document text. Point the detector
at the result with the "corpus" config key.`,
	Args: cobra.ExactArgs(1),
	RunE: runCorpusBuild,
}

func init() {
	corpusBuildCmd.Flags().StringP("out", "o", "", "output sqlite path (default: workspace corpus)")
	corpusCmd.AddCommand(corpusBuildCmd)
	rootCmd.AddCommand(corpusCmd)
}

func runCorpusBuild(cmd *cobra.Command, args []string) error {
	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("getting out flag: %w", err)
	}
	if out == "" {
		base, err := workspace.EnsureDefault()
		if err != nil {
			return err
		}
		out = workspace.CorpusPath(base)
	}

	counts := make(map[string]int)
	files := 0
	walkErr := filepath.WalkDir(args[0], func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !ingest.SupportedExt(filepath.Ext(path)) {
			return nil
		}
		parsed, err := ingest.ParseFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "skipping %s: %v\n", path, err)
			return nil
		}
		for word, n := range corpus.CountWords(parsed.Text) {
			counts[word] += n
		}
		files++
		return nil
	})
	if walkErr != nil {
		return fmt.Errorf("walk %s: %w", args[0], walkErr)
	}
	if files == 0 {
		return fmt.Errorf("no supported documents under %s", args[0])
	}

	if err := corpus.SaveCounts(out, counts); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "counted %d distinct words across %d documents -> %s\n",
		len(counts), files, out)
	return nil
}

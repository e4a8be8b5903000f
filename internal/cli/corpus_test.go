package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"essaylens/internal/corpus"
)

func TestCorpusBuildCmd_WritesSqliteCorpus(t *testing.T) {
	docs := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(docs, "sample.txt"),
		[]byte("the garden the garden the grew"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(docs, "ignored.png"),
		[]byte{0x89, 0x50, 0x4e, 0x47}, 0o644))

	out := filepath.Join(t.TempDir(), "freq.db")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"corpus", "build", docs, "--out", out})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "3 distinct words")

	table, err := corpus.Load(out)
	require.NoError(t, err)
	rank, ok := table.Rank("the")
	require.True(t, ok)
	assert.Equal(t, 1, rank)
	rank, ok = table.Rank("garden")
	require.True(t, ok)
	assert.Equal(t, 2, rank)
}

func TestCorpusBuildCmd_FailsWithoutDocuments(t *testing.T) {
	empty := t.TempDir()
	out := filepath.Join(t.TempDir(), "freq.db")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"corpus", "build", empty, "--out", out})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no supported documents")
}

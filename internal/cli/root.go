// Package cli wires the essaylens commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"essaylens/internal/config"
	"essaylens/internal/corpus"
	"essaylens/internal/detect"
	"essaylens/internal/logger"
	"essaylens/internal/workspace"
)

// version is stamped at build time via -ldflags.
var version = "0.1.0"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "essaylens",
	Short: "Estimate how likely a text was machine-generated",
	Long: `EssayLens scores text passages for machine-generation likelihood.

It reads documents or stdin, extracts stylometric signals
(predictability, burstiness, diversity, repetition, regularity), and
reports a 0-100 score with plain-language flags. The score is a
screening aid, not proof of authorship.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ~/.essaylens/configs/config.yaml)")
}

// app bundles the pieces every command needs.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	engine *detect.Engine
}

// buildApp seeds the workspace, then loads configuration, the logger,
// the corpus and the engine.
func buildApp() (*app, error) {
	if _, err := workspace.EnsureDefault(); err != nil {
		return nil, err
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	var table *corpus.Table
	if cfg.Corpus != "" {
		table, err = corpus.Load(cfg.Corpus)
		if err != nil {
			return nil, fmt.Errorf("load corpus: %w", err)
		}
	}

	engine, err := detect.NewEngine(table, cfg.EngineOptions())
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, log: log, engine: engine}, nil
}

// Package watch scores documents as they land in a directory, writing
// a sidecar report next to each one.
package watch

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"essaylens/internal/batch"
	"essaylens/internal/detect"
	"essaylens/internal/ingest"
)

// ReportSuffix marks the sidecar files written next to scored documents.
const ReportSuffix = ".report.json"

// Watcher scores new documents in a watched directory.
type Watcher struct {
	engine *detect.Engine
	log    *zap.Logger
}

func New(engine *detect.Engine, log *zap.Logger) *Watcher {
	return &Watcher{engine: engine, log: log}
}

// Run watches dir until ctx is done.
func (w *Watcher) Run(ctx context.Context, dir string) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.log.Info("watching directory", zap.String("dir", dir))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
		return
	}
	if !shouldScore(event.Name) {
		return
	}
	if err := w.Score(event.Name); err != nil {
		w.log.Warn("score failed", zap.String("path", event.Name), zap.Error(err))
	}
}

// Score runs detection over one document and writes its sidecar
// report. Parse and detection problems land inside the report; only
// failures to produce the sidecar itself come back as errors.
func (w *Watcher) Score(path string) error {
	report := batch.ScoreFile(w.engine, path)

	raw, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	out := path + ReportSuffix
	if err := os.WriteFile(out, raw, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if report.Error != "" {
		w.log.Warn("scored with error",
			zap.String("path", path),
			zap.String("error", report.Error))
		return nil
	}
	w.log.Info("scored document",
		zap.String("path", path),
		zap.Float64("score", report.Result.Score),
		zap.String("confidence", string(report.Result.Confidence)))
	return nil
}

// shouldScore filters watch events down to scoreable documents.
func shouldScore(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false
	}
	if strings.HasSuffix(base, ReportSuffix) {
		return false
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return ingest.SupportedExt(filepath.Ext(path))
}

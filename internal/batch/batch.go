// Package batch scores many files concurrently while keeping results
// in input order.
package batch

import (
	"runtime"
	"sync"

	"github.com/google/uuid"

	"essaylens/internal/detect"
	"essaylens/internal/ingest"
)

// FileReport pairs one input file with its outcome. Exactly one of
// Result and Error is set.
type FileReport struct {
	Path       string         `json:"path"`
	AnalysisID string         `json:"analysisId"`
	Result     *detect.Result `json:"result,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// Run scores every path with workers goroutines. Reports come back in
// the order the paths were given.
func Run(engine *detect.Engine, paths []string, workers int) []FileReport {
	if len(paths) == 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers < 1 {
			workers = 1
		}
	}

	type job struct {
		index int
		path  string
	}
	jobs := make(chan job)
	reports := make([]FileReport, len(paths))
	var wg sync.WaitGroup

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				reports[j.index] = ScoreFile(engine, j.path)
			}
		}()
	}

	for i, path := range paths {
		jobs <- job{index: i, path: path}
	}
	close(jobs)
	wg.Wait()

	return reports
}

// ScoreFile parses and scores a single document.
func ScoreFile(engine *detect.Engine, path string) FileReport {
	report := FileReport{Path: path, AnalysisID: uuid.NewString()}

	parsed, err := ingest.ParseFile(path)
	if err != nil {
		report.Error = err.Error()
		return report
	}
	result, err := engine.Detect(parsed.Text)
	if err != nil {
		report.Error = err.Error()
		return report
	}
	report.Result = result
	return report
}

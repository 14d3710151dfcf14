//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"
	"sync"

	"github.com/rios0rios0/packcheck/internal/domain/entities"
	"github.com/rios0rios0/packcheck/internal/domain/repositories"
)

// SpyReporter implements repositories.Reporter and records everything it is asked to print.
type SpyReporter struct {
	Infos          []string
	Warnings       []string
	Successes      []string
	Results        []entities.UnitReport
	ResultOptions  []entities.ReportOptions
	UpgradeResults []entities.UnitReport
	Documents      map[string]string
	PrintErr       error

	mu              sync.Mutex
	ProgressTotals  []int
	ProgressCounted int
	ProgressClosed  int
}

var _ repositories.Reporter = (*SpyReporter)(nil)

func (s *SpyReporter) Infof(format string, args ...any) {
	s.Infos = append(s.Infos, fmt.Sprintf(format, args...))
}

func (s *SpyReporter) Warnf(format string, args ...any) {
	s.Warnings = append(s.Warnings, fmt.Sprintf(format, args...))
}

func (s *SpyReporter) Successf(format string, args ...any) {
	s.Successes = append(s.Successes, fmt.Sprintf(format, args...))
}

func (s *SpyReporter) Progress(total int) repositories.ProgressTracker {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ProgressTotals = append(s.ProgressTotals, total)
	return &spyTracker{reporter: s}
}

func (s *SpyReporter) PrintResult(report entities.UnitReport, opts entities.ReportOptions) error {
	s.Results = append(s.Results, report)
	s.ResultOptions = append(s.ResultOptions, opts)
	return s.PrintErr
}

func (s *SpyReporter) PrintUpgradeResult(report entities.UnitReport) {
	s.UpgradeResults = append(s.UpgradeResults, report)
}

func (s *SpyReporter) PrintDocument(path string, content []byte) {
	if s.Documents == nil {
		s.Documents = make(map[string]string)
	}
	s.Documents[path] = string(content)
}

type spyTracker struct {
	reporter *SpyReporter
}

func (t *spyTracker) Increment() {
	t.reporter.mu.Lock()
	defer t.reporter.mu.Unlock()
	t.reporter.ProgressCounted++
}

func (t *spyTracker) Finish() {
	t.reporter.mu.Lock()
	defer t.reporter.mu.Unlock()
	t.reporter.ProgressClosed++
}

package repositories

import "github.com/rios0rios0/packcheck/internal/domain/entities"

// ProgressTracker counts finished registry lookups.
type ProgressTracker interface {
	Increment()
	Finish()
}

// Reporter renders user-facing output.
type Reporter interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Successf(format string, args ...any)
	Progress(total int) ProgressTracker
	PrintResult(report entities.UnitReport, opts entities.ReportOptions) error
	PrintUpgradeResult(report entities.UnitReport)
	PrintDocument(path string, content []byte)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

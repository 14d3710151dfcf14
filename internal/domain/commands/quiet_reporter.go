package commands

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/packcheck/internal/domain/entities"
	"github.com/rios0rios0/packcheck/internal/domain/repositories"
)

// quietReporter keeps machine readable output clean: status lines go to the log and
// no progress bar is drawn.
type quietReporter struct {
	repositories.Reporter
}

type noProgress struct{}

func (noProgress) Increment() {}

func (noProgress) Finish() {}

func reporterFor(reporter repositories.Reporter, output entities.Output) repositories.Reporter {
	if output == "" || output == entities.OutputTable {
		return reporter
	}
	return &quietReporter{Reporter: reporter}
}

func (it *quietReporter) Infof(format string, args ...any) { logger.Debugf(format, args...) }

func (it *quietReporter) Warnf(format string, args ...any) { logger.Warnf(format, args...) }

func (it *quietReporter) Successf(format string, args ...any) { logger.Debugf(format, args...) }

func (it *quietReporter) Progress(int) repositories.ProgressTracker { return noProgress{} }

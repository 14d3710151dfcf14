package console

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/rios0rios0/packcheck/internal/domain/repositories"
)

const progressWidth = 40

// barTracker counts finished registry lookups on a terminal progress bar.
type barTracker struct {
	bar *progressbar.ProgressBar
}

func newBarTracker(out io.Writer, total int) *barTracker {
	return &barTracker{bar: progressbar.NewOptions(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("Fetching package versions"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(progressWidth),
		progressbar.OptionThrottle(50*time.Millisecond), //nolint:mnd // redraw rate
		progressbar.OptionClearOnFinish(),
	)}
}

func (it *barTracker) Increment() { _ = it.bar.Add(1) }

func (it *barTracker) Finish() { _ = it.bar.Finish() }

// silentTracker is used when there is nothing to count.
type silentTracker struct{}

func (silentTracker) Increment() {}

func (silentTracker) Finish() {}

var (
	_ repositories.ProgressTracker = (*barTracker)(nil)
	_ repositories.ProgressTracker = silentTracker{}
)

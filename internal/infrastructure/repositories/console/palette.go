package console

import (
	"github.com/fatih/color"

	"github.com/rios0rios0/packcheck/internal/domain/entities"
)

// ColorPalette renders the upgrade tiers with terminal colours. Colours are disabled
// automatically when the output is not a terminal.
func ColorPalette() entities.Palette {
	major := color.New(color.FgRed)
	minor := color.New(color.FgYellow)
	patch := color.New(color.FgGreen)
	return entities.Palette{
		Major: func(text string) string { return major.Sprint(text) },
		Minor: func(text string) string { return minor.Sprint(text) },
		Patch: func(text string) string { return patch.Sprint(text) },
	}
}

package entities

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Palette maps the three upgrade tiers to display markers.
type Palette struct {
	Major func(string) string
	Minor func(string) string
	Patch func(string) string
}

func markup(style string) func(string) string {
	return func(text string) string {
		return "[" + style + "]" + text + "[/]"
	}
}

func plain(text string) string { return text }

//nolint:gochecknoglobals // immutable palettes
var (
	// MarkupPalette wraps segments in bracket tags such as "[red]2.0.0[/]".
	MarkupPalette = Palette{Major: markup("red"), Minor: markup("yellow"), Patch: markup("green")}
	// PlainPalette leaves every segment untouched.
	PlainPalette = Palette{Major: plain, Minor: plain, Patch: plain}
)

// Highlighter renders a target version with the segment that differs from the current one marked.
type Highlighter struct {
	palette Palette
}

func NewHighlighter(palette Palette) *Highlighter {
	return &Highlighter{palette: palette}
}

// Highlight renders target, marking at most one zone:
// the whole string when the major differs, "minor.patch[-pre]" when the minor differs,
// "patch[-pre]" when the patch differs and the pre-release suffix when only the label differs.
func (it *Highlighter) Highlight(current, target *semver.Version) string {
	if target == nil {
		return "-"
	}
	text := target.String()
	if current == nil || current.Equal(target) {
		return text
	}

	tail := ""
	if target.Prerelease() != "" {
		tail = "-" + target.Prerelease()
	}
	metadata := ""
	if target.Metadata() != "" {
		metadata = "+" + target.Metadata()
	}

	switch {
	case target.Major() != current.Major():
		return it.palette.Major(text)
	case target.Minor() != current.Minor():
		return fmt.Sprintf("%d.", target.Major()) +
			it.palette.Minor(fmt.Sprintf("%d.%d%s", target.Minor(), target.Patch(), tail)) + metadata
	case target.Patch() != current.Patch():
		return fmt.Sprintf("%d.%d.", target.Major(), target.Minor()) +
			it.palette.Patch(fmt.Sprintf("%d%s", target.Patch(), tail)) + metadata
	}

	numeric := fmt.Sprintf("%d.%d.%d", target.Major(), target.Minor(), target.Patch())
	if tail != "" {
		return numeric + it.palette.Patch(tail) + metadata
	}
	if current.Prerelease() != "" {
		// stable release of the pre-release in use
		return it.palette.Patch(numeric) + metadata
	}
	return text
}

// HighlightLatestStable renders the latest stable version of the package, or "-" when unresolved.
func (it *Highlighter) HighlightLatestStable(pkg Package) string {
	if pkg.LatestStableVersion == nil {
		return "-"
	}
	return it.Highlight(pkg.CurrentVersion, pkg.LatestStableVersion)
}

// HighlightLatest renders the latest version of the package, or "-" when unresolved.
func (it *Highlighter) HighlightLatest(pkg Package) string {
	if pkg.LatestVersion == nil {
		return "-"
	}
	return it.Highlight(pkg.CurrentVersion, pkg.LatestVersion)
}

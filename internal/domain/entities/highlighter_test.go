//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/packcheck/internal/domain/entities"
	"github.com/rios0rios0/packcheck/test/domain/entitybuilders"
)

func TestHighlighterHighlight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		current  string
		target   string
		expected string
	}{
		{name: "should leave equal versions plain", current: "4.0.4", target: "4.0.4", expected: "4.0.4"},
		{name: "should mark the patch digit", current: "1.0.1", target: "1.0.2", expected: "1.0.[green]2[/]"},
		{name: "should mark minor and patch", current: "1.0.1", target: "1.1.0", expected: "1.[yellow]1.0[/]"},
		{name: "should mark the whole string on a major bump", current: "1.0.1", target: "2.0.0", expected: "[red]2.0.0[/]"},
		{
			name:     "should mark only the pre-release suffix when the numbers are equal",
			current:  "1.0.1-rc1-final",
			target:   "1.0.1-rc2-final",
			expected: "1.0.1[green]-rc2-final[/]",
		},
		{
			name:     "should mark the stable release of the pre-release in use",
			current:  "5.0.0-rc.2.20475.5",
			target:   "5.0.0",
			expected: "[green]5.0.0[/]",
		},
		{
			name:     "should let a major difference dominate the pre-release",
			current:  "5.0.0-rc.2.20475.5",
			target:   "6.0.0-preview.2.21154.6",
			expected: "[red]6.0.0-preview.2.21154.6[/]",
		},
		{
			name:     "should keep the pre-release inside the minor zone",
			current:  "1.0.0",
			target:   "1.2.0-beta.1",
			expected: "1.[yellow]2.0-beta.1[/]",
		},
		{
			name:     "should keep the pre-release inside the patch zone",
			current:  "1.0.0",
			target:   "1.0.3-beta.1",
			expected: "1.0.[green]3-beta.1[/]",
		},
		{
			name:     "should mark a major difference on a lower version",
			current:  "6.0.0-preview.2.21154.6",
			target:   "5.0.5",
			expected: "[red]5.0.5[/]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			highlighter := entities.NewHighlighter(entities.MarkupPalette)

			// when
			result := highlighter.Highlight(entities.MustParseVersion(tt.current), entities.MustParseVersion(tt.target))

			// then
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestHighlighterPackageColumns(t *testing.T) {
	t.Parallel()

	t.Run("should render a dash when nothing was resolved", func(t *testing.T) {
		t.Parallel()

		// given
		highlighter := entities.NewHighlighter(entities.MarkupPalette)
		pkg := entitybuilders.NewPackageBuilder().WithCurrent("1.0.0").BuildPackage()

		// when
		stable := highlighter.HighlightLatestStable(pkg)
		latest := highlighter.HighlightLatest(pkg)

		// then
		assert.Equal(t, "-", stable)
		assert.Equal(t, "-", latest)
	})

	t.Run("should render both registry versions against the current one", func(t *testing.T) {
		t.Parallel()

		// given
		highlighter := entities.NewHighlighter(entities.MarkupPalette)
		pkg := entitybuilders.NewPackageBuilder().
			WithCurrent("6.0.0-preview.2.21154.6").
			WithLatestStable("5.0.5").
			WithLatest("6.0.0-preview.2.21154.6").
			BuildPackage()

		// when
		stable := highlighter.HighlightLatestStable(pkg)
		latest := highlighter.HighlightLatest(pkg)

		// then
		assert.Equal(t, "[red]5.0.5[/]", stable)
		assert.Equal(t, "6.0.0-preview.2.21154.6", latest)
	})

	t.Run("should render plain text with the plain palette", func(t *testing.T) {
		t.Parallel()

		// given
		highlighter := entities.NewHighlighter(entities.PlainPalette)
		pkg := entitybuilders.NewPackageBuilder().WithCurrent("1.0.1").WithLatestStable("2.0.0").BuildPackage()

		// when
		result := highlighter.HighlightLatestStable(pkg)

		// then
		assert.Equal(t, "2.0.0", result)
	})
}

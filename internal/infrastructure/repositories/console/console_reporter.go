package console

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/packcheck/internal/domain/entities"
	"github.com/rios0rios0/packcheck/internal/domain/repositories"
)

// ANSI escape sequences and the bracket tags of entities.MarkupPalette take no columns.
//
//nolint:gochecknoglobals // compiled once
var markerPattern = regexp.MustCompile(`\x1b\[[0-9;]*m|\[(?:red|yellow|green|/)\]`)

// group headings in display order
//
//nolint:gochecknoglobals // immutable table
var groups = []struct {
	upgradeType entities.UpgradeType
	title       func(entities.Palette) string
	description string
}{
	{entities.UpgradePatch, func(p entities.Palette) string { return p.Patch("Patch") }, "Backwards compatible - bug fixes"},
	{entities.UpgradeMinor, func(p entities.Palette) string { return p.Minor("Minor") }, "Backwards compatible - new features"},
	{entities.UpgradeMajor, func(p entities.Palette) string { return p.Major("Major") }, "Possibly breaking changes - check Changelog"},
}

// packageDocument is the machine readable form of a package in a check report.
type packageDocument struct {
	Name         string `json:"name"                   yaml:"name"`
	Current      string `json:"current"                yaml:"current"`
	LatestStable string `json:"latestStable,omitempty" yaml:"latestStable,omitempty"`
	Latest       string `json:"latest,omitempty"       yaml:"latest,omitempty"`
	UpgradeType  string `json:"upgradeType"            yaml:"upgradeType"`
}

type reportDocument struct {
	Path     string            `json:"path"     yaml:"path"`
	Packages []packageDocument `json:"packages" yaml:"packages"`
}

// ConsoleReporter writes reports and status lines to the terminal.
type ConsoleReporter struct {
	out         io.Writer
	progressOut io.Writer
	palette     entities.Palette
	highlighter *entities.Highlighter
}

// NewConsoleReporter creates a reporter on stdout with terminal colours and a progress bar on stderr.
func NewConsoleReporter() repositories.Reporter {
	return NewConsoleReporterWithWriters(color.Output, os.Stderr, ColorPalette())
}

func NewConsoleReporterWithWriters(out, progressOut io.Writer, palette entities.Palette) *ConsoleReporter {
	return &ConsoleReporter{
		out:         out,
		progressOut: progressOut,
		palette:     palette,
		highlighter: entities.NewHighlighter(palette),
	}
}

func (it *ConsoleReporter) Infof(format string, args ...any) {
	fmt.Fprintf(it.out, format+"\n", args...)
}

func (it *ConsoleReporter) Warnf(format string, args ...any) {
	fmt.Fprintln(it.out, it.palette.Minor(fmt.Sprintf(format, args...)))
}

func (it *ConsoleReporter) Successf(format string, args ...any) {
	fmt.Fprintln(it.out, it.palette.Patch(fmt.Sprintf(format, args...)))
}

func (it *ConsoleReporter) Progress(total int) repositories.ProgressTracker {
	if total <= 0 || it.progressOut == nil {
		return silentTracker{}
	}
	return newBarTracker(it.progressOut, total)
}

func (it *ConsoleReporter) PrintResult(report entities.UnitReport, opts entities.ReportOptions) error {
	switch opts.Output {
	case entities.OutputJSON:
		content, err := json.MarshalIndent(toDocument(report), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Fprintln(it.out, string(content))
		return nil
	case entities.OutputYAML:
		content, err := yaml.Marshal(toDocument(report))
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Fprint(it.out, "---\n"+string(content))
		return nil
	}

	if opts.Format == entities.FormatGroup {
		for _, group := range groups {
			packages := byUpgradeType(report.Packages, group.upgradeType)
			if len(packages) == 0 {
				continue
			}
			fmt.Fprintf(it.out, "%s %s\n", group.title(it.palette), group.description)
			it.printCheckTable(packages, opts.Pre)
			fmt.Fprintln(it.out)
		}
		return nil
	}

	it.printCheckTable(report.Packages, opts.Pre)
	return nil
}

func (it *ConsoleReporter) PrintUpgradeResult(report entities.UnitReport) {
	rows := make([][]string, 0, len(report.Packages))
	for _, pkg := range report.Packages {
		rows = append(rows, []string{
			pkg.Name,
			entities.FormatVersion(pkg.CurrentVersion),
			it.highlighter.Highlight(pkg.CurrentVersion, pkg.NewVersion),
		})
	}
	it.writeTable([]string{"Package Name", "Current", "Upgraded To"}, rows)
}

func (it *ConsoleReporter) PrintDocument(path string, content []byte) {
	fmt.Fprintf(it.out, "%s\n", it.palette.Minor("--- "+path+" (dry run) ---"))
	text := string(content)
	fmt.Fprint(it.out, text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(it.out)
	}
}

func (it *ConsoleReporter) printCheckTable(packages []entities.Package, pre bool) {
	headers := []string{"Package Name", "Current", "Latest Stable"}
	if pre {
		headers = append(headers, "Latest")
	}

	rows := make([][]string, 0, len(packages))
	for _, pkg := range packages {
		row := []string{
			pkg.Name,
			entities.FormatVersion(pkg.CurrentVersion),
			it.highlighter.HighlightLatestStable(pkg),
		}
		if pre {
			row = append(row, it.highlighter.HighlightLatest(pkg))
		}
		rows = append(rows, row)
	}
	it.writeTable(headers, rows)
}

// writeTable aligns columns on their visible width, ignoring colour markers.
func (it *ConsoleReporter) writeTable(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = visibleWidth(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], visibleWidth(cell))
		}
	}

	it.writeRow(headers, widths)
	separators := make([]string, len(widths))
	for i, width := range widths {
		separators[i] = strings.Repeat("-", width)
	}
	it.writeRow(separators, widths)
	for _, row := range rows {
		it.writeRow(row, widths)
	}
}

func (it *ConsoleReporter) writeRow(cells []string, widths []int) {
	var line strings.Builder
	for i, cell := range cells {
		line.WriteString(cell)
		if i < len(cells)-1 {
			line.WriteString(strings.Repeat(" ", widths[i]-visibleWidth(cell)+2)) //nolint:mnd // column gap
		}
	}
	fmt.Fprintln(it.out, line.String())
}

func visibleWidth(text string) int {
	return len([]rune(markerPattern.ReplaceAllString(text, "")))
}

func byUpgradeType(packages []entities.Package, upgradeType entities.UpgradeType) []entities.Package {
	var result []entities.Package
	for _, pkg := range packages {
		if pkg.UpgradeType == upgradeType {
			result = append(result, pkg)
		}
	}
	return result
}

func toDocument(report entities.UnitReport) reportDocument {
	document := reportDocument{Path: report.Path, Packages: make([]packageDocument, 0, len(report.Packages))}
	for _, pkg := range report.Packages {
		entry := packageDocument{
			Name:        pkg.Name,
			Current:     entities.FormatVersion(pkg.CurrentVersion),
			UpgradeType: pkg.UpgradeType.String(),
		}
		if pkg.LatestStableVersion != nil {
			entry.LatestStable = pkg.LatestStableVersion.String()
		}
		if pkg.LatestVersion != nil {
			entry.Latest = pkg.LatestVersion.String()
		}
		document.Packages = append(document.Packages, entry)
	}
	return document
}

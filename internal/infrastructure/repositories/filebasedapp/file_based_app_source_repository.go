package filebasedapp

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/packcheck/internal/domain/entities"
	"github.com/rios0rios0/packcheck/internal/domain/repositories"
	"github.com/rios0rios0/packcheck/internal/infrastructure/repositories/files"
)

const directivePrefix = "#:package"

// FileBasedAppSourceRepository handles "#:package Name@Version" directives of a file-based app.
type FileBasedAppSourceRepository struct {
	lookup files.Lookup
}

func NewFileBasedAppSourceRepository() repositories.SourceRepository {
	return &FileBasedAppSourceRepository{
		lookup: files.Lookup{Kind: "file-based app", Pattern: "*.cs", Option: "--fba-file"},
	}
}

func (r *FileBasedAppSourceRepository) Kind() repositories.SourceKind {
	return repositories.SourceFileBasedApp
}

// Detect always reports false: a file-based app is only used when it is named explicitly.
func (r *FileBasedAppSourceRepository) Detect(string) bool { return false }

func (r *FileBasedAppSourceRepository) Locate(dir, explicit string) (string, error) {
	return r.lookup.Resolve(dir, explicit)
}

func (r *FileBasedAppSourceRepository) Extract(path string) ([]entities.Package, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var packages []entities.Package
	for _, line := range strings.Split(string(content), "\n") {
		if pkg, ok := ParseDirective(line); ok {
			packages = append(packages, pkg)
		}
	}
	return packages, nil
}

func (r *FileBasedAppSourceRepository) Rewrite(
	path string, packages []entities.Package, dryRun bool,
) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	targets := make(map[string]entities.Package, len(packages))
	for _, pkg := range packages {
		if pkg.NewVersion != nil {
			targets[pkg.Name] = pkg
		}
	}

	var out bytes.Buffer
	out.Grow(len(content))
	for _, line := range bytes.SplitAfter(content, []byte("\n")) {
		out.Write(rewriteDirective(line, targets))
	}

	if dryRun {
		return out.Bytes(), nil
	}
	if err = files.WriteAtomic(path, out.Bytes()); err != nil {
		return nil, err
	}
	logger.Debugf("Updated %d packages in %s", len(targets), path)
	return out.Bytes(), nil
}

// ParseDirective reads a "#:package Name@Version" line. Surrounding whitespace is ignored;
// lines without exactly one '@', with an empty name or with an invalid version are rejected.
func ParseDirective(line string) (entities.Package, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, directivePrefix) {
		return entities.Package{}, false
	}

	parts := strings.Split(strings.TrimSpace(strings.TrimPrefix(trimmed, directivePrefix)), "@")
	if len(parts) != 2 { //nolint:mnd // name and version
		return entities.Package{}, false
	}

	name := strings.TrimSpace(parts[0])
	if name == "" {
		return entities.Package{}, false
	}
	version, err := entities.ParseVersion(parts[1])
	if err != nil {
		return entities.Package{}, false
	}
	return entities.NewPackage(name, version), true
}

// rewriteDirective swaps the version token of a directive line, keeping every other byte.
func rewriteDirective(line []byte, targets map[string]entities.Package) []byte {
	pkg, ok := ParseDirective(string(line))
	if !ok {
		return line
	}
	target, ok := targets[pkg.Name]
	if !ok {
		return line
	}

	at := bytes.IndexByte(line, '@')
	start := at + 1
	for start < len(line) && isSpace(line[start]) {
		start++
	}
	end := start
	for end < len(line) && !isSpace(line[end]) {
		end++
	}

	result := make([]byte, 0, len(line)+len(target.NewVersion.String()))
	result = append(result, line[:start]...)
	result = append(result, target.NewVersion.String()...)
	result = append(result, line[end:]...)
	return result
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

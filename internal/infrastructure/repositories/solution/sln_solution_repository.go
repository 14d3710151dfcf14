package solution

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rios0rios0/packcheck/internal/domain/repositories"
	"github.com/rios0rios0/packcheck/internal/infrastructure/repositories/files"
)

var projectDefinitionPattern = regexp.MustCompile(
	`^Project\("\{[A-Za-z0-9\-]+\}"\) = ".+", "(?P<path>.+\.csproj)", "\{[A-Za-z0-9\-]+\}"$`,
)

// SlnSolutionRepository enumerates the C# projects of a classic .sln file.
type SlnSolutionRepository struct {
	lookup files.Lookup
}

func NewSlnSolutionRepository() repositories.SolutionRepository {
	return &SlnSolutionRepository{
		lookup: files.Lookup{Kind: ".sln", Pattern: "*.sln", Option: "--sln-file"},
	}
}

func (r *SlnSolutionRepository) Kind() repositories.SolutionKind { return repositories.SolutionSln }

func (r *SlnSolutionRepository) Detect(dir string) bool {
	return len(r.lookup.Candidates(dir)) > 0
}

func (r *SlnSolutionRepository) Locate(dir, explicit string) (string, error) {
	return r.lookup.Resolve(dir, explicit)
}

func (r *SlnSolutionRepository) ProjectPaths(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return resolveAll(filepath.Dir(path), ParseSlnProjects(content)), nil
}

// ParseSlnProjects returns the relative .csproj paths of the "Project(" lines, using the host separator.
func ParseSlnProjects(content []byte) []string {
	pathIndex := projectDefinitionPattern.SubexpIndex("path")

	var paths []string
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if !strings.HasPrefix(line, "Project(") {
			continue
		}
		match := projectDefinitionPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		paths = append(paths, normalizeSeparators(match[pathIndex]))
	}
	return paths
}

func normalizeSeparators(path string) string {
	return strings.ReplaceAll(path, `\`, string(filepath.Separator))
}

func resolveAll(dir string, relative []string) []string {
	resolved := make([]string, 0, len(relative))
	for _, path := range relative {
		if filepath.IsAbs(path) {
			resolved = append(resolved, path)
			continue
		}
		resolved = append(resolved, filepath.Join(dir, path))
	}
	return resolved
}

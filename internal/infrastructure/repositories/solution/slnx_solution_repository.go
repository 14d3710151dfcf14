package solution

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rios0rios0/packcheck/internal/domain/repositories"
	"github.com/rios0rios0/packcheck/internal/infrastructure/repositories/files"
)

// SlnxSolutionRepository enumerates the projects of an XML .slnx file.
type SlnxSolutionRepository struct {
	lookup files.Lookup
}

func NewSlnxSolutionRepository() repositories.SolutionRepository {
	return &SlnxSolutionRepository{
		lookup: files.Lookup{Kind: ".slnx", Pattern: "*.slnx", Option: "--slnx-file"},
	}
}

func (r *SlnxSolutionRepository) Kind() repositories.SolutionKind { return repositories.SolutionSlnx }

func (r *SlnxSolutionRepository) Detect(dir string) bool {
	return len(r.lookup.Candidates(dir)) > 0
}

func (r *SlnxSolutionRepository) Locate(dir, explicit string) (string, error) {
	return r.lookup.Resolve(dir, explicit)
}

func (r *SlnxSolutionRepository) ProjectPaths(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	projects, err := ParseSlnxProjects(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return resolveAll(filepath.Dir(path), projects), nil
}

// ParseSlnxProjects returns the Path attribute of every Project element, using the host separator.
func ParseSlnxProjects(content []byte) ([]string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(content))

	var paths []string
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return paths, nil
		}
		if err != nil {
			return nil, err
		}

		element, ok := token.(xml.StartElement)
		if !ok || element.Name.Local != "Project" {
			continue
		}
		for _, attr := range element.Attr {
			if attr.Name.Local == "Path" && attr.Value != "" {
				paths = append(paths, normalizeSeparators(attr.Value))
			}
		}
	}
}

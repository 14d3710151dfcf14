// Package files holds the lookup and write helpers shared by the source repositories.
package files

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/rios0rios0/packcheck/internal/domain/entities"
)

// Lookup describes how a file kind is found in a working directory.
type Lookup struct {
	Kind    string // name used in messages, e.g. ".csproj"
	Pattern string // glob matched in the working directory
	Option  string // flag that selects a file explicitly
}

// Resolve returns the explicit file when given, otherwise the single default candidate in dir.
func (l Lookup) Resolve(dir, explicit string) (string, error) {
	if explicit != "" {
		return l.resolveExplicit(dir, explicit)
	}

	matches := l.Candidates(dir)
	switch len(matches) {
	case 0:
		return "", &entities.FileNotFoundError{Kind: l.Kind, Dir: dir}
	case 1:
		return matches[0], nil
	default:
		return "", &entities.AmbiguousFileError{Kind: l.Kind, Dir: dir, Option: l.Option, Candidates: matches}
	}
}

// Candidates lists the default candidates in dir, sorted by name.
func (l Lookup) Candidates(dir string) []string {
	matches, err := filepath.Glob(filepath.Join(dir, l.Pattern))
	if err != nil {
		return nil
	}

	result := make([]string, 0, len(matches))
	for _, match := range matches {
		if info, statErr := os.Stat(match); statErr == nil && !info.IsDir() {
			result = append(result, match)
		}
	}
	slices.Sort(result)
	return result
}

func (l Lookup) resolveExplicit(dir, explicit string) (string, error) {
	path := explicit
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, explicit)
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", &entities.FileNotFoundError{Kind: l.Kind, Path: explicit, Dir: dir}
	}
	return path, nil
}

// WriteAtomic replaces the file content through a temporary file in the same directory,
// keeping the original permissions.
func WriteAtomic(path string, content []byte) error {
	mode := os.FileMode(0o644) //nolint:mnd // default for new files
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err = tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpPath, err)
	}
	if err = os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", tmpPath, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

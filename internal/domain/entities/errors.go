package entities

import (
	"fmt"
	"slices"
	"strings"
)

// FileNotFoundError is returned when a source file does not exist at the given or default location.
type FileNotFoundError struct {
	Kind string // human name of the file kind, e.g. ".csproj"
	Path string // explicit path given by the user, empty when searching by default
	Dir  string // directory the lookup ran in
}

func (e *FileNotFoundError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("file %s does not exist in the directory %s", e.Path, e.Dir)
	}
	return fmt.Sprintf("could not find a %s file in the directory %s", e.Kind, e.Dir)
}

// AmbiguousFileError is returned when several default candidates exist and none was chosen.
type AmbiguousFileError struct {
	Kind       string
	Dir        string
	Option     string
	Candidates []string
}

func (e *AmbiguousFileError) Error() string {
	return fmt.Sprintf(
		"found more than one %s file in the directory %s, please specify which one to use with the %s option",
		e.Kind, e.Dir, e.Option,
	)
}

// InvalidConfigError is returned when the configuration file cannot be parsed.
type InvalidConfigError struct {
	Path string
	Err  error
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid configuration file %s: %v", e.Path, e.Err)
}

func (e *InvalidConfigError) Unwrap() error {
	return e.Err
}

// InvalidOptionValueError is returned when an option is given a value outside its enumerated set.
type InvalidOptionValueError struct {
	Option  string
	Value   string
	Allowed []string
}

func (e *InvalidOptionValueError) Error() string {
	return fmt.Sprintf(
		"value '%s' for %s is not valid, valid values are: %s",
		e.Value, e.Option, strings.Join(e.Allowed, ", "),
	)
}

// UnitsFailedError is returned when some projects of a solution could not be processed.
type UnitsFailedError struct {
	Total  int
	Failed map[string]error
}

func (e *UnitsFailedError) Error() string {
	paths := make([]string, 0, len(e.Failed))
	for path := range e.Failed {
		paths = append(paths, path)
	}
	slices.Sort(paths)
	return fmt.Sprintf("%d of %d projects failed: %s", len(e.Failed), e.Total, strings.Join(paths, ", "))
}

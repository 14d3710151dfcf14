package entities

import "strings"

// Target selects which registry version an upgrade or a check compares against.
type Target string

const (
	TargetStable Target = "stable"
	TargetLatest Target = "latest"
)

// Format selects how the check report is laid out.
type Format string

const (
	FormatPlain Format = ""
	FormatGroup Format = "group"
)

// Output selects the encoding of the check report.
type Output string

const (
	OutputTable Output = "table"
	OutputJSON  Output = "json"
	OutputYAML  Output = "yaml"
)

func ParseTarget(value string) (Target, error) {
	return parseEnum(value, "--target", []Target{TargetStable, TargetLatest})
}

// ParseFormat accepts an empty value for the default layout.
func ParseFormat(value string) (Format, error) {
	if strings.TrimSpace(value) == "" {
		return FormatPlain, nil
	}
	return parseEnum(value, "--format", []Format{FormatGroup})
}

// ParseOutput accepts an empty value for the table output.
func ParseOutput(value string) (Output, error) {
	if strings.TrimSpace(value) == "" {
		return OutputTable, nil
	}
	return parseEnum(value, "--output", []Output{OutputTable, OutputJSON, OutputYAML})
}

func parseEnum[T ~string](value, option string, allowed []T) (T, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	names := make([]string, 0, len(allowed))
	for _, candidate := range allowed {
		if string(candidate) == normalized {
			return candidate, nil
		}
		names = append(names, string(candidate))
	}

	var zero T
	return zero, &InvalidOptionValueError{Option: option, Value: value, Allowed: names}
}

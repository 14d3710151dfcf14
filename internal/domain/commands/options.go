package commands

import (
	"github.com/rios0rios0/packcheck/internal/domain/entities"
)

// SourceOptions selects the dependency declarations to work on and the packages to consider.
type SourceOptions struct {
	WorkDir    string
	CsProjFile string
	SlnFile    string
	SlnxFile   string
	CpmFile    string
	FbaFile    string
	Filter     []string
	Exclude    []string
	Target     entities.Target
	Source     string
}

// withSettings fills the values not given on the command line from the configuration file.
func (o SourceOptions) withSettings(settings *entities.Settings) SourceOptions {
	if o.Target == "" {
		o.Target = entities.TargetStable
	}
	if settings == nil {
		return o
	}

	o.CsProjFile = firstNonEmpty(o.CsProjFile, settings.CsProjFile)
	o.SlnFile = firstNonEmpty(o.SlnFile, settings.SlnFile)
	o.SlnxFile = firstNonEmpty(o.SlnxFile, settings.SlnxFile)
	o.CpmFile = firstNonEmpty(o.CpmFile, settings.CpmFile)
	o.FbaFile = firstNonEmpty(o.FbaFile, settings.FbaFile)
	o.Source = firstNonEmpty(o.Source, settings.Source)
	if len(o.Filter) == 0 {
		o.Filter = settings.Filter
	}
	if len(o.Exclude) == 0 {
		o.Exclude = settings.Exclude
	}
	return o
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

package repositories

import "github.com/rios0rios0/packcheck/internal/domain/entities"

// SettingsRepository loads the optional configuration file of a working directory.
type SettingsRepository interface {
	// Load returns the settings and the file they came from. Both are empty when no file
	// exists. A malformed file yields an *entities.InvalidConfigError.
	Load(dir string) (*entities.Settings, string, error)
}

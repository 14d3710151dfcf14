package settings

import (
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/rios0rios0/packcheck/internal/domain/entities"
	"github.com/rios0rios0/packcheck/internal/domain/repositories"
)

//nolint:gochecknoglobals // lookup order of the configuration file
var configFileNames = []string{".packcheckrc", ".packcheckrc.json", ".packcheckrc.yaml", ".packcheckrc.yml"}

// RCSettingsRepository reads the .packcheckrc file of the working directory.
type RCSettingsRepository struct{}

func NewRCSettingsRepository() repositories.SettingsRepository {
	return &RCSettingsRepository{}
}

func (r *RCSettingsRepository) Load(dir string) (*entities.Settings, string, error) {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			continue
		}

		settings, err := readSettings(path)
		if err != nil {
			return nil, path, &entities.InvalidConfigError{Path: path, Err: err}
		}
		logger.Debugf("Loaded configuration from %s", path)
		return settings, path, nil
	}
	return nil, "", nil
}

func readSettings(path string) (*entities.Settings, error) {
	reader := viper.New()
	reader.SetConfigFile(path)
	reader.SetConfigType(configType(path))
	if err := reader.ReadInConfig(); err != nil {
		return nil, err
	}

	var settings entities.Settings
	if err := reader.Unmarshal(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// configType maps the file name to a viper format; the extensionless rc file is JSON.
func configType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

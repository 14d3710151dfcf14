package entities

// Settings is the content of the optional configuration file found in the working directory.
type Settings struct {
	CsProjFile string   `mapstructure:"csProjFile"`
	SlnFile    string   `mapstructure:"slnFile"`
	SlnxFile   string   `mapstructure:"slnxFile"`
	CpmFile    string   `mapstructure:"cpmFile"`
	FbaFile    string   `mapstructure:"fbaFile"`
	Filter     []string `mapstructure:"filter"`
	Exclude    []string `mapstructure:"exclude"`
	Format     string   `mapstructure:"format"`
	Pre        *bool    `mapstructure:"pre"`
	Source     string   `mapstructure:"source"`
}

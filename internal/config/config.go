package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the scan root.
const FileName = ".cfgscan.yaml"

const (
	configName      = ".cfgscan"
	configType      = "yaml"
	envPrefix       = "CFGSCAN"
	envKeySeparator = "_"
)

// ErrInvalid is returned when a loaded config fails validation.
var ErrInvalid = errors.New("invalid config")

// Config represents the cfgscan configuration file
type Config struct {
	Services       []string      `mapstructure:"services" yaml:"services"`
	Accessors      []string      `mapstructure:"accessors" yaml:"accessors"`
	Exclusions     []string      `mapstructure:"exclusions" yaml:"exclusions"`
	EnvRoot        string        `mapstructure:"env_root" yaml:"env_root"`
	Ignores        IgnoresConfig `mapstructure:"ignores" yaml:"ignores"`
	Include        []string      `mapstructure:"include" yaml:"include"`
	Exclude        []string      `mapstructure:"exclude" yaml:"exclude"`
	SkipUnparsable bool          `mapstructure:"skip_unparsable" yaml:"skip_unparsable"`
}

// IgnoresConfig contains ignore rules for the file walk
type IgnoresConfig struct {
	Folders []string `mapstructure:"folders" yaml:"folders"` // Directory names or root-relative paths
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Services:   []string{"EtcdService", "ConfigService"},
		Accessors:  []string{"get", "getOrThrow"},
		Exclusions: []string{"app.get"},
		EnvRoot:    "process.env",
		Ignores:    IgnoresConfig{Folders: []string{}},
		Include:    []string{},
		Exclude:    []string{},
	}
}

// Load reads configuration from file, CFGSCAN_* env vars and defaults.
// If explicitPath is empty, .cfgscan.yaml is searched in rootPath and a
// missing file is not an error.
func Load(rootPath, explicitPath string) (*Config, error) {
	v := viper.New()
	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	v.AutomaticEnv()

	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(rootPath)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("services", d.Services)
	v.SetDefault("accessors", d.Accessors)
	v.SetDefault("exclusions", d.Exclusions)
	v.SetDefault("env_root", d.EnvRoot)
	v.SetDefault("ignores.folders", d.Ignores.Folders)
	v.SetDefault("include", d.Include)
	v.SetDefault("exclude", d.Exclude)
	v.SetDefault("skip_unparsable", d.SkipUnparsable)
}

// Validate checks that the detection rules are usable.
func (c *Config) Validate() error {
	if len(c.Services) == 0 {
		return fmt.Errorf("%w: services must not be empty", ErrInvalid)
	}
	if len(c.Accessors) == 0 {
		return fmt.Errorf("%w: accessors must not be empty", ErrInvalid)
	}
	if strings.TrimSpace(c.EnvRoot) == "" {
		return fmt.Errorf("%w: env_root must not be empty", ErrInvalid)
	}
	return nil
}

// DefaultYAML renders the default configuration as written by init-config.
func DefaultYAML() ([]byte, error) {
	body, err := yaml.Marshal(Default())
	if err != nil {
		return nil, fmt.Errorf("marshal default config: %w", err)
	}

	header := "# " + FileName + "\n" +
		"# Configuration file for cfgscan\n" +
		"#\n" +
		"# services:   type names that put a file in scope when they appear in an import\n" +
		"# accessors:  method names treated as configuration reads\n" +
		"# exclusions: callee substrings that are never treated as configuration reads\n"

	return append([]byte(header), body...), nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathviz/view"
)

// configName is the config file name without extension.
const configName = ".pathviz"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for pathviz settings.
const envPrefix = "PATHVIZ"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// LoadConfig loads configuration from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// Missing config file is not an error; defaults are used.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

// Dump renders the effective configuration as YAML.
func Dump(cfg *Config) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	return out, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("universe", DefaultUniverse)

	viperCfg.SetDefault("search.budget", DefaultBudget)
	viperCfg.SetDefault("search.strategy", DefaultStrategy)
	viperCfg.SetDefault("search.weight", DefaultWeight)

	viperCfg.SetDefault("view.min_cell_size", view.DefaultMinCellSize)
	viperCfg.SetDefault("view.max_cell_size", view.DefaultMaxCellSize)
	viperCfg.SetDefault("view.zoom_step", view.DefaultZoomStep)
	viperCfg.SetDefault("view.grow_seconds", view.DefaultGrowSeconds)
	viperCfg.SetDefault("view.glide_seconds", view.DefaultGlideSeconds)

	viperCfg.SetDefault("window.width", DefaultWindowWidth)
	viperCfg.SetDefault("window.height", DefaultWindowHeight)
	viperCfg.SetDefault("window.tps", DefaultTPS)
	viperCfg.SetDefault("window.title", DefaultWindowTitle)
	viperCfg.SetDefault("window.viewport.x", DefaultViewportX)
	viperCfg.SetDefault("window.viewport.y", DefaultViewportY)
	viperCfg.SetDefault("window.viewport.width", DefaultViewportWidth)
	viperCfg.SetDefault("window.viewport.height", DefaultViewportHeight)

	viperCfg.SetDefault("log.level", DefaultLogLevel)
	viperCfg.SetDefault("log.format", DefaultLogFormat)

	viperCfg.SetDefault("metrics.addr", "")

	viperCfg.SetDefault("settings.app_name", DefaultAppName)
	viperCfg.SetDefault("settings.persist", DefaultPersist)
}

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fwojciec/utsushi/fs"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".utsushi"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for utsushi settings.
const envPrefix = "UTSUSHI"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"format":    "format",
	"algorithm": "algorithm",
	"tokenizer": "tokenizer",
	"language":  "language",
	"workers":   "workers",
	"log-level": "log.level",
	"log-file":  "log.file",
}

// Load loads configuration from flags, env vars, the config file and defaults,
// in that order of precedence. If configPath is non-empty it is used as the
// explicit config file path; otherwise .utsushi.yaml is searched in the
// working directory and the user config directory. A missing config file is
// not an error. flags may be nil; only flags set on the command line override.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
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
		if dir := fs.DefaultConfigDir(); dir != "" {
			viperCfg.AddConfigPath(dir)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := viperCfg.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
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

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("format", DefaultFormat)
	viperCfg.SetDefault("algorithm", DefaultAlgorithm)
	viperCfg.SetDefault("tokenizer", DefaultTokenizer)
	viperCfg.SetDefault("language", "")
	viperCfg.SetDefault("workers", DefaultWorkers)
	viperCfg.SetDefault("log.level", DefaultLogLevel)
	viperCfg.SetDefault("log.file", "")
}

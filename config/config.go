// Package config holds utsushi settings loaded through viper.
package config

import "errors"

// Output formats.
const (
	FormatJSON = "json"
	FormatStat = "stat"
)

// Line alignment algorithms.
const (
	AlgorithmLCS   = "lcs"
	AlgorithmMyers = "myers"
)

// Word tokenizers.
const (
	TokenizerWords  = "words"
	TokenizerCode   = "code"
	TokenizerSyntax = "syntax"
)

// Defaults.
const (
	DefaultFormat    = FormatJSON
	DefaultAlgorithm = AlgorithmLCS
	DefaultTokenizer = TokenizerWords
	DefaultWorkers   = 4
	DefaultLogLevel  = "warn"
)

// Validation errors.
var (
	ErrUnknownFormat    = errors.New("unknown output format")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	ErrUnknownTokenizer = errors.New("unknown tokenizer")
	ErrMissingLanguage  = errors.New("the syntax tokenizer needs a language")
	ErrInvalidWorkers   = errors.New("workers must be at least 1")
	ErrUnknownLogLevel  = errors.New("unknown log level")
)

// Config is the top-level configuration.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Format    string    `mapstructure:"format"`
	Algorithm string    `mapstructure:"algorithm"`
	Tokenizer string    `mapstructure:"tokenizer"`
	Language  string    `mapstructure:"language"` // lexer name for the syntax tokenizer
	Workers   int       `mapstructure:"workers"`
	Log       LogConfig `mapstructure:"log"`
}

// LogConfig controls CLI logging. An empty File logs to stderr.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatJSON, FormatStat:
	default:
		return ErrUnknownFormat
	}

	switch c.Algorithm {
	case AlgorithmLCS, AlgorithmMyers:
	default:
		return ErrUnknownAlgorithm
	}

	switch c.Tokenizer {
	case TokenizerWords, TokenizerCode:
	case TokenizerSyntax:
		if c.Language == "" {
			return ErrMissingLanguage
		}
	default:
		return ErrUnknownTokenizer
	}

	if c.Workers < 1 {
		return ErrInvalidWorkers
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return ErrUnknownLogLevel
	}

	return nil
}

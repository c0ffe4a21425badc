package slug

import (
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config describes a Slugifier through environment variables.
type Config struct {
	Separator        string   `env:"SLUG_SEPARATOR" envDefault:"-"`
	LowerCase        bool     `env:"SLUG_LOWERCASE" envDefault:"true"`
	MaxLength        int      `env:"SLUG_MAX_LENGTH" envDefault:"0"`
	SuffixLength     int      `env:"SLUG_SUFFIX_LENGTH" envDefault:"0"`
	Reserved         []string `env:"SLUG_RESERVED" envSeparator:","`
	ReplacementsFile string   `env:"SLUG_REPLACEMENTS_FILE"`
}

// DefaultConfig returns the configuration New uses without options.
func DefaultConfig() Config {
	return Config{
		Separator: defaultSeparator,
		LowerCase: true,
	}
}

// LoadConfig parses Config from the environment. Given env files are loaded
// first; variables already present in the environment take precedence over them.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return Config{}, errors.Join(ErrParsingConfig, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// Validate checks cfg without touching the replacement file.
func (c Config) Validate() error {
	if !utf8.ValidString(c.Separator) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidArgument, ErrInvalidSeparator, c.Separator)
	}
	if c.MaxLength < 0 {
		return fmt.Errorf("%w: negative max length %d", ErrInvalidArgument, c.MaxLength)
	}
	if c.SuffixLength < 0 {
		return fmt.Errorf("%w: negative suffix length %d", ErrInvalidArgument, c.SuffixLength)
	}
	return nil
}

// NewFromConfig builds a Slugifier from cfg and then applies opts. Unlike the
// fluent setters it reports invalid values as errors.
func NewFromConfig(cfg Config, opts ...Option) (*Slugifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var set ReplacementSet
	if cfg.ReplacementsFile != "" {
		var err error
		if set, err = LoadReplacementsFile(cfg.ReplacementsFile); err != nil {
			return nil, err
		}
	}

	s := New(
		Separator(cfg.Separator),
		Lowercase(cfg.LowerCase),
		MaxLength(cfg.MaxLength),
		WithSuffix(cfg.SuffixLength),
		ReservedSlugs(cfg.Reserved...),
	)
	s.WithReplacementSet(set)
	for _, opt := range opts {
		opt(s)
	}

	s.logger.Debug("slugifier configured",
		slog.String("separator", s.separator),
		slog.Bool("lowercase", s.lowercase),
		slog.Int("max_length", s.maxLength),
		slog.Int("suffix_length", s.suffixLength),
		slog.Int("reserved", len(s.reserved)),
		slog.String("replacements_file", cfg.ReplacementsFile),
		slog.Int("replacements", s.custom.Len()),
		slog.Int("word_replacements", s.words.Len()),
	)

	return s, nil
}

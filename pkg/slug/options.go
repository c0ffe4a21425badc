package slug

import (
	"log/slog"
	"strings"
)

// Option configures a Slugifier created with New or used by Make.
type Option func(*Slugifier)

// Separator sets the string placed between words. Default is "-".
func Separator(sep string) Option {
	return func(s *Slugifier) {
		s.WithSeparator(sep)
	}
}

// Lowercase controls whether the slug is converted to lowercase.
// Default is true.
func Lowercase(enabled bool) Option {
	return func(s *Slugifier) {
		s.WithLowerCase(enabled)
	}
}

// CustomReplace registers substring replacements consulted before the
// built-in table. For example: {"&": "and", "@": "at"}
func CustomReplace(replacements map[string]string) Option {
	return func(s *Slugifier) {
		s.WithCustomReplacements(replacements)
	}
}

// CustomWordReplace registers whole-word replacements applied before folding.
func CustomWordReplace(replacements map[string]string) Option {
	return func(s *Slugifier) {
		s.WithCustomWordReplacements(replacements)
	}
}

// StripChars sets characters removed from the input before folding.
func StripChars(chars string) Option {
	return func(s *Slugifier) {
		s.stripChars = chars
	}
}

// MaxLength sets the maximum length of the generated slug in runes.
// Zero means no limit.
func MaxLength(n int) Option {
	return func(s *Slugifier) {
		if n >= 0 {
			s.maxLength = n
		}
	}
}

// WithSuffix adds a random alphanumeric suffix to reduce collision possibility.
// Example: "hello-world-x7g3k2" (with length=6)
func WithSuffix(length int) Option {
	return func(s *Slugifier) {
		if length >= 0 {
			s.suffixLength = length
		}
	}
}

// ReservedSlugs marks slugs that must never be produced as-is. A result equal
// to one of them (case-insensitive) gets a random suffix.
func ReservedSlugs(slugs ...string) Option {
	return func(s *Slugifier) {
		for _, r := range slugs {
			if r == "" {
				continue
			}
			if s.reserved == nil {
				s.reserved = make(map[string]struct{}, len(slugs))
			}
			s.reserved[strings.ToLower(r)] = struct{}{}
		}
	}
}

// WithLogger sets the logger used for configuration diagnostics.
// Nil is ignored; the default logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Slugifier) {
		if logger != nil {
			s.logger = logger
		}
	}
}

package slug

import (
	"context"
	"fmt"
	"log/slog"
)

const (
	maxUniqueAttempts  = 10
	uniqueSuffixLength = 6
)

// ExistsFunc reports whether slug is already taken, typically by querying storage.
type ExistsFunc func(ctx context.Context, slug string) (bool, error)

// Unique slugifies input with opts and makes the result unique using exists.
func Unique(ctx context.Context, input string, exists ExistsFunc, opts ...Option) (string, error) {
	return New(opts...).Unique(ctx, input, exists)
}

// Unique returns the slug of input if exists reports it free; otherwise it
// retries with random suffixes. A nil exists treats every slug as free.
// Retries carry a single suffix, at least uniqueSuffixLength long, even when
// the Slugifier already adds one.
func (s *Slugifier) Unique(ctx context.Context, input string, exists ExistsFunc) (string, error) {
	base := s.base(input)
	candidate := s.finish(base)
	if exists == nil && candidate != "" {
		return candidate, nil
	}

	suffixLen := max(s.suffixLength, uniqueSuffixLength)
	for range maxUniqueAttempts {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if candidate != "" {
			if exists == nil {
				return candidate, nil
			}
			taken, err := exists(ctx, candidate)
			if err != nil {
				return "", err
			}
			if !taken {
				return candidate, nil
			}
		}
		candidate = s.appendSuffix(base, suffixLen)
	}

	s.logger.WarnContext(ctx, "unique slug attempts exhausted",
		slog.String("base", base),
		slog.Int("attempts", maxUniqueAttempts),
	)
	return "", fmt.Errorf("%w: %q", ErrUniqueExhausted, base)
}

package slug

import "strings"

// Valid reports whether v is a slug under the separator and case policy set by
// opts: non-empty, only ASCII letters and digits between single separators,
// nothing leading or trailing.
func Valid(v string, opts ...Option) bool {
	return New(opts...).Valid(v)
}

// Valid reports whether v is a slug this Slugifier could have produced,
// ignoring length limits and suffixes.
func (s *Slugifier) Valid(v string) bool {
	if v == "" {
		return false
	}

	parts := []string{v}
	if s.separator != "" {
		parts = strings.Split(v, s.separator)
	}
	for _, part := range parts {
		if part == "" {
			return false
		}
		for i := 0; i < len(part); i++ {
			c := part[i]
			if !isAlnum(c) || (s.lowercase && c >= 'A' && c <= 'Z') {
				return false
			}
		}
	}
	return true
}

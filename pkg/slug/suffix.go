package slug

import (
	"crypto/rand"
	"unicode/utf8"
)

// reservedSuffixLength is the suffix length used to move a result off a reserved slug.
const reservedSuffixLength = 6

// appendSuffix joins slug and a random suffix of length n, shortening slug
// when both would not fit into the configured max length.
func (s *Slugifier) appendSuffix(slug string, n int) string {
	if s.maxLength > 0 && n > s.maxLength {
		n = s.maxLength
	}
	suffix := generateSuffix(n, s.lowercase)

	if s.maxLength > 0 {
		sepLen := utf8.RuneCountInString(s.separator)
		if utf8.RuneCountInString(slug)+sepLen+n > s.maxLength {
			room := s.maxLength - sepLen - n
			if room > 0 {
				slug = s.truncate(slug, room)
			} else {
				slug = ""
			}
		}
	}

	if slug == "" {
		return suffix
	}
	return slug + s.separator + suffix
}

// generateSuffix creates a random alphanumeric suffix of the specified length.
func generateSuffix(length int, lowercase bool) string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	const charsUpper = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	charset := chars
	if !lowercase {
		charset = charsUpper
	}

	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		for i := range b {
			b[i] = charset[i%len(charset)]
		}
		return string(b)
	}

	for i := range b {
		b[i] = charset[int(b[i])%len(charset)]
	}

	return string(b)
}

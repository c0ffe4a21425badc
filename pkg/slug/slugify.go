package slug

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	defaultSeparator    = "-"
	underscoreSeparator = "_"
)

// Slugifier turns arbitrary text into slugs using a fixed configuration.
//
// The With* methods mutate the receiver and return it so calls can be chained.
// Slugify only reads the configuration: concurrent Slugify calls are safe, but
// reconfiguring a Slugifier that other goroutines are using requires external
// synchronization.
type Slugifier struct {
	logger       *slog.Logger
	separator    string
	lowercase    bool
	custom       *Table
	words        *Table
	stripChars   string
	maxLength    int
	suffixLength int
	reserved     map[string]struct{}
}

// New creates a Slugifier with the default configuration ("-" separator,
// lowercase output, built-in transliteration only) and applies opts.
func New(opts ...Option) *Slugifier {
	s := &Slugifier{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		separator: defaultSeparator,
		lowercase: true,
		custom:    NewTable(),
		words:     NewTable(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Make creates a URL-safe slug from the input string.
func Make(s string, opts ...Option) string {
	return New(opts...).Slugify(s)
}

// WithSeparator sets the string placed between words.
// It panics if sep is not valid UTF-8.
func (s *Slugifier) WithSeparator(sep string) *Slugifier {
	if !utf8.ValidString(sep) {
		panic(fmt.Errorf("%w: %w: %q", ErrInvalidArgument, ErrInvalidSeparator, sep))
	}
	s.separator = sep
	return s
}

// WithLowerCase controls whether the output is lowercased.
func (s *Slugifier) WithLowerCase(enabled bool) *Slugifier {
	s.lowercase = enabled
	return s
}

// WithUnderscoreSeparator switches between "_" (true) and the default "-" (false).
func (s *Slugifier) WithUnderscoreSeparator(enabled bool) *Slugifier {
	if enabled {
		return s.WithSeparator(underscoreSeparator)
	}
	return s.WithSeparator(defaultSeparator)
}

// WithCustomReplacement registers a substring replacement that takes
// precedence over the built-in table. Registering the same pattern again
// overwrites the previous replacement.
// Input "+" is turned into a space before folding, so a pattern containing
// "+" never matches.
// It panics if pattern or replacement is not valid UTF-8.
func (s *Slugifier) WithCustomReplacement(pattern, replacement string) *Slugifier {
	mustValidEntry(pattern, replacement)
	s.warnNonASCII(pattern, replacement)
	if strings.Contains(pattern, "+") {
		s.logger.Warn("custom replacement pattern contains '+', it will never match",
			slog.String("pattern", pattern),
		)
	}
	s.custom.Set(pattern, replacement)
	return s
}

// WithCustomReplacements registers every entry of m as a custom replacement.
// Keys are registered in sorted order. It panics if m is nil.
func (s *Slugifier) WithCustomReplacements(m map[string]string) *Slugifier {
	if m == nil {
		panic(fmt.Errorf("%w: %w", ErrInvalidArgument, ErrNilReplacements))
	}
	for _, pattern := range slices.Sorted(maps.Keys(m)) {
		s.WithCustomReplacement(pattern, m[pattern])
	}
	return s
}

// WithCustomReplacementList registers entries in the given order.
func (s *Slugifier) WithCustomReplacementList(entries ...Replacement) *Slugifier {
	for _, e := range entries {
		s.WithCustomReplacement(e.Pattern, e.Replacement)
	}
	return s
}

// CustomReplacements returns the registered custom replacements in
// registration order.
func (s *Slugifier) CustomReplacements() []Replacement {
	return s.custom.Entries()
}

// WithCustomWordReplacement registers a whole-word replacement. Word rules run
// before character folding, are case-sensitive and only match complete words:
// a rule for "this" leaves "thistle" alone.
// It panics if word or replacement is not valid UTF-8.
func (s *Slugifier) WithCustomWordReplacement(word, replacement string) *Slugifier {
	mustValidEntry(word, replacement)
	s.warnNonASCII(word, replacement)
	s.words.Set(word, replacement)
	return s
}

// WithCustomWordReplacements registers every entry of m as a word replacement.
// Keys are registered in sorted order. It panics if m is nil.
func (s *Slugifier) WithCustomWordReplacements(m map[string]string) *Slugifier {
	if m == nil {
		panic(fmt.Errorf("%w: %w", ErrInvalidArgument, ErrNilReplacements))
	}
	for _, word := range slices.Sorted(maps.Keys(m)) {
		s.WithCustomWordReplacement(word, m[word])
	}
	return s
}

// WithCustomWordReplacementList registers word replacements in the given order.
func (s *Slugifier) WithCustomWordReplacementList(entries ...Replacement) *Slugifier {
	for _, e := range entries {
		s.WithCustomWordReplacement(e.Pattern, e.Replacement)
	}
	return s
}

// CustomWordReplacements returns the registered word replacements in
// registration order.
func (s *Slugifier) CustomWordReplacements() []Replacement {
	return s.words.Entries()
}

// WithReplacementSet registers both character and word rules from set.
func (s *Slugifier) WithReplacementSet(set ReplacementSet) *Slugifier {
	s.WithCustomReplacementList(set.Characters...)
	return s.WithCustomWordReplacementList(set.Words...)
}

// Separator returns the configured separator.
func (s *Slugifier) Separator() string {
	return s.separator
}

// LowerCase reports whether output is lowercased.
func (s *Slugifier) LowerCase() bool {
	return s.lowercase
}

// SlugifyPtr is Slugify for optional input: nil yields "".
func (s *Slugifier) SlugifyPtr(input *string) string {
	if input == nil {
		return ""
	}
	return s.Slugify(*input)
}

// Slugify converts input into a slug. It never fails: input without any
// foldable letters or digits yields "".
func (s *Slugifier) Slugify(input string) string {
	return s.finish(s.base(input))
}

// base runs the pipeline up to the length limit, without any suffix.
func (s *Slugifier) base(input string) string {
	if input == "" {
		return ""
	}

	text := norm.NFC.String(input)
	for _, w := range s.words.entries {
		text = replaceWord(text, w.Pattern, w.Replacement)
	}
	if s.stripChars != "" {
		text = strings.Map(func(r rune) rune {
			if strings.ContainsRune(s.stripChars, r) {
				return -1
			}
			return r
		}, text)
	}
	text = strings.ReplaceAll(text, "+", " ")

	text = s.fold(text)
	if s.lowercase {
		text = strings.ToLower(text)
	}

	return s.truncate(s.join(text), s.maxLength)
}

// fold replaces every table match, longest first, and reduces what is left to
// ASCII: compatibility decomposition splits off marks and anything still
// outside ASCII is dropped.
func (s *Slugifier) fold(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		if repl, n, ok := s.match(text[i:]); ok {
			b.WriteString(repl)
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		b.WriteString(text[i : i+size])
		i += size
	}

	out := b.String()
	if isASCII(out) {
		return out
	}

	t := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
	folded, _, err := transform.String(t, out)
	if err != nil {
		return stripNonASCII(out)
	}
	return folded
}

// match returns the longest custom or built-in rule at the start of text.
// Custom rules win ties.
func (s *Slugifier) match(text string) (string, int, bool) {
	repl, n, ok := s.custom.Match(text)
	if brepl, bn, bok := builtin.Match(text); bok && (!ok || bn > n) {
		return brepl, bn, true
	}
	return repl, n, ok
}

// join keeps ASCII letters and digits and turns every run of anything else
// into a single separator. Separators never lead or trail.
func (s *Slugifier) join(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	pending := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case isAlnum(c):
			if pending && b.Len() > 0 {
				b.WriteString(s.separator)
			}
			pending = false
			b.WriteByte(c)
		case c >= utf8.RuneSelf:
			// leftover bytes of ill-formed input are dropped without a boundary
		default:
			pending = true
		}
	}
	return b.String()
}

// finish applies reserved-slug protection and the random suffix.
// An empty result stays empty.
func (s *Slugifier) finish(result string) string {
	if result == "" {
		return ""
	}

	suffixLen := s.suffixLength
	if suffixLen == 0 && s.isReserved(result) {
		suffixLen = reservedSuffixLength
	}
	if suffixLen == 0 {
		return result
	}
	return s.appendSuffix(result, suffixLen)
}

func (s *Slugifier) isReserved(slug string) bool {
	if slug == "" || len(s.reserved) == 0 {
		return false
	}
	_, ok := s.reserved[strings.ToLower(slug)]
	return ok
}

// truncate cuts slug to limit runes without leaving a dangling separator.
func (s *Slugifier) truncate(slug string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(slug) <= limit {
		return slug
	}
	cut := string([]rune(slug)[:limit])
	return strings.TrimRightFunc(cut, func(r rune) bool {
		return r >= utf8.RuneSelf || !isAlnum(byte(r))
	})
}

func (s *Slugifier) warnNonASCII(pattern, replacement string) {
	if isASCII(replacement) {
		return
	}
	s.logger.Warn("custom replacement is not ASCII, it will be folded again",
		slog.String("pattern", pattern),
		slog.String("replacement", replacement),
	)
}

func validateEntry(pattern, replacement string) error {
	if !utf8.ValidString(pattern) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidArgument, ErrInvalidPattern, pattern)
	}
	if !utf8.ValidString(replacement) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidArgument, ErrInvalidReplacement, replacement)
	}
	return nil
}

func mustValidEntry(pattern, replacement string) {
	if err := validateEntry(pattern, replacement); err != nil {
		panic(err)
	}
}

// replaceWord replaces occurrences of word that are not glued to other
// letters, digits or marks.
func replaceWord(text, word, replacement string) string {
	if word == "" || !strings.Contains(text, word) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	i := 0
	for {
		j := strings.Index(text[i:], word)
		if j < 0 {
			break
		}
		start := i + j
		end := start + len(word)
		if wordBoundaryBefore(text, start) && wordBoundaryAfter(text, end) {
			b.WriteString(text[i:start])
			b.WriteString(replacement)
			i = end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		b.WriteString(text[i : start+size])
		i = start + size
	}
	b.WriteString(text[i:])
	return b.String()
}

func wordBoundaryBefore(text string, pos int) bool {
	if pos == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:pos])
	return !isWordRune(r)
}

func wordBoundaryAfter(text string, pos int) bool {
	if pos >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[pos:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func stripNonASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, s)
}

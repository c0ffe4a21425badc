// Package slug converts arbitrary human text into URL-safe slugs.
//
// Input in any script with a transliteration entry (accented Latin, German and
// Scandinavian letters, Polish, Russian, Ukrainian, Belarusian, Greek) is folded to
// ASCII, lowercased and split into words joined by a separator. Characters that
// cannot be folded are dropped.
//
// # Usage
//
//	import "github.com/dmitrymomot/slugify/pkg/slug"
//
//	// One-off slug with functional options
//	s := slug.Make("Hello World!")
//	// Result: "hello-world"
//
//	// Reusable, fluent configuration
//	sl := slug.New().
//		WithSeparator("_").
//		WithCustomReplacement("&", " and ").
//		WithCustomWordReplacement("leet", "1337")
//
//	sl.Slugify("Fish & Chips, leet edition")
//	// Result: "fish_and_chips_1337_edition"
//
// # Pipeline
//
// Slugify runs these passes in order:
//
//  1. Empty input returns "" immediately.
//  2. Whole-word replacements, in registration order.
//  3. "+" is treated as whitespace.
//  4. Folding: at each position the longest custom or built-in pattern is
//     replaced; the rest is reduced to ASCII through NFKD, and anything still
//     outside ASCII is dropped.
//  5. Lowercasing (default).
//  6. Every run of characters other than ASCII letters and digits becomes one
//     separator; no separator leads or trails.
//
// Custom replacements win over built-in entries for the same pattern, and a
// later registration of a pattern overwrites an earlier one.
//
// # Configuration Options
//
//   - Separator / WithSeparator: word separator (default: "-")
//   - Lowercase / WithLowerCase: lowercase output (default: true)
//   - CustomReplace / WithCustomReplacement(s): substring replacements
//   - CustomWordReplace / WithCustomWordReplacement(s): whole-word replacements
//   - StripChars: characters removed before folding
//   - MaxLength: maximum slug length in runes
//   - WithSuffix: random alphanumeric suffix
//   - ReservedSlugs: slugs that always get a suffix
//   - WithLogger: diagnostics logger
//
// Config, LoadConfig and NewFromConfig build a Slugifier from SLUG_* environment
// variables; LoadReplacementsFile reads custom rules from YAML.
//
// # Errors
//
// Slugify never fails. Invalid configuration values (a nil mapping, strings that
// are not valid UTF-8) make the fluent setters panic with an error wrapping
// ErrInvalidArgument; NewFromConfig and LoadReplacements return such errors instead.
//
// # Thread Safety
//
// Slugify only reads the Slugifier, so one instance can serve many goroutines.
// Mutating it while others call Slugify needs external synchronization.
package slug

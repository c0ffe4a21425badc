package slug

import "errors"

var (
	// ErrInvalidArgument is the umbrella error for configuration values rejected by setters.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNilReplacements is returned when a nil mapping is passed as custom replacements.
	ErrNilReplacements = errors.New("nil replacements mapping")

	// ErrInvalidPattern is returned when a replacement pattern is not valid UTF-8.
	ErrInvalidPattern = errors.New("replacement pattern is not valid UTF-8")

	// ErrInvalidReplacement is returned when a replacement value is not valid UTF-8.
	ErrInvalidReplacement = errors.New("replacement value is not valid UTF-8")

	// ErrInvalidSeparator is returned when a separator is not valid UTF-8.
	ErrInvalidSeparator = errors.New("separator is not valid UTF-8")

	// ErrParsingConfig is returned when environment variables cannot be parsed into Config.
	ErrParsingConfig = errors.New("failed to parse slug config")

	// ErrLoadingReplacements is returned when a replacement file cannot be read or parsed.
	ErrLoadingReplacements = errors.New("failed to load replacements")

	// ErrUniqueExhausted is returned when Unique runs out of attempts.
	ErrUniqueExhausted = errors.New("no unique slug found")
)

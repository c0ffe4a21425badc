package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/slugify/pkg/slug"
)

func TestValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    string
		opts     []slug.Option
		expected bool
	}{
		{name: "simple slug", value: "hello-world", expected: true},
		{name: "single word", value: "hello", expected: true},
		{name: "digits", value: "2024-review", expected: true},
		{name: "empty", value: "", expected: false},
		{name: "leading separator", value: "-hello", expected: false},
		{name: "trailing separator", value: "hello-", expected: false},
		{name: "double separator", value: "hello--world", expected: false},
		{name: "uppercase", value: "Hello-World", expected: false},
		{name: "uppercase allowed", value: "Hello-World", opts: []slug.Option{slug.Lowercase(false)}, expected: true},
		{name: "spaces", value: "hello world", expected: false},
		{name: "underscore with default separator", value: "hello_world", expected: false},
		{name: "underscore separator", value: "hello_world", opts: []slug.Option{slug.Separator("_")}, expected: true},
		{name: "non-ascii", value: "café", expected: false},
		{name: "empty separator", value: "helloworld", opts: []slug.Option{slug.Separator("")}, expected: true},
		{name: "multi-character separator", value: "a---b", opts: []slug.Option{slug.Separator("---")}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, slug.Valid(tt.value, tt.opts...))
		})
	}
}

func TestValid_SlugifyOutput(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Hello World",
		"Смысловые галлюцинации",
		"ÅÄÆÖØÜåäæöøüß",
		"  --Trim me--  ",
	}

	for _, sep := range []string{"-", "_", "+", "."} {
		s := slug.New().WithSeparator(sep)
		for _, input := range inputs {
			assert.True(t, s.Valid(s.Slugify(input)), "separator %q input %q", sep, input)
		}
	}
}

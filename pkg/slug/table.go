package slug

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Replacement is a single substitution rule: every occurrence of Pattern
// is replaced with Replacement.
type Replacement struct {
	Pattern     string
	Replacement string
}

// Table is an ordered set of replacement rules with longest-match lookup.
// Registering an existing pattern again overwrites its replacement but keeps
// its original position. A Table is not safe for concurrent mutation.
type Table struct {
	entries []Replacement
	index   map[string]int
	root    *trieNode
}

type trieNode struct {
	children    map[rune]*trieNode
	replacement string
	terminal    bool
}

// NewTable builds a table from entries. Later entries override earlier ones
// with the same pattern.
func NewTable(entries ...Replacement) *Table {
	t := &Table{
		entries: make([]Replacement, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
		root:    &trieNode{},
	}
	for _, e := range entries {
		t.Set(e.Pattern, e.Replacement)
	}
	return t
}

// Set inserts or overwrites a rule. Patterns and replacements are stored in NFC
// so that composed and decomposed input meet the same key.
func (t *Table) Set(pattern, replacement string) {
	pattern = norm.NFC.String(pattern)
	replacement = norm.NFC.String(replacement)

	if i, ok := t.index[pattern]; ok {
		t.entries[i].Replacement = replacement
	} else {
		t.index[pattern] = len(t.entries)
		t.entries = append(t.entries, Replacement{Pattern: pattern, Replacement: replacement})
	}

	// Empty pattern is kept in the listing but never reaches the trie.
	if pattern == "" {
		return
	}

	n := t.root
	for _, r := range pattern {
		child, ok := n.children[r]
		if !ok {
			if n.children == nil {
				n.children = make(map[rune]*trieNode)
			}
			child = &trieNode{}
			n.children[r] = child
		}
		n = child
	}
	n.terminal = true
	n.replacement = replacement
}

// Get returns the replacement registered for pattern.
func (t *Table) Get(pattern string) (string, bool) {
	i, ok := t.index[norm.NFC.String(pattern)]
	if !ok {
		return "", false
	}
	return t.entries[i].Replacement, true
}

// Entries returns a copy of the rules in registration order.
func (t *Table) Entries() []Replacement {
	out := make([]Replacement, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of distinct patterns.
func (t *Table) Len() int {
	return len(t.entries)
}

// Clone returns an independent copy of the table.
func (t *Table) Clone() *Table {
	return NewTable(t.entries...)
}

// Match finds the longest pattern that is a prefix of s. It returns the
// replacement and the byte length of the matched span.
func (t *Table) Match(s string) (replacement string, size int, ok bool) {
	n := t.root
	for i := 0; i < len(s); {
		r, w := utf8.DecodeRuneInString(s[i:])
		next, found := n.children[r]
		if !found {
			break
		}
		n = next
		i += w
		if n.terminal {
			replacement, size, ok = n.replacement, i, true
		}
	}
	return replacement, size, ok
}

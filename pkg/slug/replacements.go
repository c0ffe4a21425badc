package slug

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ReplacementSet is a group of custom rules loaded from a file.
type ReplacementSet struct {
	Characters []Replacement
	Words      []Replacement
}

// replacementsDocument mirrors the YAML layout. Mappings are kept as nodes so
// the document order survives decoding.
type replacementsDocument struct {
	Replacements yaml.Node `yaml:"replacements"`
	Words        yaml.Node `yaml:"words"`
}

// LoadReplacements parses a YAML document of the form
//
//	replacements:
//	  "&": " and "
//	words:
//	  leet: "1337"
//
// Entries keep the order in which they appear in the document. An empty
// document yields an empty set.
func LoadReplacements(r io.Reader) (ReplacementSet, error) {
	var doc replacementsDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return ReplacementSet{}, nil
		}
		return ReplacementSet{}, errors.Join(ErrLoadingReplacements, err)
	}

	chars, err := decodeReplacements("replacements", &doc.Replacements)
	if err != nil {
		return ReplacementSet{}, err
	}
	words, err := decodeReplacements("words", &doc.Words)
	if err != nil {
		return ReplacementSet{}, err
	}

	return ReplacementSet{Characters: chars, Words: words}, nil
}

// LoadReplacementsFile reads a YAML replacement file from path.
func LoadReplacementsFile(path string) (ReplacementSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return ReplacementSet{}, errors.Join(ErrLoadingReplacements, err)
	}
	defer f.Close()

	return LoadReplacements(f)
}

func decodeReplacements(section string, node *yaml.Node) ([]Replacement, error) {
	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, nil
		}
	case yaml.MappingNode:
		out := make([]Replacement, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i], node.Content[i+1]
			if key.Kind != yaml.ScalarNode || key.Tag == "!!null" {
				return nil, fmt.Errorf("%w: %s line %d: %w", ErrLoadingReplacements, section, key.Line, ErrInvalidPattern)
			}
			if val.Kind != yaml.ScalarNode || val.Tag == "!!null" {
				return nil, fmt.Errorf("%w: %s line %d: %w", ErrLoadingReplacements, section, val.Line, ErrInvalidReplacement)
			}
			if err := validateEntry(key.Value, val.Value); err != nil {
				return nil, errors.Join(ErrLoadingReplacements, err)
			}
			out = append(out, Replacement{Pattern: key.Value, Replacement: val.Value})
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %s must be a mapping", ErrLoadingReplacements, section)
}

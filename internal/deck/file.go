package deck

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseDeckFileYAML parses a deck list document:
//
//	name: Green/Black Example
//	heroes:
//	  - {id: 4005, turn: 2}
//	cards:
//	  - {id: 3000, count: 2}
//
// A name stored as non-UTF-8 bytes carries "name_encoding: latin1".
func ParseDeckFileYAML(data []byte) (Deck, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Deck{}, fmt.Errorf("parse deck yaml: %w", err)
	}
	d, err := doc.RawDeck()
	if err != nil {
		return Deck{}, fmt.Errorf("parse deck yaml: %w", err)
	}
	return d, nil
}

// LoadDeckFile reads and parses a YAML deck list from path.
func LoadDeckFile(path string) (Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, fmt.Errorf("loading %s: %w", path, err)
	}
	d, err := ParseDeckFileYAML(data)
	if err != nil {
		return Deck{}, fmt.Errorf("loading %s: %w", path, err)
	}
	return d, nil
}

// MarshalDeckFileYAML is the inverse of ParseDeckFileYAML.
func MarshalDeckFileYAML(d Deck) ([]byte, error) {
	return yaml.Marshal(NewDocument(d))
}

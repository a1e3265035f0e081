package deck

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// NameEncodingLatin1 marks a name whose stored bytes are not UTF-8 and were
// mapped one byte per character.
const NameEncodingLatin1 = "latin1"

// NameText returns the stored name as UTF-8 text together with the encoding
// it was mapped from. Names that are already valid UTF-8 come back
// unchanged with an empty encoding; anything else is read as Latin-1.
func NameText(raw string) (text, encoding string) {
	if utf8.ValidString(raw) {
		return raw, ""
	}
	// ISO 8859-1 maps every byte, so decoding cannot fail.
	text, _ = charmap.ISO8859_1.NewDecoder().String(raw)
	return text, NameEncodingLatin1
}

// NameFromText is the inverse of NameText.
func NameFromText(text, encoding string) (string, error) {
	switch encoding {
	case "":
		return text, nil
	case NameEncodingLatin1:
		raw, err := charmap.ISO8859_1.NewEncoder().String(text)
		if err != nil {
			return "", fmt.Errorf("name %q is not representable in latin1: %w", text, err)
		}
		return raw, nil
	default:
		return "", fmt.Errorf("unknown name encoding %q", encoding)
	}
}

// Document is a Deck as exchanged in JSON and YAML, where the name has to be
// text. NameEncoding is set when the stored name bytes are not UTF-8.
type Document struct {
	Deck         `yaml:",inline"`
	NameEncoding string `json:"name_encoding,omitempty" yaml:"name_encoding,omitempty"`
}

// NewDocument converts d for text serialization.
func NewDocument(d Deck) Document {
	doc := Document{Deck: d}
	doc.Name, doc.NameEncoding = NameText(d.Name)
	return doc
}

// RawDeck returns the deck with its name mapped back to the stored bytes.
func (doc Document) RawDeck() (Deck, error) {
	d := doc.Deck
	name, err := NameFromText(doc.Name, doc.NameEncoding)
	if err != nil {
		return Deck{}, err
	}
	d.Name = name
	return d, nil
}

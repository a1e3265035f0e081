// Package deckcode converts between deck code strings such as
// "ADCJWkTZX05uwGDCRV4XQGy3QGLmqUBg4GQJgGLGgO7AaABR3JlZW4vQmxhY2sgRXhhbXBsZQ__"
// and deck.Deck values.
//
// A code is the prefix "ADC" followed by URL-safe base64 of a buffer laid
// out as
//
//	byte 0     version (high nibble), continuation bit, hero count low 3 bits
//	byte 1     checksum: sum of the card section mod 256
//	byte 2     name length in bytes (absent in version 1)
//	...        hero count overflow groups, heroes, cards  (the card section)
//	...        name bytes
//
// Heroes and cards are written as a header byte (2 bits count-1, continuation
// bit, 5 delta bits) followed by 7-bit delta groups and, for counts above 3,
// the count as its own varint. IDs are deltas against the previous entry in
// the same list, so each list must be in ascending ID order.
//
// The decoded name is returned exactly as stored; escaping it for HTML or
// any other output is up to the caller.
package deckcode

import "github.com/youruser/deckcode/internal/deck"

// DefaultMaxCodeLength bounds accepted deck code strings. It is far above
// any real deck: a 255 byte name plus several hundred entries.
const DefaultMaxCodeLength = 4096

// Codec decodes and encodes deck codes. The zero value is not usable; call
// New. A Codec is immutable and safe for concurrent use.
type Codec struct {
	acceptLegacy  bool
	maxCodeLength int
}

// Option configures a Codec.
type Option func(*Codec)

// WithLegacy controls whether version 1 codes are accepted. They are by
// default.
func WithLegacy(accept bool) Option {
	return func(c *Codec) { c.acceptLegacy = accept }
}

// WithMaxCodeLength bounds the length of accepted code strings. n <= 0
// removes the bound.
func WithMaxCodeLength(n int) Option {
	return func(c *Codec) { c.maxCodeLength = n }
}

// New returns a Codec with the given options applied over the defaults.
func New(opts ...Option) *Codec {
	c := &Codec{acceptLegacy: true, maxCodeLength: DefaultMaxCodeLength}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCodec = New()

// Decode parses a deck code string.
func (c *Codec) Decode(code string) (deck.Deck, error) {
	buf, err := c.RawBytes(code)
	if err != nil {
		return deck.Deck{}, err
	}
	return c.DecodeBytes(buf)
}

// DecodeBytes parses a raw deck buffer as returned by RawBytes.
func (c *Codec) DecodeBytes(buf []byte) (deck.Deck, error) {
	return decodeDeck(buf, c.acceptLegacy)
}

// RawBytes strips the prefix and base64 layer without parsing the buffer.
func (c *Codec) RawBytes(code string) ([]byte, error) {
	return unwrap(code, c.maxCodeLength)
}

// Encode builds the deck code for d. Heroes and cards must each be in
// ascending ID order (see deck.Deck.Sorted), counts and turns must be
// non-zero and the name at most MaxNameLength bytes.
func (c *Codec) Encode(d deck.Deck) (string, error) {
	buf, err := c.EncodeBytes(d)
	if err != nil {
		return "", err
	}
	return wrap(buf), nil
}

// EncodeBytes builds the raw deck buffer for d.
func (c *Codec) EncodeBytes(d deck.Deck) ([]byte, error) {
	return encodeDeck(d)
}

// Decode parses code with the default Codec.
func Decode(code string) (deck.Deck, error) { return defaultCodec.Decode(code) }

// Encode builds a deck code with the default Codec.
func Encode(d deck.Deck) (string, error) { return defaultCodec.Encode(d) }

// RawBytes unwraps code with the default Codec.
func RawBytes(code string) ([]byte, error) { return defaultCodec.RawBytes(code) }

// BufferVersion returns the wire version recorded in a raw buffer.
func BufferVersion(buf []byte) (int, bool) {
	if len(buf) == 0 {
		return 0, false
	}
	return int(buf[0] >> versionShift), true
}

package deckcode

import (
	"fmt"

	"github.com/youruser/deckcode/internal/deck"
)

const (
	// Version is the wire format version written by the encoder.
	Version = 2
	// LegacyVersion predates the name field and is accepted on decode
	// unless disabled.
	LegacyVersion = Version - 1

	// MaxNameLength is the longest name, in bytes, the length byte can carry.
	MaxNameLength = 255

	versionShift   = 4
	heroCountBits  = 3
	headerSize     = 3
	legacyHeadSize = 2
)

// decodeDeck parses a raw deck buffer. It returns either a complete deck or
// an error, never a partial deck.
func decodeDeck(buf []byte, acceptLegacy bool) (deck.Deck, error) {
	if len(buf) < legacyHeadSize {
		return deck.Deck{}, fmt.Errorf("%w: %d byte header", ErrTruncated, len(buf))
	}

	versionAndHeroes := buf[0]
	version := int(versionAndHeroes >> versionShift)
	switch {
	case version == Version:
	case version == LegacyVersion && acceptLegacy:
	default:
		return deck.Deck{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	checksum := buf[1]
	r := &reader{buf: buf, pos: legacyHeadSize}
	nameLength := 0
	if version > LegacyVersion {
		b, err := r.readByte(len(buf))
		if err != nil {
			return deck.Deck{}, err
		}
		nameLength = int(b)
	}

	// The name length decides where the card section ends; nothing in the
	// card section may be read from the name bytes.
	cardEnd := len(buf) - nameLength
	if cardEnd < r.pos {
		return deck.Deck{}, fmt.Errorf("%w: name of %d bytes, only %d after header", ErrTruncated, nameLength, len(buf)-r.pos)
	}
	if sum := computeChecksum(buf[r.pos:cardEnd]); sum != checksum {
		return deck.Deck{}, fmt.Errorf("%w: stored %#02x, computed %#02x", ErrChecksumMismatch, checksum, sum)
	}

	heroCount, err := r.readVarUint32(versionAndHeroes, heroCountBits, cardEnd)
	if err != nil {
		return deck.Deck{}, fmt.Errorf("hero count: %w", err)
	}

	var out deck.Deck
	// every hero takes at least one byte
	if heroCount > 0 {
		out.Heroes = make([]deck.Hero, 0, min(int(heroCount), cardEnd-r.pos))
	}
	var base uint32
	for i := uint32(0); i < heroCount; i++ {
		e, err := r.readEntry(base, cardEnd)
		if err != nil {
			return deck.Deck{}, fmt.Errorf("hero %d: %w", i, err)
		}
		base = e.id
		out.Heroes = append(out.Heroes, deck.Hero{ID: e.id, Turn: e.count})
	}

	base = 0
	for r.pos < cardEnd {
		e, err := r.readEntry(base, cardEnd)
		if err != nil {
			return deck.Deck{}, fmt.Errorf("card %d: %w", len(out.Cards), err)
		}
		base = e.id
		out.Cards = append(out.Cards, deck.Card{ID: e.id, Count: e.count})
	}

	if nameLength > 0 {
		out.Name = string(buf[cardEnd:])
	}
	return out, nil
}

// encodeDeck produces the raw buffer for d at the current version. Heroes
// and cards must each be in ascending ID order.
func encodeDeck(d deck.Deck) ([]byte, error) {
	if len(d.Name) > MaxNameLength {
		return nil, fmt.Errorf("%w: %d bytes, max %d", ErrNameTooLong, len(d.Name), MaxNameLength)
	}
	if uint64(len(d.Heroes)) > uint64(^uint32(0)) {
		return nil, fmt.Errorf("%w: %d heroes", ErrOverflow, len(d.Heroes))
	}

	// The hero count shares byte 0 with the version; its overflow groups
	// sit after the name length byte, inside the checksummed section.
	count := &writer{}
	count.putVarUint32(Version<<versionShift, heroCountBits, uint32(len(d.Heroes)))

	w := &writer{buf: make([]byte, 0, headerSize+len(count.buf)+2*(len(d.Heroes)+len(d.Cards))+len(d.Name))}
	w.buf = append(w.buf, count.buf[0], 0, byte(len(d.Name)))
	w.buf = append(w.buf, count.buf[1:]...)

	var base uint32
	for i, h := range d.Heroes {
		if err := w.putEntry(base, entry{id: h.ID, count: h.Turn}); err != nil {
			return nil, fmt.Errorf("hero %d: %w", i, err)
		}
		base = h.ID
	}
	base = 0
	for i, c := range d.Cards {
		if err := w.putEntry(base, entry{id: c.ID, count: c.Count}); err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		base = c.ID
	}

	w.buf[1] = computeChecksum(w.buf[headerSize:])
	w.buf = append(w.buf, d.Name...)
	return w.buf, nil
}

func computeChecksum(section []byte) byte {
	var sum byte
	for _, b := range section {
		sum += b
	}
	return sum
}

package deckcode

import "fmt"

// Entry header layout: two bits of count-1 (0b11 means the count follows
// the delta as its own varint), one continuation bit, five delta bits.
const (
	entryCountShift = 6
	entryExtended   = 0x03
	entryInlineMax  = 3
	entryDeltaBits  = 5
)

// entry is one (id, count) pair. Heroes use the same layout with the turn
// in place of the count.
type entry struct {
	id    uint32
	count uint32
}

// readEntry decodes the entry at the cursor. base is the ID of the
// previous entry in the same list, 0 for the first.
func (r *reader) readEntry(base uint32, end int) (entry, error) {
	header, err := r.readByte(end)
	if err != nil {
		return entry{}, err
	}

	delta, err := r.readVarUint32(header, entryDeltaBits, end)
	if err != nil {
		return entry{}, err
	}
	id := base + delta
	if id < base {
		return entry{}, fmt.Errorf("%w: id %d + delta %d", ErrOverflow, base, delta)
	}

	countBits := header >> entryCountShift
	if countBits != entryExtended {
		return entry{id: id, count: uint32(countBits) + 1}, nil
	}

	count, err := r.readVarUint32(0, 0, end)
	if err != nil {
		return entry{}, err
	}
	if count == 0 {
		return entry{}, fmt.Errorf("%w: id %d", ErrZeroCount, id)
	}
	return entry{id: id, count: count}, nil
}

// putEntry encodes e relative to base, the previous ID in the same list.
func (w *writer) putEntry(base uint32, e entry) error {
	if e.id < base {
		return fmt.Errorf("%w: id %d follows %d", ErrEntryOrder, e.id, base)
	}
	if e.count == 0 {
		return fmt.Errorf("%w: id %d", ErrZeroCount, e.id)
	}

	delta := e.id - base
	if e.count <= entryInlineMax {
		w.putVarUint32(byte(e.count-1)<<entryCountShift, entryDeltaBits, delta)
		return nil
	}
	w.putVarUint32(entryExtended<<entryCountShift, entryDeltaBits, delta)
	w.putVarUint32(0, 0, e.count)
	return nil
}

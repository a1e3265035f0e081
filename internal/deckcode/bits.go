package deckcode

import "fmt"

// reader is the cursor for a single decode call.
type reader struct {
	buf []byte
	pos int
}

func (r *reader) readByte(end int) (byte, error) {
	if r.pos >= end {
		return 0, fmt.Errorf("%w: need byte %d, have %d", ErrTruncated, r.pos, end)
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// readVarUint32 decodes a value whose low baseBits bits live in seed, with
// bit baseBits of seed flagging that 7-bit groups follow. With baseBits == 0
// there is no seed and at least one group is read. No byte at or past end
// is consumed.
func (r *reader) readVarUint32(seed byte, baseBits uint, end int) (uint32, error) {
	var out uint32
	shift := uint(0)
	if baseBits > 0 {
		cont := byte(1) << baseBits
		out = uint32(seed & (cont - 1))
		if seed&cont == 0 {
			return out, nil
		}
		shift = baseBits
	}

	for {
		b, err := r.readByte(end)
		if err != nil {
			return 0, err
		}
		group := uint32(b & 0x7f)
		if group != 0 && (shift >= 32 || group>>(32-shift) != 0) {
			return 0, fmt.Errorf("%w: at byte %d", ErrOverflow, r.pos-1)
		}
		if shift < 32 {
			out |= group << shift
		}
		if b&0x80 == 0 {
			return out, nil
		}
		shift += 7
	}
}

// writer accumulates an encoded buffer.
type writer struct {
	buf []byte
}

// putVarUint32 is the inverse of readVarUint32. When baseBits > 0 the first
// byte written is header with the low baseBits bits of v and the
// continuation flag OR'd in; header must not use those bits.
func (w *writer) putVarUint32(header byte, baseBits uint, v uint32) {
	if baseBits > 0 {
		b := header | byte(v&(1<<baseBits-1))
		v >>= baseBits
		if v != 0 {
			b |= 1 << baseBits
		}
		w.buf = append(w.buf, b)
		if v == 0 {
			return
		}
	}

	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		w.buf = append(w.buf, b)
		if v == 0 {
			return
		}
	}
}

package imagepkg

import "image/color"

// hash32 mixes an ID into a well-distributed 32-bit value so neighbouring
// card IDs get unrelated colors.
func hash32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}

// idColor returns a stable mid-tone color for a card or hero ID.
func idColor(id uint32) color.NRGBA {
	h := hash32(id)
	// keep each channel in 0x40..0xbf so tiles stand out from the background
	return color.NRGBA{
		R: 0x40 + uint8(h&0x7f),
		G: 0x40 + uint8(h>>8&0x7f),
		B: 0x40 + uint8(h>>16&0x7f),
		A: 0xff,
	}
}

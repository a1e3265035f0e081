package deckcode

import "errors"

var (
	ErrMalformedPrefix    = errors.New("deck code is missing the " + Prefix + " prefix")
	ErrInvalidBase64      = errors.New("deck code is not valid base64")
	ErrTooLarge           = errors.New("deck code is too large")
	ErrUnsupportedVersion = errors.New("unsupported deck code version")
	ErrChecksumMismatch   = errors.New("deck code checksum mismatch")
	ErrTruncated          = errors.New("deck code is truncated")
	ErrOverflow           = errors.New("deck code value overflows 32 bits")
	// ErrZeroCount is stricter than older decoders, which accepted an
	// extended count of zero and produced a zero-copy entry. Such a code
	// cannot come from a valid deck, so it is rejected on decode as well as
	// on encode.
	ErrZeroCount   = errors.New("card count or hero turn is zero")
	ErrEntryOrder  = errors.New("deck entries are not in ascending ID order")
	ErrNameTooLong = errors.New("deck name is too long")
)

var kinds = []struct {
	err  error
	kind string
}{
	{ErrMalformedPrefix, "malformed_prefix"},
	{ErrInvalidBase64, "invalid_base64"},
	{ErrTooLarge, "too_large"},
	{ErrUnsupportedVersion, "unsupported_version"},
	{ErrChecksumMismatch, "checksum_mismatch"},
	{ErrTruncated, "truncated_buffer"},
	{ErrOverflow, "overflow"},
	{ErrZeroCount, "zero_count"},
	{ErrEntryOrder, "invalid_entry_ordering"},
	{ErrNameTooLong, "name_too_long"},
}

// Kind returns a stable identifier for the codec error wrapped by err, or
// "" when err is nil or not a codec error.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return ""
}

// IsTransportError reports whether err was raised while unwrapping the
// text form, before any structural parsing.
func IsTransportError(err error) bool {
	return errors.Is(err, ErrMalformedPrefix) || errors.Is(err, ErrInvalidBase64) || errors.Is(err, ErrTooLarge)
}

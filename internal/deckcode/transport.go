package deckcode

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Prefix starts every deck code.
const Prefix = "ADC"

var (
	toStdAlphabet = strings.NewReplacer("-", "/", "_", "=")
	toURLAlphabet = strings.NewReplacer("/", "-", "=", "_")
)

// unwrap strips the prefix and base64 layer from code. maxLength bounds the
// input before anything is decoded; 0 means no bound.
func unwrap(code string, maxLength int) ([]byte, error) {
	if maxLength > 0 && len(code) > maxLength {
		return nil, fmt.Errorf("%w: %d characters, max %d", ErrTooLarge, len(code), maxLength)
	}
	if !strings.HasPrefix(code, Prefix) {
		return nil, ErrMalformedPrefix
	}

	payload := toStdAlphabet.Replace(strings.TrimPrefix(code, Prefix))
	enc := base64.StdEncoding
	// codes pasted without their trailing "_" padding still decode
	if len(payload)%4 != 0 && !strings.HasSuffix(payload, "=") {
		enc = base64.RawStdEncoding
	}
	buf, err := enc.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	return buf, nil
}

// wrap is the inverse of unwrap.
func wrap(buf []byte) string {
	return Prefix + toURLAlphabet.Replace(base64.StdEncoding.EncodeToString(buf))
}

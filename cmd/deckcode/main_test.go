package main

import (
	"bytes"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/deckcode/internal/config"
	"github.com/youruser/deckcode/internal/deck"
	"github.com/youruser/deckcode/internal/deckcode"
)

const sampleCode = "ADCJWkTZX05uwGDCRV4XQGy3QGLmqUBg4GQJgGLGgO7AaABR3JlZW4vQmxhY2sgRXhhbXBsZQ__"

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), err
}

func TestRunRequiresSubcommand(t *testing.T) {
	_, err := runCLI(t, "")
	require.Error(t, err)

	_, err = runCLI(t, "", "frobnicate")
	require.ErrorContains(t, err, "unknown subcommand")

	out, err := runCLI(t, "", "help")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage: deckcode")
}

func TestDecode(t *testing.T) {
	out, err := runCLI(t, "", "decode", sampleCode)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Green/Black Example\nT2 4005\n"))
	assert.Contains(t, out, "\n3x10354\n")
}

func TestDecodeJSON(t *testing.T) {
	out, err := runCLI(t, "", "decode", "--json", "ADCIEUARQ__")
	require.NoError(t, err)

	var d deck.Deck
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, []deck.Card{{ID: 5, Count: 2}}, d.Cards)
}

func TestDecodeErrors(t *testing.T) {
	_, err := runCLI(t, "", "decode", "nope")
	require.ErrorIs(t, err, deckcode.ErrMalformedPrefix)

	_, err = runCLI(t, "", "decode", "--no-legacy", "ADCEUoDRw__")
	require.ErrorIs(t, err, deckcode.ErrUnsupportedVersion)

	_, err = runCLI(t, "", "decode", "--max-length", "10", sampleCode)
	require.ErrorIs(t, err, deckcode.ErrTooLarge)

	_, err = runCLI(t, "", "decode")
	require.ErrorContains(t, err, "expected 1 argument")
}

func TestEncodeFromStdin(t *testing.T) {
	doc := "cards:\n  - {id: 5, count: 2}\n"
	out, err := runCLI(t, doc, "encode", "-")
	require.NoError(t, err)
	assert.Equal(t, "ADCIEUARQ__\n", out)
}

func TestEncodeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	doc := "name: unsorted\ncards:\n  - {id: 9, count: 1}\n  - {id: 5, count: 2}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := runCLI(t, "", "encode", path)
	require.ErrorIs(t, err, deckcode.ErrEntryOrder)
	assert.ErrorContains(t, err, "--sort")

	out, err := runCLI(t, "", "encode", "--sort", path)
	require.NoError(t, err)

	d, err := deckcode.Decode(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "unsorted", d.Name)
	assert.Equal(t, []deck.Card{{ID: 5, Count: 2}, {ID: 9, Count: 1}}, d.Cards)
}

func TestRaw(t *testing.T) {
	out, err := runCLI(t, "", "raw", "ADCIEUARQ__")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "version 2, 4 bytes\n"))
	assert.Contains(t, out, "20 45 00 45")
}

func TestQRAndImage(t *testing.T) {
	dir := t.TempDir()

	qrPath := filepath.Join(dir, "nested", "qr.png")
	out, err := runCLI(t, "", "qr", sampleCode, "-o", qrPath, "--size", "300")
	require.NoError(t, err)
	assert.Equal(t, qrPath+"\n", out)
	assertPNG(t, qrPath, 300)

	imgPath := filepath.Join(dir, "share.png")
	_, err = runCLI(t, "", "image", sampleCode, "--output", imgPath)
	require.NoError(t, err)
	assertPNG(t, imgPath, 1600)

	_, err = runCLI(t, "", "qr", sampleCode)
	require.ErrorContains(t, err, "--output")

	_, err = runCLI(t, "", "qr", "ADCMAAA", "-o", qrPath)
	require.ErrorIs(t, err, deckcode.ErrUnsupportedVersion)
}

func assertPNG(t *testing.T, path string, width int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, width, img.Bounds().Dx())
}

func TestQRSizeDefaultsToConfig(t *testing.T) {
	dir := t.TempDir()

	qrPath := filepath.Join(dir, "qr.png")
	_, err := runCLI(t, "", "qr", sampleCode, "-o", qrPath)
	require.NoError(t, err)
	assertPNG(t, qrPath, config.DefaultQRSize)

	imgPath := filepath.Join(dir, "share.png")
	_, err = runCLI(t, "", "image", sampleCode, "-o", imgPath, "--size", "128")
	require.NoError(t, err)
	assertPNG(t, imgPath, 1600)
}

func TestDecodeJSONLatin1Name(t *testing.T) {
	out, err := runCLI(t, "", "decode", "--json", "ADCIEUERUNhZuk_")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Café"`)
	assert.Contains(t, out, `"name_encoding": "latin1"`)

	var doc deck.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	d, err := doc.RawDeck()
	require.NoError(t, err)
	code, err := deckcode.Encode(d)
	require.NoError(t, err)
	assert.Equal(t, "ADCIEUERUNhZuk_", code)
}

func TestEncodeLatin1NameFromYAML(t *testing.T) {
	doc := "name: Café\nname_encoding: latin1\ncards:\n  - {id: 5, count: 2}\n"
	out, err := runCLI(t, doc, "encode", "-")
	require.NoError(t, err)
	assert.Equal(t, "ADCIEUERUNhZuk_\n", out)
}

package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/youruser/deckcode/internal/config"
	"github.com/youruser/deckcode/internal/deck"
	"github.com/youruser/deckcode/internal/deckcode"
	imagepkg "github.com/youruser/deckcode/internal/image"
	"github.com/youruser/deckcode/internal/util"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) < 1 {
		printUsage(stderr)
		return fmt.Errorf("subcommand required")
	}

	switch args[0] {
	case "decode":
		return runDecode(args[1:], stdout)
	case "encode":
		return runEncode(args[1:], stdin, stdout)
	case "raw":
		return runRaw(args[1:], stdout)
	case "qr":
		return runQR(args[1:], stdout)
	case "image":
		return runImage(args[1:], stdout)
	case "-h", "--help", "help":
		printUsage(stdout)
		return nil
	default:
		printUsage(stderr)
		return fmt.Errorf("unknown subcommand: %q", args[0])
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: deckcode <subcommand> [flags]

Subcommands:
  decode <code>        Print the deck behind a deck code
  encode <deck.yaml>   Print the deck code for a YAML deck list ("-" reads stdin)
  raw <code>           Dump the bytes behind a deck code without parsing them
  qr <code> -o FILE    Write a QR code PNG for a deck code
  image <code> -o FILE Write a share image PNG for a deck code

Run 'deckcode <subcommand> --help' for subcommand flags.
`)
}

// codecFlags are shared by every subcommand that reads codes.
type codecFlags struct {
	noLegacy  bool
	maxLength int
}

func (f *codecFlags) add(fs *pflag.FlagSet) {
	fs.BoolVar(&f.noLegacy, "no-legacy", false, "reject version 1 deck codes")
	fs.IntVar(&f.maxLength, "max-length", deckcode.DefaultMaxCodeLength, "longest deck code accepted (0 for no limit)")
}

func (f *codecFlags) codec() *deckcode.Codec {
	return deckcode.New(deckcode.WithLegacy(!f.noLegacy), deckcode.WithMaxCodeLength(f.maxLength))
}

// parse parses args and returns the positional arguments, which must number
// exactly want.
func parse(fs *pflag.FlagSet, args []string, want int) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != want {
		return nil, fmt.Errorf("%s: expected %d argument(s), got %d", fs.Name(), want, fs.NArg())
	}
	return fs.Args(), nil
}

func runDecode(args []string, stdout io.Writer) error {
	var cf codecFlags
	var asJSON bool
	fs := pflag.NewFlagSet("decode", pflag.ContinueOnError)
	cf.add(fs)
	fs.BoolVar(&asJSON, "json", false, "print the deck as JSON")
	rest, err := parse(fs, args, 1)
	if err != nil {
		return err
	}

	d, err := cf.codec().Decode(rest[0])
	if err != nil {
		return err
	}
	if asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(deck.NewDocument(d))
	}
	_, err = fmt.Fprintln(stdout, deck.ExportDeckText(d))
	return err
}

func runEncode(args []string, stdin io.Reader, stdout io.Writer) error {
	var sortEntries bool
	fs := pflag.NewFlagSet("encode", pflag.ContinueOnError)
	fs.BoolVar(&sortEntries, "sort", false, "sort heroes and cards by ID before encoding")
	rest, err := parse(fs, args, 1)
	if err != nil {
		return err
	}

	var d deck.Deck
	if rest[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		if d, err = deck.ParseDeckFileYAML(data); err != nil {
			return err
		}
	} else if d, err = deck.LoadDeckFile(rest[0]); err != nil {
		return err
	}

	if sortEntries {
		d = d.Sorted()
	}
	code, err := deckcode.Encode(d)
	if err != nil {
		if errors.Is(err, deckcode.ErrEntryOrder) {
			return fmt.Errorf("%w (use --sort)", err)
		}
		return err
	}
	_, err = fmt.Fprintln(stdout, code)
	return err
}

func runRaw(args []string, stdout io.Writer) error {
	var cf codecFlags
	fs := pflag.NewFlagSet("raw", pflag.ContinueOnError)
	cf.add(fs)
	rest, err := parse(fs, args, 1)
	if err != nil {
		return err
	}

	buf, err := cf.codec().RawBytes(rest[0])
	if err != nil {
		return err
	}
	if version, ok := deckcode.BufferVersion(buf); ok {
		fmt.Fprintf(stdout, "version %d, %d bytes\n", version, len(buf))
	}
	_, err = fmt.Fprint(stdout, hex.Dump(buf))
	return err
}

func runQR(args []string, stdout io.Writer) error {
	var cf codecFlags
	var out string
	var size int
	fs := pflag.NewFlagSet("qr", pflag.ContinueOnError)
	cf.add(fs)
	fs.StringVarP(&out, "output", "o", "", "PNG file to write")
	fs.IntVar(&size, "size", config.DefaultQRSize, "edge length in pixels")
	rest, err := parse(fs, args, 1)
	if err != nil {
		return err
	}
	if out == "" {
		return fmt.Errorf("qr: --output is required")
	}

	code := rest[0]
	if _, err := cf.codec().Decode(code); err != nil {
		return err
	}
	b, err := imagepkg.GenerateQRPNG(code, size)
	if err != nil {
		return fmt.Errorf("generating QR: %w", err)
	}
	if err := util.WriteFile(out, b); err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, out)
	return err
}

func runImage(args []string, stdout io.Writer) error {
	var cf codecFlags
	var out string
	var size int
	fs := pflag.NewFlagSet("image", pflag.ContinueOnError)
	cf.add(fs)
	fs.StringVarP(&out, "output", "o", "", "PNG file to write")
	fs.IntVar(&size, "size", config.DefaultQRSize, "edge length of the embedded QR in pixels")
	rest, err := parse(fs, args, 1)
	if err != nil {
		return err
	}
	if out == "" {
		return fmt.Errorf("image: --output is required")
	}

	code := rest[0]
	d, err := cf.codec().Decode(code)
	if err != nil {
		return err
	}
	qr, err := imagepkg.GenerateQRImage(code, size)
	if err != nil {
		return fmt.Errorf("generating QR: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, imagepkg.ComposeDeckImage(d, qr)); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	if err := util.WriteFile(out, buf.Bytes()); err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, out)
	return err
}

// Command bitglyph bakes text into 32x32 one-bit glyph bitmaps.
//
// Each character is rasterized from a TrueType/OpenType font and written as
// Go source, binary, hex or a human-readable dump:
//
//	bitglyph -font WenQuanYiMicroHei.ttf -pkg title -o title_glyphs.go 新闻来了
//	bitglyph -font Go-Regular.ttf -size 16 -format hex "16px"
//	bitglyph -debug 我要开始发力了
//
// The font path defaults to $BITGLYPH_FONT.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/bitglyph"
	"github.com/gogpu/bitglyph/bake"
	"github.com/gogpu/bitglyph/typeface"
)

// fallbackFont is used when neither -font nor $BITGLYPH_FONT is set.
const fallbackFont = "./WenQuanYiMicroHei.ttf"

type config struct {
	fontPath string
	parser   string
	size     int
	debug    bool
	format   string
	output   string
	pkg      string
	varName  string
	input    string
	encoding string
	verbose  bool
	text     string
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("bitglyph: %v", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if cfg.verbose {
		bitglyph.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer bitglyph.SetLogger(nil)
	}

	if cfg.input != "" {
		if cfg.text, err = readInput(cfg.input, cfg.encoding); err != nil {
			return err
		}
	}

	src, err := typeface.NewFontSourceFromFile(cfg.fontPath, typeface.WithParser(cfg.parser))
	if err != nil {
		return err
	}
	defer func() {
		_ = src.Close()
	}()

	var seq bitglyph.GlyphSequence
	if cfg.debug {
		seq, err = bitglyph.RenderDebug(src, cfg.text)
	} else {
		seq, err = bitglyph.Render(src, cfg.text, cfg.size)
	}
	if err != nil {
		return err
	}

	if cfg.debug && cfg.format != "debug" {
		if err := bake.WriteDebug(stderr, cfg.text, seq); err != nil {
			return err
		}
	}

	return writeOutput(cfg, seq, stdout)
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("bitglyph", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfg := &config{}
	defaultFont := os.Getenv("BITGLYPH_FONT")
	if defaultFont == "" {
		defaultFont = fallbackFont
	}

	fs.StringVar(&cfg.fontPath, "font", defaultFont, "TrueType/OpenType font file (default $BITGLYPH_FONT)")
	fs.StringVar(&cfg.parser, "parser", "ximage", "font parser backend: "+strings.Join(typeface.Parsers(), ", "))
	fs.IntVar(&cfg.size, "size", bitglyph.DefaultSize, "font size: pixel distance between ascent and descent")
	fs.BoolVar(&cfg.debug, "debug", false, fmt.Sprintf("render at size %d and print every glyph to stderr", bitglyph.DebugSize))
	fs.StringVar(&cfg.format, "format", "go", "output format: go, bin, hex or debug")
	fs.StringVar(&cfg.output, "o", "", "output file (default stdout)")
	fs.StringVar(&cfg.pkg, "pkg", "glyphs", "package name for -format go")
	fs.StringVar(&cfg.varName, "var", "Glyphs", "variable name for -format go")
	fs.StringVar(&cfg.input, "in", "", "read the text from this file instead of the arguments")
	fs.StringVar(&cfg.encoding, "encoding", "", "encoding of the -in file (e.g. gb18030, shift_jis); default UTF-8")
	fs.BoolVar(&cfg.verbose, "v", false, "log font and glyph diagnostics to stderr")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch cfg.format {
	case "go", "bin", "hex", "debug":
	default:
		return nil, fmt.Errorf("unknown output format %q", cfg.format)
	}
	if cfg.input == "" {
		if fs.NArg() == 0 {
			fs.Usage()
			return nil, errors.New("no text given")
		}
		cfg.text = strings.Join(fs.Args(), " ")
	}
	return cfg, nil
}

func readInput(path, encoding string) (string, error) {
	// #nosec G304 -- Input path is provided by the user
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return bake.ReadText(f, encoding)
}

func writeOutput(cfg *config, seq bitglyph.GlyphSequence, stdout io.Writer) (err error) {
	w := stdout
	if cfg.output != "" {
		f, ferr := os.Create(cfg.output)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	switch cfg.format {
	case "bin":
		return bake.WriteBinary(w, seq)
	case "hex":
		return bake.WriteHex(w, seq)
	case "debug":
		return bake.WriteDebug(w, cfg.text, seq)
	default:
		return bake.WriteGo(w, seq, bake.GoOptions{
			Package: cfg.pkg,
			Var:     cfg.varName,
			Text:    cfg.text,
		})
	}
}

package spec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	verr "github.com/nihei9/lltool/error"
	"github.com/nihei9/lltool/grammar"
	spec "github.com/nihei9/lltool/spec/grammar"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTOML = Format("toml")
	FormatYAML = Format("yaml")
	FormatText = Format("text")
)

// FormatOf chooses a grammar format by file extension. Unknown extensions are read as the text
// notation.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

func DecodeTOML(r io.Reader) (*spec.Description, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	desc := &spec.Description{}
	md, err := toml.Decode(string(src), desc)
	if err != nil {
		var perr toml.ParseError
		if errors.As(err, &perr) {
			return nil, &verr.SpecError{
				Cause: newSyntaxError(perr.Message),
				Row:   tomlErrorRow(src, perr.Position),
			}
		}
		return nil, &verr.SpecError{
			Cause: newSyntaxError(err.Error()),
		}
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, &verr.SpecError{
			Cause:  synErrUnknownKey,
			Detail: keys[0].String(),
		}
	}
	return desc, nil
}

// tomlErrorRow returns the line containing the offending token. A token such as a line break
// reported at the end of a line belongs to that line, not to the next one.
func tomlErrorRow(src []byte, pos toml.Position) int {
	lines := bytes.Count(src, []byte("\n"))
	if len(src) > 0 && src[len(src)-1] != '\n' {
		lines++
	}
	row := pos.Line
	if pos.Start >= 0 && pos.Start < len(src) {
		row = bytes.Count(src[:pos.Start], []byte("\n")) + 1
	}
	if row > lines {
		row = lines
	}
	return row
}

func DecodeYAML(r io.Reader) (*spec.Description, error) {
	desc := &spec.Description{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(desc)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return desc, nil
		}
		var terr *yaml.TypeError
		if errors.As(err, &terr) && len(terr.Errors) > 0 {
			return nil, &verr.SpecError{
				Cause:  synErrUnknownKey,
				Detail: terr.Errors[0],
			}
		}
		return nil, &verr.SpecError{
			Cause: newSyntaxError(err.Error()),
		}
	}
	return desc, nil
}

func DecodeText(r io.Reader) (*spec.Description, error) {
	ast, err := Parse(r)
	if err != nil {
		return nil, err
	}
	b := &DescriptionBuilder{
		AST: ast,
	}
	return b.Build()
}

func Decode(r io.Reader, format Format) (*spec.Description, error) {
	switch format {
	case FormatTOML:
		return DecodeTOML(r)
	case FormatYAML:
		return DecodeYAML(r)
	case FormatText:
		return DecodeText(r)
	default:
		return nil, fmt.Errorf("unknown grammar format: %v", format)
	}
}

// Load reads a grammar file and builds a context-free grammar from it. Errors that point into the
// file carry its path so that the offending line can be quoted.
func Load(path string) (*grammar.Grammar[grammar.FreeProduction], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open the grammar file %s: %w", path, err)
	}
	defer f.Close()

	g, err := load(f, FormatOf(path))
	if err != nil {
		var specErr *verr.SpecError
		if errors.As(err, &specErr) {
			specErr.FilePath = path
			specErr.SourceName = filepath.Base(path)
		}
		return nil, err
	}
	return g, nil
}

func load(r io.Reader, format Format) (*grammar.Grammar[grammar.FreeProduction], error) {
	desc, err := Decode(r, format)
	if err != nil {
		return nil, err
	}
	return BuildFree(desc)
}

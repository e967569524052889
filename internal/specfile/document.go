// Package specfile loads command-line definitions from YAML or TOML files
// and compiles them into argspec specs whose values land in generic slots.
package specfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Document is the on-disk form of a command definition.
//
//	name: hello
//	description: Says hello
//	enums:
//	  - name: mood
//	    tokens: [happy, sad]
//	lines:
//	  - spec: "<name:string> [<times:int>]"
//	    doc: Greets name
//	  - spec: "-mood^ <mood>"
//	    doc: Sets mood
type Document struct {
	Name        string    `yaml:"name" toml:"name"`
	Description string    `yaml:"description" toml:"description"`
	Enums       []EnumDef `yaml:"enums" toml:"enums"`
	Lines       []LineDef `yaml:"lines" toml:"lines"`
}

// EnumDef declares a named enum. Tokens get values 0..n-1; Values carry
// explicit ones. Builtin "help" declares the help presentation tokens.
type EnumDef struct {
	Name    string         `yaml:"name" toml:"name"`
	Tokens  []string       `yaml:"tokens" toml:"tokens"`
	Values  []EnumValueDef `yaml:"values" toml:"values"`
	Builtin string         `yaml:"builtin" toml:"builtin"`
}

type EnumValueDef struct {
	Token string `yaml:"token" toml:"token"`
	Value int    `yaml:"value" toml:"value"`
}

// LineDef is one grammar line. Flags names the "^" markers in the order
// they appear; unnamed markers are named after what they mark.
type LineDef struct {
	Spec  string   `yaml:"spec" toml:"spec"`
	Doc   string   `yaml:"doc" toml:"doc"`
	Flags []string `yaml:"flags" toml:"flags"`
}

// Format is a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var (
	ErrUnknownFormat = errors.New("specfile: unknown format")
	ErrNoLines       = errors.New("specfile: document has no lines")
)

// FormatOf picks the encoding from a file extension. JSON is read as YAML.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Load reads and decodes the document at path. A missing name defaults to
// the file's base name without extension.
func Load(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("specfile: read %s: %w", path, err)
	}

	doc, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("specfile: %s: %w", path, err)
	}

	if doc.Name == "" {
		base := filepath.Base(path)
		doc.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return doc, nil
}

// Decode parses data in the given format and validates the result.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode toml: unknown key %q", undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks the parts of a document the argspec builder does not.
func (d *Document) Validate() error {
	if len(d.Lines) == 0 {
		return ErrNoLines
	}

	for i, e := range d.Enums {
		if e.Name == "" {
			return fmt.Errorf("specfile: enum %d has no name", i+1)
		}
		if e.Builtin != "" && e.Builtin != "help" {
			return fmt.Errorf("specfile: enum %s: unknown builtin %q", e.Name, e.Builtin)
		}
		if e.Builtin == "" && len(e.Tokens) == 0 && len(e.Values) == 0 {
			return fmt.Errorf("specfile: enum %s has no values", e.Name)
		}
		if len(e.Tokens) > 0 && len(e.Values) > 0 {
			return fmt.Errorf("specfile: enum %s: use tokens or values, not both", e.Name)
		}
	}

	for i, l := range d.Lines {
		if strings.TrimSpace(l.Spec) == "" {
			return fmt.Errorf("specfile: line %d has an empty spec", i+1)
		}
	}
	return nil
}

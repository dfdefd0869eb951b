/*
Package layoutfile reads keyboard layout files.

A layout file is a JSON object (or the equivalent YAML mapping)

	{
	    "normal":  "…32 kana…",
	    "shift":   "…32 kana…",
	    "daku":    "がぎぐげご…",
	    "handaku": "ぱぴぷぺぽ",
	    "kogaki":  "ぁぃぅぇぉ…",
	    "cont":    true
	}

Keys 'normal', 'daku', 'handaku' and 'kogaki' are required, the latter three
may be empty strings. 'shift', or alternatively 'left' and 'right', are
optional, as is 'cont', which defaults to true. A positional table which is
present must hold exactly 32 kana, an empty string included.
*/
package layoutfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"

	layout "github.com/esrille/keyboard-layout-comparison"
)

// tracer writes to trace with key 'kblc.layout'
func tracer() tracing.Trace {
	return tracing.Select("kblc.layout")
}

// Format is the encoding of a layout file.
type Format int

// Supported layout file formats.
const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	return "json"
}

// FormatOf guesses the format from a file name: '.yaml' and '.yml' are YAML,
// everything else is JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

type document struct {
	Normal  *string `json:"normal" yaml:"normal"`
	Shift   *string `json:"shift" yaml:"shift"`
	Left    *string `json:"left" yaml:"left"`
	Right   *string `json:"right" yaml:"right"`
	Daku    *string `json:"daku" yaml:"daku"`
	Handaku *string `json:"handaku" yaml:"handaku"`
	Kogaki  *string `json:"kogaki" yaml:"kogaki"`
	Cont    *bool   `json:"cont" yaml:"cont"`
}

// Decode parses a layout configuration from reader. name is used in error
// messages only.
func Decode(name string, reader io.Reader, format Format) (layout.Config, error) {
	var doc document
	var err error
	switch format {
	case YAML:
		err = yaml.NewDecoder(reader).Decode(&doc)
	default:
		dec := json.NewDecoder(reader)
		if err = dec.Decode(&doc); err == nil {
			if _, tail := dec.Token(); tail != io.EOF {
				err = errors.New("unexpected data after the layout object")
			}
		}
	}
	if err != nil {
		return layout.Config{}, fmt.Errorf("%w %q: cannot decode %s: %v", layout.ErrInvalidLayout, name, format, err)
	}
	required := []struct {
		key   string
		value *string
	}{
		{"normal", doc.Normal},
		{"daku", doc.Daku},
		{"handaku", doc.Handaku},
		{"kogaki", doc.Kogaki},
	}
	for _, r := range required {
		if r.value == nil {
			return layout.Config{}, fmt.Errorf("%w %q: key '%s' is missing", layout.ErrInvalidLayout, name, r.key)
		}
	}
	optional := []struct {
		key   string
		value *string
	}{
		{"shift", doc.Shift},
		{"left", doc.Left},
		{"right", doc.Right},
	}
	for _, o := range optional {
		if o.value != nil && *o.value == "" {
			return layout.Config{}, fmt.Errorf("%w %q: table '%s' is empty, expected %d keys",
				layout.ErrInvalidLayout, name, o.key, layout.KeyCount)
		}
	}
	cfg := layout.Config{
		Normal:  *doc.Normal,
		Shift:   deref(doc.Shift),
		Left:    deref(doc.Left),
		Right:   deref(doc.Right),
		Daku:    *doc.Daku,
		Handaku: *doc.Handaku,
		Kogaki:  *doc.Kogaki,
		Cont:    true,
	}
	if doc.Cont != nil {
		cfg.Cont = *doc.Cont
	}
	return cfg, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// LoadConfig reads the layout configuration from the file at path.
func LoadConfig(path string) (layout.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return layout.Config{}, err
	}
	defer f.Close()
	format := FormatOf(path)
	tracer().Debugf("reading %s layout from %s", format, path)
	return Decode(path, f, format)
}

// Load reads and compiles the layout file at path.
//
// Example usage:
//
//	l, err := layoutfile.Load("stickney.json")
//	...
//	l.Convert(os.Stdout, "かな")
func Load(path string) (*layout.Layout, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return layout.New(filepath.Base(path), cfg)
}

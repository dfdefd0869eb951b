package layout

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/esrille/keyboard-layout-comparison/keymap"
)

// QWERTY is the reference sequence of the 32 character keys of a QWERTY
// keyboard, row by row. Every positional layout table is aligned to it.
const QWERTY = "qwertyuiop[" + "asdfghjkl;'" + "zxcvbnm,./"

// KeyCount is the number of entries of every positional layout table.
const KeyCount = 32

// Prefixes for keystrokes from the secondary tables.
const (
	PrefixNone  = ""
	PrefixShift = " "
	PrefixLeft  = "L"
	PrefixRight = "R"
)

// ErrInvalidLayout is wrapped by every error reporting a malformed layout
// configuration.
var ErrInvalidLayout = errors.New("invalid layout")

// Config is a format-agnostic layout configuration.
//
// Normal is required. Shift, Left and Right are optional; if Shift is set,
// Left and Right are never consulted. Daku, Handaku and Kogaki list the kana
// typed with a trailing mark key (see package documentation); each may be
// empty but a decoder should insist on their presence. An empty positional
// table counts as absent here, so decoders reject tables which are present
// but empty.
type Config struct {
	Normal  string
	Shift   string
	Left    string
	Right   string
	Daku    string
	Handaku string
	Kogaki  string
	// Cont suppresses repeating a prefix for consecutive keystrokes from
	// the same secondary table. Layout files default to true; a Config
	// built in code has to set Cont: true to get the same behaviour.
	Cont bool
	// Normalize composes input text to NFC before conversion.
	Normalize bool
}

// table is one named lookup table with the prefix for its keystrokes.
type table struct {
	name   string
	prefix string
	keys   *keymap.Index
}

// Layout is a compiled, read-only keyboard layout. It is safe to share a
// Layout between goroutines; conversion state lives in a Session.
type Layout struct {
	tables     []table // in dispatch order
	rules      []composition
	cont       bool
	normalize  bool
	Identifier string // Identifies the layout
}

// Keystroke is the result of looking up one rune.
type Keystroke struct {
	Prefix string // one of the Prefix constants
	Key    byte   // a character of QWERTY
	Table  string // name of the table the rune was found in
}

func (k Keystroke) String() string {
	return k.Prefix + string(k.Key)
}

// New validates cfg and compiles it into a Layout.
//
// Every positional table which is configured must have exactly KeyCount
// runes, including tables which are shadowed by 'shift'. Violations are
// reported as errors wrapping ErrInvalidLayout.
func New(name string, cfg Config) (*Layout, error) {
	if cfg.Normal == "" {
		return nil, fmt.Errorf("%w %q: table 'normal' is missing", ErrInvalidLayout, name)
	}
	defs := []tableDef{
		{"normal", PrefixNone, cfg.Normal},
		{"shift", PrefixShift, cfg.Shift},
		{"left", PrefixLeft, cfg.Left},
		{"right", PrefixRight, cfg.Right},
	}
	for _, def := range defs {
		if def.keys == "" {
			continue
		}
		if n := utf8.RuneCountInString(def.keys); n != KeyCount {
			return nil, fmt.Errorf("%w %q: table '%s' has %d keys, expected %d",
				ErrInvalidLayout, name, def.name, n, KeyCount)
		}
	}
	if cfg.Shift != "" {
		if cfg.Left != "" || cfg.Right != "" {
			tracer().Infof("layout %s: 'shift' is configured, 'left' and 'right' are ignored", name)
		}
		defs = defs[:2]
	} else {
		defs = append(defs[:1], defs[2:]...)
	}
	l := &Layout{
		cont:       cfg.Cont,
		normalize:  cfg.Normalize,
		Identifier: fmt.Sprintf("layout: %s", name),
	}
	for _, def := range defs {
		if def.keys == "" {
			continue
		}
		l.tables = append(l.tables, table{name: def.name, prefix: def.prefix, keys: keymap.New(def.keys)})
	}
	l.rules = compositionRules(cfg)
	tracer().Infof("layout %s: tables=%v cont=%v rules=%d", name, l.Tables(), l.cont, len(l.rules))
	return l, nil
}

type tableDef struct {
	name   string
	prefix string
	keys   string
}

// Tables returns the names of the configured lookup tables in the order they
// are consulted.
func (l *Layout) Tables() []string {
	names := make([]string, len(l.tables))
	for i, t := range l.tables {
		names[i] = t.name
	}
	return names
}

// Cont reports whether repeated prefixes are suppressed.
func (l *Layout) Cont() bool {
	return l.cont
}

// Lookup finds the keystroke for r without touching any conversion state.
// The first table containing r wins.
func (l *Layout) Lookup(r rune) (Keystroke, bool) {
	for _, t := range l.tables {
		if pos, ok := t.keys.Find(r); ok {
			return Keystroke{Prefix: t.prefix, Key: QWERTY[pos], Table: t.name}, true
		}
	}
	return Keystroke{}, false
}

package layout

import "github.com/esrille/keyboard-layout-comparison/keymap"

// Marks typed after the base kana of a composed character.
const (
	Dakuten    = '\u309B' // ゛
	Handakuten = '\u309C' // ゜
)

// composition maps every member kana to base kana + mark.
// The base is found by code point offset, which works for the Hiragana and
// Katakana blocks: か U+304B, が U+304C; は U+306F, ぱ U+3071; ぁ U+3041, あ U+3042.
type composition struct {
	name    string
	members *keymap.Index
	offset  rune
	mark    rune
}

// compositionRules returns the rules in the order they are checked.
func compositionRules(cfg Config) []composition {
	return []composition{
		{name: "daku", members: keymap.New(cfg.Daku), offset: -1, mark: Dakuten},
		{name: "handaku", members: keymap.New(cfg.Handaku), offset: -2, mark: Handakuten},
		{name: "kogaki", members: keymap.New(cfg.Kogaki), offset: +1, mark: Dakuten},
	}
}

// Decompose splits r into the runes to be typed for it: either r itself, or
// a base kana followed by a mark. The first rule listing r wins.
func (l *Layout) Decompose(r rune) (base rune, mark rune, composed bool) {
	for _, rule := range l.rules {
		if _, ok := rule.members.Find(r); ok {
			tracer().Debugf("%s: %q is typed as %q%q", rule.name, r, r+rule.offset, rule.mark)
			return r + rule.offset, rule.mark, true
		}
	}
	return r, 0, false
}

package layout

import (
	"bufio"
	"errors"
	"io"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Session converts text with a Layout and carries the conversion state:
// the prefix of the last keystroke and the number of converted characters.
// A Session is not safe for concurrent use; create one per conversion job.
type Session struct {
	layout *Layout
	w      io.Writer
	prev   string
	count  int
	err    error
	buf    []byte
}

// NewSession starts a conversion writing keystrokes to w.
func (l *Layout) NewSession(w io.Writer) *Session {
	return &Session{
		layout: l,
		w:      w,
		buf:    make([]byte, 0, 2),
	}
}

// Count returns the number of characters converted so far. Marks count as
// characters of their own.
func (s *Session) Count() int {
	return s.count
}

// Prev returns the prefix of the last keystroke, PrefixNone at start.
func (s *Session) Prev() string {
	return s.prev
}

// Err returns the first error writing to the output, if any.
func (s *Session) Err() error {
	return s.err
}

// ToQwerty writes the keystroke for r and reports whether r is mapped.
// Unmapped runes produce no output and leave the state untouched.
//
// The prefix is omitted if the layout suppresses repeated prefixes and the
// previous keystroke had the same prefix.
func (s *Session) ToQwerty(r rune) bool {
	k, ok := s.layout.Lookup(r)
	if !ok {
		tracer().Debugf("no key for %q (%U)", r, r)
		return false
	}
	s.count++
	s.buf = s.buf[:0]
	if k.Prefix != PrefixNone && (s.prev != k.Prefix || !s.layout.cont) {
		s.buf = append(s.buf, k.Prefix...)
	}
	s.buf = append(s.buf, k.Key)
	s.prev = k.Prefix
	s.write(s.buf)
	return true
}

func (s *Session) write(p []byte) {
	if s.err != nil {
		return
	}
	_, s.err = s.w.Write(p)
}

// Convert writes the keystrokes for every character of text.
// Composed kana are typed as base kana followed by their mark.
func (s *Session) Convert(text string) error {
	if s.layout.normalize {
		text = norm.NFC.String(text)
	}
	for _, r := range text {
		s.convertRune(r)
	}
	return s.err
}

// ConvertReader is like Convert for text read from r.
func (s *Session) ConvertReader(r io.Reader) error {
	if s.layout.normalize {
		r = transform.NewReader(r, norm.NFC)
	}
	br := bufio.NewReader(r)
	for {
		c, _, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		s.convertRune(c)
	}
	return s.err
}

func (s *Session) convertRune(r rune) {
	base, mark, composed := s.layout.Decompose(r)
	s.ToQwerty(base)
	if composed {
		s.ToQwerty(mark)
	}
}

// Convert is a shortcut for converting text in a fresh Session.
// It returns the number of converted characters.
func (l *Layout) Convert(w io.Writer, text string) (int, error) {
	s := l.NewSession(w)
	err := s.Convert(text)
	return s.Count(), err
}

package layout

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

const (
	jisNormal  = "たていすかんなにらせ゛ちとしはきくまのりれけつさそひこみもねるめ"
	jisShift   = "ぁぃぅぇぉゃゅょっゎ゜をー「」、。・ゐゑヵヶアイウエオカキクケコ"
	jisDaku    = "がぎぐげござじずぜぞだぢづでどばびぶべぼ"
	jisHandaku = "ぱぴぷぺぽ"
)

// seq returns KeyCount consecutive runes starting at r.
func seq(r rune) string {
	var b strings.Builder
	for i := 0; i < KeyCount; i++ {
		b.WriteRune(r + rune(i))
	}
	return b.String()
}

func jisConfig() Config {
	return Config{
		Normal:  jisNormal,
		Shift:   jisShift,
		Daku:    jisDaku,
		Handaku: jisHandaku,
		Cont:    true,
	}
}

func thumbConfig() Config {
	return Config{
		Normal: jisNormal,
		Left:   seq('Ａ'),
		Right:  seq('ａ'),
		Daku:   jisDaku,
		Cont:   true,
	}
}

func mustNew(t *testing.T, cfg Config) *Layout {
	t.Helper()
	l, err := New(t.Name(), cfg)
	require.NoError(t, err)
	return l
}

func TestQWERTYReference(t *testing.T) {
	require.Len(t, QWERTY, KeyCount)
}

func TestNewDispatchOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kblc.layout")
	defer teardown()

	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{name: "normal only", cfg: Config{Normal: jisNormal}, want: []string{"normal"}},
		{name: "shift", cfg: jisConfig(), want: []string{"normal", "shift"}},
		{name: "thumb", cfg: thumbConfig(), want: []string{"normal", "left", "right"}},
		{name: "right only", cfg: Config{Normal: jisNormal, Right: seq('ａ')}, want: []string{"normal", "right"}},
		{
			name: "shift shadows thumbs",
			cfg:  Config{Normal: jisNormal, Shift: jisShift, Left: seq('Ａ'), Right: seq('ａ')},
			want: []string{"normal", "shift"},
		},
	}
	for _, tt := range tests {
		l, err := New(tt.name, tt.cfg)
		require.NoError(t, err, tt.name)
		if diff := cmp.Diff(tt.want, l.Tables()); diff != "" {
			t.Fatalf("%s: tables mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestNewRejectsMalformedTables(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		table string
	}{
		{name: "missing normal", cfg: Config{Shift: jisShift}, table: "normal"},
		{name: "short normal", cfg: Config{Normal: jisNormal[:len(jisNormal)-3]}, table: "normal"},
		{name: "short shift", cfg: Config{Normal: jisNormal, Shift: jisShift[:len(jisShift)-3]}, table: "shift"},
		{name: "long left", cfg: Config{Normal: jisNormal, Left: seq('Ａ') + "x"}, table: "left"},
		{name: "shadowed right", cfg: Config{Normal: jisNormal, Shift: jisShift, Right: "abc"}, table: "right"},
	}
	for _, tt := range tests {
		_, err := New(tt.name, tt.cfg)
		require.Error(t, err, tt.name)
		require.True(t, errors.Is(err, ErrInvalidLayout), "%s: %v should wrap ErrInvalidLayout", tt.name, err)
		require.Contains(t, err.Error(), "'"+tt.table+"'", tt.name)
	}
}

func TestLookup(t *testing.T) {
	l := mustNew(t, thumbConfig())
	tests := []struct {
		r    rune
		want string
		tbl  string
	}{
		{r: 'た', want: "q", tbl: "normal"},
		{r: 'め', want: "/", tbl: "normal"},
		{r: 'Ｆ', want: "Ly", tbl: "left"},
		{r: 'ａ', want: "Rq", tbl: "right"},
	}
	for _, tt := range tests {
		k, ok := l.Lookup(tt.r)
		require.True(t, ok, "%q should be mapped", tt.r)
		require.Equal(t, tt.want, k.String())
		require.Equal(t, tt.tbl, k.Table)
	}
	_, ok := l.Lookup('x')
	require.False(t, ok)
}

func TestShiftHidesThumbTables(t *testing.T) {
	cfg := jisConfig()
	cfg.Left = seq('Ａ')
	l := mustNew(t, cfg)
	_, ok := l.Lookup('Ａ')
	require.False(t, ok, "left table must not be consulted when shift is configured")
}

func TestDecompose(t *testing.T) {
	l := mustNew(t, Config{
		Normal:  jisNormal,
		Daku:    "が",
		Handaku: "ぱ",
		Kogaki:  "ぃが", // daku is checked first
	})
	tests := []struct {
		r        rune
		base     rune
		mark     rune
		composed bool
	}{
		{r: 'が', base: 'か', mark: Dakuten, composed: true},
		{r: 'ぱ', base: 'は', mark: Handakuten, composed: true},
		{r: 'ぃ', base: 'い', mark: Dakuten, composed: true},
		{r: 'か', base: 'か', mark: 0, composed: false},
	}
	for _, tt := range tests {
		base, mark, composed := l.Decompose(tt.r)
		if base != tt.base || mark != tt.mark || composed != tt.composed {
			t.Fatalf("Decompose(%q) = %q,%q,%v; want %q,%q,%v",
				tt.r, base, mark, composed, tt.base, tt.mark, tt.composed)
		}
	}
}

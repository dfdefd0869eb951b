/*
Package keyingtime estimates the minimum time for typing a string of keys.

The estimation is based on a table of measured times for typing key c2
right after key c1 on a QWERTY keyboard (see package matrix for extracting
such a table from a keying-time record page). In addition, every finger
needs time to move from the key it typed last to its next key; this setup
time is derived from the table as

	setup[c1][c2] = press[c1][c2] - press[c1][c1]

for keys c1, c2 typed by the same finger. While one finger types, other
fingers may already move to their next keys, so a key is typed at the later
of (a) the previous keystroke and (b) the time its finger is in place.

Keys 'L' and 'R' denote the space bar pressed by the left and the right
thumb. A space in the input is typed with the left thumb, as with the New
Stickney Kana layout.

The basic idea of this sort of program is presented as key2time.cpp in the
○ layout (4-698):

	http://www.geocities.jp/rage2050a/GeneKana/
*/
package keyingtime

import (
	"io"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'kblc.keyingtime'
func tracer() tracing.Trace {
	return tracing.Select("kblc.keyingtime")
}

// MaxKey is the exclusive upper bound of key codes (7-bit ASCII).
const MaxKey = 128

// MaxFingers is the number of fingers, counted from the left little finger.
const MaxFingers = 10

// thumb typing all keys not listed in fingering
const defaultFinger = 4

// Keys typed by each finger.
var fingering = [MaxFingers]string{
	"qaz",
	"wsx",
	"edc",
	"rfvtgb",
	"L", // space pressed by the left thumb
	"R", // space pressed by the right thumb
	"yhnujm",
	"ik,",
	"ol.",
	"p;/['",
}

var fingerMap [MaxKey]int

func init() {
	for i := range fingerMap {
		fingerMap[i] = defaultFinger
	}
	for f, keys := range fingering {
		for i := 0; i < len(keys); i++ {
			fingerMap[keys[i]] = f
		}
	}
}

// Finger returns the number of the finger typing key c.
func Finger(c byte) int {
	if c >= MaxKey {
		return defaultFinger
	}
	return fingerMap[c]
}

// Table holds the keying times of all key pairs and the setup times derived
// from them. A Table is read-only after loading.
type Table struct {
	press   [MaxKey][MaxKey]int32 // time to press c2 after c1
	setup   [MaxKey][MaxKey]int32 // time to move a finger from c1 to c2
	Entries int                   // number of key pairs loaded
}

// Load reads keying-time data and derives the finger setup times.
//
// Example usage:
//
//	f, _ := os.Open("keytime.notepc.txt")
//	defer f.Close()
//
//	table, err := keyingtime.Load(f)
//	e := table.NewEstimator()
//	e.TypeString("hello, world")
//	fmt.Println(e.Time())
func Load(reader io.Reader) (*Table, error) {
	t := &Table{}
	r := NewReader(reader)
	for {
		c1, c2, time, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		t.press[c1][c2] = time
		t.Entries++
	}
	t.deriveSetup()
	tracer().Infof("keying-time table: %d key pairs", t.Entries)
	return t, nil
}

func (t *Table) deriveSetup() {
	for _, keys := range fingering {
		for i := 0; i < len(keys); i++ {
			for j := 0; j < len(keys); j++ {
				if i == j {
					continue
				}
				c1, c2 := keys[i], keys[j]
				t.setup[c1][c2] = t.press[c1][c2] - t.press[c1][c1]
				if t.setup[c1][c2] <= 0 {
					tracer().Errorf("warning: the time for %c%c is faster than %c%c, which appears to be wrong",
						c1, c2, c1, c1)
					t.setup[c1][c2] = 1
				}
			}
		}
	}
}

// Press returns the time for typing c2 after c1, 0 if unknown.
func (t *Table) Press(c1, c2 byte) int32 {
	if c1 >= MaxKey || c2 >= MaxKey {
		return 0
	}
	return t.press[c1][c2]
}

// Setup returns the time for moving a finger from c1 to c2.
func (t *Table) Setup(c1, c2 byte) int32 {
	if c1 >= MaxKey || c2 >= MaxKey {
		return 0
	}
	return t.setup[c1][c2]
}

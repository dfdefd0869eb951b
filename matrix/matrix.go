/*
Package matrix extracts a keying-time matrix from an HTML page.

The keying-time record pages for QWERTY keyboards contain a table with id
'matrix'. Row i and column j (counting from 0, including the header row and
header column) hold the time to type key References[j] after key
References[i], where 'L' and 'R' denote the space bar pressed by the left
and the right thumb. Header cells are skipped by their index, not by their
markup: every 'tr' counts as a row, but only 'td' elements count as columns.

The extracted lines have the form

	ab  145

and are read by package keyingtime.
*/
package matrix

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer writes to trace with key 'kblc.matrix'
func tracer() tracing.Trace {
	return tracing.Select("kblc.matrix")
}

// References holds the key for every row and column index of the matrix.
const References = " abcdefghijklmnopqrstuvwxyz;,./['LR"

// Range of row and column indices holding key data.
const (
	First = 1
	Last  = 34
)

// ErrNoMatrix is returned if a document has no element with id 'matrix'.
var ErrNoMatrix = errors.New("no element with id 'matrix'")

// Cell is one entry of the matrix.
type Cell struct {
	Row, Col int    // zero-based row and column index
	Value    string // visible text of the cell
}

// Keys returns the row and column keys of the cell.
func (c Cell) Keys() (byte, byte) {
	return References[c.Row], References[c.Col]
}

// String formats the cell as an output line, without line terminator.
func (c Cell) String() string {
	r, k := c.Keys()
	return fmt.Sprintf("%c%c  %s", r, k, c.Value)
}

func inRange(i int) bool {
	return First <= i && i <= Last
}

// Reader streams the cells of a matrix one-by-one.
type Reader struct {
	rows  *goquery.Selection
	cells *goquery.Selection // cells of the current row
	row   int
	col   int
}

// NewReader parses an HTML5 document and locates its matrix.
func NewReader(reader io.Reader) (*Reader, error) {
	root, err := html.Parse(reader)
	if err != nil {
		return nil, err
	}
	doc := goquery.NewDocumentFromNode(root)
	m := doc.Find("#matrix").First()
	if m.Length() == 0 {
		return nil, ErrNoMatrix
	}
	rows := m.Find("tr")
	tracer().Infof("matrix has %d rows", rows.Length())
	return &Reader{rows: rows}, nil
}

// Next returns the next cell within [First,Last]×[First,Last], in document
// order. It returns io.EOF when exhausted.
func (r *Reader) Next() (Cell, error) {
	for r.row < r.rows.Length() && r.row <= Last {
		if r.cells == nil {
			r.cells = r.rows.Eq(r.row).Find("td")
			r.col = 0
		}
		for r.col < r.cells.Length() {
			i, j := r.row, r.col
			r.col++
			if !inRange(i) || !inRange(j) {
				continue
			}
			return Cell{Row: i, Col: j, Value: r.cells.Eq(j).Text()}, nil
		}
		r.row++
		r.cells = nil
	}
	return Cell{}, io.EOF
}

// Extract writes one line per matrix cell in range to w and returns the
// number of lines written.
func Extract(w io.Writer, reader io.Reader) (int, error) {
	r, err := NewReader(reader)
	if err != nil {
		return 0, err
	}
	bw := bufio.NewWriter(w)
	n := 0
	for {
		cell, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return n, err
		}
		if _, err = fmt.Fprintln(bw, cell.String()); err != nil {
			return n, err
		}
		n++
	}
	tracer().Debugf("extracted %d cells", n)
	return n, bw.Flush()
}

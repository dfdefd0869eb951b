package keyingtime

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Reader streams key-pair times from keying-time files, one entry per line:
//
//	[first key][second key] [time]
//
// as produced by package matrix. Blank lines and lines without a time are
// skipped.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader creates a Reader for keying-time data.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next entry as (first key, second key, time).
// It returns io.EOF when exhausted.
func (r *Reader) Next() (byte, byte, int32, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimLeft(r.scanner.Text(), " \t")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(line) < 2 || line[0] >= MaxKey || line[1] >= MaxKey {
			return 0, 0, 0, fmt.Errorf("line %d: expected two ASCII keys, have %q", r.line, line)
		}
		value := strings.TrimSpace(line[2:])
		if value == "" {
			tracer().Debugf("line %d: no time for %q, skipped", r.line, line[:2])
			continue
		}
		t, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("line %d: invalid time %q for %q", r.line, value, line[:2])
		}
		return line[0], line[1], int32(t), nil
	}
	if err := r.scanner.Err(); err != nil {
		return 0, 0, 0, err
	}
	return 0, 0, 0, io.EOF
}

package keyingtime

import (
	"bufio"
	"io"
)

// Estimator accumulates the keying time of a key sequence.
// An Estimator is not safe for concurrent use.
type Estimator struct {
	table     *Table
	prevKeys  [MaxFingers]byte  // key typed last by each finger
	prevTimes [MaxFingers]int32 // time each finger typed its last key
	time      int32
	previous  byte
}

// NewEstimator starts an estimation with all fingers on the home position.
// The previous key is assumed to be 'l'.
func (t *Table) NewEstimator() *Estimator {
	return &Estimator{
		table:    t,
		prevKeys: [MaxFingers]byte{'a', 's', 'd', 'f', 'L', 'R', 'j', 'k', 'l', ';'},
		previous: 'l',
	}
}

// Type adds key c. Keys without a time after the previous key are ignored.
func (e *Estimator) Type(c byte) {
	if c == ' ' {
		c = 'L'
	}
	press := e.table.Press(e.previous, c)
	if press == 0 {
		return
	}
	f := Finger(c)
	if e.previous != e.prevKeys[f] {
		ready := e.prevTimes[f] + e.table.Setup(e.prevKeys[f], c)
		if e.time < ready {
			tracer().Debugf("%d: %c%c waits for finger %d until %d", e.time, e.previous, c, f, ready)
			e.time = ready
		}
	}
	e.time += press
	e.prevTimes[f] = e.time
	e.prevKeys[f] = c
	e.previous = c
}

// TypeString adds every byte of s.
func (e *Estimator) TypeString(s string) {
	for i := 0; i < len(s); i++ {
		e.Type(s[i])
	}
}

// ReadFrom adds all bytes read from r.
func (e *Estimator) ReadFrom(r io.Reader) (int64, error) {
	br := bufio.NewReader(r)
	var n int64
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		n++
		e.Type(c)
	}
}

// Time returns the estimated time for all keys typed so far.
func (e *Estimator) Time() int32 {
	return e.time
}

/*
Package layout converts kana text into the QWERTY keystrokes needed to type
it with a given kana keyboard layout.

A layout assigns kana to the 32 character keys of a QWERTY keyboard

	qwertyuiop[
	asdfghjkl;'
	zxcvbnm,./

in up to four tables: an unshifted table 'normal', and either a 'shift' table
or a pair of 'left'/'right' tables for layouts which shift with the thumbs
(the space bar pressed by the left or right thumb). Keystrokes from the
secondary tables are prefixed with ' ', 'L' or 'R'; when consecutive
keystrokes use the same prefix it may be printed once only, as if the shift
key is held down.

Voiced and semi-voiced kana are typed as their base kana followed by a
dakuten (゛) or handakuten (゜) key, and small kana (ゃ, っ, …) as the following
full-size kana plus dakuten. The three sets of such kana are part of the
layout configuration; the code point arithmetic relies on the ordering of the
Hiragana and Katakana Unicode blocks.

Layout files are decoded by package layoutfile. The keystroke output is
suitable as input to package keyingtime, which estimates the time to type it.

Further Reading

	https://esrille.github.io/keyboard-layout-comparison/
	http://www.geocities.jp/rage2050a/GeneKana/

----------------------------------------------------------------------

# License

Copyright (c) 2017 Esrille Inc.

Licensed under the Apache License, Version 2.0.
License information is available in the LICENSE file.
*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'kblc.layout'
func tracer() tracing.Trace {
	return tracing.Select("kblc.layout")
}

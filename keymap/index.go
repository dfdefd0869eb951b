package keymap

// Index maps runes to 1-based key positions of one layout table.
// It's a two-level page table for BMP code points:
//   - top[hi] = page index (1..n), or 0 meaning "page absent".
//   - pages is a flat array of n*256 entries.
//
// Runes beyond the BMP are rare in layout tables and go to a small
// overflow map.
//
// Lookup is O(1) with two array reads and a couple of ops.
// A kana table touches one or two high-byte blocks, so an Index for a
// 32-key table stays around 1 KB.
type Index struct {
	top      [256]uint16 // page index (1-based); 0 means none
	pages    []uint16    // flat: n*256
	overflow map[rune]uint16
}

// New builds an index over the runes of table. Position i of the table is
// stored as i+1. If a rune occurs more than once, the first occurrence wins.
func New(table string) *Index {
	ix := &Index{}
	pos := uint16(0)
	for _, r := range table {
		pos++
		if ix.Position(r) != 0 {
			continue
		}
		ix.set(r, pos)
	}
	return ix
}

// Position returns the 1-based key position for r.
// Returns 0 if absent.
func (ix *Index) Position(r rune) uint16 {
	if ix == nil || r < 0 {
		return 0
	}
	if r > 0xFFFF {
		return ix.overflow[r]
	}
	hi := uint16(r) >> 8
	pi := ix.top[hi]
	if pi == 0 {
		return 0
	}
	base := int(pi-1) << 8 // *256
	return ix.pages[base+int(r&0xFF)]
}

// Find returns the 0-based key position of r and whether r is present.
func (ix *Index) Find(r rune) (int, bool) {
	p := ix.Position(r)
	if p == 0 {
		return -1, false
	}
	return int(p) - 1, true
}

func (ix *Index) ensurePage(hi uint16) uint16 {
	pi := ix.top[hi]
	if pi != 0 {
		return pi
	}
	// allocate a new page (256 uint16 initialized to 0)
	ix.pages = append(ix.pages, make([]uint16, 256)...)
	pi = uint16(len(ix.pages) >> 8) // number of pages, 1-based index
	ix.top[hi] = pi
	return pi
}

// set stores mapping r -> pos, pos > 0.
func (ix *Index) set(r rune, pos uint16) {
	if r < 0 || pos == 0 {
		return
	}
	if r > 0xFFFF {
		if ix.overflow == nil {
			ix.overflow = make(map[rune]uint16)
		}
		ix.overflow[r] = pos
		return
	}
	base := int(ix.ensurePage(uint16(r)>>8)-1) << 8
	ix.pages[base+int(r&0xFF)] = pos
}

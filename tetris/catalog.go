// Package tetris implements a falling-block puzzle engine: a bounded board, a
// falling piece driven by gravity and player input, collision detection, row
// clearing and game-over detection.
//
// State transitions are pure functions over a State value (Start, AttemptMove,
// Apply). An Engine owns the single current State, serializes actions coming
// from input and from the Gravity scheduler, and exposes read-only Snapshots
// for renderers.
package tetris

import "image/color"

// Kind identifies one of the seven tetrominoes. The zero value marks an empty cell.
type Kind uint8

const (
	KindNone Kind = iota
	KindI
	KindO
	KindT
	KindL
	KindJ
	KindS
	KindZ
)

// Kinds lists the catalog in draw order. Random draws index into this slice.
var Kinds = []Kind{KindI, KindO, KindT, KindL, KindJ, KindS, KindZ}

type catalogEntry struct {
	letter byte
	shape  Shape
	color  color.RGBA
}

var catalog = [...]catalogEntry{
	KindNone: {letter: '.'},
	KindI: {
		letter: 'I',
		shape:  mustShape("####"),
		color:  color.RGBA{R: 0x00, G: 0xFF, B: 0xFF, A: 0xFF},
	},
	KindO: {
		letter: 'O',
		shape:  mustShape("##", "##"),
		color:  color.RGBA{R: 0xFF, G: 0xFF, B: 0x00, A: 0xFF},
	},
	KindT: {
		letter: 'T',
		shape:  mustShape("###", ".#."),
		color:  color.RGBA{R: 0xFF, G: 0x00, B: 0xFF, A: 0xFF},
	},
	KindL: {
		letter: 'L',
		shape:  mustShape("###", "#.."),
		color:  color.RGBA{R: 0xFF, G: 0x66, B: 0x00, A: 0xFF},
	},
	KindJ: {
		letter: 'J',
		shape:  mustShape("###", "..#"),
		color:  color.RGBA{R: 0x00, G: 0xCC, B: 0xFF, A: 0xFF},
	},
	KindS: {
		letter: 'S',
		shape:  mustShape("##.", ".##"),
		color:  color.RGBA{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF},
	},
	KindZ: {
		letter: 'Z',
		shape:  mustShape(".##", "##."),
		color:  color.RGBA{R: 0xFF, G: 0x33, B: 0x33, A: 0xFF},
	},
}

// Valid reports whether k is one of the seven catalog kinds.
func (k Kind) Valid() bool {
	return k >= KindI && k <= KindZ
}

// Shape returns the spawn orientation of k.
func (k Kind) Shape() Shape {
	if !k.Valid() {
		return Shape{}
	}
	return catalog[k].shape
}

// Color returns the fixed color bound to k. KindNone is fully transparent.
func (k Kind) Color() color.RGBA {
	if !k.Valid() {
		return color.RGBA{}
	}
	return catalog[k].color
}

// Letter is the single-character name used by Board.String and ParseBoard.
func (k Kind) Letter() byte {
	if !k.Valid() {
		return '.'
	}
	return catalog[k].letter
}

func (k Kind) String() string {
	if !k.Valid() {
		return "None"
	}
	return string(catalog[k].letter)
}

// KindFromLetter maps a catalog letter back to its Kind.
func KindFromLetter(letter byte) (Kind, bool) {
	for _, k := range Kinds {
		if catalog[k].letter == letter {
			return k, true
		}
	}
	return KindNone, false
}

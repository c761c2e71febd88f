package joyquat

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/joyquat/bitfield"
	"github.com/calebcase/joyquat/fixed"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("joyquat")

var (
	// ErrUnknownMode is returned when a frame carries the invalid mode.
	ErrUnknownMode = Error.New("unknown mode")

	// ErrFrameSize is returned when a frame is not exactly Size bytes.
	ErrFrameSize = Error.New("invalid frame size")
)

// Size is the number of bytes in a frame.
const Size = 18

// Field widths in bits.
const (
	ModeWidth      = 2
	IndexWidth     = 2
	StartWidth     = 11
	CountWidth     = 6
	TimestampWidth = StartWidth + CountWidth

	IndividualWidth             = 3 * (IndexWidth + 3*individualComponentWidth)
	FirstLastDeltaMidWidth      = 1 + IndexWidth + 3*(2*firstLastWidth+firstLastMidWidth)
	LastDeltaFirstDeltaMidWidth = IndexWidth + 3*(lastWidth+firstDeltaWidth+midDeltaWidth)
)

// Index identifies the component dropped from a Quaternion. Only the low two
// bits are meaningful.
type Index uint8

func (i Index) check() {
	if i > 3 {
		panic(Error.New("invalid missing index: %d", i))
	}
}

func (i Index) pack(w *bitfield.Writer) {
	w.Uint(IndexWidth, uint64(i))
}

func unpackIndex(r *bitfield.Reader) Index {
	return Index(r.Uint(IndexWidth))
}

func packRounded[P fixed.Precision](w *bitfield.Writer, v Rounded[P], width uint) {
	for _, c := range v {
		w.Uint(width, uint64(fixed.Embed(c, width)))
	}
}

func unpackRounded[P fixed.Precision](r *bitfield.Reader, width uint) (v Rounded[P]) {
	for i := range v {
		v[i] = fixed.Extract[P](uint32(r.Uint(width)), width)
	}

	return v
}

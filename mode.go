package joyquat

import (
	"strconv"

	"github.com/calebcase/joyquat/bitfield"
)

// Mode selects the payload layout of a frame.
type Mode uint8

// Modes in wire order. ModeUnknown is never written.
const (
	ModeIndividual Mode = iota
	ModeFirstLastDeltaMid
	ModeLastDeltaFirstDeltaMid
	ModeUnknown
)

func (m Mode) String() string {
	switch m {
	case ModeIndividual:
		return "individual"
	case ModeFirstLastDeltaMid:
		return "first-last-delta-mid"
	case ModeLastDeltaFirstDeltaMid:
		return "last-delta-first-delta-mid"
	case ModeUnknown:
		return "unknown"
	}

	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// Width returns the payload width of m in bits, or zero for ModeUnknown.
func (m Mode) Width() uint {
	switch m {
	case ModeIndividual:
		return IndividualWidth
	case ModeFirstLastDeltaMid:
		return FirstLastDeltaMidWidth
	case ModeLastDeltaFirstDeltaMid:
		return LastDeltaFirstDeltaMidWidth
	}

	return 0
}

// Pack writes the mode selector.
func (m Mode) Pack(w *bitfield.Writer) {
	w.Uint(ModeWidth, uint64(m))
}

// Unpack reads the mode selector.
func (m *Mode) Unpack(r *bitfield.Reader) {
	*m = Mode(r.Uint(ModeWidth))
}

package joyquat

import (
	"github.com/calebcase/joyquat/bitfield"
)

// checkPacked packs p, verifies it used exactly width bits and unpacks the
// result into u. It panics on any inconsistency.
func checkPacked(p interface{ Pack(*bitfield.Writer) }, u interface{ Unpack(*bitfield.Reader) }, width uint) {
	var buf [Size]byte

	w := bitfield.NewWriter(buf[:])
	p.Pack(w)

	if err := w.Err(); err != nil {
		panic(Error.Wrap(err))
	}

	if w.Position() != width {
		panic(Error.New("payload width mismatch: wrote %d bits, want %d", w.Position(), width))
	}

	r := bitfield.NewReader(buf[:])
	u.Unpack(r)

	if err := r.Err(); err != nil {
		panic(Error.Wrap(err))
	}
}

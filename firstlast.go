package joyquat

import (
	"github.com/calebcase/joyquat/bitfield"
	"github.com/calebcase/joyquat/fixed"
)

const (
	firstLastWidth      = 16
	firstLastMidWidth   = 8
	firstLastRangeWidth = 10
	firstLastShift      = 2
)

// FirstLastDeltaMid stores the first and last samples in full and the middle
// sample as its offset from their average.
type FirstLastDeltaMid struct {
	// Shifted is set when MidAvgDelta is stored right shifted by
	// firstLastShift bits.
	Shifted     bool
	Missing     Index
	First       Rounded[fixed.Q15]
	Last        Rounded[fixed.Q15]
	MidAvgDelta Rounded[fixed.Q15]
}

// NewFirstLastDeltaMid packs samples that share the missing index. It
// reports false when the middle offset does not fit even after shifting.
func NewFirstLastDeltaMid(missing Index, samples [3]Rounded[fixed.Q15]) (p FirstLastDeltaMid, ok bool) {
	missing.check()

	first, mid, last := samples[0], samples[1], samples[2]

	delta := mid.Sub(last.Avg(first))
	if !delta.FitsWithin(firstLastRangeWidth) {
		return p, false
	}

	shifted := !delta.FitsWithin(firstLastMidWidth)
	if shifted {
		delta = delta.Shr(firstLastShift)
	}

	p = FirstLastDeltaMid{
		Shifted:     shifted,
		Missing:     missing,
		First:       first,
		Last:        last,
		MidAvgDelta: delta,
	}

	if debug {
		p.check(missing, samples)
	}

	return p, true
}

// Mode returns ModeFirstLastDeltaMid.
func (p FirstLastDeltaMid) Mode() Mode {
	return ModeFirstLastDeltaMid
}

// Samples returns the shared missing index and the first, mid and last
// samples. The middle sample loses its low bits when Shifted is set.
func (p FirstLastDeltaMid) Samples() (Index, [3]Rounded[fixed.Q15]) {
	delta := p.MidAvgDelta
	if p.Shifted {
		delta = delta.Shl(firstLastShift)
	}

	mid := p.Last.Avg(p.First).Add(delta)

	return p.Missing, [3]Rounded[fixed.Q15]{p.First, mid, p.Last}
}

// Quaternions reconstructs the three samples.
func (p FirstLastDeltaMid) Quaternions() [3]Quaternion {
	return reconstructShared(p.Samples())
}

// Pack writes the payload.
func (p FirstLastDeltaMid) Pack(w *bitfield.Writer) {
	w.Bool(p.Shifted)
	p.Missing.pack(w)
	packRounded(w, p.First, firstLastWidth)
	packRounded(w, p.Last, firstLastWidth)
	packRounded(w, p.MidAvgDelta, firstLastMidWidth)
}

// Unpack reads the payload.
func (p *FirstLastDeltaMid) Unpack(r *bitfield.Reader) {
	p.Shifted = r.Bool()
	p.Missing = unpackIndex(r)
	p.First = unpackRounded[fixed.Q15](r, firstLastWidth)
	p.Last = unpackRounded[fixed.Q15](r, firstLastWidth)
	p.MidAvgDelta = unpackRounded[fixed.Q15](r, firstLastMidWidth)
}

func (p FirstLastDeltaMid) check(missing Index, samples [3]Rounded[fixed.Q15]) {
	var got FirstLastDeltaMid
	checkPacked(p, &got, FirstLastDeltaMidWidth)

	idx, unpacked := got.Samples()
	if idx != missing {
		panic(Error.New("first last delta mid index mismatch: %d != %d", idx, missing))
	}

	// Shifting drops the low bits of the middle offset.
	tolerance := fixed.Num[fixed.Q15](0)
	if p.Shifted {
		tolerance = 1<<firstLastShift - 1
	}

	for i := range samples {
		for j := range samples[i] {
			if (unpacked[i][j] - samples[i][j]).Abs() > tolerance {
				panic(Error.New("first last delta mid round trip mismatch: %v != %v", unpacked, samples))
			}
		}
	}
}

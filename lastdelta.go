package joyquat

import (
	"github.com/calebcase/joyquat/bitfield"
	"github.com/calebcase/joyquat/fixed"
)

const (
	lastWidth       = 21
	firstDeltaWidth = 13
	midDeltaWidth   = 7
)

// LastDeltaFirstDeltaMid stores the last sample in full, the first sample as
// its offset from the last and the middle sample as its offset from the
// average of the two.
type LastDeltaFirstDeltaMid struct {
	Missing     Index
	Last        Rounded[fixed.Q20]
	FirstDelta  Rounded[fixed.Q20]
	MidAvgDelta Rounded[fixed.Q20]
}

// NewLastDeltaFirstDeltaMid packs samples that share the missing index. It
// reports false when either offset is too large for its field.
func NewLastDeltaFirstDeltaMid(missing Index, samples [3]Rounded[fixed.Q20]) (p LastDeltaFirstDeltaMid, ok bool) {
	missing.check()

	first, mid, last := samples[0], samples[1], samples[2]

	firstDelta := last.Sub(first)
	midDelta := mid.Sub(last.Avg(first))

	if !firstDelta.FitsWithin(firstDeltaWidth) || !midDelta.FitsWithin(midDeltaWidth) {
		return p, false
	}

	p = LastDeltaFirstDeltaMid{
		Missing:     missing,
		Last:        last,
		FirstDelta:  firstDelta,
		MidAvgDelta: midDelta,
	}

	if debug {
		p.check(missing, samples)
	}

	return p, true
}

// Mode returns ModeLastDeltaFirstDeltaMid.
func (p LastDeltaFirstDeltaMid) Mode() Mode {
	return ModeLastDeltaFirstDeltaMid
}

// Samples returns the shared missing index and the first, mid and last
// samples.
func (p LastDeltaFirstDeltaMid) Samples() (Index, [3]Rounded[fixed.Q20]) {
	first := p.Last.Sub(p.FirstDelta)
	mid := p.Last.Avg(first).Add(p.MidAvgDelta)

	return p.Missing, [3]Rounded[fixed.Q20]{first, mid, p.Last}
}

// Quaternions reconstructs the three samples.
func (p LastDeltaFirstDeltaMid) Quaternions() [3]Quaternion {
	return reconstructShared(p.Samples())
}

// Pack writes the payload.
func (p LastDeltaFirstDeltaMid) Pack(w *bitfield.Writer) {
	p.Missing.pack(w)
	packRounded(w, p.Last, lastWidth)
	packRounded(w, p.FirstDelta, firstDeltaWidth)
	packRounded(w, p.MidAvgDelta, midDeltaWidth)
}

// Unpack reads the payload.
func (p *LastDeltaFirstDeltaMid) Unpack(r *bitfield.Reader) {
	p.Missing = unpackIndex(r)
	p.Last = unpackRounded[fixed.Q20](r, lastWidth)
	p.FirstDelta = unpackRounded[fixed.Q20](r, firstDeltaWidth)
	p.MidAvgDelta = unpackRounded[fixed.Q20](r, midDeltaWidth)
}

func (p LastDeltaFirstDeltaMid) check(missing Index, samples [3]Rounded[fixed.Q20]) {
	var got LastDeltaFirstDeltaMid
	checkPacked(p, &got, LastDeltaFirstDeltaMidWidth)

	idx, unpacked := got.Samples()
	if idx != missing || unpacked != samples {
		panic(Error.New("last delta first delta mid round trip mismatch: %v != %v", unpacked, samples))
	}
}

func reconstructShared[P fixed.Precision](missing Index, samples [3]Rounded[P]) (qs [3]Quaternion) {
	for i, s := range samples {
		qs[i] = Reconstruct(s.Widen(), missing)
	}

	return qs
}

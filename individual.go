package joyquat

import (
	"github.com/calebcase/joyquat/bitfield"
	"github.com/calebcase/joyquat/fixed"
)

const individualComponentWidth = 13

// IndividualSample is one independently elided sample.
type IndividualSample struct {
	Missing Index
	Value   Rounded[fixed.Q12]
}

// Individual stores each sample with its own missing index. It never fails to
// fit and is the fallback when the delta payloads cannot be used.
type Individual [3]IndividualSample

// NewIndividual elides and quantizes each sample.
func NewIndividual(samples [3]Quaternion) (p Individual) {
	for i, q := range samples {
		missing := q.MaxAbsIndex()

		p[i] = IndividualSample{
			Missing: missing,
			Value:   Quantize[fixed.Q12](q.Elide(missing)),
		}
	}

	if debug {
		p.check()
	}

	return p
}

// Mode returns ModeIndividual.
func (p Individual) Mode() Mode {
	return ModeIndividual
}

// Quaternions reconstructs the three samples.
func (p Individual) Quaternions() (qs [3]Quaternion) {
	for i, s := range p {
		qs[i] = Reconstruct(s.Value.Widen(), s.Missing)
	}

	return qs
}

// Pack writes the payload.
func (p Individual) Pack(w *bitfield.Writer) {
	for _, s := range p {
		s.Missing.pack(w)
		packRounded(w, s.Value, individualComponentWidth)
	}
}

// Unpack reads the payload.
func (p *Individual) Unpack(r *bitfield.Reader) {
	for i := range p {
		p[i].Missing = unpackIndex(r)
		p[i].Value = unpackRounded[fixed.Q12](r, individualComponentWidth)
	}
}

func (p Individual) check() {
	for _, s := range p {
		if !s.Value.FitsWithin(individualComponentWidth) {
			panic(Error.New("individual sample out of range: %v", s.Value))
		}
	}

	var got Individual
	checkPacked(p, &got, IndividualWidth)

	if got != p {
		panic(Error.New("individual round trip mismatch: %v != %v", got, p))
	}
}

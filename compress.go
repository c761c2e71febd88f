package joyquat

import (
	"github.com/calebcase/joyquat/bitfield"
	"github.com/calebcase/joyquat/fixed"
)

// Payload is one of Individual, FirstLastDeltaMid or LastDeltaFirstDeltaMid.
type Payload interface {
	Mode() Mode
	Pack(w *bitfield.Writer)
	Quaternions() [3]Quaternion
}

// SelectPayload picks the most precise payload that can hold samples.
func SelectPayload(samples [3]Quaternion) Payload {
	missing := samples[1].MaxAbsIndex()

	var shared [3]Quat3
	for i, q := range samples {
		shared[i] = q.Elide(missing)
	}

	if p, ok := NewLastDeltaFirstDeltaMid(missing, quantizeAll[fixed.Q20](shared)); ok {
		return p
	}

	// The device only tries the 8 bit mid offset when the shared axis
	// dominates the outer samples. The last sample is compared signed.
	half := fixed.One[fixed.Q30]() >> 1
	if samples[0][missing].Abs() > half && samples[2][missing] > half {
		if p, ok := NewFirstLastDeltaMid(missing, quantizeAll[fixed.Q15](shared)); ok {
			return p
		}
	}

	return NewIndividual(samples)
}

// Compress encodes samples (first, mid, last) and ts into a frame. Bits past
// the timestamp are zero.
func Compress(samples [3]Quaternion, ts Timestamp) (frame [Size]byte) {
	p := SelectPayload(samples)

	w := bitfield.NewWriter(frame[:])
	p.Mode().Pack(w)
	p.Pack(w)
	ts.Pack(w)

	if err := w.Err(); err != nil {
		panic(Error.Wrap(err))
	}

	return frame
}

// PeekMode returns the mode selector of frame.
func PeekMode(frame [Size]byte) (m Mode) {
	m.Unpack(bitfield.NewReader(frame[:]))

	return m
}

// Parse decodes a frame. It fails with ErrUnknownMode when the mode selector
// is invalid. Bits past the timestamp are ignored.
func Parse(frame [Size]byte) (samples [3]Quaternion, ts Timestamp, err error) {
	r := bitfield.NewReader(frame[:])

	var mode Mode
	mode.Unpack(r)

	p, err := unpackPayload(mode, r)
	if err != nil {
		return samples, ts, err
	}

	ts.Unpack(r)

	if err = r.Err(); err != nil {
		return samples, ts, Error.Wrap(err)
	}

	return p.Quaternions(), ts, nil
}

func unpackPayload(mode Mode, r *bitfield.Reader) (Payload, error) {
	switch mode {
	case ModeIndividual:
		var p Individual
		p.Unpack(r)

		return p, nil
	case ModeFirstLastDeltaMid:
		var p FirstLastDeltaMid
		p.Unpack(r)

		return p, nil
	case ModeLastDeltaFirstDeltaMid:
		var p LastDeltaFirstDeltaMid
		p.Unpack(r)

		return p, nil
	}

	return nil, ErrUnknownMode
}

package joyquat

import (
	"io"

	"github.com/calebcase/oops"
)

// Encoder writes consecutive frames to a stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w: w,
	}
}

// Encode compresses f and writes the frame.
func (e *Encoder) Encode(f *Frame) (err error) {
	frame := Compress(f.Samples, f.Timestamp)

	_, err = e.w.Write(frame[:])
	if err != nil {
		return oops.Trace(err)
	}

	return nil
}

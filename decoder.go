package joyquat

import (
	"errors"
	"io"

	"github.com/calebcase/oops"
)

// Decoder reads consecutive frames from a stream.
type Decoder struct {
	r io.Reader

	buf   [Size]byte
	frame Frame
	mode  Mode

	err error
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r: r,
	}
}

// Next reads and decodes the next frame. It returns false at the end of the
// stream or on error; check Err to tell them apart.
func (d *Decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	d.frame = Frame{}
	d.mode = ModeUnknown

	_, err := io.ReadFull(d.r, d.buf[:])
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false
		}

		if errors.Is(err, io.ErrUnexpectedEOF) {
			d.err = ErrFrameSize

			return false
		}

		d.err = oops.Trace(err)

		return false
	}

	d.mode = PeekMode(d.buf)

	d.frame.Samples, d.frame.Timestamp, d.err = Parse(d.buf)

	return d.err == nil
}

// Frame returns the most recently decoded frame.
func (d *Decoder) Frame() Frame {
	return d.frame
}

// Mode returns the mode of the most recently read frame.
func (d *Decoder) Mode() Mode {
	return d.mode
}

// Err returns the first error encountered.
func (d *Decoder) Err() error {
	return d.err
}

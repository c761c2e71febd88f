package bitfield

import (
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("bitfield")

// ErrOverflow is returned when a field extends past the end of the buffer.
var ErrOverflow = Error.New("field exceeds buffer")

// MaxWidth is the widest field that can be read or written in one call.
const MaxWidth = 64

func checkWidth(width uint) {
	if width == 0 || width > MaxWidth {
		panic(Error.New("invalid field width: %d", width))
	}
}

// Writer packs fields into a byte slice.
type Writer struct {
	buf []byte
	pos uint
	err error
}

// NewWriter returns a writer positioned at the first bit of buf.
func NewWriter(buf []byte) *Writer {
	return &Writer{
		buf: buf,
	}
}

// Uint writes the low width bits of v.
func (w *Writer) Uint(width uint, v uint64) {
	if w.err != nil {
		return
	}

	checkWidth(width)

	if w.pos+width > uint(len(w.buf))*8 {
		w.err = ErrOverflow

		return
	}

	for i := uint(0); i < width; i++ {
		p := w.pos + i

		if v>>i&1 == 1 {
			w.buf[p/8] |= 1 << (p % 8)
		} else {
			w.buf[p/8] &^= 1 << (p % 8)
		}
	}

	w.pos += width
}

// Bool writes a single bit.
func (w *Writer) Bool(b bool) {
	var v uint64
	if b {
		v = 1
	}

	w.Uint(1, v)
}

// Position returns the number of bits written.
func (w *Writer) Position() uint {
	return w.pos
}

// Err returns the first error encountered.
func (w *Writer) Err() error {
	return w.err
}

// Reader unpacks fields from a byte slice.
type Reader struct {
	buf []byte
	pos uint
	err error
}

// NewReader returns a reader positioned at the first bit of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{
		buf: buf,
	}
}

// Uint reads a width bit field.
func (r *Reader) Uint(width uint) (v uint64) {
	if r.err != nil {
		return 0
	}

	checkWidth(width)

	if width > r.Remaining() {
		r.err = ErrOverflow

		return 0
	}

	for i := uint(0); i < width; i++ {
		p := r.pos + i

		v |= uint64(r.buf[p/8]>>(p%8)&1) << i
	}

	r.pos += width

	return v
}

// Bool reads a single bit.
func (r *Reader) Bool() bool {
	return r.Uint(1) == 1
}

// Position returns the number of bits consumed.
func (r *Reader) Position() uint {
	return r.pos
}

// Remaining returns the number of bits left in the buffer.
func (r *Reader) Remaining() uint {
	return uint(len(r.buf))*8 - r.pos
}

// Err returns the first error encountered.
func (r *Reader) Err() error {
	return r.err
}

package joyquat

import (
	"github.com/calebcase/joyquat/bitfield"
)

const (
	startMask = 1<<StartWidth - 1
	countMask = 1<<CountWidth - 1
)

// Timestamp is the pair of counters trailing every frame. Their meaning is
// up to the device.
type Timestamp struct {
	start uint16
	count uint8
}

// NewTimestamp returns a timestamp with start masked to 11 bits and count to
// 6 bits.
func NewTimestamp(start uint16, count uint8) Timestamp {
	return Timestamp{
		start: start & startMask,
		count: count & countMask,
	}
}

// Start returns the 11 bit start counter.
func (t Timestamp) Start() uint16 {
	return t.start
}

// Count returns the 6 bit sample counter.
func (t Timestamp) Count() uint8 {
	return t.count
}

// Pack writes the timestamp.
func (t Timestamp) Pack(w *bitfield.Writer) {
	w.Uint(StartWidth, uint64(t.start))
	w.Uint(CountWidth, uint64(t.count))
}

// Unpack reads the timestamp.
func (t *Timestamp) Unpack(r *bitfield.Reader) {
	t.start = uint16(r.Uint(StartWidth))
	t.count = uint8(r.Uint(CountWidth))
}

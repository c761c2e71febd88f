package bitfield_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/joyquat/bitfield"
	"github.com/calebcase/oops"
)

type field struct {
	width uint
	value uint64
}

func TestWriter(t *testing.T) {
	type TC struct {
		name   string
		fields []field
		output []byte
		mark   error
	}

	tcs := []TC{
		{
			name:   "single bit",
			fields: []field{{1, 1}},
			output: []byte{0b_0000_0001, 0b_0000_0000},
			mark:   oops.New("unexpected"),
		},
		{
			name:   "2+7",
			fields: []field{{2, 0b10}, {7, 0b000_0011}},
			output: []byte{0b_0000_1110, 0b_0000_0000},
			mark:   oops.New("unexpected"),
		},
		{
			name:   "straddle",
			fields: []field{{3, 0b101}, {11, 0b111_0000_1111}},
			output: []byte{0b_0111_1101, 0b_0011_1000},
			mark:   oops.New("unexpected"),
		},
		{
			name:   "truncates high bits",
			fields: []field{{4, 0xff}},
			output: []byte{0b_0000_1111, 0b_0000_0000},
			mark:   oops.New("unexpected"),
		},
		{
			name:   "full",
			fields: []field{{16, 0xbeef}},
			output: []byte{0xef, 0xbe},
			mark:   oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			buf := make([]byte, 2)
			w := bitfield.NewWriter(buf)

			var total uint
			for _, f := range tc.fields {
				w.Uint(f.width, f.value)
				total += f.width
			}

			require.NoError(t, w.Err(), tc.mark)
			require.Equal(t, total, w.Position(), tc.mark)
			require.Equal(t, tc.output, buf, tc.mark)

			r := bitfield.NewReader(buf)
			for _, f := range tc.fields {
				mask := uint64(1)<<f.width - 1
				require.Equal(t, f.value&mask, r.Uint(f.width), tc.mark)
			}

			require.NoError(t, r.Err(), tc.mark)
			require.Equal(t, uint(16)-total, r.Remaining(), tc.mark)
		})
	}
}

func TestWriterClearsBits(t *testing.T) {
	buf := []byte{0xff, 0xff}
	w := bitfield.NewWriter(buf)

	w.Uint(4, 0)
	w.Bool(false)
	w.Bool(true)

	require.NoError(t, w.Err())
	require.Equal(t, []byte{0b_1110_0000, 0xff}, buf)
}

func TestOverflow(t *testing.T) {
	t.Run("writer", func(t *testing.T) {
		buf := make([]byte, 1)
		w := bitfield.NewWriter(buf)

		w.Uint(6, 0b11_1111)
		w.Uint(3, 0b111)
		require.ErrorIs(t, w.Err(), bitfield.ErrOverflow)
		require.Equal(t, uint(6), w.Position())

		// Sticky: later writes that would fit are ignored.
		w.Uint(2, 0b11)
		require.Equal(t, uint(6), w.Position())
		require.Equal(t, []byte{0b_0011_1111}, buf)
	})

	t.Run("reader", func(t *testing.T) {
		r := bitfield.NewReader([]byte{0xff})

		require.Equal(t, uint64(0x7f), r.Uint(7))
		require.Equal(t, uint64(0), r.Uint(2))
		require.ErrorIs(t, r.Err(), bitfield.ErrOverflow)

		require.False(t, r.Bool())
		require.Equal(t, uint(7), r.Position())
	})

	t.Run("width", func(t *testing.T) {
		require.Panics(t, func() { bitfield.NewWriter(make([]byte, 16)).Uint(0, 0) })
		require.Panics(t, func() { bitfield.NewReader(make([]byte, 16)).Uint(65) })
	})
}

func TestWide(t *testing.T) {
	buf := make([]byte, 18)
	w := bitfield.NewWriter(buf)

	w.Uint(2, 0b01)
	w.Uint(64, 0x0123_4567_89ab_cdef)
	w.Uint(63, 0x7edc_ba98_7654_3210)
	require.NoError(t, w.Err())
	require.Equal(t, uint(129), w.Position())

	r := bitfield.NewReader(buf)
	require.Equal(t, uint64(0b01), r.Uint(2))
	require.Equal(t, uint64(0x0123_4567_89ab_cdef), r.Uint(64))
	require.Equal(t, uint64(0x7edc_ba98_7654_3210), r.Uint(63))
	require.Equal(t, uint(15), r.Remaining())
	require.NoError(t, r.Err())
}

package joyquat

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/joyquat/fixed"
)

func TestQuantize(t *testing.T) {
	half := int32(1) << 14 // half of a Q15 unit at Q30

	v := Quat3{
		fixed.FromBits[fixed.Q30](half),
		fixed.FromBits[fixed.Q30](-half),
		fixed.FromBits[fixed.Q30](half - 1),
	}

	require.Equal(t, Rounded[fixed.Q15]{1, -1, 0}, Quantize[fixed.Q15](v))
	require.Equal(t, Rounded[fixed.Q12]{0, 0, 0}, Quantize[fixed.Q12](v))

	t.Run("widen is exact", func(t *testing.T) {
		r := Rounded[fixed.Q20]{1, -1, 1 << 19}
		require.Equal(t, Quat3{1 << 10, -1 << 10, 1 << 29}, r.Widen())
		require.Equal(t, r, Quantize[fixed.Q20](r.Widen()))
	})

	t.Run("error is at most half a unit", func(t *testing.T) {
		for raw := int32(-1 << 20); raw < 1<<20; raw += 997 {
			v := Quat3{fixed.FromBits[fixed.Q30](raw)}

			got := Quantize[fixed.Q12](v).Widen()
			diff := (got[0] - v[0]).Abs()
			require.LessOrEqual(t, int32(diff), int32(1)<<17, raw)
		}
	})
}

func TestRoundedArithmetic(t *testing.T) {
	a := Rounded[fixed.Q20]{10, -10, 3}
	b := Rounded[fixed.Q20]{-3, 3, 4}

	require.Equal(t, Rounded[fixed.Q20]{7, -7, 7}, a.Add(b))
	require.Equal(t, Rounded[fixed.Q20]{13, -13, -1}, a.Sub(b))
	require.Equal(t, Rounded[fixed.Q20]{4, -4, 4}, a.Avg(b))
	require.Equal(t, a.Avg(b), b.Avg(a))

	require.Equal(t, Rounded[fixed.Q20]{2, -3, 0}, a.Shr(2))
	require.Equal(t, Rounded[fixed.Q20]{40, -40, 12}, a.Shl(2))

	// Operands are values; nothing is modified in place.
	require.Equal(t, Rounded[fixed.Q20]{10, -10, 3}, a)
}

func TestRoundedFitsWithin(t *testing.T) {
	type TC struct {
		v     Rounded[fixed.Q15]
		width uint
		fits  bool
	}

	tcs := []TC{
		{v: Rounded[fixed.Q15]{511, 0, 0}, width: 10, fits: true},
		{v: Rounded[fixed.Q15]{0, 512, 0}, width: 10, fits: false},
		{v: Rounded[fixed.Q15]{0, 0, -512}, width: 10, fits: true},
		{v: Rounded[fixed.Q15]{-513, 0, 0}, width: 10, fits: false},
		{v: Rounded[fixed.Q15]{127, -128, 127}, width: 8, fits: true},
		{v: Rounded[fixed.Q15]{127, -128, 128}, width: 8, fits: false},
		{v: Rounded[fixed.Q15]{-129, 0, 0}, width: 8, fits: false},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%v/%d", i, tc.v, tc.width), func(t *testing.T) {
			require.Equal(t, tc.fits, tc.v.FitsWithin(tc.width))
		})
	}
}

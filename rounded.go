package joyquat

import (
	"github.com/calebcase/joyquat/fixed"
)

// Quat3 is a Quaternion with one component elided. The index of the elided
// component always travels next to it.
type Quat3 [3]fixed.Num[fixed.Q30]

// Rounded is a Quat3 quantized to precision P.
type Rounded[P fixed.Precision] [3]fixed.Num[P]

// Quantize rounds each component of v half away from zero.
func Quantize[P fixed.Precision](v Quat3) (r Rounded[P]) {
	for i, c := range v {
		r[i] = fixed.Round[P](c)
	}

	return r
}

func quantizeAll[P fixed.Precision](vs [3]Quat3) (rs [3]Rounded[P]) {
	for i, v := range vs {
		rs[i] = Quantize[P](v)
	}

	return rs
}

// Widen returns r at full precision. No rounding occurs.
func (r Rounded[P]) Widen() (v Quat3) {
	for i, c := range r {
		v[i] = fixed.Convert[fixed.Q30](c)
	}

	return v
}

// Add returns r+o.
func (r Rounded[P]) Add(o Rounded[P]) Rounded[P] {
	for i := range r {
		r[i] += o[i]
	}

	return r
}

// Sub returns r-o.
func (r Rounded[P]) Sub(o Rounded[P]) Rounded[P] {
	for i := range r {
		r[i] -= o[i]
	}

	return r
}

// Avg returns the componentwise average rounded half away from zero.
func (r Rounded[P]) Avg(o Rounded[P]) Rounded[P] {
	for i := range r {
		r[i] = fixed.Avg(r[i], o[i])
	}

	return r
}

// Shr arithmetic shifts every component right by n bits.
func (r Rounded[P]) Shr(n uint) Rounded[P] {
	for i := range r {
		r[i] >>= n
	}

	return r
}

// Shl shifts every component left by n bits.
func (r Rounded[P]) Shl(n uint) Rounded[P] {
	for i := range r {
		r[i] <<= n
	}

	return r
}

// FitsWithin reports whether every component fits a width bit field.
func (r Rounded[P]) FitsWithin(width uint) bool {
	for _, c := range r {
		if !c.FitsWithin(width) {
			return false
		}
	}

	return true
}

package joyquat

import (
	"gonum.org/v1/gonum/num/quat"

	"github.com/calebcase/joyquat/fixed"
)

// Quaternion is a unit quaternion with components stored x, y, z, w.
type Quaternion [4]fixed.Num[fixed.Q30]

// FromNumber converts q to fixed point.
func FromNumber(q quat.Number) Quaternion {
	return Quaternion{
		fixed.FromFloat[fixed.Q30](q.Imag),
		fixed.FromFloat[fixed.Q30](q.Jmag),
		fixed.FromFloat[fixed.Q30](q.Kmag),
		fixed.FromFloat[fixed.Q30](q.Real),
	}
}

// Number converts q to floating point.
func (q Quaternion) Number() quat.Number {
	return quat.Number{
		Real: q[3].Float(),
		Imag: q[0].Float(),
		Jmag: q[1].Float(),
		Kmag: q[2].Float(),
	}
}

// MaxAbsIndex returns the index of the largest magnitude component. Ties go
// to the lowest index.
func (q Quaternion) MaxAbsIndex() Index {
	idx := 0
	best := q[0].Abs()

	for i := 1; i < len(q); i++ {
		if v := q[i].Abs(); v > best {
			idx = i
			best = v
		}
	}

	return Index(idx)
}

// Elide drops the component at missing. The others are returned in cyclic
// order starting after missing and carry the sign of the dropped component.
func (q Quaternion) Elide(missing Index) (v Quat3) {
	missing.check()

	sign := fixed.Num[fixed.Q30](q[missing].Sign())

	for i := range v {
		v[i] = q[(i+1+int(missing))&3] * sign
	}

	return v
}

// Reconstruct reverses Elide using the unit norm identity. The recovered
// component is never negative; rounding that pushes the sum of squares past
// one yields zero.
func Reconstruct(v Quat3, missing Index) (q Quaternion) {
	missing.check()

	// The residual can drop below the register's range for decoded deltas
	// near -1.
	residual := int64(fixed.One[fixed.Q30]())

	for i := 1; i <= 3; i++ {
		c := v[i-1]
		q[(i+int(missing))&3] = c
		residual -= int64(c.Mul(c))
	}

	if residual > 0 {
		q[missing] = fixed.Num[fixed.Q30](residual).Sqrt()
	}

	return q
}

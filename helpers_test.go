package joyquat

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/num/quat"

	"github.com/calebcase/joyquat/fixed"
)

func randomUnit(rng *rand.Rand) quat.Number {
	q := quat.Number{
		Real: rng.NormFloat64(),
		Imag: rng.NormFloat64(),
		Jmag: rng.NormFloat64(),
		Kmag: rng.NormFloat64(),
	}

	return quat.Scale(1/quat.Abs(q), q)
}

func randomRotation(rng *rand.Rand, angle float64) quat.Number {
	axis := randomUnit(rng)
	axis.Real = 0
	axis = quat.Scale(1/quat.Abs(axis), axis)

	s := math.Sin(angle / 2)

	return quat.Number{
		Real: math.Cos(angle / 2),
		Imag: axis.Imag * s,
		Jmag: axis.Jmag * s,
		Kmag: axis.Kmag * s,
	}
}

// randomTriplet returns three samples taken around a random orientation.
// With smooth set the rotation between samples is constant.
func randomTriplet(rng *rand.Rand, angle float64, smooth bool) [3]Quaternion {
	q := randomUnit(rng)
	d := randomRotation(rng, angle)

	if smooth {
		return [3]Quaternion{
			FromNumber(quat.Mul(quat.Conj(d), q)),
			FromNumber(q),
			FromNumber(quat.Mul(d, q)),
		}
	}

	return [3]Quaternion{
		FromNumber(quat.Mul(d, q)),
		FromNumber(q),
		FromNumber(quat.Mul(q, d)),
	}
}

// tolerance is the largest per component error expected from each mode.
var tolerance = map[Mode]float64{
	ModeIndividual:             4.0 / (1 << 12),
	ModeFirstLastDeltaMid:      8.0 / (1 << 15),
	ModeLastDeltaFirstDeltaMid: 4.0 / (1 << 20),
}

// distance returns the largest component difference between a and b,
// treating q and -q as the same rotation.
func distance(a, b Quaternion) float64 {
	var same, flipped float64

	for i := range a {
		same = math.Max(same, math.Abs(a[i].Float()-b[i].Float()))
		flipped = math.Max(flipped, math.Abs(a[i].Float()+b[i].Float()))
	}

	return math.Min(same, flipped)
}

func requireClose(t testing.TB, want, got Quaternion, tol float64, msgAndArgs ...interface{}) {
	t.Helper()

	if d := distance(want, got); d > tol {
		t.Fatalf("distance %g > %g: want %v got %v %v", d, tol, want, got, msgAndArgs)
	}
}

func q30(raw ...int32) (q Quaternion) {
	for i, r := range raw {
		q[i] = fixed.FromBits[fixed.Q30](r)
	}

	return q
}

package fixed

import (
	"math"
	"strconv"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("fixed")

// Width is the width of the register backing every Num.
const Width = 32

// Precision selects the number of fractional bits of a Num.
type Precision interface {
	Frac() uint
}

// Precision tags.
type (
	Q30 struct{}
	Q20 struct{}
	Q15 struct{}
	Q12 struct{}
)

func (Q30) Frac() uint { return 30 }
func (Q20) Frac() uint { return 20 }
func (Q15) Frac() uint { return 15 }
func (Q12) Frac() uint { return 12 }

// Frac returns the fractional bits of P.
func Frac[P Precision]() uint {
	var p P

	return p.Frac()
}

// Num is a signed fixed point number with Frac[P]() fractional bits.
type Num[P Precision] int32

// FromBits returns the number whose register holds raw.
func FromBits[P Precision](raw int32) Num[P] {
	return Num[P](raw)
}

// One returns 1.0 at precision P.
func One[P Precision]() Num[P] {
	return Num[P](int32(1) << Frac[P]())
}

// FromFloat converts f rounding to the nearest representable value. Values
// outside the register saturate to ±math.MaxInt32 so Abs stays non-negative.
// NaN converts to zero.
func FromFloat[P Precision](f float64) Num[P] {
	raw := math.Round(math.Ldexp(f, int(Frac[P]())))

	switch {
	case math.IsNaN(raw):
		return 0
	case raw >= math.MaxInt32:
		return math.MaxInt32
	case raw <= -math.MaxInt32:
		return -math.MaxInt32
	}

	return Num[P](int32(raw))
}

// Bits returns the raw register.
func (n Num[P]) Bits() int32 {
	return int32(n)
}

// Float returns n as a float64.
func (n Num[P]) Float() float64 {
	return math.Ldexp(float64(n), -int(Frac[P]()))
}

func (n Num[P]) String() string {
	return strconv.FormatFloat(n.Float(), 'f', -1, 64)
}

// Sign returns -1, 0 or +1.
func (n Num[P]) Sign() int32 {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}

	return 0
}

// Abs returns |n|.
func (n Num[P]) Abs() Num[P] {
	if n < 0 {
		return -n
	}

	return n
}

// Mul returns n*m truncated toward negative infinity.
func (n Num[P]) Mul(m Num[P]) Num[P] {
	return Num[P](int32((int64(n) * int64(m)) >> Frac[P]()))
}

// Sqrt returns the floor of the square root of n. Negative values yield zero.
func (n Num[P]) Sqrt() Num[P] {
	if n <= 0 {
		return 0
	}

	return Num[P](int32(isqrt(uint64(n) << Frac[P]())))
}

// FitsWithin reports whether n survives truncation to a width bit two's
// complement field.
func (n Num[P]) FitsWithin(width uint) bool {
	checkWidth(width)

	shift := Width - width

	return (int32(n)<<shift)>>shift == int32(n)
}

// Avg returns (a+b)/2 rounded half away from zero.
func Avg[P Precision](a, b Num[P]) Num[P] {
	s := a + b

	return (s + Num[P](s.Sign())) >> 1
}

// Convert changes the precision of n. Narrowing truncates toward negative
// infinity. Widening is exact while the result fits the register.
func Convert[To, From Precision](n Num[From]) Num[To] {
	from, to := Frac[From](), Frac[To]()

	if from >= to {
		return Num[To](int32(n) >> (from - to))
	}

	return Num[To](int32(n) << (to - from))
}

// Round narrows n to precision To rounding half away from zero. Widening is
// the same as Convert.
func Round[To, From Precision](n Num[From]) Num[To] {
	from, to := Frac[From](), Frac[To]()

	if from <= to {
		return Convert[To](n)
	}

	shift := from - to
	epsilon := int32(1) << (shift - 1)

	// Truncate the magnitude so both signs round symmetrically.
	if n < 0 {
		return -Num[To]((-int32(n) + epsilon) >> shift)
	}

	return Num[To]((int32(n) + epsilon) >> shift)
}

// Embed returns the low width bits of the register.
func Embed[P Precision](n Num[P], width uint) uint32 {
	checkWidth(width)

	return uint32(n) & mask(width)
}

// Extract sign extends a width bit field into the register.
func Extract[P Precision](field uint32, width uint) Num[P] {
	checkWidth(width)

	shift := Width - width

	return Num[P](int32(field<<shift) >> shift)
}

func mask(width uint) uint32 {
	if width == Width {
		return math.MaxUint32
	}

	return uint32(1)<<width - 1
}

func checkWidth(width uint) {
	if width == 0 || width > Width {
		panic(Error.New("invalid field width: %d", width))
	}
}

func isqrt(n uint64) uint64 {
	var res uint64

	bit := uint64(1) << 62
	for bit > n {
		bit >>= 2
	}

	for bit != 0 {
		if n >= res+bit {
			n -= res + bit
			res = res>>1 + bit
		} else {
			res >>= 1
		}

		bit >>= 2
	}

	return res
}

package fraction

import (
	"math"
	"math/bits"
)

// Add returns f + o.
// Errors: ErrOverflow when the exact sum does not fit in int64.
func (f Fraction) Add(o Fraction) (Fraction, error) {
	return f.addSub(o, true)
}

// AddInt returns f + n.
func (f Fraction) AddInt(n int64) (Fraction, error) {
	return f.addSub(NewInt(n), true)
}

// Sub returns f - o.
// Errors: ErrOverflow when the exact difference does not fit in int64.
func (f Fraction) Sub(o Fraction) (Fraction, error) {
	return f.addSub(o, false)
}

// SubInt returns f - n.
func (f Fraction) SubInt(n int64) (Fraction, error) {
	return f.addSub(NewInt(n), false)
}

// addSub is the shared exact addition/subtraction kernel, following the
// gcd decomposition of Knuth TAOCP vol. 2, §4.5.1 (exercise 7): with
// d1 = gcd(f.den, o.den), the result
//
//	(f.num·(o.den/d1) ± o.num·(f.den/d1)) / (f.den/d1 · o.den/d2)
//
// (d2 = gcd of the numerator sum and d1) is already in lowest terms, and
// its intermediates stay far smaller than a naive cross-multiplication.
func (f Fraction) addSub(o Fraction, add bool) (Fraction, error) {
	// Zero operands need no arithmetic at all.
	if f.num == 0 {
		if add {
			return o, nil
		}

		return o.Neg()
	}
	if o.num == 0 {
		return f, nil
	}

	d1 := int64(gcd(uint64(f.den), uint64(o.den)))
	if d1 == 1 {
		// Coprime denominators: the straightforward formula is exact and
		// already reduced.
		uvp, ok1 := mulExact(f.num, o.den)
		upv, ok2 := mulExact(o.num, f.den)
		if !ok1 || !ok2 {
			return Fraction{}, ErrOverflow
		}
		num, ok := addSubExact(uvp, upv, add)
		if !ok {
			return Fraction{}, ErrOverflow
		}
		den, ok := mulExact(f.den, o.den)
		if !ok {
			return Fraction{}, ErrOverflow
		}

		return Fraction{num: num, den: den}, nil
	}

	uvp, ok1 := mulExact(f.num, o.den/d1)
	upv, ok2 := mulExact(o.num, f.den/d1)
	if !ok1 || !ok2 {
		return Fraction{}, ErrOverflow
	}
	t, ok := addSubExact(uvp, upv, add)
	if !ok {
		return Fraction{}, ErrOverflow
	}

	tmod := t % d1
	if tmod < 0 {
		tmod += d1
	}
	d2 := d1
	if tmod != 0 {
		d2 = int64(gcd(uint64(tmod), uint64(d1)))
	}

	den, ok := mulExact(f.den/d1, o.den/d2)
	if !ok {
		return Fraction{}, ErrOverflow
	}

	return Fraction{num: t / d2, den: den}, nil
}

// Mul returns f · o.
// Errors: ErrOverflow when the exact product does not fit in int64.
func (f Fraction) Mul(o Fraction) (Fraction, error) {
	if f.num == 0 || o.num == 0 {
		return Zero, nil
	}

	// Cross-reduce before multiplying (Knuth 4.5.1): keeps intermediates
	// minimal and the result in lowest terms.
	d1 := int64(gcd(mag(f.num), uint64(o.den)))
	d2 := int64(gcd(mag(o.num), uint64(f.den)))

	num, ok1 := mulExact(f.num/d1, o.num/d2)
	den, ok2 := mulExact(f.den/d2, o.den/d1)
	if !ok1 || !ok2 {
		return Fraction{}, ErrOverflow
	}

	return Fraction{num: num, den: den}, nil
}

// MulInt returns f · n.
func (f Fraction) MulInt(n int64) (Fraction, error) {
	return f.Mul(NewInt(n))
}

// Div returns f / o.
// Errors: ErrDivisionByZero when o is zero; ErrOverflow otherwise as for Mul.
func (f Fraction) Div(o Fraction) (Fraction, error) {
	if o.num == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	r, err := o.Reciprocal()
	if err != nil {
		return Fraction{}, err
	}

	return f.Mul(r)
}

// DivInt returns f / n.
func (f Fraction) DivInt(n int64) (Fraction, error) {
	if n == 0 {
		return Fraction{}, ErrDivisionByZero
	}

	return f.Div(NewInt(n))
}

// Neg returns -f.
// Errors: ErrOverflow when the numerator is math.MinInt64.
func (f Fraction) Neg() (Fraction, error) {
	if f.num == math.MinInt64 {
		return Fraction{}, ErrOverflow
	}

	return Fraction{num: -f.num, den: f.den}, nil
}

// Abs returns |f|.
// Errors: ErrOverflow when the numerator is math.MinInt64.
func (f Fraction) Abs() (Fraction, error) {
	if f.num >= 0 {
		return f, nil
	}

	return f.Neg()
}

// Reciprocal returns 1/f, moving the sign onto the numerator.
// Errors: ErrDivisionByZero for the zero fraction; ErrOverflow when the
// numerator is math.MinInt64.
func (f Fraction) Reciprocal() (Fraction, error) {
	if f.num == 0 {
		return Fraction{}, ErrDivisionByZero
	}

	return New(f.den, f.num)
}

// Pow returns f raised to the integer power n, using binary
// exponentiation with overflow-checked multiplications. Negative
// exponents apply to the reciprocal; f.Pow(0) is One for every f.
func (f Fraction) Pow(n int) (Fraction, error) {
	if n == 0 {
		return One, nil
	}
	if f.num == 0 {
		if n < 0 {
			return Fraction{}, ErrDivisionByZero
		}

		return Zero, nil
	}

	base := f
	m := int64(n)
	if m < 0 {
		r, err := f.Reciprocal()
		if err != nil {
			return Fraction{}, err
		}
		base = r
		m = -m
	}

	result := One
	var err error
	for ; m > 0; m >>= 1 {
		if m&1 == 1 {
			if result, err = result.Mul(base); err != nil {
				return Fraction{}, err
			}
		}
		if m > 1 {
			if base, err = base.Mul(base); err != nil {
				return Fraction{}, err
			}
		}
	}

	return result, nil
}

// Cmp compares f and o numerically, returning -1, 0 or +1. The
// comparison cross-multiplies in 128 bits, so it is exact for every
// representable fraction.
func (f Fraction) Cmp(o Fraction) int {
	lNeg, lHi, lLo := mul128(f.num, o.den)
	rNeg, rHi, rLo := mul128(o.num, f.den)

	switch {
	case lNeg && !rNeg:
		return -1
	case !lNeg && rNeg:
		return 1
	}

	// Same sign: compare magnitudes, inverted for negatives.
	c := 0
	if lHi != rHi {
		if lHi < rHi {
			c = -1
		} else {
			c = 1
		}
	} else if lLo != rLo {
		if lLo < rLo {
			c = -1
		} else {
			c = 1
		}
	}
	if lNeg {
		c = -c
	}

	return c
}

// --- checked int64 helpers ---------------------------------------------------

// mag returns |x| as a uint64; exact even for math.MinInt64.
func mag(x int64) uint64 {
	u := uint64(x)
	if x < 0 {
		u = -u
	}

	return u
}

// gcd returns the greatest common divisor of a and b (gcd(0, b) == b).
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// addExact returns a+b and whether it fits in int64.
func addExact(a, b int64) (int64, bool) {
	r := a + b

	return r, (a^r)&(b^r) >= 0
}

// addSubExact returns a+b or a-b according to add, and whether the exact
// result fits in int64.
func addSubExact(a, b int64, add bool) (int64, bool) {
	if add {
		return addExact(a, b)
	}
	r := a - b

	return r, (a^b)&(a^r) >= 0
}

// mulExact returns a·b and whether it fits in int64.
func mulExact(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	r := a * b

	return r, r/b == a
}

// mulAdd returns a·b + c and whether the exact result fits in int64.
func mulAdd(a, b, c int64) (int64, bool) {
	p, ok := mulExact(a, b)
	if !ok {
		return 0, false
	}

	return addExact(p, c)
}

// mul128 returns the sign and 128-bit magnitude of a·b.
func mul128(a, b int64) (neg bool, hi, lo uint64) {
	neg = (a < 0) != (b < 0)
	hi, lo = bits.Mul64(mag(a), mag(b))
	if hi == 0 && lo == 0 {
		neg = false
	}

	return neg, hi, lo
}

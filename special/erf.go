package special

import "math"

// dekkerMultiplier splits a float64 into high and low parts. From
// Dekker (1971): 2^ceil(p/2) + 1 with p = 53 mantissa bits, i.e. 2^27+1.
const dekkerMultiplier = 1.0 + 0x1p27

// Erf returns the error function of x.
func Erf(x float64) float64 {
	return erfImp(x, false)
}

// Erfc returns the complementary error function of x, 1 - Erf(x),
// computed without cancellation for large x.
func Erfc(x float64) float64 {
	return erfImp(x, true)
}

// erfImp evaluates erf(z) (invert=false) or erfc(z) (invert=true) with
// the 53-bit Boost rational approximations. The selection ladder tries
// the most likely ranges first; within the erfc bands the result is a
// band constant Y plus a small rational correction, scaled by
// exp(-z²)/z.
func erfImp(z float64, invert bool) float64 {
	if math.IsNaN(z) {
		return math.NaN()
	}

	if z < 0 {
		switch {
		case !invert:
			return -erfImp(-z, false)
		case z < -0.5:
			return 2 - erfImp(-z, true)
		default:
			return 1 + erfImp(-z, false)
		}
	}

	var result float64

	switch {
	case z < 0.5:
		// erf directly.
		if z < 1e-10 {
			if z == 0 {
				// Keeps the odd symmetry: erf(-0.0) == -0.0.
				result = z
			} else {
				const c = 0.003379167095512573896158903121545171688
				result = z*1.125 + z*c
			}
		} else {
			// Maximum deviation found: 1.561e-17.
			const y = 1.044948577880859375
			zz := z * z
			p := -0.000322780120964605683831
			p = -0.00772758345802133288487 + p*zz
			p = -0.0509990735146777432841 + p*zz
			p = -0.338165134459360935041 + p*zz
			p = 0.0834305892146531832907 + p*zz
			q := 0.000370900071787748000569
			q = 0.00858571925074406212772 + q*zz
			q = 0.0875222600142252549554 + q*zz
			q = 0.455004033050794024546 + q*zz
			q = 1.0 + q*zz
			result = z * (y + p/q)
		}
	case (invert && z < 28) || (!invert && z < 5.9306640625):
		// erfc from here on. The Boost cutoff of 5.8 is raised to
		// 6073/1024 ≈ 5.93, past which erf rounds to 1 anyway.
		invert = !invert
		switch {
		case z < 1.5:
			// Maximum deviation found: 3.702e-17.
			const y = 0.405935764312744140625
			zm := z - 0.5
			p := 0.00180424538297014223957
			p = 0.0195049001251218801359 + p*zm
			p = 0.0888900368967884466578 + p*zm
			p = 0.191003695796775433986 + p*zm
			p = 0.178114665841120341155 + p*zm
			p = -0.098090592216281240205 + p*zm
			q := 0.337511472483094676155e-5
			q = 0.0113385233577001411017 + q*zm
			q = 0.12385097467900864233 + q*zm
			q = 0.578052804889902404909 + q*zm
			q = 1.42628004845511324508 + q*zm
			q = 1.84759070983002217845 + q*zm
			q = 1.0 + q*zm
			result = y + p/q
			result *= math.Exp(-z*z) / z
		case z < 2.5:
			// Maximum deviation found: 3.909e-18.
			const y = 0.50672817230224609375
			zm := z - 1.5
			p := 0.000235839115596880717416
			p = 0.00323962406290842133584 + p*zm
			p = 0.0175679436311802092299 + p*zm
			p = 0.04394818964209516296 + p*zm
			p = 0.0386540375035707201728 + p*zm
			p = -0.0243500476207698441272 + p*zm
			q := 0.00410369723978904575884
			q = 0.0563921837420478160373 + q*zm
			q = 0.325732924782444448493 + q*zm
			q = 0.982403709157920235114 + q*zm
			q = 1.53991494948552447182 + q*zm
			q = 1.0 + q*zm
			result = y + p/q
			result *= expMinusSquare(z) / z
		case z < 4.5:
			// Maximum deviation found: 1.512e-17.
			const y = 0.5405750274658203125
			zm := z - 3.5
			p := 0.113212406648847561139e-4
			p = 0.000250269961544794627958 + p*zm
			p = 0.00212825620914618649141 + p*zm
			p = 0.00840807615555585383007 + p*zm
			p = 0.0137384425896355332126 + p*zm
			p = 0.00295276716530971662634 + p*zm
			q := 0.000479411269521714493907
			q = 0.0105982906484876531489 + q*zm
			q = 0.0958492726301061423444 + q*zm
			q = 0.442597659481563127003 + q*zm
			q = 1.04217814166938418171 + q*zm
			q = 1.0 + q*zm
			result = y + p/q
			result *= expMinusSquare(z) / z
		default:
			// Maximum deviation found: 2.860e-17.
			const y = 0.5579090118408203125
			iz := 1 / z
			p := -2.8175401114513378771
			p = -3.22729451764143718517 + p*iz
			p = -2.5518551727311523996 + p*iz
			p = -0.687717681153649930619 + p*iz
			p = -0.212652252872804219852 + p*iz
			p = 0.0175389834052493308818 + p*iz
			p = 0.00628057170626964891937 + p*iz
			q := 5.48409182238641741584
			q = 13.5064170191802889145 + q*iz
			q = 22.9367376522880577224 + q*iz
			q = 15.930646027911794143 + q*iz
			q = 11.0567237927800161565 + q*iz
			q = 2.79257750980575282228 + q*iz
			q = 1.0 + q*iz
			result = y + p/q
			result *= expMinusSquare(z) / z
		}
	default:
		// erfc underflows to zero beyond 28.
		result = 0
		invert = !invert
	}

	if invert {
		result = 1 - result
	}

	return result
}

// expMinusSquare computes exp(-z²) with the round-off of z² compensated:
// exp(-sq)·exp(-err) where sq is the rounded square and err the exact
// low part from Dekker's product.
func expMinusSquare(z float64) float64 {
	sq := z * z
	errSqr := squareLowUnscaled(z, sq)

	return math.Exp(-sq) * math.Exp(-errSqr)
}

// squareLowUnscaled computes the low part of the double-length square of
// x, given the standard-precision product xx = x·x. No overflow scaling
// is performed; inputs with exponent above 996 would produce NaN, far
// beyond the erfc cutoff of 28.
func squareLowUnscaled(x, xx float64) float64 {
	hx := highPartUnscaled(x)
	lx := x - hx

	return lx*lx - ((xx - hx*hx) - 2*lx*hx)
}

// highPartUnscaled is Dekker's split: the high 26 bits of the mantissa.
func highPartUnscaled(value float64) float64 {
	c := dekkerMultiplier * value

	return c - (c - value)
}

// Package special provides the error function family: Erf, Erfc and
// their inverses.
//
// The implementations use the Boost rational (Padé-style) minimax
// approximations (boost/math/special_functions/erf.hpp and
// detail/erf_inv.hpp, John Maddock, Boost Software License), evaluated
// with Horner's method. Accuracy is a few ulps across the whole domain;
// the erfc tail additionally compensates the rounding error of z² with
// a Dekker double-double split so exp(-z²) does not lose precision for
// large z.
//
// Domains follow the mathematical functions: Erf maps ℝ onto (-1, 1),
// Erfc onto (0, 2); ErfInv accepts [-1, 1] and ErfcInv accepts [0, 2],
// returning ±Inf at the closed endpoints where the true inverse
// diverges. Out-of-domain arguments and NaN propagate as NaN — these
// functions report failure through the value, not through an error.
package special

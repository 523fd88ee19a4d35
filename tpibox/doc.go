// Package tpibox sizes the gears of the auxiliary inch-fold gearbox
// that hangs behind the spindle: a fixed 127-tooth inch-fold gear
// bridges the metric leadscrew to exact fractional-inch ratios.
//
// Four free quantities are linked by two algebraic relations,
// Q = S + P − O and N = M + I − Q, with the spindle gear S and the
// inch-fold gear I fixed, and each is bounded by independent physical
// minima and maxima (fouling limits of the surrounding gears).
// Candidates come from nested range iteration over the free variables,
// not permutation; the acceptance test is numeric rather than
// geometric: the effective ratio S/P · I/M · N must be an integer
// multiple of 1/1024 inch within an absolute tolerance.
//
// Accepted sets rank by ascending primary gear size (a smaller P means
// a smaller back-bulge) with descending effective ratio as tie-break.
//
// This reuses the enumerate → filter → rank shape of the main search
// with its own constants and tolerance-based gate.
package tpibox

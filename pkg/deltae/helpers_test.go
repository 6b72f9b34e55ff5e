package deltae

import (
	"math"
	"math/rand"
	"testing"
)

// diffCase is a reference vector: the expected difference for a pair of
// L*a*b* colours, rounded to four decimal places.
type diffCase struct {
	want float64
	c1   Lab
	c2   Lab
}

// refTolerance covers the four-decimal rounding of the reference vectors.
const refTolerance = 1e-4

// randomLabs returns a deterministic sample of colours spanning the usual
// L*a*b* ranges.
func randomLabs(n int) []Lab {
	rng := rand.New(rand.NewSource(0))
	labs := make([]Lab, n)
	for i := range labs {
		labs[i] = Lab{
			L: rng.Float64() * 100,
			A: rng.Float64()*200 - 100,
			B: rng.Float64()*210 - 110,
		}
	}
	return labs
}

func checkDiffTable(t *testing.T, cases []diffCase, diff func(c1, c2 Lab) float64) {
	t.Helper()
	for _, tc := range cases {
		got := diff(tc.c1, tc.c2)
		if math.Abs(got-tc.want) > refTolerance {
			t.Errorf("diff(%v, %v) = %.6f, want %.4f", tc.c1, tc.c2, got, tc.want)
		}
	}
}

func checkZero(t *testing.T, diff func(c1, c2 Lab) float64) {
	t.Helper()
	for _, c := range randomLabs(200) {
		if got := diff(c, c); got != 0 {
			t.Errorf("diff(%v, %v) = %g, want 0", c, c, got)
		}
	}
}

func checkSymmetric(t *testing.T, diff func(c1, c2 Lab) float64) {
	t.Helper()
	labs := randomLabs(200)
	for i := 1; i < len(labs); i++ {
		ab := diff(labs[i-1], labs[i])
		ba := diff(labs[i], labs[i-1])
		if math.Abs(ab-ba) > 1e-12 {
			t.Errorf("diff(%v, %v) = %g but reversed = %g", labs[i-1], labs[i], ab, ba)
		}
	}
}

// checkFinite asserts a metric stays finite and non-negative over random
// pairs plus the degenerate shapes every formula has to guard: identical
// colours, one achromatic colour, and two achromatic colours.
func checkFinite(t *testing.T, diff func(c1, c2 Lab) float64) {
	t.Helper()
	labs := randomLabs(200)
	grey1 := Lab{L: 41.5}
	grey2 := Lab{L: 78.2}

	pairs := [][2]Lab{
		{grey1, grey2},
		{grey1, grey1},
	}
	for i := 1; i < len(labs); i++ {
		pairs = append(pairs,
			[2]Lab{labs[i-1], labs[i]},
			[2]Lab{labs[i], labs[i]},
			[2]Lab{labs[i], grey1},
			[2]Lab{grey2, labs[i]},
		)
	}

	for _, p := range pairs {
		got := diff(p[0], p[1])
		if math.IsNaN(got) || math.IsInf(got, 0) || got < 0 {
			t.Errorf("diff(%v, %v) = %g, want finite non-negative", p[0], p[1], got)
		}
	}
}

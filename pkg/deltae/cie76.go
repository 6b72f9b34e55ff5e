package deltae

import "math"

// CIE76 returns the CIE76 colour difference between two colours: the
// Euclidean distance between them in L*a*b* space. It is the baseline every
// other metric in this package refines, and is symmetric in its arguments.
func CIE76(c1, c2 Color) float64 {
	l1 := c1.Lab()
	l2 := c2.Lab()
	dl := l1.L - l2.L
	da := l1.A - l2.A
	db := l1.B - l2.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

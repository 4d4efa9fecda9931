package utils

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

// Gradient computes d(field)/dx on a uniform grid using central differences
// in the interior and first-order one-sided differences at the two edges.
func Gradient(field []float64, dx float64) (grad []float64) {
	var (
		n = len(field)
	)
	grad = make([]float64, n)
	if n < 2 {
		return
	}
	grad[0] = (field[1] - field[0]) / dx
	grad[n-1] = (field[n-1] - field[n-2]) / dx
	for i := 1; i < n-1; i++ {
		grad[i] = (field[i+1] - field[i-1]) / (2 * dx)
	}
	return
}

// SecondGradient is Gradient applied twice, matching the repeated
// first-difference form of the diffusion stencil used by the solver.
func SecondGradient(field []float64, dx float64) []float64 {
	return Gradient(Gradient(field, dx), dx)
}

func Clamp(x, lo, hi float64) float64 {
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	}
	return x
}

package gradation

import "sort"

// spline is a natural cubic spline through strictly increasing knots.
type spline struct {
	x []float64
	y []float64
	m []float64 // second derivatives at the knots
}

func newSpline(x, y []float64) *spline {
	n := len(x)
	sub := make([]float64, n)
	diag := make([]float64, n)
	sup := make([]float64, n)
	rhs := make([]float64, n)

	// Natural boundary: zero curvature at both ends.
	diag[0], diag[n-1] = 1, 1
	for i := 1; i < n-1; i++ {
		h0 := x[i] - x[i-1]
		h1 := x[i+1] - x[i]
		sub[i] = h0
		diag[i] = 2 * (h0 + h1)
		sup[i] = h1
		rhs[i] = 6 * ((y[i+1]-y[i])/h1 - (y[i]-y[i-1])/h0)
	}

	// Thomas algorithm.
	for i := 1; i < n; i++ {
		w := sub[i] / diag[i-1]
		diag[i] -= w * sup[i-1]
		rhs[i] -= w * rhs[i-1]
	}
	m := make([]float64, n)
	m[n-1] = rhs[n-1] / diag[n-1]
	for i := n - 2; i >= 0; i-- {
		m[i] = (rhs[i] - sup[i]*m[i+1]) / diag[i]
	}

	return &spline{x: x, y: y, m: m}
}

func (s *spline) at(v float64) float64 {
	i := sort.SearchFloat64s(s.x, v)
	if i <= 0 {
		i = 1
	}
	if i >= len(s.x) {
		i = len(s.x) - 1
	}
	h := s.x[i] - s.x[i-1]
	t0 := s.x[i] - v
	t1 := v - s.x[i-1]
	return (s.m[i-1]*t0*t0*t0+s.m[i]*t1*t1*t1)/(6*h) +
		(s.y[i-1]/h-s.m[i-1]*h/6)*t0 +
		(s.y[i]/h-s.m[i]*h/6)*t1
}

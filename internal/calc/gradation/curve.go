package gradation

import (
	"fmt"
	"math"
	"sort"
)

type Method string

const (
	MethodLinear  Method = "linear"
	MethodCubic   Method = "cubic"
	MethodNearest Method = "nearest"
)

// ParseMethod maps the request selector to a Method. Empty selects linear.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "", string(MethodLinear):
		return MethodLinear, nil
	case string(MethodCubic):
		return MethodCubic, nil
	case string(MethodNearest):
		return MethodNearest, nil
	}
	return "", &ValidationError{Reason: fmt.Sprintf("unknown interpolation method %q", s)}
}

// Curve is a gap-filled gradation curve for one sample. Interpolation runs
// on (log10 size, percent passing) pairs, the conventional semi-log axes.
// Immutable once built.
type Curve struct {
	name   string
	method Method
	logX   []float64 // ascending
	y      []float64
	sizes  []float64 // ascending, aligned with logX
	sp     *spline   // cubic only
}

// BuildCurve pairs each present value with its sieve size and prepares the
// interpolant. Values are kept as measured; no monotonicity is forced.
func BuildCurve(name string, sizes []float64, values []*float64, method Method) (*Curve, error) {
	if len(sizes) != len(values) {
		return nil, &ValidationError{Reason: fmt.Sprintf("expected %d values, one per sieve size, got %d", len(sizes), len(values))}
	}

	bySize := make(map[float64]int)
	var ks, ky []float64
	for i, v := range values {
		if v == nil {
			continue
		}
		if math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 || *v > 100 {
			return nil, &ValidationError{Reason: fmt.Sprintf("percent passing %v at %g mm is outside [0, 100]", *v, sizes[i])}
		}
		if j, ok := bySize[sizes[i]]; ok {
			// Later point at the same size wins.
			ky[j] = *v
			continue
		}
		bySize[sizes[i]] = len(ks)
		ks = append(ks, sizes[i])
		ky = append(ky, *v)
	}

	needed := 2
	if method == MethodCubic {
		needed = 4
	}
	if len(ks) < needed {
		return nil, &InsufficientDataError{Sample: name, Points: len(ks), Needed: needed, Method: method}
	}

	c := &Curve{
		name:   name,
		method: method,
		logX:   make([]float64, len(ks)),
		y:      make([]float64, len(ks)),
		sizes:  make([]float64, len(ks)),
	}
	order := make([]int, len(ks))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return ks[order[a]] < ks[order[b]] })
	for i, j := range order {
		c.sizes[i] = ks[j]
		c.logX[i] = math.Log10(ks[j])
		c.y[i] = ky[j]
	}
	if method == MethodCubic {
		c.sp = newSpline(c.logX, c.y)
	}
	return c, nil
}

func (c *Curve) Name() string {
	return c.name
}

func (c *Curve) Method() Method {
	return c.method
}

// KnownPoints returns the measured points, smallest size first.
func (c *Curve) KnownPoints() (sizes, percents []float64) {
	sizes = make([]float64, len(c.sizes))
	percents = make([]float64, len(c.y))
	copy(sizes, c.sizes)
	copy(percents, c.y)
	return sizes, percents
}

func (c *Curve) MinSize() float64 {
	return c.sizes[0]
}

func (c *Curve) MaxSize() float64 {
	return c.sizes[len(c.sizes)-1]
}

// PercentPassingAt evaluates the curve at a size in mm. Outside the measured
// range the boundary value is held; the result is always within [0, 100].
func (c *Curve) PercentPassingAt(size float64) float64 {
	if !(size > 0) {
		return clampPercent(c.y[0])
	}
	return clampPercent(c.valueAt(math.Log10(size)))
}

func (c *Curve) valueAt(lx float64) float64 {
	n := len(c.logX)
	if lx <= c.logX[0] {
		return c.y[0]
	}
	if lx >= c.logX[n-1] {
		return c.y[n-1]
	}
	switch c.method {
	case MethodNearest:
		i := sort.SearchFloat64s(c.logX, lx)
		// c.logX[i-1] < lx <= c.logX[i]; ties go to the smaller size.
		if lx-c.logX[i-1] <= c.logX[i]-lx {
			return c.y[i-1]
		}
		return c.y[i]
	case MethodCubic:
		return c.sp.at(lx)
	default:
		i := sort.SearchFloat64s(c.logX, lx)
		t := (lx - c.logX[i-1]) / (c.logX[i] - c.logX[i-1])
		return c.y[i-1] + t*(c.y[i]-c.y[i-1])
	}
}

// SizeAtPercent inverts the curve by bisection over log size. The known
// percent values must bracket p; otherwise the percentile is undefined for
// this sample and an OutOfRangeError is returned. On non-monotonic data the
// crossing at the smallest size is reported.
func (c *Curve) SizeAtPercent(p float64) (float64, error) {
	minY, maxY := c.y[0], c.y[0]
	for _, v := range c.y[1:] {
		minY = math.Min(minY, v)
		maxY = math.Max(maxY, v)
	}
	if p < minY || p > maxY {
		return 0, &OutOfRangeError{Percent: p, Low: minY, High: maxY}
	}

	// First adjacent knot pair whose values straddle p. One exists whenever
	// p is within [minY, maxY], since both sides of p occur among the knots.
	seg := -1
	for i := 0; i+1 < len(c.y); i++ {
		if (c.y[i]-p)*(c.y[i+1]-p) <= 0 {
			seg = i
			break
		}
	}
	if seg < 0 {
		return 0, &OutOfRangeError{Percent: p, Low: minY, High: maxY}
	}

	lo, hi := c.logX[seg], c.logX[seg+1]
	flo := c.valueAt(lo)
	for i := 0; i < 100; i++ {
		mid := (lo + hi) / 2
		fm := c.valueAt(mid)
		if (fm-p)*(flo-p) > 0 {
			lo, flo = mid, fm
		} else {
			hi = mid
		}
	}
	return math.Pow(10, (lo+hi)/2), nil
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

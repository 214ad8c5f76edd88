package gradation

import "strings"

// Parameters are the standard soil-classification values derived from a
// gradation curve. A nil field means the curve does not bracket the
// corresponding percentile.
type Parameters struct {
	D10            *float64 `json:"d10"`
	D30            *float64 `json:"d30"`
	D60            *float64 `json:"d60"`
	Cu             *float64 `json:"cu"`
	Cc             *float64 `json:"cc"`
	Classification string   `json:"classification"`
}

// ExtractParameters computes D10/D30/D60 independently, so one undefined
// percentile does not block the others. Cu and Cc are derived only when all
// three D-values are defined.
func ExtractParameters(c *Curve) Parameters {
	p := Parameters{
		D10: sizeAt(c, 10),
		D30: sizeAt(c, 30),
		D60: sizeAt(c, 60),
	}
	if p.D10 == nil || p.D30 == nil || p.D60 == nil {
		p.Classification = "insufficient data"
		return p
	}
	cu := *p.D60 / *p.D10
	cc := (*p.D30 * *p.D30) / (*p.D10 * *p.D60)
	p.Cu = &cu
	p.Cc = &cc
	p.Classification = classify(cu, cc)
	return p
}

func sizeAt(c *Curve, percent float64) *float64 {
	v, err := c.SizeAtPercent(percent)
	if err != nil {
		return nil
	}
	return &v
}

func classify(cu, cc float64) string {
	if cu > 4 && cc >= 1 && cc <= 3 {
		return "well-graded"
	}
	var reasons []string
	if cu <= 4 {
		reasons = append(reasons, "Cu <= 4")
	}
	if cc < 1 || cc > 3 {
		reasons = append(reasons, "Cc outside 1-3")
	}
	return "poorly-graded (" + strings.Join(reasons, ", ") + ")"
}

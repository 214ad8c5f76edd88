package plot

import (
	"bytes"
	"errors"
	"image/png"
	"math"
	"testing"
)

// rampCurve rises linearly in log size between fixed endpoints.
type rampCurve struct {
	name string
}

func (c rampCurve) Name() string {
	return c.name
}

func (c rampCurve) PercentPassingAt(size float64) float64 {
	v := (math.Log10(size) + 2) * 25
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func (c rampCurve) KnownPoints() ([]float64, []float64) {
	return []float64{0.075, 2, 10, 50}, []float64{0, 32, 50, 92}
}

func TestRenderEmptySet(t *testing.T) {
	_, err := Render(nil, 0.075, 53, Options{UseColor: true})
	var rerr *RenderError
	if !errors.As(err, &rerr) {
		t.Fatalf("want RenderError, got %v", err)
	}
}

func TestRenderProducesPNG(t *testing.T) {
	curves := []Curve{rampCurve{name: "A"}, rampCurve{name: "B"}}
	out, err := Render(curves, 0.075, 53, Options{Width: 640, Height: 480, UseColor: true})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 640 || b.Dy() != 480 {
		t.Errorf("image is %dx%d, want 640x480", b.Dx(), b.Dy())
	}
}

func TestRenderDeterministic(t *testing.T) {
	curves := []Curve{rampCurve{name: "A"}, rampCurve{name: "B"}}
	for _, useColor := range []bool{true, false} {
		first, err := Render(curves, 0.075, 53, Options{UseColor: useColor})
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		second, err := Render(curves, 0.075, 53, Options{UseColor: useColor})
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if !bytes.Equal(first, second) {
			t.Errorf("useColor=%v: identical input rendered differently", useColor)
		}
	}
}

func TestRenderDegenerateSampleCount(t *testing.T) {
	for _, samples := range []int{-1, 0, 1} {
		out, err := Render([]Curve{rampCurve{name: "A"}}, 0.075, 53, Options{UseColor: true, Samples: samples})
		if err != nil {
			t.Fatalf("Samples=%d: Render failed: %v", samples, err)
		}
		if _, err := png.Decode(bytes.NewReader(out)); err != nil {
			t.Fatalf("Samples=%d: output is not a valid PNG: %v", samples, err)
		}
	}
}

func TestLogSpaceEndpoints(t *testing.T) {
	xs := logSpace(0.075, 53, 200)
	if len(xs) != 200 {
		t.Fatalf("len = %d, want 200", len(xs))
	}
	if math.Abs(xs[0]-0.075) > 1e-12 || math.Abs(xs[199]-53) > 1e-9 {
		t.Errorf("endpoints = %g, %g; want 0.075, 53", xs[0], xs[199])
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			t.Fatalf("samples not increasing at %d: %g after %g", i, xs[i], xs[i-1])
		}
	}
}

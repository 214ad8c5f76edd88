package scale

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigurationError reports a malformed sieve scale. It is fatal: the
// service cannot run without a valid scale.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "sieve scale configuration: " + e.Reason
}

// Standard IS sieve openings in mm, coarsest first.
var standardSizes = []float64{53.0, 40.0, 20.0, 10.0, 4.75, 2.36, 1.18, 0.6, 0.3, 0.15, 0.075}

// Scale is the fixed, ordered set of sieve openings every sample is aligned
// to. Immutable after construction.
type Scale struct {
	sizes []float64
}

func New(sizes []float64) (*Scale, error) {
	if len(sizes) < 2 {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("need at least 2 sieve sizes, got %d", len(sizes))}
	}
	for i, v := range sizes {
		if v <= 0 {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("sieve size %g at position %d is not positive", v, i)}
		}
		if i > 0 && v >= sizes[i-1] {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("sieve sizes must be strictly decreasing, got %g after %g", v, sizes[i-1])}
		}
	}
	s := &Scale{sizes: make([]float64, len(sizes))}
	copy(s.sizes, sizes)
	return s, nil
}

func Default() *Scale {
	s, err := New(standardSizes)
	if err != nil {
		panic(err) // standard scale is known valid
	}
	return s
}

type fileConfig struct {
	SieveSizesMM []float64 `yaml:"sieve_sizes_mm"`
}

// Load reads a sieve scale from a YAML file. An empty path yields the
// standard IS scale.
func Load(path string) (*Scale, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigurationError{Reason: err.Error()}
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigurationError{Reason: err.Error()}
	}
	return New(cfg.SieveSizesMM)
}

func (s *Scale) Len() int {
	return len(s.sizes)
}

func (s *Scale) Size(i int) float64 {
	return s.sizes[i]
}

// Sizes returns a copy, coarsest first.
func (s *Scale) Sizes() []float64 {
	out := make([]float64, len(s.sizes))
	copy(out, s.sizes)
	return out
}

// Min is the smallest opening, Max the largest.
func (s *Scale) Min() float64 {
	return s.sizes[len(s.sizes)-1]
}

func (s *Scale) Max() float64 {
	return s.sizes[0]
}

// ValidateCount checks that a sample carries one value per sieve size.
func (s *Scale) ValidateCount(n int) error {
	if n != len(s.sizes) {
		return fmt.Errorf("expected %d values, one per sieve size, got %d", len(s.sizes), n)
	}
	return nil
}

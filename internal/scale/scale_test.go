package scale

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		sizes   []float64
		wantErr bool
	}{
		{name: "valid", sizes: []float64{50, 25, 10, 4.75, 2, 0.075}},
		{name: "two sizes", sizes: []float64{10, 1}},
		{name: "too short", sizes: []float64{10}, wantErr: true},
		{name: "empty", sizes: nil, wantErr: true},
		{name: "ascending", sizes: []float64{0.075, 2, 10}, wantErr: true},
		{name: "duplicate", sizes: []float64{10, 10, 2}, wantErr: true},
		{name: "zero size", sizes: []float64{10, 2, 0}, wantErr: true},
		{name: "negative size", sizes: []float64{10, 2, -1}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.sizes)
			if tt.wantErr {
				var cerr *ConfigurationError
				if !errors.As(err, &cerr) {
					t.Fatalf("want ConfigurationError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if s.Len() != len(tt.sizes) {
				t.Errorf("Len = %d, want %d", s.Len(), len(tt.sizes))
			}
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	sizes := []float64{10, 2, 1}
	s, err := New(sizes)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	sizes[0] = 999
	if s.Size(0) != 10 {
		t.Error("scale must not alias the caller's slice")
	}
	out := s.Sizes()
	out[0] = 999
	if s.Size(0) != 10 {
		t.Error("Sizes must return a copy")
	}
}

func TestDefault(t *testing.T) {
	s := Default()
	if s.Len() != 11 {
		t.Errorf("Len = %d, want 11", s.Len())
	}
	if s.Max() != 53 || s.Min() != 0.075 {
		t.Errorf("range = [%g, %g], want [0.075, 53]", s.Min(), s.Max())
	}
}

func TestValidateCount(t *testing.T) {
	s, err := New([]float64{10, 2, 1})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := s.ValidateCount(3); err != nil {
		t.Errorf("ValidateCount(3) = %v, want nil", err)
	}
	if err := s.ValidateCount(2); err == nil {
		t.Error("ValidateCount(2) should fail for a 3-size scale")
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses default", func(t *testing.T) {
		s, err := Load("")
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if s.Len() != Default().Len() {
			t.Errorf("Len = %d, want the default scale", s.Len())
		}
	})

	t.Run("file override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scale.yaml")
		data := "sieve_sizes_mm: [25.0, 10.0, 4.75, 2.0, 0.425]\n"
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		s, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if s.Len() != 5 || s.Max() != 25 || s.Min() != 0.425 {
			t.Errorf("loaded scale = %v", s.Sizes())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		var cerr *ConfigurationError
		if !errors.As(err, &cerr) {
			t.Fatalf("want ConfigurationError, got %v", err)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scale.yaml")
		if err := os.WriteFile(path, []byte("sieve_sizes_mm: [not a number"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Fatal("want error for malformed YAML")
		}
	})

	t.Run("invalid scale in file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scale.yaml")
		if err := os.WriteFile(path, []byte("sieve_sizes_mm: [1.0, 2.0, 3.0]\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := Load(path)
		var cerr *ConfigurationError
		if !errors.As(err, &cerr) {
			t.Fatalf("want ConfigurationError, got %v", err)
		}
	})
}

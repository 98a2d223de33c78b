package display

import (
	"testing"
)

func TestFormatMB(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0.00 MB"},
		{"exactly 1 MiB", MiB, "1.00 MB"},
		{"half MiB", MiB / 2, "0.50 MB"},
		{"3.21 MiB", 3365930, "3.21 MB"},
		{"small file", 1024, "0.00 MB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMB(tt.bytes); got != tt.want {
				t.Errorf("FormatMB(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{0, "0.0%"},
		{75.06, "75.1%"},
		{100, "100.0%"},
		{-12.34, "-12.3%"},
	}
	for _, tt := range tests {
		if got := FormatPercent(tt.pct); got != tt.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}

func TestReduction(t *testing.T) {
	tests := []struct {
		name          string
		before, after int64
		want          float64
	}{
		{"no data", 0, 0, 0},
		{"halved", 1000, 500, 50},
		{"unchanged", 1000, 1000, 0},
		{"grew", 1000, 1500, -50},
		{"gone", 1000, 0, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reduction(tt.before, tt.after); got != tt.want {
				t.Errorf("Reduction(%d, %d) = %v, want %v", tt.before, tt.after, got, tt.want)
			}
		})
	}
}

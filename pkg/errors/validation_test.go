package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateCount(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantErr bool
	}{
		{"one", 1, false},
		{"typical", 8, false},
		{"max", MaxSubplots, false},

		{"zero", 0, true},
		{"negative", -3, true},
		{"over max", MaxSubplots + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCount(tt.n)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCount(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidArgument) {
				t.Errorf("ValidateCount(%d) code = %v, want %v", tt.n, GetCode(err), ErrCodeInvalidArgument)
			}
		})
	}
}

func TestValidateSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		wantErr       bool
	}{
		{"default", 800, 600, false},
		{"tiny", 0.5, 0.5, false},
		{"max", MaxFigureSize, MaxFigureSize, false},
		{"zero width", 0, 600, true},
		{"negative height", 800, -1, true},
		{"nan width", math.NaN(), 600, true},
		{"nan height", 800, math.NaN(), true},
		{"infinite width", math.Inf(1), 600, true},
		{"negative infinite height", 800, math.Inf(-1), true},
		{"over max", MaxFigureSize + 1, 600, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSize(tt.width, tt.height)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSize(%v, %v) error = %v, wantErr %v", tt.width, tt.height, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidArgument) {
				t.Errorf("ValidateSize(%v, %v) code = %v, want %v", tt.width, tt.height, GetCode(err), ErrCodeInvalidArgument)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "grid.svg", false},
		{"nested", "out/grid.png", false},
		{"absolute", "/tmp/grid.pdf", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 501), true},
		{"null byte", "grid\x00.svg", true},
		{"newline", "grid\n.svg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

package errors

import (
	"math"
	"strings"
	"unicode"
)

// MaxSubplots bounds the subplot count accepted from untrusted callers
// (CLI flags, HTTP query parameters).
const MaxSubplots = 1024

// MaxFigureSize bounds figure width and height in user units.
const MaxFigureSize = 16384.0

// ValidateCount checks a subplot count.
func ValidateCount(n int) error {
	if n < 1 {
		return New(ErrCodeInvalidArgument, "subplot count must be >= 1, got %d", n)
	}
	if n > MaxSubplots {
		return New(ErrCodeInvalidArgument, "subplot count too large (max %d), got %d", MaxSubplots, n)
	}
	return nil
}

// ValidateSize checks figure dimensions in user units. Both must be finite,
// positive and at most [MaxFigureSize].
func ValidateSize(width, height float64) error {
	for _, v := range []float64{width, height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return New(ErrCodeInvalidArgument, "figure size must be a finite number, got %gx%g", width, height)
		}
	}
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidArgument, "figure size must be positive, got %gx%g", width, height)
	}
	if width > MaxFigureSize || height > MaxFigureSize {
		return New(ErrCodeInvalidArgument, "figure size too large (max %g), got %gx%g", MaxFigureSize, width, height)
	}
	return nil
}

// ValidateOutputPath validates a path the CLI is about to write.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	if strings.ContainsFunc(path, unicode.IsControl) {
		return New(ErrCodeInvalidPath, "path contains invalid characters")
	}

	return nil
}

package render

import (
	"strings"

	"github.com/PeterMinin/grid-strategy/pkg/errors"
)

// Format names an output format.
type Format string

// Supported output formats.
const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatPDF  Format = "pdf"
	FormatJSON Format = "json"
	FormatDOT  Format = "dot"
	FormatXLSX Format = "xlsx"
	FormatText Format = "txt"
)

// Formats returns every supported format in a stable order.
func Formats() []Format {
	return []Format{FormatSVG, FormatPNG, FormatPDF, FormatJSON, FormatDOT, FormatXLSX, FormatText}
}

var contentTypes = map[Format]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
	FormatJSON: "application/json",
	FormatDOT:  "text/vnd.graphviz; charset=utf-8",
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FormatText: "text/plain; charset=utf-8",
}

// ParseFormat validates a format name (case-insensitive).
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := contentTypes[f]; !ok {
		return "", errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json, dot, xlsx, txt)", s)
	}
	return f, nil
}

// ParseFormats parses a comma-separated list, dropping duplicates.
// An empty string yields [FormatSVG].
func ParseFormats(s string) ([]Format, error) {
	if strings.TrimSpace(s) == "" {
		return []Format{FormatSVG}, nil
	}
	var out []Format
	seen := make(map[Format]bool)
	for _, part := range strings.Split(s, ",") {
		f, err := ParseFormat(part)
		if err != nil {
			return nil, err
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out, nil
}

// ContentType returns the MIME type served for f.
func (f Format) ContentType() string { return contentTypes[f] }

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string { return "." + string(f) }

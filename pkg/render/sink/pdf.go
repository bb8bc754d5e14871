package sink

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/PeterMinin/grid-strategy/pkg/render/canvas"
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	style Style
}

// WithPDFStyle selects the visual style (default [StyleSimple]).
func WithPDFStyle(s Style) PDFOption { return func(r *pdfRenderer) { r.style = s } }

// RenderPDF draws the figure on a single page sized to the figure, one
// figure unit per PDF point.
func RenderPDF(fig *canvas.Figure, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{style: simpleStyle{}}
	for _, opt := range opts {
		opt(&r)
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: fig.Width, Ht: fig.Height},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(fig.Title, true)
	pdf.AddPage()

	if fig.Title != "" {
		y := 0.0
		if fig.AutoLayout {
			y = canvas.Margin
		}
		pdf.SetFont("Helvetica", "B", 16)
		pdf.SetTextColor(ink.R, ink.G, ink.B)
		pdf.SetXY(0, y)
		pdf.CellFormat(fig.Width, canvas.TitleHeight, fig.Title, "", 0, "C", false, 0, "")
	}

	stroke, dashed := r.style.Stroke()
	pdf.SetDrawColor(stroke.R, stroke.G, stroke.B)
	pdf.SetLineWidth(1.5)
	if dashed {
		pdf.SetDashPattern([]float64{6, 4}, 0)
	}

	for _, a := range fig.Axes {
		drawAxes(pdf, r.style, a)
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("draw pdf: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func drawAxes(pdf *fpdf.Fpdf, style Style, a *canvas.Axes) {
	rect := a.Rect
	mode := "D"
	if fill, ok := style.Fill(a.Index); ok {
		// Lighten toward white to match the SVG fill opacity.
		pdf.SetFillColor(tint(fill.R), tint(fill.G), tint(fill.B))
		mode = "FD"
	}
	pdf.Rect(rect.Left, rect.Top, rect.Width(), rect.Height(), mode)

	pdf.SetFont("Helvetica", "", FontSize(rect, a.Label))
	pdf.SetTextColor(ink.R, ink.G, ink.B)
	pdf.SetXY(rect.Left, rect.Top)
	pdf.CellFormat(rect.Width(), rect.Height(), a.Label, "", 0, "CM", false, 0, "")
}

func tint(c int) int {
	return c + (255-c)*65/100
}

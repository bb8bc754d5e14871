package sink

import (
	"bytes"
	"context"
	"fmt"
	"html"

	"github.com/goccy/go-graphviz"

	"github.com/PeterMinin/grid-strategy/pkg/grid"
)

// ToDOT describes the layout as a Graphviz HTML-like table: one <TR> per row
// and one <TD COLSPAN> per subplot, with borderless filler cells for the
// unused column units so every row spans the full grid width.
func ToDOT(l grid.Layout, labels []string) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=plaintext, fontname=\"Helvetica\", fontsize=18];\n")
	buf.WriteString("  grid [label=<\n")
	buf.WriteString("    <TABLE BORDER=\"0\" CELLBORDER=\"1\" CELLSPACING=\"6\" CELLPADDING=\"12\">\n")

	byRow := make([][]grid.Placement, l.Dimensions.Rows)
	for _, p := range l.Placements {
		byRow[p.Row] = append(byRow[p.Row], p)
	}

	idx := 0
	for _, row := range byRow {
		buf.WriteString("      <TR>")
		col := 0
		for _, p := range row {
			writeFiller(&buf, p.Span.Start-col)
			color := PaletteColor(idx).Hex()
			fmt.Fprintf(&buf, `<TD COLSPAN="%d" BGCOLOR="%s">%s</TD>`, p.Span.Width(), color, html.EscapeString(labelAt(labels, idx)))
			col = p.Span.End
			idx++
		}
		writeFiller(&buf, l.Dimensions.Cols-col)
		buf.WriteString("</TR>\n")
	}

	buf.WriteString("    </TABLE>\n")
	buf.WriteString("  >];\n")
	buf.WriteString("}\n")
	return buf.String()
}

func writeFiller(buf *bytes.Buffer, width int) {
	if width > 0 {
		fmt.Fprintf(buf, `<TD COLSPAN="%d" BORDER="0"></TD>`, width)
	}
}

func labelAt(labels []string, i int) string {
	if i < len(labels) && labels[i] != "" {
		return labels[i]
	}
	return fmt.Sprint(i + 1)
}

// RenderDOT renders a DOT document to SVG using Graphviz.
func RenderDOT(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

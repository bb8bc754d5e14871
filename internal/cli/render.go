package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PeterMinin/grid-strategy/pkg/errors"
	"github.com/PeterMinin/grid-strategy/pkg/pipeline"
	"github.com/PeterMinin/grid-strategy/pkg/render"
)

// renderFlags holds the command-line flags for the render command.
type renderFlags struct {
	layoutFlags
	output  string   // output file (single format) or base path (multiple)
	formats string   // comma-separated output formats
	width   float64  // figure width
	height  float64  // figure height
	title   string   // figure title
	labels  []string // axes labels by index
	style   string   // visual style: "simple" or "outline"
	engine  string   // SVG/PNG engine: "canvas" or "graphviz"
	scale   float64  // PNG scale factor
}

// renderCommand creates the render command for writing figures to disk.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render N",
		Short: "Render a figure with N subplots",
		Long: `Render a figure with N subplots laid out on a near-square grid.

Each subplot is drawn as a labelled frame. Output formats:
  svg   vector image
  png   raster image (requires rsvg-convert from librsvg)
  pdf   vector document
  json  figure geometry and layout
  dot   Graphviz table with one cell per subplot
  xlsx  spreadsheet with one merged cell range per subplot
  txt   terminal preview

With a single format, --output names the file. With several, --output is a
base path and each format gets its own extension.`,
		Example: `  gridstrategy render 5
  gridstrategy render 8 -f svg,pdf -o figures/eight
  gridstrategy render 3 --align justified --labels loss,accuracy,lr`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseCount(args[0])
			if err != nil {
				return err
			}
			opts := c.Config.Options(n)
			flags.apply(cmd, &opts)
			return c.runRender(cmd, opts, flags.output)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (single format) or base path (default: grid-N)")
	cmd.Flags().StringVarP(&flags.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot, xlsx, txt (comma-separated)")
	cmd.Flags().Float64Var(&flags.width, "width", pipeline.DefaultWidth, "figure width")
	cmd.Flags().Float64Var(&flags.height, "height", pipeline.DefaultHeight, "figure height")
	cmd.Flags().StringVar(&flags.title, "title", "", "figure title")
	cmd.Flags().StringSliceVar(&flags.labels, "labels", nil, "subplot labels in order (default: 1..N)")
	cmd.Flags().StringVar(&flags.style, "style", pipeline.DefaultStyle, "visual style: simple (default), outline")
	cmd.Flags().StringVar(&flags.engine, "engine", pipeline.DefaultEngine, "svg/png engine: canvas (default), graphviz")
	cmd.Flags().Float64Var(&flags.scale, "scale", pipeline.DefaultScale, "png scale factor")

	return cmd
}

// apply overrides opts with flags the user set explicitly.
func (f *renderFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	f.layoutFlags.apply(cmd, opts)
	changed := cmd.Flags().Changed
	if changed("format") {
		opts.Formats = strings.Split(f.formats, ",")
	}
	if changed("width") {
		opts.Width = f.width
	}
	if changed("height") {
		opts.Height = f.height
	}
	if changed("style") {
		opts.Style = f.style
	}
	if changed("engine") {
		opts.Engine = f.engine
	}
	if changed("scale") {
		opts.Scale = f.scale
	}
	opts.Title = f.title
	opts.Labels = f.labels
}

// runRender executes the pipeline and writes one file per format.
func (c *CLI) runRender(cmd *cobra.Command, opts pipeline.Options, output string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	paths, err := outputPaths(output, opts.N, opts.Formats)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, cmd.ErrOrStderr(), fmt.Sprintf("Rendering %d subplots...", opts.N))
	spinner.Start()
	result, err := c.newRunner().Execute(ctx, opts)
	spinner.Stop()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printSuccess(out, "Rendered %d subplots on a %d × %d grid", result.Stats.Subplots, result.Stats.Rows, result.Stats.Cols)
	for _, format := range opts.Formats {
		path := paths[format]
		if err := writeArtifact(path, result.Artifacts[format]); err != nil {
			return err
		}
		printFile(out, path)
	}
	prog.done("render complete", "formats", len(opts.Formats))
	return nil
}

// outputPaths maps each format to the file it is written to.
// A single format uses output verbatim; several formats share the base path
// with any known format extension stripped.
func outputPaths(output string, n int, formats []string) (map[string]string, error) {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
	} else {
		base := basePath(output, n)
		for _, f := range formats {
			paths[f] = base + render.Format(f).Ext()
		}
	}
	for _, p := range paths {
		if err := errors.ValidateOutputPath(p); err != nil {
			return nil, err
		}
	}
	return paths, nil
}

// basePath derives the output base path, stripping a known format extension.
func basePath(output string, n int) string {
	if output == "" {
		return fmt.Sprintf("grid-%d", n)
	}
	ext := filepath.Ext(output)
	if _, err := render.ParseFormat(strings.TrimPrefix(ext, ".")); err == nil {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

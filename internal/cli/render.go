package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/drafthaus/orthodraw/pkg/drawing"
	"github.com/drafthaus/orthodraw/pkg/drawing/sink"
	"github.com/drafthaus/orthodraw/pkg/drawing/styles"
	"github.com/drafthaus/orthodraw/pkg/errors"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	inputs      drawing.RawInputs // raw dimension and area fields, defaulted by the engine
	viewWidth   float64           // viewport width in pixels
	viewHeight  float64           // viewport height in pixels
	output      string            // output base path (extension added per format)
	theme       string            // visual theme name
	placeholder bool              // force the uncalculated initial drawing
}

// renderCommand creates the render command for composing a drawing and
// writing it to disk.
//
// Dimension flags left empty fall back to the engine defaults (6, 4, 5
// solid, 16x16 area). Passing no dimension flags at all renders the
// placeholder drawing, the same state the interactive surfaces show
// before the first calculation.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Compose a projection drawing and write SVG, JSON, or PNG",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(c.configPath)
			if err != nil {
				return err
			}

			formats := parseFormats(formatsStr, cfg.Render.Format)
			if err := errors.ValidateFormats(formats); err != nil {
				return err
			}
			if opts.theme == "" {
				opts.theme = cfg.Render.Theme
			}
			if err := errors.ValidateTheme(opts.theme); err != nil {
				return err
			}
			if opts.viewWidth == 0 {
				opts.viewWidth = cfg.Render.Width
			}
			if opts.viewHeight == 0 {
				opts.viewHeight = cfg.Render.Height
			}
			if err := errors.ValidateOutputPath(opts.output); err != nil {
				return err
			}
			return c.runRender(cmd, &opts, formats)
		},
	}

	cmd.Flags().StringVar(&opts.inputs.Width, "width", "", "solid width (default 6)")
	cmd.Flags().StringVar(&opts.inputs.Height, "height", "", "solid height (default 4)")
	cmd.Flags().StringVar(&opts.inputs.Depth, "depth", "", "solid depth (default 5)")
	cmd.Flags().StringVar(&opts.inputs.AreaWidth, "area-width", "", "drawing area width in units (default 16)")
	cmd.Flags().StringVar(&opts.inputs.AreaHeight, "area-height", "", "drawing area height in units (default 16)")
	cmd.Flags().Float64Var(&opts.viewWidth, "view-width", 0, "viewport width in pixels")
	cmd.Flags().Float64Var(&opts.viewHeight, "view-height", 0, "viewport height in pixels")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, png (comma-separated)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "visual theme: paper (default), blueprint")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "drawing", "output base path (extension added per format)")
	cmd.Flags().BoolVar(&opts.placeholder, "placeholder", false, "render the uncalculated placeholder drawing")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, opts *renderOpts, formats []string) error {
	logger := loggerFromContext(cmd.Context())
	p := newProgress(logger)

	solid, area := opts.inputs.Normalize()
	vp := drawing.Viewport{AvailW: opts.viewWidth, AvailH: opts.viewHeight}
	calculated := !opts.placeholder && !opts.inputs.Empty()

	d := drawing.Compose(solid, area, vp, calculated)
	theme, _ := styles.ByName(opts.theme)

	for _, format := range formats {
		var data []byte
		var err error

		switch format {
		case "svg":
			data = sink.RenderSVG(d, vp, sink.WithTheme(theme))
		case "json":
			data, err = sink.RenderJSON(d)
		case "png":
			data, err = sink.RenderPNG(d, vp, sink.WithPNGSVGOptions(sink.WithTheme(theme)))
		}
		if err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
		}

		path := opts.output + "." + format
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "write %s", path)
		}
		logger.Info("wrote drawing", "path", path, "bytes", len(data))
	}

	if calculated {
		logSpacing(logger, d)
	}
	p.done(fmt.Sprintf("Rendered %d format(s)", len(formats)))
	return nil
}

// logSpacing reports the computed spacing summary and chosen scale.
func logSpacing(logger *log.Logger, d drawing.Drawing) {
	kv := make([]any, 0, 10)
	for _, e := range d.Spacing.Summary() {
		kv = append(kv, e.Key, e.Value)
	}
	kv = append(kv, "scale", fmt.Sprintf("%.2f", d.Layout.Scale))
	logger.Info("spacing", kv...)
}

// parseFormats parses the --format flag into a slice of output formats,
// using the config default when empty.
func parseFormats(s, fallback string) []string {
	if s == "" {
		s = fallback
	}
	if s == "" {
		s = "svg"
	}
	return strings.Split(s, ",")
}

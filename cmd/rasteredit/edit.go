package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironsheep/rasteredit/internal/raster"
)

// step is one parsed --op.
type step struct {
	spec  string
	apply func(*raster.Editor) error
}

func newEditCmd() *cobra.Command {
	var (
		output  string
		format  string
		quality int
		ops     []string
	)

	cmd := &cobra.Command{
		Use:   "edit INPUT -o OUTPUT --op OP [--op OP ...]",
		Short: "Apply operations to an image and save the result",
		Long: `Apply operations to INPUT in the order given and write OUTPUT.

Operations:
  remove-color=COLOR        make pixels within 35 per channel of COLOR transparent
  change-color=OLD:NEW      replace exact OLD pixels with NEW, keeping alpha
  overlay=COLOR             tint every pixel to COLOR, keeping alpha
  round=RADIUS              clip to a rounded rectangle
  resize=WxH[:FILTER]       resample (nearest, box, linear, catmullrom, lanczos)

Colors are "#RRGGBB", "#RRGGBBAA" or "r,g,b".`,
		Example: `  rasteredit edit logo.jpg -o logo.png --op remove-color=#FFFFFF --op round=16
  rasteredit edit icon.png -o icon-64.png --op resize=64x64:lanczos`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("quality") {
				if quality < 1 || quality > 100 {
					return fmt.Errorf("--quality must be between 1 and 100, got %d", quality)
				}
				cfg.JPEGQuality = quality
			}

			steps := make([]step, 0, len(ops))
			for _, spec := range ops {
				s, err := parseOp(spec)
				if err != nil {
					return err
				}
				steps = append(steps, s)
			}

			ed := raster.New(args[0], raster.WithOutput(output), raster.WithJPEGQuality(cfg.JPEGQuality))
			if err := run(ed, steps, format, cfg.Debug); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output image path")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (png, jpg, gif, tiff, bmp); default from the output extension")
	cmd.Flags().IntVarP(&quality, "quality", "q", raster.DefaultJPEGQuality, "JPEG quality (1-100)")
	cmd.Flags().StringArrayVar(&ops, "op", nil, "Operation to apply; repeatable, applied in order")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// run loads the input, applies steps in order and saves.
func run(ed *raster.Editor, steps []step, format string, debug bool) error {
	if err := ed.Load(); err != nil {
		return err
	}
	for _, s := range steps {
		if debug {
			log.Printf("applying %s", s.spec)
		}
		if err := s.apply(ed); err != nil {
			return fmt.Errorf("%s: %w", s.spec, err)
		}
	}
	return ed.Save(format)
}

// parseOp parses an operation of the form NAME=ARGS.
func parseOp(spec string) (step, error) {
	name, arg, ok := strings.Cut(spec, "=")
	if !ok || arg == "" {
		return step{}, fmt.Errorf("invalid operation %q: want NAME=VALUE", spec)
	}

	var apply func(*raster.Editor) error
	switch name {
	case "remove-color":
		c, err := raster.ParseColor(arg)
		if err != nil {
			return step{}, fmt.Errorf("%s: %w", spec, err)
		}
		apply = func(ed *raster.Editor) error { return ed.RemoveColor(c) }

	case "change-color":
		oldArg, newArg, ok := strings.Cut(arg, ":")
		if !ok {
			return step{}, fmt.Errorf("invalid operation %q: want change-color=OLD:NEW", spec)
		}
		from, err := raster.ParseColor(oldArg)
		if err != nil {
			return step{}, fmt.Errorf("%s: %w", spec, err)
		}
		to, err := raster.ParseColor(newArg)
		if err != nil {
			return step{}, fmt.Errorf("%s: %w", spec, err)
		}
		apply = func(ed *raster.Editor) error { return ed.ChangeColor(from, to) }

	case "overlay":
		c, err := raster.ParseColor(arg)
		if err != nil {
			return step{}, fmt.Errorf("%s: %w", spec, err)
		}
		apply = func(ed *raster.Editor) error { return ed.Overlay(c) }

	case "round":
		r, err := strconv.Atoi(arg)
		if err != nil {
			return step{}, fmt.Errorf("%s: radius: %w", spec, err)
		}
		if r < 0 {
			return step{}, fmt.Errorf("%s: %w", spec, raster.ErrInvalidRadius)
		}
		apply = func(ed *raster.Editor) error { return ed.RoundCorners(r) }

	case "resize":
		size, filterName, _ := strings.Cut(arg, ":")
		ws, hs, ok := strings.Cut(strings.ToLower(size), "x")
		if !ok {
			return step{}, fmt.Errorf("invalid operation %q: want resize=WxH[:filter]", spec)
		}
		w, err := strconv.Atoi(ws)
		if err != nil {
			return step{}, fmt.Errorf("%s: width: %w", spec, err)
		}
		h, err := strconv.Atoi(hs)
		if err != nil {
			return step{}, fmt.Errorf("%s: height: %w", spec, err)
		}
		if w <= 0 || h <= 0 {
			return step{}, fmt.Errorf("%s: %w", spec, raster.ErrInvalidDimensions)
		}
		filter, err := raster.ParseFilter(filterName)
		if err != nil {
			return step{}, fmt.Errorf("%s: %w", spec, err)
		}
		apply = func(ed *raster.Editor) error { return ed.ResizeWith(ed.Image(), w, h, filter) }

	default:
		return step{}, fmt.Errorf("unknown operation %q", name)
	}

	return step{spec: spec, apply: apply}, nil
}

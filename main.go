package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"ansimg/cli"
	"ansimg/decode"
	"ansimg/player"
	"ansimg/style"
	"ansimg/terminal"
)

var flags struct {
	loopCount       int64
	style           string
	canvasSize      string
	alphaThreshold  uint8
	filter          string
	backgroundColor string
	lineEnd         string
	inline          bool
	noPadding       bool
}

var rootCmd = &cobra.Command{
	Use:     "ansimg [flags] <path>",
	Short:   "Render still and animated images in the terminal as half-block ANSI art",
	Version: "0.1.0",
	Long: `ansimg draws raster images into the terminal using 24-bit color and Unicode
half blocks, packing two pixels into every character cell. Animated GIF and
APNG files play at their declared frame delays; only cells that changed since
the previous frame are repainted.

Examples:
  ansimg picture.png
  ansimg -s tile -b '#202020' wallpaper.jpg
  ansimg -i -c '80 24' animation.gif`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	f := rootCmd.Flags()
	f.Int64VarP(&flags.loopCount, "loop-count", "l", -1,
		"times to loop the animation; negative loops forever")
	f.StringVarP(&flags.style, "style", "s", "shrink-to-fit",
		"placement: center, tile, cover, contain, shrink-to-fit, or \"<x> <y> [<zoom> | 1/<n> | <w> <h>]\"")
	f.StringVarP(&flags.canvasSize, "canvas-size", "c", "window",
		"canvas size: window, image, or \"<width> <height>\"")
	f.Uint8VarP(&flags.alphaThreshold, "alpha-threshold", "a", 127,
		"alpha value below which a pixel counts as transparent")
	f.StringVarP(&flags.filter, "filter", "f", "nearest",
		"resize filter: nearest, triangle, catmull-rom, gaussian, lanczos3")
	f.StringVarP(&flags.backgroundColor, "background-color", "b", "transparent",
		"background color: transparent or #RRGGBB")
	f.StringVarP(&flags.lineEnd, "line-end", "L", "lf",
		"line ending written on exit: cr, lf, crlf")
	f.BoolVarP(&flags.inline, "inline", "i", false,
		"don't clear the screen; render at the current cursor position")
	f.BoolVarP(&flags.noPadding, "no-padding", "n", false,
		"with --inline, don't print newlines to scroll the image into view")
}

func buildConfig(path string) (*cli.Config, error) {
	st, err := style.Parse(flags.style)
	if err != nil {
		return nil, fmt.Errorf("--style: %w", err)
	}
	canvasSize, err := cli.ParseCanvasSize(flags.canvasSize)
	if err != nil {
		return nil, fmt.Errorf("--canvas-size: %w", err)
	}
	filter, err := style.ParseFilter(flags.filter)
	if err != nil {
		return nil, fmt.Errorf("--filter: %w", err)
	}
	background, err := cli.ParseBackground(flags.backgroundColor)
	if err != nil {
		return nil, fmt.Errorf("--background-color: %w", err)
	}
	lineEnd, err := cli.ParseLineEnd(flags.lineEnd)
	if err != nil {
		return nil, fmt.Errorf("--line-end: %w", err)
	}
	return &cli.Config{
		LoopCount:      flags.loopCount,
		Style:          st,
		CanvasSize:     canvasSize,
		AlphaThreshold: flags.alphaThreshold,
		Filter:         filter,
		Background:     background,
		LineEnd:        lineEnd,
		Inline:         flags.inline,
		NoPadding:      flags.noPadding,
		Path:           path,
	}, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(args[0])
	if err != nil {
		return err
	}

	img, err := decode.File(cfg.Path)
	if err != nil {
		return err
	}

	stop := player.NewStop()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)
	go func() {
		<-sig
		stop.Raise()
	}()

	surf := terminal.NewSurface(os.Stdout, cfg.Inline, cfg.NoPadding, cfg.LineEnd.Terminator())
	surf.SuppressEcho(int(os.Stdin.Fd()))
	defer surf.Restore()

	if err := player.Run(cfg, img, surf, stop); err != nil {
		return err
	}
	return surf.Restore()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// meshexport is a headless CLI for generating mesh gradients.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"

	"github.com/Faultbox/meshgrad/internal/engine/render"
	"github.com/Faultbox/meshgrad/pkg/mesh"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "text":
		cmdText(args)
	case "image", "img":
		cmdImage(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshexport - mesh gradient generator

Usage:
  meshexport <command> [options]

Commands:
  text  [options]            Print the gradient as a MeshGradient literal
  image [options] <out>      Render the gradient to a PNG or BMP file

Options:
  -width N       grid width, 2-5 (default 3)
  -height N      grid height, 2-5 (default 3)
  -seed N        randomize points and colors with the given seed
  -kind NAME     animation kind: wave, rotate, pulse, bounce, spiral
  -time T        animation time in seconds (requires -kind)
  -speed F       animation speed, 0.1-3.0 (default 1.0)
  -intensity F   animation intensity, 0.1-2.0 (default 1.0)
  -flat          disable color smoothing
  -size N        image size in pixels (default 1024)
  -res N         subdivision steps per mesh cell (default 16)

Examples:
  meshexport text -width 4 -height 4 -seed 7
  meshexport image -seed 7 -kind wave -time 1.5 out.png
  meshexport image -flat out.bmp`)
}

// gradientFlags holds the flags shared by the text and image commands.
type gradientFlags struct {
	width     *int
	height    *int
	seed      *int64
	kind      *string
	animTime  *float64
	speed     *float64
	intensity *float64
	flat      *bool
}

func registerGradientFlags(fs *flag.FlagSet) *gradientFlags {
	return &gradientFlags{
		width:     fs.Int("width", 3, "grid width (2-5)"),
		height:    fs.Int("height", 3, "grid height (2-5)"),
		seed:      fs.Int64("seed", 0, "randomize with seed (0 = no randomization)"),
		kind:      fs.String("kind", "", "animation kind"),
		animTime:  fs.Float64("time", 0, "animation time in seconds"),
		speed:     fs.Float64("speed", 1.0, "animation speed"),
		intensity: fs.Float64("intensity", 1.0, "animation intensity"),
		flat:      fs.Bool("flat", false, "disable color smoothing"),
	}
}

// buildFrame constructs the gradient frame described by the flags.
func buildFrame(gf *gradientFlags) (mesh.Frame, error) {
	w, h := *gf.width, *gf.height
	if w < 2 || w > 5 || h < 2 || h > 5 {
		return mesh.Frame{}, fmt.Errorf("grid dimensions must be between 2 and 5, got %dx%d", w, h)
	}

	grid := mesh.New(w, h)

	if *gf.seed != 0 {
		grid.Seed(*gf.seed)
		grid.RandomizeColors()
		grid.RandomizePoints()
	}

	frame := grid.Snapshot(!*gf.flat)

	if *gf.kind != "" {
		params := mesh.Params{
			Kind:      mesh.ParseKind(*gf.kind),
			Speed:     clamp(float32(*gf.speed), 0.1, 3.0),
			Intensity: clamp(float32(*gf.intensity), 0.1, 2.0),
			Enabled:   true,
		}
		now := *gf.animTime
		if now == 0 {
			now = float64(time.Now().UnixNano()) / float64(time.Second)
		}
		frame.Positions = mesh.Evaluate(frame.Positions, params, now)
	}

	return frame, nil
}

func cmdText(args []string) {
	fs := flag.NewFlagSet("text", flag.ExitOnError)
	gf := registerGradientFlags(fs)
	out := fs.String("o", "", "write to file instead of stdout")
	fs.Parse(args)

	frame, err := buildFrame(gf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	text := mesh.Export(frame)
	if *out == "" {
		fmt.Println(text)
		return
	}

	if err := os.WriteFile(*out, []byte(text), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Exported: %s (%d bytes)\n", *out, len(text))
}

func cmdImage(args []string) {
	fs := flag.NewFlagSet("image", flag.ExitOnError)
	gf := registerGradientFlags(fs)
	size := fs.Int("size", 1024, "image size in pixels")
	res := fs.Int("res", render.DefaultResolution, "subdivision steps per mesh cell")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshexport image [options] <out.png|out.bmp>")
		os.Exit(1)
	}
	outPath := fs.Arg(0)

	frame, err := buildFrame(gf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	grid := render.Refine(frame, *res)
	img := render.Rasterize(grid, *size, *size)

	file, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".bmp":
		err = bmp.Encode(file, img)
	default:
		err = png.Encode(file, img)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendered: %s (%dx%d)\n", outPath, *size, *size)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

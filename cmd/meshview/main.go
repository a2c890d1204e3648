// Package main is a standalone SDL2 viewer for animated mesh gradients.
//
// It renders the gradient fullscreen without any UI chrome. Points can
// still be dragged with the mouse; keyboard shortcuts drive the rest:
//
//	ESC    quit
//	SPACE  toggle animation
//	TAB    cycle animation kind
//	S      toggle color smoothing
//	C      randomize colors
//	P      randomize point positions
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshgrad/internal/config"
	"github.com/Faultbox/meshgrad/internal/engine/input"
	"github.com/Faultbox/meshgrad/internal/engine/render"
	"github.com/Faultbox/meshgrad/internal/engine/window"
	"github.com/Faultbox/meshgrad/internal/logger"
	gomath "github.com/Faultbox/meshgrad/pkg/math"
	"github.com/Faultbox/meshgrad/pkg/mesh"
)

// grabRadius is the drag hit distance in mesh space.
const grabRadius = float32(0.05)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:  "Meshgrad Viewer",
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		VSync:  cfg.Window.VSync,
	})
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Close()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("initializing OpenGL: %w", err)
	}

	renderer, err := render.NewRenderer(cfg.Render.Resolution)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	defer renderer.Close()

	grid := mesh.New(cfg.Grid.Width, cfg.Grid.Height)
	anim := mesh.Params{
		Kind:      mesh.ParseKind(cfg.Animation.Kind),
		Speed:     cfg.Animation.Speed,
		Intensity: cfg.Animation.Intensity,
		Enabled:   cfg.Animation.Enabled,
	}
	smoothing := cfg.Render.Smoothing

	in := input.New()
	start := time.Now()
	dragIndex := -1

	width, height := win.GetSize()
	gl.Viewport(0, 0, int32(width), int32(height))

	logger.Info("viewer running",
		zap.Int("gridWidth", grid.Width()),
		zap.Int("gridHeight", grid.Height()),
	)

	for {
		if in.Update() {
			return nil
		}

		for _, ev := range in.Events() {
			switch ev.Type {
			case input.EventWindowResize:
				width, height = ev.Width, ev.Height
				gl.Viewport(0, 0, int32(width), int32(height))

			case input.EventKeyDown:
				switch ev.Key {
				case sdl.SCANCODE_ESCAPE:
					return nil
				case sdl.SCANCODE_SPACE:
					anim.Enabled = !anim.Enabled
				case sdl.SCANCODE_TAB:
					anim.Kind = mesh.Kinds[(int(anim.Kind)+1)%len(mesh.Kinds)]
					logger.Info("animation kind", zap.String("kind", anim.Kind.String()))
				case sdl.SCANCODE_S:
					smoothing = !smoothing
				case sdl.SCANCODE_C:
					grid.RandomizeColors()
				case sdl.SCANCODE_P:
					grid.RandomizePoints()
				}

			case input.EventMouseDown:
				if ev.Button == sdl.BUTTON_LEFT {
					dragIndex = nearestPoint(grid, toMesh(ev.MouseX, ev.MouseY, width, height))
				}

			case input.EventMouseMove:
				if dragIndex >= 0 {
					grid.MovePoint(dragIndex, toMesh(ev.MouseX, ev.MouseY, width, height))
				}

			case input.EventMouseUp:
				if ev.Button == sdl.BUTTON_LEFT {
					dragIndex = -1
				}
			}
		}

		frame := grid.Snapshot(smoothing)
		if anim.Enabled {
			frame.Positions = mesh.Evaluate(frame.Positions, anim, time.Since(start).Seconds())
		}

		gl.ClearColor(0.1, 0.1, 0.12, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		renderer.Draw(frame)
		win.SwapBuffers()
	}
}

// toMesh maps window pixel coordinates to mesh space.
func toMesh(x, y, width, height int) gomath.Vec2 {
	return gomath.Vec2{
		X: float32(x) / float32(width),
		Y: float32(y) / float32(height),
	}
}

// nearestPoint returns the index of the closest control point within
// the grab radius, or -1.
func nearestPoint(grid *mesh.Mesh, p gomath.Vec2) int {
	best := -1
	bestDist := grabRadius
	for i := 0; i < grid.Len(); i++ {
		dist := grid.Point(i).Pos.Distance(p)
		if dist <= bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}

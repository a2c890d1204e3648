// Package editor implements the interactive mesh gradient editor UI.
package editor

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshgrad/internal/config"
	"github.com/Faultbox/meshgrad/internal/engine/framebuffer"
	"github.com/Faultbox/meshgrad/internal/engine/render"
	"github.com/Faultbox/meshgrad/internal/logger"
	"github.com/Faultbox/meshgrad/pkg/mesh"
)

const (
	controlsPanelWidth = float32(300)
	statusBarHeight    = float32(30)
	handleRadius       = float32(7)
	handleHitRadius    = float32(12)
)

// App holds the editor application state.
type App struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	cfg     *config.Config

	// Document state
	grid      *mesh.Mesh
	anim      mesh.Params
	smoothing bool

	// Animation clock, sampled once per frame
	start time.Time

	// GL resources, created lazily on the first frame once a context exists
	glReady  bool
	renderer *render.Renderer
	canvasFB *framebuffer.Framebuffer

	// Interaction state
	dragIndex     int // point being dragged, -1 if none
	colorIndex    int // point whose color popup is open, -1 if none
	pressPos      imgui.Vec2
	pressCaptured bool

	// Canvas screenshot state
	screenshotDir       string
	screenshotRequested bool

	// Notification overlay, shown for 2 seconds
	notifyMsg  string
	showNotify bool
	notifyTime time.Time

	// File dialog results, handed from dialog goroutines to render()
	pendingText  pendingPath
	pendingImage pendingPath
}

// New creates the editor application.
func New(cfg *config.Config) (*App, error) {
	app := &App{
		cfg:           cfg,
		grid:          mesh.New(cfg.Grid.Width, cfg.Grid.Height),
		smoothing:     cfg.Render.Smoothing,
		start:         time.Now(),
		dragIndex:     -1,
		colorIndex:    -1,
		screenshotDir: filepath.Join(os.TempDir(), "meshgrad"),
		anim: mesh.Params{
			Kind:      mesh.ParseKind(cfg.Animation.Kind),
			Speed:     cfg.Animation.Speed,
			Intensity: cfg.Animation.Intensity,
			Enabled:   cfg.Animation.Enabled,
		},
	}

	if err := os.MkdirAll(app.screenshotDir, 0755); err != nil {
		logger.Warn("could not create screenshot dir", zap.Error(err))
	}

	var err error
	app.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("creating backend: %w", err)
	}

	app.backend.SetBgColor(imgui.NewVec4(0.1, 0.1, 0.12, 1.0))
	app.backend.CreateWindow("Meshgrad", cfg.Window.Width, cfg.Window.Height)

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	logger.Info("editor created",
		zap.Int("gridWidth", cfg.Grid.Width),
		zap.Int("gridHeight", cfg.Grid.Height),
		zap.String("kind", app.anim.Kind.String()),
	)

	return app, nil
}

// Run starts the main application loop.
func (app *App) Run() {
	app.backend.Run(app.render)
}

// Close releases GL resources.
func (app *App) Close() {
	if app.renderer != nil {
		app.renderer.Close()
		app.renderer = nil
	}
	if app.canvasFB != nil {
		app.canvasFB.Destroy()
		app.canvasFB = nil
	}
}

// ensureGL creates the renderer and offscreen framebuffer on the first
// frame, when the GL context is guaranteed current.
func (app *App) ensureGL() bool {
	if app.glReady {
		return true
	}

	r, err := render.NewRenderer(app.cfg.Render.Resolution)
	if err != nil {
		logger.Error("renderer init failed", zap.Error(err))
		return false
	}

	fb, err := framebuffer.New(512, 512)
	if err != nil {
		r.Close()
		logger.Error("framebuffer init failed", zap.Error(err))
		return false
	}

	app.renderer = r
	app.canvasFB = fb
	app.glReady = true
	return true
}

// currentFrame samples the animation clock and produces the frame to draw.
// Animation is evaluated exactly once per tick.
func (app *App) currentFrame() mesh.Frame {
	frame := app.grid.Snapshot(app.smoothing)
	if app.anim.Enabled {
		now := time.Since(app.start).Seconds()
		frame.Positions = mesh.Evaluate(frame.Positions, app.anim, now)
	}
	return frame
}

// render is called each frame to draw the UI.
func (app *App) render() {
	// Process pending file dialog results on the main thread
	if path := app.pendingText.take(); path != "" {
		app.saveExportText(path)
	}
	if path := app.pendingImage.take(); path != "" {
		app.saveImage(path)
	}

	// Ctrl+C copies the export text
	ctrlC := imgui.KeyChord(imgui.ModCtrl) | imgui.KeyChord(imgui.KeyC)
	if imgui.IsKeyChordPressed(ctrlC) && !imgui.IsAnyItemActive() {
		app.copyExport()
	}

	// Space toggles animation when not typing
	if imgui.IsKeyChordPressed(imgui.KeyChord(imgui.KeySpace)) && !imgui.IsAnyItemActive() {
		app.anim.Enabled = !app.anim.Enabled
	}

	// F12 captures the canvas framebuffer
	if imgui.IsKeyChordPressed(imgui.KeyChord(imgui.KeyF12)) {
		app.screenshotRequested = true
	}

	frame := app.currentFrame()

	// Main menu bar
	if imgui.BeginMainMenuBar() {
		if imgui.BeginMenu("File") {
			if imgui.MenuItemBool("Copy Export") {
				app.copyExport()
			}
			if imgui.MenuItemBool("Export Text...") {
				app.openExportDialog()
			}
			if imgui.MenuItemBool("Save Image...") {
				app.openImageDialog()
			}
			imgui.Separator()
			if imgui.MenuItemBool("Save Settings") {
				app.saveSettings()
			}
			imgui.Separator()
			if imgui.MenuItemBool("Exit") {
				os.Exit(0)
			}
			imgui.EndMenu()
		}
		imgui.EndMainMenuBar()
	}

	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()
	contentHeight := workSize.Y - statusBarHeight

	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	// Left panel - controls
	imgui.SetNextWindowPos(workPos)
	imgui.SetNextWindowSize(imgui.NewVec2(controlsPanelWidth, contentHeight))
	if imgui.BeginV("Controls", nil, flags) {
		app.renderControls()
	}
	imgui.End()

	// Right panel - canvas
	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+controlsPanelWidth, workPos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(workSize.X-controlsPanelWidth, contentHeight))
	if imgui.BeginV("Canvas", nil, flags) {
		app.renderCanvas(frame)
	}
	imgui.End()

	// Status bar at bottom
	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X, workPos.Y+contentHeight))
	imgui.SetNextWindowSize(imgui.NewVec2(workSize.X, statusBarHeight))
	statusFlags := flags | imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoScrollbar
	if imgui.BeginV("##StatusBar", nil, statusFlags) {
		app.renderStatusBar()
	}
	imgui.End()

	// Notification overlay, shown for 2 seconds
	if app.showNotify && time.Since(app.notifyTime) < 2*time.Second {
		notifyFlags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
			imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
			imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoFocusOnAppearing
		imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+10, workPos.Y+10))
		imgui.SetNextWindowBgAlpha(0.85)
		if imgui.BeginV("##Notify", nil, notifyFlags) {
			imgui.Text(app.notifyMsg)
		}
		imgui.End()
	} else if app.showNotify {
		app.showNotify = false
	}
}

// renderStatusBar renders the status bar at the bottom.
func (app *App) renderStatusBar() {
	animState := "paused"
	if app.anim.Enabled {
		animState = app.anim.Kind.String()
	}
	imgui.Text(fmt.Sprintf("%dx%d grid | %d points | animation: %s",
		app.grid.Width(), app.grid.Height(), app.grid.Len(), animState))
}

// saveSettings captures the session state into the config and persists
// it to the user's config directory.
func (app *App) saveSettings() {
	app.cfg.Grid.Width = app.grid.Width()
	app.cfg.Grid.Height = app.grid.Height()
	app.cfg.Animation.Kind = app.anim.Kind.String()
	app.cfg.Animation.Speed = app.anim.Speed
	app.cfg.Animation.Intensity = app.anim.Intensity
	app.cfg.Animation.Enabled = app.anim.Enabled
	app.cfg.Render.Smoothing = app.smoothing

	if err := app.cfg.Save(); err != nil {
		logger.Error("saving settings failed", zap.Error(err))
		app.showNotification("Save failed: " + err.Error())
		return
	}

	logger.Info("settings saved", zap.String("dir", config.ConfigDir()))
	app.showNotification("Settings saved")
}

// showNotification displays a brief overlay notification message.
func (app *App) showNotification(msg string) {
	app.notifyMsg = msg
	app.showNotify = true
	app.notifyTime = time.Now()
}

package editor

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"
	"golang.org/x/image/bmp"

	"github.com/Faultbox/meshgrad/internal/engine/render"
	"github.com/Faultbox/meshgrad/internal/logger"
	"github.com/Faultbox/meshgrad/pkg/mesh"
)

// exportImageSize is the pixel size of saved gradient images.
const exportImageSize = 1024

// renderControls renders the left control panel.
func (app *App) renderControls() {
	imgui.Text("Grid")
	imgui.Separator()
	app.renderGridSteppers()

	imgui.Spacing()
	imgui.Text("Animation")
	imgui.Separator()
	app.renderAnimationControls()

	imgui.Spacing()
	imgui.Text("Rendering")
	imgui.Separator()
	imgui.Checkbox("Smooth colors", &app.smoothing)

	imgui.Spacing()
	imgui.Text("Tools")
	imgui.Separator()
	if imgui.ButtonV("Randomize Colors", imgui.NewVec2(-1, 0)) {
		app.grid.RandomizeColors()
	}
	if imgui.ButtonV("Randomize Points", imgui.NewVec2(-1, 0)) {
		app.grid.RandomizePoints()
	}
	if imgui.ButtonV("Reset Grid", imgui.NewVec2(-1, 0)) {
		app.grid.Resize(app.grid.Width(), app.grid.Height())
	}

	imgui.Spacing()
	imgui.Text("Export")
	imgui.Separator()
	if imgui.ButtonV("Copy to Clipboard", imgui.NewVec2(-1, 0)) {
		app.copyExport()
	}
	if imgui.ButtonV("Export Text...", imgui.NewVec2(-1, 0)) {
		app.openExportDialog()
	}
	if imgui.ButtonV("Save Image...", imgui.NewVec2(-1, 0)) {
		app.openImageDialog()
	}
}

// renderGridSteppers renders the width/height steppers. Resizing
// regenerates all points and colors.
func (app *App) renderGridSteppers() {
	w, h := app.grid.Width(), app.grid.Height()

	imgui.Text(fmt.Sprintf("Width:  %d", w))
	imgui.SameLine()
	if imgui.Button("-##gw") && w > 2 {
		app.grid.Resize(w-1, h)
	}
	imgui.SameLine()
	if imgui.Button("+##gw") && w < 5 {
		app.grid.Resize(w+1, h)
	}

	w, h = app.grid.Width(), app.grid.Height()
	imgui.Text(fmt.Sprintf("Height: %d", h))
	imgui.SameLine()
	if imgui.Button("-##gh") && h > 2 {
		app.grid.Resize(w, h-1)
	}
	imgui.SameLine()
	if imgui.Button("+##gh") && h < 5 {
		app.grid.Resize(w, h+1)
	}
}

// renderAnimationControls renders the animation kind and parameter widgets.
func (app *App) renderAnimationControls() {
	imgui.Checkbox("Animate", &app.anim.Enabled)

	if imgui.BeginCombo("Kind", app.anim.Kind.String()) {
		for _, k := range mesh.Kinds {
			selected := k == app.anim.Kind
			if imgui.SelectableBoolV(k.String(), selected, 0, imgui.NewVec2(0, 0)) {
				app.anim.Kind = k
			}
			if selected {
				imgui.SetItemDefaultFocus()
			}
		}
		imgui.EndCombo()
	}

	imgui.SliderFloat("Speed", &app.anim.Speed, 0.1, 3.0)
	imgui.SliderFloat("Intensity", &app.anim.Intensity, 0.1, 2.0)
}

// copyExport puts the export text on the system clipboard.
func (app *App) copyExport() {
	text := mesh.Export(app.grid.Snapshot(app.smoothing))
	imgui.SetClipboardText(text)
	app.showNotification("Export copied to clipboard")
}

// openExportDialog shows a native save dialog for the export text.
// SDL/Cocoa window operations must happen on the main thread, so the
// goroutine only records the chosen path; render() processes it.
func (app *App) openExportDialog() {
	go func() {
		filename, err := dialog.File().
			Filter("Text Files", "txt").
			Title("Export Mesh Gradient").
			Save()
		if err != nil {
			if err != dialog.ErrCancelled {
				logger.Error("export dialog failed", zap.Error(err))
			}
			return
		}
		app.pendingText.set(filename)
	}()
}

// openImageDialog shows a native save dialog for a rendered image.
func (app *App) openImageDialog() {
	go func() {
		filename, err := dialog.File().
			Filter("PNG Image", "png").
			Filter("BMP Image", "bmp").
			Title("Save Gradient Image").
			Save()
		if err != nil {
			if err != dialog.ErrCancelled {
				logger.Error("image dialog failed", zap.Error(err))
			}
			return
		}
		app.pendingImage.set(filename)
	}()
}

// saveExportText writes the export text to the given path.
func (app *App) saveExportText(path string) {
	if filepath.Ext(path) == "" {
		path += ".txt"
	}

	text := mesh.Export(app.grid.Snapshot(app.smoothing))
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		logger.Error("export failed", zap.String("path", path), zap.Error(err))
		app.showNotification("Export failed: " + err.Error())
		return
	}

	logger.Info("export saved", zap.String("path", path))
	app.showNotification("Saved: " + filepath.Base(path))
}

// saveImage rasterizes the current frame on the CPU and writes it as
// PNG or BMP depending on the file extension.
func (app *App) saveImage(path string) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		ext = ".png"
		path += ext
	}

	frame := app.currentFrame()
	grid := render.Refine(frame, app.cfg.Render.Resolution)
	img := render.Rasterize(grid, exportImageSize, exportImageSize)

	file, err := os.Create(path)
	if err != nil {
		logger.Error("image save failed", zap.String("path", path), zap.Error(err))
		app.showNotification("Save failed: " + err.Error())
		return
	}
	defer file.Close()

	switch ext {
	case ".bmp":
		err = bmp.Encode(file, img)
	default:
		err = png.Encode(file, img)
	}
	if err != nil {
		logger.Error("image encode failed", zap.String("path", path), zap.Error(err))
		app.showNotification("Save failed: " + err.Error())
		return
	}

	logger.Info("image saved", zap.String("path", path), zap.Int("size", exportImageSize))
	app.showNotification("Saved: " + filepath.Base(path))
}

package editor

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	gomath "github.com/Faultbox/meshgrad/pkg/math"
	"github.com/Faultbox/meshgrad/pkg/mesh"
)

// renderCanvas draws the gradient surface and the point handles, and
// processes drag and click interaction.
func (app *App) renderCanvas(frame mesh.Frame) {
	avail := imgui.ContentRegionAvail()
	side := avail.X
	if avail.Y < side {
		side = avail.Y
	}
	if side < 64 {
		side = 64
	}

	// Center the square canvas in the available space
	startX := imgui.CursorPosX()
	if side < avail.X {
		imgui.SetCursorPosX(startX + (avail.X-side)/2)
	}

	canvasMin := imgui.CursorScreenPos()

	if !app.ensureGL() {
		imgui.TextDisabled("OpenGL unavailable")
		return
	}

	// Render the gradient offscreen, then display the color texture
	app.canvasFB.Resize(int32(side), int32(side))
	restore := app.canvasFB.BindWithViewport()
	app.canvasFB.Clear(0.1, 0.1, 0.12, 1.0)
	app.renderer.Draw(frame)
	restore()

	if app.screenshotRequested {
		app.screenshotRequested = false
		app.captureCanvas()
	}

	// Flip V: GL framebuffer textures have origin at bottom-left
	texRef := imgui.NewTextureRefTextureID(imgui.TextureID(app.canvasFB.ColorTexture()))
	imgui.ImageWithBgV(
		*texRef,
		imgui.NewVec2(side, side),
		imgui.NewVec2(0, 1),
		imgui.NewVec2(1, 0),
		imgui.NewVec4(0.15, 0.15, 0.15, 1.0),
		imgui.NewVec4(1, 1, 1, 1),
	)
	canvasHovered := imgui.IsItemHovered()

	app.handleCanvasInput(canvasMin, side, canvasHovered)
	app.drawHandles(canvasMin, side)
	app.renderColorPopup()
}

// toCanvas maps a mesh-space position to screen coordinates.
func toCanvas(min imgui.Vec2, side float32, p gomath.Vec2) imgui.Vec2 {
	return imgui.NewVec2(min.X+p.X*side, min.Y+p.Y*side)
}

// fromCanvas maps screen coordinates back to mesh space.
func fromCanvas(min imgui.Vec2, side float32, pos imgui.Vec2) gomath.Vec2 {
	return gomath.Vec2{X: (pos.X - min.X) / side, Y: (pos.Y - min.Y) / side}
}

// hitTest returns the index of the handle under the mouse, or -1.
// Handles sit at the stored control positions, not the animated ones.
func (app *App) hitTest(min imgui.Vec2, side float32, mouse imgui.Vec2) int {
	best := -1
	bestDist := handleHitRadius
	for i := 0; i < app.grid.Len(); i++ {
		s := toCanvas(min, side, app.grid.Point(i).Pos)
		dx := s.X - mouse.X
		dy := s.Y - mouse.Y
		dist := gomath.Sqrt(dx*dx + dy*dy)
		if dist <= bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}

// handleCanvasInput implements handle dragging and click-to-edit-color.
func (app *App) handleCanvasInput(min imgui.Vec2, side float32, hovered bool) {
	mouse := imgui.MousePos()

	if app.dragIndex >= 0 {
		if imgui.IsMouseDown(imgui.MouseButtonLeft) {
			dx := mouse.X - app.pressPos.X
			dy := mouse.Y - app.pressPos.Y
			if !app.pressCaptured && dx*dx+dy*dy > 9 {
				app.pressCaptured = true
			}
			if app.pressCaptured {
				app.grid.MovePoint(app.dragIndex, fromCanvas(min, side, mouse))
			}
		} else {
			// Release without movement is a click: edit the point color
			if !app.pressCaptured {
				app.colorIndex = app.dragIndex
				imgui.OpenPopupStr("##pointcolor")
			}
			app.dragIndex = -1
		}
		return
	}

	if hovered && imgui.IsMouseClickedBool(0) {
		if idx := app.hitTest(min, side, mouse); idx >= 0 {
			app.dragIndex = idx
			app.pressPos = mouse
			app.pressCaptured = false
		}
	}
}

// drawHandles overlays the control point handles on the canvas.
func (app *App) drawHandles(min imgui.Vec2, side float32) {
	drawList := imgui.WindowDrawList()

	outline := imgui.ColorU32Vec4(imgui.NewVec4(0.1, 0.1, 0.1, 0.9))
	ring := imgui.ColorU32Vec4(imgui.NewVec4(1, 1, 1, 0.9))
	cornerRing := imgui.ColorU32Vec4(imgui.NewVec4(0.6, 0.6, 0.6, 0.9))

	for i := 0; i < app.grid.Len(); i++ {
		p := app.grid.Point(i)
		center := toCanvas(min, side, p.Pos)

		fill := imgui.ColorU32Vec4(imgui.NewVec4(p.Color.R, p.Color.G, p.Color.B, 1))
		drawList.AddCircleFilledV(center, handleRadius, fill, 16)

		edgeColor := ring
		if mesh.Classify(p.Pos) == mesh.Corner {
			edgeColor = cornerRing
		}
		drawList.AddCircleV(center, handleRadius, edgeColor, 16, 2)

		if i == app.dragIndex {
			drawList.AddCircleV(center, handleRadius+3, outline, 16, 1)
		}
	}
}

// renderColorPopup renders the per-point color editor popup.
func (app *App) renderColorPopup() {
	if !imgui.BeginPopup("##pointcolor") {
		return
	}
	defer imgui.EndPopup()

	if app.colorIndex < 0 || app.colorIndex >= app.grid.Len() {
		imgui.CloseCurrentPopup()
		return
	}

	p := app.grid.Point(app.colorIndex)
	imgui.Text(fmt.Sprintf("Point %d", app.colorIndex))
	imgui.Separator()

	rgb := [3]float32{p.Color.R, p.Color.G, p.Color.B}
	if imgui.ColorEdit3("##color", &rgb) {
		app.grid.SetColor(app.colorIndex, mesh.Color{R: rgb[0], G: rgb[1], B: rgb[2], A: 1})
	}

	imgui.Spacing()
	imgui.Text("Presets:")
	for i, c := range mesh.PresetPalette {
		if i > 0 && i%5 != 0 {
			imgui.SameLine()
		}
		id := fmt.Sprintf("##preset%d", i)
		if imgui.ColorButton(id, imgui.NewVec4(c.R, c.G, c.B, 1)) {
			app.grid.SetColor(app.colorIndex, c)
		}
	}
}

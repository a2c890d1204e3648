package editor

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/meshgrad/internal/logger"
)

// captureCanvas saves the offscreen canvas framebuffer as a PNG.
// Triggered by F12; the capture happens right after the gradient is
// drawn, so the image never contains UI chrome.
func (app *App) captureCanvas() {
	width, height := app.canvasFB.Size()
	pixels := app.canvasFB.ReadPixels()

	// GL rows are bottom-up
	w, h := int(width), int(height)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		srcRow := (h - 1 - y) * w * 4
		dstRow := y * w * 4
		copy(img.Pix[dstRow:dstRow+w*4], pixels[srcRow:srcRow+w*4])
	}

	filename := fmt.Sprintf("meshgrad-%s.png", time.Now().Format("20060102-150405"))
	savePath := filepath.Join(app.screenshotDir, filename)

	file, err := os.Create(savePath)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		app.showNotification("Screenshot failed: " + err.Error())
		return
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		logger.Error("screenshot encode failed", zap.Error(err))
		app.showNotification("Screenshot failed: " + err.Error())
		return
	}

	logger.Info("screenshot saved", zap.String("path", savePath))
	app.showNotification("Saved: " + filename)
}

package lockscreen

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/canvas"
)

func writeTestPNG(t *testing.T) string {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	path := filepath.Join(t.TempDir(), "wall.png")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write png: %v", err)
	}
	return path
}

func TestLoadWallpaperMissingFileFallsBack(t *testing.T) {
	img := loadWallpaper(filepath.Join(t.TempDir(), "nope.jpg"))
	if !img.Hidden {
		t.Error("missing wallpaper should hide the image so the black fallback shows")
	}
}

func TestLoadWallpaperExistingFile(t *testing.T) {
	img := loadWallpaper(writeTestPNG(t))
	if img.Hidden {
		t.Error("existing wallpaper should be visible")
	}
	if img.FillMode != canvas.ImageFillContain {
		t.Errorf("fill mode = %v, want ImageFillContain", img.FillMode)
	}
}

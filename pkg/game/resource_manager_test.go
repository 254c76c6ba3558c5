package game

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/decker502/confetti/pkg/config"
	"github.com/decker502/confetti/pkg/embedded"
)

func encodeTestPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test png: %v", err)
	}
	return buf.Bytes()
}

// TestLoadPieceTemplates 失败的图形被跳过，其余按顺序加载
func TestLoadPieceTemplates(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/pieces/star.png":   &fstest.MapFile{Data: encodeTestPNG(t)},
		"data/pieces/broken.png": &fstest.MapFile{Data: []byte("not a png")},
	})
	defer embedded.Init(nil)

	rm := NewResourceManager()
	pieces := []config.PieceConfig{
		{ID: "piece1", Shape: "rect"},
		{ID: "piece2", Image: "data/pieces/star.png"},
		{ID: "piece3", Image: "data/pieces/missing.png"},
		{ID: "piece4", Image: "data/pieces/broken.png"},
		{ID: "piece5", Shape: "hexagon"},
		{ID: "piece6", Shape: "circle"},
	}

	templates := rm.LoadPieceTemplates(pieces)

	if len(templates) != 3 {
		t.Fatalf("loaded templates: got %d, want 3", len(templates))
	}
	wantIDs := []string{"piece1", "piece2", "piece6"}
	for i, id := range wantIDs {
		if templates[i].ID() != id {
			t.Errorf("templates[%d].ID() = %s, want %s", i, templates[i].ID(), id)
		}
	}

	failed := rm.FailedPieces()
	for _, id := range []string{"piece3", "piece4", "piece5"} {
		if failed[id] == nil {
			t.Errorf("expected %s to be reported as failed", id)
		}
	}

	if rm.GetTemplate("piece2") == nil {
		t.Error("GetTemplate(piece2) returned nil")
	}
	if rm.GetTemplate("piece3") != nil {
		t.Error("GetTemplate(piece3) should be nil")
	}
	if len(rm.Templates()) != 3 {
		t.Errorf("Templates(): got %d, want 3", len(rm.Templates()))
	}
}

// TestLoadPieceTemplatesCached 重复加载复用已缓存的模板
func TestLoadPieceTemplatesCached(t *testing.T) {
	rm := NewResourceManager()
	pieces := []config.PieceConfig{{ID: "a", Shape: "star"}}

	first := rm.LoadPieceTemplates(pieces)
	second := rm.LoadPieceTemplates(pieces)

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("unexpected template counts: %d, %d", len(first), len(second))
	}
	if first[0] != second[0] {
		t.Error("second load should return the cached template")
	}
	if len(rm.Templates()) != 1 {
		t.Errorf("Templates(): got %d, want 1", len(rm.Templates()))
	}
}

// TestLoadImageCache 图片按路径缓存
func TestLoadImageCache(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/a.png": &fstest.MapFile{Data: encodeTestPNG(t)},
	})
	defer embedded.Init(nil)

	rm := NewResourceManager()
	img1, err := rm.LoadImage("data/a.png")
	if err != nil {
		t.Fatalf("LoadImage() error: %v", err)
	}
	img2, err := rm.LoadImage("data/a.png")
	if err != nil {
		t.Fatalf("LoadImage() error: %v", err)
	}
	if img1 != img2 {
		t.Error("LoadImage should return the cached image")
	}
	if _, err := rm.LoadImage("data/none.png"); err == nil {
		t.Error("LoadImage should fail for missing file")
	}
}

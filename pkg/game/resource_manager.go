package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/confetti/internal/confetti"
	"github.com/decker502/confetti/pkg/config"
	"github.com/decker502/confetti/pkg/embedded"
	"github.com/decker502/confetti/pkg/render"
)

// ResourceManager is responsible for loading and caching confetti sprite templates.
//
// Pieces are either built-in vector shapes or PNG images. A piece that cannot be
// loaded is logged and skipped, so the burst only ever receives valid templates.
//
// This implementation is NOT thread-safe. Load everything on the game goroutine.
type ResourceManager struct {
	imageCache map[string]*ebiten.Image         // path -> Image
	templates  map[string]*render.ImageTemplate // piece id -> template
	order      []string                         // load order of piece ids
	failed     map[string]error                 // piece id -> load error
}

// NewResourceManager creates a ResourceManager with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache: make(map[string]*ebiten.Image),
		templates:  make(map[string]*render.ImageTemplate),
		failed:     make(map[string]error),
	}
}

// LoadImage loads a PNG image and caches it.
//
// Paths starting with "data/" are read from the embedded resources, other paths
// from disk.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cached, exists := rm.imageCache[path]; exists {
		return cached, nil
	}

	data, err := readResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

func readResource(path string) ([]byte, error) {
	if strings.HasPrefix(strings.TrimPrefix(path, "./"), "data/") && embedded.IsInitialized() {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// LoadPieceTemplates builds one template per configured piece.
//
// Returns the successfully loaded templates in configuration order. Failures are
// recorded (see FailedPieces) and never abort the remaining pieces.
func (rm *ResourceManager) LoadPieceTemplates(pieces []config.PieceConfig) []confetti.Template {
	loaded := make([]confetti.Template, 0, len(pieces))

	for _, piece := range pieces {
		if tmpl, ok := rm.templates[piece.ID]; ok {
			loaded = append(loaded, tmpl)
			continue
		}

		img, err := rm.loadPieceImage(piece)
		if err != nil {
			log.Printf("[Resource] 资源加载失败 ID: %s: %v", piece.ID, err)
			rm.failed[piece.ID] = err
			continue
		}

		tmpl := render.NewImageTemplate(piece.ID, img)
		rm.templates[piece.ID] = tmpl
		rm.order = append(rm.order, piece.ID)
		loaded = append(loaded, tmpl)
	}

	log.Printf("[Resource] 加载彩带图形 %d/%d 个", len(loaded), len(pieces))
	return loaded
}

func (rm *ResourceManager) loadPieceImage(piece config.PieceConfig) (*ebiten.Image, error) {
	switch {
	case piece.Shape != "":
		return render.NewShapeImage(piece.Shape)
	case piece.Image != "":
		return rm.LoadImage(piece.Image)
	}
	return nil, fmt.Errorf("piece %s has neither shape nor image", piece.ID)
}

// GetTemplate returns a loaded template by piece id, or nil.
func (rm *ResourceManager) GetTemplate(id string) *render.ImageTemplate {
	return rm.templates[id]
}

// Templates returns every loaded template in load order.
func (rm *ResourceManager) Templates() []confetti.Template {
	out := make([]confetti.Template, 0, len(rm.order))
	for _, id := range rm.order {
		out = append(out, rm.templates[id])
	}
	return out
}

// FailedPieces returns the load error of every skipped piece.
func (rm *ResourceManager) FailedPieces() map[string]error {
	return rm.failed
}

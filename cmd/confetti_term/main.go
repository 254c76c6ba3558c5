// Package main previews the confetti burst in a terminal.
//
// Every terminal cell stands for a block of cellWidth x cellHeight pixels, and each
// piece shape is drawn as one glyph tinted with the particle color.
//
// Usage (from the repository root, the default config is read from disk):
//
//	go run ./cmd/confetti_term [flags]
//
// Flags:
//
//	-config <path>  Confetti config file (default data/confetti.yaml)
//	-seed <n>       Random seed (0 = time based)
//	-mute           Disable the burst chime
//	-verbose        Log to confetti_term.log
//
// Controls:
//
//	Space   Explode again at the origin
//	R       Reset
//	Q/Esc   Quit
package main

import (
	"flag"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/confetti/internal/confetti"
	"github.com/decker502/confetti/pkg/config"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

var (
	configFlag  = flag.String("config", config.DefaultConfettiConfigPath, "Confetti config file")
	seedFlag    = flag.Int64("seed", 0, "Random seed (0 = time based)")
	muteFlag    = flag.Bool("mute", false, "Disable the burst chime")
	verboseFlag = flag.Bool("verbose", false, "Log to confetti_term.log")
)

type preview struct {
	screen   tcell.Screen
	cfg      *config.ConfettiConfig
	pool     *confetti.Pool
	renderer *cellRenderer
	chime    *chime

	templates []confetti.Template
	pending   bool
}

func main() {
	flag.Parse()

	log.SetOutput(io.Discard)
	if *verboseFlag {
		f, err := os.Create("confetti_term.log")
		if err == nil {
			defer f.Close()
			log.SetOutput(f)
		}
	}

	cfg, err := config.LoadConfettiConfig(*configFlag)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("failed to init screen: %v", err)
	}
	defer screen.Fini()

	p, err := newPreview(screen, cfg, *seedFlag, !*muteFlag)
	if err != nil {
		screen.Fini()
		log.Fatalf("failed to start preview: %v", err)
	}
	p.run()
}

func newPreview(screen tcell.Screen, cfg *config.ConfettiConfig, seed int64, sound bool) (*preview, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	p := &preview{
		screen:    screen,
		cfg:       cfg,
		renderer:  newCellRenderer(),
		templates: pieceTemplates(cfg.Pieces),
	}

	// 终端里一个单元格对应 cellWidth 个像素，密度保持为 1
	pool, err := confetti.NewPool(cfg.Burst, confetti.Env{
		Density:       1,
		Rand:          rand.New(rand.NewSource(seed)),
		RequestRedraw: func() { p.pending = true },
	})
	if err != nil {
		return nil, err
	}
	p.pool = pool

	if sound {
		c, err := newChime()
		if err != nil {
			// 没有音频设备时静音运行
			log.Printf("[Audio] speaker init failed: %v", err)
		} else {
			p.chime = c
		}
	}
	return p, nil
}

func (p *preview) explode() {
	w, h := p.screen.Size()
	x := p.cfg.Origin.X * float64(w*cellWidth)
	y := p.cfg.Origin.Y * float64(h*cellHeight)
	if err := p.pool.Explode(p.templates, p.cfg.Colors(), x, y); err != nil {
		log.Printf("[Preview] explode failed: %v", err)
		return
	}
	p.chime.play()
}

func (p *preview) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go forwardEvents(p.screen.PollEvent, eventChan, done)

	p.explode()

	for {
		select {
		case ev := <-eventChan:
			if !p.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			if p.pending {
				p.pending = false
				p.pool.Tick()
			}
			p.draw()
		}
	}
}

// forwardEvents pumps poll into out until poll returns nil or done is closed.
func forwardEvents(poll func() tcell.Event, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent returns false when the preview should quit.
func (p *preview) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ':
				p.explode()
			case 'r', 'R':
				p.pool.Reset()
			}
		}
	case *tcell.EventResize:
		p.screen.Sync()
	}
	return true
}

func (p *preview) draw() {
	p.screen.Clear()
	p.renderer.reset()
	p.pool.Draw(p.renderer)

	w, h := p.screen.Size()
	for _, c := range p.renderer.cells {
		if c.x < 0 || c.y < 0 || c.x >= w || c.y >= h {
			continue
		}
		p.screen.SetContent(c.x, c.y, c.glyph, nil, tcell.StyleDefault.Foreground(c.color))
	}

	status := "space: explode  r: reset  q: quit"
	for i, r := range status {
		p.screen.SetContent(i, h-1, r, nil, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
	p.screen.Show()
}

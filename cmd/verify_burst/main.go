// Package main runs one confetti burst headlessly and prints what happened.
//
// The burst is driven by a manual clock, so the run is deterministic for a given
// seed and frame step. Useful for checking config changes without a window.
//
// Usage (from the repository root, the default config is read from disk):
//
//	go run ./cmd/verify_burst [flags]
//
// Flags:
//
//	-seed <n>       Random seed (default 42)
//	-dt <ms>        Frame step in milliseconds (default 16)
//	-config <path>  Confetti config file (default data/confetti.yaml)
//	-samples <n>    Number of particles to print (default 3)
//	-verbose        Print alive count for every frame
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/decker502/confetti/internal/confetti"
	"github.com/decker502/confetti/pkg/config"
)

var (
	seedFlag    = flag.Int64("seed", 42, "Random seed")
	dtFlag      = flag.Int64("dt", 16, "Frame step in milliseconds")
	configFlag  = flag.String("config", config.DefaultConfettiConfigPath, "Confetti config file")
	samplesFlag = flag.Int("samples", 3, "Number of particles to print")
	verboseFlag = flag.Bool("verbose", false, "Print every frame")
)

// pieceTemplate stands in for a sprite template; only its id matters here.
type pieceTemplate string

func (p pieceTemplate) ID() string { return string(p) }

// countingRenderer counts draw calls per frame.
type countingRenderer struct {
	drawn      int
	minOpacity uint8
	sawOpacity bool
}

func (r *countingRenderer) DrawSprite(s confetti.Sprite) {
	r.drawn++
	if !r.sawOpacity || s.Opacity < r.minOpacity {
		r.minOpacity = s.Opacity
		r.sawOpacity = true
	}
}

type frameStat struct {
	alive int
	drawn int
}

type report struct {
	frames    []frameStat
	redraws   int
	initial   []confetti.Particle
	firstFade int // frame index where some drawn particle first dropped below full opacity, -1 if never
}

func simulate(cfg *config.ConfettiConfig, seed, dt int64) (*report, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("dt must be > 0, got %d", dt)
	}

	templates := make([]confetti.Template, 0, len(cfg.Pieces))
	for _, piece := range cfg.Pieces {
		templates = append(templates, pieceTemplate(piece.ID))
	}

	clock := &confetti.ManualClock{}
	rep := &report{firstFade: -1}
	pool, err := confetti.NewPool(cfg.Burst, confetti.Env{
		Density:       1,
		Rand:          rand.New(rand.NewSource(seed)),
		Clock:         clock,
		RequestRedraw: func() { rep.redraws++ },
	})
	if err != nil {
		return nil, err
	}

	if err := pool.Explode(templates, cfg.Colors(), 0, 0); err != nil {
		return nil, err
	}
	rep.initial = pool.Particles()

	// 上限防止错误配置导致死循环；每帧最多推进 FrameCapMs
	burst := pool.Config()
	step := min(dt, burst.FrameCapMs)
	maxFrames := int(burst.LifetimeMs/step) + 10
	for i := 0; i < maxFrames; i++ {
		more := pool.Tick()

		r := &countingRenderer{}
		pool.Draw(r)
		rep.frames = append(rep.frames, frameStat{alive: pool.AliveCount(), drawn: r.drawn})
		if rep.firstFade < 0 && r.sawOpacity && r.minOpacity < 255 {
			rep.firstFade = i
		}

		if !more {
			break
		}
		clock.Advance(dt)
	}
	return rep, nil
}

func main() {
	flag.Parse()

	cfg, err := config.LoadConfettiConfig(*configFlag)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	rep, err := simulate(cfg, *seedFlag, *dtFlag)
	if err != nil {
		log.Fatalf("simulation failed: %v", err)
	}

	fmt.Printf("burst: %d particles, lifetime %dms, step %dms, seed %d\n",
		len(rep.initial), cfg.Burst.LifetimeMs, *dtFlag, *seedFlag)

	for i := 0; i < *samplesFlag && i < len(rep.initial); i++ {
		p := rep.initial[i]
		fmt.Printf("  #%d %-8s size=%dpx angle=%.1f° force=%.2f v=(%.2f, %.2f)\n",
			i, p.Sprite.Template.ID(), p.Size, p.LaunchAngle, p.Force, p.VX, p.VY)
	}

	if *verboseFlag {
		for i, f := range rep.frames {
			fmt.Printf("  frame %3d alive=%d drawn=%d\n", i, f.alive, f.drawn)
		}
	}

	fmt.Printf("frames until idle: %d\n", len(rep.frames))
	fmt.Printf("redraw requests: %d\n", rep.redraws)
	if rep.firstFade >= 0 {
		fmt.Printf("fade starts at frame %d\n", rep.firstFade)
	}

	last := rep.frames[len(rep.frames)-1]
	if last.alive != 0 || last.drawn != 0 {
		fmt.Println("FAIL: burst did not finish")
		os.Exit(1)
	}
	fmt.Println("OK")
}

package main

import (
	"testing"

	"github.com/decker502/confetti/pkg/config"
)

func TestSimulateDefaultBurst(t *testing.T) {
	cfg := config.DefaultConfettiConfig()
	cfg.Pieces = []config.PieceConfig{{ID: "a", Shape: "rect"}, {ID: "b", Shape: "star"}}

	rep, err := simulate(&cfg, 42, 50)
	if err != nil {
		t.Fatalf("simulate() error: %v", err)
	}

	if len(rep.initial) != 60 {
		t.Errorf("initial particles: got %d, want 60", len(rep.initial))
	}
	// 首帧 dt=0，之后 50 帧推进到 2500ms，最后一帧清空
	if len(rep.frames) != 52 {
		t.Errorf("frames: got %d, want 52", len(rep.frames))
	}
	// Explode 请求一次，每个仍有存活粒子的帧再请求一次
	if rep.redraws != 52 {
		t.Errorf("redraws: got %d, want 52", rep.redraws)
	}
	last := rep.frames[len(rep.frames)-1]
	if last.alive != 0 || last.drawn != 0 {
		t.Errorf("last frame should be empty: %+v", last)
	}
	// 寿命的 20% (500ms) 之后开始渐隐：age 550 的第 11 帧
	if rep.firstFade != 11 {
		t.Errorf("firstFade: got %d, want 11", rep.firstFade)
	}
}

func TestSimulateRejectsBadStep(t *testing.T) {
	cfg := config.DefaultConfettiConfig()
	cfg.Pieces = []config.PieceConfig{{ID: "a", Shape: "rect"}}
	if _, err := simulate(&cfg, 1, 0); err == nil {
		t.Error("expected an error for dt=0")
	}
}

func TestSimulateNoPieces(t *testing.T) {
	cfg := config.DefaultConfettiConfig()
	cfg.Pieces = nil
	if _, err := simulate(&cfg, 1, 16); err == nil {
		t.Error("expected an error without pieces")
	}
}

// TestSimulateStepAboveFrameCap 步长超过单帧上限时每帧只推进 FrameCapMs
func TestSimulateStepAboveFrameCap(t *testing.T) {
	cfg := config.DefaultConfettiConfig()
	cfg.Pieces = []config.PieceConfig{{ID: "a", Shape: "rect"}}

	rep, err := simulate(&cfg, 42, 2*cfg.Burst.FrameCapMs)
	if err != nil {
		t.Fatalf("simulate() error: %v", err)
	}

	last := rep.frames[len(rep.frames)-1]
	if last.alive != 0 || last.drawn != 0 {
		t.Fatalf("burst did not finish: frames=%d last=%+v", len(rep.frames), last)
	}
	// 与 dt=50 相同：首帧、50 帧推进、清空帧
	if len(rep.frames) != 52 {
		t.Errorf("frames: got %d, want 52", len(rep.frames))
	}
}

package tui

import (
	"strings"
	"testing"

	"github.com/vdmtrv/brickout/internal/config"
	"github.com/vdmtrv/brickout/internal/core"
	"github.com/vdmtrv/brickout/internal/world"
)

func newRenderWorld() *world.World {
	rt := core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 60, Seed: 1}
	return world.New(config.Default(), rt, nil)
}

func TestDrawWorldShowsEntitiesAndHUD(t *testing.T) {
	w := newRenderWorld()
	s := core.NewScreen(60, 20)

	DrawWorld(w, s, nil, 42)

	out := s.String()
	if !strings.Contains(out, "SCORE 0") {
		t.Error("HUD should show the score")
	}
	if !strings.Contains(out, "BEST 42") {
		t.Error("HUD should show the high score")
	}
	if !strings.ContainsRune(out, BallChar) {
		t.Error("ball should be drawn")
	}
	if !strings.ContainsRune(out, BlockChar) {
		t.Error("blocks and paddle should be drawn")
	}
}

func TestDrawWorldGameOverOverlay(t *testing.T) {
	w := newRenderWorld()
	w.Phase = world.PhaseGameOver
	s := core.NewScreen(60, 20)

	DrawWorld(w, s, nil, 0)

	out := s.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("game over overlay should be drawn")
	}
	if !strings.Contains(out, "press R to restart") {
		t.Error("restart hint should be drawn")
	}
}

func TestDrawWorldWinOverlay(t *testing.T) {
	w := newRenderWorld()
	w.Phase = world.PhaseWon
	s := core.NewScreen(60, 20)

	DrawWorld(w, s, nil, 0)

	if !strings.Contains(s.String(), "YOU WIN!") {
		t.Error("win overlay should be drawn")
	}
}

func TestDrawWorldPausedOverlay(t *testing.T) {
	w := newRenderWorld()
	w.Phase = world.PhasePaused
	s := core.NewScreen(60, 20)

	DrawWorld(w, s, nil, 0)

	if !strings.Contains(s.String(), "PAUSED") {
		t.Error("pause overlay should be drawn")
	}
}

func TestRenderScreenPreservesLayout(t *testing.T) {
	s := core.NewScreen(8, 3)
	s.DrawText(0, 1, "hello", core.ColorCyan)

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[1], "hello") {
		t.Errorf("styled text lost: %q", lines[1])
	}
}

func TestRenderScreenUncoloredCellsUnstyled(t *testing.T) {
	s := core.NewScreen(5, 1)
	out := RenderScreen(s)

	// A blank screen must render as plain spaces, no escape codes.
	if strings.ContainsRune(out, '\x1b') {
		t.Errorf("blank screen should carry no ANSI sequences: %q", out)
	}
	if out != "     " {
		t.Errorf("expected five spaces, got %q", out)
	}
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vdmtrv/brickout/internal/core"
	"github.com/vdmtrv/brickout/internal/world"
)

// Entity glyphs.
const (
	PaddleChar   = '█'
	BallChar     = '●'
	BlockChar    = '█'
	ParticleChar = '•'
)

// DrawWorld renders the world state into the screen buffer. The buffer is
// cleared first; the background, if any, is drawn by the caller before
// entities so they paint over it.
func DrawWorld(w *world.World, s *core.Screen, bg *Background, highScore int) {
	s.Clear()
	if bg != nil {
		bg.Draw(s)
	}

	w.Store.ForEach(func(_ world.Handle, e *world.Entity) {
		switch e.Kind {
		case world.KindBlock, world.KindPlayer:
			r := e.Rect()
			s.FillRect(int(r.X), int(r.Y), int(r.W+0.5), int(r.H+0.5), entityChar(e.Kind), e.Color)
		case world.KindBall:
			s.Set(int(e.Pos.X), int(e.Pos.Y), BallChar, e.Color)
		case world.KindParticle:
			s.Set(int(e.Pos.X), int(e.Pos.Y), ParticleChar, e.Color)
		}
	})

	drawHUD(w, s, highScore)
	drawOverlay(w, s)
}

func entityChar(k world.Kind) rune {
	if k == world.KindPlayer {
		return PaddleChar
	}
	return BlockChar
}

// drawHUD paints the score line into row 0.
func drawHUD(w *world.World, s *core.Screen, highScore int) {
	s.DrawHLine(0, 0, s.Width(), ' ', core.RGBA{})
	s.DrawText(1, 0, fmt.Sprintf("SCORE %d", w.Score), core.ColorWhite)
	if highScore > 0 {
		s.DrawText(16, 0, fmt.Sprintf("BEST %d", highScore), core.ColorGray)
	}
	hint := "[P]ause  [Q]uit"
	s.DrawText(s.Width()-len(hint)-1, 0, hint, core.ColorGray)
}

// drawOverlay paints the phase banner for non-playing phases.
func drawOverlay(w *world.World, s *core.Screen) {
	var title, subtitle string
	var color core.RGBA

	switch w.Phase {
	case world.PhasePaused:
		title, subtitle, color = "PAUSED", "press P to resume", core.ColorYellow
	case world.PhaseGameOver:
		title, subtitle, color = "GAME OVER", "press R to restart", core.ColorRed
	case world.PhaseWon:
		title, subtitle, color = "YOU WIN!", "press R to play again", core.ColorGreen
	default:
		return
	}

	boxW := core.Max(len(subtitle), len(title)) + 6
	boxH := 5
	x := (s.Width() - boxW) / 2
	y := (s.Height() - boxH) / 2

	s.FillRect(x, y, boxW, boxH, ' ', core.RGBA{})
	s.DrawBox(x, y, boxW, boxH, color)
	s.DrawTextCentered(y+1, title, color)
	s.DrawTextCentered(y+3, subtitle, core.ColorGray)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color are grouped into one styled run to
// minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startColor == (core.RGBA{}) {
				sb.WriteString(run.String())
				continue
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(startColor.Hex()))
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

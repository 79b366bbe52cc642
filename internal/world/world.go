package world

import (
	"errors"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vdmtrv/brickout/internal/config"
	"github.com/vdmtrv/brickout/internal/core"
)

// ErrNoPlayer is returned by Step when ball processing finds no live
// player entity. This indicates a broken initialization contract, not a
// runtime condition; callers treat it as fatal.
var ErrNoPlayer = errors.New("world: no live player entity")

// Phase is the current game phase.
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseGameOver
	PhaseWon
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	case PhaseWon:
		return "Won"
	default:
		return "Unknown"
	}
}

// Event is a simulation outcome the platform layer may react to, e.g. by
// playing a sound. The simulation itself never depends on the reaction.
type Event int

const (
	EventWallBounce Event = iota
	EventPaddleHit
	EventBlockBreak
	EventGameOver
	EventWin
)

// rowColors is the palette cycled across block rows, top to bottom.
var rowColors = []core.RGBA{
	core.NewRGB(0xe0, 0x40, 0x40),
	core.NewRGB(0xe0, 0x90, 0x40),
	core.NewRGB(0xe0, 0xc0, 0x40),
	core.NewRGB(0x40, 0xc0, 0x60),
	core.NewRGB(0x40, 0xa0, 0xe0),
	core.NewRGB(0xa0, 0x60, 0xe0),
}

// World holds all mutable simulation state. Step functions take the world
// by pointer; there are no package-level globals, so tests can run many
// worlds independently and deterministically.
type World struct {
	Store *Store
	Score int
	Phase Phase
	Tick  uint64

	// FieldW and FieldH are the playfield dimensions in cells. Row 0 is
	// reserved for the HUD by the renderer but belongs to the field.
	FieldW, FieldH float64

	cfg    config.Config
	rng    *rand.Rand
	events []Event

	// Deferred particle spawns, applied after the entity pass so slot
	// reuse cannot disturb iteration.
	pending []Entity
}

// New creates a world for the given configuration and runtime settings.
// A zero seed falls back to the current time.
func New(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) *World {
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	w := &World{
		Store:  NewStore(logger),
		FieldW: float64(rt.ScreenW),
		FieldH: float64(rt.ScreenH),
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
	}
	w.Reset()
	return w
}

// Config returns the active game configuration.
func (w *World) Config() config.Config {
	return w.cfg
}

// Reset restores the initial entity configuration: one player, one ball,
// and a full block grid. Score returns to zero and the phase to Playing.
// Entity IDs keep counting up across resets.
func (w *World) Reset() {
	w.Store.Clear()
	w.Score = 0
	w.Phase = PhasePlaying
	w.Tick = 0
	w.pending = w.pending[:0]

	w.spawnPlayer()
	w.spawnBall()
	w.spawnBlockGrid()
}

func (w *World) spawnPlayer() {
	pc := w.cfg.Paddle
	w.Store.Create(Entity{
		Kind:  KindPlayer,
		Pos:   core.Vec2{X: (w.FieldW - pc.Width) / 2, Y: w.FieldH - 2},
		Size:  core.Vec2{X: pc.Width, Y: pc.Height},
		Color: core.ColorWhite,
	})
}

func (w *World) spawnBall() {
	bc := w.cfg.Ball
	// Launch at a slight random angle so games differ per seed.
	vx := (w.rng.Float64() - 0.5) * bc.Speed
	w.Store.Create(Entity{
		Kind:  KindBall,
		Pos:   core.Vec2{X: w.FieldW / 2, Y: w.FieldH - 6},
		Vel:   core.Vec2{X: vx, Y: -bc.Speed},
		Size:  core.Vec2{X: bc.Radius * 2, Y: bc.Radius * 2},
		Color: core.ColorYellow,
	})
}

func (w *World) spawnBlockGrid() {
	bc := w.cfg.Blocks
	if bc.Rows <= 0 || bc.Cols <= 0 {
		return
	}
	gap := bc.Gap
	blockW := (w.FieldW - gap*float64(bc.Cols+1)) / float64(bc.Cols)
	if blockW < 1 {
		blockW = 1
	}
	for row := 0; row < bc.Rows; row++ {
		color := rowColors[row%len(rowColors)]
		y := bc.TopOffset + float64(row)*(bc.Height+1)
		for col := 0; col < bc.Cols; col++ {
			x := gap + float64(col)*(blockW+gap)
			w.Store.Create(Entity{
				Kind:  KindBlock,
				Pos:   core.Vec2{X: x, Y: y},
				Size:  core.Vec2{X: blockW, Y: bc.Height},
				Color: color,
			})
		}
	}
}

// player returns the single live player entity. Exactly one player must
// exist while the game is in motion; none is an invariant violation.
func (w *World) player() (Handle, *Entity, error) {
	var h Handle = -1
	var p *Entity
	w.Store.ForEach(func(hh Handle, e *Entity) {
		if e.Kind == KindPlayer && p == nil {
			h, p = hh, e
		}
	})
	if p == nil {
		return -1, nil, ErrNoPlayer
	}
	return h, p, nil
}

// difficultyLevel returns the current difficulty in [0, 1] based on the
// configured progression.
func (w *World) difficultyLevel() float64 {
	d := w.cfg.Difficulty
	if !d.Enabled {
		return core.ClampF(d.InitialLevel, 0, 1)
	}
	var progress float64
	switch d.Progression.Type {
	case "score":
		if d.Progression.MaxAt > 0 {
			progress = float64(w.Score) / float64(d.Progression.MaxAt)
		}
	case "time":
		if d.Progression.MaxAt > 0 {
			progress = float64(w.Tick) / float64(d.Progression.MaxAt)
		}
	}
	return core.ClampF(d.InitialLevel+progress, 0, 1)
}

// maxBallSpeed returns the velocity magnitude cap at the current
// difficulty level.
func (w *World) maxBallSpeed() float64 {
	return w.cfg.Ball.MaxSpeed + w.difficultyLevel()*w.cfg.Difficulty.Scaling.BallSpeedMultiplier
}

// paddleWidth returns the paddle width at the current difficulty level.
func (w *World) paddleWidth() float64 {
	width := w.cfg.Paddle.Width - w.difficultyLevel()*w.cfg.Difficulty.Scaling.PaddleShrink
	if width < 2 {
		width = 2
	}
	return width
}

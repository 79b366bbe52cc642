// Package world implements the game simulation: the entity store with
// slot reuse, the per-tick update and collision step, and the game phase
// machine. It depends only on core and config so it can be unit tested
// without a terminal.
package world

import "github.com/vdmtrv/brickout/internal/core"

// Kind tags an entity with its behavior class.
type Kind uint8

const (
	// KindTombstone marks a logically deleted slot awaiting reuse.
	KindTombstone Kind = iota
	KindPlayer
	KindBall
	KindBlock
	KindParticle
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindTombstone:
		return "Tombstone"
	case KindPlayer:
		return "Player"
	case KindBall:
		return "Ball"
	case KindBlock:
		return "Block"
	case KindParticle:
		return "Particle"
	default:
		return "Unknown"
	}
}

// Entity is one simulated object. Entities are plain data: behavior is
// selected by a switch over Kind in the step functions, not stored on the
// record.
type Entity struct {
	ID   uint64 // Monotonic, unique for the process lifetime, never reused
	Kind Kind

	Pos  core.Vec2 // Top-left for rectangles, center for the ball
	Vel  core.Vec2 // Cells per second
	Size core.Vec2 // Width/height; X doubles as diameter for the ball

	Color core.RGBA

	HasLifetime bool
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64 // Initial lifetime, for fade calculations
}

// Rect returns the entity's axis-aligned bounding rectangle.
func (e *Entity) Rect() core.Rect {
	return core.NewRect(e.Pos.X, e.Pos.Y, e.Size.X, e.Size.Y)
}

// Radius returns the collision radius for circular entities.
func (e *Entity) Radius() float64 {
	return e.Size.X / 2
}

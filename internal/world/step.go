package world

import (
	"math"

	"github.com/vdmtrv/brickout/internal/core"
)

// updateFn is a per-kind behavior applied after generic integration.
type updateFn func(w *World, h Handle, e *Entity, dt float64, in core.InputFrame) error

// behaviorFor selects the update function for an entity kind. Blocks are
// passive: they only react to the ball, which drives the interaction.
func behaviorFor(k Kind) updateFn {
	switch k {
	case KindPlayer:
		return stepPlayer
	case KindBall:
		return stepBall
	case KindParticle:
		return stepParticle
	default:
		return nil
	}
}

// Step advances the simulation by dt seconds. It returns the events the
// frame produced; the caller decides how to react to them. Pause and
// restart inputs are handled here so the phase machine lives in one place.
func (w *World) Step(dt float64, in core.InputFrame) ([]Event, error) {
	w.events = w.events[:0]

	switch w.Phase {
	case PhasePaused:
		if in.Has(core.ActionPause) {
			w.Phase = PhasePlaying
		}
		return nil, nil
	case PhaseGameOver, PhaseWon:
		if in.Has(core.ActionRestart) {
			w.Reset()
		}
		return nil, nil
	}

	if in.Has(core.ActionPause) {
		w.Phase = PhasePaused
		return nil, nil
	}

	w.Tick++

	// Pass 1: integrate every live entity.
	w.Store.ForEach(func(_ Handle, e *Entity) {
		e.Pos = e.Pos.Add(e.Vel.Scale(dt))
	})

	// Pass 2: per-kind behavior.
	var stepErr error
	w.Store.ForEach(func(h Handle, e *Entity) {
		if stepErr != nil {
			return
		}
		if fn := behaviorFor(e.Kind); fn != nil {
			stepErr = fn(w, h, e, dt, in)
		}
	})
	if stepErr != nil {
		return nil, stepErr
	}

	// Pass 3: remove entities whose lifetime has expired.
	w.Store.ForEach(func(h Handle, e *Entity) {
		if e.HasLifetime && e.Lifetime <= 0 {
			w.Store.Remove(h)
		}
	})

	// Flush particle spawns deferred during the entity pass.
	for _, p := range w.pending {
		w.Store.Create(p)
	}
	w.pending = w.pending[:0]

	if w.Phase == PhasePlaying && w.Store.Count(KindBlock) == 0 {
		w.Phase = PhaseWon
		w.emit(EventWin)
	}

	return w.events, nil
}

func (w *World) emit(ev Event) {
	w.events = append(w.events, ev)
}

// stepPlayer applies input-driven paddle control: acceleration toward a
// target speed while a direction is held, friction toward zero otherwise,
// both rate-limited so a single step never overshoots. The paddle is then
// clamped to the field with the outward velocity component zeroed.
func stepPlayer(w *World, _ Handle, e *Entity, dt float64, in core.InputFrame) error {
	pc := w.cfg.Paddle
	e.Size.X = w.paddleWidth()

	target := 0.0
	if in.Has(core.ActionLeft) {
		target = -pc.MaxSpeed
	}
	if in.Has(core.ActionRight) {
		target = pc.MaxSpeed
	}

	if target != 0 {
		e.Vel.X = approach(e.Vel.X, target, pc.Accel*dt)
	} else {
		e.Vel.X = approach(e.Vel.X, 0, pc.Friction*dt)
	}

	if e.Pos.X < 0 {
		e.Pos.X = 0
		if e.Vel.X < 0 {
			e.Vel.X = 0
		}
	}
	if e.Pos.X+e.Size.X > w.FieldW {
		e.Pos.X = w.FieldW - e.Size.X
		if e.Vel.X > 0 {
			e.Vel.X = 0
		}
	}
	if e.Pos.Y+e.Size.Y > w.FieldH {
		e.Pos.Y = w.FieldH - e.Size.Y
		if e.Vel.Y > 0 {
			e.Vel.Y = 0
		}
	}
	return nil
}

// approach moves cur toward target by at most step, never passing it.
func approach(cur, target, step float64) float64 {
	if cur < target {
		cur += step
		if cur > target {
			cur = target
		}
		return cur
	}
	cur -= step
	if cur < target {
		cur = target
	}
	return cur
}

// stepBall handles wall, paddle and block collisions for the ball. The
// ball's bounding circle reflects off the side and top edges; crossing the
// bottom edge ends the game and skips the rest of the ball's processing.
func stepBall(w *World, _ Handle, e *Entity, _ float64, _ core.InputFrame) error {
	r := e.Radius()

	// Walls. Row 0 is the HUD, so the top reflection happens one row in.
	if e.Pos.X-r < 0 {
		e.Pos.X = r
		e.Vel.X = math.Abs(e.Vel.X)
		w.emit(EventWallBounce)
	}
	if e.Pos.X+r > w.FieldW {
		e.Pos.X = w.FieldW - r
		e.Vel.X = -math.Abs(e.Vel.X)
		w.emit(EventWallBounce)
	}
	if e.Pos.Y-r < 1 {
		e.Pos.Y = 1 + r
		e.Vel.Y = math.Abs(e.Vel.Y)
		w.emit(EventWallBounce)
	}
	if e.Pos.Y-r > w.FieldH {
		w.Phase = PhaseGameOver
		w.emit(EventGameOver)
		return nil
	}

	_, paddle, err := w.player()
	if err != nil {
		return err
	}

	if core.CircleIntersectsRect(e.Pos, r, paddle.Rect()) {
		bc := w.cfg.Ball

		// Force the ball upward and let the paddle shape the rebound:
		// a fraction of paddle velocity carries over as spin, and the
		// impact position across the paddle width adds a signed angle.
		e.Vel.Y = -math.Abs(e.Vel.Y)
		e.Vel.X += paddle.Vel.X * bc.SpinFactor

		impact := core.ClampF((e.Pos.X-paddle.Pos.X)/paddle.Size.X, 0, 1)
		e.Vel.X += (impact - 0.5) * 2 * bc.ImpactBoost

		clampSpeed(&e.Vel, w.maxBallSpeed())

		// Reposition just above the paddle so the same contact cannot
		// collide again next frame.
		e.Pos.Y = paddle.Pos.Y - r
		w.emit(EventPaddleHit)
	}

	// Blocks. Every live block is tested independently; simultaneous hits
	// each apply their own reflection.
	w.Store.ForEach(func(bh Handle, b *Entity) {
		if b.Kind != KindBlock {
			return
		}
		if !core.CircleIntersectsRect(e.Pos, r, b.Rect()) {
			return
		}
		w.Store.Remove(bh)
		w.Score++
		w.spawnParticles(b)
		w.emit(EventBlockBreak)

		// Axis heuristic: a ball center outside the block's horizontal
		// span hit a side, otherwise it hit top or bottom. Corner hits
		// can pick the wrong axis; accepted as an approximation.
		if e.Pos.X < b.Pos.X || e.Pos.X > b.Pos.X+b.Size.X {
			e.Vel.X = -e.Vel.X
		} else {
			e.Vel.Y = -e.Vel.Y
		}
	})

	return nil
}

// clampSpeed caps the velocity magnitude, preserving direction.
func clampSpeed(v *core.Vec2, maxSpeed float64) {
	speed := v.Len()
	if speed > maxSpeed && speed > 0 {
		*v = v.Scale(maxSpeed / speed)
	}
}

// spawnParticles queues an explosion burst at the block's center. Spawns
// are deferred to the end of the step so slot reuse cannot disturb the
// in-flight iteration.
func (w *World) spawnParticles(block *Entity) {
	pc := w.cfg.Particles
	center := block.Rect().Center()
	for i := 0; i < pc.Count; i++ {
		angle := w.rng.Float64() * 2 * math.Pi
		speed := pc.Speed * (0.5 + w.rng.Float64()*0.5)
		w.pending = append(w.pending, Entity{
			Kind:        KindParticle,
			Pos:         center,
			Vel:         core.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Size:        core.Vec2{X: 1, Y: 1},
			Color:       block.Color,
			HasLifetime: true,
			Lifetime:    pc.Lifetime,
			MaxLifetime: pc.Lifetime,
		})
	}
}

// stepParticle applies gravity, burns lifetime and fades the alpha channel
// with the remaining lifetime fraction. Expired particles are collected by
// the lifetime pass in Step.
func stepParticle(w *World, _ Handle, e *Entity, dt float64, _ core.InputFrame) error {
	e.Vel.Y += w.cfg.Particles.Gravity * dt
	e.Lifetime -= dt
	frac := 0.0
	if e.MaxLifetime > 0 {
		frac = core.ClampF(e.Lifetime/e.MaxLifetime, 0, 1)
	}
	e.Color.A = uint8(255 * frac)
	return nil
}

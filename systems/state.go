package systems

import (
	"github.com/automoto/devour/components"
	cfg "github.com/automoto/devour/config"
	"github.com/automoto/devour/shared/gamemath"
	"github.com/automoto/devour/systems/factory"
	"github.com/automoto/devour/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateActions starts and steps the jump/roll timed actions. It runs after
// locomotion, so a jump owns the player position for its whole duration.
func UpdateActions(e *ecs.ECS) {
	dt := FrameDelta(e)

	var jumpPressed, rollPressed bool
	if entry, ok := components.Input.First(e.World); ok {
		input := components.Input.Get(entry)
		jumpPressed = input.JumpPressed
		rollPressed = input.RollPressed
	}

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		act := components.TimedAction.Get(entry)

		if act.Kind == cfg.ActionKindNone {
			switch {
			case jumpPressed:
				StartAction(e, entry, cfg.ActionKindJumping)
			case rollPressed:
				StartAction(e, entry, cfg.ActionKindRolling)
			}
		}

		stepAction(entry, dt)
	})
}

// StartAction begins kind if the player has no action running. Presses while
// an action runs are dropped. It reports whether the action started.
func StartAction(e *ecs.ECS, entry *donburi.Entry, kind cfg.ActionKind) bool {
	act := components.TimedAction.Get(entry)
	if act.Kind != cfg.ActionKindNone || kind == cfg.ActionKindNone {
		return false
	}

	tr := components.Transform.Get(entry)
	switch kind {
	case cfg.ActionKindJumping:
		*act = components.TimedActionData{
			Kind:     kind,
			Duration: cfg.Actions.JumpDuration,
			Start:    tr.Position,
		}
		PlaySFX(e, cfg.SoundJump)
	case cfg.ActionKindRolling:
		*act = components.TimedActionData{
			Kind:     kind,
			Duration: cfg.Actions.RollDuration,
		}
		PlaySFX(e, cfg.SoundSpin)
	default:
		return false
	}

	gameLog.Debug("action started",
		zap.Stringer("kind", kind),
		zap.Float64("duration", act.Duration),
	)
	return true
}

func stepAction(entry *donburi.Entry, dt float64) {
	act := components.TimedAction.Get(entry)
	tr := components.Transform.Get(entry)

	switch act.Kind {
	case cfg.ActionKindJumping:
		act.Elapsed += dt
		if act.Elapsed >= act.Duration {
			tr.Position = act.Start
			*act = components.TimedActionData{}
		} else {
			tr.Position = jumpPosition(act)
		}
		factory.SyncBody(entry)

	case cfg.ActionKindRolling:
		step := dt
		if remaining := act.Duration - act.Elapsed; step > remaining {
			step = remaining
		}
		act.Elapsed += dt
		spin := gamemath.YawRotation(cfg.Actions.RollSpeed * step)
		tr.Rotation = spin.Mul(tr.Rotation).Normalize()
		if act.Elapsed >= act.Duration {
			*act = components.TimedActionData{}
		}
	}
}

// jumpPosition evaluates the jump arc: equal ascend and descend halves.
func jumpPosition(act *components.TimedActionData) mgl64.Vec3 {
	half := act.Duration / 2
	fn := gamemath.Ease(cfg.Actions.JumpEase)

	var lift float64
	if act.Elapsed < half {
		lift = gamemath.Interpolate(fn, 0, 1, act.Elapsed/half)
	} else {
		lift = gamemath.Interpolate(fn, 1, 0, (act.Elapsed-half)/half)
	}

	return act.Start.Add(gamemath.Up.Mul(cfg.Actions.JumpHeight * lift))
}

package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/questcv/internal/audio"
	"github.com/vovakirdan/questcv/internal/core"
	"github.com/vovakirdan/questcv/internal/game/mission"
	"github.com/vovakirdan/questcv/internal/game/player"
	"github.com/vovakirdan/questcv/internal/game/world"
)

// Step advances the simulation by dt seconds of held input. It is the only
// per-tick mutator: movement with collision slide, bounds clamping, nearest
// interaction target, magnet pickups and informational-step arrival all
// happen here, in that order. Respawn timers run on the wall clock and are
// polled even while the simulation is suspended.
func (s *Simulation) Step(in core.InputFrame, dt float64) []Event {
	now := s.now()
	s.World.PollRespawns(now)

	if !s.Mode.Running() {
		s.Player.Moving = false
		return nil
	}

	dir := in.Vector()
	s.Player.Moving = !dir.IsZero()
	if s.Player.Moving {
		delta := dir.Scale(s.Player.Stats.Speed * dt)
		next := s.slide(s.Player.Pos, s.Player.Pos.Add(delta))
		s.Player.Pos = s.clamp(next)
	}

	s.retarget()

	var events []Event
	events = append(events, s.collect()...)
	events = append(events, s.checkArrival()...)
	return events
}

// slide resolves a candidate move against solid objects with an axis-priority
// heuristic: full move, then X only, then Y only, else stay put.
func (s *Simulation) slide(prev, next core.Vec) core.Vec {
	if !s.blocked(next) {
		return next
	}
	xOnly := core.Vec{X: next.X, Y: prev.Y}
	if !s.blocked(xOnly) {
		return xOnly
	}
	yOnly := core.Vec{X: prev.X, Y: next.Y}
	if !s.blocked(yOnly) {
		return yOnly
	}
	return prev
}

func (s *Simulation) blocked(pos core.Vec) bool {
	return s.World.BlocksMovement(player.BoundsAt(pos), s.InteriorID)
}

// clamp keeps the player's box inside the active location's bounds.
func (s *Simulation) clamp(pos core.Vec) core.Vec {
	bounds := s.World.Bounds()
	if s.InteriorID != "" {
		if in, ok := s.World.Interior(s.InteriorID); ok {
			bounds = in.Bounds()
		}
	}
	return core.Vec{
		X: core.ClampF(pos.X, bounds.X, bounds.Right()-player.Width),
		Y: core.ClampF(pos.Y, bounds.Y, bounds.Bottom()-player.Height),
	}
}

// retarget recomputes the nearest interaction target for this tick. Inside an
// interior the exit rectangle competes as a synthetic candidate.
func (s *Simulation) retarget() {
	var extra []*world.Object
	if s.InteriorID != "" {
		if in, ok := s.World.Interior(s.InteriorID); ok {
			extra = append(extra, in.ExitObject())
		}
	}
	target := s.World.NearestInteractable(
		s.Player.Center(), s.Player.Stats.InteractionRange, s.InteriorID, extra...)
	if target == nil {
		s.Player.Target = ""
		return
	}
	s.Player.Target = target.ID
}

// collect picks up every collectible within magnet reach, applies the coin
// doubler (one trial on the pending total), the coin-gain multiplier and the
// per-gem find-chance bonus, then schedules the collected objects for respawn.
func (s *Simulation) collect() []Event {
	center := s.Player.Center()

	var picked []*world.Object
	coins := 0
	gems := make(map[string]int)
	heartXP := 0.0
	for _, o := range s.World.Active(s.InteriorID) {
		if o.Collect == nil {
			continue
		}
		reach := player.Width/2 + o.W/2 + s.Player.Stats.MagnetRange
		if center.Dist(o.Center()) >= reach {
			continue
		}
		picked = append(picked, o)
		switch o.Collect.Kind {
		case world.CollectCoin:
			coins += o.Collect.Value
		case world.CollectGem:
			gems[o.Collect.Color]++
		case world.CollectHeart:
			if s.Player.Stats.HeartToXP {
				heartXP += float64(o.Collect.Value)
			} else {
				coins += o.Collect.Value
			}
		}
	}
	if len(picked) == 0 {
		return nil
	}

	events := []Event{play(audio.SoundPickup)}

	if coins > 0 {
		if s.Player.Stats.CoinDoublerChance > 0 && s.rng.Float64() < s.Player.Stats.CoinDoublerChance {
			coins *= 2
			events = append(events, notify("Coin doubler!"))
		}
		coins = int(math.Round(float64(coins) * s.Player.Stats.CoinGainMult))
		s.Player.Coins += coins
		events = append(events, notify(fmt.Sprintf("+%d coins", coins)))
	}
	for color, n := range gems {
		bonus := 0
		for i := 0; i < n; i++ {
			if s.Player.Stats.GemFindChance > 0 && s.rng.Float64() < s.Player.Stats.GemFindChance {
				bonus++
			}
		}
		s.Player.Gems[color] += n + bonus
		if bonus > 0 {
			events = append(events, notify(fmt.Sprintf("+%d %s gems (bonus find!)", n+bonus, color)))
		} else {
			events = append(events, notify(fmt.Sprintf("+%d %s gems", n, color)))
		}
	}
	if heartXP > 0 {
		for _, lv := range s.Player.GainXP(heartXP * s.Player.Stats.XPMult) {
			events = append(events, Event{Kind: EventLevelUp, Level: lv, Message: fmt.Sprintf("Level %d!", lv)})
		}
	}

	now := s.now()
	for _, o := range picked {
		s.World.RemoveCollectible(o.ID, now)
	}
	return events
}

// checkArrival advances an informational mission step once the player comes
// within interaction range of its target's anchor in the same location.
// Informational steps have no interaction; arriving is the trigger.
func (s *Simulation) checkArrival() []Event {
	m := s.Missions.Active()
	if m == nil {
		return nil
	}
	step := m.CurrentStep()
	if step == nil || step.Kind != mission.StepInfo || step.TargetID == "" {
		return nil
	}
	o, ok := s.World.Lookup(step.TargetID)
	if !ok || o.InteriorID != s.InteriorID {
		return nil
	}
	if s.Player.Center().Dist(o.Anchor()) > s.Player.Stats.InteractionRange {
		return nil
	}
	return s.advanceMission(m.ID)
}

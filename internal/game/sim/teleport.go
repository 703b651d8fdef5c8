package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/questcv/internal/audio"
	"github.com/vovakirdan/questcv/internal/core"
	"github.com/vovakirdan/questcv/internal/game/mission"
	"github.com/vovakirdan/questcv/internal/game/player"
	"github.com/vovakirdan/questcv/internal/game/world"
)

// Teleport resolution failures. All recoverable; position and balance stay
// unchanged on any error.
var (
	ErrTeleporterDisabled = errors.New("sim: teleporter not enabled")
	ErrIndoors            = errors.New("sim: teleport unavailable indoors")
	ErrNoPhysicalTarget   = errors.New("sim: mission step has no physical target")
	ErrTargetNotFound     = errors.New("sim: teleport target not found")
	ErrNoSafeLandingSpot  = errors.New("sim: no safe landing spot")
	ErrAllMissionsDone    = errors.New("sim: all missions completed")
)

// BaseTeleportCost is the coin cost of one teleport before upgrades.
const BaseTeleportCost = 25

// Spiral search parameters for the safe landing spot.
const (
	landingAngleStep  = math.Pi / 12 // 15 degrees
	landingRadiusStep = 20.0
	landingMaxExtra   = 200.0
)

// TeleportCost returns the coin cost with the player's cost multiplier.
func (s *Simulation) TeleportCost() int {
	return int(math.Round(BaseTeleportCost * s.Player.Stats.TeleportCostMult))
}

// MissionTarget resolves the overworld object the mission arrow and fast
// travel aim at: the first step at or after the active mission's current one
// with a physical target. With no available mission the first locked
// mission's target serves as a preview. Indoor targets resolve to the
// building that contains them.
func (s *Simulation) MissionTarget() (*world.Object, error) {
	m := s.Missions.Active()
	if m == nil {
		m = s.Missions.FirstLocked()
	}
	if m == nil {
		return nil, ErrAllMissionsDone
	}
	return s.stepTarget(m)
}

func (s *Simulation) stepTarget(m *mission.Mission) (*world.Object, error) {
	for i := m.Current; i >= 0 && i < len(m.Steps); i++ {
		id := m.Steps[i].PhysicalTargetID()
		if id == "" {
			continue
		}
		o, ok := s.World.Lookup(id)
		if !ok {
			return nil, ErrTargetNotFound
		}
		if o.InteriorID == "" {
			return o, nil
		}
		in, found := s.World.Interior(o.InteriorID)
		if !found {
			return nil, ErrTargetNotFound
		}
		b, found := s.World.Lookup(in.BuildingID)
		if !found {
			return nil, ErrTargetNotFound
		}
		return b, nil
	}
	return nil, ErrNoPhysicalTarget
}

// Teleport fast-travels the player next to the current mission target. The
// cost is debited and the position swapped only once a safe landing spot is
// found; any failure leaves the player exactly where they were.
func (s *Simulation) Teleport() ([]Event, error) {
	if !s.Dev.TeleporterEnabled {
		return nil, ErrTeleporterDisabled
	}
	cost := s.TeleportCost()
	if s.Player.Coins < cost {
		return nil, player.ErrInsufficientFunds
	}
	if s.InteriorID != "" {
		return nil, ErrIndoors
	}
	target, err := s.MissionTarget()
	if err != nil {
		return nil, err
	}
	spot, ok := s.safeLanding(target)
	if !ok {
		return nil, ErrNoSafeLandingSpot
	}

	s.Player.Coins -= cost
	s.Player.Pos = spot
	s.Player.Target = ""
	return []Event{
		{Kind: EventTeleported, Message: fmt.Sprintf("Teleported to %s", target.Name)},
		play(audio.SoundTeleport),
	}, nil
}

// safeLanding spirals outward from the target's center in fixed angle and
// radius steps, returning the first world-clamped spot where the player's box
// collides with nothing solid. The search radius is bounded.
func (s *Simulation) safeLanding(target *world.Object) (core.Vec, bool) {
	center := target.Center()
	start := math.Max(target.W, target.H)/2 + player.Width
	max := start + landingMaxExtra

	for r := start; r <= max; r += landingRadiusStep {
		for a := 0.0; a < 2*math.Pi; a += landingAngleStep {
			spot := s.clampOverworld(core.Vec{
				X: center.X + r*math.Cos(a) - player.Width/2,
				Y: center.Y + r*math.Sin(a) - player.Height/2,
			})
			if !s.World.BlocksMovement(player.BoundsAt(spot), "") {
				return spot, true
			}
		}
	}
	return core.Vec{}, false
}

func (s *Simulation) clampOverworld(pos core.Vec) core.Vec {
	b := s.World.Bounds()
	return core.Vec{
		X: core.ClampF(pos.X, b.X, b.Right()-player.Width),
		Y: core.ClampF(pos.Y, b.Y, b.Bottom()-player.Height),
	}
}

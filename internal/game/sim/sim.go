// Package sim is the game's orchestrator: the fixed-tick state transition
// (movement, collision, targeting, pickups), the contextual interaction
// resolver and fast travel. It owns all mutable game state through one
// explicit context object; there are no package-level variables.
package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/questcv/internal/audio"
	"github.com/vovakirdan/questcv/internal/core"
	"github.com/vovakirdan/questcv/internal/game/mission"
	"github.com/vovakirdan/questcv/internal/game/player"
	"github.com/vovakirdan/questcv/internal/game/world"
)

// DevOptions are hidden developer switches persisted with the save.
type DevOptions struct {
	DevOptionsUnlocked bool `json:"devOptionsUnlocked"`
	TeleporterEnabled  bool `json:"teleporterEnabled"`
}

// Config carries the simulation's runtime knobs.
type Config struct {
	Seed int64
	// Now overrides the wall clock. Nil means time.Now. Respawn timing is
	// wall-clock based, so tests inject a fake clock here.
	Now func() time.Time
}

// openDialogue tracks the modal dialogue the simulation itself opened.
type openDialogue struct {
	npcID string
	guide bool
}

// Simulation is the explicit game-state container. Exactly one goroutine may
// drive it; the platform layer serializes ticks and discrete actions.
type Simulation struct {
	World    *world.World
	Missions *mission.Machine
	Catalog  *player.Catalog
	Player   *player.State

	// InteriorID is the active location; empty means the overworld.
	InteriorID string
	Mode       Mode
	Dev        DevOptions

	dialogue      *openDialogue
	puzzleMission int

	rng *rand.Rand
	now func() time.Time
}

// New assembles a simulation with a fresh player at the world's center.
func New(w *world.World, missions *mission.Machine, catalog *player.Catalog, cfg Config) *Simulation {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	spawn := core.Vec{
		X: w.Width/2 - player.Width/2,
		Y: w.Height/2 - player.Height/2,
	}
	return &Simulation{
		World:    w,
		Missions: missions,
		Catalog:  catalog,
		Player:   player.NewState(spawn),
		Mode:     ModeRunning,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		now:      now,
	}
}

// Suspend halts the tick for a platform-owned modal.
func (s *Simulation) Suspend() {
	if s.Mode == ModeRunning {
		s.Mode = ModeSuspendedByModal
	}
}

// Resume restarts the tick after a platform-owned modal closes. A pending
// simulation-owned modal (dialogue, puzzle) keeps the simulation suspended.
func (s *Simulation) Resume() {
	if s.Mode == ModeSuspendedByModal && s.dialogue == nil && s.puzzleMission == 0 {
		s.Mode = ModeRunning
	}
}

// DialogueOpen reports whether a simulation-owned dialogue modal is open.
func (s *Simulation) DialogueOpen() bool {
	return s.dialogue != nil
}

// Purchase buys a shop upgrade and reports the resulting events. The error is
// one of the player package's precondition sentinels.
func (s *Simulation) Purchase(itemID string) ([]Event, error) {
	item, ok := s.Catalog.Item(itemID)
	if !ok {
		return nil, player.ErrUnknownItem
	}
	if err := s.Player.Purchase(s.Catalog, itemID); err != nil {
		return nil, err
	}
	return []Event{
		notify("Purchased " + item.Name),
		play(audio.SoundUnlock),
		{Kind: EventAutosave},
	}, nil
}

// UnlockSkill unlocks a skill-tree node and reports the resulting events.
func (s *Simulation) UnlockSkill(skillID string) ([]Event, error) {
	skill, ok := s.Catalog.Skill(skillID)
	if !ok {
		return nil, player.ErrUnknownSkill
	}
	if err := s.Player.UnlockSkill(s.Catalog, skillID); err != nil {
		return nil, err
	}
	return []Event{
		notify("Unlocked " + skill.Name),
		play(audio.SoundUnlock),
		{Kind: EventAutosave},
	}, nil
}

// SellGem sells one gem of the given color at the vendor.
func (s *Simulation) SellGem(color string) (int, []Event, error) {
	payout, err := s.Player.SellGem(color)
	if err != nil {
		return 0, nil, err
	}
	events := []Event{
		notify(fmt.Sprintf("Sold a gem for %d coins", payout)),
		play(audio.SoundUIClick),
		{Kind: EventAutosave},
	}
	return payout, events, nil
}

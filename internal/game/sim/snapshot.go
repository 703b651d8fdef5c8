package sim

import (
	"github.com/vovakirdan/questcv/internal/core"
	"github.com/vovakirdan/questcv/internal/game/mission"
	"github.com/vovakirdan/questcv/internal/game/player"
	"github.com/vovakirdan/questcv/internal/storage"
)

// Snapshot captures the persistent subset of the simulation. Position, the
// interaction target and the moving flag are transient and excluded.
func (s *Simulation) Snapshot() storage.SaveState {
	p := s.Player
	save := storage.SaveState{
		Version: storage.SaveVersion,
		Player: storage.PlayerSave{
			Level:     p.Level,
			XP:        p.XP,
			Coins:     p.Coins,
			Gems:      copyGems(p.Gems),
			Inventory: append([]player.Item(nil), p.Inventory...),
			Upgrades:  append([]string(nil), p.Upgrades...),
			Skills:    append([]string(nil), p.Skills...),
		},
		Dev: storage.DevSave{
			DevOptionsUnlocked: s.Dev.DevOptionsUnlocked,
			TeleporterEnabled:  s.Dev.TeleporterEnabled,
		},
	}
	for _, m := range s.Missions.All() {
		save.Missions = append(save.Missions, storage.MissionSave{
			ID:     m.ID,
			Step:   m.Current,
			Status: string(m.Status),
		})
	}
	return save
}

// Restore applies a snapshot onto freshly loaded content. World state resets:
// every collectible comes back, pending respawns are invalidated, the player
// reappears at the overworld spawn with no target. Missions unknown to the
// current content are skipped, so a save outlives content reshuffles.
func (s *Simulation) Restore(save storage.SaveState) {
	p := s.Player
	p.Level = save.Player.Level
	if p.Level < 1 {
		p.Level = 1
	}
	p.XP = save.Player.XP
	p.Coins = save.Player.Coins
	p.Gems = copyGems(save.Player.Gems)
	if p.Gems == nil {
		p.Gems = make(map[string]int)
	}
	p.Inventory = append([]player.Item(nil), save.Player.Inventory...)
	p.Upgrades = append([]string(nil), save.Player.Upgrades...)
	p.Skills = append([]string(nil), save.Player.Skills...)
	p.Stats = s.Catalog.Recompute(p.Upgrades, p.Skills)

	for _, ms := range save.Missions {
		m, ok := s.Missions.Get(ms.ID)
		if !ok {
			continue
		}
		m.Current = ms.Step
		m.Status = mission.Status(ms.Status)
	}

	s.Dev = DevOptions{
		DevOptionsUnlocked: save.Dev.DevOptionsUnlocked,
		TeleporterEnabled:  save.Dev.TeleporterEnabled,
	}

	s.World.Reset()
	s.InteriorID = ""
	s.dialogue = nil
	s.puzzleMission = 0
	s.Mode = ModeRunning
	p.Pos = core.Vec{
		X: s.World.Width/2 - player.Width/2,
		Y: s.World.Height/2 - player.Height/2,
	}
	p.Moving = false
	p.Target = ""
}

func copyGems(src map[string]int) map[string]int {
	if src == nil {
		return nil
	}
	dst := make(map[string]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

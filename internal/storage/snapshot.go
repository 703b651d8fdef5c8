package storage

import "github.com/vovakirdan/questcv/internal/game/player"

// SaveVersion tags the snapshot schema. Bump on incompatible changes.
const SaveVersion = 1

// PlayerSave is the persistent subset of the player state. Position, the
// interaction target and the moving flag are transient and deliberately
// absent: a loaded player reappears at the spawn point.
type PlayerSave struct {
	Level     int            `json:"level"`
	XP        float64        `json:"xp"`
	Coins     int            `json:"coins"`
	Gems      map[string]int `json:"gems,omitempty"`
	Inventory []player.Item  `json:"inventory,omitempty"`
	Upgrades  []string       `json:"upgrades,omitempty"`
	Skills    []string       `json:"skills,omitempty"`
}

// MissionSave is one mission's persistent progress.
type MissionSave struct {
	ID     int    `json:"id"`
	Step   int    `json:"step"`
	Status string `json:"status"`
}

// DevSave mirrors the hidden developer switches.
type DevSave struct {
	DevOptionsUnlocked bool `json:"devOptionsUnlocked"`
	TeleporterEnabled  bool `json:"teleporterEnabled"`
}

// SaveState is the full snapshot persisted per player name.
type SaveState struct {
	Version  int           `json:"version"`
	Player   PlayerSave    `json:"player"`
	Missions []MissionSave `json:"missions"`
	Dev      DevSave       `json:"dev"`
}

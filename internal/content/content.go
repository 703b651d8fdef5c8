// Package content provides YAML-based game content loading: the world map,
// interiors, missions, shop catalog, skill tree and collectible scattering
// parameters, with an embedded default set.
package content

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/questcv/internal/game/mission"
	"github.com/vovakirdan/questcv/internal/game/player"
	"github.com/vovakirdan/questcv/internal/game/world"
)

// WorldContent is the static map definition.
type WorldContent struct {
	Width     float64           `yaml:"width"`
	Height    float64           `yaml:"height"`
	Objects   []*world.Object   `yaml:"objects"`
	Interiors []*world.Interior `yaml:"interiors"`
}

// ScatterConfig controls procedural collectible placement.
type ScatterConfig struct {
	WorldCoins        int      `yaml:"world_coins"`
	WorldCoinValue    int      `yaml:"world_coin_value"`
	WorldGems         int      `yaml:"world_gems"`
	InteriorCoins     int      `yaml:"interior_coins"`
	InteriorCoinValue int      `yaml:"interior_coin_value"`
	InteriorGems      int      `yaml:"interior_gems"`
	Margin            float64  `yaml:"margin"`
	MaxAttempts       int      `yaml:"max_attempts"`
	GemColors         []string `yaml:"gem_colors"`
}

// Content is everything the game loads at startup.
type Content struct {
	World    WorldContent       `yaml:"world"`
	Missions []*mission.Mission `yaml:"missions"`
	Shop     []player.ShopItem  `yaml:"shop"`
	Skills   []player.Skill     `yaml:"skills"`
	Scatter  ScatterConfig      `yaml:"scatter"`
}

// Validate checks cross-references between content sections. Content is
// trusted, but a typo in an id would otherwise surface as a silent no-op deep
// in the simulation.
func (c *Content) Validate() error {
	ids := make(map[string]bool, len(c.World.Objects))
	for _, o := range c.World.Objects {
		if o.ID == "" {
			return fmt.Errorf("content: object without id at (%v, %v)", o.X, o.Y)
		}
		if ids[o.ID] {
			return fmt.Errorf("content: duplicate object id %q", o.ID)
		}
		ids[o.ID] = true
	}

	interiors := make(map[string]bool, len(c.World.Interiors))
	for _, in := range c.World.Interiors {
		if !ids[in.BuildingID] {
			return fmt.Errorf("content: interior %q references unknown building %q", in.ID, in.BuildingID)
		}
		interiors[in.ID] = true
	}
	for _, o := range c.World.Objects {
		if o.InteriorID != "" && !interiors[o.InteriorID] {
			return fmt.Errorf("content: object %q references unknown interior %q", o.ID, o.InteriorID)
		}
	}

	for _, m := range c.Missions {
		for i, st := range m.Steps {
			if id := st.PhysicalTargetID(); id != "" && !ids[id] {
				return fmt.Errorf("content: mission %d step %d targets unknown object %q", m.ID, i, id)
			}
		}
	}

	skills := make(map[string]bool, len(c.Skills))
	for _, sk := range c.Skills {
		skills[sk.ID] = true
	}
	for _, sk := range c.Skills {
		if sk.RequiresSkill != "" && !skills[sk.RequiresSkill] {
			return fmt.Errorf("content: skill %q requires unknown skill %q", sk.ID, sk.RequiresSkill)
		}
	}
	return nil
}

// Catalog builds the progression catalog from the shop and skill sections.
func (c *Content) Catalog() *player.Catalog {
	return player.NewCatalog(c.Shop, c.Skills)
}

// Machine builds the mission state machine.
func (c *Content) Machine() *mission.Machine {
	return mission.NewMachine(c.Missions)
}

// BuildWorld assembles the world: the static objects plus collectibles
// scattered from the given seed.
func (c *Content) BuildWorld(seed int64) *world.World {
	rng := rand.New(rand.NewSource(seed))
	objects := append([]*world.Object(nil), c.World.Objects...)
	objects = append(objects, c.scatter(rng)...)
	return world.New(c.World.Width, c.World.Height, objects, c.World.Interiors)
}

package content

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/questcv/internal/core"
	"github.com/vovakirdan/questcv/internal/game/world"
)

// Collectible footprints. Small enough to tuck between obstacles, large
// enough to be walked over.
const (
	coinSize = 15.0
	gemSize  = 18.0
)

// scatter places the configured number of coins and gems across the
// overworld and every interior. Each placement is rejected if the candidate,
// padded by the margin, overlaps a static object or an already-placed
// collectible; after max_attempts the collectible is dropped rather than
// forced.
func (c *Content) scatter(rng *rand.Rand) []*world.Object {
	cfg := c.Scatter
	var placed []*world.Object

	area := core.Rect{W: c.World.Width, H: c.World.Height}
	for i := 0; i < cfg.WorldCoins; i++ {
		if o := c.place(rng, &placed, area, "", coin(fmt.Sprintf("coin_w%d", i), cfg.WorldCoinValue)); o != nil {
			placed = append(placed, o)
		}
	}
	for i := 0; i < cfg.WorldGems; i++ {
		if o := c.place(rng, &placed, area, "", gem(fmt.Sprintf("gem_w%d", i), c.gemColor(rng))); o != nil {
			placed = append(placed, o)
		}
	}

	for _, in := range c.World.Interiors {
		for i := 0; i < cfg.InteriorCoins; i++ {
			id := fmt.Sprintf("coin_%s_%d", in.ID, i)
			if o := c.place(rng, &placed, in.Bounds(), in.ID, coin(id, cfg.InteriorCoinValue)); o != nil {
				placed = append(placed, o)
			}
		}
		for i := 0; i < cfg.InteriorGems; i++ {
			id := fmt.Sprintf("gem_%s_%d", in.ID, i)
			if o := c.place(rng, &placed, in.Bounds(), in.ID, gem(id, c.gemColor(rng))); o != nil {
				placed = append(placed, o)
			}
		}
	}
	return placed
}

func coin(id string, value int) *world.Object {
	return &world.Object{
		ID: id, Name: "Coin", W: coinSize, H: coinSize,
		Kind:    world.KindObject,
		Color:   "#f1c40f",
		Collect: &world.Collectible{Kind: world.CollectCoin, Value: value},
	}
}

func gem(id, color string) *world.Object {
	return &world.Object{
		ID: id, Name: "Gem", W: gemSize, H: gemSize,
		Kind:    world.KindObject,
		Color:   color,
		Collect: &world.Collectible{Kind: world.CollectGem, Color: color},
	}
}

func (c *Content) gemColor(rng *rand.Rand) string {
	colors := c.Scatter.GemColors
	if len(colors) == 0 {
		return "#00aaff"
	}
	return colors[rng.Intn(len(colors))]
}

// place rolls random positions for the prototype inside area until one clears
// every collision check, then returns the positioned object. Returns nil when
// the attempt budget runs out.
func (c *Content) place(rng *rand.Rand, placed *[]*world.Object, area core.Rect, interiorID string, proto *world.Object) *world.Object {
	margin := c.Scatter.Margin
	attempts := c.Scatter.MaxAttempts
	if attempts <= 0 {
		attempts = 100
	}

	usableW := area.W - 2*margin - proto.W
	usableH := area.H - 2*margin - proto.H
	if usableW <= 0 || usableH <= 0 {
		return nil
	}

	for try := 0; try < attempts; try++ {
		x := area.X + margin + rng.Float64()*usableW
		y := area.Y + margin + rng.Float64()*usableH
		padded := core.Rect{X: x - margin, Y: y - margin, W: proto.W + 2*margin, H: proto.H + 2*margin}

		if c.collides(padded, interiorID, *placed) {
			continue
		}
		o := *proto
		o.X, o.Y = x, y
		o.InteriorID = interiorID
		return &o
	}
	return nil
}

func (c *Content) collides(box core.Rect, interiorID string, placed []*world.Object) bool {
	for _, o := range c.World.Objects {
		if o.InteriorID == interiorID && box.Intersects(o.Bounds()) {
			return true
		}
	}
	for _, o := range placed {
		if o.InteriorID == interiorID && box.Intersects(o.Bounds()) {
			return true
		}
	}
	return false
}

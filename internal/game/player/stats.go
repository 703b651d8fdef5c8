package player

import "math"

// Base values the derived stats fold starts from.
const (
	BaseSpeed            = 180.0 // world units per second
	BaseInteractionRange = 50.0
	Width                = 35.0
	Height               = 35.0
	InitialCoins         = 50
	InitialXPToLevelUp   = 100.0
	GemSellValue         = 50
)

// Derived is the set of stats computed from base values folded through every
// owned upgrade and then every unlocked skill. Never mutated incrementally:
// any ownership change recomputes the whole struct, which keeps multiplier
// order reproducible.
type Derived struct {
	Speed             float64
	InteractionRange  float64
	XPMult            float64
	MagnetRange       float64
	CoinDoublerChance float64
	TeleportCostMult  float64
	ShopDiscount      float64
	GemSellBonus      float64
	CoinGainMult      float64
	GemFindChance     float64
	HeartToXP         bool
}

// BaseStats returns the fold's starting point.
func BaseStats() Derived {
	return Derived{
		Speed:            BaseSpeed,
		InteractionRange: BaseInteractionRange,
		XPMult:           1,
		TeleportCostMult: 1,
		CoinGainMult:     1,
	}
}

// Recompute folds base stats through owned upgrades (in purchase order) and
// then unlocked skills (in unlock order). Unknown ids are skipped: content is
// static and trusted, so a dangling id is a no-op rather than an error.
func (c *Catalog) Recompute(upgrades, skills []string) Derived {
	d := BaseStats()

	for _, id := range upgrades {
		it, ok := c.Item(id)
		if !ok {
			continue
		}
		switch it.Effect {
		case EffectSpeedBoost:
			d.Speed *= it.Value
		case EffectInteractionRange:
			d.InteractionRange *= it.Value
		case EffectXPBoost:
			d.XPMult *= it.Value
		case EffectMagnetRange:
			d.MagnetRange += it.Value
		case EffectCoinDoubler:
			d.CoinDoublerChance = math.Max(d.CoinDoublerChance, it.Value)
		case EffectTeleportCostMult:
			d.TeleportCostMult = it.Value
		case EffectHeartToXP:
			d.HeartToXP = true
		}
	}

	for _, id := range skills {
		s, ok := c.Skill(id)
		if !ok {
			continue
		}
		switch s.Effect {
		case SkillSpeedPercent:
			d.Speed *= 1 + s.Value
		case SkillCoinGainPercent:
			d.CoinGainMult *= 1 + s.Value
		case SkillGemFindChance:
			d.GemFindChance = math.Max(d.GemFindChance, s.Value)
		case SkillXPGainPercent:
			d.XPMult *= 1 + s.Value
		case SkillShopDiscountPercent:
			d.ShopDiscount += s.Value
		case SkillGemSellPercent:
			d.GemSellBonus += s.Value
		case SkillTeleportReduction:
			d.TeleportCostMult *= 1 - s.Value
		}
	}

	return d
}

package player

import "math"

// DiscountedCost returns an item's cost after the player's shop discount.
func (s *State) DiscountedCost(item *ShopItem) int {
	return int(math.Round(float64(item.Cost) * (1 - s.Stats.ShopDiscount)))
}

// Purchase buys a permanent upgrade. On success the cost is debited, the
// upgrade recorded, and all derived stats recomputed from scratch.
func (s *State) Purchase(cat *Catalog, itemID string) error {
	item, ok := cat.Item(itemID)
	if !ok {
		return ErrUnknownItem
	}
	if s.OwnsUpgrade(itemID) {
		return ErrAlreadyOwned
	}
	cost := s.DiscountedCost(item)
	if s.Coins < cost {
		return ErrInsufficientFunds
	}

	s.Coins -= cost
	s.Upgrades = append(s.Upgrades, itemID)
	s.Stats = cat.Recompute(s.Upgrades, s.Skills)
	return nil
}

// SellGem sells one gem of the given color for the base sell value scaled by
// the gem-sell bonus. Empty color buckets are dropped from the ledger.
// Returns the coins credited.
func (s *State) SellGem(color string) (int, error) {
	if s.Gems[color] <= 0 {
		return 0, ErrNoGems
	}
	s.Gems[color]--
	if s.Gems[color] == 0 {
		delete(s.Gems, color)
	}
	payout := int(math.Round(GemSellValue * (1 + s.Stats.GemSellBonus)))
	s.Coins += payout
	return payout, nil
}

// UnlockSkill unlocks a skill-tree node. Preconditions are checked in a fixed
// order: already unlocked, predecessor missing, level too low, unaffordable.
// On success the cost is debited (coins, then each gem color) and derived
// stats are recomputed from scratch.
func (s *State) UnlockSkill(cat *Catalog, skillID string) error {
	skill, ok := cat.Skill(skillID)
	if !ok {
		return ErrUnknownSkill
	}
	if s.HasSkill(skillID) {
		return ErrSkillAlreadyUnlocked
	}
	if skill.RequiresSkill != "" && !s.HasSkill(skill.RequiresSkill) {
		return ErrPredecessorMissing
	}
	if s.Level < skill.RequiredLevel {
		return ErrLevelTooLow
	}
	if s.Coins < skill.Cost.Coins {
		return ErrInsufficientResources
	}
	for color, n := range skill.Cost.Gems {
		if s.Gems[color] < n {
			return ErrInsufficientResources
		}
	}

	s.Coins -= skill.Cost.Coins
	for color, n := range skill.Cost.Gems {
		s.Gems[color] -= n
		if s.Gems[color] == 0 {
			delete(s.Gems, color)
		}
	}
	s.Skills = append(s.Skills, skillID)
	s.Stats = cat.Recompute(s.Upgrades, s.Skills)
	return nil
}

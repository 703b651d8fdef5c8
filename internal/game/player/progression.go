package player

import "math"

// XPToLevelUp returns the experience threshold to leave the given level.
func XPToLevelUp(level int) float64 {
	return InitialXPToLevelUp * math.Pow(1.5, float64(level-1))
}

// GainXP adds experience (already scaled by the xp multiplier) and resolves
// level-ups. The loop handles a single award crossing several thresholds.
// Returns each level reached, one entry per level-up, for the caller to
// surface as notifications.
func (s *State) GainXP(amount float64) []int {
	s.XP += amount
	var reached []int
	threshold := XPToLevelUp(s.Level)
	for s.XP >= threshold {
		s.Level++
		s.XP -= threshold
		threshold = XPToLevelUp(s.Level)
		reached = append(reached, s.Level)
	}
	return reached
}

// ApplyMissionReward credits a completed mission's rewards: coins scaled by
// the coin-gain multiplier, gems of the mission's color, and xp scaled by the
// xp multiplier. Returns the levels reached during level-up resolution.
func (s *State) ApplyMissionReward(coins, xp int, gemColor string, gems int) []int {
	s.Coins += int(math.Round(float64(coins) * s.Stats.CoinGainMult))
	if gems > 0 && gemColor != "" {
		s.Gems[gemColor] += gems
	}
	return s.GainXP(float64(xp) * s.Stats.XPMult)
}

package mission

import "github.com/vovakirdan/questcv/internal/game/player"

// Machine owns the mission list and is the only mutator of mission state.
type Machine struct {
	missions []*Mission
	index    map[int]*Mission
}

// NewMachine wraps the content's mission list. Declaration order is
// significant: it drives the Active scan and the unlock cascade.
func NewMachine(missions []*Mission) *Machine {
	mc := &Machine{
		missions: missions,
		index:    make(map[int]*Mission, len(missions)),
	}
	for _, m := range missions {
		mc.index[m.ID] = m
	}
	return mc
}

// All returns the missions in declaration order.
func (mc *Machine) All() []*Mission {
	return mc.missions
}

// Get returns a mission by id.
func (mc *Machine) Get(id int) (*Mission, bool) {
	m, ok := mc.index[id]
	return m, ok
}

// Active returns the first available mission, or nil.
func (mc *Machine) Active() *Mission {
	for _, m := range mc.missions {
		if m.Status == StatusAvailable {
			return m
		}
	}
	return nil
}

// FirstLocked returns the earliest-declared locked mission, or nil.
func (mc *Machine) FirstLocked() *Mission {
	for _, m := range mc.missions {
		if m.Status == StatusLocked {
			return m
		}
	}
	return nil
}

// AdvanceResult describes what a step advance did.
type AdvanceResult struct {
	Mission      *Mission
	Completed    bool
	Unlocked     *Mission // mission promoted locked -> available, if any
	NewStep      *Step    // next objective when the mission continues
	LevelsGained []int    // levels reached by the reward's xp
}

// Advance moves the mission past its current step. Advancing the last step
// completes the mission, applies its reward to the player and promotes the
// first locked mission to available (at most one per completion). Advancing
// a mission that is not available is a defensive no-op: mission content is
// static and trusted, so a stray call must not corrupt state.
func (mc *Machine) Advance(id int, p *player.State) *AdvanceResult {
	m, ok := mc.index[id]
	if !ok || m.Status != StatusAvailable {
		return nil
	}

	if m.Current >= len(m.Steps)-1 {
		m.Status = StatusCompleted
		m.Current++
		res := &AdvanceResult{Mission: m, Completed: true}
		res.LevelsGained = p.ApplyMissionReward(m.CoinReward, m.XPReward, m.GemColor, m.GemReward)
		if next := mc.FirstLocked(); next != nil {
			next.Status = StatusAvailable
			res.Unlocked = next
		}
		return res
	}

	m.Current++
	return &AdvanceResult{Mission: m, NewStep: m.CurrentStep()}
}

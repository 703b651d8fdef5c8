// Package mission implements the mission chain: per-mission step progression,
// completion, reward application and the unlock cascade.
package mission

// Status is a mission's lifecycle state. Transitions are monotonic:
// locked -> available -> completed, never backwards.
type Status string

const (
	StatusLocked    Status = "locked"
	StatusAvailable Status = "available"
	StatusCompleted Status = "completed"
)

// StepKind distinguishes how a step is satisfied.
type StepKind string

const (
	StepInteract StepKind = "interact"
	StepPickUp   StepKind = "pickup"
	StepDeliver  StepKind = "deliver"
	StepInfo     StepKind = "info"
)

// Step is one atomic objective within a mission's ordered sequence.
type Step struct {
	Description  string   `yaml:"description"`
	Kind         StepKind `yaml:"kind"`
	TargetID     string   `yaml:"target,omitempty"`        // object to interact with / pick up / arrive at
	ItemID       string   `yaml:"item,omitempty"`          // inventory item a pickup step produces
	RequiredItem string   `yaml:"required_item,omitempty"` // item consumed on success
	Zone         string   `yaml:"zone,omitempty"`          // delivery destination: object or NPC id
	Puzzle       bool     `yaml:"puzzle,omitempty"`        // step completes via the deploy puzzle, not the interaction itself
}

// Mission is one entry of the mission chain. Created once from static
// content; mutated only by the Machine.
type Mission struct {
	ID            int    `yaml:"id"`
	Title         string `yaml:"title"`
	Description   string `yaml:"description"`
	GemReward     int    `yaml:"gem_reward"`
	GemColor      string `yaml:"gem_color"`
	CoinReward    int    `yaml:"coin_reward"`
	XPReward      int    `yaml:"xp_reward"`
	Reference     string `yaml:"reference,omitempty"`
	Status        Status `yaml:"status"`
	Steps         []Step `yaml:"steps"`
	TeachingNotes string `yaml:"notes,omitempty"`
	Current       int    `yaml:"-"` // index of the active step
}

// CurrentStep returns the step at the current index, or nil once the mission
// is past its last step.
func (m *Mission) CurrentStep() *Step {
	if m.Current < 0 || m.Current >= len(m.Steps) {
		return nil
	}
	return &m.Steps[m.Current]
}

// PhysicalTargetID returns the object id a step points at in the world:
// the delivery zone for deliver steps, the target otherwise. Empty when the
// step has no physical presence.
func (s *Step) PhysicalTargetID() string {
	if s.Kind == StepDeliver {
		return s.Zone
	}
	return s.TargetID
}

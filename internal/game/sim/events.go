package sim

import "github.com/vovakirdan/questcv/internal/audio"

// EventKind discriminates simulation events.
type EventKind int

const (
	// EventNotify carries a transient user-facing message.
	EventNotify EventKind = iota
	// EventSound asks the platform to play a sound effect.
	EventSound
	// EventLevelUp reports one level reached. A reward crossing several
	// thresholds emits one event per level.
	EventLevelUp
	// EventOpenDialogue asks the platform to open an NPC dialogue modal.
	EventOpenDialogue
	// EventOpenChat asks the platform to open the guide's chat modal.
	EventOpenChat
	// EventOpenShop asks the platform to open the vendor's shop modal.
	EventOpenShop
	// EventOpenStudio asks the platform to open the image studio modal.
	EventOpenStudio
	// EventOpenPuzzle asks the platform to open the deploy puzzle modal.
	EventOpenPuzzle
	// EventTeleported reports a committed fast-travel position swap.
	EventTeleported
	// EventMissionCompleted reports a mission transitioning to completed.
	EventMissionCompleted
	// EventMissionUnlocked reports a mission transitioning to available.
	EventMissionUnlocked
	// EventEnteredInterior and EventExitedInterior report location swaps.
	EventEnteredInterior
	EventExitedInterior
	// EventAutosave asks the platform to persist the current snapshot.
	EventAutosave
)

// Event is one observable outcome of a tick or a discrete action. The
// simulation emits events instead of calling into presentation, audio or
// storage directly.
type Event struct {
	Kind       EventKind
	Message    string
	Sound      audio.Sound
	Level      int
	MissionID  int
	NPCID      string
	NPCName    string
	InteriorID string
}

func notify(msg string) Event {
	return Event{Kind: EventNotify, Message: msg}
}

func play(s audio.Sound) Event {
	return Event{Kind: EventSound, Sound: s}
}

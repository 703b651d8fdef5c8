// Package audio defines the sound event vocabulary the simulation emits and
// the sink interface a platform implements to play them. The simulation never
// blocks on audio; events are fire-and-forget hints.
package audio

// Sound identifies one playable sound effect.
type Sound string

const (
	SoundPickup         Sound = "pickup"
	SoundDoor           Sound = "door"
	SoundDialogueStart  Sound = "dialogue_start"
	SoundMissionAdvance Sound = "mission_advance"
	SoundTeleport       Sound = "teleport"
	SoundUnlock         Sound = "unlock"
	SoundError          Sound = "error"
	SoundUIClick        Sound = "ui_click"
)

// Sink plays sound events.
type Sink interface {
	Play(Sound)
}

// Nop is a Sink that discards every sound. Used by headless sessions and tests.
type Nop struct{}

func (Nop) Play(Sound) {}

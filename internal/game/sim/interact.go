package sim

import (
	"fmt"

	"github.com/vovakirdan/questcv/internal/audio"
	"github.com/vovakirdan/questcv/internal/core"
	"github.com/vovakirdan/questcv/internal/game/mission"
	"github.com/vovakirdan/questcv/internal/game/player"
	"github.com/vovakirdan/questcv/internal/game/world"
)

// Interact resolves the player's discrete interact action. Exactly one branch
// executes per call, in fixed precedence: dismiss an open dialogue, exit the
// interior, enter a building, role NPCs (guide, visionary, vendor), and
// finally mission step evaluation against the current target.
func (s *Simulation) Interact() []Event {
	if s.dialogue != nil {
		return s.CloseDialogue()
	}
	if !s.Mode.Running() {
		return nil
	}

	targetID := s.Player.Target
	if targetID == "" {
		return nil
	}

	if s.InteriorID != "" && targetID == world.ExitID {
		return s.exitInterior()
	}

	o, ok := s.World.Live(targetID)
	if !ok {
		return nil
	}

	if o.Kind == world.KindBuilding {
		if _, hasDoor := o.DoorBounds(); hasDoor {
			if _, mapped := s.World.InteriorForBuilding(o.ID); mapped {
				return s.enterInterior(o)
			}
		}
	}

	switch o.Role {
	case world.RoleGuide:
		return s.openGuideChat(o)
	case world.RoleVisionary:
		s.Mode = ModeSuspendedByModal
		return []Event{
			{Kind: EventOpenStudio, NPCID: o.ID, NPCName: o.Name},
			play(audio.SoundDialogueStart),
		}
	case world.RoleVendor:
		s.Mode = ModeSuspendedByModal
		return []Event{
			{Kind: EventOpenShop, NPCID: o.ID, NPCName: o.Name},
			play(audio.SoundUIClick),
		}
	}

	return s.evaluateStep(o)
}

// openGuideChat opens the guide's chat modal. Closing the chat counts as
// having talked to the guide for mission purposes.
func (s *Simulation) openGuideChat(o *world.Object) []Event {
	s.dialogue = &openDialogue{npcID: o.ID, guide: true}
	s.Mode = ModeSuspendedByModal
	return []Event{
		{Kind: EventOpenChat, NPCID: o.ID, NPCName: o.Name},
		play(audio.SoundDialogueStart),
	}
}

// openNPCDialogue opens a plain dialogue modal for an NPC. The platform
// fetches the text through the dialogue package.
func (s *Simulation) openNPCDialogue(o *world.Object) []Event {
	s.dialogue = &openDialogue{npcID: o.ID}
	s.Mode = ModeSuspendedByModal
	return []Event{
		{Kind: EventOpenDialogue, NPCID: o.ID, NPCName: o.Name},
		play(audio.SoundDialogueStart),
	}
}

// CloseDialogue dismisses the open dialogue modal. Idempotent. Closing the
// guide's chat advances an interact step that targets the guide, so the
// advance commits synchronously in the closing handler.
func (s *Simulation) CloseDialogue() []Event {
	d := s.dialogue
	if d == nil {
		return nil
	}
	s.dialogue = nil
	s.Mode = ModeRunning

	events := []Event{play(audio.SoundUIClick)}
	if d.guide {
		if m := s.Missions.Active(); m != nil {
			if step := m.CurrentStep(); step != nil &&
				step.Kind == mission.StepInteract && step.TargetID == d.npcID &&
				!step.Puzzle && step.RequiredItem == "" {
				events = append(events, s.advanceMission(m.ID)...)
			}
		}
	}
	return events
}

// CompletePuzzle reports the deploy puzzle solved, advancing the step that
// opened it.
func (s *Simulation) CompletePuzzle() []Event {
	if s.puzzleMission == 0 {
		return nil
	}
	id := s.puzzleMission
	s.puzzleMission = 0
	s.Mode = ModeRunning
	return s.advanceMission(id)
}

// CancelPuzzle closes the deploy puzzle without advancing anything. Safe at
// any point; mission state stays exactly where it was.
func (s *Simulation) CancelPuzzle() {
	s.puzzleMission = 0
	s.Mode = ModeRunning
}

// evaluateStep is the mission-step branch of Interact: the active mission's
// current step decides what the target means. Failed preconditions surface a
// message and leave all state unchanged.
func (s *Simulation) evaluateStep(o *world.Object) []Event {
	m := s.Missions.Active()
	if m == nil {
		if o.Kind == world.KindNPC {
			return s.openNPCDialogue(o)
		}
		return nil
	}
	step := m.CurrentStep()
	if step == nil {
		return nil
	}

	switch step.Kind {
	case mission.StepInteract:
		if step.TargetID != o.ID {
			if o.Kind == world.KindNPC {
				return s.openNPCDialogue(o)
			}
			return nil
		}
		if step.Puzzle {
			s.puzzleMission = m.ID
			s.Mode = ModeSuspendedByModal
			return []Event{
				{Kind: EventOpenPuzzle, MissionID: m.ID},
				play(audio.SoundUIClick),
			}
		}
		if step.RequiredItem != "" {
			if !s.Player.HasItem(step.RequiredItem) {
				return []Event{
					notify(fmt.Sprintf("You still need the %s.", step.RequiredItem)),
					play(audio.SoundError),
				}
			}
			s.Player.RemoveItem(step.RequiredItem, 1)
		}
		var events []Event
		if o.Kind == world.KindNPC {
			events = append(events, s.openNPCDialogue(o)...)
		}
		return append(events, s.advanceMission(m.ID)...)

	case mission.StepPickUp:
		if step.TargetID != o.ID {
			if o.Kind == world.KindNPC {
				return s.openNPCDialogue(o)
			}
			return nil
		}
		s.Player.AddItem(step.ItemID, o.Name, 1)
		s.World.RemoveForever(o.ID)
		s.Player.Target = ""
		events := []Event{
			notify(fmt.Sprintf("Picked up %s", o.Name)),
			play(audio.SoundPickup),
		}
		return append(events, s.advanceMission(m.ID)...)

	case mission.StepDeliver:
		if !s.inDeliveryZone(step, o) {
			if o.Kind == world.KindNPC {
				return s.openNPCDialogue(o)
			}
			return []Event{
				notify("This isn't the right place for that."),
				play(audio.SoundError),
			}
		}
		if step.RequiredItem != "" && !s.Player.HasItem(step.RequiredItem) {
			return []Event{
				notify(fmt.Sprintf("You don't have the %s yet.", step.RequiredItem)),
				play(audio.SoundError),
			}
		}
		if step.RequiredItem != "" {
			s.Player.RemoveItem(step.RequiredItem, 1)
		}
		return s.advanceMission(m.ID)

	default: // informational steps advance on arrival, not interaction
		if o.Kind == world.KindNPC {
			return s.openNPCDialogue(o)
		}
		return nil
	}
}

// inDeliveryZone reports whether a deliver step's zone condition holds: the
// interaction target is the zone object itself, or the player's box overlaps
// the zone object's box.
func (s *Simulation) inDeliveryZone(step *mission.Step, target *world.Object) bool {
	if step.Zone == "" {
		return false
	}
	if target.ID == step.Zone {
		return true
	}
	zone, ok := s.World.Live(step.Zone)
	if !ok {
		return false
	}
	return s.Player.Bounds().Intersects(zone.Bounds())
}

// enterInterior swaps the active location to the building's interior and
// places the player at the interior spawn point.
func (s *Simulation) enterInterior(b *world.Object) []Event {
	in, ok := s.World.InteriorForBuilding(b.ID)
	if !ok {
		return nil
	}
	s.InteriorID = in.ID
	s.Player.Pos = s.clamp(in.SpawnPoint())
	s.Player.Target = ""
	return []Event{
		{Kind: EventEnteredInterior, InteriorID: in.ID, Message: "Entered " + in.Name},
		play(audio.SoundDoor),
	}
}

// exitInterior swaps back to the overworld, placing the player just below the
// owning building's door.
func (s *Simulation) exitInterior() []Event {
	in, ok := s.World.Interior(s.InteriorID)
	if !ok {
		return nil
	}
	s.InteriorID = ""
	s.Player.Target = ""

	if b, found := s.World.Lookup(in.BuildingID); found {
		pos := b.Center()
		if door, hasDoor := b.DoorBounds(); hasDoor {
			pos = core.Vec{
				X: door.Center().X - player.Width/2,
				Y: door.Bottom() + 1,
			}
		}
		s.Player.Pos = s.clamp(pos)
	}
	return []Event{
		{Kind: EventExitedInterior, InteriorID: in.ID},
		play(audio.SoundDoor),
	}
}

// advanceMission pushes a mission past its current step and converts the
// machine's result into observable events. Every advance triggers an
// autosave request.
func (s *Simulation) advanceMission(id int) []Event {
	res := s.Missions.Advance(id, s.Player)
	if res == nil {
		return nil
	}

	events := []Event{play(audio.SoundMissionAdvance)}
	if res.Completed {
		events = append(events, Event{
			Kind:      EventMissionCompleted,
			MissionID: res.Mission.ID,
			Message:   fmt.Sprintf("Mission complete: %s", res.Mission.Title),
		})
		for _, lv := range res.LevelsGained {
			events = append(events, Event{
				Kind:    EventLevelUp,
				Level:   lv,
				Message: fmt.Sprintf("Level %d!", lv),
			})
		}
		if res.Unlocked != nil {
			events = append(events, Event{
				Kind:      EventMissionUnlocked,
				MissionID: res.Unlocked.ID,
				Message:   fmt.Sprintf("New mission: %s", res.Unlocked.Title),
			})
		}
	} else if res.NewStep != nil {
		events = append(events, notify(res.NewStep.Description))
	}
	return append(events, Event{Kind: EventAutosave})
}

package sim

import (
	"testing"
	"time"

	"github.com/vovakirdan/questcv/internal/core"
	"github.com/vovakirdan/questcv/internal/game/mission"
	"github.com/vovakirdan/questcv/internal/game/player"
	"github.com/vovakirdan/questcv/internal/game/world"
	"github.com/vovakirdan/questcv/internal/storage"
)

const tickDT = 0.2

func emptyCatalog() *player.Catalog {
	return player.NewCatalog(nil, nil)
}

func skillCatalog() *player.Catalog {
	return player.NewCatalog(nil, []player.Skill{
		{ID: "treasure_1", Cost: player.SkillCost{Coins: 0}, RequiredLevel: 1, Effect: player.SkillCoinGainPercent, Value: 0.20},
	})
}

func newSim(t *testing.T, objects []*world.Object, interiors []*world.Interior, missions []*mission.Mission, cat *player.Catalog) *Simulation {
	t.Helper()
	if cat == nil {
		cat = emptyCatalog()
	}
	w := world.New(2400, 1600, objects, interiors)
	return New(w, mission.NewMachine(missions), cat, Config{Seed: 1})
}

func holding(keys ...core.Key) core.InputFrame {
	in := core.NewInputFrame()
	for _, k := range keys {
		in.Press(k)
	}
	return in
}

func solidOverlap(s *Simulation) bool {
	return s.World.BlocksMovement(s.Player.Bounds(), s.InteriorID)
}

func TestMovementNeverPenetratesSolidsOrBounds(t *testing.T) {
	objects := []*world.Object{
		{ID: "rock", X: 1300, Y: 700, W: 100, H: 200, Kind: world.KindObstacle},
		{ID: "hut", X: 900, Y: 1000, W: 150, H: 120, Kind: world.KindBuilding},
	}
	s := newSim(t, objects, nil, nil, nil)

	runs := []core.InputFrame{
		holding(core.KeyRight),
		holding(core.KeyRight, core.KeyDown),
		holding(core.KeyDown),
		holding(core.KeyLeft, core.KeyDown),
		holding(core.KeyLeft),
		holding(core.KeyUp, core.KeyLeft),
		holding(core.KeyUp),
		holding(core.KeyUp, core.KeyRight),
	}
	for _, in := range runs {
		for i := 0; i < 250; i++ {
			s.Step(in, tickDT)
			if solidOverlap(s) {
				t.Fatalf("player box %+v overlaps a solid while holding %v", s.Player.Bounds(), in.Held)
			}
			b := s.Player.Bounds()
			if b.X < 0 || b.Y < 0 || b.Right() > s.World.Width || b.Bottom() > s.World.Height {
				t.Fatalf("player box %+v left world bounds", b)
			}
		}
	}
}

func TestCoinPickup(t *testing.T) {
	t.Run("no skills adds the raw value", func(t *testing.T) {
		coin := &world.Object{
			ID: "coin1", X: 1190, Y: 790, W: 10, H: 10, Kind: world.KindObject,
			Collect: &world.Collectible{Kind: world.CollectCoin, Value: 3},
		}
		s := newSim(t, []*world.Object{coin}, nil, nil, nil)
		start := s.Player.Coins

		events := s.Step(core.NewInputFrame(), tickDT)

		if s.Player.Coins != start+3 {
			t.Errorf("coins = %d, expected %d", s.Player.Coins, start+3)
		}
		if len(events) == 0 {
			t.Error("pickup emitted no events")
		}
		if _, live := s.World.Live("coin1"); live {
			t.Error("collected coin still active")
		}
	})

	t.Run("coin-gain skill scales and rounds", func(t *testing.T) {
		coin := &world.Object{
			ID: "coin1", X: 1190, Y: 790, W: 10, H: 10, Kind: world.KindObject,
			Collect: &world.Collectible{Kind: world.CollectCoin, Value: 10},
		}
		cat := skillCatalog()
		s := newSim(t, []*world.Object{coin}, nil, nil, cat)
		s.Player.Skills = []string{"treasure_1"}
		s.Player.Stats = cat.Recompute(nil, s.Player.Skills)
		s.Player.Coins = 0

		s.Step(core.NewInputFrame(), tickDT)

		if s.Player.Coins != 12 { // round(10 * 1.2)
			t.Errorf("coins = %d, expected 12", s.Player.Coins)
		}
	})

	t.Run("gems credit the color ledger", func(t *testing.T) {
		gem := &world.Object{
			ID: "gem1", X: 1190, Y: 790, W: 10, H: 10, Kind: world.KindObject,
			Collect: &world.Collectible{Kind: world.CollectGem, Color: "#00aaff"},
		}
		s := newSim(t, []*world.Object{gem}, nil, nil, nil)

		s.Step(core.NewInputFrame(), tickDT)

		if s.Player.Gems["#00aaff"] != 1 {
			t.Errorf("gems = %v, expected one blue gem", s.Player.Gems)
		}
	})
}

func TestCollectibleRespawnOnWallClock(t *testing.T) {
	coin := &world.Object{
		ID: "coin1", X: 1190, Y: 790, W: 10, H: 10, Kind: world.KindObject,
		Collect: &world.Collectible{Kind: world.CollectCoin, Value: 1},
	}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	w := world.New(2400, 1600, []*world.Object{coin}, nil)
	s := New(w, mission.NewMachine(nil), emptyCatalog(), Config{
		Seed: 1,
		Now:  func() time.Time { return now },
	})
	start := s.Player.Coins

	s.Step(core.NewInputFrame(), tickDT)
	if s.Player.Coins != start+1 {
		t.Fatalf("coins = %d, expected first pickup", s.Player.Coins)
	}

	now = now.Add(10 * time.Second)
	s.Step(core.NewInputFrame(), tickDT)
	if s.Player.Coins != start+1 {
		t.Fatalf("coin respawned early")
	}

	now = now.Add(21 * time.Second)
	s.Step(core.NewInputFrame(), tickDT)
	if s.Player.Coins != start+2 {
		t.Errorf("coins = %d, expected the respawned coin to be collected", s.Player.Coins)
	}
}

func TestSuspendedModeHaltsTick(t *testing.T) {
	s := newSim(t, nil, nil, nil, nil)
	s.Mode = ModeSuspendedAwaitingIdentity
	pos := s.Player.Pos

	s.Step(holding(core.KeyRight), tickDT)

	if s.Player.Pos != pos {
		t.Errorf("position moved while suspended: %+v", s.Player.Pos)
	}
	if s.Player.Moving {
		t.Error("moving flag set while suspended")
	}
}

func interiorFixture() ([]*world.Object, []*world.Interior) {
	objects := []*world.Object{
		{
			ID: "lab", Name: "The Lab", X: 600, Y: 300, W: 200, H: 150,
			Kind: world.KindBuilding,
			Door: &core.Rect{X: 80, Y: 130, W: 40, H: 20},
		},
	}
	interiors := []*world.Interior{
		{
			ID: "lab_interior", BuildingID: "lab", Name: "The Lab",
			Width: 500, Height: 400,
			Exit: core.Rect{X: 230, Y: 0, W: 40, H: 20},
		},
	}
	return objects, interiors
}

func TestEnterAndExitInterior(t *testing.T) {
	objects, interiors := interiorFixture()
	s := newSim(t, objects, interiors, nil, nil)

	// Stand just below the door, inside interaction range of its center.
	s.Player.Pos = core.Vec{X: 682.5, Y: 455}
	s.Step(core.NewInputFrame(), tickDT)
	if s.Player.Target != "lab" {
		t.Fatalf("target = %q, expected the building", s.Player.Target)
	}

	events := s.Interact()
	if s.InteriorID != "lab_interior" {
		t.Fatalf("interior = %q, expected lab_interior", s.InteriorID)
	}
	if !hasEvent(events, EventEnteredInterior) {
		t.Error("entering emitted no EventEnteredInterior")
	}

	// The spawn point sits below the exit, so the exit becomes the target.
	s.Step(core.NewInputFrame(), tickDT)
	if s.Player.Target != world.ExitID {
		t.Fatalf("target = %q, expected the exit", s.Player.Target)
	}

	events = s.Interact()
	if s.InteriorID != "" {
		t.Fatalf("interior = %q, expected the overworld", s.InteriorID)
	}
	if !hasEvent(events, EventExitedInterior) {
		t.Error("exiting emitted no EventExitedInterior")
	}
	// Back outside, just below the door.
	if b := s.Player.Bounds(); b.Y < 450 {
		t.Errorf("player reappeared inside the building: %+v", b)
	}
}

func TestPickUpAndDeliverSteps(t *testing.T) {
	objects := []*world.Object{
		{ID: "chip", Name: "Config Chip", X: 1000, Y: 1000, W: 30, H: 30, Kind: world.KindObject},
		{ID: "npc_charles", Name: "Charles", X: 1200, Y: 1000, W: 40, H: 40, Kind: world.KindNPC},
	}
	missions := []*mission.Mission{{
		ID: 1, Title: "Chip Run", Status: mission.StatusAvailable,
		CoinReward: 10, XPReward: 10, GemReward: 1, GemColor: "#00aaff",
		Steps: []mission.Step{
			{Kind: mission.StepPickUp, TargetID: "chip", ItemID: "chip", Description: "Grab the chip."},
			{Kind: mission.StepDeliver, Zone: "npc_charles", RequiredItem: "chip", Description: "Bring it to Charles."},
		},
	}}
	s := newSim(t, objects, nil, missions, nil)

	s.Player.Pos = core.Vec{X: 1000, Y: 1040}
	s.Step(core.NewInputFrame(), tickDT)
	if s.Player.Target != "chip" {
		t.Fatalf("target = %q, expected the chip", s.Player.Target)
	}
	s.Interact()
	if !s.Player.HasItem("chip") {
		t.Fatal("pickup step did not add the item")
	}
	if _, found := s.World.Lookup("chip"); found {
		t.Error("picked-up mission object should be gone for good")
	}
	if m, _ := s.Missions.Get(1); m.Current != 1 {
		t.Fatalf("step = %d, expected the deliver step", m.Current)
	}

	// Delivering without the item in hand fails and leaves the step alone.
	s.Player.RemoveItem("chip", 1)
	s.Player.Pos = core.Vec{X: 1200, Y: 1045}
	s.Step(core.NewInputFrame(), tickDT)
	if s.Player.Target != "npc_charles" {
		t.Fatalf("target = %q, expected Charles", s.Player.Target)
	}
	s.Interact()
	if m, _ := s.Missions.Get(1); m.Current != 1 {
		t.Fatal("deliver advanced without the required item")
	}

	// Deliver with the item in hand completes the mission.
	s.Player.AddItem("chip", "Config Chip", 1)
	coins := s.Player.Coins
	events := s.Interact()
	if m, _ := s.Missions.Get(1); m.Status != mission.StatusCompleted {
		t.Fatalf("status = %s, expected completed", m.Status)
	}
	if s.Player.HasItem("chip") {
		t.Error("delivered item was not consumed")
	}
	if s.Player.Coins != coins+10 {
		t.Errorf("coins = %d, expected the mission reward", s.Player.Coins)
	}
	if !hasEvent(events, EventMissionCompleted) {
		t.Error("completion emitted no EventMissionCompleted")
	}
}

func TestGuideChatAdvancesInteractStep(t *testing.T) {
	objects := []*world.Object{
		{ID: "npc_ada", Name: "Ada", X: 1180, Y: 700, W: 40, H: 40, Kind: world.KindNPC, Role: world.RoleGuide},
	}
	missions := []*mission.Mission{{
		ID: 1, Title: "Say Hello", Status: mission.StatusAvailable,
		Steps: []mission.Step{
			{Kind: mission.StepInteract, TargetID: "npc_ada", Description: "Talk to Ada."},
			{Kind: mission.StepInteract, TargetID: "npc_ada", Description: "Talk to Ada again."},
		},
	}}
	s := newSim(t, objects, nil, missions, nil)

	s.Player.Pos = core.Vec{X: 1182.5, Y: 745}
	s.Step(core.NewInputFrame(), tickDT)
	if s.Player.Target != "npc_ada" {
		t.Fatalf("target = %q, expected Ada", s.Player.Target)
	}

	events := s.Interact()
	if !hasEvent(events, EventOpenChat) {
		t.Fatal("guide interaction did not open the chat")
	}
	if s.Mode != ModeSuspendedByModal {
		t.Fatalf("mode = %v, expected suspended", s.Mode)
	}
	if m, _ := s.Missions.Get(1); m.Current != 0 {
		t.Fatal("step advanced before the chat closed")
	}

	// While the chat is open the tick does not move the player.
	pos := s.Player.Pos
	s.Step(holding(core.KeyRight), tickDT)
	if s.Player.Pos != pos {
		t.Error("player moved while the chat modal was open")
	}

	// Interact dismisses the open dialogue first and commits the advance.
	s.Interact()
	if s.Mode != ModeRunning {
		t.Fatalf("mode = %v, expected running after close", s.Mode)
	}
	if m, _ := s.Missions.Get(1); m.Current != 1 {
		t.Errorf("step = %d, expected the chat close to advance it", m.Current)
	}
}

func TestInfoStepAdvancesOnArrival(t *testing.T) {
	objects := []*world.Object{
		{ID: "cache_hub", Name: "Cache Hub", X: 1180, Y: 700, W: 40, H: 40, Kind: world.KindObstacle},
	}
	missions := []*mission.Mission{{
		ID: 1, Title: "See the Hub", Status: mission.StatusAvailable,
		Steps: []mission.Step{
			{Kind: mission.StepInfo, TargetID: "cache_hub", Description: "Find the hub."},
			{Kind: mission.StepInteract, TargetID: "cache_hub"},
		},
	}}
	s := newSim(t, objects, nil, missions, nil)

	// Far away: nothing happens.
	s.Player.Pos = core.Vec{X: 100, Y: 100}
	s.Step(core.NewInputFrame(), tickDT)
	if m, _ := s.Missions.Get(1); m.Current != 0 {
		t.Fatal("info step advanced without arriving")
	}

	// Within interaction range of the hub's anchor: arrival triggers.
	s.Player.Pos = core.Vec{X: 1182.5, Y: 745}
	s.Step(core.NewInputFrame(), tickDT)
	if m, _ := s.Missions.Get(1); m.Current != 1 {
		t.Errorf("step = %d, expected arrival to advance the info step", m.Current)
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	objects := []*world.Object{
		{ID: "npc_ada", Name: "Ada", X: 100, Y: 100, W: 40, H: 40, Kind: world.KindNPC},
	}
	missions := []*mission.Mission{
		{ID: 1, Status: mission.StatusCompleted, Current: 2, Steps: make([]mission.Step, 2)},
		{ID: 2, Status: mission.StatusAvailable, Current: 1, Steps: make([]mission.Step, 3)},
	}
	s := newSim(t, objects, nil, missions, nil)
	s.Player.Level = 4
	s.Player.XP = 33
	s.Player.Coins = 777
	s.Player.Gems["#00aaff"] = 2
	s.Player.AddItem("chip", "Config Chip", 1)
	s.Dev = DevOptions{DevOptionsUnlocked: true, TeleporterEnabled: true}

	save := s.Snapshot()

	// Mangle the live state, then restore.
	s.Player.Level = 1
	s.Player.Coins = 0
	s.Player.Pos = core.Vec{X: 5, Y: 5}
	s.Player.Target = "npc_ada"
	s.Player.Moving = true
	s.InteriorID = "somewhere"
	if m, ok := s.Missions.Get(2); ok {
		m.Current = 0
		m.Status = mission.StatusLocked
	}
	s.Restore(save)

	if s.Player.Level != 4 || s.Player.XP != 33 || s.Player.Coins != 777 {
		t.Errorf("player = level %d xp %f coins %d, expected 4/33/777",
			s.Player.Level, s.Player.XP, s.Player.Coins)
	}
	if s.Player.Gems["#00aaff"] != 2 || !s.Player.HasItem("chip") {
		t.Errorf("gems/inventory not restored: %v %v", s.Player.Gems, s.Player.Inventory)
	}
	if m, _ := s.Missions.Get(2); m.Current != 1 || m.Status != mission.StatusAvailable {
		t.Errorf("mission 2 = step %d status %s, expected 1/available", m.Current, m.Status)
	}
	if !s.Dev.TeleporterEnabled {
		t.Error("dev options not restored")
	}
	// Transients reset.
	if s.InteriorID != "" || s.Player.Target != "" || s.Player.Moving {
		t.Errorf("transient state survived restore: interior %q target %q moving %v",
			s.InteriorID, s.Player.Target, s.Player.Moving)
	}
	wantSpawn := core.Vec{X: 2400/2 - player.Width/2, Y: 1600/2 - player.Height/2}
	if s.Player.Pos != wantSpawn {
		t.Errorf("pos = %+v, expected the spawn point %+v", s.Player.Pos, wantSpawn)
	}
}

func TestRestoreDropsUnknownMissions(t *testing.T) {
	missions := []*mission.Mission{
		{ID: 1, Status: mission.StatusAvailable, Steps: make([]mission.Step, 1)},
	}
	s := newSim(t, nil, nil, missions, nil)
	save := s.Snapshot()
	save.Missions = append(save.Missions, storage.MissionSave{ID: 99, Step: 1, Status: "available"})

	s.Restore(save) // must not panic or invent mission 99

	if _, ok := s.Missions.Get(99); ok {
		t.Error("restore invented a mission the content does not define")
	}
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

package sim

import (
	"errors"
	"testing"

	"github.com/vovakirdan/questcv/internal/game/mission"
	"github.com/vovakirdan/questcv/internal/game/player"
	"github.com/vovakirdan/questcv/internal/game/world"
)

func beaconMissions() []*mission.Mission {
	return []*mission.Mission{{
		ID: 1, Title: "Reach the Beacon", Status: mission.StatusAvailable,
		Steps: []mission.Step{
			{Kind: mission.StepInteract, TargetID: "beacon"},
		},
	}}
}

func TestTeleport(t *testing.T) {
	beacon := &world.Object{ID: "beacon", Name: "Beacon", X: 200, Y: 200, W: 40, H: 40, Kind: world.KindObject}

	t.Run("disabled without the dev switch", func(t *testing.T) {
		s := newSim(t, []*world.Object{beacon}, nil, beaconMissions(), nil)
		if _, err := s.Teleport(); !errors.Is(err, ErrTeleporterDisabled) {
			t.Errorf("err = %v, expected ErrTeleporterDisabled", err)
		}
	})

	t.Run("insufficient funds leaves position unchanged", func(t *testing.T) {
		s := newSim(t, []*world.Object{beacon}, nil, beaconMissions(), nil)
		s.Dev.TeleporterEnabled = true
		s.Player.Coins = 24 // cost is 25 at multiplier 1
		pos := s.Player.Pos

		_, err := s.Teleport()
		if !errors.Is(err, player.ErrInsufficientFunds) {
			t.Fatalf("err = %v, expected ErrInsufficientFunds", err)
		}
		if s.Player.Pos != pos || s.Player.Coins != 24 {
			t.Errorf("failed teleport mutated state: pos %+v coins %d", s.Player.Pos, s.Player.Coins)
		}
	})

	t.Run("unavailable indoors", func(t *testing.T) {
		objects, interiors := interiorFixture()
		objects = append(objects, beacon)
		s := newSim(t, objects, interiors, beaconMissions(), nil)
		s.Dev.TeleporterEnabled = true
		s.InteriorID = "lab_interior"

		if _, err := s.Teleport(); !errors.Is(err, ErrIndoors) {
			t.Errorf("err = %v, expected ErrIndoors", err)
		}
	})

	t.Run("success lands on a free spot and debits the cost", func(t *testing.T) {
		s := newSim(t, []*world.Object{beacon}, nil, beaconMissions(), nil)
		s.Dev.TeleporterEnabled = true
		s.Player.Coins = 100

		events, err := s.Teleport()
		if err != nil {
			t.Fatalf("Teleport: %v", err)
		}
		if s.Player.Coins != 75 {
			t.Errorf("coins = %d, expected 75", s.Player.Coins)
		}
		if s.World.BlocksMovement(s.Player.Bounds(), "") {
			t.Errorf("landed inside a solid: %+v", s.Player.Bounds())
		}
		if d := s.Player.Center().Dist(beacon.Center()); d > 300 {
			t.Errorf("landed %f away from the beacon", d)
		}
		if !hasEvent(events, EventTeleported) {
			t.Error("no EventTeleported emitted")
		}
	})

	t.Run("cost multiplier scales the price", func(t *testing.T) {
		s := newSim(t, []*world.Object{beacon}, nil, beaconMissions(), nil)
		s.Dev.TeleporterEnabled = true
		s.Player.Stats.TeleportCostMult = 0.5
		s.Player.Coins = 13

		if _, err := s.Teleport(); err != nil {
			t.Fatalf("Teleport at half cost: %v", err)
		}
		if s.Player.Coins != 0 { // 13 - round(25 * 0.5)
			t.Errorf("coins = %d, expected 0", s.Player.Coins)
		}
	})
}

func TestTeleportNoSafeLandingSpot(t *testing.T) {
	// A 40x40 target with every reachable spot around it walled off up to
	// beyond the maximum search radius.
	objects := []*world.Object{
		{ID: "beacon", Name: "Beacon", X: 500, Y: 500, W: 40, H: 40, Kind: world.KindObject},
		{ID: "wall_n", X: 0, Y: 0, W: 2400, H: 500, Kind: world.KindObstacle},
		{ID: "wall_s", X: 0, Y: 540, W: 2400, H: 1060, Kind: world.KindObstacle},
		{ID: "wall_w", X: 0, Y: 500, W: 500, H: 40, Kind: world.KindObstacle},
		{ID: "wall_e", X: 540, Y: 500, W: 1860, H: 40, Kind: world.KindObstacle},
	}
	s := newSim(t, objects, nil, beaconMissions(), nil)
	s.Dev.TeleporterEnabled = true
	s.Player.Coins = 100
	pos := s.Player.Pos

	_, err := s.Teleport()
	if !errors.Is(err, ErrNoSafeLandingSpot) {
		t.Fatalf("err = %v, expected ErrNoSafeLandingSpot", err)
	}
	if s.Player.Pos != pos || s.Player.Coins != 100 {
		t.Errorf("failed teleport mutated state: pos %+v coins %d", s.Player.Pos, s.Player.Coins)
	}
}

func TestMissionTarget(t *testing.T) {
	objects, interiors := interiorFixture()
	objects = append(objects,
		&world.Object{ID: "beacon", Name: "Beacon", X: 200, Y: 200, W: 40, H: 40, Kind: world.KindObject},
		&world.Object{ID: "desk", Name: "Desk", X: 50, Y: 50, W: 40, H: 40, Kind: world.KindObject, InteriorID: "lab_interior"},
	)

	t.Run("skips steps without a physical target", func(t *testing.T) {
		missions := []*mission.Mission{{
			ID: 1, Status: mission.StatusAvailable,
			Steps: []mission.Step{
				{Kind: mission.StepInfo},
				{Kind: mission.StepInteract, TargetID: "beacon"},
			},
		}}
		s := newSim(t, objects, interiors, missions, nil)
		target, err := s.MissionTarget()
		if err != nil {
			t.Fatal(err)
		}
		if target.ID != "beacon" {
			t.Errorf("target = %s, expected the beacon", target.ID)
		}
	})

	t.Run("indoor targets resolve to their building", func(t *testing.T) {
		missions := []*mission.Mission{{
			ID: 1, Status: mission.StatusAvailable,
			Steps: []mission.Step{
				{Kind: mission.StepInteract, TargetID: "desk"},
			},
		}}
		s := newSim(t, objects, interiors, missions, nil)
		target, err := s.MissionTarget()
		if err != nil {
			t.Fatal(err)
		}
		if target.ID != "lab" {
			t.Errorf("target = %s, expected the lab building", target.ID)
		}
	})

	t.Run("locked mission previews its first target", func(t *testing.T) {
		missions := []*mission.Mission{
			{ID: 1, Status: mission.StatusCompleted, Current: 1,
				Steps: []mission.Step{{Kind: mission.StepInteract, TargetID: "beacon"}}},
			{ID: 2, Status: mission.StatusLocked,
				Steps: []mission.Step{{Kind: mission.StepInteract, TargetID: "beacon"}}},
		}
		s := newSim(t, objects, interiors, missions, nil)
		target, err := s.MissionTarget()
		if err != nil {
			t.Fatal(err)
		}
		if target.ID != "beacon" {
			t.Errorf("target = %s, expected the locked preview", target.ID)
		}
	})

	t.Run("all missions done", func(t *testing.T) {
		missions := []*mission.Mission{
			{ID: 1, Status: mission.StatusCompleted, Current: 1,
				Steps: []mission.Step{{Kind: mission.StepInteract, TargetID: "beacon"}}},
		}
		s := newSim(t, objects, interiors, missions, nil)
		if _, err := s.MissionTarget(); !errors.Is(err, ErrAllMissionsDone) {
			t.Errorf("err = %v, expected ErrAllMissionsDone", err)
		}
	})
}

package world

import (
	"testing"
	"time"

	"github.com/vovakirdan/questcv/internal/core"
)

func testWorld() *World {
	objects := []*Object{
		{ID: "npc_guide", X: 100, Y: 100, W: 30, H: 45, Kind: KindNPC, Role: RoleGuide},
		{
			ID: "hall", X: 300, Y: 300, W: 200, H: 150, Kind: KindBuilding,
			Door: &core.Rect{X: 85, Y: 120, W: 30, H: 30},
		},
		{ID: "rock", X: 600, Y: 600, W: 80, H: 80, Kind: KindObstacle},
		{
			ID: "coin_1", X: 50, Y: 50, W: 15, H: 15, Kind: KindObject,
			Collect: &Collectible{Kind: CollectCoin, Value: 1},
		},
		{ID: "key_item", X: 700, Y: 100, W: 25, H: 25, Kind: KindObject, Name: "Key Item"},
		{
			ID: "table", X: 100, Y: 150, W: 80, H: 40, Kind: KindObject,
			InteriorID: "hall_interior",
		},
	}
	interiors := []*Interior{
		{
			ID: "hall_interior", BuildingID: "hall", Name: "Hall",
			Width: 600, Height: 400,
			Exit: core.Rect{X: 285, Y: 350, W: 30, H: 50},
		},
	}
	return New(1000, 800, objects, interiors)
}

func TestActiveFiltersByLocation(t *testing.T) {
	w := testWorld()

	overworld := w.Active("")
	if len(overworld) != 5 {
		t.Fatalf("overworld active = %d objects, expected 5", len(overworld))
	}
	for _, o := range overworld {
		if o.InteriorID != "" {
			t.Errorf("overworld set contains interior object %q", o.ID)
		}
	}

	inside := w.Active("hall_interior")
	if len(inside) != 1 || inside[0].ID != "table" {
		t.Fatalf("interior active = %v, expected just the table", inside)
	}
}

func TestCollectibleRespawnCycle(t *testing.T) {
	w := testWorld()
	now := time.Now()

	w.RemoveCollectible("coin_1", now)
	if _, ok := w.Live("coin_1"); ok {
		t.Fatal("collected coin should not be live")
	}

	if back := w.PollRespawns(now.Add(w.respawnDelay - time.Second)); back != nil {
		t.Fatalf("respawned early: %v", back)
	}

	back := w.PollRespawns(now.Add(w.respawnDelay))
	if len(back) != 1 || back[0].ID != "coin_1" {
		t.Fatalf("PollRespawns = %v, expected coin_1", back)
	}
	if _, ok := w.Live("coin_1"); !ok {
		t.Fatal("coin should be live again after respawn")
	}
}

func TestRemoveCollectibleIgnoresNonCollectibles(t *testing.T) {
	w := testWorld()
	w.RemoveCollectible("rock", time.Now())
	if _, ok := w.Live("rock"); !ok {
		t.Fatal("non-collectible must not be removed")
	}
}

func TestResetInvalidatesPendingRespawns(t *testing.T) {
	w := testWorld()
	now := time.Now()

	w.RemoveCollectible("coin_1", now)
	w.Reset()

	if _, ok := w.Live("coin_1"); !ok {
		t.Fatal("Reset should restore the collected coin")
	}

	// The stale queue entry must not double-insert or panic once due.
	if back := w.PollRespawns(now.Add(w.respawnDelay + time.Second)); back != nil {
		t.Fatalf("stale respawn entry produced %v", back)
	}
}

func TestRemoveForever(t *testing.T) {
	w := testWorld()
	w.RemoveForever("key_item")

	if _, ok := w.Lookup("key_item"); ok {
		t.Fatal("permanently removed object should not resolve")
	}
	for _, o := range w.Active("") {
		if o.ID == "key_item" {
			t.Fatal("permanently removed object still active")
		}
	}
}

func TestBlocksMovement(t *testing.T) {
	w := testWorld()

	tests := []struct {
		name     string
		box      core.Rect
		interior string
		expected bool
	}{
		{"overlapping obstacle", core.NewRect(590, 590, 35, 35), "", true},
		{"overlapping building", core.NewRect(290, 290, 35, 35), "", true},
		{"open ground", core.NewRect(10, 400, 35, 35), "", false},
		{"overlapping npc is passable", core.NewRect(100, 100, 35, 35), "", false},
		{"interiors have no solids", core.NewRect(100, 150, 35, 35), "hall_interior", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := w.BlocksMovement(tc.box, tc.interior); got != tc.expected {
				t.Errorf("BlocksMovement() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBlocksMovementIgnoresCollectedState(t *testing.T) {
	w := testWorld()
	// A collected coin's slot must not block even if something solid shared its id.
	w.RemoveCollectible("coin_1", time.Now())
	if w.BlocksMovement(core.NewRect(45, 45, 35, 35), "") {
		t.Fatal("collected coin should not block movement")
	}
}

func TestNearestInteractable(t *testing.T) {
	w := testWorld()

	t.Run("skips collectibles", func(t *testing.T) {
		got := w.NearestInteractable(core.Vec{X: 57, Y: 57}, 200, "")
		if got == nil || got.ID == "coin_1" {
			t.Fatalf("nearest = %v, collectibles must never be targets", got)
		}
	})

	t.Run("building measured from door", func(t *testing.T) {
		door := core.Vec{X: 400, Y: 435} // hall door center
		got := w.NearestInteractable(door.Add(core.Vec{Y: 30}), 50, "")
		if got == nil || got.ID != "hall" {
			t.Fatalf("nearest = %v, expected hall via door anchor", got)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		if got := w.NearestInteractable(core.Vec{X: 999, Y: 10}, 20, ""); got != nil {
			t.Fatalf("nearest = %v, expected nil", got)
		}
	})

	t.Run("synthetic exit candidate", func(t *testing.T) {
		in, _ := w.Interior("hall_interior")
		exit := in.ExitObject()
		got := w.NearestInteractable(in.Exit.Center(), 60, "hall_interior", exit)
		if got == nil || got.ID != ExitID {
			t.Fatalf("nearest = %v, expected the exit", got)
		}
	})
}

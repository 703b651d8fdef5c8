package world

import (
	"time"

	"github.com/vovakirdan/questcv/internal/core"
)

// DefaultRespawnDelay is how long a collected coin or gem stays gone.
// Measured on the wall clock: pausing the game does not pause respawns.
const DefaultRespawnDelay = 30 * time.Second

// World is the registry of all world objects and interiors plus the runtime
// active set. Objects keep their declaration order, which fixes iteration
// order for nearest-target ties and the mission unlock scan.
type World struct {
	Width  float64
	Height float64

	objects    []*Object
	index      map[string]*Object
	interiors  map[string]*Interior
	byBuilding map[string]*Interior

	active       map[string]bool
	respawns     respawnQueue
	respawnDelay time.Duration
	gen          uint64
}

// New creates a world from static content. All objects start active.
func New(width, height float64, objects []*Object, interiors []*Interior) *World {
	w := &World{
		Width:        width,
		Height:       height,
		objects:      objects,
		index:        make(map[string]*Object, len(objects)),
		interiors:    make(map[string]*Interior, len(interiors)),
		byBuilding:   make(map[string]*Interior, len(interiors)),
		active:       make(map[string]bool, len(objects)),
		respawnDelay: DefaultRespawnDelay,
	}
	for _, o := range objects {
		w.index[o.ID] = o
		w.active[o.ID] = true
	}
	for _, in := range interiors {
		w.interiors[in.ID] = in
		w.byBuilding[in.BuildingID] = in
	}
	return w
}

// SetRespawnDelay overrides the collectible respawn delay. Used by tests.
func (w *World) SetRespawnDelay(d time.Duration) {
	w.respawnDelay = d
}

// Bounds returns the overworld rectangle.
func (w *World) Bounds() core.Rect {
	return core.Rect{W: w.Width, H: w.Height}
}

// Lookup returns the object with the given id whether or not it is active.
func (w *World) Lookup(id string) (*Object, bool) {
	o, ok := w.index[id]
	return o, ok
}

// Live returns the object with the given id only if it is currently active.
func (w *World) Live(id string) (*Object, bool) {
	o, ok := w.index[id]
	if !ok || !w.active[id] {
		return nil, false
	}
	return o, true
}

// Interior returns the interior with the given id.
func (w *World) Interior(id string) (*Interior, bool) {
	in, ok := w.interiors[id]
	return in, ok
}

// InteriorForBuilding returns the interior entered through the given building.
func (w *World) InteriorForBuilding(buildingID string) (*Interior, bool) {
	in, ok := w.byBuilding[buildingID]
	return in, ok
}

// Interiors returns all interiors.
func (w *World) Interiors() []*Interior {
	out := make([]*Interior, 0, len(w.interiors))
	for _, o := range w.objects {
		if in, ok := w.byBuilding[o.ID]; ok {
			out = append(out, in)
		}
	}
	return out
}

// Active returns the active objects belonging to the given location, in
// declaration order. An empty interiorID means the overworld.
func (w *World) Active(interiorID string) []*Object {
	var out []*Object
	for _, o := range w.objects {
		if o.InteriorID == interiorID && w.active[o.ID] {
			out = append(out, o)
		}
	}
	return out
}

// RemoveCollectible deactivates a collected object and schedules its
// re-insertion after the respawn delay. Non-collectibles are ignored.
func (w *World) RemoveCollectible(id string, now time.Time) {
	o, ok := w.index[id]
	if !ok || o.Collect == nil || !w.active[id] {
		return
	}
	w.active[id] = false
	w.respawns.schedule(id, now.Add(w.respawnDelay), w.gen)
}

// RemoveForever permanently deletes an object, used when a mission step
// consumes a physical pickup. The object never respawns.
func (w *World) RemoveForever(id string) {
	if _, ok := w.index[id]; !ok {
		return
	}
	w.active[id] = false
	delete(w.index, id)
	for i, o := range w.objects {
		if o.ID == id {
			w.objects = append(w.objects[:i], w.objects[i+1:]...)
			break
		}
	}
}

// PollRespawns re-activates every collectible whose respawn is due, returning
// the re-inserted objects. Entries queued before the last Reset are dropped.
func (w *World) PollRespawns(now time.Time) []*Object {
	var back []*Object
	for _, e := range w.respawns.ready(now) {
		if e.gen != w.gen {
			continue
		}
		o, ok := w.index[e.id]
		if !ok || w.active[e.id] {
			continue
		}
		w.active[e.id] = true
		back = append(back, o)
	}
	return back
}

// Reset restores every registered object to the active set and invalidates
// all pending respawns.
func (w *World) Reset() {
	w.gen++
	for id := range w.index {
		w.active[id] = true
	}
}

// BlocksMovement reports whether the query box overlaps any solid object in
// the given location. Interiors contain no solid objects; only their bounds
// constrain movement.
func (w *World) BlocksMovement(box core.Rect, interiorID string) bool {
	for _, o := range w.objects {
		if o.InteriorID != interiorID || !w.active[o.ID] {
			continue
		}
		if o.BlocksMovement() && box.Intersects(o.Bounds()) {
			return true
		}
	}
	return false
}

// NearestInteractable returns the interactable object in the given location
// closest to from within maxRadius, or nil. Distance is measured to each
// object's anchor (door center for buildings). Extra synthetic candidates,
// such as an interior's exit, participate on equal footing.
func (w *World) NearestInteractable(from core.Vec, maxRadius float64, interiorID string, extra ...*Object) *Object {
	var candidates []*Object
	candidates = append(candidates, extra...)
	for _, o := range w.Active(interiorID) {
		if o.Interactable() {
			candidates = append(candidates, o)
		}
	}
	anchors := make([]core.Vec, len(candidates))
	for i, o := range candidates {
		anchors[i] = o.Anchor()
	}
	idx := core.NearestIndex(anchors, from, maxRadius)
	if idx < 0 {
		return nil
	}
	return candidates[idx]
}

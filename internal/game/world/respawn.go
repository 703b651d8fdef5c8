package world

import (
	"container/heap"
	"time"
)

// respawnEntry schedules the re-insertion of a collected object. The
// generation guards against entries that were queued before a world reset:
// stale entries are dropped when polled instead of resurrecting objects into
// a reloaded world.
type respawnEntry struct {
	readyAt time.Time
	id      string
	gen     uint64
}

// respawnQueue is a min-heap ordered by readiness time, polled once per tick.
type respawnQueue []respawnEntry

func (q respawnQueue) Len() int            { return len(q) }
func (q respawnQueue) Less(i, j int) bool  { return q[i].readyAt.Before(q[j].readyAt) }
func (q respawnQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *respawnQueue) Push(x interface{}) { *q = append(*q, x.(respawnEntry)) }

func (q *respawnQueue) Pop() interface{} {
	old := *q
	n := len(old)
	e := old[n-1]
	*q = old[:n-1]
	return e
}

func (q *respawnQueue) schedule(id string, readyAt time.Time, gen uint64) {
	heap.Push(q, respawnEntry{readyAt: readyAt, id: id, gen: gen})
}

// ready pops every entry due at or before now.
func (q *respawnQueue) ready(now time.Time) []respawnEntry {
	var due []respawnEntry
	for q.Len() > 0 && !(*q)[0].readyAt.After(now) {
		due = append(due, heap.Pop(q).(respawnEntry))
	}
	return due
}

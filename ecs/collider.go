package ecs

import (
	"github.com/phanxgames/region"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// Collider is the Donburi component type for an entity's collision region.
// Get returns a pointer into the world's storage, so edits made through it
// are visible to later queries.
var Collider = donburi.NewComponentType[region.Region]()

// HitEvent is published for each entity whose collider covers a hit-tested
// point.
type HitEvent struct {
	Entity donburi.Entity
	X, Y   float64
}

// HitEventType is the Donburi event type for collider hits.
// Subscribe to this in your ECS systems to receive them.
var HitEventType = events.NewEventType[HitEvent]()

var colliders = donburi.NewQuery(filter.Contains(Collider))

// AddCollider creates an entity with a Collider holding rects.
func AddCollider(world donburi.World, rects []region.Rectangle) donburi.Entity {
	e := world.Create(Collider)
	SetCollider(world.Entry(e), rects)
	return e
}

// SetCollider replaces the entry's collision region with rects.
func SetCollider(entry *donburi.Entry, rects []region.Rectangle) {
	Collider.SetValue(entry, *region.NewRegion(rects))
}

// HitTest publishes a HitEvent for every entity whose collider covers the
// pixel under (x, y) and returns those entities. Events are queued until
// HitEventType.ProcessEvents runs.
func HitTest(world donburi.World, x, y float64) []donburi.Entity {
	var hits []donburi.Entity
	colliders.Each(world, func(entry *donburi.Entry) {
		if !(region.HitRegion{Region: Collider.Get(entry)}).Contains(x, y) {
			return
		}
		hits = append(hits, entry.Entity())
		HitEventType.Publish(world, HitEvent{Entity: entry.Entity(), X: x, Y: y})
	})
	return hits
}

// Overlapping returns the entities whose collider has pixels inside r.
func Overlapping(world donburi.World, r region.Rectangle) []donburi.Entity {
	var out []donburi.Entity
	colliders.Each(world, func(entry *donburi.Entry) {
		if Collider.Get(entry).Intersects(r) {
			out = append(out, entry.Entity())
		}
	})
	return out
}

// Blocked reports whether some single collider covers every pixel of r.
func Blocked(world donburi.World, r region.Rectangle) bool {
	blocked := false
	colliders.Each(world, func(entry *donburi.Entry) {
		if !blocked && Collider.Get(entry).Contains(r) {
			blocked = true
		}
	})
	return blocked
}

// Package ecs attaches regions to [Donburi] entities as collision shapes.
//
// [Collider] is a component holding a region.Region in entity-local pixel
// coordinates. [HitTest] and [Overlapping] query every collider in a world,
// and HitTest publishes a [HitEvent] per hit entity to [HitEventType].
//
// Usage:
//
//	e := ecs.AddCollider(world, []region.Rectangle{{X: 0, Y: 0, Width: 16, Height: 16}})
//	ecs.HitEventType.Subscribe(world, onHit)
//	ecs.HitTest(world, mouseX, mouseY)
//	ecs.HitEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

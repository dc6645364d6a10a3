// Package region stores pixel-precision 2D areas as sets of integer
// rectangles, for collision layers in tile-based map editors.
//
// # Rectangles
//
// A [Rectangle] covers the half-open pixel range [X, X+Width) x [Y, Y+Height).
// Rectangles with a non-positive width or height are degenerate: they cover
// nothing and are never stored by editing operations.
//
// # Regions
//
// A [Region] is an unordered collection of rectangles whose union is the
// area. Members may overlap; [Region.Add] drops members the new rectangle
// covers, but otherwise no normalization is done. The representation is
// deliberately simple so it can be persisted as a plain rectangle list and
// read back with [NewRegion]:
//
//	reg := region.NewRegion(saved)
//	reg.Add(region.NewRectangle(0, 0, 32, 16))
//	reg.Subtract(region.NewRectangle(8, 0, 8, 8))
//	reg.Area()              // 448
//	reg.ContainsPoint(9, 3) // false
//
// [Region.Contains] and [Region.Area] are exact: they sweep a vertical line
// across the members (coordinate compression) so overlaps are never double
// counted. Both are quadratic in the member count, which is fine for the
// hand-edited regions they are meant for.
//
// # Collision layers
//
// [CollisionLayer] maps editor actions onto a region: Paint adds, Erase
// subtracts and Toggle xors. [CollisionMap] stacks layers for hit-testing,
// and [FromTileGrid] converts tile data into rectangles.
//
// # Tooling
//
// [DrawRegion] renders a region as an [Ebitengine] overlay, [TweenOffset]
// slides it with [gween] easing, and [EditScript] replays YAML edit scripts
// with expectations, which doubles as a regression format. The termview
// subpackage renders regions with tcell, and the ecs module attaches them to
// [Donburi] entities.
//
// # Debug mode
//
// [SetDebug] turns on validity checks that panic on degenerate rectangles,
// and prints every edit and sweep to stderr. Install a [Tracer] with
// [Region.SetTracer] to route edits elsewhere.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package region

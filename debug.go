package region

import (
	"fmt"
	"os"
)

// debug enables invariant assertions and stderr tracing for every Region.
var debug bool

// SetDebug turns debug mode on or off. In debug mode degenerate rectangles
// passed to Add or NewRegion panic instead of being stored, mutations are
// traced to stderr unless a Tracer is installed, and every area sweep
// reports its statistics.
func SetDebug(on bool) {
	debug = on
}

// DebugMode reports whether debug mode is enabled.
func DebugMode() bool {
	return debug
}

// Tracer observes Region mutations. op is the operation name ("add",
// "subtract", "xor", "intersect", "move", "clear"), r its argument (the
// offset for "move") and size the member count afterwards.
type Tracer func(op string, r Rectangle, size int)

// trace reports a finished mutation to the installed tracer, or to stderr in
// debug mode.
func (reg *Region) trace(op string, r Rectangle) {
	if reg.tracer != nil {
		reg.tracer(op, r, len(reg.rects))
		return
	}
	if debug {
		_, _ = fmt.Fprintf(os.Stderr, "[region] %s %v | members: %d\n", op, r, len(reg.rects))
	}
}

// sweepStats holds per-sweep metrics. Only populated when debug is true.
type sweepStats struct {
	events    int
	slabs     int
	maxActive int
}

// debugLogSweep prints sweep metrics to stderr.
func debugLogSweep(stats sweepStats) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[region] sweep: events: %d | slabs: %d | max active: %d\n",
		stats.events, stats.slabs, stats.maxActive)
}

// debugCheckRect panics with a descriptive message when a degenerate
// rectangle is about to be stored.
func debugCheckRect(r Rectangle, op string) {
	if !r.IsValid() {
		panic(fmt.Sprintf("region debug: %s with degenerate rectangle %v", op, r))
	}
}

// debugMaxMembers is where the quadratic sweep stops being editor-friendly.
const debugMaxMembers = 1000

// debugCheckMemberCount warns once, when a region grows past debugMaxMembers.
func debugCheckMemberCount(reg *Region) {
	if len(reg.rects) == debugMaxMembers+1 {
		_, _ = fmt.Fprintf(os.Stderr, "[region] warning: %d members exceeds %d, area queries are quadratic\n",
			len(reg.rects), debugMaxMembers)
	}
}

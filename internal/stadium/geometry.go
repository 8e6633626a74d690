// README: Pure geometric helpers over the section layout.
package stadium

import "math"

// Unreachable is the distance reported when either section is unknown.
// Orders at unreachable sections must never pass a proximity filter.
const Unreachable = math.MaxInt32

const (
	// sectionWidthDeg is the angular width of one section.
	sectionWidthDeg = 18.0
	// adjacency reaches two sections to either side.
	adjacentMaxDeg = 2 * sectionWidthDeg
	// average walking speed inside the concourse, meters per second.
	walkingSpeedMS = 1.4
	// fixed buffer for finding the seat and handing off.
	handlingMinutes = 2
)

// Distance returns the chord distance in whole meters between two
// sections, via the law of cosines over their angular difference.
// Symmetric, and zero for a section to itself.
func Distance(a, b string) int {
	ca, ok := sectionIndex[a]
	if !ok {
		return Unreachable
	}
	cb, ok := sectionIndex[b]
	if !ok {
		return Unreachable
	}
	delta := math.Abs(ca.AngleDeg-cb.AngleDeg) * math.Pi / 180
	d := math.Sqrt(ca.Radius*ca.Radius + cb.Radius*cb.Radius - 2*ca.Radius*cb.Radius*math.Cos(delta))
	return int(math.Round(d))
}

// SectionsWithinRadius returns every section other than target whose
// distance to target is at most maxMeters, in table order.
func SectionsWithinRadius(target string, maxMeters int) []string {
	var out []string
	for _, s := range sections {
		if s.Section == target {
			continue
		}
		if Distance(target, s.Section) <= maxMeters {
			out = append(out, s.Section)
		}
	}
	return out
}

// AreAdjacent reports whether two sections are within two section
// widths of each other along the ring. Uses angle only, taking the
// shorter arc so section 120 wraps around to 101.
func AreAdjacent(a, b string) bool {
	ca, ok := sectionIndex[a]
	if !ok {
		return false
	}
	cb, ok := sectionIndex[b]
	if !ok {
		return false
	}
	diff := math.Abs(ca.AngleDeg - cb.AngleDeg)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff <= adjacentMaxDeg
}

// NearestRoute orders sections as a greedy nearest-neighbor tour.
// The tour begins at start when given (start leads the returned route),
// otherwise at the first listed section. Ties go to the earliest
// remaining section, so the result is deterministic for a given input.
func NearestRoute(visit []string, start string) []string {
	if len(visit) == 0 {
		return nil
	}
	remaining := make([]string, 0, len(visit))
	for _, s := range visit {
		if s != start {
			remaining = append(remaining, s)
		}
	}

	current := start
	if current == "" {
		current = remaining[0]
		remaining = remaining[1:]
	}

	route := make([]string, 0, len(remaining)+1)
	route = append(route, current)
	for len(remaining) > 0 {
		nearest := 0
		nearestDist := Distance(current, remaining[0])
		for i := 1; i < len(remaining); i++ {
			if d := Distance(current, remaining[i]); d < nearestDist {
				nearestDist = d
				nearest = i
			}
		}
		current = remaining[nearest]
		route = append(route, current)
		remaining = append(remaining[:nearest], remaining[nearest+1:]...)
	}
	return route
}

// EstimateTravelMinutes estimates the walk between two sections plus
// the fixed handling buffer, rounded up to whole minutes.
func EstimateTravelMinutes(from, to string) int {
	d := Distance(from, to)
	if d == Unreachable {
		return Unreachable
	}
	walking := float64(d) / walkingSpeedMS / 60
	return int(math.Ceil(walking + handlingMinutes))
}

// README: Static stadium layout; sections as polar coordinates on one ring.
package stadium

// SectionCoord places a seating section on the stadium ring.
type SectionCoord struct {
	Section  string  `json:"section"`
	AngleDeg float64 `json:"angleDeg"`
	Radius   float64 `json:"radius"`
}

// Twenty lower-bowl sections, 18 degrees apart, all on the same ring.
var sections = []SectionCoord{
	{Section: "101", AngleDeg: 0, Radius: 50},
	{Section: "102", AngleDeg: 18, Radius: 50},
	{Section: "103", AngleDeg: 36, Radius: 50},
	{Section: "104", AngleDeg: 54, Radius: 50},
	{Section: "105", AngleDeg: 72, Radius: 50},
	{Section: "106", AngleDeg: 90, Radius: 50},
	{Section: "107", AngleDeg: 108, Radius: 50},
	{Section: "108", AngleDeg: 126, Radius: 50},
	{Section: "109", AngleDeg: 144, Radius: 50},
	{Section: "110", AngleDeg: 162, Radius: 50},
	{Section: "111", AngleDeg: 180, Radius: 50},
	{Section: "112", AngleDeg: 198, Radius: 50},
	{Section: "113", AngleDeg: 216, Radius: 50},
	{Section: "114", AngleDeg: 234, Radius: 50},
	{Section: "115", AngleDeg: 252, Radius: 50},
	{Section: "116", AngleDeg: 270, Radius: 50},
	{Section: "117", AngleDeg: 288, Radius: 50},
	{Section: "118", AngleDeg: 306, Radius: 50},
	{Section: "119", AngleDeg: 324, Radius: 50},
	{Section: "120", AngleDeg: 342, Radius: 50},
}

var sectionIndex = buildIndex()

func buildIndex() map[string]SectionCoord {
	idx := make(map[string]SectionCoord, len(sections))
	for _, s := range sections {
		idx[s.Section] = s
	}
	return idx
}

// Coordinates returns the coordinates for a section, if it exists.
func Coordinates(section string) (SectionCoord, bool) {
	c, ok := sectionIndex[section]
	return c, ok
}

// Sections returns the full layout in table order.
func Sections() []SectionCoord {
	out := make([]SectionCoord, len(sections))
	copy(out, sections)
	return out
}

package reference

// Icon tags understood by directory clients. Tags travel as plain strings on
// the wire; resolution is total, so an unknown tag always maps to a default
// instead of a missing-key fault.
const (
	IconBuilding  = "building"
	IconBuilding2 = "building-2"
	IconSchool    = "school"
	IconWaves     = "waves"
	IconDumbbell  = "dumbbell"
	IconBike      = "bike"
	IconCircleDot = "circle-dot"
	IconBookOpen  = "book-open"
	IconActivity  = "activity"
)

// IconKind distinguishes the two icon namespaces
type IconKind int

const (
	CenterIcon IconKind = iota
	CategoryIcon
)

var knownIcons = map[string]bool{
	IconBuilding:  true,
	IconBuilding2: true,
	IconSchool:    true,
	IconWaves:     true,
	IconDumbbell:  true,
	IconBike:      true,
	IconCircleDot: true,
	IconBookOpen:  true,
	IconActivity:  true,
}

// ResolveIcon maps an icon tag to a renderable tag for the given kind.
// Unknown tags fall back to the kind's default.
func ResolveIcon(kind IconKind, tag string) string {
	if knownIcons[tag] {
		return tag
	}
	if kind == CategoryIcon {
		return IconActivity
	}
	return IconBuilding2
}

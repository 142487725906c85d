// Package reference holds the static facility/category configuration. The
// tables are fixed input: their order is the display order across every
// screen, and the name strings are the join keys used by filtering.
package reference

// Center is a physical venue offering classes
type Center struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// Category is a discipline offered at a subset of centers
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Centers lists every facility in display priority order
var Centers = []Center{
	{ID: "center4", Name: "문화체육센터", Icon: IconBuilding2, Address: "용산구 백범로 350", Phone: "02-707-2494"},
	{ID: "center2", Name: "용산청소년센터", Icon: IconSchool, Address: "용산구 이촌로71길 24", Phone: "070-4906-2606"},
	{ID: "center1", Name: "꿈나무종합타운", Icon: IconBuilding2, Address: "용산구 백범로 329", Phone: "02-707-0704"},
	{ID: "center5", Name: "이태원초등학교수영장", Icon: IconWaves, Address: "용산구 녹사평대로 40길 19", Phone: "02-797-2492"},
	{ID: "center6", Name: "한강로피트니스센터", Icon: IconDumbbell, Address: "용산구 서빙고로17 지하1층", Phone: "02-798-5019"},
	{ID: "center3", Name: "원효로다목적체육관", Icon: IconBuilding, Address: "용산구 원효로3가 51-26", Phone: "02-707-2492"},
}

// Categories lists every discipline in display priority order
var Categories = []Category{
	{ID: "cat1", Name: "수영", Icon: IconWaves},
	{ID: "cat2", Name: "헬스", Icon: IconDumbbell},
	{ID: "cat3", Name: "생활체육", Icon: IconBike},
	{ID: "cat4", Name: "기구필라테스", Icon: IconCircleDot},
	{ID: "cat5", Name: "문화강좌", Icon: IconBookOpen},
	{ID: "cat6", Name: "서킷핏", Icon: IconActivity},
}

// centerCategoryNames maps a center display name to the disciplines it offers
var centerCategoryNames = map[string][]string{
	"꿈나무종합타운":    {"생활체육", "문화강좌"},
	"용산청소년센터":    {"수영", "헬스", "생활체육", "문화강좌"},
	"원효로다목적체육관":  {"생활체육"},
	"문화체육센터":     {"수영", "헬스", "생활체육", "기구필라테스", "문화강좌"},
	"이태원초등학교수영장": {"수영", "서킷핏", "기구필라테스"},
	"한강로피트니스센터":  {"헬스", "생활체육", "기구필라테스"},
}

// CategoriesForCenter returns the categories offered at the named center, in
// the global category display order and with resolved icon tags. Unknown
// centers yield an empty list.
func CategoriesForCenter(centerName string) []Category {
	names := centerCategoryNames[centerName]
	if len(names) == 0 {
		return []Category{}
	}
	offered := make(map[string]bool, len(names))
	for _, n := range names {
		offered[n] = true
	}
	out := make([]Category, 0, len(names))
	for _, c := range Categories {
		if offered[c.Name] {
			c.Icon = ResolveIcon(CategoryIcon, c.Icon)
			out = append(out, c)
		}
	}
	return out
}

// DisplayCenters returns the center table with every icon tag passed through
// resolution, so clients never see a tag they cannot render.
func DisplayCenters() []Center {
	out := make([]Center, len(Centers))
	for i, c := range Centers {
		c.Icon = ResolveIcon(CenterIcon, c.Icon)
		out[i] = c
	}
	return out
}

// DisplayCategories returns the category table with resolved icon tags
func DisplayCategories() []Category {
	out := make([]Category, len(Categories))
	for i, c := range Categories {
		c.Icon = ResolveIcon(CategoryIcon, c.Icon)
		out[i] = c
	}
	return out
}

// CenterNames returns the center display names in display priority order
func CenterNames() []string {
	out := make([]string, len(Centers))
	for i, c := range Centers {
		out[i] = c.Name
	}
	return out
}

// CategoryNames returns the category display names in display priority order
func CategoryNames() []string {
	out := make([]string, len(Categories))
	for i, c := range Categories {
		out[i] = c.Name
	}
	return out
}

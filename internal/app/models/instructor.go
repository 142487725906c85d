package models

// Gender is the optional gender marker on an instructor record
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Instructor describes one instructor's assignment at a center, based on the
// 'instructors' document collection
type Instructor struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	CurrentCenter   string   `json:"currentCenter"`
	Category        string   `json:"category"`
	Position        string   `json:"position"`
	ImageURL        *string  `json:"imageUrl,omitempty"`
	Gender          *Gender  `json:"gender,omitempty"`
	AssignedClasses []string `json:"assignedClasses"`
	Licenses        []string `json:"licenses"`
	Career          []string `json:"career"`
}

// CoerceInstructor maps an untrusted stored field bag into a well-typed
// record. It never fails: missing or mistyped fields fall back to zero
// values, so partially written or legacy documents still load.
func CoerceInstructor(id string, fields map[string]any) Instructor {
	inst := Instructor{
		ID:              id,
		Name:            stringField(fields, "name"),
		CurrentCenter:   stringField(fields, "currentCenter"),
		Category:        stringField(fields, "category"),
		Position:        stringField(fields, "position"),
		AssignedClasses: stringSliceField(fields, "assignedClasses"),
		Licenses:        stringSliceField(fields, "licenses"),
		Career:          stringSliceField(fields, "career"),
	}

	if s, ok := fields["imageUrl"].(string); ok {
		inst.ImageURL = &s
	}

	// Only the two recognized literals survive; anything else means "not shown"
	if s, ok := fields["gender"].(string); ok {
		if g := Gender(s); g == GenderMale || g == GenderFemale {
			inst.Gender = &g
		}
	}

	return inst
}

// Document builds the stored field bag for this record. Absent optional
// fields are written as explicit nulls so an overwrite clears any prior
// value instead of leaving it stale.
func (i Instructor) Document() map[string]any {
	doc := map[string]any{
		"name":            i.Name,
		"currentCenter":   i.CurrentCenter,
		"category":        i.Category,
		"position":        i.Position,
		"imageUrl":        nil,
		"gender":          nil,
		"assignedClasses": nonNil(i.AssignedClasses),
		"licenses":        nonNil(i.Licenses),
		"career":          nonNil(i.Career),
	}
	if i.ImageURL != nil {
		doc["imageUrl"] = *i.ImageURL
	}
	if i.Gender != nil {
		doc["gender"] = string(*i.Gender)
	}
	return doc
}

func stringField(fields map[string]any, key string) string {
	if s, ok := fields[key].(string); ok {
		return s
	}
	return ""
}

// stringSliceField keeps the field only when the stored value is an ordered
// sequence; scalars and keyed bags collapse to an empty slice. Elements are
// trusted to be strings.
func stringSliceField(fields map[string]any, key string) []string {
	raw, ok := fields[key].([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(raw))
	for _, el := range raw {
		if s, ok := el.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

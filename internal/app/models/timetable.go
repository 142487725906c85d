package models

// TimetableURLEntry associates one (center, category) pair with an external
// timetable link
type TimetableURLEntry struct {
	CenterName   string `json:"centerName"`
	CategoryName string `json:"categoryName"`
	URL          string `json:"url"`
}

// TimetableDocID derives the composite document key for a (center, category)
// pair. The store keys on a single string, so the pair is joined with an
// underscore; the pair is unique by construction.
func TimetableDocID(centerName, categoryName string) string {
	return centerName + "_" + categoryName
}

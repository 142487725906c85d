package dto

// SetTimetableURLRequest carries the external link for one (center, category)
// pair. Surrounding whitespace is trimmed before storage.
type SetTimetableURLRequest struct {
	URL string `json:"url" binding:"required"`
}

// TimetableURLResponse is the point-lookup result
type TimetableURLResponse struct {
	CenterName   string `json:"centerName"`
	CategoryName string `json:"categoryName"`
	URL          string `json:"url"`
}

package dto

import "github.com/yongsanfmc/instructor-directory/internal/app/models"

// SaveInstructorRequest carries one full instructor record for upsert.
// An empty id means "create": the service assigns one.
type SaveInstructorRequest struct {
	ID              string   `json:"id"`
	Name            string   `json:"name" binding:"required"`
	CurrentCenter   string   `json:"currentCenter" binding:"required"`
	Category        string   `json:"category" binding:"required"`
	Position        string   `json:"position" binding:"required"`
	ImageURL        *string  `json:"imageUrl"`
	Gender          *string  `json:"gender" binding:"omitempty,oneof=male female"`
	AssignedClasses []string `json:"assignedClasses"`
	Licenses        []string `json:"licenses"`
	Career          []string `json:"career"`
}

// ToModel converts the request into an instructor record
func (r SaveInstructorRequest) ToModel() models.Instructor {
	inst := models.Instructor{
		ID:              r.ID,
		Name:            r.Name,
		CurrentCenter:   r.CurrentCenter,
		Category:        r.Category,
		Position:        r.Position,
		ImageURL:        r.ImageURL,
		AssignedClasses: r.AssignedClasses,
		Licenses:        r.Licenses,
		Career:          r.Career,
	}
	if r.Gender != nil {
		g := models.Gender(*r.Gender)
		inst.Gender = &g
	}
	return inst
}

// InstructorResponse decorates a record with its localized gender label
type InstructorResponse struct {
	models.Instructor
	GenderLabel string `json:"genderLabel,omitempty"`
}

// InstructorListResponse is the filtered/searched directory listing
type InstructorListResponse struct {
	Count       int                  `json:"count"`
	Instructors []InstructorResponse `json:"instructors"`
}

package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all repository instances
type Repositories struct {
	Instructor *InstructorRepository
	Timetable  *TimetableRepository
	Admin      *AdminRepository
	Token      *TokenRepository
}

// NewRepositories creates a new Repositories instance with all repositories
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Instructor: NewInstructorRepository(pool),
		Timetable:  NewTimetableRepository(pool),
		Admin:      NewAdminRepository(pool),
		Token:      NewTokenRepository(pool),
	}
}

package models

import "time"

// RoleAdmin is the single privileged role of the console
const RoleAdmin = "ADMIN"

// Admin represents a console administrator account
type Admin struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

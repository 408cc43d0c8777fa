package domain

import "time"

// User models a registered account. The password only ever exists here as a
// bcrypt hash; the raw value never leaves the auth service.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

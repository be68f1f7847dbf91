package entity

import "time"

// User is the aggregate root for the user domain.
// Password holds a bcrypt hash, never plain text.
type User struct {
	ID         string
	Email      string
	Password   string
	Name       string
	IsVerified bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

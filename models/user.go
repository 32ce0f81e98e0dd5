package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Passwords are stored as bcrypt hashes and
// never serialized.
type User struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Username  string    `json:"username" db:"username" gorm:"type:text;not null;unique"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null;unique"`
	Password  string    `json:"-" db:"password" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
}

// UserRef is the displayable subset of a user embedded in populated
// responses (the "author"/"user" field of posts, comments and projects).
type UserRef struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// Ref returns the displayable subset of u.
func (u User) Ref() UserRef {
	return UserRef{ID: u.ID, Username: u.Username}
}

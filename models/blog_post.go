package models

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost represents a blog post authored by a user
type BlogPost struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title     string    `json:"title" db:"title" gorm:"type:text;not null"`
	Content   string    `json:"content" db:"content" gorm:"type:text;not null"`
	AuthorID  uuid.UUID `json:"-" db:"author_id" gorm:"type:uuid;not null;index:idx_blog_post_author"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"not null"`

	// Author is resolved by population, never stored on the row.
	Author *UserRef `json:"author,omitempty" gorm:"-"`
}

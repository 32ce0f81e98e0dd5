package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment represents a comment left on a blog post. Comments are only ever
// removed by the cascade when their parent post is deleted.
type Comment struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Body      string    `json:"body" db:"body" gorm:"type:text;not null"`
	AuthorID  uuid.UUID `json:"-" db:"author_id" gorm:"type:uuid;not null"`
	PostID    uuid.UUID `json:"post" db:"post_id" gorm:"type:uuid;not null;index:idx_comment_post"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"not null"`

	Author *UserRef `json:"author,omitempty" gorm:"-"`
}

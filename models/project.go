package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a portfolio project owned by a user. The three link
// fields are nullable so that clearing them is distinguishable from never
// having set them.
type Project struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	ImageURL    *string   `json:"imageUrl,omitempty" db:"image_url" gorm:"type:text"`
	RepoURL     *string   `json:"repoUrl,omitempty" db:"repo_url" gorm:"type:text"`
	LiveURL     *string   `json:"liveUrl,omitempty" db:"live_url" gorm:"type:text"`
	UserID      uuid.UUID `json:"-" db:"user_id" gorm:"type:uuid;not null;index:idx_project_user"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"not null"`

	User *UserRef `json:"user,omitempty" gorm:"-"`
}

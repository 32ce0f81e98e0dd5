package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-backend/errs"
	"portfolio-backend/models"
)

type MessageRepo struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) *MessageRepo {
	return &MessageRepo{db}
}

// FindAll returns all contact messages, newest first.
func (r *MessageRepo) FindAll() ([]*models.Message, error) {
	messages := make([]*models.Message, 0)
	err := r.db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

// Add inserts a new contact message.
func (r *MessageRepo) Add(message *models.Message) error {
	switch {
	case message.Name == "":
		return errs.NewValidationError("Message", "name")
	case message.Email == "":
		return errs.NewValidationError("Message", "email")
	case message.Message == "":
		return errs.NewValidationError("Message", "message")
	}

	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	return r.db.Create(message).Error
}

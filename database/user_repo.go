package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-backend/errs"
	"portfolio-backend/models"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// FindByID returns a user by id, or nil if no row matches.
func (r *UserRepo) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail returns a user by email, or nil if no row matches.
func (r *UserRepo) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindRefsByIDs returns the displayable subset of the given users, keyed
// by id. Used by the population step; unknown ids are simply absent.
func (r *UserRepo) FindRefsByIDs(ids []uuid.UUID) (map[uuid.UUID]models.UserRef, error) {
	refs := make(map[uuid.UUID]models.UserRef, len(ids))
	if len(ids) == 0 {
		return refs, nil
	}

	var users []models.User
	if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, user := range users {
		refs[user.ID] = user.Ref()
	}
	return refs, nil
}

// Add inserts a new user. Required fields are enforced here, surfacing as
// a validation failure rather than a driver error.
func (r *UserRepo) Add(user *models.User) error {
	switch {
	case user.Username == "":
		return errs.NewValidationError("User", "username")
	case user.Email == "":
		return errs.NewValidationError("User", "email")
	case user.Password == "":
		return errs.NewValidationError("User", "password")
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return r.db.Create(user).Error
}

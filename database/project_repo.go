package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-backend/errs"
	"portfolio-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects, newest first.
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	projects := make([]*models.Project, 0)
	err := r.db.Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// FindByID returns a project by id, or nil if no row matches.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project.
func (r *ProjectRepo) Add(project *models.Project) error {
	switch {
	case project.Title == "":
		return errs.NewValidationError("Project", "title")
	case project.Description == "":
		return errs.NewValidationError("Project", "description")
	case project.UserID == uuid.Nil:
		return errs.NewValidationError("Project", "user")
	}

	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	return r.db.Create(project).Error
}

// Update persists the full project row. Last write wins.
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project by id.
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}

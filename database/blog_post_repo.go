package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-backend/errs"
	"portfolio-backend/models"
)

type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

// FindAll returns all blog posts, newest first.
func (r *BlogPostRepo) FindAll() ([]*models.BlogPost, error) {
	posts := make([]*models.BlogPost, 0)
	err := r.db.Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// FindByID returns a blog post by id, or nil if no row matches.
func (r *BlogPostRepo) FindByID(id uuid.UUID) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Add inserts a new blog post. Required fields are enforced here so the
// failure surfaces to the handler as a validation error.
func (r *BlogPostRepo) Add(post *models.BlogPost) error {
	switch {
	case post.Title == "":
		return errs.NewValidationError("BlogPost", "title")
	case post.Content == "":
		return errs.NewValidationError("BlogPost", "content")
	case post.AuthorID == uuid.Nil:
		return errs.NewValidationError("BlogPost", "author")
	}

	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	return r.db.Create(post).Error
}

// Update persists the full post row. Last write wins.
func (r *BlogPostRepo) Update(post *models.BlogPost) error {
	return r.db.Save(post).Error
}

// Delete removes a blog post by id. Comments referencing the post are the
// caller's responsibility; see CommentRepo.DeleteByPostID.
func (r *BlogPostRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.BlogPost{}, "id = ?", id).Error
}

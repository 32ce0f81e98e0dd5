package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-backend/errs"
	"portfolio-backend/models"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// FindByPostID returns all comments on a post, newest first. An unknown
// post id yields an empty slice, not an error.
func (r *CommentRepo) FindByPostID(postID uuid.UUID) ([]*models.Comment, error) {
	comments := make([]*models.Comment, 0)
	err := r.db.Where("post_id = ?", postID).Order("created_at DESC").Find(&comments).Error
	return comments, err
}

// FindByID returns a comment by id, or nil if no row matches.
func (r *CommentRepo) FindByID(id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.First(&comment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Add inserts a new comment.
func (r *CommentRepo) Add(comment *models.Comment) error {
	switch {
	case comment.Body == "":
		return errs.NewValidationError("Comment", "body")
	case comment.AuthorID == uuid.Nil:
		return errs.NewValidationError("Comment", "author")
	case comment.PostID == uuid.Nil:
		return errs.NewValidationError("Comment", "post")
	}

	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	return r.db.Create(comment).Error
}

// DeleteByPostID removes every comment referencing the given post. Run
// before the post itself is deleted so no orphans survive the cascade.
func (r *CommentRepo) DeleteByPostID(postID uuid.UUID) error {
	return r.db.Where("post_id = ?", postID).Delete(&models.Comment{}).Error
}

package api

import (
	"github.com/google/uuid"

	"portfolio-backend/database"
	"portfolio-backend/models"
)

// Population resolves author/user reference fields into the referenced
// user's displayable subset. It is a deliberate post-query step rather
// than a join so the enrichment stays visible and testable.

func populatePostAuthors(userRepo *database.UserRepo, posts []*models.BlogPost) error {
	ids := make([]uuid.UUID, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.AuthorID)
	}

	refs, err := userRepo.FindRefsByIDs(ids)
	if err != nil {
		return err
	}

	for _, post := range posts {
		if ref, ok := refs[post.AuthorID]; ok {
			post.Author = &ref
		}
	}
	return nil
}

func populateCommentAuthors(userRepo *database.UserRepo, comments []*models.Comment) error {
	ids := make([]uuid.UUID, 0, len(comments))
	for _, comment := range comments {
		ids = append(ids, comment.AuthorID)
	}

	refs, err := userRepo.FindRefsByIDs(ids)
	if err != nil {
		return err
	}

	for _, comment := range comments {
		if ref, ok := refs[comment.AuthorID]; ok {
			comment.Author = &ref
		}
	}
	return nil
}

func populateProjectUsers(userRepo *database.UserRepo, projects []*models.Project) error {
	ids := make([]uuid.UUID, 0, len(projects))
	for _, project := range projects {
		ids = append(ids, project.UserID)
	}

	refs, err := userRepo.FindRefsByIDs(ids)
	if err != nil {
		return err
	}

	for _, project := range projects {
		if ref, ok := refs[project.UserID]; ok {
			project.User = &ref
		}
	}
	return nil
}

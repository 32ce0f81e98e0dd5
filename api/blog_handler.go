package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"portfolio-backend/database"
	"portfolio-backend/errs"
	"portfolio-backend/models"
)

type blogHandler struct {
	responder   Responder
	logger      zerolog.Logger
	blogRepo    *database.BlogPostRepo
	commentRepo *database.CommentRepo
	userRepo    *database.UserRepo
}

func newBlogHandler(blogRepo *database.BlogPostRepo, commentRepo *database.CommentRepo, userRepo *database.UserRepo) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		blogRepo:    blogRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
	}
}

type blogPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type commentRequest struct {
	Body string `json:"body"`
}

// BlogPostWithComments is the single-post response: the post's own fields
// with its comments inlined.
type BlogPostWithComments struct {
	models.BlogPost
	Comments []*models.Comment `json:"comments"`
}

// getBlogPosts returns all blog posts, newest first, with populated
// authors. Public; unpaginated.
func (h blogHandler) getBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.blogRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog posts", err))
			return
		}

		if err := populatePostAuthors(h.userRepo, posts); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("populate", "blog posts", err))
			return
		}

		h.responder.WriteJSON(w, posts)
	}
}

// getBlogPost returns a single post together with its comments, both with
// populated authors. Public.
func (h blogHandler) getBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := uuid.Parse(chi.URLParam(r, "postID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid post id"))
			return
		}

		post, err := h.blogRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog post", err))
			return
		}
		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Blog post not found"))
			return
		}

		comments, err := h.commentRepo.FindByPostID(post.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "comments", err))
			return
		}

		if err := populatePostAuthors(h.userRepo, []*models.BlogPost{post}); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("populate", "blog post", err))
			return
		}
		if err := populateCommentAuthors(h.userRepo, comments); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("populate", "comments", err))
			return
		}

		h.responder.WriteJSON(w, BlogPostWithComments{BlogPost: *post, Comments: comments})
	}
}

// createBlogPost creates a post authored by the acting user. Required
// field checks are left to the persistence layer and surface as 400.
func (h blogHandler) createBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := ctxGetUser(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var req blogPostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		post := models.BlogPost{
			Title:    req.Title,
			Content:  req.Content,
			AuthorID: user.ID,
		}
		if err := h.blogRepo.Add(&post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "blog post", err))
			return
		}

		created, err := h.blogRepo.FindByID(post.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "blog post", err))
			return
		}
		if err := populatePostAuthors(h.userRepo, []*models.BlogPost{created}); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("populate", "blog post", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, created)
	}
}

// updateBlogPost applies a partial update, author only. Empty fields keep
// their stored values.
func (h blogHandler) updateBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := ctxGetUser(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		postID, err := uuid.Parse(chi.URLParam(r, "postID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid post id"))
			return
		}

		post, err := h.blogRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog post", err))
			return
		}
		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Blog post not found"))
			return
		}

		if post.AuthorID != user.ID {
			h.responder.WriteError(w, errs.NewForbiddenError("Not authorized to update this post"))
			return
		}

		var req blogPostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		post.Title = fallback(post.Title, req.Title)
		post.Content = fallback(post.Content, req.Content)

		if err := h.blogRepo.Update(post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "blog post", err))
			return
		}

		updated, err := h.blogRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "blog post", err))
			return
		}
		if err := populatePostAuthors(h.userRepo, []*models.BlogPost{updated}); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("populate", "blog post", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteBlogPost removes a post and all of its comments, author only. The
// comments go first; the two deletes are not atomic.
func (h blogHandler) deleteBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := ctxGetUser(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		postID, err := uuid.Parse(chi.URLParam(r, "postID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid post id"))
			return
		}

		post, err := h.blogRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog post", err))
			return
		}
		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Blog post not found"))
			return
		}

		if post.AuthorID != user.ID {
			h.responder.WriteError(w, errs.NewForbiddenError("Not authorized to delete this post"))
			return
		}

		if err := h.commentRepo.DeleteByPostID(post.ID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "comments", err))
			return
		}
		if err := h.blogRepo.Delete(post.ID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "blog post", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"message": "Blog post removed"})
	}
}

// getComments lists a post's comments, newest first. No existence check on
// the post: an unknown id yields an empty list.
func (h blogHandler) getComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := uuid.Parse(chi.URLParam(r, "postID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid post id"))
			return
		}

		comments, err := h.commentRepo.FindByPostID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "comments", err))
			return
		}

		if err := populateCommentAuthors(h.userRepo, comments); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("populate", "comments", err))
			return
		}

		h.responder.WriteJSON(w, comments)
	}
}

// createComment adds a comment on an existing post, authored by the acting
// user.
func (h blogHandler) createComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := ctxGetUser(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		postID, err := uuid.Parse(chi.URLParam(r, "postID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid post id"))
			return
		}

		post, err := h.blogRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog post", err))
			return
		}
		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Blog post not found"))
			return
		}

		var req commentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode comment request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		comment := models.Comment{
			Body:     req.Body,
			AuthorID: user.ID,
			PostID:   post.ID,
		}
		if err := h.commentRepo.Add(&comment); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "comment", err))
			return
		}

		created, err := h.commentRepo.FindByID(comment.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "comment", err))
			return
		}
		if err := populateCommentAuthors(h.userRepo, []*models.Comment{created}); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("populate", "comment", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, created)
	}
}

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

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	userRepo    *database.UserRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo, userRepo *database.UserRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// projectRequest carries the five writable project fields. The link fields
// keep track of whether they were present at all, so updates can tell
// "omitted" apart from "cleared".
type projectRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	ImageURL    OptionalString `json:"imageUrl"`
	RepoURL     OptionalString `json:"repoUrl"`
	LiveURL     OptionalString `json:"liveUrl"`
}

// getProjects returns all projects, newest first, with populated owners.
// Public; unpaginated.
func (h projectHandler) getProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		if err := populateProjectUsers(h.userRepo, projects); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("populate", "projects", err))
			return
		}

		h.responder.WriteJSON(w, projects)
	}
}

// getProject returns a single project with its populated owner. Public.
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid project id"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		if err := populateProjectUsers(h.userRepo, []*models.Project{project}); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("populate", "project", err))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a project owned by the acting user.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := ctxGetUser(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var req projectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		project := models.Project{
			Title:       req.Title,
			Description: req.Description,
			ImageURL:    req.ImageURL.Merge(nil),
			RepoURL:     req.RepoURL.Merge(nil),
			LiveURL:     req.LiveURL.Merge(nil),
			UserID:      user.ID,
		}
		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		created, err := h.projectRepo.FindByID(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "project", err))
			return
		}
		if err := populateProjectUsers(h.userRepo, []*models.Project{created}); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("populate", "project", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, created)
	}
}

// updateProject applies a partial update. Title and description keep their
// stored values when empty; the link fields are only kept when absent from
// the payload entirely. There is no ownership check on this route.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid project id"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		var req projectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		project.Title = fallback(project.Title, req.Title)
		project.Description = fallback(project.Description, req.Description)
		project.ImageURL = req.ImageURL.Merge(project.ImageURL)
		project.RepoURL = req.RepoURL.Merge(project.RepoURL)
		project.LiveURL = req.LiveURL.Merge(project.LiveURL)

		if err := h.projectRepo.Update(project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		updated, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "project", err))
			return
		}
		if err := populateProjectUsers(h.userRepo, []*models.Project{updated}); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("populate", "project", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteProject removes a project. Like updateProject, any authenticated
// user may do this; there is no ownership check.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid project id"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		if err := h.projectRepo.Delete(project.ID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"message": "Project removed"})
	}
}

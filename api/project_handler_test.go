package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/database"
	"portfolio-backend/models"
)

func addProject(t *testing.T, db database.Database, owner models.User, title string, imageURL *string, createdAt time.Time) models.Project {
	t.Helper()

	project := models.Project{
		Title:       title,
		Description: "a project",
		ImageURL:    imageURL,
		UserID:      owner.ID,
		CreatedAt:   createdAt,
	}
	require.NoError(t, db.ProjectRepo().Add(&project))
	return project
}

func strPtr(s string) *string {
	return &s
}

func TestGetProjects_NewestFirstWithOwners(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db)
	owner := createTestUser(t, db, "alice")

	base := time.Now().Add(-time.Hour)
	addProject(t, db, owner, "older", nil, base)
	addProject(t, db, owner, "newer", nil, base.Add(time.Minute))

	resp := doRequest(t, router, http.MethodGet, "/api/projects", nil, "")
	require.Equal(t, http.StatusOK, resp.Code)

	projects := decodeBody[[]map[string]any](t, resp)
	require.Len(t, projects, 2)
	assert.Equal(t, "newer", projects[0]["title"])
	assert.Equal(t, "older", projects[1]["title"])
	assert.Equal(t, "alice", projects[0]["user"].(map[string]any)["username"])
}

func TestGetProject_NotFound(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db)

	resp := doRequest(t, router, http.MethodGet, "/api/projects/"+uuid.NewString(), nil, "")
	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "Project not found", decodeBody[ErrorResponse](t, resp).Message)
}

func TestCreateProject_SetsActingUserAsOwner(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db)
	user := createTestUser(t, db, "alice")

	resp := doRequest(t, router, http.MethodPost, "/api/projects",
		map[string]string{
			"title":       "my project",
			"description": "does things",
			"repoUrl":     "https://github.com/alice/project",
		}, tokenFor(t, user))
	require.Equal(t, http.StatusCreated, resp.Code)

	body := decodeBody[map[string]any](t, resp)
	assert.Equal(t, "my project", body["title"])
	assert.Equal(t, "https://github.com/alice/project", body["repoUrl"])
	assert.Equal(t, "alice", body["user"].(map[string]any)["username"])

	stored, err := db.ProjectRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, user.ID, stored[0].UserID)
}

func TestCreateProject_RequiresAuth(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db)

	resp := doRequest(t, router, http.MethodPost, "/api/projects",
		map[string]string{"title": "x", "description": "y"}, "")
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestUpdateProject_AnyAuthenticatedUserMayUpdate(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db)
	owner := createTestUser(t, db, "alice")
	other := createTestUser(t, db, "bob")
	project := addProject(t, db, owner, "original", nil, time.Now())

	resp := doRequest(t, router, http.MethodPut, "/api/projects/"+project.ID.String(),
		map[string]string{"title": "renamed"}, tokenFor(t, other))
	require.Equal(t, http.StatusOK, resp.Code)

	updated, err := db.ProjectRepo().FindByID(project.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	// The owner reference never moves.
	assert.Equal(t, owner.ID, updated.UserID)
}

func TestUpdateProject_OptionalURLSemantics(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db)
	owner := createTestUser(t, db, "alice")
	token := tokenFor(t, owner)
	project := addProject(t, db, owner, "p", strPtr("https://img.example.com/a.png"), time.Now())

	// Omitting imageUrl preserves the stored value.
	resp := doRequest(t, router, http.MethodPut, "/api/projects/"+project.ID.String(),
		`{"title":"p2"}`, token)
	require.Equal(t, http.StatusOK, resp.Code)

	stored, err := db.ProjectRepo().FindByID(project.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ImageURL)
	assert.Equal(t, "https://img.example.com/a.png", *stored.ImageURL)

	// Sending an empty string overwrites it.
	resp = doRequest(t, router, http.MethodPut, "/api/projects/"+project.ID.String(),
		`{"imageUrl":""}`, token)
	require.Equal(t, http.StatusOK, resp.Code)

	stored, err = db.ProjectRepo().FindByID(project.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ImageURL)
	assert.Equal(t, "", *stored.ImageURL)

	// Sending null clears it entirely.
	resp = doRequest(t, router, http.MethodPut, "/api/projects/"+project.ID.String(),
		`{"liveUrl":null,"imageUrl":null}`, token)
	require.Equal(t, http.StatusOK, resp.Code)

	stored, err = db.ProjectRepo().FindByID(project.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.ImageURL)
	assert.Nil(t, stored.LiveURL)
}

func TestUpdateProject_EmptyTextFieldsKeepStoredValues(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db)
	owner := createTestUser(t, db, "alice")
	project := addProject(t, db, owner, "keep me", nil, time.Now())

	resp := doRequest(t, router, http.MethodPut, "/api/projects/"+project.ID.String(),
		`{"title":"","description":"updated"}`, tokenFor(t, owner))
	require.Equal(t, http.StatusOK, resp.Code)

	stored, err := db.ProjectRepo().FindByID(project.ID)
	require.NoError(t, err)
	assert.Equal(t, "keep me", stored.Title)
	assert.Equal(t, "updated", stored.Description)
}

func TestDeleteProject_AnyAuthenticatedUserMayDelete(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db)
	owner := createTestUser(t, db, "alice")
	other := createTestUser(t, db, "bob")
	project := addProject(t, db, owner, "doomed", nil, time.Now())

	resp := doRequest(t, router, http.MethodDelete, "/api/projects/"+project.ID.String(), nil, tokenFor(t, other))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Project removed", decodeBody[map[string]string](t, resp)["message"])

	gone, err := db.ProjectRepo().FindByID(project.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestDeleteProject_RequiresAuth(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db)
	owner := createTestUser(t, db, "alice")
	project := addProject(t, db, owner, "safe", nil, time.Now())

	resp := doRequest(t, router, http.MethodDelete, "/api/projects/"+project.ID.String(), nil, "")
	require.Equal(t, http.StatusUnauthorized, resp.Code)

	still, err := db.ProjectRepo().FindByID(project.ID)
	require.NoError(t, err)
	assert.NotNil(t, still)
}

package database

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"portfolio-backend/errs"
	"portfolio-backend/models"
)

func newTestDatabase(t *testing.T) Database {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	db := New(gormDB)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestBlogPostRepo_AddValidatesRequiredFields(t *testing.T) {
	db := newTestDatabase(t)

	err := db.BlogPostRepo().Add(&models.BlogPost{Content: "c", AuthorID: uuid.New()})
	require.Error(t, err)
	assert.True(t, errs.IsValidationError(err))

	err = db.BlogPostRepo().Add(&models.BlogPost{Title: "t", Content: "c"})
	require.Error(t, err)
	assert.True(t, errs.IsValidationError(err))

	require.NoError(t, db.BlogPostRepo().Add(&models.BlogPost{
		Title: "t", Content: "c", AuthorID: uuid.New(),
	}))
}

func TestBlogPostRepo_FindByIDMissingIsNil(t *testing.T) {
	db := newTestDatabase(t)

	post, err := db.BlogPostRepo().FindByID(uuid.New())
	require.NoError(t, err)
	assert.Nil(t, post)
}

func TestCommentRepo_DeleteByPostIDOnlyTouchesThatPost(t *testing.T) {
	db := newTestDatabase(t)
	author := uuid.New()

	postA := models.BlogPost{Title: "a", Content: "c", AuthorID: author}
	postB := models.BlogPost{Title: "b", Content: "c", AuthorID: author}
	require.NoError(t, db.BlogPostRepo().Add(&postA))
	require.NoError(t, db.BlogPostRepo().Add(&postB))

	for _, postID := range []uuid.UUID{postA.ID, postA.ID, postB.ID} {
		require.NoError(t, db.CommentRepo().Add(&models.Comment{
			Body: "hi", AuthorID: author, PostID: postID,
		}))
	}

	require.NoError(t, db.CommentRepo().DeleteByPostID(postA.ID))

	remainingA, err := db.CommentRepo().FindByPostID(postA.ID)
	require.NoError(t, err)
	assert.Empty(t, remainingA)

	remainingB, err := db.CommentRepo().FindByPostID(postB.ID)
	require.NoError(t, err)
	assert.Len(t, remainingB, 1)
}

func TestUserRepo_FindRefsByIDs(t *testing.T) {
	db := newTestDatabase(t)

	alice := models.User{Username: "alice", Email: "alice@example.com", Password: "x"}
	bob := models.User{Username: "bob", Email: "bob@example.com", Password: "x"}
	require.NoError(t, db.UserRepo().Add(&alice))
	require.NoError(t, db.UserRepo().Add(&bob))

	refs, err := db.UserRepo().FindRefsByIDs([]uuid.UUID{alice.ID, bob.ID, uuid.New()})
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "alice", refs[alice.ID].Username)

	refs, err = db.UserRepo().FindRefsByIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestMessageRepo_FindAllNewestFirst(t *testing.T) {
	db := newTestDatabase(t)

	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"first", "second"} {
		require.NoError(t, db.MessageRepo().Add(&models.Message{
			Name:      name,
			Email:     name + "@example.com",
			Message:   "hello",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	messages, err := db.MessageRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "second", messages[0].Name)
}

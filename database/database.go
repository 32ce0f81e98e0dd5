package database

import (
	"gorm.io/gorm"

	"portfolio-backend/models"
)

type Database struct {
	db          *gorm.DB
	userRepo    *UserRepo
	blogRepo    *BlogPostRepo
	commentRepo *CommentRepo
	projectRepo *ProjectRepo
	messageRepo *MessageRepo
}

// New initializes a Database with each repository sharing a single GORM
// instance. The instance is owned by the caller until Close.
func New(db *gorm.DB) Database {
	return Database{
		db:          db,
		userRepo:    NewUserRepo(db),
		blogRepo:    NewBlogPostRepo(db),
		commentRepo: NewCommentRepo(db),
		projectRepo: NewProjectRepo(db),
		messageRepo: NewMessageRepo(db),
	}
}

// Migrate creates or updates the schema for every model.
func (d Database) Migrate() error {
	return d.db.AutoMigrate(
		&models.User{},
		&models.BlogPost{},
		&models.Comment{},
		&models.Project{},
		&models.Message{},
	)
}

// Close releases the underlying connection pool.
func (d Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) MessageRepo() *MessageRepo {
	return d.messageRepo
}

package api

import (
	"portfolio-backend/database"
)

// initializeHandlers creates every resource handler over the shared
// repositories.
func initializeHandlers(database database.Database, jwtSecret string) *routeHandlers {
	return &routeHandlers{
		authHandler:    newAuthHandler(database.UserRepo(), jwtSecret),
		blogHandler:    newBlogHandler(database.BlogPostRepo(), database.CommentRepo(), database.UserRepo()),
		contactHandler: newContactHandler(database.MessageRepo()),
		projectHandler: newProjectHandler(database.ProjectRepo(), database.UserRepo()),
	}
}

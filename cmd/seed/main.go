package main

import (
	"fmt"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"portfolio-backend/database"
	"portfolio-backend/models"
)

// Seeds the database with demo content: an admin account, a few extra
// users, the showcase projects and posts, and faked comments and contact
// messages. Wipes existing rows first.
func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_NAME", "portfolio"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_SSLMODE", "disable"),
	)

	gormDB, err := gorm.Open(postgres.Open(connStr), &gorm.Config{})
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	db := database.New(gormDB)
	defer db.Close()

	if err := db.Migrate(); err != nil {
		fmt.Printf("Error migrating database schema: %v\n", err)
		os.Exit(1)
	}

	if err := seed(gormDB, db); err != nil {
		fmt.Printf("Error seeding database: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Database seeded")
}

func seed(gormDB *gorm.DB, db database.Database) error {
	// Clear existing data
	for _, model := range []any{
		&models.Comment{}, &models.BlogPost{}, &models.Project{},
		&models.Message{}, &models.User{},
	} {
		if err := gormDB.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	fmt.Println("Cleared existing data")

	admin, err := createUser(db, "admin", "admin@example.com", "admin123456")
	if err != nil {
		return err
	}
	fmt.Println("Created admin user (email: admin@example.com, password: admin123456)")

	commenters := make([]models.User, 0, 3)
	for i := 0; i < 3; i++ {
		user, err := createUser(db, gofakeit.Username(), gofakeit.Email(), gofakeit.Password(true, true, true, false, false, 12))
		if err != nil {
			return err
		}
		commenters = append(commenters, user)
	}
	fmt.Printf("Created %d commenter users\n", len(commenters))

	projects := []models.Project{
		{
			Title:       "E-Commerce Platform",
			Description: "A modern e-commerce platform with user authentication, shopping cart, payment integration, and order management.",
			ImageURL:    ptr("https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=800"),
			RepoURL:     ptr("https://github.com"),
			LiveURL:     ptr("https://example.com"),
		},
		{
			Title:       "Task Management App",
			Description: "A collaborative task management application with real-time updates, drag-and-drop, and team collaboration features.",
			ImageURL:    ptr("https://images.unsplash.com/photo-1611224923853-80b023f02d71?w=800"),
			RepoURL:     ptr("https://github.com"),
			LiveURL:     ptr("https://example.com"),
		},
		{
			Title:       "Weather Dashboard",
			Description: "A weather dashboard showing current conditions, forecasts, and alerts for any location worldwide.",
			ImageURL:    ptr("https://images.unsplash.com/photo-1592210454359-9043f067919b?w=800"),
			RepoURL:     ptr("https://github.com"),
			LiveURL:     ptr("https://example.com"),
		},
		{
			Title:       "Social Media Analytics",
			Description: "An analytics dashboard tracking social media performance across platforms with interactive charts and reports.",
			ImageURL:    ptr("https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=800"),
			RepoURL:     ptr("https://github.com"),
			LiveURL:     ptr("https://example.com"),
		},
	}
	for i := range projects {
		projects[i].UserID = admin.ID
		projects[i].CreatedAt = time.Now().Add(-time.Duration(len(projects)-i) * time.Hour)
		if err := db.ProjectRepo().Add(&projects[i]); err != nil {
			return err
		}
	}
	fmt.Printf("Created %d projects\n", len(projects))

	posts := []models.BlogPost{
		{
			Title:   "Getting Started with React Hooks",
			Content: "React Hooks changed how we write components. useState adds state to functional components, useEffect covers side effects, and custom hooks let you extract and share stateful logic between components.",
		},
		{
			Title:   "Building REST APIs the Boring Way",
			Content: "Most backends do not need clever architecture. A router, a handful of handlers, and a database client cover the majority of products. Here is how I keep mine small and predictable.",
		},
		{
			Title:   "Why I Still Seed Demo Data",
			Content: "A seeded database makes every demo, screenshot, and local test start from the same place. This post walks through the seed setup for this site and why it pays off.",
		},
	}
	for i := range posts {
		posts[i].AuthorID = admin.ID
		posts[i].CreatedAt = time.Now().Add(-time.Duration(len(posts)-i) * time.Hour)
		if err := db.BlogPostRepo().Add(&posts[i]); err != nil {
			return err
		}

		for c := 0; c < gofakeit.Number(1, 4); c++ {
			comment := models.Comment{
				Body:      gofakeit.Sentence(gofakeit.Number(6, 16)),
				AuthorID:  commenters[gofakeit.Number(0, len(commenters)-1)].ID,
				PostID:    posts[i].ID,
				CreatedAt: posts[i].CreatedAt.Add(time.Duration(c+1) * time.Minute),
			}
			if err := db.CommentRepo().Add(&comment); err != nil {
				return err
			}
		}
	}
	fmt.Printf("Created %d blog posts\n", len(posts))

	for i := 0; i < 5; i++ {
		message := models.Message{
			Name:      gofakeit.Name(),
			Email:     gofakeit.Email(),
			Message:   gofakeit.Paragraph(1, 2, 12, " "),
			CreatedAt: time.Now().Add(-time.Duration(i) * time.Minute),
		}
		if err := db.MessageRepo().Add(&message); err != nil {
			return err
		}
	}
	fmt.Println("Created 5 contact messages")

	return nil
}

func createUser(db database.Database, username, email, password string) (models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
	}
	if err := db.UserRepo().Add(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func ptr(s string) *string {
	return &s
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

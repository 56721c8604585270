package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"blogicum/internal/config"
	"blogicum/internal/db"
	"blogicum/internal/model"
	"blogicum/internal/repository"
)

const seedPassword = "blogicum-demo"

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Location{},
		&model.Post{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	users, err := seedUsers(ctx, repository.NewUserRepository(gormDB))
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	categories, err := seedCategories(ctx, repository.NewCategoryRepository(gormDB))
	if err != nil {
		log.Fatalf("Failed to seed categories: %v", err)
	}

	locations, err := seedLocations(ctx, repository.NewLocationRepository(gormDB), gormDB)
	if err != nil {
		log.Fatalf("Failed to seed locations: %v", err)
	}

	posts, err := seedPosts(ctx, repository.NewPostRepository(gormDB), gormDB, users, categories, locations)
	if err != nil {
		log.Fatalf("Failed to seed posts: %v", err)
	}

	log.Println("Seed completed successfully!")
	log.Printf("  - Users: %d", len(users))
	log.Printf("  - Categories: %d", len(categories))
	log.Printf("  - Locations: %d", len(locations))
	log.Printf("  - Posts: %d", posts)
	log.Printf("All demo accounts use the password %q", seedPassword)
}

// seedUsers creates the demo authors unless their usernames already exist.
func seedUsers(ctx context.Context, repo repository.UserRepository) ([]model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}

	fixtures := []model.User{
		{Username: "amontgomery", FirstName: "Alice", LastName: "Montgomery", Email: "alice@example.com"},
		{Username: "bpetrov", FirstName: "Boris", LastName: "Petrov", Email: "boris@example.com"},
		{Username: "cwright", FirstName: "Carol", LastName: "Wright", Email: "carol@example.com"},
	}

	users := make([]model.User, 0, len(fixtures))
	for _, fixture := range fixtures {
		existing, err := repo.FindByUsername(ctx, fixture.Username)
		if err != nil && err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("check user %s: %w", fixture.Username, err)
		}
		if existing != nil {
			users = append(users, *existing)
			continue
		}

		fixture.PasswordHash = string(hash)
		if err := repo.Create(ctx, &fixture); err != nil {
			return nil, fmt.Errorf("create user %s: %w", fixture.Username, err)
		}
		users = append(users, fixture)
	}
	return users, nil
}

// seedCategories creates the demo categories with generated slugs.
func seedCategories(ctx context.Context, repo repository.CategoryRepository) ([]model.Category, error) {
	fixtures := []model.Category{
		{Title: "Travel Notes", Description: "Trips, routes and the places worth the detour.", IsPublished: true},
		{Title: "City Life", Description: "Urban stories from wherever we happen to live.", IsPublished: true},
		{Title: "Drafts Desk", Description: "An unpublished category used to stage work in progress.", IsPublished: false},
	}

	categories := make([]model.Category, 0, len(fixtures))
	for _, fixture := range fixtures {
		fixture.Slug = model.Slugify(fixture.Title)
		existing, err := repo.FindBySlug(ctx, fixture.Slug)
		if err != nil && err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("check category %s: %w", fixture.Slug, err)
		}
		if existing != nil {
			categories = append(categories, *existing)
			continue
		}

		if err := repo.Create(ctx, &fixture); err != nil {
			return nil, fmt.Errorf("create category %s: %w", fixture.Slug, err)
		}
		categories = append(categories, fixture)
	}
	return categories, nil
}

// seedLocations creates the demo locations by name.
func seedLocations(ctx context.Context, repo repository.LocationRepository, gormDB *gorm.DB) ([]model.Location, error) {
	names := []string{"Lisbon", "Tbilisi", "Reykjavik"}

	locations := make([]model.Location, 0, len(names))
	for _, name := range names {
		var existing model.Location
		err := gormDB.WithContext(ctx).Where("name = ?", name).First(&existing).Error
		if err == nil {
			locations = append(locations, existing)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("check location %s: %w", name, err)
		}

		location := model.Location{Name: name, IsPublished: true}
		if err := repo.Create(ctx, &location); err != nil {
			return nil, fmt.Errorf("create location %s: %w", name, err)
		}
		locations = append(locations, location)
	}
	return locations, nil
}

// seedPosts creates demo posts with staggered pub dates, including one
// scheduled in the future so the visibility cutoff is easy to demo.
func seedPosts(ctx context.Context, repo repository.PostRepository, gormDB *gorm.DB, users []model.User, categories []model.Category, locations []model.Location) (int, error) {
	now := time.Now()

	fixtures := []model.Post{
		{
			Title:      "Three Days in Lisbon",
			Text:       "Pasteis, trams and a ferry you should not skip.\n\n## Day one\nStart at the waterfront.",
			PubDate:    now.Add(-72 * time.Hour),
			AuthorID:   users[0].ID,
			CategoryID: &categories[0].ID,
			LocationID: &locations[0].ID,
		},
		{
			Title:      "Courtyards of Tbilisi",
			Text:       "Wooden balconies, shared tables, and grapevines over every stairwell.",
			PubDate:    now.Add(-48 * time.Hour),
			AuthorID:   users[1].ID,
			CategoryID: &categories[0].ID,
			LocationID: &locations[1].ID,
		},
		{
			Title:      "Notes From a Rainy Commute",
			Text:       "A short piece about the bus line nobody loves and everybody rides.",
			PubDate:    now.Add(-24 * time.Hour),
			AuthorID:   users[2].ID,
			CategoryID: &categories[1].ID,
		},
		{
			Title:      "Northern Lights, Maybe",
			Text:       "Scheduled for tomorrow: a forecast-driven trip report from Reykjavik.",
			PubDate:    now.Add(24 * time.Hour),
			AuthorID:   users[0].ID,
			CategoryID: &categories[0].ID,
			LocationID: &locations[2].ID,
		},
	}

	created := 0
	for _, fixture := range fixtures {
		var count int64
		if err := gormDB.WithContext(ctx).Model(&model.Post{}).
			Where("title = ? AND author_id = ?", fixture.Title, fixture.AuthorID).
			Count(&count).Error; err != nil {
			return created, fmt.Errorf("check post %q: %w", fixture.Title, err)
		}
		if count > 0 {
			continue
		}

		fixture.IsPublished = true
		if err := repo.Create(ctx, &fixture); err != nil {
			return created, fmt.Errorf("create post %q: %w", fixture.Title, err)
		}
		created++
	}
	return created, nil
}

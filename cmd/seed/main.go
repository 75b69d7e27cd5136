package main

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/MohammedIhsaan28/Acquisition/internal/config"
	"github.com/MohammedIhsaan28/Acquisition/internal/db"
	"github.com/MohammedIhsaan28/Acquisition/internal/hash"
	"github.com/MohammedIhsaan28/Acquisition/internal/model"
	"github.com/MohammedIhsaan28/Acquisition/internal/repository"
)

// seedUser is a user to create if its email is not taken yet. Passwords here
// are for local development only.
type seedUser struct {
	Name     string
	Email    string
	Password string
	Role     string
}

var seedUsers = []seedUser{
	{Name: "Admin", Email: "admin@acquisition.local", Password: "admin123", Role: model.RoleAdmin},
	{Name: "Alice", Email: "alice@acquisition.local", Password: "alice123", Role: model.RoleUser},
	{Name: "Bob", Email: "bob@acquisition.local", Password: "bob12345", Role: model.RoleUser},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	hasher := hash.New(cfg.BcryptCost)
	ctx := context.Background()

	created, skipped := 0, 0
	for _, su := range seedUsers {
		existing, err := userRepo.FindByEmail(ctx, su.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Error checking user %s: %v", su.Email, err)
		}
		if existing != nil {
			log.Printf("User %s already exists, skipping", su.Email)
			skipped++
			continue
		}

		passwordHash, err := hasher.Hash(su.Password)
		if err != nil {
			log.Fatalf("Error hashing password for %s: %v", su.Email, err)
		}

		user := &model.User{
			Name:         su.Name,
			Email:        su.Email,
			PasswordHash: passwordHash,
			Role:         su.Role,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Error creating user %s: %v", su.Email, err)
		}
		log.Printf("Created user %s (role: %s)", su.Email, su.Role)
		created++
	}

	log.Printf("Seed completed: %d created, %d skipped", created, skipped)
}

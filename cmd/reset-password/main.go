package main

import (
	"context"
	"flag"
	"log"

	"boxpoint-api/internal/repository"
	"boxpoint-api/pkg/config"
	"boxpoint-api/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	email := flag.String("email", "", "email of the user to reset")
	newPassword := flag.String("password", "", "new password (min 6 characters)")
	flag.Parse()

	if *email == "" || len(*newPassword) < 6 {
		log.Fatal("usage: reset-password -email <email> -password <new password, min 6 chars>")
	}

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Database
	db, err := database.ConnectDB(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	users := repository.NewUserRepo(db)

	// 3. Find user
	user, found, err := users.FindByEmail(ctx, *email)
	if err != nil {
		log.Fatalf("Failed to look up %s: %v", *email, err)
	}
	if !found {
		log.Fatalf("User %s not found in database", *email)
	}

	// 4. Hash new password
	if err := user.SetPassword(*newPassword); err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	// 5. Update
	if err := users.UpdatePassword(ctx, user.ID, user.Password); err != nil {
		log.Fatalf("Failed to update password in DB: %v", err)
	}

	log.Printf("Password for %s has been reset", *email)
}

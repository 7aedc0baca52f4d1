package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/Github22799/Recipe-App-API/config"
	"github.com/Github22799/Recipe-App-API/internal/database"
	"github.com/Github22799/Recipe-App-API/internal/service"
)

func main() {
	email := flag.String("email", "", "email address for the superuser")
	password := flag.String("password", "", "password for the superuser")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.WaitFor(cfg, 30, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	users := service.NewUserService(db)
	user, err := users.CreateSuperuser(context.Background(), *email, *password)
	if err != nil {
		log.Fatalf("Failed to create superuser: %v", err)
	}
	log.Printf("Superuser %s created (id %s)", user.Email, user.ID)
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/horizontrails/agency-backoffice/internal/config"
	"github.com/horizontrails/agency-backoffice/internal/database"
	"github.com/horizontrails/agency-backoffice/internal/models"
	"github.com/horizontrails/agency-backoffice/internal/services"
	"github.com/horizontrails/agency-backoffice/internal/utils"
	"github.com/horizontrails/agency-backoffice/pkg/jwt"
)

func main() {
	username := flag.String("username", "admin", "username of the new back-office user")
	email := flag.String("email", "", "email of the new back-office user")
	password := flag.String("password", "", "password (generated when empty)")
	role := flag.String("role", models.RoleAdmin, "role: admin or staff")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stderr)

	if *email == "" {
		logger.Fatal("-email is required")
	}

	generated := false
	if *password == "" {
		secret, err := utils.GenerateSecret(12)
		if err != nil {
			logger.Fatalf("Failed to generate password: %v", err)
		}
		*password = secret
		generated = true
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewConnection(cfg.Database, logger)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.EnsureSchema(ctx, db); err != nil {
		logger.Fatalf("Failed to apply schema: %v", err)
	}

	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.RefreshSecret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)
	authService := services.NewAuthService(database.NewUserRepository(db), jwtService, cfg.Security.BcryptCost)

	user, err := authService.CreateUser(ctx, &models.CreateUserRequest{
		Username: *username,
		Email:    *email,
		Password: *password,
		Role:     *role,
	})
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			logger.Fatalf("Invalid user: %s", verr.Message)
		case errors.Is(err, services.ErrDuplicate):
			logger.Fatalf("User %q or email %q already exists", *username, *email)
		default:
			logger.Fatalf("Failed to create user: %v", err)
		}
	}

	fmt.Printf("Created %s user %q (id %s)\n", user.Role, user.Username, user.ID)
	if generated {
		fmt.Printf("Generated password: %s\n", *password)
		fmt.Println("Store it safely; it is not shown again.")
	}
}

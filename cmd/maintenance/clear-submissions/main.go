package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/horizontrails/agency-backoffice/internal/config"
	"github.com/horizontrails/agency-backoffice/internal/database"
)

var submissionTables = []string{"bookings", "inquiries", "reviews", "newsletter_subscriptions"}

var catalogTables = []string{"packages", "gallery_items"}

func main() {
	var dbURLFlag string
	var includeCatalog, force bool
	flag.StringVar(&dbURLFlag, "database-url", "", "PostgreSQL connection string (overrides DATABASE_URL)")
	flag.BoolVar(&includeCatalog, "include-catalog", false, "also clear packages and gallery items")
	flag.BoolVar(&force, "force", false, "allow running when ENVIRONMENT=production")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stderr)

	_ = godotenv.Load()

	if os.Getenv("ENVIRONMENT") == "production" && !force {
		logger.Fatal("Refusing to clear a production database without -force")
	}

	dbURL := dbURLFlag
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set and -database-url was not provided")
	}

	// Minimal database config, the full app config is not needed here
	db, err := database.NewConnection(config.DatabaseConfig{
		URL:                dbURL,
		MaxConnections:     2,
		MaxIdleConnections: 1,
	}, logger)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	tables := submissionTables
	if includeCatalog {
		tables = append(tables, catalogTables...)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	// users are never cleared so the back office stays reachable
	truncateSQL := "TRUNCATE TABLE " + strings.Join(tables, ", ") + " CASCADE"
	if _, err := db.ExecContext(ctx, truncateSQL); err != nil {
		logger.Fatalf("Failed to truncate tables: %v", err)
	}

	fmt.Println("Post-clear row counts:")
	for _, t := range tables {
		var count int64
		if err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM "+t); err != nil {
			fmt.Printf("  %s: error: %v\n", t, err)
			continue
		}
		fmt.Printf("  %s: %d\n", t, count)
	}
}

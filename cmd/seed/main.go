// seed is a one-shot tool that applies the schema and loads starter data:
// three companies, a handful of jobs, and an admin account.
//
// Usage: go run ./cmd/seed
package main

import (
	"context"
	"log"
	"os"

	"job-board/internal/db"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer pool.Close()

	log.Println("Applying schema...")
	schema, err := os.ReadFile("migrations/schema.sql")
	if err != nil {
		log.Fatalf("Failed to read schema file: %v", err)
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		log.Fatalf("Schema failed: %v", err)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatalf("Failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	log.Println("Seeding companies...")
	_, err = tx.Exec(ctx, `
		INSERT INTO companies (handle, name, num_employees, description, logo_url)
		VALUES
		    ('nike',            'Nike',            30000,  'Shoes and apparel', NULL),
		    ('apple',           'Apple',           100000, 'Consumer devices',  NULL),
		    ('sans-serif-labs', 'Sans Serif Labs', 1,      'Typography studio', NULL)
		ON CONFLICT (handle) DO UPDATE
		  SET name = EXCLUDED.name,
		      num_employees = EXCLUDED.num_employees,
		      description = EXCLUDED.description;
	`)
	if err != nil {
		log.Fatalf("Failed to seed companies: %v", err)
	}

	log.Println("Seeding jobs...")
	_, err = tx.Exec(ctx, `
		INSERT INTO jobs (title, salary, equity, company_handle)
		VALUES
		    ('Software Engineer', 120000, 0.001, 'nike'),
		    ('Data Analyst',      95000,  NULL,  'nike'),
		    ('Product Designer',  140000, 0.002, 'apple'),
		    ('Type Designer',     70000,  0.25,  'sans-serif-labs');
	`)
	if err != nil {
		log.Fatalf("Failed to seed jobs: %v", err)
	}

	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin"
		log.Println("Warning: SEED_ADMIN_PASSWORD is not set, using the default")
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	log.Println("Seeding admin user...")
	_, err = tx.Exec(ctx, `
		INSERT INTO users (username, password, first_name, last_name, email, photo_url, is_admin)
		VALUES ('admin', $1, 'Site', 'Admin', 'admin@example.com', NULL, TRUE)
		ON CONFLICT (username) DO UPDATE
		  SET password = EXCLUDED.password,
		      is_admin = TRUE;
	`, string(digest))
	if err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("Failed to commit: %v", err)
	}
	log.Println("Seed complete.")
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	webAdapter "job-board/internal/adapters/web"
	"job-board/internal/app"
	"job-board/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, databaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	bcryptCost := 0
	if c := os.Getenv("BCRYPT_COST"); c != "" {
		if n, err := strconv.Atoi(c); err == nil {
			bcryptCost = n
		}
	}

	svc := app.NewAppService(pool, bcryptCost)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(svc, allowedOrigins, jwtSecret)

	log.Printf("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}

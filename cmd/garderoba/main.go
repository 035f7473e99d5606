package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/erazemk/garderoba/internal/api"
	"github.com/erazemk/garderoba/internal/db"
	"github.com/erazemk/garderoba/internal/store"
)

func main() {
	dbPath := flag.String("db", "garderoba.sqlite3", "path to SQLite database file")
	addr := flag.String("addr", ":8080", "listen address")
	baseURL := flag.String("base-url", "", "base URL for resource links (derived from requests if empty)")
	jwtSecret := flag.String("jwt-secret", "", "JWT signing key (persisted in the database if empty)")
	flag.Parse()

	database, err := db.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		log.Fatalf("Failed to set up database schema: %v", err)
	}

	// Without an explicit secret, use the one stored in the database so
	// tokens survive restarts.
	secret := *jwtSecret
	if secret == "" {
		secret, err = store.GetJWTSecret(context.Background(), database)
		if err != nil {
			log.Fatalf("Failed to load JWT secret: %v", err)
		}
	}

	handler := api.LoggingMiddleware(api.NewRouter(database, secret, *baseURL))

	fmt.Printf("Server listening on %s\n", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

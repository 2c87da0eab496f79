package main

import (
	"log"
	"os"

	"rod-cutting-optimizer/internal/api"
)

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./rodcut.db"
	}

	log.Printf("Setting up database at: %s\n", dbPath)

	db, err := api.InitDB(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// Drop and recreate tables
	log.Println("Recreating tables...")
	if err := api.ResetSchema(db); err != nil {
		log.Fatalf("Failed to reset schema: %v", err)
	}

	log.Println("Database setup completed successfully!")
}

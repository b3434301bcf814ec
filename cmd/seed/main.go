package main

import (
	"context"
	"log"
	"os"

	"flowa-be/internal/model"
	"flowa-be/internal/repository/unitofwork"
	"flowa-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn, database.DefaultPoolConfig())
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}
	if err := db.AutoMigrate(model.All()...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin12345"
	}

	factory := unitofwork.NewRepositoryFactory(db)
	if err := SeedDemoCatalog(context.Background(), factory, password); err != nil {
		log.Fatalf("Error: Seeding failed: %v", err)
	}
	log.Println("Success: Demo data seeded.")
}

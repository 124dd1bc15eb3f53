package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"rondas/internal/config"
)

const migrationsDir = "migrations"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, relying on environment")
	}

	command := flag.String("command", "up", "Migration command: up, down, down-to, status, create")
	name := flag.String("name", "", "Migration name (required for create)")
	targetVersion := flag.Int64("version", 0, "Target version for down-to command")
	flag.Parse()

	cfg := config.Load()

	db, err := open(cfg)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("failed to set dialect: %v", err)
	}

	switch *command {
	case "up":
		err = goose.Up(db, migrationsDir)
	case "down":
		err = goose.Down(db, migrationsDir)
	case "down-to":
		err = goose.DownTo(db, migrationsDir, *targetVersion)
	case "status":
		err = goose.Status(db, migrationsDir)
	case "create":
		if *name == "" {
			log.Fatal("migration name is required for create")
		}
		err = goose.Create(db, migrationsDir, *name, "sql")
	default:
		log.Fatalf("unknown command: %s", *command)
	}
	if err != nil {
		log.Fatalf("migration %s failed: %v", *command, err)
	}
	log.Printf("migration %s completed", *command)
}

// open connects to the configured database, creating it on first use.
func open(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.Database.DSN(""))
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err == nil {
		return db, nil
	}
	if !isDatabaseDoesNotExistError(err) {
		db.Close()
		return nil, err
	}
	db.Close()

	if err := createDatabase(cfg); err != nil {
		return nil, err
	}

	db, err = sql.Open("postgres", cfg.Database.DSN(""))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func isDatabaseDoesNotExistError(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "3D000"
}

func createDatabase(cfg *config.Config) error {
	admin, err := sql.Open("postgres", cfg.Database.DSN("postgres"))
	if err != nil {
		return fmt.Errorf("connect to postgres database: %w", err)
	}
	defer admin.Close()

	_, err = admin.Exec(fmt.Sprintf("CREATE DATABASE %s", cfg.Database.Name))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "42P04" {
			return nil
		}
		return fmt.Errorf("create database: %w", err)
	}

	log.Printf("database %q created", cfg.Database.Name)
	return nil
}

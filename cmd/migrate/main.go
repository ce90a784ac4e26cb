// Command migrate runs schema operations for the blog database.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"blogapp/internal/config"
	"blogapp/internal/database"

	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func usage() error {
	return fmt.Errorf("usage: go run ./cmd/migrate <auto|status>")
}

func run() error {
	flag.Parse()
	if flag.NArg() < 1 {
		return usage()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	// Connect must not migrate on its own; the subcommand decides.
	autoMigrate := cfg.DBAutoMigrate
	cfg.DBAutoMigrate = false

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(flag.Arg(0))) {
	case "auto":
		cfg.DBAutoMigrate = true
		if err := database.Migrate(db, cfg); err != nil {
			return err
		}
		log.Println("automigrations applied")
	case "status":
		printStatus(db)
		if !autoMigrate {
			log.Println("DB_AUTO_MIGRATE is off; the server will not create missing tables")
		}
	default:
		return usage()
	}
	return nil
}

func printStatus(db *gorm.DB) {
	m := db.Migrator()
	for _, model := range database.PersistentModels() {
		stmt := &gorm.Statement{DB: db}
		table := fmt.Sprintf("%T", model)
		if err := stmt.Parse(model); err == nil {
			table = stmt.Table
		}
		state := "missing"
		if m.HasTable(model) {
			state = "present"
		}
		log.Printf("%-12s %s", table, state)
	}
}

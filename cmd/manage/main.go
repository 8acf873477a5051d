package main

import (
	"context"
	"fmt"
	"os"

	"shortlink/internal/auth"
	"shortlink/internal/config"
	"shortlink/internal/repository"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg := config.Load()

	var err error
	switch os.Args[1] {
	case "init":
		err = cmdInit(cfg)
	case "status":
		err = cmdStatus(cfg)
	case "hash":
		err = cmdHash(os.Args[2:])
	case "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func cmdInit(cfg config.Config) error {
	fmt.Printf("Initializing database at: %s\n", cfg.DBPath)
	db, err := repository.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := repository.NewRepo(db).InitSchema(context.Background()); err != nil {
		return err
	}
	fmt.Println("Database initialized successfully")
	return nil
}

func cmdStatus(cfg config.Config) error {
	db, err := repository.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	mappings, err := repository.NewRepo(db).ListAll(context.Background())
	if err != nil {
		return fmt.Errorf("%w\ndatabase may not be initialized, run: manage init", err)
	}

	fmt.Printf("Database: %s\n", cfg.DBPath)
	fmt.Printf("Total URLs: %d\n\n", len(mappings))
	fmt.Println("Existing URLs:")
	if len(mappings) == 0 {
		fmt.Println("  (no URLs yet)")
		return nil
	}
	for _, m := range mappings {
		fmt.Printf("  /%s -> %s\n", m.ShortCode, m.LongURL)
	}
	return nil
}

func cmdHash(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: manage hash <password>")
	}
	h, err := auth.Hash(args[0])
	if err != nil {
		return err
	}
	fmt.Println(h)
	return nil
}

func usage() {
	fmt.Print(`URL Shortener Management Tool

Usage:
    manage <command>

Commands:
    init        Initialize the database (creates tables)
    status      Show database status and list all URLs
    hash        Print a bcrypt hash of a password for ADMIN_PASSWORD_HASH
    help        Show this help message
`)
}

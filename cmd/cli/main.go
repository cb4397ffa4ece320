package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/guicasaliz/lista-presentes-guilherme-elizabeth/internal/auth"
	"github.com/guicasaliz/lista-presentes-guilherme-elizabeth/internal/store"
)

func main() {
	addAdminCmd := flag.NewFlagSet("add-admin", flag.ExitOnError)
	email := addAdminCmd.String("email", "", "Email for the new admin")
	password := addAdminCmd.String("password", "", "Password for the new admin")

	setPhotoCmd := flag.NewFlagSet("set-photo", flag.ExitOnError)
	photoURL := setPhotoCmd.String("url", "", "URL of the couple photo")

	if len(os.Args) < 2 {
		fmt.Println("expected 'add-admin' or 'set-photo' subcommand")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "add-admin":
		addAdminCmd.Parse(os.Args[2:])
		if *email == "" || *password == "" {
			fmt.Println("email and password are required")
			addAdminCmd.PrintDefaults()
			os.Exit(1)
		}
		createAdmin(*email, *password)
	case "set-photo":
		setPhotoCmd.Parse(os.Args[2:])
		if *photoURL == "" {
			fmt.Println("url is required")
			setPhotoCmd.PrintDefaults()
			os.Exit(1)
		}
		setPhoto(*photoURL)
	default:
		fmt.Println("expected 'add-admin' or 'set-photo' subcommand")
		os.Exit(1)
	}
}

func openStore() *store.Store {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./presentes.db"
	}

	db, err := store.NewStore(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	// Ensure tables exist if running the cli before the server
	if err := db.InitSchema(); err != nil {
		log.Fatalf("Failed to init schema: %v", err)
	}
	return db
}

func createAdmin(email, password string) {
	db := openStore()

	if err := db.CreateAdmin(email, auth.HashPassword(password)); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	fmt.Printf("Admin '%s' created successfully.\n", email)
}

func setPhoto(url string) {
	db := openStore()

	if err := db.SetCouplePhotoURL(url); err != nil {
		log.Fatalf("Failed to set couple photo: %v", err)
	}

	fmt.Println("Couple photo updated.")
}

// Command admin manages staff accounts from the command line.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"nhaf/internal/config"
	"nhaf/internal/database"
	"nhaf/internal/repository"
	"nhaf/internal/service"
)

func usage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/admin create <username> <email> <password> [--admin]  - Create a staff account")
	fmt.Println("  go run ./cmd/admin promote <user_id>                              - Promote user to admin")
	fmt.Println("  go run ./cmd/admin demote <user_id>                               - Demote user from admin")
	fmt.Println("  go run ./cmd/admin list                                           - List staff accounts")
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	users := service.NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	switch os.Args[1] {
	case "create":
		if len(os.Args) < 5 {
			usage()
		}
		user, err := users.CreateStaff(ctx, service.CreateStaffInput{
			Username: os.Args[2],
			Email:    os.Args[3],
			Password: os.Args[4],
			IsAdmin:  len(os.Args) > 5 && os.Args[5] == "--admin",
		})
		if err != nil {
			log.Fatalf("Failed to create account: %v", err)
		}
		fmt.Printf("Created %s (ID: %d, admin: %t)\n", user.Username, user.ID, user.IsAdmin)

	case "promote", "demote":
		if len(os.Args) < 3 {
			usage()
		}
		id, err := strconv.ParseUint(os.Args[2], 10, 32)
		if err != nil {
			log.Fatalf("Invalid user ID %q", os.Args[2])
		}
		user, err := users.SetAdmin(ctx, uint(id), os.Args[1] == "promote")
		if err != nil {
			log.Fatalf("Failed to %s user %d: %v", os.Args[1], id, err)
		}
		fmt.Printf("%s (ID: %d) admin: %t\n", user.Username, user.ID, user.IsAdmin)

	case "list":
		all, err := users.ListUsers(ctx, 100, 0)
		if err != nil {
			log.Fatalf("Failed to list accounts: %v", err)
		}
		if len(all) == 0 {
			fmt.Println("No staff accounts found")
			return
		}
		for _, u := range all {
			role := "staff"
			if u.IsAdmin {
				role = "admin"
			}
			fmt.Printf("ID: %d | %-5s | Username: %s | Email: %s\n", u.ID, role, u.Username, u.Email)
		}

	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		usage()
	}
}

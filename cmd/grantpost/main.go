package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/thereayou/forum-lite/internal/database"
)

// Админская утилита: выдаёт или забирает у пользователя право публиковать посты.
func main() {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	db := &database.Database{}
	if err := db.Connect(); err != nil {
		log.Fatalf("Postgres connect failed: %v", err)
	}

	reader := bufio.NewReader(os.Stdin)

	fmt.Print("What's the username of the account to grant permissions to? ")
	username, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalf("read username: %v", err)
	}
	username = strings.TrimSpace(username)

	user, err := db.FindUserByUsername(username)
	if err != nil {
		log.Fatalf("Could not find a user with that name. Ensure you have created an account with that name via the frontend before using this script.")
	}

	fmt.Printf("User %q currently has canPost=%v. Grant post permissions? [y/N] ", user.Username, user.CanPost)
	answer, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalf("read answer: %v", err)
	}

	user.CanPost = strings.EqualFold(strings.TrimSpace(answer), "y")

	if err := db.UpdateUser(user); err != nil {
		log.Fatalf("update user: %v", err)
	}

	fmt.Println("Successfully updated user.")
}

package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// User mirrors internal/models.User for this standalone seeding script.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	Role      string `gorm:"default:'member'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func main() {
	// Parse command line flags
	email := flag.String("email", "admin@aurumtrade.local", "Admin email address")
	password := flag.String("password", "change-me-now", "Admin password")
	name := flag.String("name", "Site Admin", "Admin display name")
	dbPath := flag.String("db", "aurum.sqlite", "Path to the sqlite database")
	flag.Parse()

	db, err := gorm.Open(sqlite.Open(*dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(&User{}); err != nil {
		log.Fatal("Failed to migrate users table:", err)
	}

	// Check if the user already exists
	var existing User
	if err := db.Where("email = ?", *email).First(&existing).Error; err == nil {
		fmt.Printf("User already exists: %s (ID: %d, Role: %s)\n", existing.Email, existing.ID, existing.Role)
		if existing.Role != "admin" {
			if err := db.Model(&existing).Update("role", "admin").Error; err != nil {
				log.Fatal("Failed to promote user:", err)
			}
			fmt.Println("Promoted to admin.")
		}
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := User{
		Name:     *name,
		Email:    *email,
		Password: string(hash),
		Role:     "admin",
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	fmt.Printf("✓ Admin user created: %s (ID: %d)\n", user.Email, user.ID)
	fmt.Println("\nRemember to add the email to ADMIN_EMAILS so sign-in passes the allow-list:")
	fmt.Printf("ADMIN_EMAILS=%s\n", *email)
}

package main

import (
	"os"

	"sportsbook_api/internal/config"
	"sportsbook_api/internal/db"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Runs schema migration, then seeds the initial admin account when
// ADMIN_USERNAME/ADMIN_PASSWORD are set.
func main() {
	cfg := config.LoadConfig()
	db.Migrate(cfg.DSN())

	adminUser := os.Getenv("ADMIN_USERNAME")
	adminPass := os.Getenv("ADMIN_PASSWORD")
	if adminUser == "" || adminPass == "" {
		return
	}
	conn, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	if err := db.SeedAdmin(conn, adminUser, adminPass); err != nil {
		logrus.Fatalf("failed to seed admin: %v", err)
	}
}

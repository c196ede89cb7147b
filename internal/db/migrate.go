package db

import (
	"sportsbook_api/internal/domain"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Migrate opens the database and creates or updates the schema.
func Migrate(dsn string) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.DepositRequest{}); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	logrus.Info("Migration completed.")
}

// SeedAdmin creates the initial admin account if no admin exists yet.
// Deposit approval is impossible without one.
func SeedAdmin(db *gorm.DB, username, password string) error {
	var count int64
	if err := db.Model(&domain.User{}).Where("role = ?", domain.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logrus.Info("Admin account already exists, skipping seed.")
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := domain.User{
		Username: username,
		Password: string(hash),
		Email:    username + "@sportsbook.local",
		Role:     domain.RoleAdmin,
		Wallet:   domain.DefaultWallet,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	logrus.WithField("username", username).Info("Admin account seeded")
	return nil
}

package db

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/chairtime/booking-api/internal/config"
	"github.com/chairtime/booking-api/internal/models"
)

// EnsureInitialAdmin cria o administrador inicial a partir do ambiente
// quando a tabela ainda está vazia.
func EnsureInitialAdmin(db *gorm.DB, cfg *config.Config) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return
	}

	var count int64
	db.Model(&models.AdminUser{}).Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash initial admin password: %v", err)
	}

	admin := models.AdminUser{
		Name:         cfg.AdminName,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hashed),
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("failed to create initial admin: %v", err)
	}

	log.Printf("initial admin %s created", admin.Email)
}

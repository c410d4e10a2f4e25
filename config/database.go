package config

import (
	"fmt"
	"log"

	"github.com/openvoucher/voucherhub/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection and runs migrations. It
// reuses the configuration loaded at startup and only loads its own when
// no prior LoadConfig call happened.
func InitDB() {
	config := App
	if config == nil {
		var err error
		config, err = LoadConfig()
		if err != nil {
			log.Fatal("Failed to load config:", err)
		}
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	// Auto migrate the schema
	if err := DB.AutoMigrate(&models.Voucher{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
}

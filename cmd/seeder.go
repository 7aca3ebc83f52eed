package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	assetmodel "github.com/frahmantamala/asset-inventory/internal/core/datamodel/asset"
	usermodel "github.com/frahmantamala/asset-inventory/internal/core/datamodel/user"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with a bootstrap admin account and sample assets for development.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		if clearData {
			if err := db.Exec("DELETE FROM assets").Error; err != nil {
				log.Fatalf("failed to clear assets: %v", err)
			}
			if err := db.Exec("DELETE FROM users").Error; err != nil {
				log.Fatalf("failed to clear users: %v", err)
			}
			fmt.Println("Cleared existing data")
		}

		seedAdmin(db, cfg.Security.BCryptCost)
		seedAssets(db)
	},
}

func seedAdmin(db *gorm.DB, bcryptCost int) {
	var count int64
	if err := db.Model(&usermodel.User{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
		log.Fatalf("failed to check admin user: %v", err)
	}
	if count > 0 {
		fmt.Println("admin user already exists")
		return
	}

	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcryptCost)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}

	admin := usermodel.User{
		ID:           uuid.NewString(),
		Username:     "admin",
		Email:        "admin@itassets.com",
		PasswordHash: string(hash),
		Role:         "admin",
		Department:   "IT",
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("failed to insert admin user: %v", err)
	}
	fmt.Println("Seeded admin user:", admin.Email)
}

func seedAssets(db *gorm.DB) {
	var count int64
	if err := db.Model(&assetmodel.Asset{}).Count(&count).Error; err != nil {
		log.Fatalf("failed to count assets: %v", err)
	}
	if count > 0 {
		fmt.Println("assets already present, skipping sample data")
		return
	}

	serial := func(s string) *string { return &s }
	now := time.Now()

	samples := []assetmodel.Asset{
		{
			AssetID:          "LAP001",
			AssetType:        "Laptop",
			Make:             "Dell",
			Model:            "Latitude 5440",
			SerialNumber:     serial("DL5440-0001"),
			OperatingSystem:  "Windows 11",
			Processor:        "Intel Core i5-1345U",
			RAM:              "16GB",
			Storage:          "512GB SSD",
			Location:         "Office",
			Status:           "Available",
			Condition:        "New",
			RegistrationDate: now,
		},
		{
			AssetID:          "LAP002",
			AssetType:        "Laptop",
			Make:             "Apple",
			Model:            "MacBook Pro 14",
			SerialNumber:     serial("MBP14-0002"),
			OperatingSystem:  "macOS",
			Processor:        "Apple M3",
			RAM:              "18GB",
			Storage:          "1TB SSD",
			Location:         "Office",
			Status:           "Assigned",
			Condition:        "Excellent",
			Assignee:         "jdoe",
			RegistrationDate: now,
		},
		{
			AssetID:          "MON001",
			AssetType:        "Monitor",
			Make:             "LG",
			Model:            "27UL500",
			SerialNumber:     serial("LG27-0003"),
			Location:         "Branch Office",
			Status:           "In-Storage",
			Condition:        "Good",
			RegistrationDate: now,
		},
	}

	for _, sample := range samples {
		if err := db.Create(&sample).Error; err != nil {
			log.Fatalf("failed to insert sample asset %s: %v", sample.AssetID, err)
		}
	}
	fmt.Printf("Seeded %d sample assets\n", len(samples))
}

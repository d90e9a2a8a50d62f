package main

import (
	"fmt"
	"log"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/models"
	"storefront/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.ColorImage{},
		&models.ProductColor{},
		&models.ProductSize{},
		&models.OrderItem{},
		&models.Order{},
		&models.SalesRecord{},
		&models.Product{},
		&models.Color{},
		&models.Category{},
		&models.PaymentMethod{},
		&models.Setting{},
		&models.Admin{},
		&models.User{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Create tables with proper schema
	fmt.Println("Creating tables...")
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Create default super admin
	fmt.Println("Creating default super admin...")
	adminRepo := repository.NewAdminRepository(db)

	existing, err := adminRepo.GetByEmail("admin@storefront.local")
	if err != nil {
		log.Fatal("Failed to check for existing admin:", err)
	}
	if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), cfg.BcryptCost)
		if err != nil {
			log.Fatal("Failed to hash password:", err)
		}
		superAdmin := &models.Admin{
			Name:         "Super Admin",
			Email:        "admin@storefront.local",
			PasswordHash: string(hash),
			Role:         string(models.RoleSuperAdmin),
			IsActive:     true,
		}
		if err := adminRepo.Create(superAdmin); err != nil {
			log.Printf("Warning: Failed to create super admin: %v", err)
		} else {
			fmt.Println("Super admin created successfully")
			fmt.Println("Email: admin@storefront.local")
			fmt.Println("Password: admin123")
		}
	} else {
		fmt.Println("Super admin already exists")
	}

	// Seed the flat shipping fee
	fmt.Println("Seeding default settings...")
	settingsRepo := repository.NewSettingsRepository(db)
	if err := settingsRepo.Seed(models.SettingShipping, "50.00"); err != nil {
		log.Printf("Warning: Failed to seed shipping setting: %v", err)
	}

	// Seed the supported payment methods, disabled until configured
	fmt.Println("Seeding payment methods...")
	paymentRepo := repository.NewPaymentMethodRepository(db)
	for _, method := range []string{
		models.PaymentVodafoneCash,
		models.PaymentInstapay,
		models.PaymentCashOnDelivery,
	} {
		if err := paymentRepo.Seed(method); err != nil {
			log.Printf("Warning: Failed to seed payment method %s: %v", method, err)
		}
	}

	fmt.Println("Database initialization completed successfully!")
}

package main

import (
	"log"

	"commerce-chatbot-be/internal/config"
	"commerce-chatbot-be/internal/model"
	"commerce-chatbot-be/pkg/database"

	"github.com/shopspring/decimal"
)

// demoProducts is a small catalog covering every dialogue path: multi
// and single option attributes, one sold-out product, several
// categories.
func demoProducts() []*model.Product {
	return []*model.Product{
		{Name: "Black Hoodie", Category: "Hoodies", Color: "Black", Material: "Cotton", Style: "Pullover", Size: "M", Price: decimal.NewFromFloat(49.99), Quantity: 25},
		{Name: "Blue Hoodie", Category: "Hoodies", Color: "Blue", Material: "Cotton", Style: "Pullover", Size: "L", Price: decimal.NewFromFloat(49.99), Quantity: 18},
		{Name: "Grey Zip Hoodie", Category: "Hoodies", Color: "Grey", Material: "Fleece", Style: "Zip", Size: "M", Price: decimal.NewFromFloat(59.99), Quantity: 0},
		{Name: "White T-Shirt", Category: "T-Shirts", Color: "White", Material: "Cotton", Style: "Crew", Size: "S", Price: decimal.NewFromFloat(19.99), Quantity: 40},
		{Name: "Blue T-Shirt", Category: "T-Shirts", Color: "Blue", Material: "Cotton", Style: "Crew", Size: "M", Price: decimal.NewFromFloat(19.99), Quantity: 32},
		{Name: "Black V-Neck T-Shirt", Category: "T-Shirts", Color: "Black", Material: "Cotton", Style: "V-Neck", Size: "L", Price: decimal.NewFromFloat(24.99), Quantity: 15},
		{Name: "Slim Fit Jeans", Category: "Jeans", Color: "Indigo", Material: "Denim", Style: "Slim", Size: "32", Price: decimal.NewFromFloat(79.99), Quantity: 12},
		{Name: "Relaxed Jeans", Category: "Jeans", Color: "Light Blue", Material: "Denim", Style: "Relaxed", Size: "34", Price: decimal.NewFromFloat(74.99), Quantity: 9},
		{Name: "Leather Wallet", Category: "Accessories", Color: "Brown", Material: "Leather", Style: "Bifold", Size: "One Size", Price: decimal.NewFromFloat(34.99), Quantity: 50},
	}
}

func main() {
	cfg := config.Load()

	db, err := database.NewGormDB(database.GormConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatalf("Error: Failed to connect to database: %v", err)
	}

	log.Println("Step 1: Running AutoMigrate...")
	if err := db.AutoMigrate(&model.Product{}, &model.Order{}); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	var count int64
	if err := db.Model(&model.Product{}).Count(&count).Error; err != nil {
		log.Fatalf("Error: Failed to count products: %v", err)
	}
	if count > 0 {
		log.Printf("Products table already has %d rows, skipping seed.", count)
		return
	}

	log.Println("Step 2: Seeding demo catalog...")
	if err := db.Create(demoProducts()).Error; err != nil {
		log.Fatalf("Error: Failed to seed products: %v", err)
	}

	log.Println("Done.")
}

package main

import (
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"armory/internal/config"
	"armory/internal/domain"
	"armory/internal/repository"
	"armory/internal/util"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, relying on environment")
	}

	cfg := config.Load()
	db, err := repository.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Starting seed process...")

	if err := truncateTables(db.DB()); err != nil {
		log.Fatalf("Failed to truncate tables: %v", err)
	}

	demo := seedDemoUser(db.DB())
	records, err := seedEquipment(db.DB())
	if err != nil {
		log.Fatalf("Failed to seed equipment: %v", err)
	}
	if demo != nil {
		if err := seedInventory(db.DB(), demo, records); err != nil {
			log.Printf("Failed to seed inventory: %v", err)
		}
	}

	log.Println("Seed process completed!")
}

func truncateTables(db *sqlx.DB) error {
	log.Println("Truncating all seed tables...")

	tables := []string{
		"inventory_items",
		"equipment",
		"users",
	}

	for _, table := range tables {
		query := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
		log.Printf("Truncated table: %s", table)
	}

	return nil
}

func seedDemoUser(db *sqlx.DB) *domain.User {
	log.Println("Seeding demo user...")

	userRepo := repository.NewUserRepository(db)

	hashed, err := util.HashPassword("demo1234")
	if err != nil {
		log.Printf("Failed to hash demo password: %v", err)
		return nil
	}

	user := &domain.User{
		Username: "demo",
		Email:    "demo@example.com",
		Password: hashed,
	}

	if err := userRepo.Create(user); err != nil {
		log.Printf("Failed to create demo user: %v", err)
		return nil
	}

	log.Printf("Created demo user: %s", user.Username)
	return user
}

func seedEquipment(db *sqlx.DB) ([]*domain.Equipment, error) {
	log.Println("Seeding equipment...")

	equipmentRepo := repository.NewEquipmentRepository(db)

	records := []*domain.Equipment{
		{
			CustomID:              "longsword",
			Name:                  "Longsword",
			CategoryRange:         "Martial Melee",
			EquipmentCategoryName: "Weapon",
			Damage: domain.Damage{
				DiceExpression: "1d8",
				DamageTypeName: "Slashing",
			},
			TwoHandedDamage: domain.Damage{
				DiceExpression: "1d10",
				DamageTypeName: "Slashing",
			},
			Range:        domain.Range{Normal: intPtr(5)},
			Properties:   domain.PropertyList{{Name: "Versatile"}},
			Weight:       floatPtr(3),
			Cost:         domain.Cost{Quantity: floatPtr(15), Unit: "gp"},
			Descriptions: domain.StringList{},
		},
		{
			CustomID:              "shortbow",
			Name:                  "Shortbow",
			CategoryRange:         "Simple Ranged",
			EquipmentCategoryName: "Weapon",
			Damage: domain.Damage{
				DiceExpression: "1d6",
				DamageTypeName: "Piercing",
			},
			Range:        domain.Range{Normal: intPtr(80), Long: intPtr(320)},
			Properties:   domain.PropertyList{{Name: "Ammunition"}, {Name: "Two-Handed"}},
			Weight:       floatPtr(2),
			Cost:         domain.Cost{Quantity: floatPtr(25), Unit: "gp"},
			Descriptions: domain.StringList{},
		},
		{
			CustomID:              "bag-of-holding",
			Name:                  "Bag of Holding",
			EquipmentCategoryName: "Wondrous Items",
			RarityName:            "Uncommon",
			Magical:               true,
			Weight:                floatPtr(15),
			Descriptions: domain.StringList{
				"This bag has an interior space considerably larger than its outside dimensions.",
			},
			Effects: domain.EffectList{
				{
					EffectName:        "Extradimensional Storage",
					EffectDescription: "The bag can hold up to 500 pounds, not exceeding a volume of 64 cubic feet.",
				},
			},
		},
	}

	for _, eq := range records {
		if err := equipmentRepo.Create(eq); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", eq.Name, err)
		}
		log.Printf("Created equipment: %s", eq.Name)
	}

	return records, nil
}

func seedInventory(db *sqlx.DB, user *domain.User, records []*domain.Equipment) error {
	log.Println("Seeding inventory...")

	inventoryRepo := repository.NewInventoryRepository(db)

	for i, eq := range records {
		item := &domain.InventoryItem{
			UserID:       user.ID,
			EquipmentID:  eq.ID,
			Quantity:     1 + i%2,
			AcquiredDate: time.Now(),
		}
		if err := inventoryRepo.Create(item); err != nil {
			return fmt.Errorf("failed to add %s to inventory: %w", eq.Name, err)
		}
		log.Printf("Added to inventory: %s x%d", eq.Name, item.Quantity)
	}

	return nil
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

package main

import (
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dessertbook/internal/config"
	"dessertbook/internal/database"
	"dessertbook/internal/domain"
	"dessertbook/internal/domain/auth"
)

type recipeLine struct {
	ingredient string
	qty        string
	substitute string
}

type sampleDessert struct {
	dessert domain.Dessert
	lines   []recipeLine
	reviews []domain.Review
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config error:", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Cleanup old catalog data (children first)
	log.Println("Cleaning old data...")
	for _, table := range []string{"reviews", "instructions", "ingredients", "desserts"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatalf("cleanup %s failed: %v", table, err)
		}
	}

	if err := seedAdmin(db); err != nil {
		log.Fatal("admin seed failed:", err)
	}

	ingredients := map[string]*domain.Ingredient{}
	for _, ing := range []domain.Ingredient{
		{Name: "Flour", Description: "All-purpose wheat flour"},
		{Name: "Sugar", Description: "Granulated white sugar"},
		{Name: "Butter", Description: "Unsalted butter"},
		{Name: "Egg", Description: "Large chicken egg"},
		{Name: "Mascarpone", Description: "Italian cream cheese"},
		{Name: "Espresso", Description: "Strong brewed coffee"},
		{Name: "Cocoa", Description: "Unsweetened cocoa powder"},
		{Name: "Cream cheese", Description: "Full-fat soft cheese"},
	} {
		ing := ing
		if err := db.Create(&ing).Error; err != nil {
			log.Fatalf("ingredient %s: %v", ing.Name, err)
		}
		ingredients[ing.Name] = &ing
	}
	log.Printf("Created %d ingredients", len(ingredients))

	now := time.Now().UTC().Truncate(time.Minute)
	samples := []sampleDessert{
		{
			dessert: domain.Dessert{Name: "Tiramisu", Description: "Layered coffee-soaked ladyfingers with mascarpone cream", SpecificTag: "Italian"},
			lines: []recipeLine{
				{"Mascarpone", "500 g", "Cream cheese"},
				{"Espresso", "300 ml", ""},
				{"Egg", "4", ""},
				{"Sugar", "100 g", ""},
				{"Cocoa", "2 tbsp", ""},
			},
			reviews: []domain.Review{
				{Number: "5", Content: "Just like in Rome.", User: "Giulia", Time: now.Add(-72 * time.Hour)},
				{Number: "4", Content: "A little too much coffee for me.", User: "Sam", Time: now.Add(-24 * time.Hour)},
			},
		},
		{
			dessert: domain.Dessert{Name: "Cheesecake", Description: "Baked cream cheese filling on a butter biscuit base", SpecificTag: "American"},
			lines: []recipeLine{
				{"Cream cheese", "600 g", "Mascarpone"},
				{"Sugar", "150 g", ""},
				{"Egg", "3", ""},
				{"Butter", "80 g", ""},
			},
			reviews: []domain.Review{
				{Number: "5", Content: "Dense and creamy.", User: "Alex", Time: now.Add(-48 * time.Hour)},
			},
		},
		{
			dessert: domain.Dessert{Name: "Brownie", Description: "Fudgy chocolate squares", SpecificTag: "Bake sale"},
			lines: []recipeLine{
				{"Cocoa", "60 g", ""},
				{"Butter", "150 g", ""},
				{"Sugar", "200 g", ""},
				{"Flour", "90 g", "Almond flour"},
				{"Egg", "2", ""},
			},
		},
	}

	lineCount, reviewCount := 0, 0
	for _, sample := range samples {
		err := db.Transaction(func(tx *gorm.DB) error {
			d := sample.dessert
			if err := tx.Create(&d).Error; err != nil {
				return err
			}
			for _, line := range sample.lines {
				in := domain.Instruction{
					DessertID:              d.ID,
					IngredientID:           ingredients[line.ingredient].ID,
					QtyOfIngredient:        line.qty,
					ChangeIngredientOption: line.substitute,
				}
				if err := tx.Omit(clause.Associations).Create(&in).Error; err != nil {
					return err
				}
				lineCount++
			}
			for _, rv := range sample.reviews {
				rv.DessertID = d.ID
				if err := tx.Omit(clause.Associations).Create(&rv).Error; err != nil {
					return err
				}
				reviewCount++
			}
			return nil
		})
		if err != nil {
			log.Fatalf("dessert %s: %v", sample.dessert.Name, err)
		}
	}

	log.Printf("Created %d desserts, %d instructions, %d reviews", len(samples), lineCount, reviewCount)
	log.Println("Seed complete. Log in as admin@dessertbook.local / admin12345")
}

// seedAdmin creates the admin account once; reruns leave it untouched.
func seedAdmin(db *gorm.DB) error {
	hash, err := auth.HashPassword("admin12345")
	if err != nil {
		return err
	}
	admin := domain.User{
		Email:        "admin@dessertbook.local",
		PasswordHash: hash,
		Name:         "Admin",
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&admin).Error
}

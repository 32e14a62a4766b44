package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"menucatalog/config"
	"menucatalog/database"
	menuRepo "menucatalog/database/repository/menu"
	"menucatalog/models"
	"menucatalog/services/menu"
	"menucatalog/utils"

	"go.mongodb.org/mongo-driver/bson"
)

func price(standard, happyHour float64) *models.PriceInput {
	active := happyHour > 0
	return &models.PriceInput{Standard: &standard, HappyHour: &happyHour, HappyHourActive: &active}
}

func sizes(small, large float64) []models.OptionGroupInput {
	return []models.OptionGroupInput{{
		Title: "Size",
		Variants: []models.VariantInput{
			{Name: "Regular", Price: price(small, 0)},
			{Name: "Large", Price: price(large, 0)},
		},
	}}
}

// demoMenu is loaded into an empty collection; names double as a stable order.
var demoMenu = []struct {
	category models.CategoryInput
	subs     []models.SubcategoryInput
}{
	{
		category: models.CategoryInput{Name: "Pizza", Image: "menu/pizza"},
		subs: []models.SubcategoryInput{
			{Name: "Classics", Items: []models.ItemInput{
				{Name: "Margherita", Type: models.DietVeg, Price: price(10, 8)},
				{Name: "Pepperoni", Type: models.DietNonVeg, HasOptions: true, OptionGroups: sizes(12, 16)},
			}},
			{Name: "Specials", Items: []models.ItemInput{
				{Name: "Truffle", Type: models.DietVeg, Price: price(18, 0)},
			}},
		},
	},
	{
		category: models.CategoryInput{Name: "Drinks", Image: "menu/drinks"},
		subs: []models.SubcategoryInput{
			{Name: "Cold", Items: []models.ItemInput{
				{Name: "Lemonade", Type: models.DietNone, HasOptions: true, OptionGroups: sizes(3, 4.5)},
				{Name: "Iced Tea", Type: models.DietNone, Price: price(3, 2)},
			}},
		},
	},
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	database.InitDB()
	db := database.Database()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Clear existing menus.
	if _, err := db.Collection("menus").DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear menus collection: %v", err)
	}

	svc := menu.NewMenuService(menuRepo.NewMongoCategoryRepo(db, logger), logger.Named("seed"))
	for _, entry := range demoMenu {
		cat, err := svc.CreateCategory(ctx, entry.category)
		if err != nil {
			log.Fatalf("Failed to create category %s: %v", entry.category.Name, err)
		}
		for _, sub := range entry.subs {
			if _, err := svc.CreateSubcategory(ctx, cat.ID.Hex(), sub); err != nil {
				log.Fatalf("Failed to create subcategory %s: %v", sub.Name, err)
			}
		}
		fmt.Printf("Seeded category %s (%s)\n", cat.Name, cat.ID.Hex())
	}

	if err := database.CloseDB(ctx); err != nil {
		log.Printf("Failed to disconnect: %v", err)
	}
}

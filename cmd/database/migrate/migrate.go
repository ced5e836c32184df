package migration

import (
	"Recipe-Manager-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FriendRequest{}); err != nil {
		log.Fatalf("Error migrating friend request database: %v", err)
		return err
	}

	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeShare{}); err != nil {
		log.Fatalf("Error migrating recipe share database: %v", err)
		return err
	}

	if err := db.AutoMigrate(&entities.GroceryList{}); err != nil {
		log.Fatalf("Error migrating grocery list database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.GroceryListRecipe{}); err != nil {
		log.Fatalf("Error migrating grocery list recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.GroceryCustomItem{}); err != nil {
		log.Fatalf("Error migrating grocery custom item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.GroceryListShare{}); err != nil {
		log.Fatalf("Error migrating grocery list share database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.GroceryCheckedIngredient{}); err != nil {
		log.Fatalf("Error migrating grocery checked ingredient database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

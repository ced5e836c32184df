package routes

import (
	"Recipe-Manager-Backend/internal/api/handlers"
	"Recipe-Manager-Backend/internal/middleware"
	"Recipe-Manager-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	FriendHandler  handlers.FriendHandler
	RecipeHandler  handlers.RecipeHandler
	GroceryHandler handlers.GroceryHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Friends()
	c.Recipes()
	c.Grocery()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
	}
}

func (c *Config) Friends() {
	friends := c.App.Group("/api/v1/friends", c.Middleware.AuthMiddleware(c.JWTService))

	friends.Get("", c.FriendHandler.GetFriends)
	friends.Delete("/:id", c.FriendHandler.RemoveFriend)

	friends.Post("/requests", c.FriendHandler.SendFriendRequest)
	friends.Get("/requests", c.FriendHandler.GetFriendRequests)
	friends.Post("/requests/:id/accept", c.FriendHandler.AcceptFriendRequest)
	friends.Post("/requests/:id/reject", c.FriendHandler.RejectFriendRequest)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))

	// Basic CRUD operations
	recipes.Post("", c.RecipeHandler.CreateRecipe)
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipe)
	recipes.Patch("/:id", c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)

	// Sharing and media
	recipes.Post("/:id/share", c.RecipeHandler.ShareRecipe)
	recipes.Post("/:id/unshare", c.RecipeHandler.UnshareRecipe)
	recipes.Post("/:id/image", c.RecipeHandler.UploadRecipeImage)
}

func (c *Config) Grocery() {
	grocery := c.App.Group("/api/v1/grocery", c.Middleware.AuthMiddleware(c.JWTService))

	grocery.Get("", c.GroceryHandler.GetGroceryList)
	grocery.Get("/lists", c.GroceryHandler.GetGroceryLists)
	grocery.Post("/recipes", c.GroceryHandler.AddRecipeToList)

	grocery.Delete("/:listId/recipes/:recipeId", c.GroceryHandler.RemoveRecipeFromList)
	grocery.Delete("/:listId/clear", c.GroceryHandler.ClearGroceryList)

	grocery.Post("/:listId/items", c.GroceryHandler.AddCustomItem)
	grocery.Delete("/:listId/items/:itemId", c.GroceryHandler.RemoveCustomItem)
	grocery.Patch("/:listId/items/:itemId", c.GroceryHandler.ToggleCustomItem)

	grocery.Post("/:listId/ingredients/toggle", c.GroceryHandler.ToggleIngredient)

	grocery.Post("/:listId/share", c.GroceryHandler.ShareGroceryList)
	grocery.Post("/:listId/unshare", c.GroceryHandler.UnshareGroceryList)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

package config

import (
	"Recipe-Manager-Backend/internal/api/handlers"
	"Recipe-Manager-Backend/internal/api/routes"
	"Recipe-Manager-Backend/internal/middleware"
	"Recipe-Manager-Backend/internal/utils"
	"Recipe-Manager-Backend/internal/utils/mailing"
	"Recipe-Manager-Backend/internal/utils/storage"
	"Recipe-Manager-Backend/pkg/friend"
	"Recipe-Manager-Backend/pkg/grocery"
	"Recipe-Manager-Backend/pkg/jwt"
	"Recipe-Manager-Backend/pkg/recipe"
	"Recipe-Manager-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewMailer()

	// Repository
	userRepository := user.NewUserRepository(db)
	friendRepository := friend.NewFriendRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	groceryRepository := grocery.NewGroceryRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	friendService := friend.NewFriendService(friendRepository, userRepository, mailer)
	recipeService := recipe.NewRecipeService(recipeRepository, userRepository, friendRepository, s3)
	groceryService := grocery.NewGroceryService(groceryRepository, recipeRepository, userRepository, friendRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	friendHandler := handlers.NewFriendHandler(friendService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	groceryHandler := handlers.NewGroceryHandler(groceryService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		UserHandler:    userHandler,
		FriendHandler:  friendHandler,
		RecipeHandler:  recipeHandler,
		GroceryHandler: groceryHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/Kausha3/smart-pantry/internal/api/handlers"
	"github.com/Kausha3/smart-pantry/internal/api/routes"
	"github.com/Kausha3/smart-pantry/internal/middleware"
	"github.com/Kausha3/smart-pantry/internal/utils"
	"github.com/Kausha3/smart-pantry/internal/utils/storage"
	"github.com/Kausha3/smart-pantry/pkg/jwt"
	"github.com/Kausha3/smart-pantry/pkg/notification"
	"github.com/Kausha3/smart-pantry/pkg/pantry"
	"github.com/Kausha3/smart-pantry/pkg/recipe"
	"github.com/Kausha3/smart-pantry/pkg/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, *notification.Scheduler, error) {
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
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	pantryRepository := pantry.NewPantryRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	pantryService := pantry.NewPantryService(pantryRepository, s3)
	recipeService := recipe.NewRecipeService(pantryRepository, recipe.NewGeminiGenerator())
	notificationService := notification.NewNotificationService(notificationRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	pantryHandler := handlers.NewPantryHandler(pantryService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		PantryHandler:       pantryHandler,
		RecipeHandler:       recipeHandler,
		NotificationHandler: notificationHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()

	interval := 24 * time.Hour
	if hours, err := strconv.Atoi(utils.GetConfig("NOTIFY_INTERVAL_HOURS")); err == nil && hours > 0 {
		interval = time.Duration(hours) * time.Hour
	}
	scheduler := notification.NewScheduler(notificationService, interval)

	return app, scheduler, nil
}

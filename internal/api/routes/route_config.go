package routes

import (
	"github.com/Kausha3/smart-pantry/internal/api/handlers"
	"github.com/Kausha3/smart-pantry/internal/middleware"
	"github.com/Kausha3/smart-pantry/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	PantryHandler       handlers.PantryHandler
	RecipeHandler       handlers.RecipeHandler
	NotificationHandler handlers.NotificationHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.PantryItems()
	c.Recipes()
	c.Notifications()
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

func (c *Config) PantryItems() {
	items := c.App.Group("/api/v1/items", c.Middleware.AuthMiddleware(c.JWTService))
	items.Get("/summary", c.PantryHandler.GetInventorySummary)

	// Basic CRUD operations
	items.Post("", c.PantryHandler.AddItem)
	items.Get("", c.PantryHandler.GetItems)
	items.Get("/:id", c.PantryHandler.GetItemDetails)
	items.Put("/:id", c.PantryHandler.UpdateItem)
	items.Delete("/:id", c.PantryHandler.DeleteItem)

	// Receipt scanning flow
	items.Post("/receipt-scan", c.PantryHandler.UploadReceipt)
	items.Get("/receipt-scan/:id", c.PantryHandler.GetReceiptScan)
	items.Post("/save-scanned", c.PantryHandler.SaveScannedItems)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))
	recipes.Get("/suggestions", c.RecipeHandler.GetSuggestions)
	recipes.Get("/cookbook", c.RecipeHandler.GetCookbook)
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications", c.Middleware.AuthMiddleware(c.JWTService))
	notifications.Get("/preferences", c.NotificationHandler.GetPreference)
	notifications.Put("/preferences", c.NotificationHandler.UpdatePreference)
	notifications.Post("/subscribe", c.NotificationHandler.Subscribe)
	notifications.Delete("/subscribe", c.NotificationHandler.Unsubscribe)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

package routes

import (
	"Smart-Grocery-Backend/internal/api/handlers"
	"Smart-Grocery-Backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                   *fiber.App
	GroceryHandler        handlers.GroceryHandler
	HistoryHandler        handlers.HistoryHandler
	RecommendationHandler handlers.RecommendationHandler
	SubstitutionHandler   handlers.SubstitutionHandler
	SnapshotHandler       handlers.SnapshotHandler
	Middleware            middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.RequestIDMiddleware())
	c.GroceryItems()
	c.History()
	c.Recommendations()
	c.Catalog()
	c.Snapshots()
	c.GuestRoute()
}

func (c *Config) GroceryItems() {
	items := c.App.Group("/api/v1/grocery-items")

	items.Get("/expiring", c.GroceryHandler.GetExpiringItems)
	items.Post("/expiring/remind", c.GroceryHandler.SendExpiryReminder)

	// Basic CRUD operations
	items.Post("", c.GroceryHandler.AddItem)
	items.Get("", c.GroceryHandler.GetItems)
	items.Get("/:id", c.GroceryHandler.GetItemDetails)
	items.Put("/:id", c.GroceryHandler.UpdateItem)
	items.Delete("/:id", c.GroceryHandler.DeleteItem)
}

func (c *Config) History() {
	history := c.App.Group("/api/v1/history")
	{
		history.Post("", c.HistoryHandler.AddBasket)
		history.Get("", c.HistoryHandler.GetBaskets)
	}
}

func (c *Config) Recommendations() {
	c.App.Post("/api/v1/recommendations", c.RecommendationHandler.GetRecommendations)
}

func (c *Config) Catalog() {
	c.App.Get("/api/v1/substitutions", c.SubstitutionHandler.GetSubstitution)
	c.App.Get("/api/v1/catalog/categories", c.SubstitutionHandler.GetCategories)
}

func (c *Config) Snapshots() {
	c.App.Post("/api/v1/snapshots", c.SnapshotHandler.ExportSnapshot)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works. test"})
	})
}

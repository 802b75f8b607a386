package routes

import (
	"rumbles-backend/internal/api/handlers"
	"rumbles-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	CartHandler        handlers.CartHandler
	MenuHandler        handlers.MenuHandler
	BusinessHandler    handlers.BusinessHandler
	ReservationHandler handlers.ReservationHandler
	ContactHandler     handlers.ContactHandler
	ReviewHandler      handlers.ReviewHandler
	Middleware         middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Menu()
	c.Cart()
	c.Business()
	c.Forms()
	c.GuestRoute()
}

func (c *Config) Menu() {
	menu := c.App.Group("/api/v1/menu")
	{
		menu.Get("/categories", c.MenuHandler.GetCategories)
		menu.Get("/categories/featured", c.MenuHandler.GetFeaturedCategories)
		menu.Get("/categories/:slug", c.MenuHandler.GetCategory)
		menu.Get("/items/popular", c.MenuHandler.GetPopularItems)
		menu.Get("/items/search", c.MenuHandler.SearchMenuItems)
		menu.Get("/items/:id", c.MenuHandler.GetMenuItem)
		menu.Get("/images/*", c.MenuHandler.GetMenuImage)
	}
}

func (c *Config) Cart() {
	cart := c.App.Group("/api/v1/cart/:cartId")
	{
		cart.Get("", c.CartHandler.GetCart)
		cart.Post("/items", c.CartHandler.AddItem)
		cart.Patch("/items/:itemId", c.CartHandler.UpdateQuantity)
		cart.Delete("/items/:itemId", c.CartHandler.RemoveItem)
		cart.Delete("", c.CartHandler.ClearCart)
	}
}

func (c *Config) Business() {
	business := c.App.Group("/api/v1/business")
	{
		business.Get("", c.BusinessHandler.GetInfo)
		business.Get("/hours", c.BusinessHandler.GetHours)
		business.Get("/status", c.BusinessHandler.GetStatus)
	}
}

func (c *Config) Forms() {
	c.App.Post("/api/v1/reservations", c.ReservationHandler.CreateReservation)
	c.App.Post("/api/v1/contact", c.ContactHandler.SendMessage)
	c.App.Get("/api/v1/reviews", c.ReviewHandler.GetReviews)
	c.App.Post("/api/v1/reviews", c.ReviewHandler.SubmitReview)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

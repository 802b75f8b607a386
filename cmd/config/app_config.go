package config

import (
	"os"
	"time"

	"rumbles-backend/internal/api/handlers"
	"rumbles-backend/internal/api/routes"
	"rumbles-backend/internal/middleware"
	"rumbles-backend/internal/utils"
	"rumbles-backend/internal/utils/storage"
	"rumbles-backend/pkg/business"
	"rumbles-backend/pkg/cart"
	"rumbles-backend/pkg/contact"
	"rumbles-backend/pkg/menu"
	"rumbles-backend/pkg/reservation"
	"rumbles-backend/pkg/review"

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
		TimeZone:   "Europe/London",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	var cartRepository cart.CartRepository
	if db != nil {
		cartRepository = cart.NewCartRepository(db)
	} else {
		cartRepository = cart.NewMemoryCartRepository()
	}
	menuRepository := menu.NewMenuRepository()

	// Service
	cartService := cart.NewCartService(cartRepository)
	menuService := menu.NewMenuService(menuRepository, s3)
	businessService := business.NewBusinessService()
	reservationService := reservation.NewReservationService()
	contactService := contact.NewContactService()
	reviewService := review.NewReviewService()

	// Handler
	cartHandler := handlers.NewCartHandler(cartService, validator)
	menuHandler := handlers.NewMenuHandler(menuService)
	businessHandler := handlers.NewBusinessHandler(businessService)
	reservationHandler := handlers.NewReservationHandler(reservationService, validator)
	contactHandler := handlers.NewContactHandler(contactService, validator)
	reviewHandler := handlers.NewReviewHandler(reviewService, validator)

	// routes
	routesConfig := routes.Config{
		App:                app,
		CartHandler:        cartHandler,
		MenuHandler:        menuHandler,
		BusinessHandler:    businessHandler,
		ReservationHandler: reservationHandler,
		ContactHandler:     contactHandler,
		ReviewHandler:      reviewHandler,
		Middleware:         middlewares,
	}
	routesConfig.Setup()
	return app, nil
}

package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/lostfound-app/backend/internal/config"
	"github.com/lostfound-app/backend/internal/dto"
	"github.com/lostfound-app/backend/internal/handlers"
	"github.com/lostfound-app/backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	itemHandler *handlers.ItemHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — register/login public with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.Protected(cfg), middleware.LoadUser(db), authHandler.Me)

	// Items — public reads first; "/:id" last so it cannot shadow the
	// literal segments.
	items := api.Group("/items")
	items.Get("/", itemHandler.GetAll)
	items.Get("/lost", itemHandler.GetLost)
	items.Get("/found", itemHandler.GetFound)
	items.Get("/search", itemHandler.Search)
	items.Get("/filter", itemHandler.Filter)

	// Protected writes (owner = authenticated caller)
	jwtGuard := middleware.Protected(cfg)
	loadUser := middleware.LoadUser(db)
	items.Post("/", jwtGuard, loadUser, itemHandler.Create)
	items.Get("/user/my-items", jwtGuard, loadUser, itemHandler.GetMyItems)
	items.Put("/:id", jwtGuard, loadUser, itemHandler.Update)
	items.Delete("/:id", jwtGuard, loadUser, itemHandler.Delete)

	items.Get("/:id", itemHandler.GetByID)

	// Unknown routes get a JSON 404.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Message: "Route not found",
		})
	})
}

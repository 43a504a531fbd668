package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	swagger "github.com/gofiber/swagger"

	_ "github.com/artem13815/taskmanager/docs"

	"github.com/artem13815/taskmanager/api/http/handlers"
	"github.com/artem13815/taskmanager/api/http/presenter"
	"github.com/artem13815/taskmanager/pkg/logging"
	"github.com/artem13815/taskmanager/pkg/security/jwt"
)

// AppOptions tunes the Fiber app built by NewApp.
type AppOptions struct {
	CORSOrigins string
	AccessLog   bool
}

// NewApp builds a Fiber app whose error handler is the single translation
// point from returned errors to JSON responses.
func NewApp(log logging.Logger, opts AppOptions) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "task-manager",
		ErrorHandler: presenter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	if opts.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
		}))
	}
	origins := strings.TrimSpace(opts.CORSOrigins)
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{AllowOrigins: origins}))
	return app
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, auth *handlers.AuthHandler, health *handlers.HealthHandler, tasks *handlers.TaskHandler, authn *jwt.Authenticator) {
	api := app.Group("/api")

	// Health and readiness endpoints for probes/monitoring
	api.Get("/health", health.Health)
	api.Get("/ready", health.Ready)

	a := api.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	t := api.Group("/tasks")
	t.Post("/", authn.Protect(tasks.Create))
	t.Get("/", authn.Protect(tasks.List))
	t.Get("/:id", authn.Protect(tasks.GetByID))
	t.Put("/:id", authn.Protect(tasks.Update))
	t.Delete("/:id", authn.Protect(tasks.Delete))

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Use(presenter.NotFound)
}

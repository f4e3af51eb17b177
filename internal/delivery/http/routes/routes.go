package routes

import (
	"workmatch/internal/delivery/http/handler"
	v1 "workmatch/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	ws     fiber.Handler
	v1     v1.Handlers
}

// NewRegistry wires the route tree. ws may be nil when live notifications
// are disabled.
func NewRegistry(v1Handlers v1.Handlers, ws fiber.Handler) *Registry {
	return &Registry{health: handler.NewHealthHandler(), ws: ws, v1: v1Handlers}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerWS(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.ws == nil {
		return
	}
	app.Get("/ws/notifications", r.ws)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.v1)
}

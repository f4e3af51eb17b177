package v1

import (
	"workmatch/internal/delivery/http/middleware"
	"workmatch/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, h Handlers) {
	if r == nil || h.AuthMiddleware == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}
	if h.Status != nil {
		h.Status.RegisterRoutes(r)
	}

	protected := r.Group("", h.AuthMiddleware.Middleware())
	if h.Skill != nil {
		h.Skill.RegisterRoutes(protected)
	}

	RegisterWorkers(protected.Group("/workers/me", middleware.RequireRole(jwt.RoleWorker)), h)
	RegisterManager(protected.Group("/manager", middleware.RequireRole(jwt.RoleManager)), h)
}

package v1

import "github.com/gofiber/fiber/v3"

func RegisterManager(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Worker != nil {
		h.Worker.RegisterManagerRoutes(r)
	}
	if h.Job != nil {
		h.Job.RegisterRoutes(r)
	}
	if h.Assignment != nil {
		h.Assignment.RegisterManagerRoutes(r)
	}
	if h.Notification != nil {
		h.Notification.RegisterRoutes(r)
	}
}

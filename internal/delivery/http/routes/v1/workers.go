package v1

import "github.com/gofiber/fiber/v3"

func RegisterWorkers(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Worker != nil {
		h.Worker.RegisterRoutes(r)
	}
	if h.Assignment != nil {
		h.Assignment.RegisterWorkerRoutes(r)
	}
}

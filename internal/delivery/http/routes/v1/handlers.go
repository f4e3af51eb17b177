package v1

import (
	"workmatch/internal/delivery/http/handler"
	"workmatch/internal/delivery/http/middleware"
)

// Handlers bundles everything mounted under /api/v1.
type Handlers struct {
	Auth         *handler.AuthHandler
	Status       *handler.StatusHandler
	Skill        *handler.SkillHandler
	Worker       *handler.WorkerHandler
	Job          *handler.JobHandler
	Assignment   *handler.AssignmentHandler
	Notification *handler.NotificationHandler

	AuthMiddleware *middleware.AuthMiddleware
}

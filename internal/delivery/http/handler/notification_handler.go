package handler

import (
	"errors"

	"workmatch/internal/delivery/http/dto"
	"workmatch/internal/delivery/http/middleware"
	"workmatch/internal/pkg/response"
	"workmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

func (h *NotificationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/notifications")
	grp.Get("/", h.List)
	grp.Get("/unread-count", h.UnreadCount)
	grp.Post("/:id/read", h.MarkRead)
}

func (h *NotificationHandler) List(c fiber.Ctx) error {
	managerID, err := principalID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.List(c.Context(), managerID)
	if err != nil {
		return mapNotificationUsecaseError(err)
	}

	res := make([]dto.NotificationResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.NewNotificationResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *NotificationHandler) UnreadCount(c fiber.Ctx) error {
	managerID, err := principalID(c)
	if err != nil {
		return err
	}

	n, err := h.uc.UnreadCount(c.Context(), managerID)
	if err != nil {
		return mapNotificationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"unread": n})
}

func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	managerID, err := principalID(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.MarkRead(c.Context(), managerID, id); err != nil {
		return mapNotificationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

// Unknown and foreign notifications are indistinguishable to the caller.
func mapNotificationUsecaseError(err error) error {
	if errors.Is(err, usecase.ErrNotificationNotFound) {
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	}
	return mapUsecaseError(err)
}

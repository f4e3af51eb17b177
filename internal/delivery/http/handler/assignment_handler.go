package handler

import (
	"errors"

	"workmatch/internal/delivery/http/dto"
	"workmatch/internal/delivery/http/middleware"
	"workmatch/internal/pkg/response"
	"workmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AssignmentHandler struct {
	uc usecase.AssignmentUsecase
}

type createAssignmentRequest struct {
	WorkerID uuid.UUID `json:"worker_id"`
	JobID    uuid.UUID `json:"job_id"`
}

type addTaskRequest struct {
	Title string `json:"title"`
}

type toggleRequest struct {
	Completed *bool `json:"completed"`
}

func NewAssignmentHandler(uc usecase.AssignmentUsecase) *AssignmentHandler {
	return &AssignmentHandler{uc: uc}
}

// RegisterWorkerRoutes mounts the worker dashboard under r (/workers/me).
// Both toggles mutate shared state and require the session's CSRF token.
func (h *AssignmentHandler) RegisterWorkerRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/assignments", h.ListMine)
	r.Patch("/assignments/:id", middleware.RequireCSRF(), h.ToggleAssignment)
	r.Patch("/tasks/:id", middleware.RequireCSRF(), h.ToggleTask)
}

func (h *AssignmentHandler) RegisterManagerRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/assignments", h.Create)
	r.Post("/assignments/:id/tasks", h.AddTask)
}

func (h *AssignmentHandler) ListMine(c fiber.Ctx) error {
	workerID, err := principalID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListForWorker(c.Context(), workerID)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.AssignmentResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.NewAssignmentWithTasksResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *AssignmentHandler) ToggleAssignment(c fiber.Ctx) error {
	workerID, err := principalID(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	completed, err := bindToggle(c)
	if err != nil {
		return err
	}

	a, err := h.uc.ToggleAssignment(c.Context(), workerID, id, completed)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAssignmentResponse(a))
}

func (h *AssignmentHandler) ToggleTask(c fiber.Ctx) error {
	workerID, err := principalID(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	completed, err := bindToggle(c)
	if err != nil {
		return err
	}

	t, err := h.uc.ToggleTask(c.Context(), workerID, id, completed)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewTaskResponse(t))
}

func (h *AssignmentHandler) Create(c fiber.Ctx) error {
	managerID, err := principalID(c)
	if err != nil {
		return err
	}

	var req createAssignmentRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}
	if req.WorkerID == uuid.Nil || req.JobID == uuid.Nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "worker_id and job_id are required", nil, nil)
	}

	a, err := h.uc.Assign(c.Context(), managerID, req.WorkerID, req.JobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, dto.NewAssignmentResponse(a))
}

func (h *AssignmentHandler) AddTask(c fiber.Ctx) error {
	managerID, err := principalID(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req addTaskRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	t, err := h.uc.AddTask(c.Context(), managerID, id, req.Title)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, dto.NewTaskResponse(t))
}

func bindToggle(c fiber.Ctx) (bool, error) {
	var req toggleRequest
	if err := c.Bind().Body(&req); err != nil {
		return false, badRequest(err)
	}
	if req.Completed == nil {
		return false, middleware.NewAppError(fiber.StatusBadRequest, "completed is required", nil, errors.New("missing completed"))
	}
	return *req.Completed, nil
}

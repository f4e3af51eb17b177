package handler

import (
	"errors"

	"workmatch/internal/delivery/http/dto"
	"workmatch/internal/delivery/http/middleware"
	"workmatch/internal/pkg/response"
	"workmatch/internal/usecase"
	ucauth "workmatch/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

type workerRegisterRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Phone          string `json:"phone"`
	Qualifications string `json:"qualifications"`
}

type managerRegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/workers/register", h.RegisterWorker)
	r.Post("/workers/login", h.LoginWorker)
	r.Post("/managers/register", h.RegisterManager)
	r.Post("/managers/login", h.LoginManager)
}

func (h *AuthHandler) RegisterWorker(c fiber.Ctx) error {
	var req workerRegisterRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	sess, err := h.uc.RegisterWorker(c.Context(), ucauth.WorkerRegisterInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Phone:          req.Phone,
		Qualifications: req.Qualifications,
	})
	if err != nil {
		return mapAuthUsecaseError(err)
	}
	return response.Created(c, dto.NewSessionResponse(sess))
}

func (h *AuthHandler) LoginWorker(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	sess, err := h.uc.LoginWorker(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSessionResponse(sess))
}

func (h *AuthHandler) RegisterManager(c fiber.Ctx) error {
	var req managerRegisterRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	sess, err := h.uc.RegisterManager(c.Context(), ucauth.ManagerRegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return mapAuthUsecaseError(err)
	}
	return response.Created(c, dto.NewSessionResponse(sess))
}

func (h *AuthHandler) LoginManager(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	sess, err := h.uc.LoginManager(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSessionResponse(sess))
}

func mapAuthUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var verr *ucauth.ValidationError
	if errors.As(err, &verr) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", verr.Fields, err)
	}

	switch {
	case errors.Is(err, ucauth.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusConflict, "Email already registered", nil, err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid email or password", nil, err)
	case errors.Is(err, ucauth.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

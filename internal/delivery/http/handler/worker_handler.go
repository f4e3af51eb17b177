package handler

import (
	"workmatch/internal/delivery/http/dto"
	"workmatch/internal/pkg/response"
	"workmatch/internal/usecase"
	ucprofile "workmatch/internal/usecase/profile"

	"github.com/gofiber/fiber/v3"
)

type WorkerHandler struct {
	uc usecase.WorkerUsecase
}

type updateProfileRequest struct {
	Name           *string `json:"name"`
	Phone          *string `json:"phone"`
	Qualifications *string `json:"qualifications"`
	Password       *string `json:"password"`
}

type addWorkerSkillRequest struct {
	SkillName   string `json:"skill_name"`
	Proficiency int    `json:"proficiency"`
}

type updateWorkerSkillRequest struct {
	Proficiency int `json:"proficiency"`
}

type addCertificationRequest struct {
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Year   *int   `json:"year"`
}

func NewWorkerHandler(uc usecase.WorkerUsecase) *WorkerHandler {
	return &WorkerHandler{uc: uc}
}

// RegisterRoutes mounts the worker's own profile under r (/workers/me).
func (h *WorkerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.GetMe)
	r.Patch("/", h.UpdateMe)

	r.Get("/skills", h.ListSkills)
	r.Post("/skills", h.AddSkill)
	r.Put("/skills/:id", h.UpdateSkill)
	r.Delete("/skills/:id", h.RemoveSkill)

	r.Get("/certifications", h.ListCertifications)
	r.Post("/certifications", h.AddCertification)
}

// RegisterManagerRoutes exposes the worker directory to managers.
func (h *WorkerHandler) RegisterManagerRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/workers", h.ListWorkers)
}

func (h *WorkerHandler) GetMe(c fiber.Ctx) error {
	workerID, err := principalID(c)
	if err != nil {
		return err
	}

	p, err := h.uc.GetProfile(c.Context(), workerID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewWorkerProfileResponse(p))
}

func (h *WorkerHandler) UpdateMe(c fiber.Ctx) error {
	workerID, err := principalID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	w, err := h.uc.UpdateProfile(c.Context(), workerID, ucprofile.UpdateInput{
		Name:           req.Name,
		Phone:          req.Phone,
		Qualifications: req.Qualifications,
		Password:       req.Password,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewWorkerResponse(w))
}

func (h *WorkerHandler) ListWorkers(c fiber.Ctx) error {
	items, err := h.uc.ListWorkers(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.WorkerResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.NewWorkerResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *WorkerHandler) ListSkills(c fiber.Ctx) error {
	workerID, err := principalID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListSkills(c.Context(), workerID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewWorkerSkillResponses(items))
}

func (h *WorkerHandler) AddSkill(c fiber.Ctx) error {
	workerID, err := principalID(c)
	if err != nil {
		return err
	}

	var req addWorkerSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	created, err := h.uc.AddSkill(c.Context(), workerID, usecase.AddWorkerSkillInput{
		SkillName:   req.SkillName,
		Proficiency: req.Proficiency,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, dto.NewWorkerSkillResponse(created))
}

func (h *WorkerHandler) UpdateSkill(c fiber.Ctx) error {
	workerID, err := principalID(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req updateWorkerSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	updated, err := h.uc.UpdateSkill(c.Context(), workerID, id, req.Proficiency)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewWorkerSkillResponse(updated))
}

func (h *WorkerHandler) RemoveSkill(c fiber.Ctx) error {
	workerID, err := principalID(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveSkill(c.Context(), workerID, id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *WorkerHandler) ListCertifications(c fiber.Ctx) error {
	workerID, err := principalID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListCertifications(c.Context(), workerID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCertificationResponses(items))
}

func (h *WorkerHandler) AddCertification(c fiber.Ctx) error {
	workerID, err := principalID(c)
	if err != nil {
		return err
	}

	var req addCertificationRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	created, err := h.uc.AddCertification(c.Context(), workerID, usecase.CertificationInput{
		Title:  req.Title,
		Issuer: req.Issuer,
		Year:   req.Year,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, dto.NewCertificationResponse(created))
}

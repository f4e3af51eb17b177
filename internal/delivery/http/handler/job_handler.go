package handler

import (
	"strings"

	"workmatch/internal/delivery/http/dto"
	"workmatch/internal/domain/job"
	"workmatch/internal/pkg/response"
	"workmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type JobHandler struct {
	jobs       usecase.JobUsecase
	candidates usecase.CandidateUsecase
	export     usecase.ExportUsecase
}

type jobSkillRequest struct {
	Name          string `json:"name"`
	RequiredLevel int    `json:"required_level"`
}

type createJobRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Skills      []jobSkillRequest `json:"skills"`
	// SkillsText is the free-form "name[:level], ..." alternative to Skills.
	SkillsText string `json:"skills_text"`
}

func NewJobHandler(jobs usecase.JobUsecase, candidates usecase.CandidateUsecase, export usecase.ExportUsecase) *JobHandler {
	return &JobHandler{jobs: jobs, candidates: candidates, export: export}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/jobs")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/:id", h.Get)
	grp.Delete("/:id", h.Delete)
	grp.Get("/:id/candidates", h.Candidates)
	grp.Get("/:id/candidates/export", h.ExportCandidates)
}

func (h *JobHandler) List(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 20)
	if err != nil {
		return badRequest(err)
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return badRequest(err)
	}

	items, err := h.jobs.ListJobs(c.Context(), usecase.JobListParams{Limit: limit, Offset: offset})
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.JobResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.NewJobResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	managerID, err := principalID(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	skills := make([]job.SkillInput, 0, len(req.Skills))
	for _, s := range req.Skills {
		skills = append(skills, job.SkillInput{Name: s.Name, RequiredLevel: s.RequiredLevel})
	}
	if len(skills) == 0 && strings.TrimSpace(req.SkillsText) != "" {
		skills = usecase.ParseSkillList(req.SkillsText)
	}

	created, err := h.jobs.CreateJob(c.Context(), managerID, usecase.CreateJobInput{
		Title:       req.Title,
		Description: req.Description,
		Skills:      skills,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, dto.NewJobResponse(created))
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	j, err := h.jobs.GetJob(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(j))
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.jobs.DeleteJob(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *JobHandler) Candidates(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	list, err := h.candidates.RankCandidates(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	if list.Cached {
		c.Set("X-Cache", "HIT")
	} else {
		c.Set("X-Cache", "MISS")
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateListResponse(list))
}

func (h *JobHandler) ExportCandidates(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	buf, filename, err := h.export.ExportCandidates(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}

	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, xlsxContentType)
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}

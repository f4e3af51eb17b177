package usecase

import "errors"

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")

	ErrWorkerNotFound          = errors.New("worker not found")
	ErrSkillNotFound           = errors.New("skill not found")
	ErrSkillAlreadyExists      = errors.New("skill already exists")
	ErrInvalidProficiencyLevel = errors.New("invalid proficiency level")
	ErrJobNotFound             = errors.New("job not found")
	ErrJobHasAssignments       = errors.New("job has assignments")
	ErrAssignmentNotFound      = errors.New("assignment not found")
	ErrAssignmentExists        = errors.New("worker already has an active assignment for this job")
	ErrTaskNotFound            = errors.New("task not found")
	ErrNotificationNotFound    = errors.New("notification not found")
)

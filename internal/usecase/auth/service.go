package auth

import (
	"context"
	"errors"
	"net/mail"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"workmatch/internal/domain/manager"
	"workmatch/internal/domain/worker"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

const (
	minPasswordLen = 8
	// bcrypt refuses longer input.
	maxPasswordBytes = 72
)

// ValidationError lists the offending fields of a register request.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "invalid input: " + strings.Join(keys, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

type WorkerRegisterInput struct {
	Name           string
	Email          string
	Password       string
	Phone          string
	Qualifications string
}

type ManagerRegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type Service struct {
	workers  worker.Repository
	managers manager.Repository
}

func NewService(workers worker.Repository, managers manager.Repository) *Service {
	return &Service{workers: workers, managers: managers}
}

func (s *Service) RegisterWorker(ctx context.Context, in WorkerRegisterInput) (worker.Worker, error) {
	name, email, err := validateRegistration(in.Name, in.Email, in.Password)
	if err != nil {
		return worker.Worker{}, err
	}

	exists, err := s.workers.ExistsByEmail(ctx, email)
	if err != nil {
		return worker.Worker{}, ErrInternal
	}
	if exists {
		return worker.Worker{}, ErrEmailAlreadyRegistered
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return worker.Worker{}, ErrInternal
	}

	w := worker.Worker{
		ID:             uuid.New(),
		Name:           name,
		Email:          email,
		PasswordHash:   hash,
		Phone:          strings.TrimSpace(in.Phone),
		Qualifications: strings.TrimSpace(in.Qualifications),
	}
	if err := s.workers.Create(ctx, w); err != nil {
		if errors.Is(err, worker.ErrEmailTaken) {
			return worker.Worker{}, ErrEmailAlreadyRegistered
		}
		return worker.Worker{}, ErrInternal
	}

	created, err := s.workers.GetByID(ctx, w.ID)
	if err != nil {
		return worker.Worker{}, ErrInternal
	}
	created.PasswordHash = ""
	return created, nil
}

func (s *Service) RegisterManager(ctx context.Context, in ManagerRegisterInput) (manager.Manager, error) {
	name, email, err := validateRegistration(in.Name, in.Email, in.Password)
	if err != nil {
		return manager.Manager{}, err
	}

	exists, err := s.managers.ExistsByEmail(ctx, email)
	if err != nil {
		return manager.Manager{}, ErrInternal
	}
	if exists {
		return manager.Manager{}, ErrEmailAlreadyRegistered
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return manager.Manager{}, ErrInternal
	}

	m := manager.Manager{ID: uuid.New(), Name: name, Email: email, PasswordHash: hash}
	if err := s.managers.Create(ctx, m); err != nil {
		if errors.Is(err, manager.ErrEmailTaken) {
			return manager.Manager{}, ErrEmailAlreadyRegistered
		}
		return manager.Manager{}, ErrInternal
	}

	created, err := s.managers.GetByID(ctx, m.ID)
	if err != nil {
		return manager.Manager{}, ErrInternal
	}
	created.PasswordHash = ""
	return created, nil
}

func (s *Service) LoginWorker(ctx context.Context, in LoginInput) (worker.Worker, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return worker.Worker{}, ErrInvalidCredentials
	}

	w, err := s.workers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, worker.ErrNotFound) {
			return worker.Worker{}, ErrInvalidCredentials
		}
		return worker.Worker{}, ErrInternal
	}
	if err := bcrypt.CompareHashAndPassword([]byte(w.PasswordHash), []byte(in.Password)); err != nil {
		return worker.Worker{}, ErrInvalidCredentials
	}

	w.PasswordHash = ""
	return w, nil
}

func (s *Service) LoginManager(ctx context.Context, in LoginInput) (manager.Manager, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return manager.Manager{}, ErrInvalidCredentials
	}

	m, err := s.managers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, manager.ErrNotFound) {
			return manager.Manager{}, ErrInvalidCredentials
		}
		return manager.Manager{}, ErrInternal
	}
	if err := bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte(in.Password)); err != nil {
		return manager.Manager{}, ErrInvalidCredentials
	}

	m.PasswordHash = ""
	return m, nil
}

func validateRegistration(name, email, password string) (string, string, error) {
	fields := map[string]string{}

	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		fields["name"] = "name is required"
	}

	email = normalizeEmail(email)
	switch {
	case email == "":
		fields["email"] = "email is required"
	case !isValidEmail(email):
		fields["email"] = "email is invalid"
	}

	if msg := PasswordProblem(password); msg != "" {
		fields["password"] = msg
	}

	if len(fields) > 0 {
		return "", "", &ValidationError{Fields: fields}
	}
	return name, email, nil
}

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email && strings.Contains(email[strings.LastIndex(email, "@")+1:], ".")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// PasswordProblem returns the validation message for pw, or "" when pw is
// acceptable. Registration and profile updates share this rule.
func PasswordProblem(pw string) string {
	switch {
	case strings.TrimSpace(pw) == "":
		return "password is required"
	case len(pw) < minPasswordLen:
		return "password must be at least 8 characters"
	case len(pw) > maxPasswordBytes:
		return "password must be at most 72 bytes"
	}
	return ""
}

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

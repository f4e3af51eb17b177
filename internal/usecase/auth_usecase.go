package usecase

import (
	"context"
	"time"

	"workmatch/internal/pkg/jwt"
	"workmatch/internal/pkg/logger"
	ucauth "workmatch/internal/usecase/auth"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session is what a successful register or login hands back to the client.
type Session struct {
	ID          uuid.UUID
	Role        string
	Name        string
	Email       string
	AccessToken string
	CSRFToken   string
	ExpiresAt   time.Time
}

type AuthUsecase interface {
	RegisterWorker(ctx context.Context, in ucauth.WorkerRegisterInput) (Session, error)
	LoginWorker(ctx context.Context, in ucauth.LoginInput) (Session, error)
	RegisterManager(ctx context.Context, in ucauth.ManagerRegisterInput) (Session, error)
	LoginManager(ctx context.Context, in ucauth.LoginInput) (Session, error)
}

type Auth struct {
	authSvc *ucauth.Service
	jwt     jwt.Service
	cache   CandidateCache
	log     *zap.Logger
}

// NewAuthUsecase wires registration and login. cache may be nil; when set,
// worker registration clears the cached rankings so the new worker shows up.
func NewAuthUsecase(authSvc *ucauth.Service, jwtSvc jwt.Service, cache CandidateCache, log *zap.Logger) *Auth {
	return &Auth{authSvc: authSvc, jwt: jwtSvc, cache: cache, log: logger.OrNop(log)}
}

func (u *Auth) RegisterWorker(ctx context.Context, in ucauth.WorkerRegisterInput) (Session, error) {
	w, err := u.authSvc.RegisterWorker(ctx, in)
	if err != nil {
		return Session{}, err
	}

	invalidateAllRankings(ctx, u.cache, u.log)
	return u.issue(w.ID, jwt.RoleWorker, w.Name, w.Email)
}

func (u *Auth) LoginWorker(ctx context.Context, in ucauth.LoginInput) (Session, error) {
	w, err := u.authSvc.LoginWorker(ctx, in)
	if err != nil {
		return Session{}, err
	}
	return u.issue(w.ID, jwt.RoleWorker, w.Name, w.Email)
}

func (u *Auth) RegisterManager(ctx context.Context, in ucauth.ManagerRegisterInput) (Session, error) {
	m, err := u.authSvc.RegisterManager(ctx, in)
	if err != nil {
		return Session{}, err
	}
	return u.issue(m.ID, jwt.RoleManager, m.Name, m.Email)
}

func (u *Auth) LoginManager(ctx context.Context, in ucauth.LoginInput) (Session, error) {
	m, err := u.authSvc.LoginManager(ctx, in)
	if err != nil {
		return Session{}, err
	}
	return u.issue(m.ID, jwt.RoleManager, m.Name, m.Email)
}

func (u *Auth) issue(id uuid.UUID, role, name, email string) (Session, error) {
	tok, err := u.jwt.GenerateAccessToken(id, role, name)
	if err != nil {
		return Session{}, ErrInternal
	}
	return Session{
		ID:          id,
		Role:        role,
		Name:        name,
		Email:       email,
		AccessToken: tok.AccessToken,
		CSRFToken:   tok.CSRFToken,
		ExpiresAt:   tok.ExpiresAt,
	}, nil
}

package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"workmatch/internal/domain/manager"
	"workmatch/internal/domain/worker"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memWorkers struct {
	byID map[uuid.UUID]worker.Worker
	err  error
}

func newMemWorkers() *memWorkers { return &memWorkers{byID: map[uuid.UUID]worker.Worker{}} }

func (m *memWorkers) Create(_ context.Context, w worker.Worker) error {
	if m.err != nil {
		return m.err
	}
	for _, it := range m.byID {
		if strings.EqualFold(it.Email, w.Email) {
			return worker.ErrEmailTaken
		}
	}
	m.byID[w.ID] = w
	return nil
}

func (m *memWorkers) GetByID(_ context.Context, id uuid.UUID) (worker.Worker, error) {
	w, ok := m.byID[id]
	if !ok {
		return worker.Worker{}, worker.ErrNotFound
	}
	return w, nil
}

func (m *memWorkers) GetByEmail(_ context.Context, email string) (worker.Worker, error) {
	for _, it := range m.byID {
		if strings.EqualFold(it.Email, email) {
			return it, nil
		}
	}
	return worker.Worker{}, worker.ErrNotFound
}

func (m *memWorkers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, err := m.GetByEmail(ctx, email)
	return err == nil, nil
}

func (m *memWorkers) Update(_ context.Context, w worker.Worker) error {
	m.byID[w.ID] = w
	return nil
}

func (m *memWorkers) List(context.Context, int) ([]worker.Worker, error) { return nil, nil }

type memManagers struct {
	byID map[uuid.UUID]manager.Manager
}

func newMemManagers() *memManagers { return &memManagers{byID: map[uuid.UUID]manager.Manager{}} }

func (m *memManagers) Create(_ context.Context, mg manager.Manager) error {
	for _, it := range m.byID {
		if strings.EqualFold(it.Email, mg.Email) {
			return manager.ErrEmailTaken
		}
	}
	m.byID[mg.ID] = mg
	return nil
}

func (m *memManagers) GetByID(_ context.Context, id uuid.UUID) (manager.Manager, error) {
	mg, ok := m.byID[id]
	if !ok {
		return manager.Manager{}, manager.ErrNotFound
	}
	return mg, nil
}

func (m *memManagers) GetByEmail(_ context.Context, email string) (manager.Manager, error) {
	for _, it := range m.byID {
		if strings.EqualFold(it.Email, email) {
			return it, nil
		}
	}
	return manager.Manager{}, manager.ErrNotFound
}

func (m *memManagers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	return err == nil, nil
}

func (m *memManagers) Count(context.Context) (int, error) { return len(m.byID), nil }

func TestRegisterWorker_Success(t *testing.T) {
	svc := NewService(newMemWorkers(), newMemManagers())

	w, err := svc.RegisterWorker(context.Background(), WorkerRegisterInput{
		Name:     "  Ana   Lima ",
		Email:    " Ana@Example.com ",
		Password: "password1",
		Phone:    " 555-0101 ",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, w.ID)
	assert.Equal(t, "Ana Lima", w.Name)
	assert.Equal(t, "ana@example.com", w.Email)
	assert.Equal(t, "555-0101", w.Phone)
	assert.Empty(t, w.PasswordHash)
}

func TestRegisterWorker_DuplicateEmail(t *testing.T) {
	svc := NewService(newMemWorkers(), newMemManagers())
	in := WorkerRegisterInput{Name: "Ana", Email: "ana@example.com", Password: "password1"}

	_, err := svc.RegisterWorker(context.Background(), in)
	require.NoError(t, err)

	in.Email = "ANA@example.com"
	_, err = svc.RegisterWorker(context.Background(), in)
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestRegisterWorker_Validation(t *testing.T) {
	svc := NewService(newMemWorkers(), newMemManagers())

	_, err := svc.RegisterWorker(context.Background(), WorkerRegisterInput{Email: "not-an-email", Password: "short"})
	require.ErrorIs(t, err, ErrInvalidInput)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "name is required", verr.Fields["name"])
	assert.Equal(t, "email is invalid", verr.Fields["email"])
	assert.Contains(t, verr.Fields["password"], "at least 8")

	_, err = svc.RegisterWorker(context.Background(), WorkerRegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: strings.Repeat("x", 73),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "password must be at most 72 bytes", verr.Fields["password"])
}

func TestPasswordProblem(t *testing.T) {
	assert.Empty(t, PasswordProblem("  abc   "))
	assert.Empty(t, PasswordProblem(strings.Repeat("x", 72)))
	assert.Equal(t, "password is required", PasswordProblem("   "))
	assert.Equal(t, "password must be at least 8 characters", PasswordProblem("short"))
	assert.Equal(t, "password must be at most 72 bytes", PasswordProblem(strings.Repeat("x", 73)))
}

func TestRegisterWorker_RepositoryFailure(t *testing.T) {
	repo := newMemWorkers()
	repo.err = errors.New("db down")
	svc := NewService(repo, newMemManagers())

	_, err := svc.RegisterWorker(context.Background(), WorkerRegisterInput{Name: "Ana", Email: "ana@example.com", Password: "password1"})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestLoginWorker(t *testing.T) {
	svc := NewService(newMemWorkers(), newMemManagers())
	_, err := svc.RegisterWorker(context.Background(), WorkerRegisterInput{Name: "Ana", Email: "ana@example.com", Password: "password1"})
	require.NoError(t, err)

	w, err := svc.LoginWorker(context.Background(), LoginInput{Email: "ANA@example.com", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", w.Name)
	assert.Empty(t, w.PasswordHash)

	_, err = svc.LoginWorker(context.Background(), LoginInput{Email: "ana@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.LoginWorker(context.Background(), LoginInput{Email: "nobody@example.com", Password: "password1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestManagerRegisterAndLogin(t *testing.T) {
	svc := NewService(newMemWorkers(), newMemManagers())

	m, err := svc.RegisterManager(context.Background(), ManagerRegisterInput{Name: "Maria", Email: "maria@example.com", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, "Maria", m.Name)

	_, err = svc.RegisterManager(context.Background(), ManagerRegisterInput{Name: "Maria", Email: "maria@example.com", Password: "password1"})
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)

	got, err := svc.LoginManager(context.Background(), LoginInput{Email: "maria@example.com", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, m.ID, got.ID)

	_, err = svc.LoginWorker(context.Background(), LoginInput{Email: "maria@example.com", Password: "password1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

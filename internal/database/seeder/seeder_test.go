package seeder

import (
	"context"
	"strings"
	"testing"

	"workmatch/internal/config"
	"workmatch/internal/domain/manager"
	ucauth "workmatch/internal/usecase/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog_Embedded(t *testing.T) {
	items, err := LoadCatalog(defaultCatalog)
	require.NoError(t, err)
	require.NotEmpty(t, items)

	seen := map[string]bool{}
	for _, it := range items {
		key := strings.ToLower(it.Name)
		assert.False(t, seen[key], "duplicate skill %s", it.Name)
		seen[key] = true
		assert.NotEmpty(t, it.Category)
	}
}

func TestLoadCatalog_DedupAndTrim(t *testing.T) {
	data := []byte(`
categories:
  - name: "  Trades "
    skills: ["  Welding ", "", "welding", "Masonry"]
  - name: Other
    skills: [MASONRY, Cooking]
`)
	items, err := LoadCatalog(data)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, CatalogEntry{Name: "Welding", Category: "Trades"}, items[0])
	assert.Equal(t, CatalogEntry{Name: "Masonry", Category: "Trades"}, items[1])
	assert.Equal(t, CatalogEntry{Name: "Cooking", Category: "Other"}, items[2])
}

func TestLoadCatalog_Invalid(t *testing.T) {
	_, err := LoadCatalog([]byte("categories: [unclosed"))
	require.Error(t, err)
}

type memManagers struct {
	items []manager.Manager
}

func (m *memManagers) Create(_ context.Context, mg manager.Manager) error {
	m.items = append(m.items, mg)
	return nil
}

func (m *memManagers) GetByID(_ context.Context, id uuid.UUID) (manager.Manager, error) {
	for _, it := range m.items {
		if it.ID == id {
			return it, nil
		}
	}
	return manager.Manager{}, manager.ErrNotFound
}

func (m *memManagers) GetByEmail(_ context.Context, email string) (manager.Manager, error) {
	for _, it := range m.items {
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

func (m *memManagers) Count(context.Context) (int, error) { return len(m.items), nil }

func TestManagerSeeder_CreatesFirstManager(t *testing.T) {
	repo := &memManagers{}
	s := ManagerSeeder{
		Config:   config.SeedConfig{ManagerName: "Admin", ManagerEmail: "admin@example.com", ManagerPassword: "supersecret"},
		Managers: repo,
		Auth:     ucauth.NewService(nil, repo),
	}

	require.NoError(t, s.Run(context.Background(), nil))
	require.Len(t, repo.items, 1)
	assert.Equal(t, "admin@example.com", repo.items[0].Email)
	assert.NotEqual(t, "supersecret", repo.items[0].PasswordHash)

	// second run is a no-op
	require.NoError(t, s.Run(context.Background(), nil))
	assert.Len(t, repo.items, 1)
}

func TestManagerSeeder_SkipsWithoutCredentials(t *testing.T) {
	repo := &memManagers{}
	s := ManagerSeeder{Config: config.SeedConfig{ManagerName: "Admin"}, Managers: repo, Auth: ucauth.NewService(nil, repo)}

	require.NoError(t, s.Run(context.Background(), nil))
	assert.Empty(t, repo.items)
}

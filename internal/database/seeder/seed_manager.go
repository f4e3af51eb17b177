package seeder

import (
	"context"
	"fmt"
	"strings"

	"workmatch/internal/config"
	"workmatch/internal/database"
	"workmatch/internal/domain/manager"
	ucauth "workmatch/internal/usecase/auth"
)

// ManagerSeeder creates the first manager account from configuration. It
// does nothing once any manager exists or when no credentials are set.
type ManagerSeeder struct {
	Config   config.SeedConfig
	Managers manager.Repository
	Auth     *ucauth.Service
}

func (ManagerSeeder) Name() string { return "manager" }

func (s ManagerSeeder) Run(ctx context.Context, _ database.DB) error {
	if s.Managers == nil || s.Auth == nil {
		return fmt.Errorf("manager seeder not configured")
	}
	if strings.TrimSpace(s.Config.ManagerEmail) == "" || s.Config.ManagerPassword == "" {
		return nil
	}

	n, err := s.Managers.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	_, err = s.Auth.RegisterManager(ctx, ucauth.ManagerRegisterInput{
		Name:     s.Config.ManagerName,
		Email:    s.Config.ManagerEmail,
		Password: s.Config.ManagerPassword,
	})
	return err
}

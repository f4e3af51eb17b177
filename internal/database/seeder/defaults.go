package seeder

import (
	"workmatch/internal/config"
	"workmatch/internal/domain/manager"
	ucauth "workmatch/internal/usecase/auth"
)

func Defaults(cfg config.SeedConfig, managers manager.Repository, auth *ucauth.Service) []Seeder {
	return []Seeder{
		SkillsSeeder{},
		ManagerSeeder{Config: cfg, Managers: managers, Auth: auth},
	}
}

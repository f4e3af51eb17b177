package seeder

import (
	"context"
	_ "embed"
	"fmt"

	"workmatch/internal/database"
	"workmatch/internal/domain/skill"

	"gopkg.in/yaml.v3"
)

//go:embed skills.yaml
var defaultCatalog []byte

type CatalogEntry struct {
	Name     string
	Category string
}

type catalogFile struct {
	Categories []struct {
		Name   string   `yaml:"name"`
		Skills []string `yaml:"skills"`
	} `yaml:"categories"`
}

// LoadCatalog parses a skills catalog. Blank names are skipped and a name
// repeated under another category keeps its first category.
func LoadCatalog(data []byte) ([]CatalogEntry, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse skills catalog: %w", err)
	}

	seen := make(map[string]struct{})
	out := make([]CatalogEntry, 0)
	for _, cat := range f.Categories {
		for _, raw := range cat.Skills {
			name := skill.NormalizeName(raw)
			if name == "" {
				continue
			}
			key := skill.Key(name)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, CatalogEntry{Name: name, Category: skill.NormalizeName(cat.Name)})
		}
	}
	return out, nil
}

type SkillsSeeder struct {
	// Catalog overrides the embedded skills.yaml.
	Catalog []byte
}

func (SkillsSeeder) Name() string { return "skills" }

func (s SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category", "created_at"); err != nil {
		return err
	}

	data := s.Catalog
	if len(data) == 0 {
		data = defaultCatalog
	}
	items, err := LoadCatalog(data)
	if err != nil {
		return err
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, it := range items {
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO skills (id, name, category) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT DO NOTHING`,
				it.Name,
				it.Category,
			); err != nil {
				return fmt.Errorf("insert skill %q: %w", it.Name, err)
			}
		}
		return nil
	})
}

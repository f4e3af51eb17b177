// Package migration applies the versioned SQL files under migrations/.
package migration

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"workmatch/internal/pkg/logger"

	"go.uber.org/zap"
)

// lockKey serialises concurrent migrate runs against one database.
const lockKey int64 = 0x776d6967

var (
	ErrNoSource         = errors.New("migration source not configured")
	ErrChecksumMismatch = errors.New("applied migration was modified")
)

// File is one V<version>__<name>.sql migration.
type File struct {
	Version  int64
	Name     string
	Path     string
	Body     string
	Checksum string
}

// Plan splits the known files into those already recorded and those still
// to run.
type Plan struct {
	Applied []File
	Pending []File
}

// Runner applies migration files in version order and records each one in
// schema_migrations together with its checksum.
type Runner struct {
	// FS wins over Dir when both are set.
	FS     fs.FS
	Dir    string
	Logger *zap.Logger
}

var fileName = regexp.MustCompile(`^V(\d+)__([A-Za-z0-9_.-]+)\.sql$`)

// Run applies every pending migration. A recorded migration whose file
// changed aborts the run before anything new is applied.
func (r Runner) Run(ctx context.Context, db *sql.DB) error {
	log := logger.OrNop(r.Logger)

	return r.locked(ctx, db, func() error {
		plan, err := r.plan(ctx, db)
		if err != nil {
			return err
		}
		if len(plan.Pending) == 0 {
			log.Info("schema up to date", zap.Int("applied", len(plan.Applied)))
			return nil
		}

		for _, f := range plan.Pending {
			start := time.Now()
			if err := apply(ctx, db, f); err != nil {
				return err
			}
			log.Info("migration applied",
				zap.Int64("version", f.Version),
				zap.String("name", f.Name),
				zap.Duration("took", time.Since(start)),
			)
		}
		return nil
	})
}

// Status reports applied and pending migrations without changing anything.
func (r Runner) Status(ctx context.Context, db *sql.DB) (Plan, error) {
	var out Plan
	err := r.locked(ctx, db, func() error {
		p, err := r.plan(ctx, db)
		out = p
		return err
	})
	return out, err
}

func (r Runner) locked(ctx context.Context, db *sql.DB, fn func() error) error {
	if db == nil {
		return errors.New("nil db")
	}
	if err := createLedger(ctx, db); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	if _, err := db.ExecContext(ctx, `SELECT pg_advisory_lock($1)`, lockKey); err != nil {
		return fmt.Errorf("acquire migration lock: %w", err)
	}
	defer func() {
		_, _ = db.ExecContext(context.Background(), `SELECT pg_advisory_unlock($1)`, lockKey)
	}()

	return fn()
}

func (r Runner) plan(ctx context.Context, db *sql.DB) (Plan, error) {
	src, err := r.source()
	if err != nil {
		return Plan{}, err
	}
	files, err := Load(src)
	if err != nil {
		return Plan{}, err
	}
	recorded, err := recordedChecksums(ctx, db)
	if err != nil {
		return Plan{}, err
	}

	var p Plan
	for _, f := range files {
		sum, ok := recorded[f.Version]
		switch {
		case !ok:
			p.Pending = append(p.Pending, f)
		case sum != f.Checksum:
			return Plan{}, fmt.Errorf("%w: V%d %s", ErrChecksumMismatch, f.Version, f.Name)
		default:
			p.Applied = append(p.Applied, f)
		}
	}
	return p, nil
}

func (r Runner) source() (fs.FS, error) {
	if r.FS != nil {
		return r.FS, nil
	}
	if dir := strings.TrimSpace(r.Dir); dir != "" {
		return os.DirFS(dir), nil
	}
	return nil, ErrNoSource
}

// Load reads the migration files at the root of src, sorted by version.
// Files not matching the naming scheme are skipped.
func Load(src fs.FS) ([]File, error) {
	entries, err := fs.ReadDir(src, ".")
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	files := make([]File, 0, len(entries))
	seen := make(map[int64]string, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		parts := fileName.FindStringSubmatch(e.Name())
		if parts == nil {
			continue
		}

		version, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad migration version in %s: %w", e.Name(), err)
		}
		if prev, dup := seen[version]; dup {
			return nil, fmt.Errorf("duplicate migration version %d: %s and %s", version, prev, e.Name())
		}
		seen[version] = e.Name()

		raw, err := fs.ReadFile(src, e.Name())
		if err != nil {
			return nil, err
		}
		body := strings.TrimSpace(string(raw))
		if body == "" {
			return nil, fmt.Errorf("migration %s is empty", e.Name())
		}

		sum := sha256.Sum256([]byte(body))
		files = append(files, File{
			Version:  version,
			Name:     parts[2],
			Path:     e.Name(),
			Body:     body,
			Checksum: hex.EncodeToString(sum[:]),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Version < files[j].Version })
	return files, nil
}

func createLedger(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
	version    BIGINT PRIMARY KEY,
	name       TEXT NOT NULL,
	checksum   TEXT NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`)
	return err
}

func recordedChecksums(ctx context.Context, db *sql.DB) (map[int64]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT version, checksum FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64]string)
	for rows.Next() {
		var (
			version int64
			sum     string
		)
		if err := rows.Scan(&version, &sum); err != nil {
			return nil, err
		}
		out[version] = sum
	}
	return out, rows.Err()
}

// apply runs one file and its ledger row in a single transaction.
func apply(ctx context.Context, db *sql.DB, f File) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, f.Body); err != nil {
		return fmt.Errorf("migration V%d (%s): %w", f.Version, f.Path, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, name, checksum) VALUES ($1, $2, $3)`,
		f.Version, f.Name, f.Checksum,
	); err != nil {
		return fmt.Errorf("record migration V%d: %w", f.Version, err)
	}
	return tx.Commit()
}

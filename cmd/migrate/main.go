package main

import (
	"context"
	"flag"
	"log"
	"time"

	"workmatch/internal/config"
	"workmatch/internal/database/migration"
	dbpostgres "workmatch/internal/database/postgres"
	"workmatch/internal/database/seeder"
	"workmatch/internal/infrastructure/persistence/postgres"
	"workmatch/internal/pkg/logger"
	ucauth "workmatch/internal/usecase/auth"
	"workmatch/migrations"

	"go.uber.org/zap"
)

func main() {
	seed := flag.Bool("seed", true, "run seeders after migrating")
	dir := flag.String("dir", "", "read migrations from this directory instead of the embedded set")
	status := flag.Bool("status", false, "list applied and pending migrations, then exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		lg.Fatal("database connect failed", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	r := migration.Runner{FS: migrations.FS, Logger: lg.Named("migration")}
	if d := *dir; d != "" {
		r = migration.Runner{Dir: d, Logger: lg.Named("migration")}
	} else if cfg.Database.MigrationsDir != "" {
		r = migration.Runner{Dir: cfg.Database.MigrationsDir, Logger: lg.Named("migration")}
	}
	if *status {
		plan, err := r.Status(ctx, db.SQLDB())
		if err != nil {
			lg.Fatal("migration status failed", zap.Error(err))
		}
		for _, f := range plan.Applied {
			lg.Info("applied", zap.Int64("version", f.Version), zap.String("name", f.Name))
		}
		for _, f := range plan.Pending {
			lg.Info("pending", zap.Int64("version", f.Version), zap.String("name", f.Name))
		}
		return
	}

	if err := r.Run(ctx, db.SQLDB()); err != nil {
		lg.Fatal("migration failed", zap.Error(err))
	}

	if !*seed {
		return
	}

	managers, err := postgres.NewManagerRepository(ctx, db.SQLDB())
	if err != nil {
		lg.Fatal("manager repository init failed", zap.Error(err))
	}
	defer func() { _ = managers.Close() }()

	sr := seeder.Runner{
		Seeders: seeder.Defaults(cfg.Seed, managers, ucauth.NewService(nil, managers)),
		Logger:  lg.Named("seeder"),
	}
	if err := sr.Run(ctx, db); err != nil {
		lg.Fatal("seeding failed", zap.Error(err))
	}
	lg.Info("migrate done")
}

package app

import (
	"context"
	"errors"
	"time"

	"workmatch/internal/config"
	"workmatch/internal/database"
	dbpostgres "workmatch/internal/database/postgres"
	"workmatch/internal/delivery/http/handler"
	"workmatch/internal/delivery/http/middleware"
	v1 "workmatch/internal/delivery/http/routes/v1"
	"workmatch/internal/infrastructure/cache"
	"workmatch/internal/infrastructure/persistence/postgres"
	"workmatch/internal/pkg/jwt"
	"workmatch/internal/pkg/logger"
	"workmatch/internal/repository"
	"workmatch/internal/usecase"
	ucauth "workmatch/internal/usecase/auth"
	"workmatch/internal/ws"

	"go.uber.org/zap"
)

// Container owns the process-wide infrastructure and the wired handlers.
type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	Handlers  v1.Handlers
	WSHandler *ws.Handler

	workers  *postgres.WorkerRepository
	managers *postgres.ManagerRepository

	stopHub context.CancelFunc
}

func NewContainer(cfg config.Config, log *zap.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	log = logger.OrNop(log)
	c := &Container{Config: cfg, Logger: log, DB: db}

	c.workers, err = postgres.NewWorkerRepository(ctx, db.SQLDB())
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.managers, err = postgres.NewManagerRepository(ctx, db.SQLDB())
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	c.Cache = cache.NewRedis(ctx, cfg.Redis, log.Named("cache"))

	hubCtx, stopHub := context.WithCancel(context.Background())
	c.stopHub = stopHub
	c.Hub = ws.NewHub(log.Named("ws"))
	go c.Hub.Run(hubCtx)

	c.wire()
	return c, nil
}

func (c *Container) wire() {
	cfg := c.Config
	log := c.Logger

	jwtSvc := jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn)

	skills := repository.NewPostgresSkillRepository(c.DB)
	workerSkills := repository.NewPostgresWorkerSkillRepository(c.DB)
	certs := repository.NewPostgresCertificationRepository(c.DB)
	jobs := repository.NewPostgresJobRepository(c.DB)
	candidates := repository.NewPostgresCandidateRepository(c.DB)
	assignments := repository.NewPostgresAssignmentRepository(c.DB)
	tasks := repository.NewPostgresTaskRepository(c.DB)
	notifications := repository.NewPostgresNotificationRepository(c.DB)
	status := repository.NewPostgresStatusRepository(c.DB)

	authUC := usecase.NewAuthUsecase(ucauth.NewService(c.workers, c.managers), jwtSvc, c.Cache, log.Named("auth"))
	skillUC := usecase.NewSkillUsecase(skills)
	workerUC := usecase.NewWorkerUsecase(c.workers, workerSkills, certs, c.Cache, log.Named("worker"))
	jobUC := usecase.NewJobUsecase(jobs, c.Cache, log.Named("job"))
	candidateUC := usecase.NewCandidateUsecase(jobs, candidates, c.Cache, cfg.Redis.TTL, log.Named("candidates"))
	exportUC := usecase.NewExportUsecase(candidateUC, log.Named("export"))
	assignmentUC := usecase.NewAssignmentUsecase(c.workers, jobs, assignments, tasks, c.Hub, log.Named("assignment"))
	notificationUC := usecase.NewNotificationUsecase(notifications)
	statusUC := usecase.NewStatusUsecase(status, c.DB, c.Cache, c.Hub, log.Named("status"))

	c.Handlers = v1.Handlers{
		Auth:           handler.NewAuthHandler(authUC),
		Status:         handler.NewStatusHandler(statusUC),
		Skill:          handler.NewSkillHandler(skillUC),
		Worker:         handler.NewWorkerHandler(workerUC),
		Job:            handler.NewJobHandler(jobUC, candidateUC, exportUC),
		Assignment:     handler.NewAssignmentHandler(assignmentUC),
		Notification:   handler.NewNotificationHandler(notificationUC),
		AuthMiddleware: middleware.NewAuthMiddleware(jwtSvc),
	}
	c.WSHandler = ws.NewHandler(c.Hub, jwtSvc, log.Named("ws"))
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	if c.stopHub != nil {
		c.stopHub()
	}

	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.workers != nil {
		errs = append(errs, c.workers.Close())
	}
	if c.managers != nil {
		errs = append(errs, c.managers.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}

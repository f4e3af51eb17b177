package app

import (
	"fmt"
	"strings"

	"workmatch/internal/config"
	"workmatch/internal/delivery/http/middleware"
	"workmatch/internal/delivery/http/routes"
	"workmatch/internal/pkg/logger"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
	Logger    *zap.Logger
}

func New(c *Container) *App {
	log := logger.OrNop(c.Logger)

	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, log)

	var wsHandler fiber.Handler
	if c.WSHandler != nil {
		wsHandler = c.WSHandler.HandleNotificationsWS
	}
	routes.NewRegistry(c.Handlers, wsHandler).Register(f)

	return &App{Fiber: f, Container: c, Logger: log}
}

// Bootstrap builds the logger, the container and the fiber app. The returned
// cleanup releases everything the container opened.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}

	c, err := NewContainer(cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, nil, fmt.Errorf("build container: %w", err)
	}

	app := New(c)
	cleanup := func() error {
		err := c.Close()
		_ = log.Sync()
		return err
	}
	return app, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, log *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(log.Named("http")).Middleware())
	app.Use(middleware.NewErrorMiddleware(log.Named("http")).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}

package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"PersonalFinance/database/postgres"
	analyticsHandler "PersonalFinance/internal/api/analytics/handler"
	analyticsRepository "PersonalFinance/internal/api/analytics/repository"
	analyticsService "PersonalFinance/internal/api/analytics/service"
	budgetHandler "PersonalFinance/internal/api/budget/handler"
	budgetRepository "PersonalFinance/internal/api/budget/repository"
	budgetService "PersonalFinance/internal/api/budget/service"
	transactionHandler "PersonalFinance/internal/api/transaction/handler"
	transactionRepository "PersonalFinance/internal/api/transaction/repository"
	transactionService "PersonalFinance/internal/api/transaction/service"
	"PersonalFinance/internal/middleware"
	"PersonalFinance/pkg/redis"
	"PersonalFinance/pkg/utils"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	config      AppConfig
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	handlers    []handler
	redisServer redis.IRedis
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{config: defaultAppConfig()}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.db == nil {
		return nil, fmt.Errorf("database is required")
	}
	if server.middleware == nil {
		return nil, fmt.Errorf("middleware is required")
	}
	if server.validator == nil {
		server.validator = NewValidator()
	}
	if server.utils == nil {
		server.utils = utils.New()
	}

	return server, nil
}

func WithConfig(cfg AppConfig) ServerOption {
	return func(s *Server) error {
		s.config = cfg
		return nil
	}
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

// WithDatabase connects with the configured URL, applying migrations when DB_AUTO_MIGRATE is set.
func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New(s.config.DatabaseConfig(), s.log)
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}

		if s.config.DBAutoMigrate {
			if err := postgres.Migrate(db, postgres.Up); err != nil {
				_ = db.Close()
				return fmt.Errorf("failed to migrate database: %w", err)
			}
		}

		s.db = db
		return nil
	}
}

// WithDB injects an already opened pool.
func WithDB(db *sqlx.DB) ServerOption {
	return func(s *Server) error {
		s.db = db
		return nil
	}
}

// WithRedisServer connects to Redis only when REDIS_ADDRESS is configured.
func WithRedisServer() ServerOption {
	return func(s *Server) error {
		if !s.config.RedisEnabled() {
			return nil
		}

		redisServer, err := redis.New(redis.Config{
			Address:  s.config.RedisAddress,
			Password: s.config.RedisPassword,
			DB:       s.config.RedisDB,
		}, s.log)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}

		s.redisServer = redisServer
		return nil
	}
}

// WithRedis injects an already connected client.
func WithRedis(client redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = client
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, middleware.Options{
			RequestsPerSecond: s.config.RateLimitPerSecond,
			Burst:             s.config.RateLimitBurst,
			Redis:             s.redisServer,
		})
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Transaction Store
	transactionRepo := transactionRepository.New(s.db, s.log)
	transactionServices := transactionService.New(s.log, transactionRepo, s.utils)
	transactionHandlers := transactionHandler.New(s.log, s.validator, s.middleware, transactionServices)

	// Budget Store
	budgetRepo := budgetRepository.New(s.db, s.log)
	budgetServices := budgetService.New(s.log, budgetRepo, s.utils)
	budgetHandlers := budgetHandler.New(s.log, s.validator, s.middleware, budgetServices)

	// Reporting
	analyticsRepo := analyticsRepository.New(s.db, s.log)
	analyticsServices := analyticsService.New(s.log, analyticsRepo, s.utils)
	analyticsHandlers := analyticsHandler.New(s.log, s.validator, s.middleware, analyticsServices)

	s.handlers = append(s.handlers, transactionHandlers, budgetHandlers, analyticsHandlers)
}

// Mount installs middleware, health routes and every registered handler.
func (s *Server) Mount() {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())
	s.engine.Use(s.middleware.NewRateLimiter)

	s.setupHealthCheck()

	router := s.engine.Group("/api/v1")
	for _, h := range s.handlers {
		h.Start(router)
	}
}

func (s *Server) Run() error {
	s.Mount()

	s.log.WithFields(logrus.Fields{
		"port": s.config.AppPort,
		"env":  s.config.AppEnv,
	}).Info("Starting HTTP server")

	return s.engine.Listen(fmt.Sprintf(":%s", s.config.AppPort))
}

// Shutdown stops accepting requests, waits for in-flight ones, then closes the pools.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error

	if err := s.engine.ShutdownWithContext(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
	}
	if s.redisServer != nil {
		if err := s.redisServer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}

	return errors.Join(errs...)
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})

	s.engine.Get("/health/db", func(ctx *fiber.Ctx) error {
		c, cancel := context.WithTimeout(ctx.UserContext(), 2*time.Second)
		defer cancel()

		body := fiber.Map{
			"status":   "ok",
			"database": "connected",
		}

		// Redis is reported but never fails the check.
		if s.redisServer != nil {
			body["redis"] = "connected"
			if err := s.redisServer.Ping(c); err != nil {
				s.log.WithFields(logrus.Fields{
					"error": err.Error(),
				}).Warn("Redis health check failed")
				body["redis"] = "unreachable"
				body["status"] = "degraded"
			}
		}

		if err := s.db.PingContext(c); err != nil {
			s.log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Error("Database health check failed")
			body["status"] = "unavailable"
			body["database"] = "unreachable"
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(body)
		}

		return ctx.JSON(body)
	})
}

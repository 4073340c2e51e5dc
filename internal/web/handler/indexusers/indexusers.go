// Package indexusers provides the handler triggering a datasource user
// index run.
package indexusers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/suitesync/suitesync/internal/config"
	"github.com/suitesync/suitesync/internal/pipeline"
	"github.com/suitesync/suitesync/internal/web/handler"
)

const (
	// Path is the user indexing trigger route.
	Path = handler.RootPath + "api/index_users"
)

// Service is the user indexing handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB

	// Pipeline may be preset before Init, which tests use to point the run
	// at fake endpoints.
	Pipeline *pipeline.Service
}

// Handler is the user indexing handler.
var Handler = Service{}

// Init initializes the user indexing handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	if s.Pipeline == nil {
		s.Pipeline = pipeline.New(cfg, db)
	}

	app.Post(Path, s.Post)

	return nil
}

// Post indexes the active employees as datasource users.
func (s *Service) Post(c *fiber.Ctx) error {
	result := s.Pipeline.IndexUsers(c.UserContext())
	if !result.Success {
		log.Error().Str("error", result.Error).Msg("user indexing failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   result.Error,
			"details": result.Details,
		})
	}

	return c.JSON(fiber.Map{"message": result.Message})
}

// Package syncrun provides the handler triggering a full document
// synchronization run.
package syncrun

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
	// Path is the sync trigger route.
	Path = handler.RootPath + "api/sync"
)

// Service is the sync trigger handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB

	// Pipeline may be preset before Init, which tests use to point the run
	// at fake endpoints.
	Pipeline *pipeline.Service
}

// Handler is the sync trigger handler.
var Handler = Service{}

// Init initializes the sync trigger handler.
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

// Post runs one synchronous full synchronization and reports its outcome.
func (s *Service) Post(c *fiber.Ctx) error {
	result := s.Pipeline.Run(c.UserContext())
	if !result.Success {
		log.Error().Str("error", result.Error).Msg("sync run failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   result.Error,
			"details": result.Details,
		})
	}

	return c.JSON(fiber.Map{"message": result.Message})
}

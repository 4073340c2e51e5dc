// Package credentials provides the handler storing the external system
// credential bundle.
package credentials

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/suitesync/suitesync/internal/config"
	"github.com/suitesync/suitesync/internal/db/controller/credential"
	"github.com/suitesync/suitesync/internal/db/models"
	"github.com/suitesync/suitesync/internal/web/handler"
)

const (
	// Path is the credential storage route.
	Path = handler.RootPath + "api/auth"
)

// request is the credential bundle payload.
type request struct {
	GleanAccount   string `json:"gleanAccount"   validate:"required"`
	GleanToken     string `json:"gleanToken"     validate:"required"`
	AccountID      string `json:"accountId"      validate:"required"`
	ConsumerKey    string `json:"consumerKey"    validate:"required"`
	ConsumerSecret string `json:"consumerSecret" validate:"required"`
	Token          string `json:"token"          validate:"required"`
	TokenSecret    string `json:"tokenSecret"    validate:"required"`
}

// Service is the credential storage handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the credential storage handler.
var Handler = Service{}

// Init initializes the credential storage handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.validator = validator.New()

	app.Post(Path, s.Post)

	return nil
}

// Post stores a new credential bundle.
func (s *Service) Post(c *fiber.Ctx) error {
	req := &request{}
	if err := c.BodyParser(req); err != nil {
		log.Error().Err(err).Msg("failed to parse credential payload")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := s.validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		errors.As(err, &validationErrors)
		errorMessages := make([]string, len(validationErrors))
		for i, ve := range validationErrors {
			errorMessages[i] = "Field '" + ve.Field() + "' failed validation tag '" + ve.Tag() + "'"
		}

		log.Error().Err(err).Msg("credential payload validation failed")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": errorMessages})
	}

	cred := &models.Credential{
		GleanAccount:           req.GleanAccount,
		GleanToken:             req.GleanToken,
		NetSuiteAccountID:      req.AccountID,
		NetSuiteConsumerKey:    req.ConsumerKey,
		NetSuiteConsumerSecret: req.ConsumerSecret,
		NetSuiteToken:          req.Token,
		NetSuiteTokenSecret:    req.TokenSecret,
	}

	if err := credential.Create(s.db, cred); err != nil {
		log.Error().Err(err).Msg("failed to store credentials")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to store credentials"})
	}

	log.Info().Str("netsuite_account", req.AccountID).Str("glean_account", req.GleanAccount).Msg("credentials stored")

	return c.JSON(fiber.Map{"message": "Success"})
}

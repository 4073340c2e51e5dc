package credentials

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/suitesync/suitesync/internal/config"
	"github.com/suitesync/suitesync/internal/db/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Credential{}))

	return db
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	app := fiber.New()
	db := setupTestDB(t)

	s := Service{}
	require.NoError(t, s.Init(app, &config.Config{}, db))

	return app, db
}

func TestInitNilArgs(t *testing.T) {
	s := Service{}

	assert.Error(t, s.Init(nil, &config.Config{}, nil))
}

func TestPost(t *testing.T) {
	app, db := setupApp(t)

	body := `{
		"gleanAccount": "acme",
		"gleanToken": "index-token",
		"accountId": "12345-sb1",
		"consumerKey": "ck",
		"consumerSecret": "cs",
		"token": "tok",
		"tokenSecret": "ts"
	}`

	req := httptest.NewRequest(fiber.MethodPost, Path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stored models.Credential
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, "acme", stored.GleanAccount)
	assert.Equal(t, "12345-sb1", stored.NetSuiteAccountID)
}

func TestPostMissingFields(t *testing.T) {
	app, db := setupApp(t)

	req := httptest.NewRequest(fiber.MethodPost, Path, strings.NewReader(`{"gleanAccount": "acme"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Credential{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPostInvalidBody(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest(fiber.MethodPost, Path, strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

package credential

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/suitesync/suitesync/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	// Migrate the schema
	err = db.AutoMigrate(&models.Credential{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func TestOldest(t *testing.T) {
	testCases := []struct {
		name              string
		nilDB             bool
		seedData          []models.Credential
		expectedError     error
		expectedAccountID string
	}{
		{
			name:          "nil database",
			nilDB:         true,
			expectedError: ErrDBNil,
		},
		{
			name:          "no credentials stored",
			expectedError: ErrNoCredentials,
		},
		{
			name: "single bundle",
			seedData: []models.Credential{
				{NetSuiteAccountID: "123456", GleanAccount: "acme"},
			},
			expectedAccountID: "123456",
		},
		{
			name: "oldest inserted bundle wins",
			seedData: []models.Credential{
				{NetSuiteAccountID: "first", GleanAccount: "acme"},
				{NetSuiteAccountID: "second", GleanAccount: "acme"},
			},
			expectedAccountID: "first",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var db *gorm.DB
			if !tc.nilDB {
				db = setupTestDB(t)
				for _, cred := range tc.seedData {
					require.NoError(t, Create(db, &cred))
				}
			}

			cred, err := Oldest(db)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, cred)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cred)
				assert.Equal(t, tc.expectedAccountID, cred.NetSuiteAccountID)
			}
		})
	}
}

func TestCreate_NilDB(t *testing.T) {
	err := Create(nil, &models.Credential{})
	require.ErrorIs(t, err, ErrDBNil)
}

// Package credential provides storage and retrieval of the external system
// credential bundle.
package credential

import (
	"errors"

	"gorm.io/gorm"

	"github.com/suitesync/suitesync/internal/db/models"
)

var (
	// ErrNoCredentials is returned when no credential bundle has been stored yet.
	ErrNoCredentials = errors.New("no credentials found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Oldest retrieves the first inserted credential bundle.
// Sync runs always use the oldest stored bundle.
func Oldest(db *gorm.DB) (*models.Credential, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var cred models.Credential
	result := db.Order("id ASC").First(&cred)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNoCredentials
		}
		return nil, result.Error
	}

	return &cred, nil
}

// Create stores a new credential bundle.
func Create(db *gorm.DB, cred *models.Credential) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Create(cred)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

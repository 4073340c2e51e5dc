package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/suitesync/suitesync/internal/config"
)

func TestCreate(t *testing.T) {
	cfg := &config.Config{
		DB: config.DB{
			User:     "root",
			Password: "secret",
			Host:     "localhost",
			Port:     3306,
			Name:     "suitesync",
			Extras:   "charset=utf8mb4&parseTime=True&loc=Local",
		},
	}

	want := "root:secret@tcp(localhost:3306)/suitesync?charset=utf8mb4&parseTime=True&loc=Local"
	assert.Equal(t, want, Create(cfg))
}

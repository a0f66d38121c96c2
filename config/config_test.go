package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitDBSQLite(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "test.db"))

	db, err := InitDB()
	assert.NoError(t, err)
	assert.NotNil(t, db)
}

func TestInitDBUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "carrier-pigeon")

	_, err := InitDB()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "carrier-pigeon")
}

func TestEnvOr(t *testing.T) {
	t.Setenv("SOME_KEY", "value")
	assert.Equal(t, "value", envOr("SOME_KEY", "fallback"))
	assert.Equal(t, "fallback", envOr("SOME_MISSING_KEY", "fallback"))
}

package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrationsPathForDriver(t *testing.T) {
	assert.Equal(t, "file://migrations/postgresql", migrationsPathForDriver("postgres"))
	assert.Equal(t, "file://migrations/mysql", migrationsPathForDriver("mysql"))
	assert.Equal(t, "file://migrations/postgresql", migrationsPathForDriver(""))
}

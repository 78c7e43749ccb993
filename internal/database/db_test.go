package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wicketgate/cricket-ticketing/internal/config"
)

func TestDSNWithPassword(t *testing.T) {
	got := dsn(config.Config{
		DBUser: "app", DBPass: "s3cret",
		DBHost: "db.internal", DBPort: "3306", DBName: "tickets",
	})
	assert.Equal(t,
		"app:s3cret@tcp(db.internal:3306)/tickets?charset=utf8mb4&parseTime=true&loc=UTC",
		got)
}

func TestDSNWithoutPassword(t *testing.T) {
	got := dsn(config.Config{
		DBUser: "app",
		DBHost: "localhost", DBPort: "3307", DBName: "tickets",
	})
	// An empty password must not leave a dangling colon in the DSN.
	assert.Equal(t,
		"app@tcp(localhost:3307)/tickets?charset=utf8mb4&parseTime=true&loc=UTC",
		got)
}

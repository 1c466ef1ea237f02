package database

import (
	"testing"

	"salon-booking/pkg/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnString_QuotesValues(t *testing.T) {
	dsn := connString(utils.DatabaseConfig{
		Host:     "db.internal",
		Port:     "5433",
		Name:     "salon",
		User:     "app",
		Password: `it's a secret`,
	})

	assert.Contains(t, dsn, "sslmode='disable'")

	cfg, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.ConnConfig.Host)
	assert.Equal(t, uint16(5433), cfg.ConnConfig.Port)
	assert.Equal(t, "salon", cfg.ConnConfig.Database)
	assert.Equal(t, `it's a secret`, cfg.ConnConfig.Password)
}

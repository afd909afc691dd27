package config_test

import (
	"testing"

	"quickstore/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRES_USER", "app")
	t.Setenv("POSTGRES_PASSWORD", "pw")
	t.Setenv("POSTGRES_DB", "quickstore")
	t.Setenv("POSTGRES_HOST", "localhost")
	t.Setenv("POSTGRES_PORT", "")
	t.Setenv("POSTGRES_SSLMODE", "")
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	require.Error(t, err)
}

func TestDSN_BuildsFromParts(t *testing.T) {
	setBaseEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	//ポートとsslmodeは既定値で埋まる
	assert.Equal(t,
		"host=localhost port=5432 user=app password=pw dbname=quickstore sslmode=disable",
		cfg.DSN())
}

func TestDSN_PrefersDatabaseURL(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DATABASE_URL", "postgres://app:pw@db:5432/quickstore")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://app:pw@db:5432/quickstore", cfg.DSN())
}

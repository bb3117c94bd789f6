package config

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("DB_NAME", "asm_test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:8081", cfg.HTTP.Addr())
	assert.Equal(t, "asm_test", cfg.DB.DBName)
	assert.Equal(t, 168, cfg.JWT.Expiration)
	assert.Equal(t, "uploads", cfg.Upload.Dir)
}

func TestDSN_EscapesCredentials(t *testing.T) {
	db := DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "app",
		Password: "p@ss:w/rd",
		DBName:   "asm_endustri",
		SSLMode:  "disable",
	}
	dsn := db.DSN()
	u, err := url.Parse(dsn)
	require.NoError(t, err)

	pass, _ := u.User.Password()
	assert.Equal(t, "app", u.User.Username())
	assert.Equal(t, "p@ss:w/rd", pass, "special characters must survive a parse round trip")
	assert.Equal(t, "localhost:5432", u.Host)
	assert.Equal(t, "/asm_endustri", u.Path)
	assert.Equal(t, "disable", u.Query().Get("sslmode"))
}

func TestConnectionString_PrefersDatabaseURL(t *testing.T) {
	db := DBConfig{
		DatabaseURL: "postgresql://u:p@db.example.com:5432/prod?sslmode=require",
		Host:        "localhost",
	}
	assert.Equal(t, db.DatabaseURL, db.ConnectionString())
}

func TestValidate_RejectsNonPositiveExpiration(t *testing.T) {
	cfg := &Config{JWT: JWTConfig{Secret: "x", Expiration: 0}}
	assert.Error(t, cfg.Validate())

	cfg.JWT.Expiration = 24
	assert.NoError(t, cfg.Validate())
}

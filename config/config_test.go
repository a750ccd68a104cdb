package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "mongo", cfg.Database.Driver)
	assert.Equal(t, "manufacturer_website", cfg.Database.MongoDB)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpiresIn)
	assert.Equal(t, "gated", cfg.Admin.GrantPolicy)
	assert.Equal(t, time.Minute, cfg.Redis.CacheTTL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "secret")
	t.Setenv("PORT", "8081")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("ADMIN_GRANT_POLICY", "legacy")
	t.Setenv("CORS_ORIGINS", "http://a.example,http://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "legacy", cfg.Admin.GrantPolicy)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{"ACCESS_TOKEN_SECRET": ""}},
		{"unknown driver", map[string]string{"ACCESS_TOKEN_SECRET": "s", "DB_DRIVER": "mysql"}},
		{"unknown grant policy", map[string]string{"ACCESS_TOKEN_SECRET": "s", "ADMIN_GRANT_POLICY": "open"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestMongoURL(t *testing.T) {
	d := Database{User: "u", Pass: "p", MongoCluster: "cluster0.example.net"}
	assert.Equal(t, "mongodb+srv://u:p@cluster0.example.net/?retryWrites=true&w=majority", d.MongoURL())

	d.MongoURI = "mongodb://localhost:27017"
	assert.Equal(t, "mongodb://localhost:27017", d.MongoURL())
}

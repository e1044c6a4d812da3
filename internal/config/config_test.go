package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Вспомогательные хелперы.
func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

const sampleYAML = `
env: "prod"
app_name: "social-test"
http:
  host: "127.0.0.1"
  port: "8081"
grpc:
  port: "6000"
auth:
  access_user_secret: "au"
  refresh_user_secret: "ru"
  access_system_secret: "as"
  refresh_system_secret: "rs"
  access_token_ttl: "10m"
  refresh_token_ttl: "240h"
  bcrypt_cost: 4
db:
  db_url: "mongodb://localhost:27017/social"
google:
  client_ids: ["web-1", "web-2"]
rate_limit:
  requests: 10
  window: "1m"
timeouts:
  request: "3s"
`

const brokenYAML = `
auth:
  access_user_secret: [unclosed
`

func TestLoad_WithExplicitPath_OK(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", sampleYAML)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "social-test", cfg.AppName)
	require.Equal(t, "127.0.0.1:8081", cfg.HTTP.Addr())
	require.Equal(t, "6000", cfg.GRPC.Port)
	require.Equal(t, 10*time.Minute, cfg.Auth.AccessTokenTTL)
	require.Equal(t, 240*time.Hour, cfg.Auth.RefreshTokenTTL)
	require.Equal(t, 4, cfg.Auth.BcryptCost)
	require.Equal(t, "mongodb://localhost:27017/social", cfg.DB.DatabaseURL)
	require.ElementsMatch(t, []string{"web-1", "web-2"}, cfg.Google.ClientIDs)
	require.Equal(t, 10, cfg.RateLimit.Requests)
	require.Equal(t, 3*time.Second, cfg.Timeouts.Request)

	// Дефолты.
	require.Equal(t, "social", cfg.S3.Bucket)
	require.Equal(t, 4, cfg.Outbox.Workers)
	require.Equal(t, time.Hour, cfg.Auth.JanitorPeriod)

	s := cfg.Auth.Secrets()
	require.Equal(t, SecretPair{Access: "au", Refresh: "ru"}, s.Bearer)
	require.Equal(t, SecretPair{Access: "as", Refresh: "rs"}, s.System)
}

func TestLoad_FromConfigPathEnv(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "cfg.yaml", sampleYAML)
	t.Setenv("CONFIG_PATH", cfgPath)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "prod", cfg.Env)
}

func TestLoad_EnvOverlaysYAML(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", sampleYAML)
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("ACCESS_TOKEN_TTL", "5m")

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	require.Equal(t, "9999", cfg.HTTP.Port)
	require.Equal(t, 5*time.Minute, cfg.Auth.AccessTokenTTL)
}

func TestLoad_LocalYAMLInWorkdir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "local.yaml", sampleYAML)
	chdir(t, dir)
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "social-test", cfg.AppName)
}

func TestLoad_OnlyEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_URL", "mongodb://env/db")
	t.Setenv("ACCESS_USER_TOKEN_SIGNATURE", "a1")
	t.Setenv("REFRESH_USER_TOKEN_SIGNATURE", "r1")
	t.Setenv("ACCESS_SYSTEM_TOKEN_SIGNATURE", "a2")
	t.Setenv("REFRESH_SYSTEM_TOKEN_SIGNATURE", "r2")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "local", cfg.Env)
	require.Equal(t, "mongodb://env/db", cfg.DB.DatabaseURL)
	require.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_BrokenYAML(t *testing.T) {
	p := writeFile(t, t.TempDir(), "broken.yaml", brokenYAML)
	_, err := Load(p)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Auth: AuthConfig{
				AccessUserSecret:    "a",
				RefreshUserSecret:   "b",
				AccessSystemSecret:  "c",
				RefreshSystemSecret: "d",
				AccessTokenTTL:      time.Minute,
				RefreshTokenTTL:     time.Hour,
				BcryptCost:          10,
			},
			Outbox: OutboxConfig{Workers: 1},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{"valid", func(c *Config) {}, true},
		{"empty secret", func(c *Config) { c.Auth.RefreshSystemSecret = "" }, false},
		{"duplicate secret", func(c *Config) { c.Auth.AccessSystemSecret = "a" }, false},
		{"zero ttl", func(c *Config) { c.Auth.AccessTokenTTL = 0 }, false},
		{"refresh shorter than access", func(c *Config) { c.Auth.RefreshTokenTTL = time.Second }, false},
		{"bcrypt cost too high", func(c *Config) { c.Auth.BcryptCost = 99 }, false},
		{"no workers", func(c *Config) { c.Outbox.Workers = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.validate()
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, ".env", "SOCIAL_DOTENV_PROBE=from-file\n")
	t.Setenv("SOCIAL_DOTENV_PROBE", "")
	require.NoError(t, os.Unsetenv("SOCIAL_DOTENV_PROBE"))

	require.NoError(t, LoadDotEnv(p, filepath.Join(dir, "missing.env")))
	require.Equal(t, "from-file", os.Getenv("SOCIAL_DOTENV_PROBE"))
}

func TestMustLoad_Panics(t *testing.T) {
	require.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "nope.yaml")) })
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPublic = `
log_level: info
log_format: json
query_timeout: 5s
cache_ttl: 30s
api:
  addr: ":4000"
  read_timeout: 5s
  write_timeout: 10s
  shutdown_timeout: 10s
  allowed_origins: ["http://localhost:8081"]
  write_rate_limit: 5
  write_rate_burst: 10
frontend:
  addr: ":8081"
  api_base_url: "http://localhost:4000"
  api_timeout: 5s
`

const validPrivate = `
pg:
  host: localhost
  port: 5432
  user: postgres
  password: password
  dbname: kebab
redis:
  addr: "localhost:6379"
`

func writeConfig(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600))
	return dir
}

func TestMustLoad(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	cfg := MustLoad(writeConfig(t, validPublic, validPrivate))

	assert.Equal(t, "json", cfg.Public.LogFormat)
	assert.Equal(t, 5*time.Second, cfg.Public.QueryTimeout)
	assert.Equal(t, 30*time.Second, cfg.Public.CacheTTL)
	assert.Equal(t, ":4000", cfg.Public.Api.Addr)
	assert.Equal(t, []string{"http://localhost:8081"}, cfg.Public.Api.AllowedOrigins)
	assert.Equal(t, 5.0, cfg.Public.Api.WriteRateLimit)
	assert.Equal(t, "http://localhost:4000", cfg.Public.Frontend.ApiBaseURL)
	assert.Equal(t, "localhost:6379", cfg.Private.Redis.Addr)
	assert.Equal(t, "host=localhost port=5432 user=postgres password=password dbname=kebab sslmode=disable", cfg.Private.Pg.ConnString())
}

func TestMustLoad_DatabaseURLOverride(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgresql://postgres:password@db:5432/kebab")
	cfg := MustLoad(writeConfig(t, validPublic, "pg:\n  url: ''\n"))

	assert.Equal(t, "postgresql://postgres:password@db:5432/kebab", cfg.Private.Pg.ConnString())
}

func TestMustLoad_RequiredFields(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	// query_timeout is intentionally missing
	public := "log_level: info\nlog_format: text\napi:\n  addr: ':4000'\n"
	dir := writeConfig(t, public, validPrivate)

	assert.Panics(t, func() { MustLoad(dir) })
}

func TestMustLoad_MissingPg(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	dir := writeConfig(t, validPublic, "redis:\n  addr: ''\n")

	assert.Panics(t, func() { MustLoad(dir) })
}

func TestMustLoad_MissingFile(t *testing.T) {
	assert.PanicsWithValue(t, "config file does not exist: "+filepath.Join("nope", "public.yaml"), func() { MustLoad("nope") })
}

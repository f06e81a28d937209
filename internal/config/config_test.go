package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "studentId", cfg.Storage.PartitionKey)
	assert.Equal(t, "/api/resume-files", cfg.Storage.PublicBasePath)
	assert.Equal(t, "local_resumes", cfg.Storage.LocalPath)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.UseLocalStorage())
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: "9090"
  mode: production
storage:
  bucket: resume-bucket
  table: resume-table
aws:
  region: ap-northeast-2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Mode)
	assert.Equal(t, "resume-bucket", cfg.Storage.Bucket)
	assert.Equal(t, "resume-table", cfg.Storage.Table)
	assert.Equal(t, "ap-northeast-2", cfg.AWS.Region)
	assert.False(t, cfg.UseLocalStorage())

	// File values leave defaults for unset keys intact
	assert.Equal(t, "studentId", cfg.Storage.PartitionKey)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("RESUME_BUCKET_NAME", "env-bucket")
	t.Setenv("RESUME_TABLE_NAME", "env-table")
	t.Setenv("RESUME_TABLE_PARTITION_KEY", "userId")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "env-bucket", cfg.Storage.Bucket)
	assert.Equal(t, "env-table", cfg.Storage.Table)
	assert.Equal(t, "userId", cfg.Storage.PartitionKey)
	assert.False(t, cfg.UseLocalStorage())
}

func TestLoadConfig_BucketWithoutTableInvalid(t *testing.T) {
	t.Setenv("RESUME_BUCKET_NAME", "only-bucket")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket and table")
}

func TestLoadConfig_PublicBasePathMustBeAbsolute(t *testing.T) {
	t.Setenv("RESUME_PUBLIC_BASE_PATH", "resume-files")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

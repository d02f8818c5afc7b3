package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/arrays/pkg/errors"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "object", cfg.Render.Kind)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"bad encoding", func(c *Config) { c.Logging.Encoding = "xml" }, "logging.encoding"},
		{"bad kind", func(c *Config) { c.Render.Kind = "decimal" }, "render.kind"},
		{"summary without metrics", func(c *Config) {
			c.Metrics.Enabled = false
			c.Metrics.Summary = true
		}, "metrics.summary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))

			var e *errors.Error
			require.ErrorAs(t, err, &e)
			field, _ := e.Detail("field")
			assert.Equal(t, tt.field, field)
		})
	}
}

func TestLoadWithEnv(t *testing.T) {
	t.Setenv("ARRAYS_LOG_LEVEL", "debug")

	path := filepath.Join(t.TempDir(), "arrays.yaml")
	content := `
logging:
  level: ${ARRAYS_LOG_LEVEL}
render:
  kind: int32
  indent: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := Default()
	require.NoError(t, Load(path, cfg))

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Encoding, "absent fields keep defaults")
	assert.Equal(t, "int32", cfg.Render.Kind)
	assert.True(t, cfg.Render.Indent)
	require.NoError(t, cfg.Validate())
}

func TestLoadErrors(t *testing.T) {
	err := Load(filepath.Join(t.TempDir(), "missing.yaml"), Default())
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeFile))

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: [unclosed"), 0o600))
	err = Load(path, Default())
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Render.Seed = 42
	cfg.Metrics.Summary = true

	path := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, Save(path, cfg))

	loaded := &Config{}
	require.NoError(t, Load(path, loaded))
	assert.Equal(t, cfg, loaded)
}

func TestSubstituteEnvVars(t *testing.T) {
	t.Setenv("ARRAYS_A", "x")

	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"${ARRAYS_A}", "x"},
		{"a-${ARRAYS_A}-${ARRAYS_A}", "a-x-x"},
		{"${ARRAYS_UNSET_VARIABLE}", ""},
		{"open ${ARRAYS_A", "open ${ARRAYS_A"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, substituteEnvVars(tt.in), tt.in)
	}
}

package config_test

import (
	"path/filepath"
	"testing"

	"github.com/iyhunko/realtime-catalog/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(config.DebugModeEnv, "true")
	t.Setenv(config.HTTPServerPortEnv, "8080")
	t.Setenv(config.MetricsServerPortEnv, "9090")
	t.Setenv(config.DataDirEnv, "/var/lib/catalog")
	t.Setenv(config.AWSRegionEnv, "us-east-1")
	t.Setenv(config.SQSQueueURLEnv, "https://sqs.us-east-1.amazonaws.com/123456789/catalog-updates")

	conf, err := config.LoadFromEnv()
	require.NoError(t, err, "loading config should not return error")

	assert.True(t, conf.DebugMode, "DebugMode should be true")
	assert.Equal(t, "8080", conf.HTTPServer.Port, "HTTP Server Port should be '8080'")
	assert.Equal(t, "9090", conf.MetricsServer.Port, "Metrics Server Port should be '9090'")
	assert.Equal(t, "/var/lib/catalog", conf.DataDir, "Data dir should be '/var/lib/catalog'")
	assert.True(t, conf.SQSEnabled(), "SQS sink should be enabled when the queue URL is set")
	assert.Equal(t, filepath.Join("/var/lib/catalog", config.ProductsFileName), conf.ProductsFilePath())
}

func TestLoadFromEnvWithoutSQS(t *testing.T) {
	t.Setenv(config.HTTPServerPortEnv, "8080")
	t.Setenv(config.MetricsServerPortEnv, "9090")
	t.Setenv(config.DataDirEnv, t.TempDir())
	t.Setenv(config.SQSQueueURLEnv, "")
	t.Setenv(config.AWSRegionEnv, "")

	conf, err := config.LoadFromEnv()
	require.NoError(t, err, "the SQS sink is optional")

	assert.False(t, conf.SQSEnabled(), "SQS sink should be disabled without a queue URL")
}

func TestLoadFromEnvMissingDataDir(t *testing.T) {
	t.Setenv(config.HTTPServerPortEnv, "8080")
	t.Setenv(config.MetricsServerPortEnv, "9090")
	t.Setenv(config.DataDirEnv, "")
	t.Setenv(config.SQSQueueURLEnv, "")

	_, err := config.LoadFromEnv()
	require.Error(t, err, "a missing data dir should fail validation")
	assert.ErrorIs(t, err, config.ErrMissingConfig)
}

func TestLoadFromEnvQueueWithoutRegion(t *testing.T) {
	t.Setenv(config.HTTPServerPortEnv, "8080")
	t.Setenv(config.MetricsServerPortEnv, "9090")
	t.Setenv(config.DataDirEnv, t.TempDir())
	t.Setenv(config.SQSQueueURLEnv, "https://sqs.us-east-1.amazonaws.com/123456789/catalog-updates")
	t.Setenv(config.AWSRegionEnv, "")

	_, err := config.LoadFromEnv()
	require.Error(t, err, "a configured queue needs a region")
}

func TestGetEnvAsBool(t *testing.T) {
	tests := []struct {
		name         string
		envValue     string
		defaultValue bool
		want         bool
	}{
		{"GetEnvAsBool_True", "true", false, true},
		{"GetEnvAsBool_False", "false", true, false},
		{"GetEnvAsBool_Invalid", "invalid", true, true},
		{"GetEnvAsBool_Empty", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_ENV", tt.envValue)
			got := config.GetEnvAsBool("TEST_ENV", tt.defaultValue)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllNumbers(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]string
		wantErr bool
	}{
		{"AllNumbers_Valid", map[string]string{"key1": "123", "key2": "456", "key3": "789"}, false},
		{"AllNumbers_Invalid", map[string]string{"key1": "123", "key2": "abc", "key3": "789"}, true},
		{"AllNumbers_EmptyString", map[string]string{"key1": "123", "key2": "", "key3": "789"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := config.AllNumbers(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAllNonEmpty(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]string
		wantErr bool
	}{
		{"AllNonEmpty_Valid", map[string]string{"key1": "host", "key2": "user", "key3": "pass"}, false},
		{"AllNonEmpty_EmptyString", map[string]string{"key1": "host", "key2": "", "key3": "pass"}, true},
		{"AllNonEmpty_AllEmpty", map[string]string{"key1": "", "key2": "", "key3": ""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := config.AllNonEmpty(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

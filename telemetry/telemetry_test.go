package telemetry

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnvDefaults(t *testing.T) { //nolint:paralleltest
	_ = os.Unsetenv("OTEL_ENABLED")
	_ = os.Unsetenv("OTEL_SERVICE_NAME")
	_ = os.Unsetenv("OTEL_SERVICE_VERSION")
	_ = os.Unsetenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT")

	config, err := LoadConfigFromEnv("test")
	require.NoError(t, err)

	assert.False(t, config.Enabled)
	assert.Equal(t, defaultServiceVersion, config.ServiceVersion)
	assert.Equal(t, "test", config.Environment)
	assert.Equal(t, defaultTimeout, config.Timeout)
}

func TestLoadConfigFromEnvOverrides(t *testing.T) { //nolint:paralleltest
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_SERVICE_NAME", "checkout")
	t.Setenv("OTEL_SERVICE_VERSION", "2.3.4")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "http://collector:4318")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_TIMEOUT", "10s")

	config, err := LoadConfigFromEnv("prod")
	require.NoError(t, err)

	assert.True(t, config.Enabled)
	assert.Equal(t, "checkout", config.ServiceName)
	assert.Equal(t, "2.3.4", config.ServiceVersion)
	assert.Equal(t, "http://collector:4318", config.Endpoint)
	assert.Equal(t, 10*time.Second, config.Timeout)
}

func TestInitializeDisabled(t *testing.T) { //nolint:paralleltest
	require.NoError(t, Initialize(testContext(t), &Config{Enabled: false}))

	// Shutdown with no provider is a no-op.
	require.NoError(t, Shutdown(testContext(t)))
}

func testContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return ctx
}

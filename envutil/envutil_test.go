package envutil

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringPresent(t *testing.T) {
	t.Setenv("AMP_STATE_TEST_STRING", "hello")

	val, err := String("AMP_STATE_TEST_STRING").Value()
	require.NoError(t, err)
	assert.Equal(t, "hello", val)
}

func TestStringMissing(t *testing.T) {
	t.Parallel()

	_, err := String("AMP_STATE_TEST_DOES_NOT_EXIST").Value()
	require.ErrorIs(t, err, ErrEnvVarMissing)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	val, err := String("AMP_STATE_TEST_DOES_NOT_EXIST", Default("fallback")).Value()
	require.NoError(t, err)
	assert.Equal(t, "fallback", val)
}

func TestBool(t *testing.T) {
	t.Setenv("AMP_STATE_TEST_BOOL", "true")

	assert.True(t, Bool("AMP_STATE_TEST_BOOL").ValueOrElse(false))
}

func TestBoolMalformed(t *testing.T) {
	t.Setenv("AMP_STATE_TEST_BOOL", "not-a-bool")

	_, err := Bool("AMP_STATE_TEST_BOOL").Value()
	require.ErrorIs(t, err, ErrBadEnvVar)

	// ValueOrElse falls back on parse errors.
	assert.True(t, Bool("AMP_STATE_TEST_BOOL").ValueOrElse(true))
}

func TestInt(t *testing.T) {
	t.Setenv("AMP_STATE_TEST_INT", "17")

	assert.Equal(t, 17, Int("AMP_STATE_TEST_INT").ValueOrElse(0))
}

func TestDuration(t *testing.T) {
	t.Setenv("AMP_STATE_TEST_DURATION", "1m30s")

	assert.Equal(t, 90*time.Second, Duration("AMP_STATE_TEST_DURATION").ValueOrElse(0))
}

func TestURL(t *testing.T) {
	t.Setenv("AMP_STATE_TEST_URL", "https://example.com/users")

	u, err := URL("AMP_STATE_TEST_URL").Value()
	require.NoError(t, err)
	assert.Equal(t, "example.com", u.Host)
}

func TestSlogLevel(t *testing.T) {
	t.Setenv("AMP_STATE_TEST_LEVEL", "warn")

	assert.Equal(t, slog.LevelWarn,
		SlogLevel("AMP_STATE_TEST_LEVEL").ValueOrElse(slog.LevelInfo))
}

func TestValidate(t *testing.T) {
	t.Setenv("AMP_STATE_TEST_INT", "-5")

	errNegative := errors.New("must be positive") //nolint:err113 // Test error

	_, err := Int("AMP_STATE_TEST_INT", Validate(func(v int) error {
		if v < 0 {
			return errNegative
		}

		return nil
	})).Value()

	require.ErrorIs(t, err, errNegative)
}

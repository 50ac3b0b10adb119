package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, key := range []string{"APP_PORT", "APP_ENV", "LOG_LEVEL", "UPLOAD_MAX_BYTES", "CACHE_ENTRIES", "POLICY_FILE", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxBytes)
	assert.Equal(t, 32, cfg.Cache.Entries)
	assert.Empty(t, cfg.Policy.File)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_FromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CACHE_ENTRIES", "0")
	t.Setenv("POLICY_FILE", "policy.yaml")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, 0, cfg.Cache.Entries)
	assert.Equal(t, "policy.yaml", cfg.Policy.File)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("APP_PORT", "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("APP_PORT=7070\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.App.Port)
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		key, value string
	}{
		{"APP_PORT", "eighty"},
		{"APP_PORT", "-1"},
		{"UPLOAD_MAX_BYTES", "0"},
		{"CACHE_ENTRIES", "-3"},
	}

	for _, c := range cases {
		t.Run(c.key+"="+c.value, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv(c.key, c.value)

			_, err := Load()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), c.key)
		})
	}
}

func TestSlogLevel_Unknown(t *testing.T) {
	cfg := &Config{App: AppConfig{LogLevel: "chatty"}}
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoadShiftPolicy_EmptyPathIsDefault(t *testing.T) {
	policy, err := LoadShiftPolicy("")
	require.NoError(t, err)
	assert.Equal(t, attendance.DefaultShiftPolicy(), policy)
}

func TestLoadShiftPolicy_MissingFile(t *testing.T) {
	_, err := LoadShiftPolicy(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadShiftPolicy_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	data := "shift_start: \"08:00\"\nlate_unit_minutes: 30\nmorning_half_day_start: \"09:31\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	policy, err := LoadShiftPolicy(path)
	require.NoError(t, err)

	want := attendance.DefaultShiftPolicy()
	want.ShiftStart = clock.MustParseHHMM("08:00")
	want.LateUnit = 30 * time.Minute
	want.MorningHalfDayStart = clock.MustParseHHMM("09:31")
	assert.Equal(t, want, policy)
}

func TestParseShiftPolicy_Errors(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{"not yaml", "shift_start: [", "failed to parse"},
		{"bad time", "shift_end: \"5pm\"", "shift_end"},
		{"zero late unit", "late_unit_minutes: 0", "late_unit_minutes"},
		{"start after end", "shift_start: \"18:00\"", "shift_start"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseShiftPolicy([]byte(c.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.want)
		})
	}
}

func TestParseShiftPolicy_ValidationErrorsAreTyped(t *testing.T) {
	_, err := ParseShiftPolicy([]byte("late_unit_minutes: -5"))

	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	assert.Contains(t, validationErrs.ToMap(), "late_unit_minutes")
}

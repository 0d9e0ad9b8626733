package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	// 清除环境变量
	os.Clearenv()

	cfg, err := Load()
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 4, cfg.Scoring.Workers)
	assert.True(t, cfg.Scoring.IncludeInsights)
	assert.Equal(t, "-", cfg.Report.InputPath)
	assert.Equal(t, "-", cfg.Report.OutputPath)
	assert.Equal(t, "", cfg.Report.ExcelPath)
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	os.Clearenv()
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("SCORING_WORKERS", "16")
	t.Setenv("SCORING_INCLUDE_INSIGHTS", "false")
	t.Setenv("REPORT_INPUT_PATH", "/data/patients.json")
	t.Setenv("REPORT_OUTPUT_PATH", "/data/report.json")
	t.Setenv("REPORT_EXCEL_PATH", "/data/report.xlsx")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 16, cfg.Scoring.Workers)
	assert.False(t, cfg.Scoring.IncludeInsights)
	assert.Equal(t, "/data/patients.json", cfg.Report.InputPath)
	assert.Equal(t, "/data/report.json", cfg.Report.OutputPath)
	assert.Equal(t, "/data/report.xlsx", cfg.Report.ExcelPath)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	os.Clearenv()
	t.Setenv("SCORING_WORKERS", "many")
	t.Setenv("SCORING_INCLUDE_INSIGHTS", "maybe")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Scoring.Workers)
	assert.True(t, cfg.Scoring.IncludeInsights)
}

func TestLoad_NonPositiveWorkers(t *testing.T) {
	os.Clearenv()
	t.Setenv("SCORING_WORKERS", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_EnvFile(t *testing.T) {
	os.Clearenv()
	dir := t.TempDir()
	envFile := filepath.Join(dir, "sepsis.env")
	require.NoError(t, os.WriteFile(envFile, []byte("SCORING_WORKERS=2\nLOG_LEVEL=warn\n"), 0o600))

	t.Setenv("SEPSIS_ENV_FILE", envFile)
	// 已存在的环境变量不被覆盖
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Scoring.Workers)
	assert.Equal(t, "error", cfg.Log.Level)

	os.Unsetenv("SCORING_WORKERS")
}

func TestLoad_MissingEnvFile(t *testing.T) {
	os.Clearenv()
	t.Setenv("SEPSIS_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	_, err := Load()
	assert.Error(t, err)
}

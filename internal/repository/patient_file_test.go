package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wisefido-sepsis/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const samplePatients = `[
  {"id": "p-1", "age": 70, "gender": "M", "vitals": [
    {"timestamp": "2026-01-01T08:00:00Z", "temperature": 37.0},
    {"timestamp": "2026-01-01T09:00:00Z", "temperature": 39.0, "heart_rate": 112}
  ]},
  {"age_days": 10, "gender": "female", "vitals": [{"heart_rate": 150}]},
  {"id": "p-3", "age": 30}
]`

func TestDecodePatients(t *testing.T) {
	records, err := DecodePatients(strings.NewReader(samplePatients))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "p-1", records[0].ID)
	assert.Equal(t, 70.0, records[0].AgeYears)
	assert.Equal(t, models.GenderMale, records[0].Gender)
	require.Len(t, records[0].Vitals, 2)
	assert.Equal(t, 39.0, records[0].LatestVitals().Temperature)
	assert.Equal(t, 112.0, records[0].LatestVitals().HeartRate)

	// 缺失 ID 自动生成
	_, err = uuid.Parse(records[1].ID)
	assert.NoError(t, err)
	assert.InDelta(t, 10/365.25, records[1].AgeYears, 1e-9)
	assert.Equal(t, models.GenderFemale, records[1].Gender)

	// 缺失性别为 UNKNOWN，缺失体征为空
	assert.Equal(t, models.GenderUnknown, records[2].Gender)
	assert.Empty(t, records[2].Vitals)
}

func TestDecodePatients_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `{{`},
		{"not an array", `{"id": "x"}`},
		{"bad gender", `[{"id": "x", "age": 30, "gender": "Z"}]`},
		{"negative age", `[{"id": "x", "age": -3, "gender": "M"}]`},
		{"missing age", `[{"id": "x", "gender": "M"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePatients(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, models.ErrInvalidInput))
		})
	}
}

func TestPatientFileSource_LoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patients.json")
	require.NoError(t, os.WriteFile(path, []byte(samplePatients), 0o600))

	source := NewPatientFileSource(path, zap.NewNop())
	records, err := source.LoadPatients(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestPatientFileSource_Stdin(t *testing.T) {
	source := NewPatientFileSource("-", zap.NewNop())
	source.stdin = strings.NewReader(`[{"id": "s-1", "age": 5, "gender": "O"}]`)

	records, err := source.LoadPatients(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.GenderOther, records[0].Gender)
}

func TestPatientFileSource_MissingFile(t *testing.T) {
	source := NewPatientFileSource(filepath.Join(t.TempDir(), "missing.json"), zap.NewNop())
	_, err := source.LoadPatients(context.Background())
	assert.Error(t, err)
}

func TestPatientFileSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPatientFileSource("-", zap.NewNop()).LoadPatients(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

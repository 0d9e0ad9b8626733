package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"wisefido-sepsis/internal/cohort"
	"wisefido-sepsis/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// patientRow 输入文件中的一条患者记录
// age 与 age_days 二选一；同时提供时 age_days 优先（新生儿按天记录更精确）
type patientRow struct {
	ID      string                 `json:"id"`
	Age     *float64               `json:"age"`
	AgeDays *float64               `json:"age_days"`
	Gender  string                 `json:"gender"`
	Vitals  []models.VitalSnapshot `json:"vitals"`
}

// PatientFileSource 从 JSON 文件读取患者记录
// 文件内容为患者记录数组；path 为 "-" 时从 stdin 读取
type PatientFileSource struct {
	path   string
	stdin  io.Reader
	logger *zap.Logger
}

// NewPatientFileSource 创建患者文件数据源
func NewPatientFileSource(path string, logger *zap.Logger) *PatientFileSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PatientFileSource{
		path:   path,
		stdin:  os.Stdin,
		logger: logger,
	}
}

// LoadPatients 读取全部患者记录
func (s *PatientFileSource) LoadPatients(ctx context.Context) ([]*models.PatientRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.path == "-" || s.path == "" {
		return s.decode(s.stdin, "stdin")
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open patient file %s: %w", s.path, err)
	}
	defer f.Close()

	return s.decode(f, s.path)
}

// DecodePatients 从 reader 解析患者记录
func DecodePatients(r io.Reader) ([]*models.PatientRecord, error) {
	return NewPatientFileSource("-", nil).decode(r, "reader")
}

func (s *PatientFileSource) decode(r io.Reader, source string) ([]*models.PatientRecord, error) {
	var rows []patientRow
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: failed to decode patients from %s: %v", models.ErrInvalidInput, source, err)
	}

	records := make([]*models.PatientRecord, 0, len(rows))
	generated := 0
	for i, row := range rows {
		record, err := toRecord(row)
		if err != nil {
			return nil, fmt.Errorf("patient #%d in %s: %w", i, source, err)
		}
		if record.ID == "" {
			record.ID = uuid.NewString()
			generated++
		}
		records = append(records, record)
	}

	s.logger.Info("Loaded patient records",
		zap.String("source", source),
		zap.Int("count", len(records)),
		zap.Int("generated_ids", generated),
	)
	return records, nil
}

func toRecord(row patientRow) (*models.PatientRecord, error) {
	gender, err := models.ParseGender(row.Gender)
	if err != nil {
		return nil, err
	}

	var age float64
	switch {
	case row.AgeDays != nil:
		age = cohort.DaysToYears(*row.AgeDays)
	case row.Age != nil:
		age = *row.Age
	default:
		return nil, fmt.Errorf("%w: patient %s has no age", models.ErrInvalidInput, row.ID)
	}

	record := &models.PatientRecord{
		ID:       row.ID,
		AgeYears: age,
		Gender:   gender,
		Vitals:   row.Vitals,
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}
	return record, nil
}

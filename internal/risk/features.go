package risk

import (
	"math"

	"wisefido-sepsis/internal/models"
	"wisefido-sepsis/internal/norms"
)

// Features 送入临床模型的特征
type Features struct {
	HeartRate       float64 `json:"heart_rate"`
	RespiratoryRate float64 `json:"respiratory_rate"`
	Temperature     float64 `json:"temperature"`
	SystolicBP      float64 `json:"systolic_bp"`
	DiastolicBP     float64 `json:"diastolic_bp"`
	SpO2            float64 `json:"spo2"`

	AgeYears      float64 `json:"age"`
	GenderNumeric int     `json:"gender_numeric"`
	CohortNumeric int     `json:"age_group_numeric"`

	// 只包含已评分的体征
	ZScores map[models.Vital]float64 `json:"z_scores"`

	GenderRiskMultiplier float64 `json:"gender_risk_multiplier"`
	AgeRiskMultiplier    float64 `json:"age_risk_multiplier"`
	DemographicRiskScore float64 `json:"demographic_risk_score"`

	IsGeriatric     bool `json:"is_geriatric"`
	IsNeonateInfant bool `json:"is_neonate_infant"`
	IsFemale        bool `json:"is_female"`
	IsMale          bool `json:"is_male"`
}

// ZScore 某体征的偏差分数，未评分返回 0
func (f Features) ZScore(v models.Vital) float64 {
	return f.ZScores[v]
}

// Deviation |z|
func (f Features) Deviation(v models.Vital) float64 {
	return math.Abs(f.ZScores[v])
}

// ExtractFeatures 从患者记录构建模型特征
func ExtractFeatures(
	record *models.PatientRecord,
	ageCohort models.AgeCohort,
	scores map[models.Vital]float64,
	table *norms.Table,
) Features {
	vitals := record.LatestVitals()
	gender := record.Gender.Normalize()

	zScores := make(map[models.Vital]float64, len(scores))
	for v, z := range scores {
		zScores[v] = z
	}

	genderMultiplier := table.GenderMultiplier(gender)
	ageMultiplier := table.RiskMultiplier(ageCohort)

	return Features{
		HeartRate:       vitals.HeartRate,
		RespiratoryRate: vitals.RespiratoryRate,
		Temperature:     vitals.Temperature,
		SystolicBP:      vitals.SystolicBP,
		DiastolicBP:     vitals.DiastolicBP,
		SpO2:            vitals.SpO2,

		AgeYears:      record.AgeYears,
		GenderNumeric: gender.Numeric(),
		CohortNumeric: ageCohort.Ordinal(),

		ZScores: zScores,

		GenderRiskMultiplier: genderMultiplier,
		AgeRiskMultiplier:    ageMultiplier,
		DemographicRiskScore: genderMultiplier * ageMultiplier,

		IsGeriatric:     ageCohort == models.CohortGeriatric,
		IsNeonateInfant: ageCohort == models.CohortNeonate || ageCohort == models.CohortInfant,
		IsFemale:        gender == models.GenderFemale,
		IsMale:          gender == models.GenderMale,
	}
}

package models

import (
	"encoding/json"
	"fmt"
)

// RiskLevel 风险等级（有序）
type RiskLevel int

const (
	RiskVeryLow RiskLevel = iota
	RiskLow
	RiskModerate
	RiskHigh
	RiskVeryHigh
)

var riskLevelNames = [...]string{"VERY_LOW", "LOW", "MODERATE", "HIGH", "VERY_HIGH"}

func (l RiskLevel) String() string {
	if l < RiskVeryLow || l > RiskVeryHigh {
		return fmt.Sprintf("RiskLevel(%d)", int(l))
	}
	return riskLevelNames[l]
}

func (l RiskLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *RiskLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for i, name := range riskLevelNames {
		if name == s {
			*l = RiskLevel(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown risk level %q", ErrInvalidInput, s)
}

// ThresholdScreen 基于临界阈值的积分筛查结果
type ThresholdScreen struct {
	Points        int      `json:"raw_risk_score"`
	AdjustedScore float64  `json:"adjusted_risk_score"`
	Level         string   `json:"risk_level"` // LOW, MEDIUM, HIGH, CRITICAL
	Factors       []string `json:"risk_factors"`
}

// RiskProfile 单个患者的评分结果（每次评分新建，构建后不再修改）
type RiskProfile struct {
	PatientID string              `json:"patient_id"`
	AgeYears  float64             `json:"age"`
	Gender    Gender              `json:"gender"`
	Cohort    AgeCohort           `json:"age_group"`
	SubCohort *GeriatricSubCohort `json:"age_subgroup,omitempty"`

	// 被评分的体征快照和偏差分数
	Vitals          VitalSnapshot     `json:"vitals"`
	DeviationScores map[Vital]float64 `json:"deviation_scores"`

	// 基础预测（临床模型）
	BaseProbability float64 `json:"base_probability"`
	Confidence      float64 `json:"confidence"`

	// 人口学调整
	GenderMultiplier    float64  `json:"gender_multiplier"`
	AgeMultiplier       float64  `json:"age_multiplier"`
	TotalMultiplier     float64  `json:"total_multiplier"`
	AdjustedProbability float64  `json:"adjusted_probability"`
	Adjustments         []string `json:"adjustments"`

	// 最终风险
	FinalProbability        float64   `json:"final_probability"`
	BaseContribution        float64   `json:"base_contribution"`
	DemographicContribution float64   `json:"demographic_contribution"`
	ClinicalWeight          float64   `json:"clinical_weight"`
	DemographicWeight       float64   `json:"demographic_weight"`
	RiskLevel               RiskLevel `json:"risk_level"`

	Screen   ThresholdScreen `json:"threshold_screen"`
	Insights []string        `json:"insights,omitempty"`
}

// DeviationScore 返回某体征的偏差分数；未评分时 ok=false
func (p *RiskProfile) DeviationScore(v Vital) (float64, bool) {
	z, ok := p.DeviationScores[v]
	return z, ok
}

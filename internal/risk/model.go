package risk

import (
	"math"

	"wisefido-sepsis/internal/deviation"
	"wisefido-sepsis/internal/models"
)

// Prediction 临床模型输出，Probability 约定在 [0,1]
type Prediction struct {
	Probability float64 `json:"probability"`
	Confidence  float64 `json:"confidence"`
}

// ClinicalModel 外部临床模型（基础概率的接入点）
// 实现必须可并发调用
type ClinicalModel interface {
	Predict(features Features) (Prediction, error)
}

// 规则模型权重
const (
	heartRateWeight       = 0.3
	temperatureWeight     = 0.4
	respiratoryRateWeight = 0.3
	ruleModelConfidence   = 0.85
)

// RuleModel 默认规则模型，在没有训练好的模型时提供基础概率
//   - |hr_z| > 2   → +0.3（双侧）
//   - temp_z > 2   → +0.4（仅升高）
//   - rr_z > 2     → +0.3（仅升高）
//
// 收缩压 z 分数记录在特征中但不参与计算
type RuleModel struct{}

// NewRuleModel 创建规则模型
func NewRuleModel() *RuleModel {
	return &RuleModel{}
}

// Predict 计算基础概率
func (m *RuleModel) Predict(features Features) (Prediction, error) {
	score := 0.0

	if deviation.IsSignificant(features.ZScore(models.VitalHeartRate)) {
		score += heartRateWeight
	}
	if deviation.IsElevated(features.ZScore(models.VitalTemperature)) {
		score += temperatureWeight
	}
	if deviation.IsElevated(features.ZScore(models.VitalRespiratoryRate)) {
		score += respiratoryRateWeight
	}

	return Prediction{
		Probability: clamp01(score),
		Confidence:  ruleModelConfidence,
	}, nil
}

// clamp01 限制到 [0,1]，NaN 视为 0
func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package risk

import "wisefido-sepsis/internal/models"

// ClassifyRiskLevel 最终概率 → 风险等级（左闭右开，最高档除外）
func ClassifyRiskLevel(p float64) models.RiskLevel {
	switch {
	case p < 0.1:
		return models.RiskVeryLow
	case p < 0.3:
		return models.RiskLow
	case p < 0.5:
		return models.RiskModerate
	case p < 0.7:
		return models.RiskHigh
	default:
		return models.RiskVeryHigh
	}
}

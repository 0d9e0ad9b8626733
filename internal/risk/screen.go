package risk

import (
	"fmt"

	"wisefido-sepsis/internal/models"
	"wisefido-sepsis/internal/norms"
)

// 阈值筛查积分
const (
	criticalPoints = 3
	elevatedPoints = 1
	feverPoints    = 2
)

// ScreenVitals 基于临界阈值和正常上限的积分筛查
// 正常上限取自筛查表 ScreeningRange，只看年龄分组
//   - 心率/呼吸超过临界阈值 +3，仅超过正常上限 +1
//   - 体温超过发热阈值 +2
//
// 调整分 = 积分 × 规范人口学总系数（与概率评分使用同一张系数表）
func ScreenVitals(table *norms.Table, vitals models.VitalSnapshot, ageCohort models.AgeCohort, gender models.Gender) models.ThresholdScreen {
	gender = gender.Normalize()
	points := 0
	factors := make([]string, 0)

	for _, item := range []struct {
		vital models.Vital
		label string
	}{
		{models.VitalHeartRate, "Heart rate"},
		{models.VitalRespiratoryRate, "Respiratory rate"},
	} {
		if !vitals.Has(item.vital) {
			continue
		}
		value := vitals.Value(item.vital)
		critical := table.CriticalThreshold(ageCohort, gender, item.vital)
		normalMax := table.ScreeningRange(ageCohort, item.vital).High

		if value > critical {
			factors = append(factors, fmt.Sprintf("%s critically high for %s", item.label, ageCohort.Display()))
			points += criticalPoints
		} else if value > normalMax {
			factors = append(factors, fmt.Sprintf("%s elevated for %s", item.label, ageCohort.Display()))
			points += elevatedPoints
		}
	}

	if vitals.Has(models.VitalTemperature) && vitals.Temperature > table.FeverThreshold(gender) {
		factors = append(factors, fmt.Sprintf("Fever for %s", gender))
		points += feverPoints
	}

	adjusted := float64(points) * table.GenderMultiplier(gender) * table.RiskMultiplier(ageCohort)

	return models.ThresholdScreen{
		Points:        points,
		AdjustedScore: adjusted,
		Level:         classifyScreenLevel(adjusted),
		Factors:       factors,
	}
}

func classifyScreenLevel(score float64) string {
	switch {
	case score < 2:
		return "LOW"
	case score < 5:
		return "MEDIUM"
	case score < 8:
		return "HIGH"
	default:
		return "CRITICAL"
	}
}

package norms

import "wisefido-sepsis/internal/models"

// screeningRanges 阈值筛查使用的正常范围，只按年龄分组
// 学龄前、学龄、中年没有条目，筛查时使用体征默认范围
var screeningRanges = map[models.AgeCohort]map[models.Vital]models.NormRange{
	models.CohortNeonate: {
		models.VitalHeartRate:       rng(120, 160),
		models.VitalRespiratoryRate: rng(30, 60),
		models.VitalSystolicBP:      rng(60, 90),
		models.VitalTemperature:     rng(36.5, 37.5),
	},
	models.CohortInfant: {
		models.VitalHeartRate:       rng(80, 140),
		models.VitalRespiratoryRate: rng(20, 40),
		models.VitalSystolicBP:      rng(70, 100),
		models.VitalTemperature:     rng(36.6, 37.7),
	},
	models.CohortToddler: {
		models.VitalHeartRate:       rng(70, 120),
		models.VitalRespiratoryRate: rng(20, 30),
		models.VitalSystolicBP:      rng(80, 110),
		models.VitalTemperature:     rng(36.7, 37.8),
	},
	models.CohortAdolescent: {
		models.VitalHeartRate:       rng(60, 100),
		models.VitalRespiratoryRate: rng(12, 20),
		models.VitalSystolicBP:      rng(90, 120),
		models.VitalTemperature:     rng(36.5, 37.5),
	},
	models.CohortYoungAdult: {
		models.VitalHeartRate:       rng(60, 100),
		models.VitalRespiratoryRate: rng(12, 20),
		models.VitalSystolicBP:      rng(100, 130),
		models.VitalTemperature:     rng(36.5, 37.5),
	},
	models.CohortGeriatric: {
		models.VitalHeartRate:       rng(60, 100),
		models.VitalRespiratoryRate: rng(12, 25),
		models.VitalSystolicBP:      rng(110, 140),
		models.VitalTemperature:     rng(36.0, 37.2),
	},
}

// ScreeningRange 阈值筛查的正常范围（不区分性别）
// 与 NormRange 的人群参考表相互独立；没有条目时静默使用体征默认范围
func (t *Table) ScreeningRange(cohort models.AgeCohort, vital models.Vital) models.NormRange {
	if byVital, ok := screeningRanges[cohort]; ok {
		if r, ok := byVital[vital]; ok {
			return r
		}
	}
	if r, ok := defaultRanges[vital]; ok {
		return r
	}
	return models.NormRange{Low: 0, High: 1}
}

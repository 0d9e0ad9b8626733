package norms

import "wisefido-sepsis/internal/models"

// genderedRange 按性别区分的正常范围
type genderedRange struct {
	male   models.NormRange
	female models.NormRange
}

// forGender 只有男女两行数据；OTHER / UNKNOWN 没有对应条目
func (r genderedRange) forGender(g models.Gender) (models.NormRange, bool) {
	switch g {
	case models.GenderMale:
		return r.male, true
	case models.GenderFemale:
		return r.female, true
	default:
		return models.NormRange{}, false
	}
}

func rng(low, high float64) models.NormRange {
	return models.NormRange{Low: low, High: high}
}

func same(low, high float64) genderedRange {
	return genderedRange{male: rng(low, high), female: rng(low, high)}
}

// ===== 心率 (bpm) =====
var heartRateNorms = map[models.AgeCohort]genderedRange{
	models.CohortNeonate:     same(120, 160),
	models.CohortInfant:      same(80, 140),
	models.CohortToddler:     same(70, 120),
	models.CohortPreschool:   same(65, 110),
	models.CohortSchoolAge:   same(60, 100),
	models.CohortAdolescent:  {male: rng(55, 95), female: rng(60, 100)},
	models.CohortYoungAdult:  same(60, 100),
	models.CohortMiddleAdult: same(60, 100),
	models.CohortGeriatric:   same(60, 100),
}

// ===== 收缩压 (mmHg) =====
var systolicBPNorms = map[models.AgeCohort]genderedRange{
	models.CohortNeonate:     same(60, 90),
	models.CohortInfant:      same(70, 100),
	models.CohortToddler:     same(80, 110),
	models.CohortPreschool:   same(85, 115),
	models.CohortSchoolAge:   same(90, 120),
	models.CohortAdolescent:  {male: rng(100, 130), female: rng(95, 125)},
	models.CohortYoungAdult:  {male: rng(110, 135), female: rng(105, 130)},
	models.CohortMiddleAdult: {male: rng(115, 140), female: rng(110, 135)},
	models.CohortGeriatric:   {male: rng(120, 145), female: rng(115, 140)},
}

// ===== 体温 (°C) =====
// 新生儿、婴儿、幼儿和老年人单独定义，其余年龄段使用成人范围
var temperatureNorms = map[models.AgeCohort]genderedRange{
	models.CohortNeonate:     same(36.5, 37.5),
	models.CohortInfant:      same(36.6, 37.7),
	models.CohortToddler:     same(36.7, 37.8),
	models.CohortPreschool:   same(36.5, 37.5),
	models.CohortSchoolAge:   same(36.5, 37.5),
	models.CohortAdolescent:  same(36.5, 37.5),
	models.CohortYoungAdult:  same(36.5, 37.5),
	models.CohortMiddleAdult: same(36.5, 37.5),
	models.CohortGeriatric:   same(36.0, 37.2), // 老年人基础体温偏低
}

// ===== 呼吸频率 (breaths/min)，不区分性别 =====
var respiratoryRateNorms = map[models.AgeCohort]models.NormRange{
	models.CohortNeonate:     rng(30, 60),
	models.CohortInfant:      rng(20, 40),
	models.CohortToddler:     rng(20, 30),
	models.CohortPreschool:   rng(20, 30),
	models.CohortSchoolAge:   rng(15, 25),
	models.CohortAdolescent:  rng(12, 20),
	models.CohortYoungAdult:  rng(12, 20),
	models.CohortMiddleAdult: rng(12, 20),
	models.CohortGeriatric:   rng(12, 25), // 老年人上限更高
}

// ===== 血氧饱和度 (%)，不区分性别 =====
var spo2Norms = map[models.AgeCohort]models.NormRange{
	models.CohortNeonate:     rng(85, 100),
	models.CohortInfant:      rng(90, 100),
	models.CohortToddler:     rng(94, 100),
	models.CohortPreschool:   rng(94, 100),
	models.CohortSchoolAge:   rng(94, 100),
	models.CohortAdolescent:  rng(95, 100),
	models.CohortYoungAdult:  rng(95, 100),
	models.CohortMiddleAdult: rng(95, 100),
	models.CohortGeriatric:   rng(92, 100),
}

// defaultRanges 查表失败时的兜底范围（保证评分器总能拿到可用范围）
var defaultRanges = map[models.Vital]models.NormRange{
	models.VitalHeartRate:       rng(60, 100),
	models.VitalRespiratoryRate: rng(12, 20),
	models.VitalSystolicBP:      rng(90, 120),
	models.VitalDiastolicBP:     rng(60, 80),
	models.VitalTemperature:     rng(36.5, 37.5),
	models.VitalSpO2:            rng(95, 100),
}

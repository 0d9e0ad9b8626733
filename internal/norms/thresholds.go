package norms

import "wisefido-sepsis/internal/models"

// 按性别的脓毒症临界阈值
// 心率、呼吸为上限；收缩压为下限（低于该值视为低血压）
var criticalThresholds = map[models.Gender]map[models.Vital]float64{
	models.GenderMale: {
		models.VitalHeartRate:       110,
		models.VitalRespiratoryRate: 24,
		models.VitalSystolicBP:      100,
	},
	models.GenderFemale: {
		models.VitalHeartRate:       115,
		models.VitalRespiratoryRate: 22,
		models.VitalSystolicBP:      95,
	},
	models.GenderOther: {
		models.VitalHeartRate:       112,
		models.VitalRespiratoryRate: 23,
		models.VitalSystolicBP:      98,
	},
}

var defaultCriticalThresholds = map[models.Vital]float64{
	models.VitalHeartRate:       110,
	models.VitalRespiratoryRate: 22,
	models.VitalSystolicBP:      100,
}

var feverThresholds = map[models.Gender]float64{
	models.GenderMale:   38.0,
	models.GenderFemale: 38.2,
	models.GenderOther:  38.1,
}

const defaultFeverThreshold = 38.0

// 每千人发病率
var sepsisIncidence = map[models.AgeCohort]float64{
	models.CohortNeonate:     2.5,
	models.CohortInfant:      1.8,
	models.CohortToddler:     0.8,
	models.CohortPreschool:   0.8,
	models.CohortSchoolAge:   0.8,
	models.CohortAdolescent:  0.6,
	models.CohortYoungAdult:  0.9,
	models.CohortMiddleAdult: 1.2,
	models.CohortGeriatric:   5.4,
}

// 病死率
var sepsisMortality = map[models.Gender]float64{
	models.GenderMale:   0.28,
	models.GenderFemale: 0.24,
	models.GenderOther:  0.26,
}

const defaultMortality = 0.26

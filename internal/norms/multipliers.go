package norms

import "wisefido-sepsis/internal/models"

// 年龄风险系数（唯一的规范表，评分和筛查都使用它）
var cohortRiskMultipliers = map[models.AgeCohort]float64{
	models.CohortNeonate:     2.5,
	models.CohortInfant:      2.0,
	models.CohortYoungAdult:  1.0,
	models.CohortMiddleAdult: 1.2,
	models.CohortGeriatric:   1.8,
}

var genderMultipliers = map[models.Gender]float64{
	models.GenderMale:   1.15,
	models.GenderFemale: 0.95,
	models.GenderOther:  1.05,
}

// Flag 年龄组定性风险因素，只用于选择洞察模板，不影响数值
type Flag string

const (
	FlagImmuneImmature        Flag = "immune_immature"
	FlagSkinBarrierWeak       Flag = "skin_barrier_weak"
	FlagMetabolicRateHigh     Flag = "metabolic_rate_high"
	FlagImmuneDeveloping      Flag = "immune_developing"
	FlagVaccinationIncomplete Flag = "vaccination_incomplete"
	FlagImmuneSenescence      Flag = "immune_senescence"
	FlagComorbiditiesHigh     Flag = "comorbidities_high"
	FlagAtypicalPresentation  Flag = "atypical_presentation"
)

var cohortFlags = map[models.AgeCohort][]Flag{
	models.CohortNeonate:   {FlagImmuneImmature, FlagSkinBarrierWeak, FlagMetabolicRateHigh},
	models.CohortInfant:    {FlagImmuneDeveloping, FlagVaccinationIncomplete},
	models.CohortGeriatric: {FlagImmuneSenescence, FlagComorbiditiesHigh, FlagAtypicalPresentation},
}

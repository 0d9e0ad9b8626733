// Package insights 按人口学特征生成临床提示文本
//
// 只做模板选择，不影响任何数值。输出顺序固定：年龄 → 性别 → 体征偏差 → 系数 → 定性因素 → 临界阈值
package insights

import (
	"fmt"

	"wisefido-sepsis/internal/deviation"
	"wisefido-sepsis/internal/models"
	"wisefido-sepsis/internal/norms"
)

// HighMultiplierThreshold 人口学总系数超过该值时提示加强监护
const HighMultiplierThreshold = 1.5

// HighFeverCelsius 女性高热提示阈值
const HighFeverCelsius = 38.5

var cohortTemplates = map[models.AgeCohort][]string{
	models.CohortNeonate: {
		"Neonate: Sepsis may present with temperature instability, feeding difficulties, or lethargy",
		"Consider maternal risk factors and early-onset vs late-onset sepsis",
	},
	models.CohortGeriatric: {
		"Geriatric: Atypical presentation common - watch for delirium, falls, or functional decline",
		"Lower fever threshold in elderly (≥37.8°C may be significant)",
	},
}

var genderTemplates = map[models.Gender][]string{
	models.GenderFemale: {
		"Female: Consider pregnancy status and gynecological sources of infection",
		"Higher autoimmune disease prevalence may complicate diagnosis",
	},
	models.GenderMale: {
		"Male: Higher baseline mortality risk from sepsis",
		"Consider prostate/urinary sources in older males",
	},
}

var flagTemplates = []struct {
	flag norms.Flag
	text string
}{
	{norms.FlagImmuneImmature, "Neonate: High sepsis risk due to immature immune system. Lower threshold for antibiotic initiation recommended."},
	{norms.FlagAtypicalPresentation, "Geriatric patient: May present with atypical sepsis symptoms. Watch for delirium, falls, or functional decline as early signs."},
}

// 参与偏差提示的体征
var deviationVitals = []models.Vital{
	models.VitalHeartRate,
	models.VitalRespiratoryRate,
	models.VitalTemperature,
}

// Generator 洞察生成器
type Generator struct {
	norms *norms.Table
}

// NewGenerator 创建洞察生成器
func NewGenerator(table *norms.Table) *Generator {
	return &Generator{norms: table}
}

// Generate 为评分结果生成洞察
func (g *Generator) Generate(profile *models.RiskProfile) []string {
	if profile == nil {
		return nil
	}
	gender := profile.Gender.Normalize()
	out := make([]string, 0, 8)

	out = append(out, cohortTemplates[profile.Cohort]...)
	out = append(out, genderTemplates[gender]...)

	for _, v := range deviationVitals {
		z, ok := profile.DeviationScore(v)
		if !ok || !deviation.IsSignificant(z) {
			continue
		}
		direction := "reduced"
		if z > 0 {
			direction = "elevated"
		}
		out = append(out, fmt.Sprintf("%s significantly %s for %s %s", v.Display(), direction, profile.Cohort, gender))
	}

	if profile.TotalMultiplier > HighMultiplierThreshold {
		out = append(out, fmt.Sprintf("High demographic risk multiplier (%.1fx) - increased vigilance needed", profile.TotalMultiplier))
	}

	if gender == models.GenderFemale {
		if profile.Vitals.Has(models.VitalTemperature) && profile.Vitals.Temperature > HighFeverCelsius {
			out = append(out, "High fever in FEMALE may indicate robust immune response. Consider FEMALE-specific antipyretic thresholds.")
		}
	}

	for _, ft := range flagTemplates {
		if g.norms.HasFlag(profile.Cohort, ft.flag) {
			out = append(out, ft.text)
		}
	}

	if gender == models.GenderFemale {
		out = append(out, "Female patient: May require adjusted medication dosing due to slower drug clearance. Monitor for side effects.")
	}

	out = append(out, g.thresholdInsights(profile, gender)...)
	return out
}

func (g *Generator) thresholdInsights(profile *models.RiskProfile, gender models.Gender) []string {
	out := make([]string, 0, 2)
	vitals := profile.Vitals

	if vitals.Has(models.VitalHeartRate) &&
		vitals.HeartRate > g.norms.CriticalThreshold(profile.Cohort, gender, models.VitalHeartRate) {
		out = append(out, fmt.Sprintf(
			"Tachycardia exceeds %s-specific critical threshold. Consider %s-appropriate fluid management.",
			gender, profile.Cohort))
	}
	if vitals.Has(models.VitalRespiratoryRate) &&
		vitals.RespiratoryRate > g.norms.CriticalThreshold(profile.Cohort, gender, models.VitalRespiratoryRate) {
		out = append(out, fmt.Sprintf(
			"Tachypnea exceeds %s norm. Monitor for respiratory fatigue, especially in geriatric patients.",
			profile.Cohort))
	}
	return out
}

// Package cohort 根据年龄划分年龄分组
//
// 分组边界（岁）：28 天(0.0767)、1、3、5、12、18、40、65
// 小于边界值留在上一组，等于边界值进入下一组（如 1.0 → TODDLER）
package cohort

import (
	"fmt"
	"math"

	"wisefido-sepsis/internal/models"
)

// NeonateUpperBound 28 天折算为年
const NeonateUpperBound = 0.0767

// DaysPerYear 天数与年的换算
const DaysPerYear = 365.25

var ladder = []struct {
	upper  float64
	cohort models.AgeCohort
}{
	{NeonateUpperBound, models.CohortNeonate},
	{1, models.CohortInfant},
	{3, models.CohortToddler},
	{5, models.CohortPreschool},
	{12, models.CohortSchoolAge},
	{18, models.CohortAdolescent},
	{40, models.CohortYoungAdult},
	{65, models.CohortMiddleAdult},
}

// ClassifyAge 年龄（岁，可为小数）映射到年龄分组
// 负数、NaN、Inf 返回 ErrInvalidInput
func ClassifyAge(ageYears float64) (models.AgeCohort, error) {
	if math.IsNaN(ageYears) || math.IsInf(ageYears, 0) || ageYears < 0 {
		return 0, fmt.Errorf("%w: age %v out of range", models.ErrInvalidInput, ageYears)
	}
	for _, step := range ladder {
		if ageYears < step.upper {
			return step.cohort, nil
		}
	}
	return models.CohortGeriatric, nil
}

// ClassifyGeriatricSubCohort 老年细分组，年龄 < 65 返回 nil
func ClassifyGeriatricSubCohort(ageYears float64) *models.GeriatricSubCohort {
	if math.IsNaN(ageYears) || ageYears < 65 {
		return nil
	}
	var sub models.GeriatricSubCohort
	switch {
	case ageYears < 75:
		sub = models.SubCohortYoungGeriatric
	case ageYears < 85:
		sub = models.SubCohortMidGeriatric
	default:
		sub = models.SubCohortOldGeriatric
	}
	return &sub
}

// DaysToYears 天数换算为年（新生儿年龄常以天记录）
func DaysToYears(days float64) float64 {
	return days / DaysPerYear
}

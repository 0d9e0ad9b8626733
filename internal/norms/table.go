// Package norms 提供按年龄分组和性别的生命体征参考数据
//
// 所有数据为编译期常量，Table 构建后只读，可并发使用。
// 查表失败一律回退到按体征定义的默认值，只记 debug 日志，不返回错误。
package norms

import (
	"wisefido-sepsis/internal/models"

	"go.uber.org/zap"
)

// Table 参考数据表
type Table struct {
	gendered   map[models.Vital]map[models.AgeCohort]genderedRange
	cohortOnly map[models.Vital]map[models.AgeCohort]models.NormRange
	logger     *zap.Logger
}

// NewTable 创建参考数据表
func NewTable(logger *zap.Logger) *Table {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Table{
		gendered: map[models.Vital]map[models.AgeCohort]genderedRange{
			models.VitalHeartRate:   heartRateNorms,
			models.VitalSystolicBP:  systolicBPNorms,
			models.VitalTemperature: temperatureNorms,
		},
		cohortOnly: map[models.Vital]map[models.AgeCohort]models.NormRange{
			models.VitalRespiratoryRate: respiratoryRateNorms,
			models.VitalSpO2:            spo2Norms,
		},
		logger: logger,
	}
}

// NormRange 查询正常范围
// 呼吸频率、血氧只按年龄分组；其余按 (年龄分组, 性别)，没有条目（含 OTHER/UNKNOWN）时使用体征默认范围
func (t *Table) NormRange(cohort models.AgeCohort, gender models.Gender, vital models.Vital) models.NormRange {
	if byCohort, ok := t.cohortOnly[vital]; ok {
		if r, ok := byCohort[cohort]; ok {
			return r
		}
		return t.fallbackRange(cohort, gender, vital)
	}

	if byCohort, ok := t.gendered[vital]; ok {
		if entry, ok := byCohort[cohort]; ok {
			if r, ok := entry.forGender(gender.Normalize()); ok {
				return r
			}
		}
	}
	return t.fallbackRange(cohort, gender, vital)
}

func (t *Table) fallbackRange(cohort models.AgeCohort, gender models.Gender, vital models.Vital) models.NormRange {
	r, ok := defaultRanges[vital]
	if !ok {
		// 未知体征：中性区间
		r = models.NormRange{Low: 0, High: 1}
	}
	t.logger.Debug("Norm range lookup fell back to default",
		zap.String("cohort", cohort.String()),
		zap.String("gender", string(gender)),
		zap.String("vital", string(vital)),
		zap.Float64("low", r.Low),
		zap.Float64("high", r.High),
	)
	return r
}

// CriticalThreshold 脓毒症临界阈值
// 当前数据只按性别区分，cohort 参数保留用于查询签名一致
func (t *Table) CriticalThreshold(cohort models.AgeCohort, gender models.Gender, vital models.Vital) float64 {
	if byVital, ok := criticalThresholds[gender.Normalize()]; ok {
		if v, ok := byVital[vital]; ok {
			return v
		}
	}
	v, ok := defaultCriticalThresholds[vital]
	if !ok {
		v = t.NormRange(cohort, gender, vital).High
	}
	t.logger.Debug("Critical threshold lookup fell back to default",
		zap.String("cohort", cohort.String()),
		zap.String("gender", string(gender)),
		zap.String("vital", string(vital)),
		zap.Float64("threshold", v),
	)
	return v
}

// FeverThreshold 按性别的发热阈值（°C）
func (t *Table) FeverThreshold(gender models.Gender) float64 {
	if v, ok := feverThresholds[gender.Normalize()]; ok {
		return v
	}
	return defaultFeverThreshold
}

// RiskMultiplier 年龄分组风险系数，未定义的分组为 1.0
func (t *Table) RiskMultiplier(cohort models.AgeCohort) float64 {
	if v, ok := cohortRiskMultipliers[cohort]; ok {
		return v
	}
	return 1.0
}

// GenderMultiplier 性别风险系数，UNKNOWN 为 1.0
func (t *Table) GenderMultiplier(gender models.Gender) float64 {
	if v, ok := genderMultipliers[gender.Normalize()]; ok {
		return v
	}
	return 1.0
}

// QualitativeFlags 年龄分组的定性风险因素（返回副本）
func (t *Table) QualitativeFlags(cohort models.AgeCohort) []Flag {
	flags := cohortFlags[cohort]
	out := make([]Flag, len(flags))
	copy(out, flags)
	return out
}

// HasFlag 年龄分组是否带有指定风险因素
func (t *Table) HasFlag(cohort models.AgeCohort, flag Flag) bool {
	for _, f := range cohortFlags[cohort] {
		if f == flag {
			return true
		}
	}
	return false
}

// BaselineIncidenceRisk 流行病学基线风险 = 发病率 × (1 + 病死率)，新生儿和老年人再 ×1.5
func (t *Table) BaselineIncidenceRisk(cohort models.AgeCohort, gender models.Gender) float64 {
	incidence, ok := sepsisIncidence[cohort]
	if !ok {
		incidence = 1.0
	}
	mortality, ok := sepsisMortality[gender.Normalize()]
	if !ok {
		mortality = defaultMortality
	}

	risk := incidence * (1 + mortality)
	if cohort == models.CohortNeonate || cohort == models.CohortGeriatric {
		risk *= 1.5
	}
	return risk
}

// Package population 在一批评分结果上做人群统计
//
// 所有函数只读输入，单次遍历，结果与输入顺序无关（浮点求和误差除外）。
package population

import (
	"fmt"
	"strings"

	"wisefido-sepsis/internal/models"
	"wisefido-sepsis/internal/norms"

	"go.uber.org/zap"
)

// 阈值
const (
	HighRiskPatientThreshold = 0.5 // 单个患者：最终概率 > 0.5
	HighRiskCohortThreshold  = 0.4 // 年龄分组：平均风险 > 0.4
	MaleRiskRatioThreshold   = 1.2 // 男性平均风险 > 女性 × 1.2 触发建议
	TrendThreshold           = 0.1
)

// 趋势
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// HighRiskCohortReason 高风险年龄分组原因
const HighRiskCohortReason = "High baseline risk due to age-related factors"

// 固定的通用建议
var generalRecommendations = []string{
	"Implement demographic-specific vital sign thresholds in monitoring systems",
	"Train staff on demographic variations in sepsis presentation",
	"Develop age and gender-specific sepsis screening tools",
}

// Analyzer 人群分析器
type Analyzer struct {
	norms  *norms.Table
	logger *zap.Logger
}

// NewAnalyzer 创建人群分析器
func NewAnalyzer(table *norms.Table, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{norms: table, logger: logger}
}

// Analyze 生成人群报告
func (a *Analyzer) Analyze(profiles []*models.RiskProfile) *models.PopulationReport {
	genderStats := GenderRiskStats(profiles)
	cohortStats := a.CohortRiskStats(profiles)

	report := &models.PopulationReport{
		Summary:           Summary(profiles),
		GenderCounts:      GenderCounts(profiles),
		GenderAnalysis:    genderStats,
		CohortAnalysis:    cohortStats,
		CohortVitalStats:  CohortVitalStats(profiles),
		GenderComparisons: CompareGenders(profiles),
		CohortTrends:      CohortTrends(profiles),
		HighRiskCohorts:   HighRiskCohorts(cohortStats),
		Recommendations:   Recommendations(genderStats, cohortStats),
	}

	a.logger.Info("Population analysis completed",
		zap.Int("total_patients", report.Summary.TotalPatients),
		zap.Float64("overall_mean_risk", report.Summary.OverallMeanRisk),
		zap.Int("high_risk_patients", report.Summary.HighRiskPatients),
		zap.Int("gender_comparisons", len(report.GenderComparisons)),
		zap.Int("high_risk_cohorts", len(report.HighRiskCohorts)),
	)
	return report
}

// Summary 人群汇总
func Summary(profiles []*models.RiskProfile) models.PopulationSummary {
	risks := make([]float64, 0, len(profiles))
	high := 0
	for _, p := range profiles {
		if p == nil {
			continue
		}
		risks = append(risks, p.FinalProbability)
		if p.FinalProbability > HighRiskPatientThreshold {
			high++
		}
	}
	mean, _ := meanStd(risks)
	return models.PopulationSummary{
		TotalPatients:    len(risks),
		OverallMeanRisk:  mean,
		HighRiskPatients: high,
	}
}

// GenderCounts 各性别人数（male/female/other/unknown，总是全部列出）
func GenderCounts(profiles []*models.RiskProfile) map[string]int {
	counts := map[string]int{"male": 0, "female": 0, "other": 0, "unknown": 0}
	for _, p := range profiles {
		if p == nil {
			continue
		}
		counts[strings.ToLower(string(p.Gender.Normalize()))]++
	}
	return counts
}

// GenderRiskStats 按性别的风险统计，没有患者的性别不出现
func GenderRiskStats(profiles []*models.RiskProfile) map[string]models.GenderRiskStats {
	risks := make(map[models.Gender][]float64)
	for _, p := range profiles {
		if p == nil {
			continue
		}
		g := p.Gender.Normalize()
		risks[g] = append(risks[g], p.FinalProbability)
	}

	out := make(map[string]models.GenderRiskStats, len(risks))
	for g, values := range risks {
		mean, std := meanPopStd(values)
		out[string(g)] = models.GenderRiskStats{
			MeanRisk:      mean,
			StdRisk:       std,
			Count:         len(values),
			HighRiskCount: countAbove(values, HighRiskPatientThreshold),
		}
	}
	return out
}

// CohortRiskStats 按年龄分组的风险统计，附带流行病学基线风险
func (a *Analyzer) CohortRiskStats(profiles []*models.RiskProfile) map[string]models.CohortRiskStats {
	risks := make(map[models.AgeCohort][]float64)
	for _, p := range profiles {
		if p == nil {
			continue
		}
		risks[p.Cohort] = append(risks[p.Cohort], p.FinalProbability)
	}

	out := make(map[string]models.CohortRiskStats, len(risks))
	for c, values := range risks {
		mean, std := meanPopStd(values)
		out[c.String()] = models.CohortRiskStats{
			MeanRisk:              mean,
			StdRisk:               std,
			Count:                 len(values),
			HighRiskProportion:    float64(countAbove(values, HighRiskPatientThreshold)) / float64(len(values)),
			BaselineIncidenceRisk: a.norms.BaselineIncidenceRisk(c, models.GenderUnknown),
		}
	}
	return out
}

// CompareGenders 男女体征 Welch t 检验
// 任一性别样本数 <= 1 的体征不出现在结果中
func CompareGenders(profiles []*models.RiskProfile) map[string]models.GenderComparison {
	out := make(map[string]models.GenderComparison)

	for _, v := range models.ComparedVitals {
		male := vitalSample(profiles, v, func(p *models.RiskProfile) bool {
			return p.Gender.Normalize() == models.GenderMale
		})
		female := vitalSample(profiles, v, func(p *models.RiskProfile) bool {
			return p.Gender.Normalize() == models.GenderFemale
		})
		if len(male) <= 1 || len(female) <= 1 {
			continue
		}

		maleMean, _ := meanStd(male)
		femaleMean, _ := meanStd(female)
		result := welchTTest(male, female)

		out[string(v)] = models.GenderComparison{
			MaleMean:       maleMean,
			FemaleMean:     femaleMean,
			MeanDifference: maleMean - femaleMean,
			TStatistic:     result.statistic,
			PValue:         result.pValue,
			Significant:    result.pValue < SignificanceLevel,
			MaleCount:      len(male),
			FemaleCount:    len(female),
		}
	}
	return out
}

// CohortTrends 体征随年龄分组的趋势
// x 为年龄分组序号（0..8），没有观测的分组不参与计算；少于 2 个分组的体征不出现
func CohortTrends(profiles []*models.RiskProfile) map[string]models.CohortTrend {
	out := make(map[string]models.CohortTrend)
	byCohort := groupByCohort(profiles)

	for _, v := range models.ComparedVitals {
		cohorts := make([]models.AgeCohort, 0, len(byCohort))
		means := make([]float64, 0, len(byCohort))
		ordinals := make([]float64, 0, len(byCohort))

		for _, c := range models.AllCohorts() {
			sample := vitalSample(byCohort[c], v, nil)
			if len(sample) == 0 {
				continue
			}
			mean, _ := meanStd(sample)
			cohorts = append(cohorts, c)
			means = append(means, mean)
			ordinals = append(ordinals, float64(c.Ordinal()))
		}
		if len(cohorts) < 2 {
			continue
		}

		r := pearson(ordinals, means)
		out[string(v)] = models.CohortTrend{
			Cohorts:     cohorts,
			Means:       means,
			Correlation: r,
			Trend:       classifyTrend(r),
		}
	}
	return out
}

// CohortVitalStats 各体征按年龄分组的描述统计：vital → cohort → stats
func CohortVitalStats(profiles []*models.RiskProfile) map[string]map[string]models.VitalStats {
	out := make(map[string]map[string]models.VitalStats)
	byCohort := groupByCohort(profiles)

	for _, v := range models.ComparedVitals {
		for c, group := range byCohort {
			sample := vitalSample(group, v, nil)
			if len(sample) == 0 {
				continue
			}
			mean, std := meanStd(sample)
			if out[string(v)] == nil {
				out[string(v)] = make(map[string]models.VitalStats)
			}
			out[string(v)][c.String()] = models.VitalStats{Mean: mean, Std: std, Count: len(sample)}
		}
	}
	return out
}

// HighRiskCohorts 平均风险超过阈值的年龄分组（按年龄顺序）
func HighRiskCohorts(cohortStats map[string]models.CohortRiskStats) []models.HighRiskCohort {
	out := make([]models.HighRiskCohort, 0)
	for _, c := range models.AllCohorts() {
		stats, ok := cohortStats[c.String()]
		if !ok || stats.MeanRisk <= HighRiskCohortThreshold {
			continue
		}
		out = append(out, models.HighRiskCohort{
			Cohort:      c,
			Demographic: fmt.Sprintf("Age Group: %s", c),
			MeanRisk:    stats.MeanRisk,
			Reason:      HighRiskCohortReason,
		})
	}
	return out
}

// Recommendations 基于人群统计的规则建议
func Recommendations(genderStats map[string]models.GenderRiskStats, cohortStats map[string]models.CohortRiskStats) []string {
	out := make([]string, 0, len(generalRecommendations)+2)

	male, hasMale := genderStats[string(models.GenderMale)]
	female, hasFemale := genderStats[string(models.GenderFemale)]
	if hasMale && hasFemale && male.MeanRisk > female.MeanRisk*MaleRiskRatioThreshold {
		out = append(out, "Higher sepsis risk in males detected. Consider gender-specific "+
			"screening protocols and education about male sepsis awareness.")
	}

	highRisk := HighRiskCohorts(cohortStats)
	if len(highRisk) > 0 {
		names := make([]string, 0, len(highRisk))
		for _, h := range highRisk {
			names = append(names, h.Cohort.String())
		}
		out = append(out, fmt.Sprintf("High sepsis risk in %s. Implement targeted monitoring and early "+
			"intervention protocols for these age groups.", strings.Join(names, ", ")))
	}

	return append(out, generalRecommendations...)
}

func classifyTrend(r float64) string {
	switch {
	case r > TrendThreshold:
		return TrendIncreasing
	case r < -TrendThreshold:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

func groupByCohort(profiles []*models.RiskProfile) map[models.AgeCohort][]*models.RiskProfile {
	out := make(map[models.AgeCohort][]*models.RiskProfile)
	for _, p := range profiles {
		if p == nil {
			continue
		}
		out[p.Cohort] = append(out[p.Cohort], p)
	}
	return out
}

// vitalSample 收集存在的体征值；keep 为 nil 时保留全部患者
func vitalSample(profiles []*models.RiskProfile, v models.Vital, keep func(*models.RiskProfile) bool) []float64 {
	out := make([]float64, 0, len(profiles))
	for _, p := range profiles {
		if p == nil || (keep != nil && !keep(p)) {
			continue
		}
		if p.Vitals.Has(v) {
			out = append(out, p.Vitals.Value(v))
		}
	}
	return out
}

func countAbove(values []float64, threshold float64) int {
	n := 0
	for _, v := range values {
		if v > threshold {
			n++
		}
	}
	return n
}

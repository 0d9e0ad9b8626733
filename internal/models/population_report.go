package models

// PopulationSummary 人群汇总
type PopulationSummary struct {
	TotalPatients    int     `json:"total_patients"`
	OverallMeanRisk  float64 `json:"overall_mean_risk"`
	HighRiskPatients int     `json:"high_risk_patients"`
}

// GenderRiskStats 按性别的风险统计
type GenderRiskStats struct {
	MeanRisk      float64 `json:"mean_risk"`
	StdRisk       float64 `json:"std_risk"`
	Count         int     `json:"count"`
	HighRiskCount int     `json:"high_risk_count"`
}

// CohortRiskStats 按年龄分组的风险统计
type CohortRiskStats struct {
	MeanRisk              float64 `json:"mean_risk"`
	StdRisk               float64 `json:"std_risk"`
	Count                 int     `json:"count"`
	HighRiskProportion    float64 `json:"high_risk_proportion"`
	BaselineIncidenceRisk float64 `json:"baseline_incidence_risk"`
}

// VitalStats 单个体征的描述统计
type VitalStats struct {
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
	Count int     `json:"count"`
}

// GenderComparison 男女体征比较（Welch t 检验）
type GenderComparison struct {
	MaleMean       float64 `json:"male_mean"`
	FemaleMean     float64 `json:"female_mean"`
	MeanDifference float64 `json:"mean_difference"`
	TStatistic     float64 `json:"t_statistic"`
	PValue         float64 `json:"p_value"`
	Significant    bool    `json:"significant"`
	MaleCount      int     `json:"male_count"`
	FemaleCount    int     `json:"female_count"`
}

// CohortTrend 体征随年龄分组的趋势
type CohortTrend struct {
	Cohorts     []AgeCohort `json:"age_groups"`
	Means       []float64   `json:"means"`
	Correlation float64     `json:"correlation"`
	Trend       string      `json:"trend"` // increasing, decreasing, stable
}

// HighRiskCohort 高风险年龄分组
type HighRiskCohort struct {
	Cohort      AgeCohort `json:"age_group"`
	Demographic string    `json:"demographic"`
	MeanRisk    float64   `json:"mean_risk"`
	Reason      string    `json:"reason"`
}

// PopulationReport 人群报告（只包含可直接序列化的结构，不引用患者记录）
type PopulationReport struct {
	ReportID          string                           `json:"report_id,omitempty"`
	Summary           PopulationSummary                `json:"population_summary"`
	GenderCounts      map[string]int                   `json:"gender_counts"`
	GenderAnalysis    map[string]GenderRiskStats       `json:"gender_analysis"`
	CohortAnalysis    map[string]CohortRiskStats       `json:"age_group_analysis"`
	CohortVitalStats  map[string]map[string]VitalStats `json:"age_group_means"`
	GenderComparisons map[string]GenderComparison      `json:"gender_comparisons"`
	CohortTrends      map[string]CohortTrend           `json:"age_trends"`
	HighRiskCohorts   []HighRiskCohort                 `json:"high_risk_demographics"`
	Recommendations   []string                         `json:"recommendations"`
}

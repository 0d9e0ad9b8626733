// Package risk 把偏差分数、人口学系数和基础概率合成为有界的最终风险
//
// 评分流程（纯函数，无共享可变状态，可并发调用）：
//  1. 年龄分组 + 偏差分数
//  2. 基础概率（ClinicalModel）
//  3. 人口学总系数 = 性别系数 × 年龄系数
//  4. 调整概率 = clamp01(基础 × 总系数)，再依次应用新生儿/婴儿 ×1.3、老年 ×1.4，每步重新限幅
//  5. 最终概率 = clamp01(0.7 × 基础 + 0.3 × 调整)
//  6. 风险等级
package risk

import (
	"fmt"

	"wisefido-sepsis/internal/cohort"
	"wisefido-sepsis/internal/deviation"
	"wisefido-sepsis/internal/insights"
	"wisefido-sepsis/internal/models"
	"wisefido-sepsis/internal/norms"

	"go.uber.org/zap"
)

// 合成权重：临床基础概率为主，人口学调整占 30%
const (
	ClinicalWeight    = 0.7
	DemographicWeight = 0.3
)

// 特殊人群调整
const (
	immatureImmuneFactor   = 1.3
	immunosenescenceFactor = 1.4
)

// 调整原因
const (
	ReasonImmatureImmune   = "Higher risk due to immature immune system"
	ReasonImmunosenescence = "Higher risk due to immunosenescence and comorbidities"
	ReasonMaleBaseline     = "Males have higher baseline sepsis risk"
	ReasonFemalePattern    = "Females may present with different symptom patterns"
)

// Aggregator 风险合成器
type Aggregator struct {
	norms    *norms.Table
	scorer   *deviation.Scorer
	model    ClinicalModel
	insights *insights.Generator // 可为 nil（不生成洞察）
	logger   *zap.Logger
}

// NewAggregator 创建风险合成器；model 为 nil 时使用 RuleModel
func NewAggregator(
	table *norms.Table,
	model ClinicalModel,
	insightGen *insights.Generator,
	logger *zap.Logger,
) *Aggregator {
	if model == nil {
		model = NewRuleModel()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{
		norms:    table,
		scorer:   deviation.NewScorer(table),
		model:    model,
		insights: insightGen,
		logger:   logger,
	}
}

// demographicAdjustment 人口学调整结果
type demographicAdjustment struct {
	genderMultiplier float64
	ageMultiplier    float64
	totalMultiplier  float64
	adjusted         float64
	reasons          []string
}

// Score 对单个患者评分
// 只有结构非法的记录返回错误（ErrInvalidInput）；缺失体征不计分，查表失败走默认值
func (a *Aggregator) Score(record *models.PatientRecord) (*models.RiskProfile, error) {
	if record == nil {
		return nil, fmt.Errorf("%w: nil patient record", models.ErrInvalidInput)
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}

	gender := record.Gender.Normalize()

	// 1. 年龄分组 + 偏差分数
	ageCohort, err := cohort.ClassifyAge(record.AgeYears)
	if err != nil {
		return nil, fmt.Errorf("failed to classify patient %s: %w", record.ID, err)
	}
	vitals := record.LatestVitals()
	scores := a.scorer.ScoreSnapshot(vitals, ageCohort, gender)

	// 2. 基础概率
	features := ExtractFeatures(record, ageCohort, scores, a.norms)
	prediction, err := a.model.Predict(features)
	if err != nil {
		return nil, fmt.Errorf("clinical model prediction failed for patient %s: %w", record.ID, err)
	}
	base := clamp01(prediction.Probability)

	// 3-4. 人口学调整
	adj := a.adjust(base, ageCohort, gender)

	// 5. 最终概率
	baseContribution := ClinicalWeight * base
	demographicContribution := DemographicWeight * adj.adjusted
	final := clamp01(baseContribution + demographicContribution)

	profile := &models.RiskProfile{
		PatientID:       record.ID,
		AgeYears:        record.AgeYears,
		Gender:          gender,
		Cohort:          ageCohort,
		SubCohort:       cohort.ClassifyGeriatricSubCohort(record.AgeYears),
		Vitals:          vitals,
		DeviationScores: scores,

		BaseProbability: base,
		Confidence:      prediction.Confidence,

		GenderMultiplier:    adj.genderMultiplier,
		AgeMultiplier:       adj.ageMultiplier,
		TotalMultiplier:     adj.totalMultiplier,
		AdjustedProbability: adj.adjusted,
		Adjustments:         adj.reasons,

		FinalProbability:        final,
		BaseContribution:        baseContribution,
		DemographicContribution: demographicContribution,
		ClinicalWeight:          ClinicalWeight,
		DemographicWeight:       DemographicWeight,
		RiskLevel:               ClassifyRiskLevel(final),

		Screen: ScreenVitals(a.norms, vitals, ageCohort, gender),
	}

	if a.insights != nil {
		profile.Insights = a.insights.Generate(profile)
	}

	a.logger.Debug("Patient scored",
		zap.String("patient_id", record.ID),
		zap.String("age_group", ageCohort.String()),
		zap.String("gender", string(gender)),
		zap.Float64("base_probability", base),
		zap.Float64("adjusted_probability", adj.adjusted),
		zap.Float64("final_probability", final),
		zap.String("risk_level", profile.RiskLevel.String()),
	)

	return profile, nil
}

// adjust 应用人口学系数和特殊人群调整
func (a *Aggregator) adjust(base float64, ageCohort models.AgeCohort, gender models.Gender) demographicAdjustment {
	genderMultiplier := a.norms.GenderMultiplier(gender)
	ageMultiplier := a.norms.RiskMultiplier(ageCohort)
	total := genderMultiplier * ageMultiplier

	adjusted := clamp01(base * total)
	reasons := make([]string, 0, 2)

	// 顺序固定：先新生儿/婴儿，再老年
	if ageCohort == models.CohortNeonate || ageCohort == models.CohortInfant {
		reasons = append(reasons, ReasonImmatureImmune)
		adjusted = clamp01(adjusted * immatureImmuneFactor)
	}
	if ageCohort == models.CohortGeriatric {
		reasons = append(reasons, ReasonImmunosenescence)
		adjusted = clamp01(adjusted * immunosenescenceFactor)
	}

	switch gender {
	case models.GenderMale:
		reasons = append(reasons, ReasonMaleBaseline)
	case models.GenderFemale:
		reasons = append(reasons, ReasonFemalePattern)
	}

	return demographicAdjustment{
		genderMultiplier: genderMultiplier,
		ageMultiplier:    ageMultiplier,
		totalMultiplier:  total,
		adjusted:         adjusted,
		reasons:          reasons,
	}
}

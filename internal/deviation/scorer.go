// Package deviation 把原始体征值换算为相对年龄/性别正常范围的偏差分数
//
// 偏差分数是伪 z 分数：均值取正常范围中点，标准差以四分之一范围宽度近似。
// 这是基于参考范围的近似设计，并不是对真实人群分布的统计估计。
package deviation

import (
	"math"

	"wisefido-sepsis/internal/models"
)

// SignificanceThreshold |z| 超过该值视为有临床意义的偏差（全引擎统一使用）
const SignificanceThreshold = 2.0

// NormSource 正常范围来源（norms.Table 实现）
type NormSource interface {
	NormRange(cohort models.AgeCohort, gender models.Gender, vital models.Vital) models.NormRange
}

// Scorer 偏差评分器
type Scorer struct {
	norms NormSource
}

// NewScorer 创建偏差评分器
func NewScorer(norms NormSource) *Scorer {
	return &Scorer{norms: norms}
}

// Score 计算某体征值的偏差分数，总是返回数值，不会失败
func (s *Scorer) Score(value float64, cohort models.AgeCohort, gender models.Gender, vital models.Vital) float64 {
	return ScoreRange(value, s.norms.NormRange(cohort, gender, vital))
}

// ScoreRange 按给定范围计算偏差分数；范围退化（low == high）时返回 0
func ScoreRange(value float64, r models.NormRange) float64 {
	spread := r.Spread()
	if spread == 0 || math.IsNaN(spread) {
		return 0
	}
	return (value - r.Mean()) / spread
}

// ScoreSnapshot 对快照中存在（> 0）的体征逐项评分，缺失的体征不出现在结果中
func (s *Scorer) ScoreSnapshot(snapshot models.VitalSnapshot, cohort models.AgeCohort, gender models.Gender) map[models.Vital]float64 {
	scores := make(map[models.Vital]float64, len(models.ScoredVitals))
	for _, vital := range models.ScoredVitals {
		if !snapshot.Has(vital) {
			continue
		}
		scores[vital] = s.Score(snapshot.Value(vital), cohort, gender, vital)
	}
	return scores
}

// IsSignificant |z| > 2
func IsSignificant(z float64) bool {
	return math.Abs(z) > SignificanceThreshold
}

// IsElevated z > 2（单侧，仅升高）
func IsElevated(z float64) bool {
	return z > SignificanceThreshold
}

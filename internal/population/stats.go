package population

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// SignificanceLevel p 值显著性水平
const SignificanceLevel = 0.05

// welchResult Welch t 检验结果
type welchResult struct {
	statistic float64
	pValue    float64
}

// meanStd 均值和样本标准差（n-1）；n < 2 时标准差为 0
func meanStd(values []float64) (float64, float64) {
	switch len(values) {
	case 0:
		return 0, 0
	case 1:
		return values[0], 0
	}
	mean, variance := stat.MeanVariance(values, nil)
	return mean, math.Sqrt(variance)
}

// meanPopStd 均值和总体标准差（除以 n）；空样本返回 0, 0
func meanPopStd(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	mean, variance := stat.PopMeanVariance(values, nil)
	return mean, math.Sqrt(variance)
}

// welchTTest 不等方差双样本 t 检验（双侧）
// 调用方保证两个样本都有 n > 1
// 两样本方差都为 0 时：均值相同 → t=0, p=1；均值不同 → t=0, p=0
func welchTTest(a, b []float64) welchResult {
	meanA, varA := stat.MeanVariance(a, nil)
	meanB, varB := stat.MeanVariance(b, nil)
	na, nb := float64(len(a)), float64(len(b))

	seA := varA / na
	seB := varB / nb
	se := math.Sqrt(seA + seB)

	if se == 0 || math.IsNaN(se) {
		if meanA == meanB {
			return welchResult{statistic: 0, pValue: 1}
		}
		return welchResult{statistic: 0, pValue: 0}
	}

	t := (meanA - meanB) / se

	// Welch–Satterthwaite 自由度
	df := (seA + seB) * (seA + seB) / (seA*seA/(na-1) + seB*seB/(nb-1))

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	p := 2 * dist.CDF(-math.Abs(t))
	if p > 1 {
		p = 1
	}
	return welchResult{statistic: t, pValue: p}
}

// pearson 相关系数；任一变量方差为 0 时返回 0
func pearson(x, y []float64) float64 {
	if len(x) < 2 || len(x) != len(y) {
		return 0
	}
	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}

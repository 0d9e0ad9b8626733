package models

import (
	"fmt"
	"math"
)

// PatientRecord 输入的患者记录
type PatientRecord struct {
	ID       string          `json:"id"`
	AgeYears float64         `json:"age"`
	Gender   Gender          `json:"gender"`
	Vitals   []VitalSnapshot `json:"vitals"`
}

// LatestVitals 返回最近一次体征快照；没有快照时返回零值（所有体征视为缺失）
func (p *PatientRecord) LatestVitals() VitalSnapshot {
	if len(p.Vitals) == 0 {
		return VitalSnapshot{}
	}
	return p.Vitals[len(p.Vitals)-1]
}

// Validate 校验记录结构
func (p *PatientRecord) Validate() error {
	if math.IsNaN(p.AgeYears) || math.IsInf(p.AgeYears, 0) || p.AgeYears < 0 {
		return fmt.Errorf("%w: patient %s has invalid age %v", ErrInvalidInput, p.ID, p.AgeYears)
	}
	if !p.Gender.Normalize().Valid() {
		return fmt.Errorf("%w: patient %s has unrecognized gender %q", ErrInvalidInput, p.ID, string(p.Gender))
	}
	return nil
}

// NormRange 正常值闭区间 [Low, High]
type NormRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Mean 区间中点
func (r NormRange) Mean() float64 {
	return (r.Low + r.High) / 2
}

// Spread 以四分之一区间宽度近似标准差
func (r NormRange) Spread() float64 {
	return (r.High - r.Low) / 4
}

// Valid low < high 且均为有限值
func (r NormRange) Valid() bool {
	if math.IsNaN(r.Low) || math.IsNaN(r.High) || math.IsInf(r.Low, 0) || math.IsInf(r.High, 0) {
		return false
	}
	return r.Low < r.High
}

// Contains 值是否落在区间内（含端点）
func (r NormRange) Contains(value float64) bool {
	return value >= r.Low && value <= r.High
}

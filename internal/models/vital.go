package models

import "time"

// Vital 生命体征名称
type Vital string

const (
	VitalHeartRate       Vital = "heart_rate"
	VitalRespiratoryRate Vital = "respiratory_rate"
	VitalSystolicBP      Vital = "systolic_bp"
	VitalDiastolicBP     Vital = "diastolic_bp"
	VitalTemperature     Vital = "temperature"
	VitalSpO2            Vital = "spo2"
)

// ScoredVitals 参与偏差评分的体征（舒张压不评分）
var ScoredVitals = []Vital{
	VitalHeartRate,
	VitalRespiratoryRate,
	VitalTemperature,
	VitalSystolicBP,
	VitalSpO2,
}

// ComparedVitals 人群分析中比较的体征
var ComparedVitals = []Vital{
	VitalHeartRate,
	VitalTemperature,
	VitalRespiratoryRate,
	VitalSystolicBP,
}

// Display 人类可读名称，如 "Heart Rate"
func (v Vital) Display() string {
	switch v {
	case VitalHeartRate:
		return "Heart Rate"
	case VitalRespiratoryRate:
		return "Respiratory Rate"
	case VitalSystolicBP:
		return "Systolic BP"
	case VitalDiastolicBP:
		return "Diastolic BP"
	case VitalTemperature:
		return "Temperature"
	case VitalSpO2:
		return "SpO2"
	default:
		return string(v)
	}
}

// VitalSnapshot 某一时刻的生命体征测量（0 表示缺失）
type VitalSnapshot struct {
	Timestamp       time.Time `json:"timestamp"`
	HeartRate       float64   `json:"heart_rate,omitempty"`       // bpm
	RespiratoryRate float64   `json:"respiratory_rate,omitempty"` // breaths/min
	SystolicBP      float64   `json:"systolic_bp,omitempty"`      // mmHg
	DiastolicBP     float64   `json:"diastolic_bp,omitempty"`     // mmHg
	Temperature     float64   `json:"temperature,omitempty"`      // °C
	SpO2            float64   `json:"spo2,omitempty"`             // %
}

// Value 返回指定体征的值，未知体征返回 0
func (s VitalSnapshot) Value(v Vital) float64 {
	switch v {
	case VitalHeartRate:
		return s.HeartRate
	case VitalRespiratoryRate:
		return s.RespiratoryRate
	case VitalSystolicBP:
		return s.SystolicBP
	case VitalDiastolicBP:
		return s.DiastolicBP
	case VitalTemperature:
		return s.Temperature
	case VitalSpO2:
		return s.SpO2
	default:
		return 0
	}
}

// Has 体征是否存在（> 0）
func (s VitalSnapshot) Has(v Vital) bool {
	return s.Value(v) > 0
}

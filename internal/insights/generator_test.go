package insights

import (
	"testing"

	"wisefido-sepsis/internal/models"
	"wisefido-sepsis/internal/norms"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestGenerator() *Generator {
	return NewGenerator(norms.NewTable(zap.NewNop()))
}

func TestGenerate_NilProfile(t *testing.T) {
	assert.Nil(t, newTestGenerator().Generate(nil))
}

func TestGenerate_GeriatricMaleFever(t *testing.T) {
	g := newTestGenerator()
	profile := &models.RiskProfile{
		Gender: models.GenderMale,
		Cohort: models.CohortGeriatric,
		Vitals: models.VitalSnapshot{Temperature: 39.0},
		DeviationScores: map[models.Vital]float64{
			models.VitalTemperature: 8.0,
		},
		TotalMultiplier: 2.07,
	}

	out := g.Generate(profile)

	assert.Contains(t, out, "Geriatric: Atypical presentation common - watch for delirium, falls, or functional decline")
	assert.Contains(t, out, "Male: Higher baseline mortality risk from sepsis")
	assert.Contains(t, out, "Temperature significantly elevated for GERIATRIC MALE")
	assert.Contains(t, out, "High demographic risk multiplier (2.1x) - increased vigilance needed")
	assert.Contains(t, out, "Geriatric patient: May present with atypical sepsis symptoms. Watch for delirium, falls, or functional decline as early signs.")
	assert.NotContains(t, out, "Female patient: May require adjusted medication dosing due to slower drug clearance. Monitor for side effects.")

	// 年龄提示在性别提示之前
	assert.Equal(t, "Geriatric: Atypical presentation common - watch for delirium, falls, or functional decline", out[0])
}

func TestGenerate_NeonateFemale(t *testing.T) {
	g := newTestGenerator()
	profile := &models.RiskProfile{
		Gender: models.GenderFemale,
		Cohort: models.CohortNeonate,
		Vitals: models.VitalSnapshot{HeartRate: 150, Temperature: 38.9},
		DeviationScores: map[models.Vital]float64{
			models.VitalHeartRate:   1.0,
			models.VitalTemperature: 7.6,
		},
		TotalMultiplier: 2.375,
	}

	out := g.Generate(profile)

	assert.Contains(t, out, "Neonate: Sepsis may present with temperature instability, feeding difficulties, or lethargy")
	assert.Contains(t, out, "Female: Consider pregnancy status and gynecological sources of infection")
	assert.Contains(t, out, "Neonate: High sepsis risk due to immature immune system. Lower threshold for antibiotic initiation recommended.")
	assert.Contains(t, out, "High fever in FEMALE may indicate robust immune response. Consider FEMALE-specific antipyretic thresholds.")
	assert.Contains(t, out, "Female patient: May require adjusted medication dosing due to slower drug clearance. Monitor for side effects.")
	// |z| = 1 不显著
	assert.NotContains(t, out, "Heart Rate significantly elevated for NEONATE FEMALE")
	// 心率 150 超过女性临界阈值 115
	assert.Contains(t, out, "Tachycardia exceeds FEMALE-specific critical threshold. Consider NEONATE-appropriate fluid management.")
}

func TestGenerate_ReducedDeviationAndTachypnea(t *testing.T) {
	g := newTestGenerator()
	profile := &models.RiskProfile{
		Gender: models.GenderUnknown,
		Cohort: models.CohortYoungAdult,
		Vitals: models.VitalSnapshot{RespiratoryRate: 30, HeartRate: 40},
		DeviationScores: map[models.Vital]float64{
			models.VitalHeartRate:       -4.0,
			models.VitalRespiratoryRate: 7.5,
		},
		TotalMultiplier: 1.0,
	}

	out := g.Generate(profile)

	assert.Equal(t, []string{
		"Heart Rate significantly reduced for YOUNG_ADULT UNKNOWN",
		"Respiratory Rate significantly elevated for YOUNG_ADULT UNKNOWN",
		"Tachypnea exceeds YOUNG_ADULT norm. Monitor for respiratory fatigue, especially in geriatric patients.",
	}, out)
}

func TestGenerate_Deterministic(t *testing.T) {
	g := newTestGenerator()
	profile := &models.RiskProfile{
		Gender:          models.GenderMale,
		Cohort:          models.CohortInfant,
		Vitals:          models.VitalSnapshot{HeartRate: 190, RespiratoryRate: 50},
		DeviationScores: map[models.Vital]float64{models.VitalHeartRate: 6.6, models.VitalRespiratoryRate: 2.0},
		TotalMultiplier: 2.3,
	}

	first := g.Generate(profile)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, g.Generate(profile))
	}
}

package risk

import (
	"testing"

	"wisefido-sepsis/internal/models"
	"wisefido-sepsis/internal/norms"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestScreenVitals(t *testing.T) {
	table := norms.NewTable(zap.NewNop())

	tests := []struct {
		name     string
		vitals   models.VitalSnapshot
		cohort   models.AgeCohort
		gender   models.Gender
		points   int
		adjusted float64
		level    string
		factors  []string
	}{
		{
			name:     "normal adult",
			vitals:   models.VitalSnapshot{HeartRate: 80, RespiratoryRate: 16, Temperature: 37},
			cohort:   models.CohortYoungAdult,
			gender:   models.GenderMale,
			points:   0,
			adjusted: 0,
			level:    "LOW",
			factors:  []string{},
		},
		{
			name:     "elevated but below critical",
			vitals:   models.VitalSnapshot{HeartRate: 105, RespiratoryRate: 21},
			cohort:   models.CohortYoungAdult,
			gender:   models.GenderMale,
			points:   2,
			adjusted: 2 * 1.15,
			level:    "MEDIUM",
			factors: []string{
				"Heart rate elevated for Young Adult (18-40 years)",
				"Respiratory rate elevated for Young Adult (18-40 years)",
			},
		},
		{
			name:     "critical geriatric female with fever",
			vitals:   models.VitalSnapshot{HeartRate: 120, RespiratoryRate: 26, Temperature: 38.3},
			cohort:   models.CohortGeriatric,
			gender:   models.GenderFemale,
			points:   8,
			adjusted: 8 * 0.95 * 1.8,
			level:    "CRITICAL",
			factors: []string{
				"Heart rate critically high for Geriatric (>65 years)",
				"Respiratory rate critically high for Geriatric (>65 years)",
				"Fever for FEMALE",
			},
		},
		{
			// 筛查表没有学龄前条目，心率上限取默认 100
			name:     "preschool uses default screening max",
			vitals:   models.VitalSnapshot{HeartRate: 105},
			cohort:   models.CohortPreschool,
			gender:   models.GenderMale,
			points:   1,
			adjusted: 1 * 1.15,
			level:    "LOW",
			factors:  []string{"Heart rate elevated for Preschool (3-5 years)"},
		},
		{
			name:     "school age respiratory rate uses default screening max",
			vitals:   models.VitalSnapshot{RespiratoryRate: 22},
			cohort:   models.CohortSchoolAge,
			gender:   models.GenderFemale,
			points:   1,
			adjusted: 1 * 0.95,
			level:    "LOW",
			factors:  []string{"Respiratory rate elevated for School Age (5-12 years)"},
		},
		{
			name:     "toddler heart rate within screening range",
			vitals:   models.VitalSnapshot{HeartRate: 108},
			cohort:   models.CohortToddler,
			gender:   models.GenderMale,
			points:   0,
			adjusted: 0,
			level:    "LOW",
			factors:  []string{},
		},
		{
			name:     "female fever threshold is higher",
			vitals:   models.VitalSnapshot{Temperature: 38.1},
			cohort:   models.CohortYoungAdult,
			gender:   models.GenderFemale,
			points:   0,
			adjusted: 0,
			level:    "LOW",
			factors:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := ScreenVitals(table, tt.vitals, tt.cohort, tt.gender)
			assert.Equal(t, tt.points, screen.Points)
			assert.InDelta(t, tt.adjusted, screen.AdjustedScore, 1e-9)
			assert.Equal(t, tt.level, screen.Level)
			assert.Equal(t, tt.factors, screen.Factors)
		})
	}
}

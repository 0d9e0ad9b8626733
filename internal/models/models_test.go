package models

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGender(t *testing.T) {
	tests := []struct {
		input    string
		expected Gender
	}{
		{"M", GenderMale},
		{"male", GenderMale},
		{" F ", GenderFemale},
		{"Female", GenderFemale},
		{"o", GenderOther},
		{"OTHER", GenderOther},
		{"U", GenderUnknown},
		{"", GenderUnknown},
	}
	for _, tt := range tests {
		g, err := ParseGender(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, g, tt.input)
	}

	_, err := ParseGender("X")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestGender_UnmarshalJSON(t *testing.T) {
	var g Gender
	require.NoError(t, json.Unmarshal([]byte(`"f"`), &g))
	assert.Equal(t, GenderFemale, g)

	assert.Error(t, json.Unmarshal([]byte(`"nope"`), &g))
	assert.Error(t, json.Unmarshal([]byte(`1`), &g))
}

func TestAgeCohort_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal([]AgeCohort{CohortNeonate, CohortSchoolAge, CohortGeriatric})
	require.NoError(t, err)
	assert.JSONEq(t, `["NEONATE","SCHOOL_AGE","GERIATRIC"]`, string(data))

	var cohorts []AgeCohort
	require.NoError(t, json.Unmarshal(data, &cohorts))
	assert.Equal(t, []AgeCohort{CohortNeonate, CohortSchoolAge, CohortGeriatric}, cohorts)

	_, err = ParseAgeCohort("ELDERLY")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestAllCohorts_Ordered(t *testing.T) {
	cohorts := AllCohorts()
	require.Len(t, cohorts, 9)
	for i, c := range cohorts {
		assert.Equal(t, i, c.Ordinal())
	}
	assert.Equal(t, "AgeCohort(42)", AgeCohort(42).String())
}

func TestPatientRecord_Validate(t *testing.T) {
	assert.NoError(t, (&PatientRecord{ID: "a", AgeYears: 0}).Validate())
	assert.NoError(t, (&PatientRecord{ID: "b", AgeYears: 40, Gender: GenderOther}).Validate())

	for _, age := range []float64{-0.1, math.NaN(), math.Inf(1)} {
		err := (&PatientRecord{ID: "c", AgeYears: age}).Validate()
		assert.True(t, errors.Is(err, ErrInvalidInput), "age=%v", age)
	}
	err := (&PatientRecord{ID: "d", AgeYears: 40, Gender: "X"}).Validate()
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestNormRange(t *testing.T) {
	r := NormRange{Low: 60, High: 100}
	assert.Equal(t, 80.0, r.Mean())
	assert.Equal(t, 10.0, r.Spread())
	assert.True(t, r.Valid())
	assert.True(t, r.Contains(100))
	assert.False(t, r.Contains(100.1))

	assert.False(t, NormRange{Low: 37, High: 37}.Valid())
}

func TestRiskLevel_JSON(t *testing.T) {
	data, err := json.Marshal(RiskHigh)
	require.NoError(t, err)
	assert.Equal(t, `"HIGH"`, string(data))

	var l RiskLevel
	require.NoError(t, json.Unmarshal([]byte(`"VERY_LOW"`), &l))
	assert.Equal(t, RiskVeryLow, l)
	assert.Error(t, json.Unmarshal([]byte(`"EXTREME"`), &l))
}

func TestVitalSnapshot_Has(t *testing.T) {
	s := VitalSnapshot{HeartRate: 80}
	assert.True(t, s.Has(VitalHeartRate))
	assert.False(t, s.Has(VitalTemperature))
	assert.Equal(t, 0.0, s.Value(Vital("glucose")))
}

package cohort

import (
	"errors"
	"math"
	"testing"

	"wisefido-sepsis/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyAge_Ladder(t *testing.T) {
	cases := []struct {
		age  float64
		want models.AgeCohort
	}{
		{0, models.CohortNeonate},
		{0.05, models.CohortNeonate},
		{0.5, models.CohortInfant},
		{2, models.CohortToddler},
		{4, models.CohortPreschool},
		{8, models.CohortSchoolAge},
		{15, models.CohortAdolescent},
		{30, models.CohortYoungAdult},
		{50, models.CohortMiddleAdult},
		{90, models.CohortGeriatric},
	}

	for _, tc := range cases {
		got, err := ClassifyAge(tc.age)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "age %v", tc.age)
	}
}

func TestClassifyAge_Boundaries(t *testing.T) {
	// 边界值进入下一组
	got, err := ClassifyAge(0.0766)
	require.NoError(t, err)
	assert.Equal(t, models.CohortNeonate, got)

	got, err = ClassifyAge(0.0767)
	require.NoError(t, err)
	assert.Equal(t, models.CohortInfant, got)

	got, err = ClassifyAge(1.0)
	require.NoError(t, err)
	assert.Equal(t, models.CohortToddler, got)

	got, err = ClassifyAge(64.999)
	require.NoError(t, err)
	assert.Equal(t, models.CohortMiddleAdult, got)

	got, err = ClassifyAge(65.0)
	require.NoError(t, err)
	assert.Equal(t, models.CohortGeriatric, got)
}

func TestClassifyAge_InvalidInput(t *testing.T) {
	for _, age := range []float64{-0.1, math.NaN(), math.Inf(1)} {
		_, err := ClassifyAge(age)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, models.ErrInvalidInput))
	}
}

func TestClassifyAge_DaysOld(t *testing.T) {
	got, err := ClassifyAge(DaysToYears(10))
	require.NoError(t, err)
	assert.Equal(t, models.CohortNeonate, got)
	assert.InDelta(t, 0.0274, DaysToYears(10), 0.0001)
}

func TestClassifyGeriatricSubCohort(t *testing.T) {
	assert.Nil(t, ClassifyGeriatricSubCohort(64.9))
	assert.Nil(t, ClassifyGeriatricSubCohort(10))

	sub := ClassifyGeriatricSubCohort(65)
	require.NotNil(t, sub)
	assert.Equal(t, models.SubCohortYoungGeriatric, *sub)

	sub = ClassifyGeriatricSubCohort(75)
	require.NotNil(t, sub)
	assert.Equal(t, models.SubCohortMidGeriatric, *sub)

	sub = ClassifyGeriatricSubCohort(84.9)
	require.NotNil(t, sub)
	assert.Equal(t, models.SubCohortMidGeriatric, *sub)

	sub = ClassifyGeriatricSubCohort(85)
	require.NotNil(t, sub)
	assert.Equal(t, models.SubCohortOldGeriatric, *sub)
}

package costs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_SingleRole(t *testing.T) {
	roles := []RoleInput{
		{RoleName: "Backend Developer", PersonCount: 2, HourlyRate: 50, HoursPerWeek: 40, Weeks: 4},
	}

	breakdown, err := Calculate(roles, 0, -1)
	require.NoError(t, err)

	assert.Equal(t, 16000.0, breakdown.BaseCost)
	assert.Equal(t, []float64{16000}, breakdown.RoleCosts)
}

func TestCalculate_WithAdditionalCostsAndBuffer(t *testing.T) {
	roles := []RoleInput{
		{RoleName: "Backend Developer", PersonCount: 2, HourlyRate: 50, HoursPerWeek: 40, Weeks: 4},
	}

	breakdown, err := Calculate(roles, 1000, 15)
	require.NoError(t, err)

	assert.Equal(t, 16000.0, breakdown.BaseCost)
	assert.Equal(t, 2550.0, breakdown.RiskBufferAmount)
	assert.Equal(t, 19550.0, breakdown.TotalCost)
}

func TestCalculate_TotalInvariant(t *testing.T) {
	roles := []RoleInput{
		{RoleName: "Designer", PersonCount: 1, HourlyRate: 35, HoursPerWeek: 20, Weeks: 6},
		{RoleName: "QA Engineer", PersonCount: 3, HourlyRate: 42.5, HoursPerWeek: 37.5, Weeks: 11},
	}

	breakdown, err := Calculate(roles, 750, 12.5)
	require.NoError(t, err)

	subtotal := breakdown.BaseCost + breakdown.AdditionalCosts
	assert.Equal(t, subtotal*12.5/100, breakdown.RiskBufferAmount)
	assert.Equal(t, subtotal+breakdown.RiskBufferAmount, breakdown.TotalCost)
}

func TestCalculate_DefaultRiskBuffer(t *testing.T) {
	roles := []RoleInput{
		{RoleName: "Developer", PersonCount: 1, HourlyRate: 100, HoursPerWeek: 40, Weeks: 10},
	}

	breakdown, err := Calculate(roles, 0, -1)
	require.NoError(t, err)

	assert.Equal(t, DefaultRiskBufferPercentage, breakdown.RiskBufferPercentage)
	assert.Equal(t, 40000.0*0.15, breakdown.RiskBufferAmount)
}

func TestCalculate_ZeroBufferIsRespected(t *testing.T) {
	roles := []RoleInput{
		{RoleName: "Developer", PersonCount: 1, HourlyRate: 100, HoursPerWeek: 40, Weeks: 10},
	}

	breakdown, err := Calculate(roles, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 0.0, breakdown.RiskBufferAmount)
	assert.Equal(t, breakdown.BaseCost, breakdown.TotalCost)
}

func TestCalculate_NoValidRoles(t *testing.T) {
	_, err := Calculate(nil, 1000, 15)
	assert.ErrorIs(t, err, ErrNoValidRoles)

	_, err = Calculate([]RoleInput{
		{RoleName: "Missing rate", PersonCount: 2, HoursPerWeek: 40, Weeks: 4},
		{RoleName: "Missing headcount", HourlyRate: 50, HoursPerWeek: 40, Weeks: 4},
	}, 1000, 15)
	assert.ErrorIs(t, err, ErrNoValidRoles)
}

func TestCalculate_DropsInvalidRoles(t *testing.T) {
	roles := []RoleInput{
		{RoleName: "Valid", PersonCount: 1, HourlyRate: 50, HoursPerWeek: 40, Weeks: 4},
		{RoleName: "No weeks", PersonCount: 1, HourlyRate: 50, HoursPerWeek: 40},
	}

	breakdown, err := Calculate(roles, 0, 0)
	require.NoError(t, err)

	assert.Len(t, breakdown.Roles, 1)
	assert.Equal(t, "Valid", breakdown.Roles[0].RoleName)
	assert.Equal(t, 8000.0, breakdown.BaseCost)
}

func TestFilter(t *testing.T) {
	roles := []RoleInput{
		{RoleName: "a", PersonCount: 1, HourlyRate: 1, HoursPerWeek: 1, Weeks: 1},
		{RoleName: "b", PersonCount: 0, HourlyRate: 1, HoursPerWeek: 1, Weeks: 1},
		{RoleName: "c", PersonCount: 1, HourlyRate: 1, HoursPerWeek: 1, Weeks: 0},
	}

	valid := Filter(roles)
	require.Len(t, valid, 1)
	assert.Equal(t, "a", valid[0].RoleName)
}

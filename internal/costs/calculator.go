package costs

import "errors"

// DefaultRiskBufferPercentage is applied when a submission omits the buffer.
const DefaultRiskBufferPercentage = 15.0

// ErrNoValidRoles is returned when no role line-item survives filtering.
var ErrNoValidRoles = errors.New("at least one valid role is required")

// RoleInput is one team-role line-item as submitted by the client.
type RoleInput struct {
	RoleName     string  `json:"role_name"`
	PersonCount  int     `json:"person_count"`
	HourlyRate   float64 `json:"hourly_rate"`
	HoursPerWeek float64 `json:"hours_per_week"`
	Weeks        float64 `json:"weeks"`
}

// Valid reports whether every numeric field is present and positive.
func (r RoleInput) Valid() bool {
	return r.PersonCount > 0 && r.HourlyRate > 0 && r.HoursPerWeek > 0 && r.Weeks > 0
}

// Cost returns hourly_rate * hours_per_week * weeks * person_count.
func (r RoleInput) Cost() float64 {
	return r.HourlyRate * r.HoursPerWeek * r.Weeks * float64(r.PersonCount)
}

// Breakdown is the derived cost structure for a project submission.
type Breakdown struct {
	BaseCost             float64
	AdditionalCosts      float64
	RiskBufferPercentage float64
	RiskBufferAmount     float64
	TotalCost            float64
	Roles                []RoleInput
	RoleCosts            []float64
}

// Filter drops invalid role line-items. Partial garbage in a submission is
// not fatal as long as at least one role survives.
func Filter(roles []RoleInput) []RoleInput {
	valid := make([]RoleInput, 0, len(roles))

	for _, role := range roles {
		if role.Valid() {
			valid = append(valid, role)
		}
	}

	return valid
}

// Calculate derives the full cost breakdown from role line-items.
// Pass a negative riskBufferPercentage to use the default.
func Calculate(roles []RoleInput, additionalCosts float64, riskBufferPercentage float64) (Breakdown, error) {
	valid := Filter(roles)

	if len(valid) == 0 {
		return Breakdown{}, ErrNoValidRoles
	}

	if additionalCosts < 0 {
		additionalCosts = 0
	}

	if riskBufferPercentage < 0 {
		riskBufferPercentage = DefaultRiskBufferPercentage
	}

	var baseCost float64
	roleCosts := make([]float64, len(valid))

	for i, role := range valid {
		roleCosts[i] = role.Cost()
		baseCost += roleCosts[i]
	}

	subtotal := baseCost + additionalCosts
	riskBufferAmount := subtotal * riskBufferPercentage / 100

	return Breakdown{
		BaseCost:             baseCost,
		AdditionalCosts:      additionalCosts,
		RiskBufferPercentage: riskBufferPercentage,
		RiskBufferAmount:     riskBufferAmount,
		TotalCost:            subtotal + riskBufferAmount,
		Roles:                valid,
		RoleCosts:            roleCosts,
	}, nil
}

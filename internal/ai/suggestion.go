package ai

// TechAddition recommends adding a technology to the stack.
type TechAddition struct {
	Technology string `json:"technology"`
	Reason     string `json:"reason"`
	Impact     string `json:"impact"`
}

// TechAlternative recommends replacing one technology with another.
type TechAlternative struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Reason     string `json:"reason"`
	CostImpact string `json:"cost_impact"`
}

// TechRecommendations groups suggested additions and alternatives.
type TechRecommendations struct {
	SuggestedAdditions []TechAddition    `json:"suggested_additions"`
	Alternatives       []TechAlternative `json:"alternatives"`
}

// Suggestion is the normalized AI optimization result. TeamStructure stays
// serialized because its shape is model-defined and stored as text.
type Suggestion struct {
	Suggestions         string              `json:"suggestions"`
	TechRecommendations TechRecommendations `json:"technology_recommendations"`
	CostReduction       float64             `json:"cost_reduction"`
	TeamStructure       string              `json:"updated_team_structure"`
	ConfidenceScore     float64             `json:"confidence_score"`
}

func emptyTechRecommendations() TechRecommendations {
	return TechRecommendations{
		SuggestedAdditions: []TechAddition{},
		Alternatives:       []TechAlternative{},
	}
}

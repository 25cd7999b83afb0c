package ai

import (
	"bytes"
	"encoding/json"
	"log"
	"strings"
)

const placeholderSuggestion = "AI analysis completed. Please review the recommendations below."

const emptyTeamStructureJSON = `{"recommendations":[],"alternative_combinations":[]}`

// rawSuggestion defers field decoding so each field can be repaired
// independently when the model returns the wrong type.
type rawSuggestion struct {
	Suggestions         json.RawMessage `json:"suggestions"`
	TechRecommendations json.RawMessage `json:"technology_recommendations"`
	CostReduction       json.RawMessage `json:"cost_reduction"`
	TeamStructure       json.RawMessage `json:"updated_team_structure"`
	ConfidenceScore     json.RawMessage `json:"confidence_score"`
}

// ParseSuggestion turns a raw model reply into a normalized Suggestion.
// It strips markdown fences, falls back to extracting the outermost {...}
// substring, and finally substitutes a default object carrying the raw text.
// Never fails: a reply we cannot parse still yields a usable suggestion.
func ParseSuggestion(raw string, totalCost float64) Suggestion {
	var parsed rawSuggestion

	cleaned := stripFences(raw)

	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		extracted := extractObject(raw)

		if extracted == "" {
			return fallbackSuggestion(raw, totalCost)
		}

		if err := json.Unmarshal([]byte(extracted), &parsed); err != nil {
			log.Printf("Failed to parse extracted AI response JSON: %v", err)
			return fallbackSuggestion(raw, totalCost)
		}
	}

	return normalize(parsed, totalCost)
}

func stripFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

// extractObject returns the first balanced-looking {...} substring, from the
// first opening brace to the last closing brace.
func extractObject(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")

	if start == -1 || end == -1 || end < start {
		return ""
	}

	return raw[start : end+1]
}

// fallbackSuggestion carries the raw reply text when no JSON could be
// recovered: 15% of total cost as the assumed reduction, confidence 0.75.
func fallbackSuggestion(raw string, totalCost float64) Suggestion {
	suggestions := strings.TrimSpace(raw)
	if suggestions == "" {
		suggestions = placeholderSuggestion
	}

	return Suggestion{
		Suggestions:         suggestions,
		TechRecommendations: emptyTechRecommendations(),
		CostReduction:       totalCost * 0.15,
		TeamStructure:       emptyTeamStructureJSON,
		ConfidenceScore:     0.75,
	}
}

// isNull reports a field the model omitted or filled with JSON null.
// Both count as missing for defaulting purposes.
func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// normalize patches missing or mistyped fields with defaults.
func normalize(parsed rawSuggestion, totalCost float64) Suggestion {
	var out Suggestion

	var suggestions string
	if err := json.Unmarshal(parsed.Suggestions, &suggestions); err != nil || suggestions == "" {
		suggestions = placeholderSuggestion
	}
	out.Suggestions = suggestions

	if err := json.Unmarshal(parsed.TechRecommendations, &out.TechRecommendations); err != nil {
		out.TechRecommendations = emptyTechRecommendations()
	}
	if out.TechRecommendations.SuggestedAdditions == nil {
		out.TechRecommendations.SuggestedAdditions = []TechAddition{}
	}
	if out.TechRecommendations.Alternatives == nil {
		out.TechRecommendations.Alternatives = []TechAlternative{}
	}

	costReduction := totalCost * 0.1
	if !isNull(parsed.CostReduction) {
		if err := json.Unmarshal(parsed.CostReduction, &costReduction); err != nil {
			costReduction = totalCost * 0.1
		}
	}
	out.CostReduction = costReduction

	out.TeamStructure = normalizeTeamStructure(parsed.TeamStructure)

	confidence := 0.8
	if !isNull(parsed.ConfidenceScore) {
		if err := json.Unmarshal(parsed.ConfidenceScore, &confidence); err != nil {
			confidence = 0.8
		}
	}
	if confidence > 1 {
		// Assume a 0-100 scale, but keep it visible: a score like 150 may
		// be an upstream bug rather than a scale convention.
		log.Printf("Rescaling out-of-range confidence score %v to %v", confidence, confidence/100)
		confidence = confidence / 100
	}
	out.ConfidenceScore = confidence

	return out
}

// normalizeTeamStructure serializes the team structure to text. The model may
// return it as an object or as an already-serialized string.
func normalizeTeamStructure(raw json.RawMessage) string {
	if isNull(raw) {
		return emptyTeamStructureJSON
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if strings.TrimSpace(asString) == "" {
			return emptyTeamStructureJSON
		}
		return asString
	}

	return string(raw)
}

package ai

import (
	"fmt"
	"sort"
	"strings"

	"github.com/costlens-dev/costlens/internal/models"
)

// BuildPrompt formats project state into the consultant prompt. Categories
// are sorted so the same project always produces the same prompt.
func BuildPrompt(project models.Project, roles []models.Role, techStack map[string][]string) string {
	var totalPeople int
	roleLines := make([]string, 0, len(roles))

	for _, role := range roles {
		totalPeople += role.PersonCount
		roleLines = append(roleLines, fmt.Sprintf(
			"%s: %d people, $%.2f/hour, %.0f hours/week for %.0f weeks (Total: $%.2f)",
			role.RoleName, role.PersonCount, role.HourlyRate, role.HoursPerWeek, role.Weeks, role.Cost,
		))
	}
	rolesSummary := strings.Join(roleLines, "; ")

	categories := make([]string, 0, len(techStack))
	for category, technologies := range techStack {
		if len(technologies) > 0 {
			categories = append(categories, category)
		}
	}
	sort.Strings(categories)

	techLines := make([]string, 0, len(categories))
	for _, category := range categories {
		techLines = append(techLines, fmt.Sprintf("%s: %s", category, strings.Join(techStack[category], ", ")))
	}
	techSummary := strings.Join(techLines, "; ")
	if techSummary == "" {
		techSummary = "Not specified"
	}

	description := project.Description
	if description == "" {
		description = "Not provided"
	}

	var b strings.Builder

	fmt.Fprintf(&b, `You are an expert project management and software development consultant. Analyze the following project and provide detailed optimization suggestions.

PROJECT DETAILS:
- Name: %s
- Description: %s
- Duration: %d months
- Complexity: %s
- Total Cost: $%.2f
- Base Team Cost: $%.2f
- Additional Costs: $%.2f
- Risk Buffer: $%.2f (%.1f%%)

CURRENT TEAM STRUCTURE (%d people total):
%s

TECHNOLOGY STACK:
%s

`,
		project.Name, description, project.Duration, project.Complexity,
		project.TotalCost, project.BaseCost, project.AdditionalCosts,
		project.RiskBufferAmount, project.RiskBufferPercentage,
		totalPeople, rolesSummary, techSummary,
	)

	b.WriteString(`Please provide a comprehensive analysis and suggestions in the following JSON format. Make sure to return ONLY valid JSON without any markdown formatting:

{
  "suggestions": "Detailed text analysis with specific recommendations for team optimization, cost reduction, and project efficiency improvements. Include numbered points and specific percentages where possible.",
  "technology_recommendations": {
    "suggested_additions": [
      {
        "technology": "Technology Name",
        "reason": "Why this technology would help",
        "impact": "High/Medium/Low"
      }
    ],
    "alternatives": [
      {
        "from": "Current Technology",
        "to": "Recommended Alternative",
        "reason": "Why this change would be beneficial",
        "cost_impact": "Percentage impact on cost (e.g., '-15%')"
      }
    ]
  },
  "cost_reduction": 0,
  "updated_team_structure": {
    "recommendations": [
      {
        "role": "Role Name",
        "person_count": 0,
        "hours": 0,
        "weeks": 0,
        "reasoning": "Why this role configuration is recommended",
        "technologies": ["Tech1", "Tech2"]
      }
    ],
    "alternative_combinations": [
      {
        "name": "Option Name",
        "total_people": 0,
        "cost_reduction": "Percentage",
        "timeline_impact": "Impact on timeline",
        "description": "Description of this option"
      }
    ]
  },
  "confidence_score": 0.85
}

Focus on:
1. Team size optimization based on project complexity and duration
2. Technology stack improvements for efficiency
3. Cost reduction strategies without compromising quality
4. Timeline optimization
5. Risk mitigation
6. Specific, actionable recommendations with quantified benefits

Provide the cost_reduction as a dollar amount that could realistically be saved based on your recommendations.

IMPORTANT: Return ONLY the JSON object, no additional text or markdown formatting.`)

	return b.String()
}

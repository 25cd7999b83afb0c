package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/costlens-dev/costlens/internal/ai"
	"github.com/costlens-dev/costlens/internal/models"
	"github.com/costlens-dev/costlens/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AIHandler struct {
	DB      *gorm.DB
	Service *ai.Service
}

func NewAIHandler(database *gorm.DB, service *ai.Service) *AIHandler {
	return &AIHandler{DB: database, Service: service}
}

type SuggestionResponse struct {
	ID                        uint                   `json:"id"`
	ProjectID                 uint                   `json:"project_id"`
	Suggestions               string                 `json:"suggestions"`
	TechnologyRecommendations ai.TechRecommendations `json:"technology_recommendations"`
	CostReduction             float64                `json:"cost_reduction"`
	UpdatedTeamStructure      string                 `json:"updated_team_structure"`
	ConfidenceScore           float64                `json:"confidence_score"`
	CreatedAt                 time.Time              `json:"created_at"`
}

func (h *AIHandler) Suggest(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if h.Service == nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Google AI API configuration error. Please check your API key."})
		return
	}

	projectID, err := utils.GetProjectID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var project models.Project

	if err := h.DB.Where("id = ? AND user_id = ?", projectID, userID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}

	var roles []models.Role

	if err := h.DB.Where("project_id = ?", project.ID).Find(&roles).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve roles"})
		return
	}

	techStack := decodeTechStack(project.TechStack, project.ID)

	suggestion, err := h.Service.Suggest(ctx.Request.Context(), project, roles, techStack)

	if err != nil {
		log.Printf("AI suggestions error for project %d: %v", project.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": suggestionErrorMessage(err)})
		return
	}

	techRecsJSON, err := json.Marshal(suggestion.TechRecommendations)

	if err != nil {
		log.Printf("Failed to serialize technology recommendations: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	row := models.AISuggestion{
		ProjectID:       project.ID,
		Suggestions:     suggestion.Suggestions,
		TechRecs:        datatypes.JSON(techRecsJSON),
		CostReduction:   suggestion.CostReduction,
		TeamStructure:   suggestion.TeamStructure,
		ConfidenceScore: suggestion.ConfidenceScore,
	}

	if err := h.DB.Create(&row).Error; err != nil {
		log.Printf("Failed to save AI suggestion: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, toSuggestionResponse(row))
}

// suggestionErrorMessage maps AI error classes to user-facing guidance.
func suggestionErrorMessage(err error) string {
	switch {
	case errors.Is(err, ai.ErrNotConfigured), errors.Is(err, ai.ErrInvalidAPIKey):
		return "Google AI API configuration error. Please check your API key."
	case errors.Is(err, ai.ErrPermissionDenied):
		return "Google AI API access denied. Please check your API key permissions."
	case errors.Is(err, ai.ErrQuotaExceeded):
		return "Google AI API quota exceeded. Please try again later."
	case errors.Is(err, ai.ErrRateLimited):
		return "Google AI API rate limit exceeded. Please wait a moment and try again."
	default:
		return "Failed to generate AI suggestions. Please try again."
	}
}

func toSuggestionResponse(row models.AISuggestion) SuggestionResponse {
	return SuggestionResponse{
		ID:                        row.ID,
		ProjectID:                 row.ProjectID,
		Suggestions:               row.Suggestions,
		TechnologyRecommendations: decodeTechRecs(row.TechRecs, row.ID),
		CostReduction:             row.CostReduction,
		UpdatedTeamStructure:      row.TeamStructure,
		ConfidenceScore:           row.ConfidenceScore,
		CreatedAt:                 row.CreatedAt,
	}
}

// decodeTechRecs mirrors decodeTechStack: malformed stored JSON is logged
// and read as an empty recommendation set.
func decodeTechRecs(raw datatypes.JSON, suggestionID uint) ai.TechRecommendations {
	recs := ai.TechRecommendations{
		SuggestedAdditions: []ai.TechAddition{},
		Alternatives:       []ai.TechAlternative{},
	}

	if len(raw) == 0 {
		return recs
	}

	if err := json.Unmarshal(raw, &recs); err != nil {
		log.Printf("Malformed technology recommendations stored for suggestion %d: %v", suggestionID, err)
		return ai.TechRecommendations{
			SuggestedAdditions: []ai.TechAddition{},
			Alternatives:       []ai.TechAlternative{},
		}
	}

	if recs.SuggestedAdditions == nil {
		recs.SuggestedAdditions = []ai.TechAddition{}
	}
	if recs.Alternatives == nil {
		recs.Alternatives = []ai.TechAlternative{}
	}

	return recs
}

package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/costlens-dev/costlens/internal/costs"
	"github.com/costlens-dev/costlens/internal/models"
	"github.com/costlens-dev/costlens/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProjectHandler struct {
	DB *gorm.DB
}

func NewProjectHandler(database *gorm.DB) *ProjectHandler {
	return &ProjectHandler{DB: database}
}

type CreateProjectRequest struct {
	Name                 string              `json:"name" binding:"required"`
	Description          string              `json:"description"`
	Duration             int                 `json:"duration"`
	Complexity           string              `json:"complexity"`
	Roles                []costs.RoleInput   `json:"roles"`
	AdditionalCosts      float64             `json:"additional_costs"`
	RiskBufferPercentage *float64            `json:"risk_buffer_percentage"`
	TechnologyStack      map[string][]string `json:"technology_stack"`
}

type ProjectResponse struct {
	ID                   uint                `json:"id"`
	Name                 string              `json:"name"`
	Description          string              `json:"description"`
	Duration             int                 `json:"duration"`
	Complexity           string              `json:"complexity"`
	TechnologyStack      map[string][]string `json:"technology_stack"`
	BaseCost             float64             `json:"base_cost"`
	AdditionalCosts      float64             `json:"additional_costs"`
	RiskBufferPercentage float64             `json:"risk_buffer_percentage"`
	RiskBufferAmount     float64             `json:"risk_buffer_amount"`
	TotalCost            float64             `json:"total_cost"`
	CreatedAt            time.Time           `json:"created_at"`
}

type RoleResponse struct {
	ID           uint    `json:"id"`
	RoleName     string  `json:"role_name"`
	PersonCount  int     `json:"person_count"`
	HourlyRate   float64 `json:"hourly_rate"`
	HoursPerWeek float64 `json:"hours_per_week"`
	Weeks        float64 `json:"weeks"`
	Cost         float64 `json:"cost"`
}

func (h *ProjectHandler) Create(ctx *gin.Context) {
	var body CreateProjectRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	riskBuffer := -1.0
	if body.RiskBufferPercentage != nil {
		riskBuffer = *body.RiskBufferPercentage
	}

	breakdown, err := costs.Calculate(body.Roles, body.AdditionalCosts, riskBuffer)

	if err != nil {
		if errors.Is(err, costs.ErrNoValidRoles) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "At least one valid role is required"})
			return
		}
		log.Printf("Failed to calculate project costs: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	techStackJSON, err := json.Marshal(body.TechnologyStack)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid technology stack format"})
		return
	}

	project := models.Project{
		UserID:               userID,
		Name:                 body.Name,
		Description:          body.Description,
		Duration:             body.Duration,
		Complexity:           body.Complexity,
		TechStack:            datatypes.JSON(techStackJSON),
		BaseCost:             breakdown.BaseCost,
		AdditionalCosts:      breakdown.AdditionalCosts,
		RiskBufferPercentage: breakdown.RiskBufferPercentage,
		RiskBufferAmount:     breakdown.RiskBufferAmount,
		TotalCost:            breakdown.TotalCost,
	}

	// Project and its roles land together or not at all.
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}

		for i, role := range breakdown.Roles {
			row := models.Role{
				ProjectID:    project.ID,
				RoleName:     role.RoleName,
				PersonCount:  role.PersonCount,
				HourlyRate:   role.HourlyRate,
				HoursPerWeek: role.HoursPerWeek,
				Weeks:        role.Weeks,
				Cost:         breakdown.RoleCosts[i],
			}

			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		log.Printf("Failed to create project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"id":      project.ID,
		"message": "Project created successfully",
	})
}

func (h *ProjectHandler) List(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var projects []models.Project

	if err := h.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&projects).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	response := make([]ProjectResponse, 0, len(projects))

	for _, project := range projects {
		response = append(response, toProjectResponse(project))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *ProjectHandler) Get(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var project models.Project
	projectID := ctx.Param("project_id")

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

	roleResponses := make([]RoleResponse, 0, len(roles))

	for _, role := range roles {
		roleResponses = append(roleResponses, RoleResponse{
			ID:           role.ID,
			RoleName:     role.RoleName,
			PersonCount:  role.PersonCount,
			HourlyRate:   role.HourlyRate,
			HoursPerWeek: role.HoursPerWeek,
			Weeks:        role.Weeks,
			Cost:         role.Cost,
		})
	}

	var suggestion models.AISuggestion
	var suggestionResponse *SuggestionResponse

	err = h.DB.Where("project_id = ?", project.ID).Order("created_at DESC").First(&suggestion).Error

	if err == nil {
		resp := toSuggestionResponse(suggestion)
		suggestionResponse = &resp
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve suggestions"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"project":      toProjectResponse(project),
		"roles":        roleResponses,
		"aiSuggestion": suggestionResponse,
	})
}

func toProjectResponse(project models.Project) ProjectResponse {
	return ProjectResponse{
		ID:                   project.ID,
		Name:                 project.Name,
		Description:          project.Description,
		Duration:             project.Duration,
		Complexity:           project.Complexity,
		TechnologyStack:      decodeTechStack(project.TechStack, project.ID),
		BaseCost:             project.BaseCost,
		AdditionalCosts:      project.AdditionalCosts,
		RiskBufferPercentage: project.RiskBufferPercentage,
		RiskBufferAmount:     project.RiskBufferAmount,
		TotalCost:            project.TotalCost,
		CreatedAt:            project.CreatedAt,
	}
}

// decodeTechStack reads the stored jsonb column. Malformed stored JSON is
// reported in logs and treated as an empty stack, never a fatal read error.
func decodeTechStack(raw datatypes.JSON, projectID uint) map[string][]string {
	stack := map[string][]string{}

	if len(raw) == 0 {
		return stack
	}

	if err := json.Unmarshal(raw, &stack); err != nil {
		log.Printf("Malformed technology stack stored for project %d: %v", projectID, err)
		return map[string][]string{}
	}

	return stack
}

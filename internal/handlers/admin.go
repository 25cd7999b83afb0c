package handlers

import (
	"context"
	"log"
	"net/http"
	"runtime"
	"sort"
	"time"

	"github.com/costlens-dev/costlens/internal/ai"
	"github.com/costlens-dev/costlens/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminHandler struct {
	DB        *gorm.DB
	Generator ai.Generator
	StartedAt time.Time
}

func NewAdminHandler(database *gorm.DB, generator ai.Generator) *AdminHandler {
	return &AdminHandler{
		DB:        database,
		Generator: generator,
		StartedAt: time.Now(),
	}
}

type DependencyStatus struct {
	Status         string `json:"status"`
	ResponseTimeMs int64  `json:"response_time_ms"`
	Error          string `json:"error,omitempty"`
}

type EndpointStatus struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Method string `json:"method"`
	Status string `json:"status"`
}

type MemoryStatus struct {
	AllocBytes      uint64 `json:"alloc_bytes"`
	TotalAllocBytes uint64 `json:"total_alloc_bytes"`
	SysBytes        uint64 `json:"sys_bytes"`
	NumGC           uint32 `json:"num_gc"`
}

type HealthReport struct {
	Timestamp     time.Time        `json:"timestamp"`
	Database      DependencyStatus `json:"database"`
	GoogleAI      DependencyStatus `json:"google_ai"`
	UptimeSeconds float64          `json:"uptime_seconds"`
	Memory        MemoryStatus     `json:"memory"`
	Endpoints     []EndpointStatus `json:"endpoints"`
}

func (h *AdminHandler) Health(ctx *gin.Context) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	report := HealthReport{
		Timestamp:     time.Now(),
		UptimeSeconds: time.Since(h.StartedAt).Seconds(),
		Memory: MemoryStatus{
			AllocBytes:      mem.Alloc,
			TotalAllocBytes: mem.TotalAlloc,
			SysBytes:        mem.Sys,
			NumGC:           mem.NumGC,
		},
		Endpoints: []EndpointStatus{
			{Name: "Auth Login", Path: "/api/auth/login", Method: "POST", Status: "available"},
			{Name: "Projects", Path: "/api/projects", Method: "GET", Status: "available"},
			{Name: "AI Suggestions", Path: "/api/ai/suggestions/:project_id", Method: "POST", Status: "available"},
		},
	}

	report.Database = h.checkDatabase(ctx.Request.Context())
	report.GoogleAI = h.checkGoogleAI(ctx.Request.Context())

	ctx.JSON(http.StatusOK, report)
}

func (h *AdminHandler) checkDatabase(ctx context.Context) DependencyStatus {
	start := time.Now()

	sqlDB, err := h.DB.DB()

	if err != nil {
		return DependencyStatus{Status: "error", Error: err.Error()}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		return DependencyStatus{
			Status:         "error",
			ResponseTimeMs: time.Since(start).Milliseconds(),
			Error:          err.Error(),
		}
	}

	return DependencyStatus{
		Status:         "healthy",
		ResponseTimeMs: time.Since(start).Milliseconds(),
	}
}

func (h *AdminHandler) checkGoogleAI(ctx context.Context) DependencyStatus {
	if h.Generator == nil {
		return DependencyStatus{Status: "not_configured", Error: "API key not configured"}
	}

	start := time.Now()

	checkCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	if _, err := h.Generator.GenerateContent(checkCtx, ai.DefaultModels[0], "Hello"); err != nil {
		return DependencyStatus{
			Status:         "error",
			ResponseTimeMs: time.Since(start).Milliseconds(),
			Error:          err.Error(),
		}
	}

	return DependencyStatus{
		Status:         "healthy",
		ResponseTimeMs: time.Since(start).Milliseconds(),
	}
}

type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type StatsResponse struct {
	Users          int64        `json:"users"`
	Projects       int64        `json:"projects"`
	AISuggestions  int64        `json:"ai_suggestions"`
	RecentActivity []DailyCount `json:"recent_activity"`
	UptimeSeconds  float64      `json:"uptime_seconds"`
}

func (h *AdminHandler) Stats(ctx *gin.Context) {
	var stats StatsResponse

	if err := h.DB.Model(&models.User{}).Count(&stats.Users).Error; err != nil {
		log.Printf("Failed to count users: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get statistics"})
		return
	}

	if err := h.DB.Model(&models.Project{}).Count(&stats.Projects).Error; err != nil {
		log.Printf("Failed to count projects: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get statistics"})
		return
	}

	if err := h.DB.Model(&models.AISuggestion{}).Count(&stats.AISuggestions).Error; err != nil {
		log.Printf("Failed to count suggestions: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get statistics"})
		return
	}

	since := time.Now().AddDate(0, 0, -7)

	var createdAt []time.Time

	err := h.DB.Model(&models.Project{}).
		Where("created_at >= ?", since).
		Order("created_at").
		Pluck("created_at", &createdAt).Error

	if err != nil {
		log.Printf("Failed to load recent activity: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get statistics"})
		return
	}

	stats.RecentActivity = groupByDay(createdAt)

	stats.UptimeSeconds = time.Since(h.StartedAt).Seconds()

	ctx.JSON(http.StatusOK, stats)
}

func groupByDay(timestamps []time.Time) []DailyCount {
	counts := make(map[string]int64, len(timestamps))

	for _, ts := range timestamps {
		counts[ts.Format("2006-01-02")]++
	}

	days := make([]string, 0, len(counts))
	for day := range counts {
		days = append(days, day)
	}
	sort.Strings(days)

	activity := make([]DailyCount, 0, len(days))
	for _, day := range days {
		activity = append(activity, DailyCount{Date: day, Count: counts[day]})
	}

	return activity
}

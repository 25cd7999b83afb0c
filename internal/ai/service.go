package ai

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/costlens-dev/costlens/internal/models"
)

// DefaultModels lists candidate Gemini models in order of preference.
var DefaultModels = []string{
	"gemini-1.5-flash", // Latest and fastest
	"gemini-1.5-pro",   // Most capable
	"gemini-pro",       // Standard model
}

// Generator produces a completion for a prompt using a named model.
type Generator interface {
	GenerateContent(ctx context.Context, model, prompt string) (string, error)
}

// Service runs the suggestion flow: prompt construction, generation with
// ordered model fallback, and response normalization. Persistence belongs
// to the caller.
type Service struct {
	gen    Generator
	models []string
}

func NewService(gen Generator, candidateModels []string) *Service {
	if len(candidateModels) == 0 {
		candidateModels = DefaultModels
	}
	return &Service{gen: gen, models: candidateModels}
}

// Suggest requests optimization suggestions for a project. Each candidate
// model is tried in order; a model-not-found class of error moves on to the
// next model, any other class aborts immediately.
func (s *Service) Suggest(ctx context.Context, project models.Project, roles []models.Role, techStack map[string][]string) (Suggestion, error) {
	prompt := BuildPrompt(project, roles, techStack)

	var lastErr error

	for _, model := range s.models {
		log.Printf("Attempting Google AI model: %s", model)

		text, err := s.gen.GenerateContent(ctx, model, prompt)

		if err != nil {
			log.Printf("Model %s failed: %v", model, err)
			lastErr = err

			if errors.Is(err, ErrModelNotFound) {
				continue
			}

			return Suggestion{}, err
		}

		return ParseSuggestion(text, project.TotalCost), nil
	}

	return Suggestion{}, fmt.Errorf("all google ai models failed: %w", lastErr)
}

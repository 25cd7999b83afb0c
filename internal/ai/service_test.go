package ai

import (
	"context"
	"testing"

	"github.com/costlens-dev/costlens/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	responses map[string]string
	errs      map[string]error
	calls     []string
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model, _ string) (string, error) {
	f.calls = append(f.calls, model)
	if err, ok := f.errs[model]; ok {
		return "", err
	}
	return f.responses[model], nil
}

func testProject() models.Project {
	return models.Project{
		Name:                 "Billing revamp",
		Duration:             6,
		Complexity:           "medium",
		BaseCost:             16000,
		AdditionalCosts:      1000,
		RiskBufferPercentage: 15,
		RiskBufferAmount:     2550,
		TotalCost:            19550,
	}
}

func testRoles() []models.Role {
	return []models.Role{
		{RoleName: "Backend Developer", PersonCount: 2, HourlyRate: 50, HoursPerWeek: 40, Weeks: 4, Cost: 16000},
	}
}

func TestSuggest_FirstModelSucceeds(t *testing.T) {
	gen := &fakeGenerator{
		responses: map[string]string{
			"gemini-1.5-flash": `{"suggestions": "Ship it.", "confidence_score": 0.9}`,
		},
	}

	svc := NewService(gen, nil)
	got, err := svc.Suggest(context.Background(), testProject(), testRoles(), nil)
	require.NoError(t, err)

	assert.Equal(t, "Ship it.", got.Suggestions)
	assert.Equal(t, []string{"gemini-1.5-flash"}, gen.calls)
}

func TestSuggest_ModelNotFoundTriesNext(t *testing.T) {
	gen := &fakeGenerator{
		errs: map[string]error{
			"gemini-1.5-flash": ClassifyError("gemini-1.5-flash", "model not found"),
		},
		responses: map[string]string{
			"gemini-1.5-pro": `{"suggestions": "Use the pro model result.", "confidence_score": 0.8}`,
		},
	}

	svc := NewService(gen, nil)
	got, err := svc.Suggest(context.Background(), testProject(), testRoles(), nil)
	require.NoError(t, err)

	assert.Equal(t, "Use the pro model result.", got.Suggestions)
	assert.Equal(t, []string{"gemini-1.5-flash", "gemini-1.5-pro"}, gen.calls)
}

func TestSuggest_QuotaErrorAbortsImmediately(t *testing.T) {
	gen := &fakeGenerator{
		errs: map[string]error{
			"gemini-1.5-flash": ClassifyError("gemini-1.5-flash", "QUOTA_EXCEEDED: daily limit reached"),
		},
		responses: map[string]string{
			"gemini-1.5-pro": `{"suggestions": "never reached"}`,
		},
	}

	svc := NewService(gen, nil)
	_, err := svc.Suggest(context.Background(), testProject(), testRoles(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQuotaExceeded)
	assert.Equal(t, []string{"gemini-1.5-flash"}, gen.calls, "quota errors must not fall through to other models")
}

func TestSuggest_AllModelsExhausted(t *testing.T) {
	gen := &fakeGenerator{
		errs: map[string]error{
			"gemini-1.5-flash": ClassifyError("gemini-1.5-flash", "model not found"),
			"gemini-1.5-pro":   ClassifyError("gemini-1.5-pro", "INVALID_ARGUMENT: unknown model"),
			"gemini-pro":       ClassifyError("gemini-pro", "model not found"),
		},
	}

	svc := NewService(gen, nil)
	_, err := svc.Suggest(context.Background(), testProject(), testRoles(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrModelNotFound)
	assert.Len(t, gen.calls, 3)
}

func TestClassifyError(t *testing.T) {
	assert.ErrorIs(t, ClassifyError("m", "API_KEY_INVALID: bad key"), ErrInvalidAPIKey)
	assert.ErrorIs(t, ClassifyError("m", "PERMISSION_DENIED: no access"), ErrPermissionDenied)
	assert.ErrorIs(t, ClassifyError("m", "RESOURCE_EXHAUSTED: slow down"), ErrRateLimited)
	assert.ErrorIs(t, ClassifyError("m", "QUOTA_EXCEEDED: check billing"), ErrQuotaExceeded)
	assert.ErrorIs(t, ClassifyError("m", "models/m is not found"), ErrModelNotFound)
	assert.ErrorIs(t, ClassifyError("m", "INVALID_ARGUMENT: bad model"), ErrModelNotFound)

	generic := ClassifyError("m", "something else broke")
	assert.NotErrorIs(t, generic, ErrModelNotFound)
	assert.NotErrorIs(t, generic, ErrQuotaExceeded)
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(testProject(), testRoles(), map[string][]string{
		"backend":  {"Go", "PostgreSQL"},
		"frontend": {"React"},
		"empty":    {},
	})

	assert.Contains(t, prompt, "Billing revamp")
	assert.Contains(t, prompt, "Backend Developer: 2 people")
	assert.Contains(t, prompt, "backend: Go, PostgreSQL")
	assert.Contains(t, prompt, "frontend: React")
	assert.NotContains(t, prompt, "empty:")
	assert.Contains(t, prompt, "Return ONLY the JSON object")
}

func TestBuildPrompt_EmptyStack(t *testing.T) {
	prompt := BuildPrompt(testProject(), testRoles(), nil)
	assert.Contains(t, prompt, "Not specified")
}

package generation

import (
	"testing"

	"github.com/alexanderramin/deepwork/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextualPrompts_BeforeDelegationIgnoresTask(t *testing.T) {
	early := ContextualPrompts("Refine market sizing strategy", domain.StageGoalInitiation)
	assert.Equal(t, onboardingPrompts, early)

	alsoEarly := ContextualPrompts("", domain.StageContextCapture)
	assert.Equal(t, onboardingPrompts, alsoEarly)
}

func TestContextualPrompts_StrategyTask(t *testing.T) {
	prompts := ContextualPrompts("Draft the pitch for Quick Share", domain.StageDeepWorkDelegation)
	require.Len(t, prompts, 3)
	assert.Contains(t, prompts[0], "Quick Share", "expertise prompt is parameterized by the task text")
	assert.Equal(t, "Help me craft an effective strategy", prompts[1])
	assert.Equal(t, "What are common pitfalls in strategy documents?", prompts[2])
}

func TestContextualPrompts_MarketAndStrategyPreserveOrder(t *testing.T) {
	prompts := ContextualPrompts("Pitch the market sizing update", domain.StageReviewAndIteration)
	require.Len(t, prompts, 5)
	assert.Equal(t, "Help me craft an effective strategy", prompts[1])
	assert.Equal(t, "Explain TAM, SAM, SOM in simple terms", prompts[3])
}

func TestContextualPrompts_FallbackWhenNoKeywords(t *testing.T) {
	prompts := ContextualPrompts("Answer support tickets", domain.StageDeepWorkDelegation)
	require.Len(t, prompts, 3, "expertise prompt alone triggers the fallback pair")
	assert.Equal(t, fallbackPrompts[0], prompts[1])
	assert.Equal(t, fallbackPrompts[1], prompts[2])
}

func TestContextualPrompts_EmptyTaskAfterDelegation(t *testing.T) {
	prompts := ContextualPrompts("", domain.StageTaskCompletion)
	assert.Equal(t, fallbackPrompts, prompts, "no expertise prompt without task text")
}

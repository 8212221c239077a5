package generation

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/deepwork/internal/domain"
)

// Onboarding prompts shown before the plan is locked.
var onboardingPrompts = []string{
	"Help me define a 'big rock' task for today.",
	"What makes a good daily plan?",
}

// Generic fallbacks appended when the keyword rules contribute nothing.
var fallbackPrompts = []string{
	"Help me break this task down",
	"What's a good first step?",
}

// ContextualPrompts suggests assistant-chat openers for the current big-rock
// task and workflow stage. Before delegation unlocks, the task text is
// ignored and the fixed onboarding pair is returned. Afterwards the list is
// built in insertion order: an expertise prompt (non-empty task only), then
// keyword-matched strategy and market prompts, then the generic fallbacks
// when the keyword rules contributed nothing.
func ContextualPrompts(bigRockText string, stage domain.Stage) []string {
	if stage < domain.StageDeepWorkDelegation {
		return append([]string(nil), onboardingPrompts...)
	}

	var prompts []string
	if bigRockText != "" {
		prompts = append(prompts, fmt.Sprintf("Who has relevant expertise on %q?", bigRockText))
	}

	text := strings.ToLower(bigRockText)
	if containsAny(text, "strategy", "pitch") {
		prompts = append(prompts,
			"Help me craft an effective strategy",
			"What are common pitfalls in strategy documents?",
		)
	}
	if containsAny(text, "market", "sizing") {
		prompts = append(prompts,
			"Explain TAM, SAM, SOM in simple terms",
			"Give me a template for market analysis",
		)
	}

	if len(prompts) <= 1 {
		prompts = append(prompts, fallbackPrompts...)
	}
	return prompts
}

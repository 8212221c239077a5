// Package generation derives suggested learning activities and chat prompts
// from the big-rock task text. Matching is literal substring containment on
// the lowercased text; the rules are intentionally simplistic and must not
// be generalized.
package generation

import (
	"strings"

	"github.com/alexanderramin/deepwork/internal/domain"
)

// maxActivities caps the generated learning-activity list.
const maxActivities = 3

// Static catalog entries keyed by matched rule. The generator copies these;
// callers own the returned slices.
var (
	activityPitchDeck = domain.LearningActivity{
		ID: "la_1", Type: domain.ActivityArticle,
		Title: "Components of a Killer Pitch Deck", Link: "#",
	}
	activityStrategy = domain.LearningActivity{
		ID: "la_2", Type: domain.ActivityVideo,
		Title: "Nailing Your Product Strategy", Link: "#",
	}
	activityResearch = domain.LearningActivity{
		ID: "la_3", Type: domain.ActivityArticle,
		Title: "Synthesizing User Research Effectively", Link: "#",
	}
	activityRolePlay = domain.LearningActivity{
		ID: "la_4", Type: domain.ActivityRolePlay,
		Title: "Practice articulating the problem statement", Link: "#",
	}
)

// LearningActivities maps the big-rock task text to a bounded list of
// suggested activities. Empty text clears the list entirely. Rules apply in
// fixed order; the role-play entry is a fallback added only when exactly one
// entry accumulated from the keyword rules.
func LearningActivities(bigRockText string) []domain.LearningActivity {
	if bigRockText == "" {
		return nil
	}

	text := strings.ToLower(bigRockText)
	var out []domain.LearningActivity

	if containsAny(text, "pitch", "deck", "strategy") {
		out = append(out, activityPitchDeck, activityStrategy)
	}
	if containsAny(text, "uxr", "design", "user research") {
		out = append(out, activityResearch)
	}
	if len(out) == 1 {
		out = append(out, activityRolePlay)
	}
	if len(out) > maxActivities {
		out = out[:maxActivities]
	}
	return out
}

func containsAny(text string, subs ...string) bool {
	for _, s := range subs {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

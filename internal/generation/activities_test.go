package generation

import (
	"testing"

	"github.com/alexanderramin/deepwork/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLearningActivities_EmptyTextClears(t *testing.T) {
	assert.Empty(t, LearningActivities(""))
}

func TestLearningActivities_StrategyPitch(t *testing.T) {
	acts := LearningActivities("Draft strategic pitch for Quick Share")
	require.Len(t, acts, 2, "rule 1 fires; count >= 2 skips the role-play fallback")
	assert.Equal(t, domain.ActivityArticle, acts[0].Type)
	assert.Equal(t, domain.ActivityVideo, acts[1].Type)
}

func TestLearningActivities_ResearchGetsRolePlayFallback(t *testing.T) {
	acts := LearningActivities("Review UXR findings")
	require.Len(t, acts, 2)
	assert.Equal(t, "Synthesizing User Research Effectively", acts[0].Title)
	assert.Equal(t, domain.ActivityRolePlay, acts[1].Type, "exactly one match adds the role-play entry")
}

func TestLearningActivities_BothRulesCapAtThree(t *testing.T) {
	acts := LearningActivities("Pitch deck for the design review")
	require.Len(t, acts, 3)
	assert.Equal(t, "la_1", acts[0].ID)
	assert.Equal(t, "la_2", acts[1].ID)
	assert.Equal(t, "la_3", acts[2].ID)
	for _, a := range acts {
		assert.NotEqual(t, domain.ActivityRolePlay, a.Type, "fallback must not fire when two rules matched")
	}
}

func TestLearningActivities_NoMatchYieldsNothing(t *testing.T) {
	assert.Empty(t, LearningActivities("Answer support tickets"))
}

func TestLearningActivities_MatchingIsCaseInsensitive(t *testing.T) {
	acts := LearningActivities("FINALIZE STRATEGY DOC")
	require.Len(t, acts, 2)
}

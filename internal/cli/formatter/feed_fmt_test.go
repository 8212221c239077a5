package formatter

import (
	"testing"

	"github.com/alexanderramin/deepwork/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatFeedEntry_Variants(t *testing.T) {
	agent := FormatFeedEntry(domain.AgentEntry{Text: "working on it"}, 60)
	assert.Contains(t, agent, "working on it")

	nudge := FormatFeedEntry(domain.NudgeEntry{Skill: domain.SkillPlayingToWin}, 60)
	assert.Contains(t, nudge, "Playing to Win Framework")
	assert.Contains(t, nudge, "Micro-skill")

	draft := FormatFeedEntry(domain.DraftEntry{Title: "DRAFT: X", Content: "body text"}, 60)
	assert.Contains(t, draft, "DRAFT: X")
	assert.Contains(t, draft, "body text")

	success := FormatFeedEntry(domain.SuccessEntry{Text: "Task Complete!", TCR: 0.87}, 60)
	assert.Contains(t, success, "Task Complete!")
	assert.Contains(t, success, "87%")
}

func TestFormatAssistantMessage(t *testing.T) {
	user := FormatAssistantMessage(domain.AssistantMessage{Role: domain.RoleUser, Content: "hi"})
	assert.Contains(t, user, "you")
	assert.Contains(t, user, "hi")

	pending := FormatAssistantMessage(domain.AssistantMessage{Role: domain.RoleModel})
	assert.Contains(t, pending, "thinking")
}

func TestFormatTaskRow(t *testing.T) {
	tasks := domain.InitialTasks()

	bigRock := FormatTaskRow(tasks[0], false)
	assert.Contains(t, bigRock, "★")
	assert.Contains(t, bigRock, "jira PROD-123")

	plain := FormatTaskRow(tasks[1], true)
	assert.Contains(t, plain, "▸")
	assert.NotContains(t, plain, "★")
}

package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/deepwork/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

var (
	draftBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDim).
			Padding(0, 1)

	successBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorGreen).
			Padding(0, 1)
)

// FormatFeedEntry renders one delegate-feed entry. The switch is exhaustive
// over the closed entry set.
func FormatFeedEntry(e domain.FeedEntry, width int) string {
	switch e := e.(type) {
	case domain.AgentEntry:
		return StyleBlue.Render("agent ") + Dim("· ") + e.Text
	case domain.NudgeEntry:
		return formatNudge(e, width)
	case domain.DraftEntry:
		body := StyleBold.Render(e.Title) + "\n\n" + e.Content
		return renderCard(draftBorder, body, width)
	case domain.SuccessEntry:
		body := StyleGreen.Render(e.Text) + "\n" +
			Dim("Task completion rate: ") + fmt.Sprintf("%.0f%%", e.TCR*100)
		return renderCard(successBorder, body, width)
	default:
		return ""
	}
}

func formatNudge(e domain.NudgeEntry, width int) string {
	body := StyleYellow.Render("Micro-skill: "+e.Skill.Title) + "\n" + Dim(e.Skill.Description)
	return renderCard(draftBorder, body, width)
}

func renderCard(style lipgloss.Style, body string, width int) string {
	if width > 4 {
		style = style.Width(width - 2)
	}
	return style.Render(body)
}

// FormatAssistantMessage renders one chat turn. An empty model turn shows a
// thinking indicator while the stream is still arriving.
func FormatAssistantMessage(m domain.AssistantMessage) string {
	if m.Role == domain.RoleUser {
		return StylePurple.Render("you   ") + Dim("· ") + m.Content
	}
	content := m.Content
	if strings.TrimSpace(content) == "" {
		content = Dim("thinking...")
	}
	return StyleGreen.Render("agent ") + Dim("· ") + content
}

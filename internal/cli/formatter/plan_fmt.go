package formatter

import (
	"fmt"

	"github.com/alexanderramin/deepwork/internal/domain"
)

// FormatTaskRow renders one plan task line. The big rock carries a star and
// imported tasks show a provenance badge.
func FormatTaskRow(t domain.Task, isCursor bool) string {
	cursor := "  "
	if isCursor {
		cursor = StyleGreen.Render("▸ ")
	}

	check := Dim("[ ]")
	text := t.Text
	if t.Completed {
		check = StyleGreen.Render("[✓]")
		text = Dim(text)
	}

	star := "  "
	if t.BigRock {
		star = StyleYellow.Render("★ ")
	}

	badge := ""
	if t.Source != nil {
		badge = " " + SourceBadge(*t.Source)
	}

	return fmt.Sprintf("%s%s%s %s%s", cursor, star, check, text, badge)
}

// SourceBadge renders a provenance marker such as [jira PROD-123].
func SourceBadge(s domain.TaskSource) string {
	label := string(s.Type)
	if s.Identifier != "" {
		label += " " + s.Identifier
	}
	return Dim("[" + label + "]")
}

// FormatActivityRow renders one learning-activity line with its type tag.
func FormatActivityRow(a domain.LearningActivity, isCursor bool) string {
	cursor := "  "
	if isCursor {
		cursor = StyleGreen.Render("▸ ")
	}

	check := Dim("[ ]")
	title := a.Title
	if a.Completed {
		check = StyleGreen.Render("[✓]")
		title = Dim(title)
	}

	var tag string
	switch a.Type {
	case domain.ActivityVideo:
		tag = StyleBlue.Render("▶ video")
	case domain.ActivityArticle:
		tag = StylePurple.Render("✎ article")
	case domain.ActivityRolePlay:
		tag = StyleYellow.Render("☺ role-play")
	default:
		tag = Dim(string(a.Type))
	}

	return fmt.Sprintf("%s%s %s %s", cursor, check, title, tag)
}

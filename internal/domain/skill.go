package domain

// MicroSkill is a static catalog entry the agent nudges the user toward.
type MicroSkill struct {
	ID          string
	Title       string
	Description string
	Link        string
}

// The read-only micro-skill catalog. Two entries, referenced by the
// delegation script in fixed order.
var (
	SkillPlayingToWin = MicroSkill{
		ID:          "ms_001",
		Title:       "Playing to Win Framework",
		Description: "A practical approach to strategy that frames it as a set of five crucial, integrated choices.",
		Link:        "#",
	}

	SkillMarketSizing = MicroSkill{
		ID:          "ms_002",
		Title:       "Market Sizing: API-as-a-Product",
		Description: "Techniques for estimating market size specifically for API-based products, considering developer adoption and usage-based pricing.",
		Link:        "#",
	}
)

package dashboard

import "github.com/charmbracelet/lipgloss"

var tones = map[string]lipgloss.Color{
	"gray":    lipgloss.Color("#9ca3af"),
	"blue":    lipgloss.Color("#3b82f6"),
	"emerald": lipgloss.Color("#10b981"),
	"amber":   lipgloss.Color("#f59e0b"),
	"red":     lipgloss.Color("#ef4444"),
	"orange":  lipgloss.Color("#f97316"),
}

func tone(name string) lipgloss.Color {
	if c, ok := tones[name]; ok {
		return c
	}
	return tones["gray"]
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4b5563")).
			Padding(0, 1).
			MarginRight(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#d1d5db"))

	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1f2937"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b7280"))

	errorStyle = lipgloss.NewStyle().
			Foreground(tones["red"])

	noticeStyle = lipgloss.NewStyle().
			Foreground(tones["emerald"])

	emptyBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#374151"))
)

package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sourcing-planner/internal/purchase"
)

type column struct {
	title string
	width int
}

var columns = []column{
	{"", 3},
	{"Created", 17},
	{"Qty", 5},
	{"Margin", 8},
	{"ROI", 8},
	{"Profit", 12},
	{"Max EK", 10},
	{"EK", 10},
	{"VK", 10},
	{"Sales", 12},
	{"ASIN", 11},
	{"Status", 10},
}

func pad(s string, width int) string {
	return lipgloss.NewStyle().Width(width).MaxWidth(width).Render(s)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Purchases"))
	b.WriteString("\n\n")

	if len(m.cards) > 0 {
		b.WriteString(renderCards(m.cards))
		b.WriteString("\n\n")
	}

	if m.loadErr != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v (press r to retry)", m.loadErr)))
		b.WriteString("\n\n")
	}

	switch {
	case m.loading && m.rows == nil:
		b.WriteString(dimStyle.Render("Loading purchases..."))
		b.WriteString("\n")
	case len(m.rows) == 0 && m.loadErr == nil:
		b.WriteString(dimStyle.Render("No purchases yet."))
		b.WriteString("\n")
	default:
		b.WriteString(m.renderTable())
	}

	b.WriteString("\n")
	footer := purchase.Footer(m.selection.Count(), len(m.rows))
	if m.sorted {
		arrow := "↑"
		if m.sortOrder == purchase.Descending {
			arrow = "↓"
		}
		footer += fmt.Sprintf("  ·  sort: %s %s", m.sortKey, arrow)
	}
	b.WriteString(footer)
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render(m.helpLine()))
	return b.String()
}

func (m Model) helpLine() string {
	bindings := m.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return strings.Join(parts, " · ")
}

func renderCards(cards []purchase.MetricCard) string {
	rendered := make([]string, len(cards))
	for i, card := range cards {
		body := fmt.Sprintf("%s\n%s  %s  %s",
			card.Label,
			titleStyle.Render(card.Percentage),
			dimStyle.Render(card.Fraction),
			renderBars(card.Tier),
		)
		rendered[i] = cardStyle.Render(body)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func renderBars(tier purchase.Tier) string {
	filled := lipgloss.NewStyle().Foreground(tone(tier.Color))
	var b strings.Builder
	for i := 1; i <= 3; i++ {
		if i <= tier.Bars {
			b.WriteString(filled.Render("■"))
		} else {
			b.WriteString(emptyBarStyle.Render("■"))
		}
	}
	return b.String()
}

func headerMarker(state purchase.HeaderState) string {
	switch state {
	case purchase.HeaderAll:
		return "[x]"
	case purchase.HeaderSome:
		return "[-]"
	}
	return "[ ]"
}

func (m Model) renderTable() string {
	var b strings.Builder

	cells := make([]string, len(columns))
	for i, col := range columns {
		title := col.title
		if i == 0 {
			title = headerMarker(m.selection.Header(purchase.RowIDs(m.rows)))
		}
		cells[i] = pad(title, col.width)
	}
	b.WriteString(headerStyle.Render(strings.Join(cells, " ")))
	b.WriteString("\n")

	for i, row := range m.rows {
		marker := "[ ]"
		if m.selection.IsSelected(row.ID) {
			marker = "[x]"
		}
		sales := "-"
		if row.EstimatedSales != nil {
			sales = *row.EstimatedSales
		}
		values := []string{
			marker,
			row.CreatedDate + " " + row.CreatedTime,
			fmt.Sprintf("%d", row.Quantity),
			row.Display.Margin,
			row.Display.ROI,
			row.Display.Profit,
			row.Display.MaxEK,
			row.Display.CostPrice,
			row.Display.SalePrice,
			sales,
			row.ASIN,
			lipgloss.NewStyle().Foreground(tone(row.Badge.Tone)).Render(row.Badge.Label),
		}
		for j, v := range values {
			values[j] = pad(v, columns[j].width)
		}
		line := strings.Join(values, " ")
		if i == m.cursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// Package dashboard is the terminal purchase dashboard: the ratio cards and
// the purchase table with selection, sorting and bulk actions.
package dashboard

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"sourcing-planner/internal/purchase"
)

const requestTimeout = 15 * time.Second

type rowsLoadedMsg struct {
	generation int
	rows       []purchase.ViewRow
	err        error
}

type metricsLoadedMsg struct {
	generation int
	summary    MetricsSummary
	err        error
}

type bulkDoneMsg struct {
	action  string
	summary BulkSummary
	err     error
}

type Model struct {
	api  API
	keys KeyMap

	rows      []purchase.ViewRow
	cards     []purchase.MetricCard
	selection *purchase.Selection
	cursor    int

	sorted    bool
	sortKey   purchase.SortKey
	sortOrder purchase.SortOrder

	// generation increases with every reload; responses carrying an older
	// generation are dropped.
	generation int
	loading    bool
	loadErr    error
	notice     string

	width  int
	height int
}

func NewModel(api API) Model {
	return Model{
		api:        api,
		keys:       DefaultKeyMap,
		selection:  purchase.NewSelection(),
		sortOrder:  purchase.Ascending,
		generation: 1,
		loading:    true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.fetch()
}

func (m Model) fetch() tea.Cmd {
	return tea.Batch(fetchRows(m.api, m.generation), fetchMetrics(m.api, m.generation))
}

func fetchRows(api API, generation int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		rows, err := api.ListPurchases(ctx)
		return rowsLoadedMsg{generation: generation, rows: rows, err: err}
	}
}

func fetchMetrics(api API, generation int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		summary, err := api.Metrics(ctx)
		return metricsLoadedMsg{generation: generation, summary: summary, err: err}
	}
}

func runBulk(api API, action string, ids []uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		var (
			summary BulkSummary
			err     error
		)
		switch action {
		case "capture":
			summary, err = api.Capture(ctx, ids)
		default:
			summary, err = api.Delete(ctx, ids)
		}
		return bulkDoneMsg{action: action, summary: summary, err: err}
	}
}

// reload starts a new load generation.
func (m Model) reload() (Model, tea.Cmd) {
	m.generation++
	m.loading = true
	return m, m.fetch()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case rowsLoadedMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.loadErr = msg.err
			return m, nil
		}
		m.loadErr = nil
		m.rows = msg.rows
		m.applySort()
		m.selection.Prune(purchase.RowIDs(m.rows))
		m.clampCursor()
		return m, nil

	case metricsLoadedMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		if msg.err != nil {
			m.loadErr = msg.err
			return m, nil
		}
		m.cards = msg.summary.Cards
		return m, nil

	case bulkDoneMsg:
		if msg.err != nil {
			m.notice = ""
			m.loadErr = fmt.Errorf("%s failed: %w", msg.action, msg.err)
			return m, nil
		}
		m.notice = summarize(msg.action, msg.summary)
		m.selection.Clear()
		return m.reload()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		if len(m.rows) > 0 {
			m.selection.Toggle(m.rows[m.cursor].ID)
		}

	case key.Matches(msg, m.keys.ToggleAll):
		m.selection.ToggleAll(purchase.RowIDs(m.rows))

	case key.Matches(msg, m.keys.Sort):
		if m.sorted {
			m.sortKey = m.sortKey.Next()
		} else {
			m.sorted = true
			m.sortKey = purchase.SortKeys[0]
		}
		m.applySort()

	case key.Matches(msg, m.keys.Order):
		m.sortOrder = m.sortOrder.Flip()
		m.applySort()

	case key.Matches(msg, m.keys.Capture):
		return m.startBulk("capture")

	case key.Matches(msg, m.keys.Delete):
		return m.startBulk("delete")

	case key.Matches(msg, m.keys.Reload):
		m.notice = ""
		return m.reload()
	}
	return m, nil
}

func (m Model) startBulk(action string) (tea.Model, tea.Cmd) {
	if m.selection.Count() == 0 {
		m.notice = "select rows first (space or a)"
		return m, nil
	}
	m.notice = action + " in progress..."
	return m, runBulk(m.api, action, m.selection.IDs())
}

// applySort reorders the loaded rows, keeping the cursor on the same
// record.
func (m *Model) applySort() {
	if !m.sorted || len(m.rows) == 0 {
		return
	}
	var current uuid.UUID
	if m.cursor < len(m.rows) {
		current = m.rows[m.cursor].ID
	}
	purchase.SortBy(m.rows, func(r purchase.ViewRow) purchase.Record { return r.Record }, m.sortKey, m.sortOrder)
	for i, r := range m.rows {
		if r.ID == current {
			m.cursor = i
			break
		}
	}
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func summarize(action string, s BulkSummary) string {
	outcomes := make([]string, 0, len(s.Counts))
	for outcome := range s.Counts {
		outcomes = append(outcomes, outcome)
	}
	sort.Strings(outcomes)

	parts := make([]string, 0, len(outcomes))
	for _, outcome := range outcomes {
		parts = append(parts, fmt.Sprintf("%d %s", s.Counts[outcome], strings.ReplaceAll(outcome, "_", " ")))
	}
	if len(parts) == 0 {
		return action + ": nothing to do"
	}
	return action + ": " + strings.Join(parts, ", ")
}

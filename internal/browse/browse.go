// Package browse implements the interactive entity browser: a terminal list
// view over one entity store with local search and pagination. It fetches
// once when activated and only re-fetches on an explicit refresh; all
// filtering and paging happens in memory over the store snapshot.
package browse

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shopfront-io/shopfront/pkg/cache"
	"github.com/shopfront-io/shopfront/pkg/store"
	"github.com/shopfront-io/shopfront/pkg/types"
)

const maxColumns = 5

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// fetchDoneMsg reports the outcome of a FetchAll round-trip.
type fetchDoneMsg struct{ err error }

// Model is the bubbletea model for one entity type's browse view.
type Model struct {
	entity   string
	cache    *cache.Cache[types.Record]
	search   textinput.Model
	typing   bool
	page     int
	pageSize int
	loading  bool
	err      error
}

// NewModel creates a browse view over the given cache. pageSize must be
// positive.
func NewModel(c *cache.Cache[types.Record], entity string, pageSize int) Model {
	input := textinput.New()
	input.Placeholder = "search"
	input.Prompt = "/"
	input.CharLimit = 64

	return Model{
		entity:   entity,
		cache:    c,
		search:   input,
		page:     1,
		pageSize: pageSize,
		loading:  true,
	}
}

// Init dispatches the initial fetch, once per activation.
func (m Model) Init() tea.Cmd {
	return m.fetchCmd()
}

func (m Model) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return fetchDoneMsg{err: m.cache.FetchAll(ctx)}
	}
}

// Update handles key events and fetch results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchDoneMsg:
		m.loading = false
		m.err = msg.err
		m.page = 1
		return m, nil

	case tea.KeyMsg:
		if m.typing {
			switch msg.String() {
			case "enter", "esc":
				m.typing = false
				m.search.Blur()
			default:
				var cmd tea.Cmd
				m.search, cmd = m.search.Update(msg)
				m.page = 1
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "/":
			m.typing = true
			m.search.Focus()
			return m, textinput.Blink
		case "esc":
			m.search.SetValue("")
			m.page = 1
		case "r":
			m.loading = true
			return m, m.fetchCmd()
		case "right", "n":
			if m.page < m.pageCount() {
				m.page++
			}
		case "left", "p":
			if m.page > 1 {
				m.page--
			}
		}
	}
	return m, nil
}

// visible returns the current page of the filtered snapshot.
func (m Model) visible() []types.Record {
	return store.Paginate(m.filtered(), m.page, m.pageSize)
}

func (m Model) filtered() []types.Record {
	records := m.cache.Store().Snapshot()
	needle := strings.ToLower(strings.TrimSpace(m.search.Value()))
	if needle == "" {
		return records
	}
	return store.Filter(records, func(r types.Record) bool {
		for _, v := range r {
			s, ok := v.(string)
			if ok && strings.Contains(strings.ToLower(s), needle) {
				return true
			}
		}
		return false
	})
}

func (m Model) pageCount() int {
	return store.PageCount(len(m.filtered()), m.pageSize)
}

// View renders the title, table, and footer.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("shopfront • "+m.entity) + "\n\n")

	if m.loading {
		b.WriteString(dimStyle.Render("loading…") + "\n")
		return b.String()
	}
	if m.err != nil {
		// Stale collection stays visible below the error line.
		b.WriteString(errStyle.Render("error: "+m.err.Error()) + "\n\n")
	}

	records := m.visible()
	if len(records) == 0 {
		b.WriteString(dimStyle.Render("no records") + "\n")
	} else {
		cols := displayColumns(records)
		b.WriteString(headerStyle.Render(strings.Join(cols, "  ")) + "\n")
		for _, rec := range records {
			cells := make([]string, len(cols))
			for i, col := range cols {
				cells[i] = cellValue(rec[col])
			}
			b.WriteString(strings.Join(cells, "  ") + "\n")
		}
	}

	total := len(m.filtered())
	b.WriteString("\n" + dimStyle.Render(fmt.Sprintf(
		"page %d/%d • %d record(s) • /=search esc=clear n/p=page r=refresh q=quit",
		m.page, max(m.pageCount(), 1), total)))
	if m.typing || m.search.Value() != "" {
		b.WriteString("\n" + m.search.View())
	}
	return b.String()
}

// displayColumns picks the columns to show: id first, then the remaining keys
// of the first record in sorted order, capped at maxColumns.
func displayColumns(records []types.Record) []string {
	cols := []string{"id"}
	var rest []string
	for k := range records[0] {
		if k != "id" {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		if len(cols) == maxColumns {
			break
		}
		cols = append(cols, k)
	}
	return cols
}

// cellValue formats one field for display, truncated to keep rows on one line.
func cellValue(v any) string {
	if v == nil {
		return "-"
	}
	s := fmt.Sprintf("%v", v)
	if len(s) > 24 {
		s = s[:21] + "..."
	}
	return s
}

// Run starts the browse program and blocks until the user quits.
func Run(c *cache.Cache[types.Record], entity string, pageSize int) error {
	_, err := tea.NewProgram(NewModel(c, entity, pageSize)).Run()
	return err
}

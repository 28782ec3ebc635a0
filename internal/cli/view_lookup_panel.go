package cli

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/parcelscout/internal/cli/formatter"
	"github.com/alexanderramin/parcelscout/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// searchDueMsg fires when the simulated delay for a search has elapsed.
type searchDueMsg struct {
	id    string
	query string
}

// searchResolvedMsg carries a finished lookup back to the panel.
type searchResolvedMsg struct {
	id     string
	result *domain.LookupResult
}

var lookupKeys = struct {
	Search  key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Jump    key.Binding
	Quit    key.Binding
}{
	Search:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
	NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
	PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
	Jump:    key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "select tab")),
	Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

// lookupView is the property lookup panel: address search, the three
// narrative tabs and the fact sheet, all rendered from one QueryState.
type lookupView struct {
	state   *SharedState
	query   *QueryState
	input   textinput.Model
	spinner spinner.Model
}

func newLookupView(state *SharedState) *lookupView {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = formatter.SearchPlaceholder
	ti.CharLimit = 0 // unlimited; lookups compare the full text
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple

	return &lookupView{
		state:   state,
		query:   newQueryState(),
		input:   ti,
		spinner: sp,
	}
}

// ── tea.Model interface ──────────────────────────────────────────────────────

func (v *lookupView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *lookupView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.input.Width = max(msg.Width-20, 10)
		return v, nil

	case searchDueMsg:
		// A newer search already replaced this one; skip the lookup.
		if msg.id != v.query.Pending() {
			return v, nil
		}
		return v, v.resolve(msg.id, msg.query)

	case searchResolvedMsg:
		v.query.Deliver(msg.id, msg.result)
		return v, nil

	case spinner.TickMsg:
		if !v.query.Loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *lookupView) View() string {
	width := v.state.Width
	tab := v.query.ActiveTab

	var b strings.Builder
	b.WriteString(formatter.FormatTabBar(tab))
	b.WriteString("\n\n")

	if tab == domain.TabChat {
		b.WriteString(formatter.FormatSearchBar(v.input.View(), v.submitFace(), !v.query.CanSearch(), width))
		b.WriteString("\n")
		if v.query.Loading {
			b.WriteString("  " + v.spinner.View() + formatter.Dim(" Searching..."))
			b.WriteString("\n")
		} else if badge := formatter.OutcomeBadge(v.query.Result); badge != "" {
			b.WriteString("  " + badge)
			b.WriteString("\n")
		}
	}

	if content := formatter.FormatTabContent(tab, v.query.Searched, v.query.Result, width); content != "" {
		b.WriteString(content)
		b.WriteString("\n")
	}

	if sheet := formatter.FormatFactSheet(v.query.Result, width); sheet != "" {
		b.WriteString("\n")
		b.WriteString(sheet)
	}

	return b.String()
}

// ── View interface ───────────────────────────────────────────────────────────

func (v *lookupView) ID() ViewID    { return ViewLookup }
func (v *lookupView) Title() string { return "Lookup" }

func (v *lookupView) CapturesInput() bool {
	return v.query.ActiveTab == domain.TabChat
}

func (v *lookupView) ShortHelp() []key.Binding {
	if v.CapturesInput() {
		return []key.Binding{lookupKeys.Search, lookupKeys.NextTab, lookupKeys.PrevTab}
	}
	return []key.Binding{lookupKeys.Jump, lookupKeys.NextTab, lookupKeys.PrevTab, lookupKeys.Quit}
}

// ── input handling ───────────────────────────────────────────────────────────

func (v *lookupView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, lookupKeys.NextTab):
		return v, v.selectTab(v.query.ActiveTab.Next())
	case key.Matches(msg, lookupKeys.PrevTab):
		return v, v.selectTab(v.query.ActiveTab.Prev())
	}

	if v.query.ActiveTab != domain.TabChat {
		if key.Matches(msg, lookupKeys.Jump) {
			idx := int(msg.String()[0] - '1')
			return v, v.selectTab(domain.Tabs[idx])
		}
		return v, nil
	}

	if key.Matches(msg, lookupKeys.Search) {
		return v, v.submit()
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	v.query.SetQuery(v.input.Value())
	return v, cmd
}

func (v *lookupView) selectTab(tab domain.Tab) tea.Cmd {
	v.query.SelectTab(tab)
	if v.query.ActiveTab == domain.TabChat {
		return v.input.Focus()
	}
	v.input.Blur()
	return nil
}

// submit starts a search unless the submit control is disabled.
func (v *lookupView) submit() tea.Cmd {
	if !v.query.CanSearch() {
		return nil
	}
	id, ok := v.query.Search()
	if !ok {
		return nil
	}
	return tea.Batch(v.spinner.Tick, v.schedule(id, v.query.Query))
}

// schedule waits out the simulated delay before resolving the search.
func (v *lookupView) schedule(id, query string) tea.Cmd {
	delay := v.state.App.Lookup.Delay()
	if delay <= 0 {
		return v.resolve(id, query)
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return searchDueMsg{id: id, query: query}
	})
}

func (v *lookupView) resolve(id, query string) tea.Cmd {
	lookup := v.state.App.Lookup
	return func() tea.Msg {
		return searchResolvedMsg{id: id, result: lookup.Resolve(context.Background(), query)}
	}
}

func (v *lookupView) submitFace() string {
	if v.query.Loading {
		return v.spinner.View()
	}
	return "⌕"
}

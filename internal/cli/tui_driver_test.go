package cli

import (
	"regexp"
	"testing"

	"github.com/alexanderramin/parcelscout/internal/domain"
	"github.com/alexanderramin/parcelscout/internal/teatest"
)

// TestDriver wraps teatest.Driver with lookup-panel inspection methods.
// It exposes appModel internals (query state, active tab) that the
// generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App. The terminal is tall
// enough that the whole panel fits without scrolling.
func NewTestDriver(t *testing.T, app *App, opts ...teatest.Option) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, append([]teatest.Option{teatest.WithSize(120, 200)}, opts...)...)
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── High-level helpers ───────────────────────────────────────────────────────

// Search types the address into the search bar and presses Enter.
func (d *TestDriver) Search(address string) {
	d.T.Helper()
	d.Type(address)
	d.PressEnter()
}

// ── Lookup-specific inspection ───────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

func (d *TestDriver) lookupView() *lookupView {
	return d.appModel().view.(*lookupView)
}

// Query returns the panel's query state.
func (d *TestDriver) Query() *QueryState {
	return d.lookupView().query
}

// ActiveTab returns the visible tab.
func (d *TestDriver) ActiveTab() domain.Tab {
	return d.Query().ActiveTab
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

// PlainView returns the rendered screen without escape sequences.
func (d *TestDriver) PlainView() string {
	return ansiPattern.ReplaceAllString(d.View(), "")
}

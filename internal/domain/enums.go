package domain

import (
	"fmt"
	"strings"
)

// Tab identifies one of the three narrative views.
type Tab string

const (
	TabChat    Tab = "chat"
	TabSummary Tab = "summary"
	TabTasks   Tab = "tasks"
)

// Tabs lists the views in display order.
var Tabs = []Tab{TabChat, TabSummary, TabTasks}

// Label returns the tab's display caption.
func (t Tab) Label() string {
	switch t {
	case TabChat:
		return "Chat"
	case TabSummary:
		return "Summary"
	case TabTasks:
		return "Tasks"
	default:
		return string(t)
	}
}

// Valid reports whether t is one of the fixed tabs.
func (t Tab) Valid() bool {
	return t.index() >= 0
}

// Next returns the tab after t, wrapping around.
func (t Tab) Next() Tab {
	i := t.index()
	if i < 0 {
		return TabChat
	}
	return Tabs[(i+1)%len(Tabs)]
}

// Prev returns the tab before t, wrapping around.
func (t Tab) Prev() Tab {
	i := t.index()
	if i < 0 {
		return TabChat
	}
	return Tabs[(i+len(Tabs)-1)%len(Tabs)]
}

func (t Tab) index() int {
	for i, tab := range Tabs {
		if tab == t {
			return i
		}
	}
	return -1
}

// ParseTab resolves a tab name case-insensitively.
func ParseTab(s string) (Tab, error) {
	t := Tab(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown tab %q (expected chat, summary or tasks)", s)
	}
	return t, nil
}

// LookupOutcome classifies a finished search.
type LookupOutcome string

const (
	OutcomeNone     LookupOutcome = "none"
	OutcomeFound    LookupOutcome = "found"
	OutcomeNotFound LookupOutcome = "not_found"
	OutcomeError    LookupOutcome = "error"
)

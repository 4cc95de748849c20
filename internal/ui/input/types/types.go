package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"droplist/internal/domain"
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to engine state needed for input
// routing decisions
type Context interface {
	IsOpen() bool
	Multiple() bool
	SearchMode() bool
	Clearable() bool
	MoveFocusOnTab() bool
	RTL() bool

	HighlightedIndex() int
	CandidateCount() int
	SelectedCount() int
	ActiveSelectedIndex() int
	SearchQuery() string

	// CursorAtStart reports whether the search input caret is at
	// position 0 (the backspace-removes-chip edge case).
	CursorAtStart() bool
}

// TargetHandler handles input for one focus target
type TargetHandler interface {
	// HandleKey processes a key message and returns actions plus
	// whether the key was consumed
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Target returns the focus target this handler serves
	Target() domain.FocusTarget
}

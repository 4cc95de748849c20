package types

import "droplist/internal/domain"

// Panel actions

type OpenAction struct {
	Reason domain.OpenReason
}

func (a OpenAction) Type() string { return "open" }

type CloseAction struct {
	Cause domain.Cause
}

func (a CloseAction) Type() string { return "close" }

type ToggleAction struct {
	Reason domain.OpenReason
}

func (a ToggleAction) Type() string { return "toggle" }

// Highlight actions

type MoveHighlightAction struct {
	Delta int
}

func (a MoveHighlightAction) Type() string { return "move_highlight" }

type SetHighlightAction struct {
	Index int
}

func (a SetHighlightAction) Type() string { return "set_highlight" }

type TypeAheadAction struct {
	Rune rune
}

func (a TypeAheadAction) Type() string { return "type_ahead" }

// Selection actions

type CommitHighlightedAction struct{}

func (a CommitHighlightedAction) Type() string { return "commit_highlighted" }

type SelectIndexAction struct {
	Index int // index into the candidate list (pointer click)
}

func (a SelectIndexAction) Type() string { return "select_index" }

type RemoveLastAction struct{}

func (a RemoveLastAction) Type() string { return "remove_last" }

type RemoveChipAction struct {
	Index int // index into the committed value
}

func (a RemoveChipAction) Type() string { return "remove_chip" }

type ClearAction struct{}

func (a ClearAction) Type() string { return "clear" }

// Chip focus actions

type MoveChipFocusAction struct {
	Delta int // already mirrored for RTL by the handler
}

func (a MoveChipFocusAction) Type() string { return "move_chip_focus" }

type SetActiveChipAction struct {
	Index int
}

func (a SetActiveChipAction) Type() string { return "set_active_chip" }

// Focus actions

type FocusMoveAction struct {
	Target domain.FocusTarget
}

func (a FocusMoveAction) Type() string { return "focus_move" }

type BlurAction struct{}

func (a BlurAction) Type() string { return "blur" }

// UpdateQueryAction carries the search input's new text after the
// text input consumed a key
type UpdateQueryAction struct {
	Text string
}

func (a UpdateQueryAction) Type() string { return "update_query" }

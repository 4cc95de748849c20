// Package targets contains one key handler per logical focus target
// of the combobox: trigger button, search input, candidate list and
// chip strip.
package targets

import (
	tea "github.com/charmbracelet/bubbletea"

	"droplist/internal/domain"
	"droplist/internal/ui/input/types"
)

// tabActions implements the shared Tab policy: commit the highlighted
// candidate if there is one; with no highlight and no candidates just
// close ("accept nothing, retreat"). Whether focus also leaves the
// control afterwards is the caller's MoveFocusOnTab setting.
func tabActions(ctx types.Context) ([]types.Action, bool) {
	if !ctx.IsOpen() {
		if ctx.MoveFocusOnTab() {
			return []types.Action{types.FocusMoveAction{Target: domain.FocusNone}}, false
		}
		return nil, false
	}

	var actions []types.Action
	switch {
	case ctx.HighlightedIndex() != domain.NoIndex:
		actions = append(actions, types.CommitHighlightedAction{})
	case ctx.CandidateCount() == 0:
		actions = append(actions, types.CloseAction{Cause: domain.CauseKeyboard})
	default:
		actions = append(actions, types.CloseAction{Cause: domain.CauseKeyboard})
	}
	if ctx.MoveFocusOnTab() {
		actions = append(actions, types.FocusMoveAction{Target: domain.FocusNone})
		return actions, false
	}
	return actions, true
}

// chipNavKeys returns the "previous chip" / "next chip" key types,
// mirrored under right-to-left layout.
func chipNavKeys(ctx types.Context) (prev, next tea.KeyType) {
	if ctx.RTL() {
		return tea.KeyRight, tea.KeyLeft
	}
	return tea.KeyLeft, tea.KeyRight
}

// typeAheadRune extracts a single printable rune from a key message,
// or 0 when the key is not a plain character.
func typeAheadRune(msg tea.KeyMsg) rune {
	if msg.Type != tea.KeyRunes || msg.Alt || len(msg.Runes) != 1 {
		return 0
	}
	return msg.Runes[0]
}

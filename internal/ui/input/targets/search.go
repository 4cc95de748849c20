package targets

import (
	tea "github.com/charmbracelet/bubbletea"

	"droplist/internal/domain"
	"droplist/internal/ui/input/types"
)

// SearchHandler handles keys while the search input has focus. Keys it
// does not consume fall through to the text input itself.
type SearchHandler struct{}

func NewSearchHandler() *SearchHandler {
	return &SearchHandler{}
}

func (h *SearchHandler) Target() domain.FocusTarget {
	return domain.FocusSearch
}

func (h *SearchHandler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	prevKey, _ := chipNavKeys(ctx)

	switch msg.Type {
	case tea.KeyDown:
		if ctx.IsOpen() {
			return []types.Action{types.MoveHighlightAction{Delta: 1}}, true
		}
		return []types.Action{types.OpenAction{Reason: domain.OpenByDownArrow}}, true

	case tea.KeyUp:
		if ctx.IsOpen() {
			return []types.Action{types.MoveHighlightAction{Delta: -1}}, true
		}
		return []types.Action{types.OpenAction{Reason: domain.OpenByUpArrow}}, true

	case tea.KeyEnter:
		if ctx.IsOpen() && ctx.HighlightedIndex() != domain.NoIndex {
			return []types.Action{types.CommitHighlightedAction{}}, true
		}
		return nil, false

	case tea.KeyEsc:
		if ctx.IsOpen() {
			return []types.Action{types.CloseAction{Cause: domain.CauseKeyboard}}, true
		}
		return nil, false

	case tea.KeyTab:
		return tabActions(ctx)

	case tea.KeyBackspace:
		// Backspace in an empty field with the caret at 0 removes the
		// last chip instead of no-opping.
		if ctx.Multiple() && ctx.SearchQuery() == "" && ctx.CursorAtStart() && ctx.SelectedCount() > 0 {
			return []types.Action{types.RemoveLastAction{}}, true
		}
		return nil, false

	case prevKey:
		// Arrow toward the chip strip enters it from its end
		if ctx.Multiple() && ctx.CursorAtStart() && ctx.SelectedCount() > 0 {
			return []types.Action{
				types.MoveChipFocusAction{Delta: -1},
				types.FocusMoveAction{Target: domain.FocusChip},
			}, true
		}
		return nil, false
	}

	// Everything else belongs to the text input
	return nil, false
}

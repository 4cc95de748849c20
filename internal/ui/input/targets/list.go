package targets

import (
	tea "github.com/charmbracelet/bubbletea"

	"droplist/internal/domain"
	"droplist/internal/ui/input/types"
)

// ListHandler handles keys while the open candidate list has focus
// (non-search mode moves focus here on open).
type ListHandler struct{}

func NewListHandler() *ListHandler {
	return &ListHandler{}
}

func (h *ListHandler) Target() domain.FocusTarget {
	return domain.FocusList
}

func (h *ListHandler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyDown:
		return []types.Action{types.MoveHighlightAction{Delta: 1}}, true

	case tea.KeyUp:
		return []types.Action{types.MoveHighlightAction{Delta: -1}}, true

	case tea.KeyHome:
		return []types.Action{types.SetHighlightAction{Index: 0}}, true

	case tea.KeyEnd:
		if n := ctx.CandidateCount(); n > 0 {
			return []types.Action{types.SetHighlightAction{Index: n - 1}}, true
		}
		return nil, true

	case tea.KeyEnter, tea.KeySpace:
		if ctx.HighlightedIndex() != domain.NoIndex {
			return []types.Action{types.CommitHighlightedAction{}}, true
		}
		return nil, true

	case tea.KeyEsc:
		return []types.Action{
			types.CloseAction{Cause: domain.CauseKeyboard},
			types.FocusMoveAction{Target: domain.FocusTrigger},
		}, true

	case tea.KeyTab:
		return tabActions(ctx)
	}

	if r := typeAheadRune(msg); r != 0 {
		return []types.Action{types.TypeAheadAction{Rune: r}}, true
	}
	return nil, false
}

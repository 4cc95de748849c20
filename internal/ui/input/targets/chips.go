package targets

import (
	tea "github.com/charmbracelet/bubbletea"

	"droplist/internal/domain"
	"droplist/internal/ui/input/types"
)

// ChipsHandler handles keys while a selected chip has focus. Multi
// mode only; the coordinator never routes here in single mode.
type ChipsHandler struct{}

func NewChipsHandler() *ChipsHandler {
	return &ChipsHandler{}
}

func (h *ChipsHandler) Target() domain.FocusTarget {
	return domain.FocusChip
}

func (h *ChipsHandler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	prevKey, nextKey := chipNavKeys(ctx)

	switch msg.Type {
	case prevKey:
		return []types.Action{types.MoveChipFocusAction{Delta: -1}}, true

	case nextKey:
		// Past the last chip focus returns to the input; the model
		// notices the cleared active index and moves focus back.
		return []types.Action{types.MoveChipFocusAction{Delta: 1}}, true

	case tea.KeyBackspace, tea.KeyDelete:
		if at := ctx.ActiveSelectedIndex(); at != domain.NoIndex {
			return []types.Action{types.RemoveChipAction{Index: at}}, true
		}
		return nil, true

	case tea.KeyEsc:
		return []types.Action{
			types.SetActiveChipAction{Index: domain.NoIndex},
			types.FocusMoveAction{Target: h.homeTarget(ctx)},
		}, true

	case tea.KeyEnter:
		return nil, true
	}

	return nil, false
}

func (h *ChipsHandler) homeTarget(ctx types.Context) domain.FocusTarget {
	if ctx.SearchMode() {
		return domain.FocusSearch
	}
	return domain.FocusTrigger
}

package targets

import (
	tea "github.com/charmbracelet/bubbletea"

	"droplist/internal/domain"
	"droplist/internal/ui/input/types"
)

// TriggerHandler handles keys while the trigger button has focus
type TriggerHandler struct{}

func NewTriggerHandler() *TriggerHandler {
	return &TriggerHandler{}
}

func (h *TriggerHandler) Target() domain.FocusTarget {
	return domain.FocusTrigger
}

func (h *TriggerHandler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
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

	case tea.KeyEnter, tea.KeySpace:
		if ctx.IsOpen() && ctx.HighlightedIndex() != domain.NoIndex {
			return []types.Action{types.CommitHighlightedAction{}}, true
		}
		return []types.Action{types.ToggleAction{Reason: domain.OpenProgrammatic}}, true

	case tea.KeyEsc:
		if ctx.IsOpen() {
			return []types.Action{types.CloseAction{Cause: domain.CauseKeyboard}}, true
		}
		return nil, false

	case tea.KeyTab:
		return tabActions(ctx)

	case tea.KeyDelete, tea.KeyBackspace:
		// Clear affordance from the keyboard on a clearable control
		if ctx.Clearable() && ctx.SelectedCount() > 0 && !ctx.IsOpen() {
			return []types.Action{types.ClearAction{}}, true
		}
		return nil, false
	}

	if r := typeAheadRune(msg); r != 0 && !ctx.SearchMode() {
		return []types.Action{types.TypeAheadAction{Rune: r}}, true
	}
	return nil, false
}

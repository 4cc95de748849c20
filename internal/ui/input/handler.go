package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"droplist/internal/domain"
	"droplist/internal/registry"
	"droplist/internal/ui/input/targets"
	"droplist/internal/ui/input/types"
)

// EscapeEvent is the registry event type for the global "close and
// return focus" action.
const EscapeEvent = "escape"

// Coordinator routes physical key events to the handler for the focus
// target they arrived on and owns the shared search text input.
type Coordinator struct {
	focus     domain.FocusTarget
	handlers  map[domain.FocusTarget]types.TargetHandler
	textInput *textinput.Model
	reg       *registry.Registry
	widgetID  string
}

// New creates a coordinator. reg may be nil when no global key
// stacking is needed (single widget).
func New(widgetID string, reg *registry.Registry) *Coordinator {
	ti := textinput.New()
	ti.Prompt = ""

	c := &Coordinator{
		focus:     domain.FocusTrigger,
		textInput: &ti,
		reg:       reg,
		widgetID:  widgetID,
		handlers:  make(map[domain.FocusTarget]types.TargetHandler),
	}

	for _, h := range []types.TargetHandler{
		targets.NewTriggerHandler(),
		targets.NewSearchHandler(),
		targets.NewListHandler(),
		targets.NewChipsHandler(),
	} {
		c.handlers[h.Target()] = h
	}
	return c
}

// RegisterHandler swaps in a custom handler for a focus target
func (c *Coordinator) RegisterHandler(h types.TargetHandler) {
	c.handlers[h.Target()] = h
}

// HandleKey dispatches a key to the current focus target's handler.
// Keys the handler leaves unconsumed while the search input is focused
// are fed to the text input and surface as an UpdateQueryAction.
func (c *Coordinator) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	// Stacked modal precedence: Escape belongs to the topmost
	// registrant; a widget lower in the stack ignores it.
	if msg.Type == tea.KeyEsc && c.reg != nil && c.reg.Depth(EscapeEvent) > 0 && !c.reg.Topmost(EscapeEvent, c.widgetID) {
		return nil, nil
	}

	handler := c.handlers[c.focus]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if consumed {
		return actions, nil
	}

	if c.focus == domain.FocusSearch {
		var cmd tea.Cmd
		*c.textInput, cmd = c.textInput.Update(msg)
		actions = append(actions, types.UpdateQueryAction{Text: c.textInput.Value()})
		return actions, cmd
	}
	return actions, nil
}

// SetFocus moves logical focus, focusing or blurring the text input as
// needed. Returns the blink command when the input gains focus.
func (c *Coordinator) SetFocus(target domain.FocusTarget) tea.Cmd {
	if c.focus == target {
		return nil
	}
	c.focus = target

	if target == domain.FocusSearch {
		c.textInput.Focus()
		return textinput.Blink
	}
	c.textInput.Blur()
	return nil
}

// Focus returns the current logical focus target
func (c *Coordinator) Focus() domain.FocusTarget {
	return c.focus
}

// TextInput exposes the shared search input model for rendering
func (c *Coordinator) TextInput() *textinput.Model {
	return c.textInput
}

// SetQueryText mirrors an engine-side query change (select clearing
// the query, Clear) into the text input without emitting an update.
func (c *Coordinator) SetQueryText(text string) {
	if c.textInput.Value() != text {
		c.textInput.SetValue(text)
		c.textInput.CursorEnd()
	}
}

// CursorAtStart reports whether the input caret sits at position 0
func (c *Coordinator) CursorAtStart() bool {
	return c.textInput.Position() == 0
}

// PushEscape registers this widget on top of the escape stack (panel
// opened); PopEscape removes it (panel closed or teardown).
func (c *Coordinator) PushEscape(onEscape func()) {
	if c.reg != nil {
		c.reg.Push(EscapeEvent, c.widgetID, onEscape)
	}
}

func (c *Coordinator) PopEscape() {
	if c.reg != nil {
		c.reg.Pop(EscapeEvent, c.widgetID)
	}
}

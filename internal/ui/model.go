package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"droplist/internal/combo"
	"droplist/internal/domain"
	"droplist/internal/eventbus"
	"droplist/internal/registry"
	"droplist/internal/ui/input"
	inputtypes "droplist/internal/ui/input/types"
	"droplist/internal/ui/views"
)

// EventMsg wraps a bus event forwarded into the program from outside
// the update loop (timer-driven announcement clears arrive this way).
type EventMsg struct {
	Event eventbus.DomainEvent
}

// drainTasksMsg triggers processing of deferred post-render effects
type drainTasksMsg struct{}

// helpWidgetID is the escape-stack registrant for the help overlay
const helpWidgetID = "droplist-help"

// Model embeds one combobox widget in a bubbletea program
type Model struct {
	bus    eventbus.EventBus
	reg    *registry.Registry
	engine *combo.Controller
	coord  *input.Coordinator
	ctx    *input.EngineContext

	renderer    *views.Renderer
	popup       *views.PopupRenderer
	helpView    *HelpRenderer
	helpOps     *HelpOps
	placeholder string

	announcement string
	helpVisible  bool
	helpScroll   int
	width        int
	height       int
	pendingCmds  []tea.Cmd
	unsubs       []func()
	quitting     bool
}

// NewModel wires a controller, coordinator and renderer together.
// reg may be nil when the widget is not stacked under other panels.
func NewModel(bus eventbus.EventBus, reg *registry.Registry, engine *combo.Controller, placeholder string) *Model {
	m := &Model{
		bus:         bus,
		reg:         reg,
		engine:      engine,
		coord:       input.New(engine.IDs().Widget, reg),
		renderer:    views.NewRenderer(),
		helpView:    NewHelpRenderer(),
		placeholder: placeholder,
	}
	m.popup = views.NewPopupRenderer(m.renderer.Styles())
	m.ctx = &input.EngineContext{Engine: engine, Coord: m.coord}

	// The engine publishes synchronously from inside Update, so these
	// handlers run on the program goroutine.
	m.unsubs = append(m.unsubs, bus.Subscribe(eventbus.EventFocusRequested, func(e eventbus.DomainEvent) {
		ev := e.(domain.FocusRequestedEvent)
		if cmd := m.coord.SetFocus(ev.Target); cmd != nil {
			m.pendingCmds = append(m.pendingCmds, cmd)
		}
	}))
	m.unsubs = append(m.unsubs, bus.Subscribe(eventbus.EventOpenChanged, func(e eventbus.DomainEvent) {
		ev := e.(domain.OpenChangedEvent)
		if ev.Open {
			m.coord.PushEscape(func() {
				m.engine.Close(domain.CauseProgram)
			})
		} else {
			m.coord.PopEscape()
		}
	}))

	engine.SetChipScrollFunc(m.scrollChipsToEnd)
	if engine.SearchMode() {
		m.coord.TextInput().Placeholder = placeholder
		m.coord.SetFocus(domain.FocusSearch)
		engine.NoteFocus(domain.FocusSearch)
	}
	return m
}

// Engine returns the underlying controller
func (m *Model) Engine() *combo.Controller { return m.engine }

// SetHelpOps attaches pager-backed help; called once the program exists
func (m *Model) SetHelpOps(ops *HelpOps) { m.helpOps = ops }

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	if m.engine.SearchMode() {
		return textinput.Blink
	}
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.Teardown()
			m.quitting = true
			return m, tea.Quit
		}
		if m.helpVisible {
			if cmd := m.handleHelpKey(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
			break
		}
		if msg.Type == tea.KeyF1 || (msg.String() == "?" && m.coord.Focus() != domain.FocusSearch) {
			m.openHelp()
			break
		}
		actions, cmd := m.coord.HandleKey(msg, m.ctx)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		m.applyActions(actions)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case drainTasksMsg:
		m.engine.Tasks().Drain()

	case EventMsg:
		if ev, ok := msg.Event.(domain.AnnouncementEvent); ok {
			m.announcement = ev.Text
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case helpPagerMsg:
		if msg.err != nil {
			m.announcement = "help pager failed: " + msg.err.Error()
		}
	}

	// Deferred effects run only after this transition has rendered
	if m.engine.Tasks().Len() > 0 {
		cmds = append(cmds, func() tea.Msg { return drainTasksMsg{} })
	}

	cmds = append(cmds, m.pendingCmds...)
	m.pendingCmds = nil
	return m, tea.Batch(cmds...)
}

func (m *Model) applyActions(actions []inputtypes.Action) {
	for _, action := range actions {
		switch a := action.(type) {
		case inputtypes.OpenAction:
			m.engine.Open(a.Reason)
		case inputtypes.CloseAction:
			m.engine.Close(a.Cause)
		case inputtypes.ToggleAction:
			m.engine.Toggle(a.Reason)
		case inputtypes.MoveHighlightAction:
			m.engine.MoveHighlight(a.Delta)
		case inputtypes.SetHighlightAction:
			m.engine.SetHighlightedIndex(a.Index)
		case inputtypes.TypeAheadAction:
			m.engine.TypeAheadChar(a.Rune)
		case inputtypes.CommitHighlightedAction:
			m.engine.CommitHighlighted()
		case inputtypes.SelectIndexAction:
			f := m.engine.Filtered()
			if a.Index >= 0 && a.Index < len(f.Items) {
				m.engine.Select(f.Items[a.Index])
			}
		case inputtypes.RemoveLastAction:
			m.engine.RemoveLast()
		case inputtypes.RemoveChipAction:
			sel := m.engine.Selected()
			if a.Index >= 0 && a.Index < len(sel) {
				m.engine.Remove(sel[a.Index])
				m.focusHome()
			}
		case inputtypes.ClearAction:
			m.engine.Clear()
		case inputtypes.MoveChipFocusAction:
			m.engine.MoveActiveChip(a.Delta)
			if m.engine.ActiveSelectedIndex() == domain.NoIndex && m.coord.Focus() == domain.FocusChip {
				m.focusHome()
			}
		case inputtypes.SetActiveChipAction:
			m.engine.SetActiveSelectedIndex(a.Index)
		case inputtypes.FocusMoveAction:
			m.moveFocus(a.Target)
		case inputtypes.UpdateQueryAction:
			m.engine.SetSearchQuery(a.Text)
			// Typing a narrowing query reveals the candidates
			if a.Text != "" && !m.engine.IsOpen() {
				m.engine.Open(domain.OpenProgrammatic)
			}
		case inputtypes.BlurAction:
			m.engine.HandleBlur()
		}
	}

	// A select or clear may have rewritten the query engine-side;
	// keep the text input in step.
	if m.engine.SearchMode() {
		m.coord.SetQueryText(m.engine.SearchQuery())
	}
}

func (m *Model) openHelp() {
	m.helpVisible = true
	m.helpScroll = 0
	if m.reg != nil {
		m.reg.Push(input.EscapeEvent, helpWidgetID, func() { m.helpVisible = false })
	}
}

func (m *Model) closeHelp() {
	if m.reg != nil {
		m.reg.Pop(input.EscapeEvent, helpWidgetID)
	}
	m.helpVisible = false
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q", "?":
		m.closeHelp()
	case "up", "k":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	case "down", "j":
		m.helpScroll++
	case "p":
		if m.helpOps != nil {
			content := m.helpView.RenderHelpContentPlain()
			return func() tea.Msg {
				return helpPagerMsg{err: m.helpOps.ShowHelpInPager(content)}
			}
		}
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	zone, idx := m.renderer.HitTest(m.viewState(), msg.X, msg.Y)
	switch zone {
	case views.ZoneTrigger:
		m.moveFocus(m.homeTarget())
		m.engine.Toggle(domain.OpenByTriggerClick)
	case views.ZoneItem:
		f := m.engine.Filtered()
		if idx >= 0 && idx < len(f.Items) {
			m.engine.Select(f.Items[idx])
		}
	case views.ZoneChip:
		m.engine.SetActiveSelectedIndex(idx)
		m.moveFocus(domain.FocusChip)
	case views.ZoneClear:
		m.engine.Clear()
	}
}

func (m *Model) moveFocus(target domain.FocusTarget) {
	if cmd := m.coord.SetFocus(target); cmd != nil {
		m.pendingCmds = append(m.pendingCmds, cmd)
	}
	m.engine.NoteFocus(target)
}

func (m *Model) homeTarget() domain.FocusTarget {
	if m.engine.SearchMode() {
		return domain.FocusSearch
	}
	return domain.FocusTrigger
}

func (m *Model) focusHome() {
	m.engine.SetActiveSelectedIndex(domain.NoIndex)
	m.moveFocus(m.homeTarget())
}

// scrollChipsToEnd reveals the newest chip. The text input doubles as
// the chip strip's tail, so snapping its cursor to the end after the
// chips re-render is sufficient in a line-oriented layout.
func (m *Model) scrollChipsToEnd() {
	m.coord.TextInput().CursorEnd()
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	base := m.renderer.Render(m.viewState())
	if m.helpVisible {
		help := m.helpView.renderHelpContent(m.height, m.helpScroll)
		return m.popup.RenderPopupOverlay(base, help, m.height, m.width, m.renderer.Styles().Popup)
	}
	return base
}

func (m *Model) viewState() views.State {
	inputView := ""
	if m.engine.SearchMode() {
		inputView = m.coord.TextInput().View()
	}
	return views.State{
		Snapshot:     m.engine.Snapshot(),
		Focus:        m.coord.Focus(),
		InputView:    inputView,
		SearchMode:   m.engine.SearchMode(),
		Clearable:    m.engine.Clearable(),
		RTL:          m.engine.RTL(),
		TypeAhead:    m.engine.TypeAheadBuffer(),
		Announcement: m.announcement,
		Placeholder:  m.placeholder,
	}
}

// Teardown unsubscribes and cancels pending timers; safe to call once
func (m *Model) Teardown() {
	for _, unsub := range m.unsubs {
		unsub()
	}
	m.unsubs = nil
	if m.helpVisible {
		m.closeHelp()
	}
	m.coord.PopEscape()
	m.engine.Teardown()
}

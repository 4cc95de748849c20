package targets

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"droplist/internal/domain"
	"droplist/internal/ui/input/types"
)

type stubCtx struct {
	open          bool
	multiple      bool
	searchMode    bool
	clearable     bool
	moveTab       bool
	rtl           bool
	highlighted   int
	candidates    int
	selectedCount int
	activeChip    int
	query         string
	cursorAtStart bool
}

func (s *stubCtx) IsOpen() bool             { return s.open }
func (s *stubCtx) Multiple() bool           { return s.multiple }
func (s *stubCtx) SearchMode() bool         { return s.searchMode }
func (s *stubCtx) Clearable() bool          { return s.clearable }
func (s *stubCtx) MoveFocusOnTab() bool     { return s.moveTab }
func (s *stubCtx) RTL() bool                { return s.rtl }
func (s *stubCtx) HighlightedIndex() int    { return s.highlighted }
func (s *stubCtx) CandidateCount() int      { return s.candidates }
func (s *stubCtx) SelectedCount() int       { return s.selectedCount }
func (s *stubCtx) ActiveSelectedIndex() int { return s.activeChip }
func (s *stubCtx) SearchQuery() string      { return s.query }
func (s *stubCtx) CursorAtStart() bool      { return s.cursorAtStart }

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestTriggerArrowsOpenWithDirection(t *testing.T) {
	h := NewTriggerHandler()
	ctx := &stubCtx{highlighted: domain.NoIndex, candidates: 3}

	actions, consumed := h.HandleKey(key(tea.KeyDown), ctx)
	require.True(t, consumed)
	require.Len(t, actions, 1)
	assert.Equal(t, domain.OpenByDownArrow, actions[0].(types.OpenAction).Reason)

	actions, _ = h.HandleKey(key(tea.KeyUp), ctx)
	assert.Equal(t, domain.OpenByUpArrow, actions[0].(types.OpenAction).Reason)
}

func TestTriggerArrowsMoveHighlightWhileOpen(t *testing.T) {
	h := NewTriggerHandler()
	ctx := &stubCtx{open: true, highlighted: 0, candidates: 3}

	actions, _ := h.HandleKey(key(tea.KeyDown), ctx)
	assert.Equal(t, 1, actions[0].(types.MoveHighlightAction).Delta)
}

func TestTriggerEnterCommitsOrToggles(t *testing.T) {
	h := NewTriggerHandler()

	withHighlight := &stubCtx{open: true, highlighted: 1, candidates: 3}
	actions, _ := h.HandleKey(key(tea.KeyEnter), withHighlight)
	assert.IsType(t, types.CommitHighlightedAction{}, actions[0])

	closed := &stubCtx{highlighted: domain.NoIndex, candidates: 3}
	actions, _ = h.HandleKey(key(tea.KeyEnter), closed)
	assert.IsType(t, types.ToggleAction{}, actions[0])
}

func TestTriggerTypeAheadRune(t *testing.T) {
	h := NewTriggerHandler()
	ctx := &stubCtx{highlighted: domain.NoIndex, candidates: 3}

	actions, consumed := h.HandleKey(runeKey('b'), ctx)
	require.True(t, consumed)
	assert.Equal(t, 'b', actions[0].(types.TypeAheadAction).Rune)

	// Search mode has a real input; no type-ahead from the trigger
	searching := &stubCtx{searchMode: true, highlighted: domain.NoIndex}
	_, consumed = h.HandleKey(runeKey('b'), searching)
	assert.False(t, consumed)
}

func TestSearchBackspaceRemovesLastChip(t *testing.T) {
	h := NewSearchHandler()
	ctx := &stubCtx{
		multiple: true, searchMode: true,
		selectedCount: 2, cursorAtStart: true,
		highlighted: domain.NoIndex,
	}

	actions, consumed := h.HandleKey(key(tea.KeyBackspace), ctx)
	require.True(t, consumed)
	assert.IsType(t, types.RemoveLastAction{}, actions[0])
}

func TestSearchBackspaceWithTextFallsThrough(t *testing.T) {
	h := NewSearchHandler()
	ctx := &stubCtx{
		multiple: true, searchMode: true,
		selectedCount: 2, query: "ap", cursorAtStart: false,
		highlighted: domain.NoIndex,
	}

	_, consumed := h.HandleKey(key(tea.KeyBackspace), ctx)
	assert.False(t, consumed, "the text input deletes the character")
}

func TestSearchLeftEntersChipStrip(t *testing.T) {
	h := NewSearchHandler()
	ctx := &stubCtx{
		multiple: true, searchMode: true,
		selectedCount: 2, cursorAtStart: true,
		highlighted: domain.NoIndex,
	}

	actions, consumed := h.HandleKey(key(tea.KeyLeft), ctx)
	require.True(t, consumed)
	assert.Equal(t, -1, actions[0].(types.MoveChipFocusAction).Delta)
	assert.Equal(t, domain.FocusChip, actions[1].(types.FocusMoveAction).Target)
}

func TestSearchChipEntryMirroredUnderRTL(t *testing.T) {
	h := NewSearchHandler()
	ctx := &stubCtx{
		multiple: true, searchMode: true, rtl: true,
		selectedCount: 2, cursorAtStart: true,
		highlighted: domain.NoIndex,
	}

	// Under RTL the "previous chip" key is Right, not Left
	_, consumed := h.HandleKey(key(tea.KeyLeft), ctx)
	assert.False(t, consumed)

	actions, consumed := h.HandleKey(key(tea.KeyRight), ctx)
	require.True(t, consumed)
	assert.Equal(t, -1, actions[0].(types.MoveChipFocusAction).Delta)
}

func TestListEscapeClosesAndRefocusesTrigger(t *testing.T) {
	h := NewListHandler()
	ctx := &stubCtx{open: true, highlighted: 1, candidates: 3}

	actions, consumed := h.HandleKey(key(tea.KeyEsc), ctx)
	require.True(t, consumed)
	assert.IsType(t, types.CloseAction{}, actions[0])
	assert.Equal(t, domain.FocusTrigger, actions[1].(types.FocusMoveAction).Target)
}

func TestTabCommitsHighlightedCandidate(t *testing.T) {
	h := NewListHandler()
	ctx := &stubCtx{open: true, highlighted: 1, candidates: 3}

	actions, consumed := h.HandleKey(key(tea.KeyTab), ctx)
	require.True(t, consumed)
	assert.IsType(t, types.CommitHighlightedAction{}, actions[0])
}

func TestTabWithNothingToAcceptRetreats(t *testing.T) {
	h := NewListHandler()
	ctx := &stubCtx{open: true, highlighted: domain.NoIndex, candidates: 0}

	actions, _ := h.HandleKey(key(tea.KeyTab), ctx)
	assert.IsType(t, types.CloseAction{}, actions[0])
}

func TestTabMoveFocusConfigurable(t *testing.T) {
	h := NewListHandler()
	ctx := &stubCtx{open: true, highlighted: 0, candidates: 3, moveTab: true}

	actions, consumed := h.HandleKey(key(tea.KeyTab), ctx)
	// Focus also leaves the control, so the key is left unconsumed
	assert.False(t, consumed)
	assert.IsType(t, types.CommitHighlightedAction{}, actions[0])
	assert.Equal(t, domain.FocusNone, actions[1].(types.FocusMoveAction).Target)
}

func TestChipNavigationMirroredUnderRTL(t *testing.T) {
	h := NewChipsHandler()

	ltr := &stubCtx{multiple: true, activeChip: 1, selectedCount: 3}
	actions, _ := h.HandleKey(key(tea.KeyLeft), ltr)
	assert.Equal(t, -1, actions[0].(types.MoveChipFocusAction).Delta)

	rtl := &stubCtx{multiple: true, rtl: true, activeChip: 1, selectedCount: 3}
	actions, _ = h.HandleKey(key(tea.KeyLeft), rtl)
	assert.Equal(t, 1, actions[0].(types.MoveChipFocusAction).Delta)
}

func TestChipBackspaceRemovesActiveChip(t *testing.T) {
	h := NewChipsHandler()
	ctx := &stubCtx{multiple: true, activeChip: 1, selectedCount: 3}

	actions, consumed := h.HandleKey(key(tea.KeyBackspace), ctx)
	require.True(t, consumed)
	assert.Equal(t, 1, actions[0].(types.RemoveChipAction).Index)
}

func TestChipEscapeReturnsHome(t *testing.T) {
	h := NewChipsHandler()

	searching := &stubCtx{multiple: true, searchMode: true, activeChip: 0, selectedCount: 1}
	actions, _ := h.HandleKey(key(tea.KeyEsc), searching)
	assert.Equal(t, domain.NoIndex, actions[0].(types.SetActiveChipAction).Index)
	assert.Equal(t, domain.FocusSearch, actions[1].(types.FocusMoveAction).Target)

	plain := &stubCtx{multiple: true, activeChip: 0, selectedCount: 1}
	actions, _ = h.HandleKey(key(tea.KeyEsc), plain)
	assert.Equal(t, domain.FocusTrigger, actions[1].(types.FocusMoveAction).Target)
}

package combo

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"droplist/internal/debounce"
	"droplist/internal/domain"
	"droplist/internal/eventbus"
	"droplist/internal/props"
	"droplist/internal/tasks"
)

// IDs are stable per-instance element identifiers, used by the view
// layer to wire the trigger, input, listbox and live region together
// the way ARIA ids tie a combobox to its popup.
type IDs struct {
	Widget     string
	Trigger    string
	Input      string
	List       string
	LiveRegion string
}

func newIDs() IDs {
	base := uuid.NewString()[:8]
	return IDs{
		Widget:     fmt.Sprintf("droplist-%s", base),
		Trigger:    fmt.Sprintf("droplist-%s-trigger", base),
		Input:      fmt.Sprintf("droplist-%s-input", base),
		List:       fmt.Sprintf("droplist-%s-listbox", base),
		LiveRegion: fmt.Sprintf("droplist-%s-status", base),
	}
}

// Controller is the selection state machine. It owns the state bundle
// and is the only component permitted to mutate the committed value.
// All operations run synchronously; events are published only after a
// transition is fully applied.
type Controller struct {
	opts Options
	bus  eventbus.EventBus
	ids  IDs

	items []domain.Item

	open        props.Field[bool]
	selected    props.Field[[]domain.Item]
	query       props.Field[string]
	highlighted props.Field[int]
	activeChip  props.Field[int]

	pending           Pending
	focusTarget       domain.FocusTarget
	suppressBlurClose bool

	typeahead   *debounce.Signal
	announcer   *Announcer
	queue       *tasks.Queue
	scrollChips func()
}

// NewController builds a controller for items with the given options.
// The controlled/uncontrolled policy of each field is resolved here,
// once.
func NewController(bus eventbus.EventBus, opts Options, items []domain.Item) *Controller {
	c := &Controller{
		opts:        opts,
		bus:         bus,
		ids:         newIDs(),
		items:       items,
		focusTarget: domain.FocusNone,
		announcer:   NewAnnouncer(bus, opts.A11y),
		queue:       tasks.New(),
	}
	c.typeahead = debounce.NewSignal(0, nil)

	c.open = resolveField(opts.Controlled.Open, opts.Initial.Open)
	c.selected = resolveField(opts.Controlled.Selected, opts.Initial.Selected)
	c.query = resolveField(opts.Controlled.SearchQuery, opts.Initial.SearchQuery)
	c.highlighted = resolveField(opts.Controlled.HighlightedIndex, initialIndex(opts.Initial.HighlightedIndex))
	c.activeChip = resolveField(opts.Controlled.ActiveSelectedIndex, initialIndex(opts.Initial.ActiveSelectedIndex))
	return c
}

func resolveField[T any](get func() T, def T) props.Field[T] {
	if get != nil {
		return props.Controlled(get)
	}
	return props.Uncontrolled(def)
}

func initialIndex(v *int) int {
	if v == nil {
		return domain.NoIndex
	}
	return *v
}

// IDs returns the instance's element identifiers
func (c *Controller) IDs() IDs { return c.ids }

// Items returns the caller-owned item collection
func (c *Controller) Items() []domain.Item { return c.items }

// SetItems replaces the item collection. Derived state is recomputed
// on next read; an out-of-range highlight is clamped.
func (c *Controller) SetItems(items []domain.Item) {
	c.items = items
	n := len(c.Filtered().Items)
	if h := c.highlighted.Get(); h != domain.NoIndex && h >= n {
		c.highlighted.TrySet(clampCandidate(h, n))
	}
}

// Accessors for the logical state bundle

func (c *Controller) IsOpen() bool         { return c.open.Get() }
func (c *Controller) SearchQuery() string  { return c.query.Get() }
func (c *Controller) HighlightedIndex() int { return c.highlighted.Get() }
func (c *Controller) ActiveSelectedIndex() int {
	return c.activeChip.Get()
}

// Selected returns a copy of the committed value(s)
func (c *Controller) Selected() []domain.Item {
	sel := c.selected.Get()
	out := make([]domain.Item, len(sel))
	copy(out, sel)
	return out
}

// Filtered recomputes the candidate view from current state. The
// query narrows candidates only in search mode; in non-search mode it
// merely mirrors the committed value's display text.
func (c *Controller) Filtered() Filtered {
	query := ""
	if c.opts.searchMode() {
		query = c.query.Get()
	}
	return Visible(c.items, c.selected.Get(), c.opts.Multiple, query, c.opts.Filter, c.opts.toString())
}

// Snapshot builds an immutable copy of the full logical state
func (c *Controller) Snapshot() domain.Snapshot {
	return domain.Snapshot{
		Open:                c.open.Get(),
		Multiple:            c.opts.Multiple,
		Selected:            c.Selected(),
		SearchQuery:         c.query.Get(),
		HighlightedIndex:    c.highlighted.Get(),
		ActiveSelectedIndex: c.activeChip.Get(),
		Filtered:            c.Filtered().Items,
	}
}

// TypeAheadBuffer returns the live type-ahead accumulation
func (c *Controller) TypeAheadBuffer() string { return c.typeahead.Value() }

// Announcer exposes the a11y announcer for the view layer
func (c *Controller) Announcer() *Announcer { return c.announcer }

// Tasks exposes the deferred side-effect queue; the UI drains it after
// the view reflects the current transition.
func (c *Controller) Tasks() *tasks.Queue { return c.queue }

// SetChipScrollFunc registers the effect that reveals the newest chip
func (c *Controller) SetChipScrollFunc(fn func()) { c.scrollChips = fn }

// NoteFocus records where logical focus currently is. The coordinator
// calls this on every focus move so open transitions know whether the
// candidate list already has focus.
func (c *Controller) NoteFocus(target domain.FocusTarget) {
	c.focusTarget = target
}

// FocusTarget returns the last noted logical focus location
func (c *Controller) FocusTarget() domain.FocusTarget { return c.focusTarget }

// SetPendingHighlight requests a highlight for the next open
// transition, overriding the on-open default.
func (c *Controller) SetPendingHighlight(p Pending) { c.pending = p }

// Open transitions Closed to Open. Gated on having candidate items; an
// empty candidate list leaves the panel closed.
func (c *Controller) Open(reason domain.OpenReason) {
	if c.open.Get() {
		return
	}
	f := c.Filtered()
	if len(f.Items) == 0 {
		return
	}

	hl := highlightOnOpen(openContext{
		pending:        c.pending,
		highlightFirst: c.opts.HighlightFirstItemOnOpen,
		multiple:       c.opts.Multiple,
		searchMode:     c.opts.searchMode(),
		value:          c.singleValue(),
		hasValue:       c.hasSingleValue(),
		items:          c.items,
		candidates:     len(f.Items),
		reason:         reason,
		openUpward:     c.opts.OpenUpward,
	})
	c.pending = Pending{}

	c.open.TrySet(true)
	c.highlighted.TrySet(hl)

	snap := c.Snapshot()
	c.emitOpen(true, reason, causeForReason(reason), snap)

	if !c.opts.searchMode() {
		if c.focusTarget == domain.FocusList {
			// Focus already sits inside the list; re-issuing a focus
			// instruction would blur-and-refocus and the blur would
			// auto-close the panel we just opened.
			c.suppressBlurClose = true
		} else {
			c.requestFocus(domain.FocusList, snap)
		}
	}
}

// Toggle opens or closes depending on the current state
func (c *Controller) Toggle(reason domain.OpenReason) {
	if c.open.Get() {
		c.Close(causeForReason(reason))
		return
	}
	c.Open(reason)
}

// Close transitions Open to Closed. Idempotent: calling it while
// closed leaves every state field untouched and emits nothing.
func (c *Controller) Close(cause domain.Cause) {
	if !c.open.Get() {
		return
	}
	c.open.TrySet(false)
	c.highlighted.TrySet(domain.NoIndex)
	c.typeahead.Clear()

	c.emitOpen(false, "", cause, c.Snapshot())
}

// HandleBlur closes the panel unless the preceding open transition
// flagged that focus is already inside the candidate list.
func (c *Controller) HandleBlur() {
	if c.suppressBlurClose {
		c.suppressBlurClose = false
		return
	}
	c.Close(domain.CauseBlur)
}

// Select commits item. Single mode sets the value, mirrors its display
// string into the search query and closes; multi mode appends a chip,
// clears the query and stays open for further picks.
func (c *Controller) Select(item domain.Item) {
	if c.opts.Multiple {
		sel := append(c.Selected(), item)
		c.selected.TrySet(sel)

		prevQuery := c.query.Get()
		c.query.TrySet("")
		c.clampHighlight()

		snap := c.Snapshot()
		c.emitSelection([]domain.Item{item}, nil, domain.CauseSelect, snap)
		if prevQuery != "" {
			c.emitSearch("", domain.CauseSelect, snap)
		}
		c.announcer.Added(item, sel)

		// Revealing the new chip reads the final scroll extent, so it
		// runs after the view settles, not now.
		c.queue.Defer("chip-scroll", func() {
			if c.scrollChips != nil {
				c.scrollChips()
			}
		})
		return
	}

	wasOpen := c.open.Get()
	prevQuery := c.query.Get()
	newQuery := c.opts.toString()(item)

	c.selected.TrySet([]domain.Item{item})
	c.query.TrySet(newQuery)
	c.open.TrySet(false)
	c.highlighted.TrySet(domain.NoIndex)
	c.typeahead.Clear()

	snap := c.Snapshot()
	c.emitSelection([]domain.Item{item}, nil, domain.CauseSelect, snap)
	if prevQuery != newQuery {
		c.emitSearch(newQuery, domain.CauseSelect, snap)
	}
	if wasOpen {
		c.emitOpen(false, "", domain.CauseSelect, snap)
	}
	c.announcer.Added(item, snap.Selected)
	c.requestFocus(domain.FocusTrigger, snap)
}

// CommitHighlighted selects the currently highlighted candidate.
// Reports whether a commit happened.
func (c *Controller) CommitHighlighted() bool {
	if !c.open.Get() {
		return false
	}
	h := c.highlighted.Get()
	f := c.Filtered()
	if h == domain.NoIndex || h >= len(f.Items) {
		return false
	}
	c.Select(f.Items[h])
	return true
}

// Remove removes the chip for item. Multi mode only; unknown items and
// single mode are silent no-ops.
func (c *Controller) Remove(item domain.Item) {
	if !c.opts.Multiple {
		return
	}
	sel := c.Selected()
	at := domain.IndexOf(sel, item)
	if at == -1 {
		return
	}
	removed := sel[at]
	sel = append(sel[:at], sel[at+1:]...)

	c.selected.TrySet(sel)
	c.activeChip.TrySet(domain.NoIndex)
	c.clampHighlight()

	snap := c.Snapshot()
	c.emitSelection(nil, []domain.Item{removed}, domain.CauseRemove, snap)
	c.announcer.Removed(removed, sel)
}

// RemoveLast removes the final chip; no-op on an empty value
func (c *Controller) RemoveLast() {
	sel := c.selected.Get()
	if !c.opts.Multiple || len(sel) == 0 {
		return
	}
	c.Remove(sel[len(sel)-1])
}

// Clear resets the whole state bundle to its empty defaults in one
// atomic update and emits a single selection notification.
func (c *Controller) Clear() {
	removed := c.Selected()

	c.selected.TrySet(nil)
	c.query.TrySet("")
	c.highlighted.TrySet(domain.NoIndex)
	c.activeChip.TrySet(domain.NoIndex)
	c.open.TrySet(false)
	c.typeahead.Clear()

	snap := c.Snapshot()
	c.emitSelection(nil, removed, domain.CauseClear, snap)

	if c.opts.searchMode() {
		c.requestFocus(domain.FocusSearch, snap)
	} else {
		c.requestFocus(domain.FocusTrigger, snap)
	}
}

// SetSearchQuery updates the query and recomputes the highlight
// default. Erasing a query that was narrowing results force-closes the
// panel so an empty dropdown cannot linger open.
func (c *Controller) SetSearchQuery(text string) {
	prev := c.query.Get()
	if text == prev {
		return
	}
	wasNarrowing := prev != ""

	c.query.TrySet(text)
	if c.opts.HighlightFirstItemOnOpen {
		c.highlighted.TrySet(0)
	} else {
		c.highlighted.TrySet(domain.NoIndex)
	}
	c.clampHighlight()

	closed := false
	if text == "" && wasNarrowing && c.open.Get() {
		c.open.TrySet(false)
		c.highlighted.TrySet(domain.NoIndex)
		closed = true
	}

	snap := c.Snapshot()
	c.emitSearch(text, domain.CauseSearch, snap)
	if closed {
		c.emitOpen(false, "", domain.CauseSearch, snap)
	}
}

// SetActiveSelectedIndex moves chip focus. Multi mode only.
func (c *Controller) SetActiveSelectedIndex(i int) {
	if !c.opts.Multiple {
		return
	}
	n := len(c.selected.Get())
	if i != domain.NoIndex && (i < 0 || i >= n) {
		return
	}
	c.activeChip.TrySet(i)
}

// MoveActiveChip steps chip focus by delta, entering from the end when
// no chip is active. Multi mode only.
func (c *Controller) MoveActiveChip(delta int) {
	if !c.opts.Multiple {
		return
	}
	n := len(c.selected.Get())
	if n == 0 {
		return
	}
	cur := c.activeChip.Get()
	var next int
	if cur == domain.NoIndex {
		if delta < 0 {
			next = n - 1
		} else {
			return // no chip active, forward movement leaves the strip
		}
	} else {
		next = cur + delta
		if next < 0 {
			next = 0
		}
		if next >= n {
			// Stepping past the last chip returns focus to the input
			c.activeChip.TrySet(domain.NoIndex)
			return
		}
	}
	c.activeChip.TrySet(next)
}

// SetHighlightedIndex sets the highlight directly (pointer hover)
func (c *Controller) SetHighlightedIndex(i int) {
	n := len(c.Filtered().Items)
	if i != domain.NoIndex && (i < 0 || i >= n) {
		return
	}
	old := c.highlighted.Get()
	if old == i {
		return
	}
	c.highlighted.TrySet(i)
	c.bus.Publish(domain.HighlightChangedEvent{OldIndex: old, NewIndex: i, Snapshot: c.Snapshot()})
}

// MoveHighlight steps the highlight with circular wrap. Any arrow key
// invalidates the type-ahead buffer immediately.
func (c *Controller) MoveHighlight(delta int) {
	if !c.open.Get() {
		return
	}
	c.typeahead.Clear()
	n := len(c.Filtered().Items)
	old := c.highlighted.Get()
	next := moveHighlight(old, delta, n)
	if next == old {
		return
	}
	c.highlighted.TrySet(next)
	c.bus.Publish(domain.HighlightChangedEvent{OldIndex: old, NewIndex: next, Snapshot: c.Snapshot()})
}

// TypeAheadChar accumulates an alphanumeric key into the type-ahead
// buffer and jumps the highlight to the first matching candidate.
// Non-search mode only; non-alphanumeric runes clear the buffer.
func (c *Controller) TypeAheadChar(r rune) {
	if c.opts.searchMode() {
		return
	}
	if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
		c.typeahead.Clear()
		return
	}

	if !c.open.Get() {
		c.Open(domain.OpenProgrammatic)
		if !c.open.Get() {
			return
		}
	}

	buf := c.typeahead.Value()
	justStarted := buf == ""
	buf += strings.ToLower(string(r))
	c.typeahead.Set(buf)

	f := c.Filtered()
	m := typeAheadMatch(f.Projections, buf, c.highlighted.Get(), justStarted)
	if m == domain.NoIndex {
		return
	}
	old := c.highlighted.Get()
	if m == old {
		return
	}
	c.highlighted.TrySet(m)
	c.bus.Publish(domain.HighlightChangedEvent{OldIndex: old, NewIndex: m, Snapshot: c.Snapshot()})
}

// Teardown cancels both debounced signals and drops deferred tasks so
// no late callback can touch a destroyed instance.
func (c *Controller) Teardown() {
	c.typeahead.Cancel()
	c.announcer.Teardown()
	c.queue.Close()
}

// Multiple reports the instance's selection mode
func (c *Controller) Multiple() bool { return c.opts.Multiple }

// SearchMode reports whether the instance has a text input
func (c *Controller) SearchMode() bool { return c.opts.searchMode() }

// Clearable reports whether the clear affordance is configured
func (c *Controller) Clearable() bool { return c.opts.Clearable }

// MoveFocusOnTab reports whether Tab should also leave the control
func (c *Controller) MoveFocusOnTab() bool { return c.opts.MoveFocusOnTab }

// RTL reports right-to-left layout
func (c *Controller) RTL() bool { return c.opts.RTL }

func (c *Controller) singleValue() domain.Item {
	sel := c.selected.Get()
	if len(sel) == 0 {
		return domain.Item{}
	}
	return sel[0]
}

func (c *Controller) hasSingleValue() bool {
	return !c.opts.Multiple && len(c.selected.Get()) > 0
}

// clampHighlight keeps the open-panel invariant: the highlight is
// either none or a valid index into the recomputed candidate list.
func (c *Controller) clampHighlight() {
	h := c.highlighted.Get()
	if h == domain.NoIndex {
		return
	}
	n := len(c.Filtered().Items)
	if h >= n {
		c.highlighted.TrySet(clampCandidate(h, n))
	}
}

func (c *Controller) emitOpen(open bool, reason domain.OpenReason, cause domain.Cause, snap domain.Snapshot) {
	e := domain.OpenChangedEvent{Open: open, Reason: reason, Cause: cause, Snapshot: snap}
	c.bus.Publish(e)
	if c.opts.OnOpenChange != nil {
		c.opts.OnOpenChange(e)
	}
}

func (c *Controller) emitSearch(query string, cause domain.Cause, snap domain.Snapshot) {
	e := domain.SearchChangedEvent{Query: query, Cause: cause, Snapshot: snap}
	c.bus.Publish(e)
	if c.opts.OnSearchQueryChange != nil {
		c.opts.OnSearchQueryChange(e)
	}
}

func (c *Controller) emitSelection(added, removed []domain.Item, cause domain.Cause, snap domain.Snapshot) {
	e := domain.SelectionChangedEvent{Added: added, Removed: removed, Cause: cause, Snapshot: snap}
	c.bus.Publish(e)
	if c.opts.OnSelectedChange != nil {
		c.opts.OnSelectedChange(e)
	}
}

func (c *Controller) requestFocus(target domain.FocusTarget, snap domain.Snapshot) {
	c.focusTarget = target
	c.bus.Publish(domain.FocusRequestedEvent{Target: target, Snapshot: snap})
}

func causeForReason(reason domain.OpenReason) domain.Cause {
	switch reason {
	case domain.OpenByTriggerClick:
		return domain.CausePointer
	case domain.OpenProgrammatic:
		return domain.CauseProgram
	default:
		return domain.CauseKeyboard
	}
}

package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"droplist/internal/domain"
)

// State is everything the renderer needs for one frame
type State struct {
	Snapshot     domain.Snapshot
	Focus        domain.FocusTarget
	InputView    string // textinput.View() in search mode, "" otherwise
	SearchMode   bool
	Clearable    bool
	RTL          bool
	TypeAhead    string
	Announcement string
	ToString     domain.ItemToString
	Placeholder  string
}

// Zone identifies what a pointer click landed on
type Zone int

const (
	ZoneNone Zone = iota
	ZoneTrigger
	ZoneChip
	ZoneClear
	ZoneItem
)

// Renderer draws the combobox from a logical state; it never mutates
// engine state.
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a renderer with default styles
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles exposes the style set for customization
func (r *Renderer) Styles() *Styles { return r.styles }

// Render produces the full widget: trigger line, open panel, status
// line. The layout is line-oriented so HitTest can map clicks back.
func (r *Renderer) Render(st State) string {
	var b strings.Builder
	b.WriteString(r.renderTrigger(st))

	if st.Snapshot.Open {
		for i, it := range st.Snapshot.Filtered {
			b.WriteString("\n")
			b.WriteString(r.renderItem(st, it, i))
		}
	}

	if st.Announcement != "" {
		b.WriteString("\n")
		b.WriteString(r.styles.Status.Render(st.Announcement))
	}
	return b.String()
}

func (r *Renderer) renderTrigger(st State) string {
	toString := st.ToString
	if toString == nil {
		toString = domain.DefaultItemToString
	}

	segments := make([]string, 0, len(st.Snapshot.Selected)+3)

	chips := r.chipStrings(st, toString)
	segments = append(segments, chips...)

	if st.SearchMode {
		segments = append(segments, st.InputView)
	} else if !st.Snapshot.Multiple {
		if v, ok := st.Snapshot.SingleValue(); ok {
			segments = append(segments, r.triggerStyle(st).Render(toString(v)))
		} else {
			segments = append(segments, r.styles.Placeholder.Render(st.Placeholder))
		}
	} else if len(chips) == 0 {
		segments = append(segments, r.styles.Placeholder.Render(st.Placeholder))
	}

	if st.TypeAhead != "" {
		segments = append(segments, r.styles.TypeAhead.Render("/"+st.TypeAhead))
	}
	if st.Clearable && len(st.Snapshot.Selected) > 0 {
		segments = append(segments, r.styles.ClearIcon.Render("✕"))
	}
	arrow := "▾"
	if st.Snapshot.Open {
		arrow = "▴"
	}
	segments = append(segments, r.styles.Arrow.Render(arrow))

	if st.RTL {
		for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
			segments[i], segments[j] = segments[j], segments[i]
		}
	}
	return strings.Join(segments, " ")
}

func (r *Renderer) chipStrings(st State, toString domain.ItemToString) []string {
	if !st.Snapshot.Multiple {
		return nil
	}
	chips := make([]string, len(st.Snapshot.Selected))
	for i, it := range st.Snapshot.Selected {
		style := r.styles.Chip
		if st.Focus == domain.FocusChip && i == st.Snapshot.ActiveSelectedIndex {
			style = r.styles.ChipActive
		}
		chips[i] = style.Render(toString(it))
	}
	return chips
}

func (r *Renderer) renderItem(st State, it domain.Item, index int) string {
	toString := st.ToString
	if toString == nil {
		toString = domain.DefaultItemToString
	}
	if index == st.Snapshot.HighlightedIndex {
		return r.styles.ItemHighlight.Render("▸ " + toString(it))
	}
	return r.styles.Item.Render(toString(it))
}

func (r *Renderer) triggerStyle(st State) lipgloss.Style {
	if st.Focus == domain.FocusTrigger {
		return r.styles.TriggerFocused
	}
	return r.styles.Trigger
}

// HitTest maps a pointer position in the rendered widget back to a
// logical zone. Index is the candidate index for ZoneItem and the chip
// index for ZoneChip.
func (r *Renderer) HitTest(st State, x, y int) (Zone, int) {
	if y == 0 {
		if zone, idx := r.hitTrigger(st, x); zone != ZoneNone {
			return zone, idx
		}
		return ZoneTrigger, 0
	}
	if st.Snapshot.Open {
		idx := y - 1
		if idx >= 0 && idx < len(st.Snapshot.Filtered) {
			return ZoneItem, idx
		}
	}
	return ZoneNone, 0
}

// hitTrigger resolves chip and clear-icon clicks by walking the
// rendered segment widths on the trigger line.
func (r *Renderer) hitTrigger(st State, x int) (Zone, int) {
	toString := st.ToString
	if toString == nil {
		toString = domain.DefaultItemToString
	}

	pos := 0
	if st.Snapshot.Multiple && !st.RTL {
		for i, it := range st.Snapshot.Selected {
			w := lipgloss.Width(r.styles.Chip.Render(toString(it)))
			if x >= pos && x < pos+w {
				return ZoneChip, i
			}
			pos += w + 1
		}
	}
	if st.Clearable && len(st.Snapshot.Selected) > 0 {
		line := r.renderTrigger(st)
		// The clear icon sits just before the trailing arrow
		clearAt := lipgloss.Width(line) - 3
		if x >= clearAt && x < clearAt+1 {
			return ZoneClear, 0
		}
	}
	return ZoneNone, 0
}

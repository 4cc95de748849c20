package combo

import (
	"strings"

	"droplist/internal/domain"
)

// Pending is the tri-state "highlight requested for the next open
// transition". Index 0 is a legitimate pending value, so unset and
// explicit-none are distinct states rather than zero sentinels.
type Pending struct {
	set   bool
	index int
}

// PendingAt requests a specific index for the next open
func PendingAt(index int) Pending {
	return Pending{set: true, index: index}
}

// PendingNone requests that no candidate be highlighted on open
func PendingNone() Pending {
	return Pending{set: true, index: domain.NoIndex}
}

// IsSet reports whether a pending request exists
func (p Pending) IsSet() bool { return p.set }

// openContext carries everything the on-open highlight default needs
type openContext struct {
	pending        Pending
	highlightFirst bool
	multiple       bool
	searchMode     bool
	value          domain.Item
	hasValue       bool
	items          []domain.Item // full unfiltered collection
	candidates     int           // len of filtered view
	reason         domain.OpenReason
	openUpward     bool
}

// highlightOnOpen decides the highlighted index for a closed-to-open
// transition. First match wins; an empty candidate list always yields
// NoIndex.
func highlightOnOpen(ctx openContext) int {
	if ctx.candidates == 0 {
		return domain.NoIndex
	}

	if ctx.pending.IsSet() {
		return clampCandidate(ctx.pending.index, ctx.candidates)
	}

	if ctx.highlightFirst {
		return 0
	}

	if !ctx.multiple && !ctx.searchMode && ctx.hasValue {
		at := domain.IndexOf(ctx.items, ctx.value)
		if at >= 0 {
			offset := 1
			if ctx.openUpward {
				offset = -1
			}
			return wrapIndex(at+offset, ctx.candidates)
		}
	}

	switch ctx.reason {
	case domain.OpenByDownArrow:
		return 0
	case domain.OpenByUpArrow:
		return ctx.candidates - 1
	}

	return domain.NoIndex
}

// wrapIndex wraps i into [0, n): below zero wraps to the last
// candidate, at/above n wraps to 0.
func wrapIndex(i, n int) int {
	if n <= 0 {
		return domain.NoIndex
	}
	if i < 0 {
		return n - 1
	}
	if i >= n {
		return 0
	}
	return i
}

func clampCandidate(i, n int) int {
	if i == domain.NoIndex || n == 0 {
		return domain.NoIndex
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// moveHighlight advances the highlight by delta with circular wrap.
// With no current highlight, down starts at the top and up at the
// bottom.
func moveHighlight(current, delta, candidates int) int {
	if candidates == 0 {
		return domain.NoIndex
	}
	if current == domain.NoIndex {
		if delta > 0 {
			return 0
		}
		return candidates - 1
	}
	next := current + delta
	if next < 0 {
		return candidates - 1
	}
	if next >= candidates {
		return 0
	}
	return next
}

// typeAheadMatch finds the first candidate whose projection starts
// with buffer, scanning forward from the position after highlighted
// (or from 0 when nothing is highlighted or the buffer was just
// started), wrapping to a scan from 0. Returns NoIndex when nothing
// matches anywhere, which leaves the highlight unchanged.
func typeAheadMatch(projections []string, buffer string, highlighted int, justStarted bool) int {
	if len(projections) == 0 || buffer == "" {
		return domain.NoIndex
	}
	needle := strings.ToLower(buffer)

	start := 0
	if highlighted != domain.NoIndex && !justStarted {
		start = highlighted + 1
	}

	for i := start; i < len(projections); i++ {
		if strings.HasPrefix(projections[i], needle) {
			return i
		}
	}
	for i := 0; i < start && i < len(projections); i++ {
		if strings.HasPrefix(projections[i], needle) {
			return i
		}
	}
	return domain.NoIndex
}

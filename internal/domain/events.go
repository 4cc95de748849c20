package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventOpenChanged      EventType = "OpenChanged"
	EventSearchChanged    EventType = "SearchChanged"
	EventSelectionChanged EventType = "SelectionChanged"
	EventHighlightChanged EventType = "HighlightChanged"
	EventAnnouncement     EventType = "Announcement"
	EventFocusRequested   EventType = "FocusRequested"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// OpenChangedEvent is emitted when the panel opens or closes
type OpenChangedEvent struct {
	Open     bool
	Reason   OpenReason
	Cause    Cause
	Snapshot Snapshot
}

func (e OpenChangedEvent) Type() EventType { return EventOpenChanged }

// SearchChangedEvent is emitted when the search query changes
type SearchChangedEvent struct {
	Query    string
	Cause    Cause
	Snapshot Snapshot
}

func (e SearchChangedEvent) Type() EventType { return EventSearchChanged }

// SelectionChangedEvent is emitted when the committed value changes
type SelectionChangedEvent struct {
	Added    []Item
	Removed  []Item
	Cause    Cause
	Snapshot Snapshot
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// HighlightChangedEvent is emitted when the highlighted candidate moves
type HighlightChangedEvent struct {
	OldIndex int
	NewIndex int
	Snapshot Snapshot
}

func (e HighlightChangedEvent) Type() EventType { return EventHighlightChanged }

// AnnouncementEvent carries a transient status string for assistive
// technology; an empty Text clears the live region.
type AnnouncementEvent struct {
	Text string
}

func (e AnnouncementEvent) Type() EventType { return EventAnnouncement }

// FocusRequestedEvent asks the UI layer to move logical focus. The
// engine only issues targets mounted in the state it just produced;
// callers must check Open before acting on FocusList.
type FocusRequestedEvent struct {
	Target   FocusTarget
	Snapshot Snapshot
}

func (e FocusRequestedEvent) Type() EventType { return EventFocusRequested }

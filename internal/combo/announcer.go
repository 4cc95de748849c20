package combo

import (
	"droplist/internal/debounce"
	"droplist/internal/domain"
	"droplist/internal/eventbus"
)

// Announcer formats selection changes into transient status text for
// assistive technology. The text rides a debounced signal so it is
// announced once and the live region then empties, preventing stale
// re-announcement on unrelated re-renders.
type Announcer struct {
	bus    eventbus.EventBus
	msgs   A11yMessages
	signal *debounce.Signal
}

// NewAnnouncer creates an announcer publishing on bus. With no
// formatters configured it stays silent.
func NewAnnouncer(bus eventbus.EventBus, msgs A11yMessages) *Announcer {
	a := &Announcer{bus: bus, msgs: msgs}
	a.signal = debounce.NewSignal(0, func() {
		bus.Publish(domain.AnnouncementEvent{Text: ""})
	})
	return a
}

// Added announces a committed selection
func (a *Announcer) Added(item domain.Item, selected []domain.Item) {
	if a.msgs.OnAdd == nil {
		return
	}
	a.announce(a.msgs.OnAdd(item, selected))
}

// Removed announces a removed chip
func (a *Announcer) Removed(item domain.Item, selected []domain.Item) {
	if a.msgs.OnRemove == nil {
		return
	}
	a.announce(a.msgs.OnRemove(item, selected))
}

func (a *Announcer) announce(text string) {
	if text == "" {
		return
	}
	a.signal.Set(text)
	a.bus.Publish(domain.AnnouncementEvent{Text: text})
}

// Text returns the currently live announcement ("" once expired)
func (a *Announcer) Text() string {
	return a.signal.Value()
}

// Teardown cancels the pending clear timer
func (a *Announcer) Teardown() {
	a.signal.Cancel()
}

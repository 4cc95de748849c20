package combo

import (
	"droplist/internal/domain"
)

// A11yMessages holds caller-supplied formatters for assistive
// technology announcements. Nil callbacks disable the announcement.
type A11yMessages struct {
	OnAdd    func(item domain.Item, selected []domain.Item) string
	OnRemove func(item domain.Item, selected []domain.Item) string
}

// Controlled wires an externally owned state field. Leave a getter nil
// to let the engine manage that field internally.
type Controlled struct {
	Open                func() bool
	Selected            func() []domain.Item
	SearchQuery         func() string
	HighlightedIndex    func() int
	ActiveSelectedIndex func() int
}

// Initial seeds internally managed fields. The index fields are
// pointers so that an explicit initial 0 is distinguishable from
// "none": nil means no highlight / no active chip.
type Initial struct {
	Open                bool
	Selected            []domain.Item
	SearchQuery         string
	HighlightedIndex    *int
	ActiveSelectedIndex *int
}

// Options is the recognized configuration surface of a combobox
// instance. Mode flags are fixed for the instance's lifetime.
type Options struct {
	Multiple  bool
	Search    bool
	Filter    FilterFunc // implies Search; replaces built-in matching
	Clearable bool

	HighlightFirstItemOnOpen bool
	MoveFocusOnTab           bool
	RTL                      bool
	OpenUpward               bool

	ItemToString domain.ItemToString
	A11y         A11yMessages

	Controlled Controlled
	Initial    Initial

	// Emitted notifications; each fires after the transition is fully
	// applied and carries the cause plus the post-transition snapshot.
	OnOpenChange        func(domain.OpenChangedEvent)
	OnSearchQueryChange func(domain.SearchChangedEvent)
	OnSelectedChange    func(domain.SelectionChangedEvent)
}

// searchMode reports whether the instance has a text input
func (o Options) searchMode() bool {
	return o.Search || o.Filter != nil
}

func (o Options) toString() domain.ItemToString {
	if o.ItemToString != nil {
		return o.ItemToString
	}
	return domain.DefaultItemToString
}

package domain

// NoIndex is the sentinel for "no highlighted / no active index"
const NoIndex = -1

// OpenReason says what initiated an open transition; the highlight
// default on open depends on it.
type OpenReason string

const (
	OpenByDownArrow    OpenReason = "down-arrow"
	OpenByUpArrow      OpenReason = "up-arrow"
	OpenProgrammatic   OpenReason = "programmatic"
	OpenByTriggerClick OpenReason = "trigger-click"
)

// Cause identifies what triggered a state change notification
type Cause string

const (
	CauseKeyboard Cause = "keyboard"
	CausePointer  Cause = "pointer"
	CauseSelect   Cause = "select"
	CauseRemove   Cause = "remove"
	CauseClear    Cause = "clear"
	CauseSearch   Cause = "search"
	CauseBlur     Cause = "blur"
	CauseProgram  Cause = "programmatic"
)

// FocusTarget names the logical focus locations inside the control
type FocusTarget string

const (
	FocusTrigger FocusTarget = "trigger"
	FocusSearch  FocusTarget = "search"
	FocusList    FocusTarget = "list"
	FocusChip    FocusTarget = "chip"
	FocusNone    FocusTarget = "none"
)

// Snapshot is an immutable copy of the logical state bundle. Every
// emitted event carries one so observers never see a half-applied
// transition.
type Snapshot struct {
	Open                bool
	Multiple            bool
	Selected            []Item // 0..1 entries in single mode, chips in multi
	SearchQuery         string
	HighlightedIndex    int // index into Filtered, NoIndex when none
	ActiveSelectedIndex int // chip focus index into Selected, NoIndex when none
	Filtered            []Item
}

// SingleValue returns the committed item in single-select mode
func (s Snapshot) SingleValue() (Item, bool) {
	if len(s.Selected) == 0 {
		return Item{}, false
	}
	return s.Selected[0], true
}

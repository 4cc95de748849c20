package input

import (
	"droplist/internal/combo"
)

// EngineContext implements types.Context over a live controller and
// coordinator pair
type EngineContext struct {
	Engine *combo.Controller
	Coord  *Coordinator
}

func (c *EngineContext) IsOpen() bool          { return c.Engine.IsOpen() }
func (c *EngineContext) Multiple() bool        { return c.Engine.Multiple() }
func (c *EngineContext) SearchMode() bool      { return c.Engine.SearchMode() }
func (c *EngineContext) Clearable() bool       { return c.Engine.Clearable() }
func (c *EngineContext) MoveFocusOnTab() bool  { return c.Engine.MoveFocusOnTab() }
func (c *EngineContext) RTL() bool             { return c.Engine.RTL() }
func (c *EngineContext) HighlightedIndex() int { return c.Engine.HighlightedIndex() }

func (c *EngineContext) CandidateCount() int {
	return len(c.Engine.Filtered().Items)
}

func (c *EngineContext) SelectedCount() int {
	return len(c.Engine.Selected())
}

func (c *EngineContext) ActiveSelectedIndex() int {
	return c.Engine.ActiveSelectedIndex()
}

func (c *EngineContext) SearchQuery() string {
	return c.Engine.SearchQuery()
}

func (c *EngineContext) CursorAtStart() bool {
	return c.Coord.CursorAtStart()
}

package domain

import "fmt"

// ItemKind distinguishes the two item shapes
type ItemKind int

const (
	KindPrimitive ItemKind = iota
	KindRecord
)

// Item represents one selectable option. Items are either a bare string
// (primitive) or a record with a display header plus free-form fields.
// Equality is by Key when set, otherwise by kind + display text.
type Item struct {
	Kind   ItemKind
	Text   string            // primitive value
	Header string            // record display header
	Fields map[string]string // extra record fields, opaque to the engine
	Key    string            // optional explicit identity key ("" = derive)
}

// NewPrimitive creates a primitive item
func NewPrimitive(text string) Item {
	return Item{Kind: KindPrimitive, Text: text}
}

// NewRecord creates a record item with a display header
func NewRecord(header string, fields map[string]string) Item {
	return Item{Kind: KindRecord, Header: header, Fields: fields}
}

// String returns the display projection of the item
func (it Item) String() string {
	switch it.Kind {
	case KindRecord:
		return it.Header
	default:
		return it.Text
	}
}

// Identity returns the comparison key for the item
func (it Item) Identity() string {
	if it.Key != "" {
		return it.Key
	}
	return fmt.Sprintf("%d:%s", it.Kind, it.String())
}

// Equal reports whether two items refer to the same option
func (it Item) Equal(other Item) bool {
	return it.Identity() == other.Identity()
}

// ItemToString converts an item to its display string. A nil fn falls
// back to Item.String.
type ItemToString func(Item) string

// DefaultItemToString is the engine default projection
func DefaultItemToString(it Item) string {
	return it.String()
}

// IndexOf returns the position of item in items, or -1
func IndexOf(items []Item, item Item) int {
	for i, it := range items {
		if it.Equal(item) {
			return i
		}
	}
	return -1
}

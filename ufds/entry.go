package ufds

import "strings"

// Entry is a directory entry as returned from a search.
type Entry struct {
	// DN is the entry's distinguished name as sent by the server.
	DN string
	// Attributes maps attribute names to their values in server order.
	Attributes map[string][]string
}

// First returns the first value of the attribute, or "" when absent.
func (e *Entry) First(attribute string) string {
	values := e.Attributes[attribute]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// Values returns all values of the attribute.
func (e *Entry) Values(attribute string) []string {
	return e.Attributes[attribute]
}

// Bool parses the attribute as a boolean. "true" (any case) and "1" read as
// true; anything else, including absence, reads as false.
func (e *Entry) Bool(attribute string) bool {
	value := e.First(attribute)
	return strings.EqualFold(value, "true") || value == "1"
}

// ModOp enumerates directory modification operations.
type ModOp int

// Modification operations.
const (
	ModAdd ModOp = iota
	ModDelete
	ModReplace
)

// Modification is a single attribute change applied to an entry.
type Modification struct {
	Op        ModOp
	Attribute string
	// Values to add, delete, or replace. An empty delete removes the
	// whole attribute.
	Values []string
}

package yini

import "fmt"

// A ParseError reports a malformed line in a YINI document. It carries
// the 1-based line number and the raw text of the offending line.
type ParseError struct {
	Line    int
	Text    string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Message, e.Text)
}

// A TypeError reports a coercion between incompatible value types,
// for example requesting AsInt on an array.
type TypeError struct {
	Want Kind
	Got  Kind
	Text string // the uncoercible literal, for string coercions
}

func (e *TypeError) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("cannot convert %q to %s", e.Text, e.Want)
	}
	return fmt.Sprintf("cannot convert %s to %s", e.Got, e.Want)
}

// A NotFoundError reports a strict lookup of a property or child
// section that does not exist. It is distinct from TypeError so
// callers can tell "missing" from "wrong type".
type NotFoundError struct {
	Kind string // "property" or "section"
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Name)
}

package yini

import (
	"iter"
	"maps"
	"slices"
)

// A Section is one node of the configuration tree: a set of key/value
// properties plus named child sections. Keys and child names are
// unique within a node, and each child belongs to exactly one parent.
//
// Properties and children remember insertion order so that
// serialization is deterministic.
//
// Sections are not safe for concurrent mutation; callers sharing a
// tree across goroutines must synchronize access themselves.
type Section struct {
	props    []property
	propIdx  map[string]int
	children []child
	childIdx map[string]int
}

type property struct {
	key   string
	value Value
}

type child struct {
	name    string
	section *Section
}

// NewSection returns an empty section.
func NewSection() *Section {
	return &Section{
		propIdx:  map[string]int{},
		childIdx: map[string]int{},
	}
}

// Set stores value under key, overwriting any previous value.
func (s *Section) Set(key string, value Value) {
	if i, ok := s.propIdx[key]; ok {
		s.props[i].value = value
		return
	}
	s.propIdx[key] = len(s.props)
	s.props = append(s.props, property{key: key, value: value})
}

// Get returns the value stored under key. A missing key returns a
// [NotFoundError], never a [TypeError].
func (s *Section) Get(key string) (Value, error) {
	if i, ok := s.propIdx[key]; ok {
		return s.props[i].value, nil
	}
	return Value{}, &NotFoundError{Kind: "property", Name: key}
}

// Lookup returns the value stored under key, if present. Unlike
// [Section.Child] it never modifies the tree.
func (s *Section) Lookup(key string) (Value, bool) {
	i, ok := s.propIdx[key]
	if !ok {
		return Value{}, false
	}
	return s.props[i].value, true
}

// Has reports whether a property with the given key exists.
func (s *Section) Has(key string) bool {
	_, ok := s.propIdx[key]
	return ok
}

// Child returns the child section with the given name, creating an
// empty one if it does not exist yet.
func (s *Section) Child(name string) *Section {
	if i, ok := s.childIdx[name]; ok {
		return s.children[i].section
	}
	sub := NewSection()
	s.childIdx[name] = len(s.children)
	s.children = append(s.children, child{name: name, section: sub})
	return sub
}

// GetChild returns the child section with the given name. A missing
// name returns a [NotFoundError]; the tree is never modified.
func (s *Section) GetChild(name string) (*Section, error) {
	if i, ok := s.childIdx[name]; ok {
		return s.children[i].section, nil
	}
	return nil, &NotFoundError{Kind: "section", Name: name}
}

// LookupChild returns the child section with the given name, if
// present, without creating it.
func (s *Section) LookupChild(name string) (*Section, bool) {
	i, ok := s.childIdx[name]
	if !ok {
		return nil, false
	}
	return s.children[i].section, true
}

// HasChild reports whether a child section with the given name exists.
func (s *Section) HasChild(name string) bool {
	_, ok := s.childIdx[name]
	return ok
}

// Len returns the number of properties in this section.
func (s *Section) Len() int { return len(s.props) }

// NumChildren returns the number of child sections.
func (s *Section) NumChildren() int { return len(s.children) }

// Properties iterates over the section's key/value pairs in insertion
// order.
func (s *Section) Properties() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, p := range s.props {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// Children iterates over the section's child sections in insertion
// order.
func (s *Section) Children() iter.Seq2[string, *Section] {
	return func(yield func(string, *Section) bool) {
		for _, c := range s.children {
			if !yield(c.name, c.section) {
				return
			}
		}
	}
}

// Clear removes all properties and child sections.
func (s *Section) Clear() {
	s.props = nil
	s.propIdx = map[string]int{}
	s.children = nil
	s.childIdx = map[string]int{}
}

// Equal reports whether two sections hold the same properties and
// children, regardless of insertion order.
func (s *Section) Equal(other *Section) bool {
	if len(s.props) != len(other.props) || len(s.children) != len(other.children) {
		return false
	}
	for _, p := range s.props {
		v, ok := other.Lookup(p.key)
		if !ok || !p.value.Equal(v) {
			return false
		}
	}
	for _, c := range s.children {
		sub, ok := other.LookupChild(c.name)
		if !ok || !c.section.Equal(sub) {
			return false
		}
	}
	return true
}

// Interface converts the section tree to nested map[string]any, with
// values converted per [Value.Interface]. If a property and a child
// section share a name, the property wins.
func (s *Section) Interface() map[string]any {
	out := make(map[string]any, len(s.props)+len(s.children))
	for _, c := range s.children {
		out[c.name] = c.section.Interface()
	}
	for _, p := range s.props {
		out[p.key] = p.value.Interface()
	}
	return out
}

// FromInterface populates the section from nested map[string]any data:
// nested maps become child sections, everything else becomes a
// property converted per [ValueOf]. Existing contents are kept, so
// this can be used additively. Keys are inserted in sorted order,
// since the incoming map carries no order of its own.
func (s *Section) FromInterface(data map[string]any) error {
	for _, key := range slices.Sorted(maps.Keys(data)) {
		raw := data[key]
		if m, ok := raw.(map[string]any); ok {
			if err := s.Child(key).FromInterface(m); err != nil {
				return err
			}
			continue
		}
		v, err := ValueOf(raw)
		if err != nil {
			return err
		}
		s.Set(key, v)
	}
	return nil
}

// merge copies all properties and children of other into s,
// overwriting properties with the same key and merging sections with
// the same name.
func (s *Section) merge(other *Section) {
	for _, p := range other.props {
		s.Set(p.key, p.value)
	}
	for _, c := range other.children {
		s.Child(c.name).merge(c.section)
	}
}

package yini

// A Document is a configuration tree rooted at a single unnamed
// section. The root is created empty and is never replaced; parsing
// clears and repopulates it in place.
type Document struct {
	root *Section
}

// NewDocument returns a document with an empty root section.
func NewDocument() *Document {
	return &Document{root: NewSection()}
}

// Parse parses text into a new document. It is shorthand for
// [NewDocument] followed by [Document.Parse].
func Parse(text string) (*Document, error) {
	doc := NewDocument()
	if err := doc.Parse(text); err != nil {
		return nil, err
	}
	return doc, nil
}

// Parse replaces the document's contents with the result of parsing
// text. The previous tree is discarded first; if parsing fails the
// document is left empty, never partially populated.
func (d *Document) Parse(text string) error {
	d.root.Clear()
	if err := parseInto(d.root, text); err != nil {
		d.root.Clear()
		return err
	}
	return nil
}

// Merge parses text additively into the existing tree. Sections with
// matching names are merged and properties with matching keys are
// overwritten by the new source; everything else is kept. On error
// the tree may contain entries from lines preceding the fault.
func (d *Document) Merge(text string) error {
	return parseInto(d.root, text)
}

// Root returns the document's root section.
func (d *Document) Root() *Section { return d.root }

// Get returns the root-level value stored under key.
func (d *Document) Get(key string) (Value, error) { return d.root.Get(key) }

// Set stores a root-level value under key.
func (d *Document) Set(key string, value Value) { d.root.Set(key, value) }

// Section returns the named top-level section, creating it if needed.
func (d *Document) Section(name string) *Section { return d.root.Child(name) }

// Equal reports whether two documents hold equal trees.
func (d *Document) Equal(other *Document) bool { return d.root.Equal(other.root) }

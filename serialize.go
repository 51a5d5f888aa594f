package yini

import (
	"strconv"
	"strings"
)

// Serialize emits the document as canonical YINI text. It is a pure
// function of the tree and never fails.
//
// Strings are wrapped in single quotes without escaping, so a string
// value that itself contains a single quote, a comment marker, or a
// newline will not survive a re-parse; numbers, booleans, nesting
// depth, and key/section names always round-trip exactly.
func (d *Document) Serialize() string {
	var b strings.Builder
	writeSection(&b, d.root, "", 0)
	return b.String()
}

// String is shorthand for [Document.Serialize].
func (d *Document) String() string { return d.Serialize() }

func writeSection(b *strings.Builder, s *Section, name string, depth int) {
	if depth > 0 {
		b.WriteString(strings.Repeat(" ", (depth-1)*4))
		b.WriteString(strings.Repeat("^", depth))
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteByte('\n')
	}

	indent := strings.Repeat(" ", depth*4)
	for key, value := range s.Properties() {
		b.WriteString(indent)
		b.WriteString(key)
		b.WriteString(" = ")
		writeValue(b, value)
		b.WriteByte('\n')
	}

	i := 0
	for childName, childSection := range s.Children() {
		// Blank separator before each section, except the first
		// top-level one.
		if depth > 0 || i > 0 {
			b.WriteByte('\n')
		}
		writeSection(b, childSection, childName, depth+1)
		i++
	}
}

func writeValue(b *strings.Builder, v Value) {
	switch v.Kind() {
	case KindString:
		b.WriteByte('\'')
		b.WriteString(v.str)
		b.WriteByte('\'')
	case KindBool:
		if v.flag {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindInt:
		b.WriteString(strconv.FormatInt(v.num, 10))
	case KindFloat:
		b.WriteString(formatFloat(v.real))
	case KindArray:
		b.WriteByte('[')
		for i, elem := range v.arr {
			if i > 0 {
				b.WriteString(", ")
			}
			writeValue(b, elem)
		}
		b.WriteByte(']')
	}
}

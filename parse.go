package yini

import (
	"iter"
	"regexp"
	"strconv"
	"strings"
)

var lineRegexp = regexp.MustCompile("\r\n|\r|\n")

func lines(input string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		lno := 1
		for match := lineRegexp.FindStringIndex(input); match != nil; match = lineRegexp.FindStringIndex(input) {
			if !yield(lno, input[:match[0]]) {
				return
			}
			input = input[match[1]:]
			lno++
		}
		yield(lno, input)
	}
}

// stripBlockComments removes every /* ... */ span, including the
// markers, left to right. An unterminated /* discards everything from
// the marker to the end of the input.
func stripBlockComments(text string) string {
	var b strings.Builder
	for {
		i := strings.Index(text, "/*")
		if i < 0 {
			b.WriteString(text)
			return b.String()
		}
		b.WriteString(text[:i])
		j := strings.Index(text[i+2:], "*/")
		if j < 0 {
			return b.String()
		}
		text = text[i+2+j+2:]
	}
}

// stripLineComment discards everything from the first // to the end of
// the line. The scan does not track quote state, so a // inside a
// quoted literal is still treated as a comment start.
func stripLineComment(line string) string {
	if i := strings.Index(line, "//"); i >= 0 {
		return line[:i]
	}
	return line
}

// StripComments removes block and line comments from text. It is a
// pure transform applied by [Parse] before tokenizing; exposed for
// callers that want to preprocess without parsing.
func StripComments(text string) string {
	var b strings.Builder
	for lno, line := range lines(stripBlockComments(text)) {
		if lno > 1 {
			b.WriteByte('\n')
		}
		b.WriteString(stripLineComment(line))
	}
	return b.String()
}

// caretRun counts the carets at the start of a line. Zero means the
// line is an assignment; N >= 1 means a section header at depth N.
func caretRun(line string) int {
	n := 0
	for n < len(line) && line[n] == '^' {
		n++
	}
	return n
}

// ParseLiteral parses a single trimmed literal into a [Value].
//
// Resolution order: quoted string (quotes stripped, no escapes),
// bracketed array (elements split on top-level commas and parsed
// recursively), boolean keyword, number (a "." selects float over
// int), and finally bare text. A literal that fits none of the typed
// forms is accepted verbatim as a string, so ParseLiteral never fails.
func ParseLiteral(text string) Value {
	if len(text) >= 2 {
		first, last := text[0], text[len(text)-1]
		if (first == '\'' && last == '\'') || (first == '"' && last == '"') {
			return String(text[1 : len(text)-1])
		}
		if first == '[' && last == ']' {
			var elems []Value
			for _, seg := range splitTopLevel(text[1 : len(text)-1]) {
				seg = strings.TrimSpace(seg)
				if seg == "" {
					continue
				}
				elems = append(elems, ParseLiteral(seg))
			}
			return Array(elems...)
		}
	}
	if b, ok := boolKeyword(text); ok {
		return Bool(b)
	}
	if strings.Contains(text, ".") {
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return Float(f)
		}
	} else if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return Int(n)
	}
	return String(text)
}

// splitTopLevel splits array content on commas that are outside any
// nested brackets or quotes, so nested array and quoted-string
// segments survive intact for recursive parsing.
func splitTopLevel(s string) []string {
	var segs []string
	depth := 0
	var quote byte
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '[':
			depth++
		case c == ']':
			if depth > 0 {
				depth--
			}
		case c == ',' && depth == 0:
			segs = append(segs, s[start:i])
			start = i + 1
		}
	}
	return append(segs, s[start:])
}

// parseInto parses text into root. Section headers move a depth stack
// of section names; assignment lines store a parsed literal into the
// section the stack addresses, creating intermediate sections on the
// way. The first malformed line aborts with a [ParseError].
func parseInto(root *Section, text string) error {
	var stack []string
	for lno, raw := range lines(stripBlockComments(text)) {
		line := strings.TrimSpace(stripLineComment(raw))
		if line == "" {
			continue
		}

		if depth := caretRun(line); depth > 0 {
			name := strings.TrimSpace(line[depth:])
			if name == "" {
				return &ParseError{Line: lno, Text: line, Message: "empty section name"}
			}
			// A header at depth N closes any deeper open sections. A
			// depth that skips levels nests directly under whatever
			// shallower section is open.
			if n := depth - 1; n < len(stack) {
				stack = stack[:n]
			}
			stack = append(stack, name)
			continue
		}

		key, rest, found := strings.Cut(line, "=")
		if !found {
			return &ParseError{Line: lno, Text: line, Message: "missing '=' in assignment"}
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return &ParseError{Line: lno, Text: line, Message: "empty key"}
		}

		target := root
		for _, name := range stack {
			target = target.Child(name)
		}
		target.Set(key, ParseLiteral(strings.TrimSpace(rest)))
	}
	return nil
}

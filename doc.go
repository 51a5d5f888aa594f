// Package yini implements parsing and serializing of the YINI
// configuration format.
//
// YINI is an INI-derived, human-authored format. Sections nest by
// repeating a caret marker, values are typed, and both line and block
// comments are supported:
//
//	// application config
//	debug = off
//
//	^ server
//	host = 'localhost'
//	port = 8080
//
//	^^ limits
//	max_connections = 1000
//	timeouts = [1.5, 3.0, 10.0]
//
// A caret run of length N opens a section nested N levels deep, so
// "limits" above is a child of "server". Scalar literals are inferred
// as strings, integers, floats, or booleans; bracketed literals become
// arrays whose elements may themselves be any value, including nested
// arrays.
//
// [Parse] converts text into a [Document], a tree of [Section] nodes
// holding typed [Value] properties. [Document.Serialize] walks the
// tree and emits canonical YINI text; parsing that text back yields an
// equivalent tree for any document whose string values avoid quote and
// comment-marker characters.
//
//	doc, err := yini.Parse(data)
//	if err != nil { ... }
//	port, err := doc.Section("server").Get("port")
//
// Comments and original formatting are not preserved across a
// parse/serialize round trip; the writer always emits canonical form.
package yini

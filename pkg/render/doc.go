// Package render converts vdom trees to HTML.
//
// The renderer produces deterministic output: attributes are sorted by
// name and style maps are serialized in key order. Text nodes and
// attribute values are escaped; Raw nodes are written verbatim.
package render

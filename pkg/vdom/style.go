package vdom

import (
	"sort"
	"strings"
)

// Style is a set of inline CSS declarations keyed by property name.
// Styles are plain data: positioning layers compute them, components pass
// them through, and renderers serialize them with CSS().
type Style map[string]string

// CSS serializes the style to an inline declaration list.
// Properties are emitted in sorted order so output is deterministic.
func (s Style) CSS() string {
	if len(s) == 0 {
		return ""
	}

	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf strings.Builder
	for i, k := range keys {
		if i > 0 {
			buf.WriteString("; ")
		}
		buf.WriteString(k)
		buf.WriteString(": ")
		buf.WriteString(s[k])
	}
	return buf.String()
}

// Merge returns a new Style with overrides applied on top of s.
// Neither input is modified.
func (s Style) Merge(overrides Style) Style {
	merged := make(Style, len(s)+len(overrides))
	for k, v := range s {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// Clone returns a copy of the style.
func (s Style) Clone() Style {
	if s == nil {
		return nil
	}
	c := make(Style, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}

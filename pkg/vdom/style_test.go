package vdom

import (
	"reflect"
	"testing"
)

func TestStyleCSSIsSortedAndDeterministic(t *testing.T) {
	s := Style{
		"top":      "0",
		"position": "fixed",
		"left":     "1rem",
	}
	want := "left: 1rem; position: fixed; top: 0"
	if got := s.CSS(); got != want {
		t.Fatalf("CSS() = %q, want %q", got, want)
	}
}

func TestStyleCSSEmpty(t *testing.T) {
	if got := (Style{}).CSS(); got != "" {
		t.Fatalf("CSS() = %q, want empty", got)
	}
	if got := (Style)(nil).CSS(); got != "" {
		t.Fatalf("nil CSS() = %q, want empty", got)
	}
}

func TestStyleMergeDoesNotMutate(t *testing.T) {
	base := Style{"top": "0", "right": "0"}
	overrides := Style{"top": "2rem", "background": "black"}

	merged := base.Merge(overrides)

	if !reflect.DeepEqual(base, Style{"top": "0", "right": "0"}) {
		t.Fatalf("base mutated: %v", base)
	}
	want := Style{"top": "2rem", "right": "0", "background": "black"}
	if !reflect.DeepEqual(merged, want) {
		t.Fatalf("merged = %v, want %v", merged, want)
	}
}

func TestStyleClone(t *testing.T) {
	s := Style{"color": "red"}
	c := s.Clone()
	c["color"] = "blue"
	if s["color"] != "red" {
		t.Fatalf("clone shares storage with original")
	}
	if (Style)(nil).Clone() != nil {
		t.Fatal("Clone of nil should be nil")
	}
}

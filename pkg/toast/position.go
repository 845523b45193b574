package toast

import (
	"errors"
	"fmt"
	"strings"

	"github.com/glaze-ui/glaze/pkg/vdom"
)

// Position is a fixed screen-corner/edge anchor for notification stacking.
type Position string

const (
	Top         Position = "top"
	TopLeft     Position = "top-left"
	TopRight    Position = "top-right"
	Bottom      Position = "bottom"
	BottomLeft  Position = "bottom-left"
	BottomRight Position = "bottom-right"
)

// allPositions is the canonical ordering used for iteration and region
// output. Keeping a fixed order makes snapshot traversal deterministic.
var allPositions = []Position{Top, TopLeft, TopRight, Bottom, BottomLeft, BottomRight}

// Positions returns all six positions in canonical order.
// The returned slice is a copy and may be modified by the caller.
func Positions() []Position {
	out := make([]Position, len(allPositions))
	copy(out, allPositions)
	return out
}

// ErrInvalidPosition is returned when an operation names a position outside
// the fixed set. Position values are a programming error, so they are
// rejected at the API boundary before any state changes.
var ErrInvalidPosition = errors.New("toast: invalid position")

// ParsePosition converts a string to a Position, rejecting unknown values.
func ParsePosition(s string) (Position, error) {
	p := Position(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
	return p, nil
}

// Valid reports whether p is one of the six fixed positions.
func (p Position) Valid() bool {
	switch p {
	case Top, TopLeft, TopRight, Bottom, BottomLeft, BottomRight:
		return true
	default:
		return false
	}
}

// IsTop reports whether p is anchored to the top of the viewport.
// Top-anchored stacks grow downward with the newest entry first, so this
// predicate decides the insertion side for new notifications.
func (p Position) IsTop() bool {
	return strings.Contains(string(p), "top")
}

// String implements fmt.Stringer.
func (p Position) String() string {
	return string(p)
}

// Insets are the distances reserved between the viewport edges and
// notification regions. Values are CSS lengths.
type Insets struct {
	Top    string
	Bottom string
	Left   string
	Right  string
}

// DefaultInsets respects device safe areas with a 1rem fallback.
func DefaultInsets() Insets {
	return Insets{
		Top:    "max(env(safe-area-inset-top), 1rem)",
		Bottom: "max(env(safe-area-inset-bottom), 1rem)",
		Left:   "max(env(safe-area-inset-left), 1rem)",
		Right:  "max(env(safe-area-inset-right), 1rem)",
	}
}

// Style computes the geometry for a notification region anchored at p.
//
// Every region is fixed to the viewport. The vertical inset follows the
// anchor edge; the right inset applies unless the position includes "left",
// and the left inset applies unless it includes "right". The plain Top and
// Bottom positions center their stack horizontally.
func (p Position) Style(in Insets) vdom.Style {
	s := vdom.Style{
		"position":       "fixed",
		"display":        "flex",
		"flex-direction": "column",
		"pointer-events": "none",
	}

	if p.IsTop() {
		s["top"] = in.Top
	} else {
		s["bottom"] = in.Bottom
	}
	if !strings.Contains(string(p), "left") {
		s["right"] = in.Right
	}
	if !strings.Contains(string(p), "right") {
		s["left"] = in.Left
	}
	if p == Top || p == Bottom {
		s["align-items"] = "center"
	}

	return s
}

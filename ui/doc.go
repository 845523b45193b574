// Package ui provides Glaze's form-input components: thin declarative
// wrappers that compose vdom nodes and wire accessibility attributes.
//
// Components are configured with functional options and return plain
// *vdom.VNode values:
//
//	ui.Input(
//	    ui.InputName("email"),
//	    ui.InputType("email"),
//	    ui.InputPlaceholder("you@example.com"),
//	    ui.InputRequired(true),
//	)
//
// Field composes a label, an input, and an error line with the
// aria-describedby association handled automatically.
package ui

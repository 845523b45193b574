// Package vdom defines the view-descriptor model used throughout Glaze.
//
// A VNode describes a visual node: an element with attributes and children,
// a text node, a fragment, or a nested component. VNodes are plain data;
// drawing them is the job of a rendering collaborator such as pkg/render or
// a connected live client.
//
// Elements are built with constructor functions that accept a mixed argument
// list:
//
//	vdom.Div(
//	    vdom.ID("greeting"),
//	    vdom.Class("card"),
//	    vdom.Span("Hello, world"),
//	)
//
// Arguments may be attributes, event handlers, child nodes, strings
// (shorthand for text nodes), Style maps, components, or nil (ignored, which
// makes conditional attributes convenient).
package vdom

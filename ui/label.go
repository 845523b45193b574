package ui

import (
	"github.com/glaze-ui/glaze/pkg/vdom"
)

// LabelOption configures a Label component.
type LabelOption func(*labelConfig)

type labelConfig struct {
	forID     string
	required  bool
	className string
	text      string
}

// LabelFor sets the for attribute (associates with an input by id).
func LabelFor(id string) LabelOption {
	return func(c *labelConfig) {
		c.forID = id
	}
}

// LabelRequired shows a required indicator.
func LabelRequired(required bool) LabelOption {
	return func(c *labelConfig) {
		c.required = required
	}
}

// LabelClass adds additional CSS classes.
func LabelClass(className string) LabelOption {
	return func(c *labelConfig) {
		c.className = className
	}
}

// LabelText sets the label text.
func LabelText(text string) LabelOption {
	return func(c *labelConfig) {
		c.text = text
	}
}

// Label renders a label element.
func Label(opts ...LabelOption) *vdom.VNode {
	var cfg labelConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	attrs := []any{
		vdom.Class(CN("glaze-label", cfg.className)),
	}
	if cfg.forID != "" {
		attrs = append(attrs, vdom.For(cfg.forID))
	}
	if cfg.text != "" {
		attrs = append(attrs, cfg.text)
	}
	if cfg.required {
		attrs = append(attrs, vdom.Span(
			vdom.Class("glaze-label-required"),
			vdom.AriaHidden(true),
			"*",
		))
	}

	return vdom.Label(attrs...)
}

package ui

import (
	"github.com/glaze-ui/glaze/pkg/vdom"
)

// CheckboxOption configures a Checkbox component.
type CheckboxOption func(*checkboxConfig)

type checkboxConfig struct {
	id        string
	name      string
	checked   bool
	disabled  bool
	className string
	label     string
	onChange  func(bool)
}

// CheckboxID sets the element id.
func CheckboxID(id string) CheckboxOption {
	return func(c *checkboxConfig) {
		c.id = id
	}
}

// CheckboxName sets the checkbox name.
func CheckboxName(name string) CheckboxOption {
	return func(c *checkboxConfig) {
		c.name = name
	}
}

// CheckboxChecked sets the checked state.
func CheckboxChecked(checked bool) CheckboxOption {
	return func(c *checkboxConfig) {
		c.checked = checked
	}
}

// CheckboxDisabled sets the disabled state.
func CheckboxDisabled(disabled bool) CheckboxOption {
	return func(c *checkboxConfig) {
		c.disabled = disabled
	}
}

// CheckboxClass adds additional CSS classes.
func CheckboxClass(className string) CheckboxOption {
	return func(c *checkboxConfig) {
		c.className = className
	}
}

// CheckboxLabel sets a visible label rendered next to the checkbox.
func CheckboxLabel(label string) CheckboxOption {
	return func(c *checkboxConfig) {
		c.label = label
	}
}

// CheckboxOnChange sets the change event handler.
func CheckboxOnChange(handler func(bool)) CheckboxOption {
	return func(c *checkboxConfig) {
		c.onChange = handler
	}
}

// Checkbox renders a checkbox input, wrapped in a <label> when a visible
// label is configured so the text toggles the box.
func Checkbox(opts ...CheckboxOption) *vdom.VNode {
	var cfg checkboxConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	attrs := []any{
		vdom.Type("checkbox"),
		vdom.Class(CN("glaze-checkbox", cfg.className)),
	}

	if cfg.id != "" {
		attrs = append(attrs, vdom.ID(cfg.id))
	}
	if cfg.name != "" {
		attrs = append(attrs, vdom.Name(cfg.name))
	}
	if cfg.checked {
		attrs = append(attrs, vdom.Checked())
	}
	if cfg.disabled {
		attrs = append(attrs, vdom.Disabled())
	}
	if cfg.onChange != nil {
		attrs = append(attrs, vdom.OnChange(cfg.onChange))
	}

	box := vdom.Input(attrs...)
	if cfg.label == "" {
		return box
	}

	return vdom.Label(
		vdom.Class("glaze-checkbox-label"),
		box,
		vdom.Span(cfg.label),
	)
}

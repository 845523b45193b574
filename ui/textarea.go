package ui

import (
	"github.com/glaze-ui/glaze/pkg/vdom"
)

// TextareaOption configures a Textarea component.
type TextareaOption func(*textareaConfig)

type textareaConfig struct {
	id          string
	name        string
	placeholder string
	value       string
	rows        int
	disabled    bool
	required    bool
	readonly    bool
	invalid     bool
	className   string
	onInput     func(string)
	onChange    func(string)
}

func defaultTextareaConfig() textareaConfig {
	return textareaConfig{
		rows: 3,
	}
}

// TextareaID sets the element id.
func TextareaID(id string) TextareaOption {
	return func(c *textareaConfig) {
		c.id = id
	}
}

// TextareaName sets the textarea name.
func TextareaName(name string) TextareaOption {
	return func(c *textareaConfig) {
		c.name = name
	}
}

// TextareaPlaceholder sets the placeholder text.
func TextareaPlaceholder(placeholder string) TextareaOption {
	return func(c *textareaConfig) {
		c.placeholder = placeholder
	}
}

// TextareaValue sets the textarea value.
func TextareaValue(value string) TextareaOption {
	return func(c *textareaConfig) {
		c.value = value
	}
}

// TextareaRows sets the number of visible rows.
func TextareaRows(rows int) TextareaOption {
	return func(c *textareaConfig) {
		c.rows = rows
	}
}

// TextareaDisabled sets the disabled state.
func TextareaDisabled(disabled bool) TextareaOption {
	return func(c *textareaConfig) {
		c.disabled = disabled
	}
}

// TextareaRequired sets the required state and wires aria-required.
func TextareaRequired(required bool) TextareaOption {
	return func(c *textareaConfig) {
		c.required = required
	}
}

// TextareaReadonly sets the readonly state.
func TextareaReadonly(readonly bool) TextareaOption {
	return func(c *textareaConfig) {
		c.readonly = readonly
	}
}

// TextareaInvalid marks the textarea as failing validation.
func TextareaInvalid(invalid bool) TextareaOption {
	return func(c *textareaConfig) {
		c.invalid = invalid
	}
}

// TextareaClass adds additional CSS classes.
func TextareaClass(className string) TextareaOption {
	return func(c *textareaConfig) {
		c.className = className
	}
}

// TextareaOnInput sets the input event handler.
func TextareaOnInput(handler func(string)) TextareaOption {
	return func(c *textareaConfig) {
		c.onInput = handler
	}
}

// TextareaOnChange sets the change event handler.
func TextareaOnChange(handler func(string)) TextareaOption {
	return func(c *textareaConfig) {
		c.onChange = handler
	}
}

// Textarea renders a textarea element.
func Textarea(opts ...TextareaOption) *vdom.VNode {
	cfg := defaultTextareaConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	attrs := []any{
		vdom.Class(CN("glaze-textarea", cfg.className)),
		vdom.Rows(cfg.rows),
	}

	if cfg.id != "" {
		attrs = append(attrs, vdom.ID(cfg.id))
	}
	if cfg.name != "" {
		attrs = append(attrs, vdom.Name(cfg.name))
	}
	if cfg.placeholder != "" {
		attrs = append(attrs, vdom.Placeholder(cfg.placeholder))
	}
	if cfg.disabled {
		attrs = append(attrs, vdom.Disabled())
	}
	if cfg.required {
		attrs = append(attrs, vdom.Required(), vdom.AriaRequired(true))
	}
	if cfg.readonly {
		attrs = append(attrs, vdom.Readonly())
	}
	if cfg.invalid {
		attrs = append(attrs, vdom.AriaInvalid(true))
	}
	if cfg.onInput != nil {
		attrs = append(attrs, vdom.OnInput(cfg.onInput))
	}
	if cfg.onChange != nil {
		attrs = append(attrs, vdom.OnChange(cfg.onChange))
	}
	if cfg.value != "" {
		attrs = append(attrs, cfg.value)
	}

	return vdom.Textarea(attrs...)
}

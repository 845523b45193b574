package ui

import (
	"github.com/glaze-ui/glaze/pkg/vdom"
)

// InputOption configures an Input component.
type InputOption func(*inputConfig)

type inputConfig struct {
	id          string
	inputType   string
	name        string
	placeholder string
	value       string
	disabled    bool
	required    bool
	readonly    bool
	invalid     bool
	describedBy string
	label       string
	className   string
	onInput     func(string)
	onChange    func(string)
}

func defaultInputConfig() inputConfig {
	return inputConfig{
		inputType: "text",
	}
}

// InputID sets the element id.
func InputID(id string) InputOption {
	return func(c *inputConfig) {
		c.id = id
	}
}

// InputType sets the input type (text, email, password, etc.).
func InputType(t string) InputOption {
	return func(c *inputConfig) {
		c.inputType = t
	}
}

// InputName sets the input name attribute.
func InputName(name string) InputOption {
	return func(c *inputConfig) {
		c.name = name
	}
}

// InputPlaceholder sets the placeholder text.
func InputPlaceholder(placeholder string) InputOption {
	return func(c *inputConfig) {
		c.placeholder = placeholder
	}
}

// InputValue sets the input value.
func InputValue(value string) InputOption {
	return func(c *inputConfig) {
		c.value = value
	}
}

// InputDisabled sets the disabled state.
func InputDisabled(disabled bool) InputOption {
	return func(c *inputConfig) {
		c.disabled = disabled
	}
}

// InputRequired sets the required state and wires aria-required.
func InputRequired(required bool) InputOption {
	return func(c *inputConfig) {
		c.required = required
	}
}

// InputReadonly sets the readonly state.
func InputReadonly(readonly bool) InputOption {
	return func(c *inputConfig) {
		c.readonly = readonly
	}
}

// InputInvalid marks the input as failing validation and wires aria-invalid.
func InputInvalid(invalid bool) InputOption {
	return func(c *inputConfig) {
		c.invalid = invalid
	}
}

// InputDescribedBy associates the input with the id of a description or
// error element via aria-describedby.
func InputDescribedBy(id string) InputOption {
	return func(c *inputConfig) {
		c.describedBy = id
	}
}

// InputLabel sets an accessible label for inputs without a visible <label>.
func InputLabel(label string) InputOption {
	return func(c *inputConfig) {
		c.label = label
	}
}

// InputClass adds additional CSS classes.
func InputClass(className string) InputOption {
	return func(c *inputConfig) {
		c.className = className
	}
}

// InputOnInput sets the input event handler.
func InputOnInput(handler func(string)) InputOption {
	return func(c *inputConfig) {
		c.onInput = handler
	}
}

// InputOnChange sets the change event handler.
func InputOnChange(handler func(string)) InputOption {
	return func(c *inputConfig) {
		c.onChange = handler
	}
}

// Input renders an input element.
func Input(opts ...InputOption) *vdom.VNode {
	cfg := defaultInputConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	attrs := []any{
		vdom.Class(CN("glaze-input", cfg.className)),
		vdom.Type(cfg.inputType),
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
	if cfg.value != "" {
		attrs = append(attrs, vdom.Value(cfg.value))
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
	if cfg.describedBy != "" {
		attrs = append(attrs, vdom.AriaDescribedBy(cfg.describedBy))
	}
	if cfg.label != "" {
		attrs = append(attrs, vdom.AriaLabel(cfg.label))
	}
	if cfg.onInput != nil {
		attrs = append(attrs, vdom.OnInput(cfg.onInput))
	}
	if cfg.onChange != nil {
		attrs = append(attrs, vdom.OnChange(cfg.onChange))
	}

	return vdom.Input(attrs...)
}

// EmailInput is a convenience wrapper for email inputs.
func EmailInput(opts ...InputOption) *vdom.VNode {
	return Input(append([]InputOption{InputType("email")}, opts...)...)
}

// PasswordInput is a convenience wrapper for password inputs.
func PasswordInput(opts ...InputOption) *vdom.VNode {
	return Input(append([]InputOption{InputType("password")}, opts...)...)
}

// SearchInput is a convenience wrapper for search inputs.
func SearchInput(opts ...InputOption) *vdom.VNode {
	return Input(append([]InputOption{InputType("search")}, opts...)...)
}

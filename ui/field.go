package ui

import (
	"github.com/glaze-ui/glaze/pkg/vdom"
)

// FieldOption configures a Field composition.
type FieldOption func(*fieldConfig)

type fieldConfig struct {
	id        string
	label     string
	errorText string
	required  bool
	className string
	inputOpts []InputOption
}

// FieldID sets the input id the label and error line hang off.
func FieldID(id string) FieldOption {
	return func(c *fieldConfig) {
		c.id = id
	}
}

// FieldLabel sets the visible label text.
func FieldLabel(label string) FieldOption {
	return func(c *fieldConfig) {
		c.label = label
	}
}

// FieldError sets the validation error text. A non-empty error marks the
// input invalid and associates the error line via aria-describedby.
func FieldError(text string) FieldOption {
	return func(c *fieldConfig) {
		c.errorText = text
	}
}

// FieldRequired marks the field as required.
func FieldRequired(required bool) FieldOption {
	return func(c *fieldConfig) {
		c.required = required
	}
}

// FieldClass adds additional CSS classes to the wrapper.
func FieldClass(className string) FieldOption {
	return func(c *fieldConfig) {
		c.className = className
	}
}

// FieldInput forwards options to the underlying Input.
func FieldInput(opts ...InputOption) FieldOption {
	return func(c *fieldConfig) {
		c.inputOpts = append(c.inputOpts, opts...)
	}
}

// Field composes a label, an input, and an error line. The accessibility
// associations (for, aria-invalid, aria-describedby) are wired from the
// field id, so callers only describe intent.
func Field(opts ...FieldOption) *vdom.VNode {
	cfg := fieldConfig{id: "field"}
	for _, opt := range opts {
		opt(&cfg)
	}

	errorID := cfg.id + "-error"

	inputOpts := []InputOption{
		InputID(cfg.id),
		InputRequired(cfg.required),
	}
	if cfg.errorText != "" {
		inputOpts = append(inputOpts, InputInvalid(true), InputDescribedBy(errorID))
	}
	inputOpts = append(inputOpts, cfg.inputOpts...)

	return vdom.Div(
		vdom.Class(CN("glaze-field", cfg.className)),
		vdom.When(cfg.label != "", func() *vdom.VNode {
			return Label(
				LabelFor(cfg.id),
				LabelText(cfg.label),
				LabelRequired(cfg.required),
			)
		}),
		Input(inputOpts...),
		vdom.When(cfg.errorText != "", func() *vdom.VNode {
			return vdom.P(
				vdom.ID(errorID),
				vdom.Class("glaze-field-error"),
				vdom.Role("alert"),
				cfg.errorText,
			)
		}),
	)
}

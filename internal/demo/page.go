package demo

import (
	"github.com/glaze-ui/glaze/pkg/toast"
	"github.com/glaze-ui/glaze/pkg/vdom"
	"github.com/glaze-ui/glaze/ui"
)

// notifyButton builds a demo button that sends a notify command.
func notifyButton(label, message, position, status, duration string) *vdom.VNode {
	args := []any{
		vdom.Data("op", "notify"),
		vdom.Data("message", message),
		label,
	}
	if position != "" {
		args = append(args, vdom.Data("position", position))
	}
	if status != "" {
		args = append(args, vdom.Data("status", status))
	}
	if duration != "" {
		args = append(args, vdom.Data("duration", duration))
	}
	return vdom.Button(args...)
}

// buildPage composes the demo page: a small form built from the ui
// components plus controls that exercise every toast operation.
func buildPage(m *toast.Manager) *vdom.VNode {
	return vdom.Html(
		vdom.Lang("en"),
		vdom.Head(
			vdom.Meta(vdom.Charset("utf-8")),
			vdom.Title("glaze demo"),
			vdom.StyleEl(vdom.Raw(pageCSS)),
		),
		vdom.Body(
			vdom.Main(
				vdom.H1("glaze demo"),

				vdom.Form(
					ui.Field(
						ui.FieldID("email"),
						ui.FieldLabel("Email"),
						ui.FieldRequired(true),
						ui.FieldInput(
							ui.InputType("email"),
							ui.InputName("email"),
							ui.InputPlaceholder("you@example.com"),
						),
					),
					ui.Field(
						ui.FieldID("name"),
						ui.FieldLabel("Name"),
						ui.FieldError("Name is required"),
					),
					vdom.Div(
						vdom.Class("glaze-field"),
						ui.Label(ui.LabelFor("bio"), ui.LabelText("Bio")),
						ui.Textarea(ui.TextareaID("bio"), ui.TextareaName("bio"), ui.TextareaRows(4)),
					),
					ui.Checkbox(ui.CheckboxID("subscribe"), ui.CheckboxLabel("Subscribe to updates")),
				),

				vdom.Div(
					vdom.Class("controls"),
					notifyButton("Top toast", "Saved.", "", "success", ""),
					notifyButton("Bottom-right error", "Something broke.", "bottom-right", "error", ""),
					notifyButton("Warning, 3s", "Heads up.", "top-right", "warning", "3000"),
					notifyButton("Info, bottom", "For your information.", "bottom", "info", ""),
					vdom.Button(vdom.Data("op", "closeAll"), "Close all"),
				),
			),

			toast.NewHost(m),
			vdom.Script(vdom.Raw(clientJS)),
		),
	)
}

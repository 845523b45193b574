package toast

import (
	"time"

	"github.com/glaze-ui/glaze/pkg/vdom"
)

// Status is a severity tag for a notification. The core does not interpret
// it beyond passing it to view descriptors; renderers typically map it to
// colors and icons.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
	StatusWarning Status = "warning"
	StatusInfo    Status = "info"
)

// Notification is one transient message instance. It is a plain value type:
// copying it is cheap and the Manager never shares a Notification between
// snapshots once a field differs.
type Notification struct {
	// ID is unique among currently tracked notifications.
	ID string

	// Message is the content to render. It is opaque to the manager;
	// renderers accept strings, *vdom.VNode, or vdom.Component.
	Message any

	// Position anchors the notification to a screen corner or edge.
	// Immutable after creation.
	Position Position

	// Status is an optional severity tag.
	Status Status

	// Duration is the auto-dismiss interval. Zero means the notification
	// persists until explicitly closed.
	Duration time.Duration

	// RequestClose marks the notification as leaving. Once true it never
	// reverts; the exit animation ends in removal.
	RequestClose bool

	// OnCloseComplete runs once after the notification has been removed.
	OnCloseComplete func()

	// ContainerStyle is an opaque style override passed through to the
	// view descriptor untouched.
	ContainerStyle vdom.Style

	// onRequestRemove is the removal capability bound at creation. It is
	// invoked by the presentation layer when the exit animation finishes
	// and deletes this notification from its position's sequence.
	onRequestRemove func()
}

// options collects the optional Notification fields. Fields are pointers so
// Update can distinguish "not supplied" from a zero value and merge only
// what the caller set.
type options struct {
	id              *string
	position        *Position
	message         *any
	status          *Status
	duration        *time.Duration
	onCloseComplete *func()
	containerStyle  *vdom.Style
}

// Option configures a notification at creation (Notify) or mutation
// (Update) time. Options not supplied leave the corresponding field
// untouched.
type Option func(*options)

// WithID supplies an explicit identifier instead of consulting the
// allocator. No uniqueness check is performed: a duplicate id shadows the
// older notification in lookups until one of them is removed.
func WithID(id string) Option {
	return func(o *options) {
		o.id = &id
	}
}

// WithPosition anchors the notification to the given position.
// Honored only by Notify; a notification cannot change position after
// creation, so Update ignores this option.
func WithPosition(p Position) Option {
	return func(o *options) {
		o.position = &p
	}
}

// WithMessage replaces the message content. Mostly useful with Update;
// Notify already takes the message as its first argument.
func WithMessage(msg any) Option {
	return func(o *options) {
		o.message = &msg
	}
}

// WithStatus sets the severity tag.
func WithStatus(s Status) Option {
	return func(o *options) {
		o.status = &s
	}
}

// WithDuration sets the auto-dismiss interval. Zero disables auto-dismiss.
func WithDuration(d time.Duration) Option {
	return func(o *options) {
		o.duration = &d
	}
}

// WithOnCloseComplete registers a callback that runs once the notification
// has been fully removed.
func WithOnCloseComplete(fn func()) Option {
	return func(o *options) {
		o.onCloseComplete = &fn
	}
}

// WithContainerStyle sets a style override carried on the view descriptor.
func WithContainerStyle(s vdom.Style) Option {
	return func(o *options) {
		o.containerStyle = &s
	}
}

// collect applies opts to an empty options record.
func collect(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// mergeInto shallow-merges the supplied fields into n. Identity and position
// are never merged here: the id is fixed by Notify and the position bucket
// is part of the notification's identity in the store.
func (o options) mergeInto(n *Notification) {
	if o.message != nil {
		n.Message = *o.message
	}
	if o.status != nil {
		n.Status = *o.status
	}
	if o.duration != nil {
		n.Duration = *o.duration
	}
	if o.onCloseComplete != nil {
		n.OnCloseComplete = *o.onCloseComplete
	}
	if o.containerStyle != nil {
		n.ContainerStyle = *o.containerStyle
	}
}

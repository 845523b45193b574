package toast

import (
	"fmt"

	"github.com/glaze-ui/glaze/pkg/vdom"
)

// ToastView is the view descriptor for a single notification: everything a
// rendering collaborator needs to draw it and drive its exit.
type ToastView struct {
	// ID keys the node across snapshots so reordering a sequence never
	// replays an enter animation for an already-visible notification.
	ID string

	// Message is the opaque render payload.
	Message any

	// Status is the severity tag.
	Status Status

	// Style is the per-notification style override, passed through
	// untouched from WithContainerStyle.
	Style vdom.Style

	// Closing is true once the notification has been asked to leave.
	// The renderer should play its exit animation and then call
	// OnExitComplete.
	Closing bool

	// OnExitComplete is the removal capability bound to this notification.
	// The renderer must invoke it exactly once, when the exit animation
	// finishes; the manager tolerates late or duplicate invocations as
	// no-ops.
	OnExitComplete func()
}

// Region is the ordered view-descriptor list for one screen position,
// with the computed geometry for the region container.
type Region struct {
	Position Position
	Style    vdom.Style
	Toasts   []ToastView
}

// Bridge translates manager snapshots into view descriptors. It holds only
// a read reference to the manager's state; the sole mutation it performs is
// invoking a notification's removal capability on exit completion.
type Bridge struct {
	m *Manager
}

// NewBridge creates a Bridge over the given manager.
func NewBridge(m *Manager) *Bridge {
	return &Bridge{m: m}
}

// Manager returns the manager this bridge reads from.
func (b *Bridge) Manager() *Manager {
	return b.m
}

// Regions produces one Region per position, in canonical order, from the
// current snapshot. All six regions are always present so region identity
// stays stable for the renderer; empty regions simply carry no toasts.
func (b *Bridge) Regions() []Region {
	return b.RegionsFor(b.m.Snapshot())
}

// RegionsFor is Regions computed from an explicit snapshot, for observers
// that already hold one (e.g. a Subscribe callback).
func (b *Bridge) RegionsFor(snap Snapshot) []Region {
	insets := b.m.Insets()
	regions := make([]Region, 0, len(allPositions))

	for _, p := range allPositions {
		seq := snap.Get(p)
		views := make([]ToastView, 0, len(seq))
		for _, n := range seq {
			views = append(views, ToastView{
				ID:             n.ID,
				Message:        n.Message,
				Status:         n.Status,
				Style:          n.ContainerStyle,
				Closing:        n.RequestClose,
				OnExitComplete: n.onRequestRemove,
			})
		}
		regions = append(regions, Region{
			Position: p,
			Style:    p.Style(insets),
			Toasts:   views,
		})
	}

	return regions
}

// CompleteExit resolves the removal capability for id. External renderers
// that cannot hold Go callbacks (e.g. a browser client reporting over a
// socket) use this entry point instead of ToastView.OnExitComplete.
// Unknown ids are a no-op.
func (b *Bridge) CompleteExit(id string) {
	snap := b.m.Snapshot()
	p, idx, ok := snap.Find(id)
	if !ok {
		return
	}
	snap.Get(p)[idx].onRequestRemove()
}

// Host renders the full toast overlay as a vdom tree. It implements
// vdom.Component, so it can be embedded anywhere in a page.
type Host struct {
	bridge *Bridge
}

// NewHost creates a Host over the given manager.
func NewHost(m *Manager) *Host {
	return &Host{bridge: NewBridge(m)}
}

// Bridge returns the underlying bridge.
func (h *Host) Bridge() *Bridge {
	return h.bridge
}

// Render implements vdom.Component. Regions and toasts are keyed nodes:
// the region key is its position, the toast key is the notification id.
func (h *Host) Render() *vdom.VNode {
	regions := h.bridge.Regions()

	return vdom.Div(
		vdom.ID("glaze-toasts"),
		vdom.Range(regions, func(r Region, _ int) *vdom.VNode {
			return vdom.Div(
				vdom.Key("region-"+string(r.Position)),
				vdom.Class("glaze-toast-region"),
				vdom.Data("position", string(r.Position)),
				r.Style,
				vdom.Range(r.Toasts, func(tv ToastView, _ int) *vdom.VNode {
					return tv.Node()
				}),
			)
		}),
	)
}

// Node builds the vdom node for one notification. Error toasts announce
// assertively; everything else stays polite.
func (tv ToastView) Node() *vdom.VNode {
	role, live := "status", "polite"
	if tv.Status == StatusError {
		role, live = "alert", "assertive"
	}

	return vdom.Div(
		vdom.Key(tv.ID),
		vdom.Class("glaze-toast"),
		vdom.Role(role),
		vdom.AriaLive(live),
		vdom.AriaAtomic(true),
		statusAttr(tv.Status),
		closingAttr(tv.Closing),
		tv.Style,
		messageNode(tv.Message),
	)
}

func statusAttr(s Status) any {
	if s == "" {
		return nil
	}
	return vdom.Data("status", string(s))
}

func closingAttr(closing bool) any {
	if !closing {
		return nil
	}
	return vdom.Data("closing", "true")
}

// messageNode converts an opaque message payload into a renderable node.
func messageNode(msg any) *vdom.VNode {
	switch v := msg.(type) {
	case nil:
		return vdom.Nothing()
	case *vdom.VNode:
		return v
	case vdom.Component:
		return v.Render()
	case string:
		return vdom.Span(vdom.Class("glaze-toast-message"), v)
	default:
		return vdom.Span(vdom.Class("glaze-toast-message"), fmt.Sprintf("%v", v))
	}
}

// Package toast manages transient on-screen notifications for Glaze
// applications.
//
// A Manager tracks every active notification in an immutable Snapshot: one
// ordered sequence per screen position. All lifecycle operations (Notify,
// Update, Close, CloseAll) produce a new snapshot atomically, so observers
// never see a partially applied transition.
//
//	m := toast.NewManager()
//
//	id, _ := m.Notify("Changes saved", toast.WithStatus(toast.StatusSuccess))
//	m.Close(id)
//
// Closing a notification does not remove it. Close marks it as leaving
// (RequestClose) so the rendering collaborator can play an exit animation;
// the notification is deleted from the snapshot only when the collaborator
// reports the animation finished, via Bridge.CompleteExit or the bound
// removal callback on its view descriptor.
//
// Stacking follows the "newest closest to the screen edge" rule: new
// notifications are prepended in top-anchored positions and appended in
// bottom-anchored ones.
//
// The Bridge translates snapshots into ordered view descriptors (one Region
// per position, geometry included), and Host renders them as keyed vdom
// nodes for server-side rendering or live streaming.
package toast

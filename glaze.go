// Package glaze is a UI component toolkit for Go web applications.
//
// It bundles form components (ui), a toast notification manager
// (pkg/toast), a minimal virtual DOM (pkg/vdom) with an HTML renderer
// (pkg/render), and a WebSocket hub (pkg/live) that pushes toast state to
// browsers.
//
// This package offers a process-wide default toast manager for
// applications that do not need to wire their own:
//
//	id, _ := glaze.Notify("saved", toast.WithStatus(toast.StatusSuccess))
//	glaze.Close(id)
package glaze

import (
	"sync"

	"github.com/glaze-ui/glaze/pkg/toast"
)

var (
	defaultMu      sync.Mutex
	defaultManager *toast.Manager
)

// Default returns the process-wide toast manager, creating it on first use.
func Default() *toast.Manager {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultManager == nil {
		defaultManager = toast.NewManager()
	}
	return defaultManager
}

// SetDefault replaces the process-wide toast manager. Useful for attaching
// a configured manager (logger, metrics, custom insets) at startup.
func SetDefault(m *toast.Manager) {
	defaultMu.Lock()
	defaultManager = m
	defaultMu.Unlock()
}

// Notify shows a notification on the default manager.
func Notify(message any, opts ...toast.Option) (string, error) {
	return Default().Notify(message, opts...)
}

// Update merges options into an existing notification on the default manager.
func Update(id string, opts ...toast.Option) {
	Default().Update(id, opts...)
}

// Close asks a notification on the default manager to leave.
func Close(id string) {
	Default().Close(id)
}

// CloseAll asks every notification in the given positions to leave.
// With no arguments it affects all positions.
func CloseAll(positions ...toast.Position) error {
	return Default().CloseAll(positions...)
}

// IsActive reports whether the default manager still tracks id.
func IsActive(id string) bool {
	return Default().IsActive(id)
}

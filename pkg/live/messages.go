package live

import (
	"encoding/json"

	"github.com/glaze-ui/glaze/pkg/render"
	"github.com/glaze-ui/glaze/pkg/toast"
)

// Command op names accepted from clients.
const (
	opNotify   = "notify"
	opUpdate   = "update"
	opClose    = "close"
	opCloseAll = "closeAll"
	opExited   = "exited"
)

// command is an inbound client message. DurationMS is a pointer so a merge
// can distinguish "not supplied" from an explicit zero.
type command struct {
	Op         string   `json:"op"`
	ID         string   `json:"id,omitempty"`
	Message    string   `json:"message,omitempty"`
	Position   string   `json:"position,omitempty"`
	Status     string   `json:"status,omitempty"`
	DurationMS *int64   `json:"duration_ms,omitempty"`
	Positions  []string `json:"positions,omitempty"`
}

// toastPayload is one notification in an outbound snapshot, with its markup
// pre-rendered server side.
type toastPayload struct {
	ID      string `json:"id"`
	HTML    string `json:"html"`
	Status  string `json:"status,omitempty"`
	Closing bool   `json:"closing,omitempty"`
}

// regionPayload is one screen position in an outbound snapshot.
type regionPayload struct {
	Position string         `json:"position"`
	Style    string         `json:"style"`
	Toasts   []toastPayload `json:"toasts"`
}

// snapshotMessage is the outbound frame sent after every transition.
type snapshotMessage struct {
	Op      string          `json:"op"`
	Regions []regionPayload `json:"regions"`
}

// encodeSnapshot renders the regions of one snapshot into a wire frame.
func encodeSnapshot(r *render.Renderer, regions []toast.Region) ([]byte, error) {
	msg := snapshotMessage{
		Op:      "snapshot",
		Regions: make([]regionPayload, 0, len(regions)),
	}

	for _, region := range regions {
		rp := regionPayload{
			Position: string(region.Position),
			Style:    region.Style.CSS(),
			Toasts:   make([]toastPayload, 0, len(region.Toasts)),
		}
		for _, tv := range region.Toasts {
			html, err := r.RenderToString(tv.Node())
			if err != nil {
				return nil, err
			}
			rp.Toasts = append(rp.Toasts, toastPayload{
				ID:      tv.ID,
				HTML:    html,
				Status:  string(tv.Status),
				Closing: tv.Closing,
			})
		}
		msg.Regions = append(msg.Regions, rp)
	}

	return json.Marshal(msg)
}

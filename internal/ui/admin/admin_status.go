//go:build js && wasm

package admin

import (
	"strings"
	"time"

	"github.com/Its-donkey/archambeau-site/internal/ui/model"
)

var adminStatusClear chan struct{}

const statusAutoClearDuration = 5 * time.Second

// setAdminStatus shows a message in #status-message. Every message hides
// itself after statusAutoClearDuration unless replaced first.
func setAdminStatus(status model.Status) {
	cancelAdminStatusTimer()
	adminState.Status = status
	renderStatus()
	if strings.TrimSpace(status.Message) == "" {
		return
	}
	cancel := make(chan struct{})
	adminStatusClear = cancel
	go func(expected model.Status, done chan struct{}) {
		timer := time.NewTimer(statusAutoClearDuration)
		defer timer.Stop()
		select {
		case <-timer.C:
			if adminState.Status == expected {
				adminState.Status = model.Status{}
				renderStatus()
			}
		case <-done:
		}
	}(status, cancel)
}

func cancelAdminStatusTimer() {
	if adminStatusClear != nil {
		close(adminStatusClear)
		adminStatusClear = nil
	}
}

func renderStatus() {
	el := getDocument().Call("getElementById", "status-message")
	if !el.Truthy() {
		return
	}
	status := adminState.Status
	if status.Message == "" {
		el.Get("classList").Call("remove", "show")
		return
	}
	tone := status.Tone
	if tone == "" {
		tone = "success"
	}
	el.Set("textContent", status.Message)
	el.Set("className", "status-message show "+tone)
}

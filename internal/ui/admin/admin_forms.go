//go:build js && wasm

package admin

import (
	"context"
	"syscall/js"
	"time"

	"github.com/Its-donkey/archambeau-site/internal/ui/model"
)

func inputValue(id string) string {
	el := getDocument().Call("getElementById", id)
	if !el.Truthy() {
		return ""
	}
	return el.Get("value").String()
}

func clearInput(id string) {
	if el := getDocument().Call("getElementById", id); el.Truthy() {
		el.Set("value", "")
	}
}

func handleAddVideo() {
	title := inputValue("new-video-title")
	if err := editor.Insert(inputValue("new-video-url"), title); err != nil {
		setAdminStatus(model.Status{Tone: "error", Message: err.Error()})
		return
	}
	clearInput("new-video-url")
	clearInput("new-video-title")
	renderVideoList()
	setAdminStatus(model.Status{Tone: "success", Message: "Video added! Remember to save changes."})

	if title == "" {
		index := editor.Len() - 1
		videoID := editor.Videos()[index].VideoID
		go lookupTitle(index, videoID)
	}
}

// lookupTitle replaces a default title with the public one when the server can
// resolve it. Failures keep the default.
func lookupTitle(index int, videoID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer cancel()
	title, err := adminAPI().LookupTitle(ctx, videoID)
	if err != nil {
		if !handleAdminError(err) {
			consoleWarn("video title lookup failed", videoID, err.Error())
		}
		return
	}
	videos := editor.Videos()
	if index >= len(videos) || videos[index].VideoID != videoID || videos[index].Title != DefaultTitle(index) {
		return
	}
	if editor.SetTitle(index, title) {
		renderVideoList()
	}
}

func handleDeleteVideo(index int) {
	if !confirmAction("Are you sure you want to remove this video?") {
		return
	}
	if err := editor.Delete(index); err != nil {
		consoleWarn("delete video", err.Error())
		return
	}
	renderVideoList()
	setAdminStatus(model.Status{Tone: "success", Message: "Video removed! Remember to save changes."})
}

func handleMoveVideo(index, dir int) {
	if editor.Move(index, dir) {
		renderVideoList()
	}
}

func handleSaveVideos() {
	if adminState.Token == "" {
		setAdminStatus(model.Status{Tone: "error", Message: "Please login to save changes"})
		return
	}
	artifact, err := editor.Save()
	if err != nil {
		setAdminStatus(model.Status{Tone: "error", Message: err.Error()})
		return
	}
	adminState.Pending = &model.PendingSave{Document: artifact.Document(), Count: artifact.Count}
	renderSaveModal(artifact.Count)
}

func handleDownload() {
	pending := adminState.Pending
	if pending == nil {
		return
	}
	global := js.Global()
	parts := global.Get("Array").New(pending.Document)
	options := global.Get("Object").New()
	options.Set("type", "text/html")
	blob := global.Get("Blob").New(parts, options)
	url := global.Get("URL").Call("createObjectURL", blob)
	a := getDocument().Call("createElement", "a")
	a.Set("href", url)
	a.Set("download", ArtifactFilename)
	a.Call("click")
	global.Get("URL").Call("revokeObjectURL", url)
	setAdminStatus(model.Status{Tone: "success", Message: "Update downloaded! Follow the instructions in the file."})
}

func handleCancelVideos() {
	if editor.Dirty() && !confirmAction("Discard unsaved changes?") {
		return
	}
	go loadCurrentContent()
}


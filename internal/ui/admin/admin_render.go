//go:build js && wasm

package admin

import (
	"fmt"
	"html"
	"strings"
	"syscall/js"

	"github.com/Its-donkey/archambeau-site/internal/ui/platforms/youtube"
)

// RenderAdminConsole switches between the login screen and the dashboard.
func RenderAdminConsole() {
	loginScreen := getDocument().Call("getElementById", "login-screen")
	dashboard := getDocument().Call("getElementById", "admin-dashboard")
	if !loginScreen.Truthy() || !dashboard.Truthy() {
		return
	}

	closeSaveModal()
	releaseAdminHandlers()

	authenticated := strings.TrimSpace(adminState.Token) != "" && adminState.SessionEmail != ""
	if !authenticated {
		dashboard.Get("style").Set("display", "none")
		loginScreen.Get("style").Set("display", "block")
		loginScreen.Set("innerHTML", renderAdminLoginForm())
		bindLoginEvents()
		return
	}

	loginScreen.Get("style").Set("display", "none")
	dashboard.Get("style").Set("display", "block")
	if user := getDocument().Call("getElementById", "admin-user"); user.Truthy() {
		user.Set("textContent", adminState.SessionEmail)
	}
	renderSections()
	renderVideoList()
}

func renderAdminLoginForm() string {
	var builder strings.Builder
	builder.WriteString(`<div class="login-box"><h1>Admin Login</h1>`)
	if !adminState.Checked {
		builder.WriteString(`<p class="admin-help">Checking session…</p></div>`)
		return builder.String()
	}
	builder.WriteString(`<form id="admin-login-form" class="admin-auth">`)
	builder.WriteString(`<div class="form-group"><label for="admin-email">Email</label>`)
	builder.WriteString(`<input type="email" id="admin-email" value="` + html.EscapeString(adminState.LoginEmail) + `" autocomplete="username" required /></div>`)
	builder.WriteString(`<div class="form-group"><label for="admin-password">Password</label>`)
	builder.WriteString(`<input type="password" id="admin-password" autocomplete="current-password" required /></div>`)
	builder.WriteString(`<button type="submit" class="btn-primary"`)
	if adminState.Loading {
		builder.WriteString(` disabled>Logging in…`)
	} else {
		builder.WriteString(`>Log in`)
	}
	builder.WriteString(`</button></form>`)
	if msg := adminState.Status.Message; msg != "" && adminState.Status.Tone == "error" {
		builder.WriteString(`<p class="form-status error">` + html.EscapeString(msg) + `</p>`)
	}
	builder.WriteString(`</div>`)
	return builder.String()
}

func renderSections() {
	section := adminState.ActiveSection
	forEachNode(getDocument().Call("querySelectorAll", ".sidebar-btn"), func(btn js.Value) {
		btn.Get("classList").Call("toggle", "active", btn.Get("dataset").Get("section").String() == section)
	})
	forEachNode(getDocument().Call("querySelectorAll", ".admin-section"), func(node js.Value) {
		node.Get("classList").Call("toggle", "active", node.Get("id").String() == "section-"+section)
	})
}

func renderVideoList() {
	container := getDocument().Call("getElementById", "video-list")
	if !container.Truthy() {
		return
	}
	videos := editor.Videos()
	if len(videos) == 0 {
		container.Set("innerHTML", `<p class="video-list-empty">No videos yet. Add your first video below.</p>`)
		return
	}
	var builder strings.Builder
	for i, v := range videos {
		builder.WriteString(fmt.Sprintf(`<div class="video-item" data-id="%d">`, v.ID))
		builder.WriteString(`<div class="video-info"><h4>` + html.EscapeString(v.Title) + `</h4>`)
		builder.WriteString(`<p>` + html.EscapeString(youtube.WatchURL(v.VideoID)) + `</p></div>`)
		builder.WriteString(`<div class="video-actions">`)
		if i > 0 {
			builder.WriteString(fmt.Sprintf(`<button type="button" class="btn-icon move-up" data-move="-1" data-index="%d" aria-label="Move up">↑</button>`, i))
		}
		if i < len(videos)-1 {
			builder.WriteString(fmt.Sprintf(`<button type="button" class="btn-icon move-down" data-move="1" data-index="%d" aria-label="Move down">↓</button>`, i))
		}
		builder.WriteString(fmt.Sprintf(`<button type="button" class="btn-icon delete" data-delete="%d" aria-label="Remove">🗑️</button>`, i))
		builder.WriteString(`</div></div>`)
	}
	container.Set("innerHTML", builder.String())
}

func renderSaveModal(count int) {
	closeSaveModal()
	modal := getDocument().Call("createElement", "div")
	modal.Set("id", "save-modal")
	modal.Set("className", "save-modal")
	modal.Set("innerHTML", fmt.Sprintf(`<div class="save-modal-box">
<h3>Changes Ready to Save!</h3>
<p>Your carousel has been updated with %d video(s).</p>
<p class="admin-help">To complete the update:</p>
<ol><li>Download the updated HTML code below</li><li>Update your media.html file</li><li>Commit and push to GitHub</li></ol>
<button type="button" class="btn-primary" data-modal-action="download">Download Update</button>
<button type="button" class="btn-cancel" data-modal-action="close">Close</button>
</div>`, count))
	getDocument().Get("body").Call("appendChild", modal)
	addAdminHandler(modal, "click", func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		target := args[0].Get("target")
		if !target.Truthy() || target.Get("dataset").IsUndefined() {
			return nil
		}
		switch target.Get("dataset").Get("modalAction").String() {
		case "download":
			handleDownload()
		case "close":
			closeSaveModal()
		}
		return nil
	})
}

func closeSaveModal() {
	if modal := getDocument().Call("getElementById", "save-modal"); modal.Truthy() {
		modal.Call("remove")
	}
}

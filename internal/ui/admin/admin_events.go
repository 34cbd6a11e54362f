//go:build js && wasm

package admin

import (
	"strconv"
	"syscall/js"
)

var (
	// adminHandlers belong to markup that is redrawn; they are released on
	// every RenderAdminConsole.
	adminHandlers []js.Func
	// staticHandlers are bound once to the page's fixed dashboard markup.
	staticHandlers []js.Func
)

func bindLoginEvents() {
	loginForm := getDocument().Call("getElementById", "admin-login-form")
	addAdminHandler(loginForm, "submit", func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			args[0].Call("preventDefault")
		}
		emailInput := getDocument().Call("getElementById", "admin-email")
		passwordInput := getDocument().Call("getElementById", "admin-password")
		if emailInput.Truthy() {
			adminState.LoginEmail = emailInput.Get("value").String()
		}
		if passwordInput.Truthy() {
			adminState.LoginPassword = passwordInput.Get("value").String()
		}
		performAdminLogin()
		return nil
	})
}

func bindStaticEvents() {
	if len(staticHandlers) > 0 {
		return
	}
	doc := getDocument()

	addStaticHandler(doc.Call("getElementById", "logout-btn"), "click", func(js.Value, []js.Value) any {
		handleAdminLogout()
		return nil
	})

	forEachNode(doc.Call("querySelectorAll", ".sidebar-btn"), func(node js.Value) {
		addStaticHandler(node, "click", func(this js.Value, _ []js.Value) any {
			adminState.ActiveSection = this.Get("dataset").Get("section").String()
			renderSections()
			return nil
		})
	})

	addStaticHandler(doc.Call("getElementById", "add-video-btn"), "click", func(js.Value, []js.Value) any {
		handleAddVideo()
		return nil
	})
	addStaticHandler(doc.Call("getElementById", "save-videos-btn"), "click", func(js.Value, []js.Value) any {
		handleSaveVideos()
		return nil
	})
	addStaticHandler(doc.Call("getElementById", "cancel-videos-btn"), "click", func(js.Value, []js.Value) any {
		handleCancelVideos()
		return nil
	})

	// One delegated listener serves every redraw of the list.
	addStaticHandler(doc.Call("getElementById", "video-list"), "click", func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		button := args[0].Get("target").Call("closest", "button")
		if !button.Truthy() {
			return nil
		}
		dataset := button.Get("dataset")
		if raw := dataset.Get("delete"); raw.Type() == js.TypeString {
			if i, err := strconv.Atoi(raw.String()); err == nil {
				handleDeleteVideo(i)
			}
			return nil
		}
		if raw := dataset.Get("move"); raw.Type() == js.TypeString {
			dir, err := strconv.Atoi(raw.String())
			if err != nil {
				return nil
			}
			i, err := strconv.Atoi(dataset.Get("index").String())
			if err != nil {
				return nil
			}
			handleMoveVideo(i, dir)
		}
		return nil
	})

	addStaticHandler(js.Global(), "beforeunload", func(this js.Value, args []js.Value) any {
		if !editor.Dirty() || len(args) == 0 {
			return nil
		}
		args[0].Call("preventDefault")
		args[0].Set("returnValue", "")
		return nil
	})
}

func addAdminHandler(node js.Value, event string, handler func(js.Value, []js.Value) any) {
	if !node.Truthy() {
		return
	}
	fn := js.FuncOf(handler)
	node.Call("addEventListener", event, fn)
	adminHandlers = append(adminHandlers, fn)
}

func addStaticHandler(node js.Value, event string, handler func(js.Value, []js.Value) any) {
	if !node.Truthy() {
		return
	}
	fn := js.FuncOf(handler)
	node.Call("addEventListener", event, fn)
	staticHandlers = append(staticHandlers, fn)
}

func releaseAdminHandlers() {
	for _, fn := range adminHandlers {
		fn.Release()
	}
	adminHandlers = nil
}

func forEachNode(list js.Value, fn func(js.Value)) {
	if !list.Truthy() {
		return
	}
	length := list.Get("length").Int()
	for i := 0; i < length; i++ {
		fn(list.Index(i))
	}
}

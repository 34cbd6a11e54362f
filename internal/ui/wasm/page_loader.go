//go:build js && wasm

package wasm

import (
	"context"
	"syscall/js"

	"github.com/Its-donkey/archambeau-site/internal/ui/content"
)

// pageSession is the content state for the current page view.
type pageSession struct {
	page    content.Page
	loader  content.Loader
	caps    content.Capabilities
	loading bool
}

var session pageSession

// startPageLoader picks the loader for pathname and runs it once. A restore
// from the back/forward cache reruns it.
func startPageLoader(pathname string) {
	page := content.Dispatch(pathname)
	loader, ok := content.LoaderFor(page)
	if !ok {
		consoleLog("log", "No content loader for this page")
		return
	}
	session = pageSession{page: page, loader: loader, caps: resolveCapabilities(loader)}
	if len(session.caps) == 0 {
		consoleLog("log", "No content anchors on page", string(page))
		return
	}

	addChromeHandler(js.Global(), "pageshow", func(this js.Value, args []js.Value) any {
		if len(args) > 0 && args[0].Get("persisted").Truthy() {
			go reloadContent()
		}
		return nil
	})
	go reloadContent()
}

// resolveCapabilities records which of the loader's anchors exist. It runs
// once per page view.
func resolveCapabilities(loader content.Loader) content.Capabilities {
	caps := content.Capabilities{}
	for _, selector := range loader.Anchors {
		if querySelector(selector).Truthy() {
			caps[selector] = true
		}
	}
	return caps
}

// reloadContent fetches the page resource and applies the plan. A reload
// requested while one is in flight is dropped.
func reloadContent() {
	if session.loading {
		return
	}
	session.loading = true
	defer func() { session.loading = false }()

	consoleLog("log", "Loading content for", string(session.page))
	data, err := content.Fetch(context.Background(), nil, "", session.loader)
	if err != nil {
		consoleLog("error", "Error loading content:", err.Error())
		return
	}
	mutations, err := session.loader.Plan(data, session.caps)
	if err != nil {
		consoleLog("error", "Error loading content:", err.Error())
		return
	}
	if len(mutations) == 0 {
		return
	}
	for _, m := range mutations {
		applyMutation(m)
	}
	if session.loader.RebindsCarousel {
		carouselCtl.bind()
	}
	if session.loader.RebindsLightbox {
		bindLightbox()
	}
}

func applyMutation(m content.Mutation) {
	node := querySelector(m.Selector)
	if !node.Truthy() {
		return
	}
	switch m.Kind {
	case content.SetText:
		node.Set("textContent", m.Value)
	case content.SetHTML:
		node.Set("innerHTML", m.Value)
	case content.SetAttr:
		node.Call("setAttribute", m.Attr, m.Value)
	case content.ReplaceParagraphs:
		replaceParagraphs(node, m)
	}
}

// replaceParagraphs drops the container's paragraphs except m.After and
// inserts the new markup right after it.
func replaceParagraphs(container js.Value, m content.Mutation) {
	keep := js.Null()
	if m.After != "" {
		keep = querySelector(m.After)
	}
	var stale []js.Value
	forEachNode(container.Call("querySelectorAll", "p"), func(p js.Value) {
		if keep.Truthy() && p.Equal(keep) {
			return
		}
		stale = append(stale, p)
	})
	for _, p := range stale {
		p.Call("remove")
	}
	if keep.Truthy() {
		keep.Call("insertAdjacentHTML", "afterend", m.Value)
		return
	}
	container.Call("insertAdjacentHTML", "beforeend", m.Value)
}

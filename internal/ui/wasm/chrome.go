//go:build js && wasm

package wasm

import (
	"strconv"
	"syscall/js"
	"time"

	"github.com/Its-donkey/archambeau-site/internal/ui/chrome"
)

var lightboxListeners binding

// bindChrome wires the navigation, section and footer behaviour shared by
// every page.
func bindChrome() {
	hamburger := querySelector(".hamburger")
	navMenu := querySelector(".nav-menu")
	if hamburger.Truthy() && navMenu.Truthy() {
		addChromeHandler(hamburger, "click", func(this js.Value, args []js.Value) any {
			navMenu.Get("classList").Call("toggle", "active")
			hamburger.Get("classList").Call("toggle", "active")
			return nil
		})
		forEachNode(Document.Call("querySelectorAll", ".nav-menu a"), func(link js.Value) {
			addChromeHandler(link, "click", func(this js.Value, args []js.Value) any {
				navMenu.Get("classList").Call("remove", "active")
				hamburger.Get("classList").Call("remove", "active")
				return nil
			})
		})
	}

	if navbar := Document.Call("getElementById", "navbar"); navbar.Truthy() {
		window := js.Global()
		addChromeHandler(window, "scroll", func(this js.Value, args []js.Value) any {
			look := chrome.NavbarStyleAt(window.Get("scrollY").Float())
			navbar.Get("classList").Call("toggle", "scrolled", look.Scrolled)
			style := navbar.Get("style")
			style.Set("background", look.Background)
			style.Set("boxShadow", look.BoxShadow)
			return nil
		})
	}

	bindAnchorScroll()
	bindSectionReveal()
	bindHeroReveal()

	if year := Document.Call("getElementById", "currentYear"); year.Truthy() {
		year.Set("textContent", strconv.Itoa(time.Now().Year()))
	}
}

// bindAnchorScroll smooth-scrolls in-page links to their target, leaving room
// for the fixed header.
func bindAnchorScroll() {
	forEachNode(Document.Call("querySelectorAll", `a[href^="#"]`), func(anchor js.Value) {
		addChromeHandler(anchor, "click", func(this js.Value, args []js.Value) any {
			if len(args) > 0 {
				args[0].Call("preventDefault")
			}
			id, ok := chrome.AnchorTarget(anchor.Call("getAttribute", "href").String())
			if !ok {
				return nil
			}
			target := Document.Call("getElementById", id)
			if !target.Truthy() {
				return nil
			}
			window := js.Global()
			top := chrome.ScrollTop(target.Call("getBoundingClientRect").Get("top").Float(), window.Get("pageYOffset").Float())
			window.Call("scrollTo", map[string]any{"top": top, "behavior": "smooth"})
			return nil
		})
	})
}

// bindSectionReveal hides every section and fades each one in the first
// time it enters the viewport.
func bindSectionReveal() {
	observerCtor := js.Global().Get("IntersectionObserver")
	if !observerCtor.Truthy() {
		return
	}
	reveal := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		forEachNode(args[0], func(entry js.Value) {
			if entry.Get("isIntersecting").Truthy() {
				applySectionStyle(entry.Get("target"), chrome.RevealedSection)
			}
		})
		return nil
	})
	chromeHandlers = append(chromeHandlers, reveal)

	observer := observerCtor.New(reveal, map[string]any{
		"threshold":  chrome.RevealThreshold,
		"rootMargin": chrome.RevealRootMargin,
	})
	forEachNode(Document.Call("querySelectorAll", "section"), func(section js.Value) {
		applySectionStyle(section, chrome.HiddenSection)
		observer.Call("observe", section)
	})
}

func applySectionStyle(node js.Value, look chrome.SectionStyle) {
	style := node.Get("style")
	style.Set("opacity", look.Opacity)
	style.Set("transform", look.Transform)
	if look.Transition != "" {
		style.Set("transition", look.Transition)
	}
}

// bindHeroReveal shows the hero once the page has loaded. The runtime may
// start after the load event, in which case it shows it immediately.
func bindHeroReveal() {
	show := func() {
		if hero := querySelector(".hero"); hero.Truthy() {
			hero.Get("style").Set("opacity", "1")
		}
	}
	if Document.Get("readyState").String() == "complete" {
		show()
		return
	}
	addChromeHandler(js.Global(), "load", func(this js.Value, args []js.Value) any {
		show()
		return nil
	})
}

// bindLightbox attaches the gallery lightbox to every .gallery-item. The
// gallery loader replaces the items, so it runs again after each load.
func bindLightbox() {
	lightboxListeners.release()
	forEachNode(Document.Call("querySelectorAll", ".gallery-item"), func(item js.Value) {
		lightboxListeners.on(item, "click", func(this js.Value, args []js.Value) any {
			openLightbox(item)
			return nil
		})
	})
}

func openLightbox(item js.Value) {
	img := item.Call("querySelector", "img")
	if !img.Truthy() {
		return
	}
	caption := ""
	if p := item.Call("querySelector", ".gallery-overlay p"); p.Truthy() {
		caption = p.Get("textContent").String()
	}

	box := Document.Call("createElement", "div")
	box.Get("classList").Call("add", "lightbox")
	box.Get("style").Set("cssText", "position:fixed;top:0;left:0;width:100%;height:100%;background:rgba(0,0,0,0.95);z-index:10000;display:flex;align-items:center;justify-content:center;")

	inner := Document.Call("createElement", "div")
	inner.Get("classList").Call("add", "lightbox-content")
	inner.Get("style").Set("cssText", "position:relative;max-width:90%;max-height:90%;text-align:center;")

	closeBtn := Document.Call("createElement", "span")
	closeBtn.Get("classList").Call("add", "close-lightbox")
	closeBtn.Set("textContent", "×")
	closeBtn.Get("style").Set("cssText", "position:absolute;top:-40px;right:0;color:white;font-size:40px;cursor:pointer;font-weight:300;")

	full := Document.Call("createElement", "img")
	full.Set("src", img.Get("src"))
	full.Set("alt", img.Get("alt"))
	full.Get("style").Set("cssText", "max-width:100%;max-height:80vh;border-radius:5px;")

	text := Document.Call("createElement", "p")
	text.Set("textContent", caption)
	text.Get("style").Set("cssText", "color:white;margin-top:1rem;font-size:1.2rem;")

	inner.Call("appendChild", closeBtn)
	inner.Call("appendChild", full)
	inner.Call("appendChild", text)
	box.Call("appendChild", inner)
	Document.Get("body").Call("appendChild", box)

	var listeners binding
	closeBox := func() {
		box.Call("remove")
		listeners.release()
	}
	listeners.on(closeBtn, "click", func(this js.Value, args []js.Value) any {
		closeBox()
		return nil
	})
	listeners.on(box, "click", func(this js.Value, args []js.Value) any {
		if len(args) > 0 && args[0].Get("target").Equal(box) {
			closeBox()
		}
		return nil
	})
}

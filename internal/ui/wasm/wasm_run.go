//go:build js && wasm

package wasm

import (
	"syscall/js"

	"github.com/Its-donkey/archambeau-site/internal/ui/admin"
	"github.com/Its-donkey/archambeau-site/internal/ui/forms"
)

// RunApp bootstraps the page runtime and blocks forever.
func RunApp() {
	done := make(chan struct{})
	window := js.Global()
	Document = window.Get("document")
	pathname := window.Get("location").Get("pathname").String()

	bindChrome()
	carouselCtl.bind()
	bindLightbox()
	if forms.BindContactForm() {
		consoleLog("log", "contact form ready")
	}
	if Document.Call("getElementById", "admin-dashboard").Truthy() {
		admin.InitConsole()
	}
	startPerformances()
	startPageLoader(pathname)
	<-done
}

//go:build js && wasm

package admin

import (
	"strings"
	"syscall/js"

	"github.com/Its-donkey/archambeau-site/internal/ui/state"
)

const adminTokenStorageKey = "archambeau-admin-token"

var (
	adminState    = &state.AdminConsole
	adminDocument js.Value
	editor        = &Editor{}
)

func getDocument() js.Value {
	if !adminDocument.Truthy() {
		adminDocument = js.Global().Get("document")
	}
	return adminDocument
}

func adminAPI() *API {
	return &API{Token: adminState.Token}
}

func persistAdminToken(token string) {
	storage := js.Global().Get("localStorage")
	if !storage.Truthy() {
		return
	}
	if strings.TrimSpace(token) == "" {
		storage.Call("removeItem", adminTokenStorageKey)
		return
	}
	storage.Call("setItem", adminTokenStorageKey, token)
}

func loadStoredAdminToken() string {
	storage := js.Global().Get("localStorage")
	if !storage.Truthy() {
		return ""
	}
	value := storage.Call("getItem", adminTokenStorageKey)
	if value.Type() == js.TypeString {
		return strings.TrimSpace(value.String())
	}
	return ""
}

func confirmAction(message string) bool {
	return js.Global().Call("confirm", message).Bool()
}

func consoleWarn(args ...any) {
	console := js.Global().Get("console")
	if console.Truthy() {
		console.Call("warn", args...)
	}
}

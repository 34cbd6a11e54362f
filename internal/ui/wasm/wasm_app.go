//go:build js && wasm

package wasm

import (
	"syscall/js"
)

var (
	// Document references the global browser document for DOM interactions.
	Document js.Value
	// chromeHandlers live for the whole page view.
	chromeHandlers []js.Func
)

// consoleLog writes to the browser console at level ("log", "warn" or "error").
func consoleLog(level string, args ...any) {
	console := js.Global().Get("console")
	if !console.Truthy() {
		return
	}
	console.Call(level, args...)
}

func querySelector(selector string) js.Value {
	return Document.Call("querySelector", selector)
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

// listen attaches handler to node and returns the js.Func so the owner can
// release it together with its other listeners.
func listen(node js.Value, event string, handler func(js.Value, []js.Value) any) (js.Func, bool) {
	if !node.Truthy() {
		return js.Func{}, false
	}
	fn := js.FuncOf(handler)
	node.Call("addEventListener", event, fn)
	return fn, true
}

func addChromeHandler(node js.Value, event string, handler func(js.Value, []js.Value) any) {
	if fn, ok := listen(node, event, handler); ok {
		chromeHandlers = append(chromeHandlers, fn)
	}
}

// binding owns a set of listeners that are removed and released together.
type binding struct {
	entries []bindingEntry
}

type bindingEntry struct {
	node  js.Value
	event string
	fn    js.Func
}

func (b *binding) on(node js.Value, event string, handler func(js.Value, []js.Value) any) {
	if fn, ok := listen(node, event, handler); ok {
		b.entries = append(b.entries, bindingEntry{node: node, event: event, fn: fn})
	}
}

// release detaches every listener before releasing it, so a node that
// survives a re-render never calls a released function.
func (b *binding) release() {
	for _, e := range b.entries {
		e.node.Call("removeEventListener", e.event, e.fn)
		e.fn.Release()
	}
	b.entries = nil
}

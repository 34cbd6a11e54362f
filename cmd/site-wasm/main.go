//go:build js && wasm

package main

import "github.com/Its-donkey/archambeau-site/internal/ui/wasm"

func main() {
	wasm.RunApp()
}

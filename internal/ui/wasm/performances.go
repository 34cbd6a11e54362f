//go:build js && wasm

package wasm

import (
	"context"

	"github.com/Its-donkey/archambeau-site/internal/ui/content"
)

// startPerformances fills the listing anchor when the page has one.
func startPerformances() {
	if !querySelector(content.SelPerformances).Truthy() {
		return
	}
	go refreshPerformances()
}

func refreshPerformances() {
	listing, err := content.FetchPerformances(context.Background(), nil, "")
	if err != nil {
		consoleLog("error", "Error loading performances:", err.Error())
	}
	if node := querySelector(content.SelPerformances); node.Truthy() {
		node.Set("innerHTML", content.PerformancesHTML(listing, err))
	}
}

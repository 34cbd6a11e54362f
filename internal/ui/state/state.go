// Package state holds the page-session view state shared by the browser
// runtime's components. The runtime is single threaded, so nothing here is
// locked.
package state

import (
	"github.com/Its-donkey/archambeau-site/internal/ui/model"
)

var (
	// Contact holds the contact form submission state.
	Contact model.ContactFormState

	// AdminConsole stores the long-lived admin UI view state for the WASM app.
	AdminConsole = model.AdminViewState{
		ActiveSection: "videos",
	}
)

package model

// Status is a toned message shown in a status region ("success", "error",
// "info").
type Status struct {
	Tone    string
	Message string
}

// AdminViewState is the long-lived admin console view state.
type AdminViewState struct {
	Token         string
	SessionEmail  string
	LoginEmail    string
	LoginPassword string
	ActiveSection string
	Status        Status
	Loading       bool
	Checked       bool
	Pending       *PendingSave
}

// PendingSave holds the last saved carousel markup until it is downloaded.
type PendingSave struct {
	Document string
	Count    int
}

// ContactFormState tracks the contact form while a submission is in flight.
type ContactFormState struct {
	Submitting bool
	Status     Status
}

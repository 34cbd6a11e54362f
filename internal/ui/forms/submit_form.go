//go:build js && wasm

package forms

import (
	"context"
	"syscall/js"
	"time"

	"github.com/Its-donkey/archambeau-site/internal/ui/model"
	"github.com/Its-donkey/archambeau-site/internal/ui/state"
)

const statusAutoHide = 5 * time.Second

var (
	formHandlers    []js.Func
	runtimeDocument js.Value
	statusClear     chan struct{}
)

func formDocument() js.Value {
	if !runtimeDocument.Truthy() {
		runtimeDocument = js.Global().Get("document")
	}
	return runtimeDocument
}

// BindContactForm attaches the submit handler to #contactForm. It returns
// false when the page has no contact form.
func BindContactForm() bool {
	form := formDocument().Call("getElementById", "contactForm")
	if !form.Truthy() {
		return false
	}
	releaseFormHandlers()
	addFormHandler(form, "submit", func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			args[0].Call("preventDefault")
		}
		handleSubmit(this)
		return nil
	})
	return true
}

func addFormHandler(node js.Value, event string, handler func(js.Value, []js.Value) any) {
	if !node.Truthy() {
		return
	}
	fn := js.FuncOf(handler)
	node.Call("addEventListener", event, fn)
	formHandlers = append(formHandlers, fn)
}

func releaseFormHandlers() {
	for _, fn := range formHandlers {
		fn.Release()
	}
	formHandlers = formHandlers[:0]
}

func readSubmission(form js.Value) model.ContactSubmission {
	data := js.Global().Get("FormData").New(form)
	field := func(name string) string {
		v := data.Call("get", name)
		if v.Type() != js.TypeString {
			return ""
		}
		return v.String()
	}
	return model.ContactSubmission{
		Name:    field("name"),
		Email:   field("email"),
		Subject: field("subject"),
		Message: field("message"),
	}
}

func handleSubmit(form js.Value) {
	if state.Contact.Submitting {
		return
	}
	sub := readSubmission(form)
	if err := ValidateContact(sub); err != nil {
		showFormStatus(model.Status{Tone: "error", Message: err.Error()})
		return
	}

	button := form.Call("querySelector", `button[type="submit"]`)
	originalLabel := ""
	if button.Truthy() {
		originalLabel = button.Get("textContent").String()
		button.Set("textContent", SendingLabel)
		button.Set("disabled", true)
	}
	state.Contact.Submitting = true
	endpoint := RelayPath
	if v := form.Get("dataset").Get("endpoint"); v.Type() == js.TypeString {
		endpoint = Endpoint(v.String())
	}

	go func(sub model.ContactSubmission) {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		err := SubmitContact(ctx, nil, endpoint, Trimmed(sub))
		state.Contact.Submitting = false
		if button.Truthy() {
			button.Set("textContent", originalLabel)
			button.Set("disabled", false)
		}
		if err != nil {
			js.Global().Get("console").Call("error", "Form submission error:", err.Error())
			showFormStatus(model.Status{Tone: "error", Message: FailureMessage})
			return
		}
		form.Call("reset")
		showFormStatus(model.Status{Tone: "success", Message: SuccessMessage})
	}(sub)
}

func showFormStatus(status model.Status) {
	state.Contact.Status = status
	el := formDocument().Call("getElementById", "formStatus")
	if !el.Truthy() {
		return
	}
	el.Set("textContent", status.Message)
	el.Set("className", "form-status "+status.Tone)

	if statusClear != nil {
		close(statusClear)
	}
	done := make(chan struct{})
	statusClear = done
	go func(expected model.Status) {
		timer := time.NewTimer(statusAutoHide)
		defer timer.Stop()
		select {
		case <-timer.C:
			if state.Contact.Status == expected {
				state.Contact.Status = model.Status{}
				el.Set("className", "form-status")
			}
		case <-done:
		}
	}(status)
}

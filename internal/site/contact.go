package site

import (
	"net/http"

	"github.com/Its-donkey/archambeau-site/internal/ui/forms"
	"github.com/Its-donkey/archambeau-site/internal/ui/model"
)

type contactResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

func (s *server) handleContact(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	if s.contact == nil {
		http.Error(w, "contact form is not configured", http.StatusServiceUnavailable)
		return
	}

	var sub model.ContactSubmission
	if err := decodeJSON(w, r, &sub); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	sub = forms.Trimmed(sub)
	if err := forms.ValidateContact(sub); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	log := s.logger.FromContext(r.Context()).WithCategory("contact")
	if err := s.contact.Deliver(r.Context(), sub); err != nil {
		log.Error("deliver contact message", err)
		http.Error(w, forms.FailureMessage, http.StatusBadGateway)
		return
	}
	log.WithField("subject", sub.Subject).Info("contact message delivered")
	writeJSON(w, http.StatusOK, contactResponse{OK: true, Message: forms.SuccessMessage})
}

package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/ybordev/site-content/pkg/sitecontent/forms"
	"github.com/ybordev/site-content/pkg/sitecontent/mail"
)

const maxSubmissionBytes = 64 << 10

// ContactHandler accepts form submissions and forwards them by email.
// Submissions are never stored.
type ContactHandler struct {
	sender mail.Sender
	from   string
	to     string
}

// NewContactHandler creates a new contact handler. from and to are the
// notification sender and recipient addresses.
func NewContactHandler(sender mail.Sender, from, to string) *ContactHandler {
	return &ContactHandler{sender: sender, from: from, to: to}
}

// Routes returns the routes for form submission.
func (h *ContactHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/contact", h.SubmitContact)
	return r
}

// messageTypeProbe reads only the discriminant out of the body.
type messageTypeProbe struct {
	MessageType string `json:"messageType"`
}

// SubmitContact validates the submission body and forwards it. Required
// fields are re-checked here regardless of what the client validated. The
// response is 200 {"message":"SENT"} on success and a bare 400 otherwise,
// with details kept to the server log.
func (h *ContactHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	submissionID := uuid.New().String()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxSubmissionBytes))
	if err != nil {
		slog.Error("Failed to read submission body", "submission_id", submissionID, "error", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var probe messageTypeProbe
	if err := json.Unmarshal(body, &probe); err != nil {
		slog.Error("Malformed submission body", "submission_id", submissionID, "error", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	messageType := probe.MessageType
	if messageType == "" {
		messageType = forms.MessageTypeContact
	}

	var (
		missing []string
		msg     mail.Message
	)
	switch messageType {
	case forms.MessageTypePlan:
		var sub forms.PlanSubmission
		if err := json.Unmarshal(body, &sub); err != nil {
			slog.Error("Malformed plan submission", "submission_id", submissionID, "error", err)
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		missing = sub.MissingFields()
		msg = sub.MailMessage(h.from, h.to)
	default:
		var sub forms.ContactSubmission
		if err := json.Unmarshal(body, &sub); err != nil {
			slog.Error("Malformed contact submission", "submission_id", submissionID, "error", err)
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		missing = sub.MissingFields()
		msg = sub.MailMessage(h.from, h.to)
	}

	if len(missing) > 0 {
		slog.Info("Submission rejected, missing fields",
			"submission_id", submissionID,
			"message_type", messageType,
			"fields", strings.Join(missing, ","))
		http.Error(w, "missing required fields", http.StatusBadRequest)
		return
	}

	if err := h.sender.Send(r.Context(), msg); err != nil {
		slog.Error("Failed to forward submission",
			"submission_id", submissionID,
			"message_type", messageType,
			"error", err)
		http.Error(w, "failed to send message", http.StatusBadRequest)
		return
	}

	slog.Info("Submission forwarded", "submission_id", submissionID, "message_type", messageType)
	render.JSON(w, r, map[string]string{"message": "SENT"})
}

// Package forms holds the submission schemas shared by the client-side
// pipeline and the server endpoint, and the client submit state machine.
package forms

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Message type discriminants carried in the submission body. An omitted
// messageType means contact.
const (
	MessageTypeContact = "contact"
	MessageTypePlan    = "plan"
)

// publicEmailProviders is the denylist behind the work-email rule.
var publicEmailProviders = map[string]struct{}{
	"gmail.com":      {},
	"yahoo.com":      {},
	"hotmail.com":    {},
	"outlook.com":    {},
	"aol.com":        {},
	"icloud.com":     {},
	"protonmail.com": {},
	"zoho.com":       {},
	"mail.com":       {},
	"gmx.com":        {},
	"msn.com":        {},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("workemail", validateWorkEmail); err != nil {
		panic(err)
	}
	return v
}

func validateWorkEmail(fl validator.FieldLevel) bool {
	email := fl.Field().String()
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	_, public := publicEmailProviders[strings.ToLower(email[at+1:])]
	return !public
}

// FieldError is one field-level validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors carries all field-level messages of one failed
// validation pass.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// ContactSubmission is the general contact form. It is transient: validated,
// forwarded, never persisted.
type ContactSubmission struct {
	Name        string `json:"name" validate:"required,min=3"`
	Company     string `json:"company" validate:"required,min=3"`
	Email       string `json:"email" validate:"required,email,workemail"`
	Reason      string `json:"reason" validate:"required"`
	Message     string `json:"message" validate:"required,min=2"`
	Privacy     bool   `json:"privacy" validate:"eq=true"`
	MessageType string `json:"messageType,omitempty"`
}

// Validate enforces the contact schema and returns ValidationErrors with
// field-level messages on failure.
func (s ContactSubmission) Validate() error {
	return collect(validate.Struct(s))
}

// MissingFields reports which required fields are absent, for the server's
// presence-only re-validation. Privacy counts as missing unless true.
func (s ContactSubmission) MissingFields() []string {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", s.Name},
		{"company", s.Company},
		{"email", s.Email},
		{"reason", s.Reason},
		{"message", s.Message},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if !s.Privacy {
		missing = append(missing, "privacy")
	}
	return missing
}

// PlanSubmission is the plan-interest form variant.
type PlanSubmission struct {
	Name        string `json:"name" validate:"required,min=3"`
	Company     string `json:"company" validate:"required,min=3"`
	Email       string `json:"email" validate:"required,email,workemail"`
	Role        string `json:"role" validate:"required"`
	APICalls    string `json:"apiCalls" validate:"required"`
	CompanySize string `json:"companySize" validate:"required"`
	Privacy     bool   `json:"privacy" validate:"eq=true"`
	MessageType string `json:"messageType,omitempty"`
}

// Validate enforces the plan schema.
func (s PlanSubmission) Validate() error {
	return collect(validate.Struct(s))
}

// MissingFields reports absent required fields for server-side re-validation.
func (s PlanSubmission) MissingFields() []string {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", s.Name},
		{"company", s.Company},
		{"email", s.Email},
		{"role", s.Role},
		{"apiCalls", s.APICalls},
		{"companySize", s.CompanySize},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if !s.Privacy {
		missing = append(missing, "privacy")
	}
	return missing
}

func collect(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: messageFor(fe.Field(), fe.Tag())})
	}
	return out
}

// messageFor mirrors the user-facing copy of the site's form schemas.
func messageFor(field, tag string) string {
	switch field {
	case "name":
		return "Full name must be at least 3 characters."
	case "company":
		return "Company name must be at least 3 characters."
	case "email":
		if tag == "workemail" {
			return "Only work emails are allowed"
		}
		return "Invalid email address"
	case "reason":
		return "Selecting a reason is required."
	case "message":
		return "Message is required."
	case "privacy":
		return "You must agree to the privacy policy."
	case "role":
		return "Selecting a role is required."
	case "apiCalls":
		return "Selecting expected API calls is required."
	case "companySize":
		return "Selecting a company size is required."
	default:
		return "Invalid value."
	}
}

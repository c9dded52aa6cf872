package forms_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ybordev/site-content/pkg/sitecontent/forms"
)

func validContact() forms.ContactSubmission {
	return forms.ContactSubmission{
		Name:    "Dana Smith",
		Company: "Acme Corp",
		Email:   "dana@acme.com",
		Reason:  "pricing",
		Message: "Hi, tell me more.",
		Privacy: true,
	}
}

func validPlan() forms.PlanSubmission {
	return forms.PlanSubmission{
		Name:        "Dana Smith",
		Company:     "Acme Corp",
		Email:       "dana@acme.com",
		Role:        "engineer",
		APICalls:    "1M-10M",
		CompanySize: "51-200",
		Privacy:     true,
		MessageType: forms.MessageTypePlan,
	}
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verrs forms.ValidationErrors
	require.True(t, errors.As(err, &verrs), "expected ValidationErrors, got %v", err)
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field] = fe.Message
	}
	return out
}

func TestContactSubmissionValid(t *testing.T) {
	assert.NoError(t, validContact().Validate())
}

func TestContactSubmissionFieldRules(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*forms.ContactSubmission)
		field    string
		expected string
	}{
		{
			name:     "short name",
			mutate:   func(s *forms.ContactSubmission) { s.Name = "Al" },
			field:    "name",
			expected: "Full name must be at least 3 characters.",
		},
		{
			name:     "short company",
			mutate:   func(s *forms.ContactSubmission) { s.Company = "Co" },
			field:    "company",
			expected: "Company name must be at least 3 characters.",
		},
		{
			name:     "malformed email",
			mutate:   func(s *forms.ContactSubmission) { s.Email = "not-an-email" },
			field:    "email",
			expected: "Invalid email address",
		},
		{
			name:     "public provider email",
			mutate:   func(s *forms.ContactSubmission) { s.Email = "dana@gmail.com" },
			field:    "email",
			expected: "Only work emails are allowed",
		},
		{
			name:     "public provider email is case-insensitive",
			mutate:   func(s *forms.ContactSubmission) { s.Email = "dana@GMAIL.com" },
			field:    "email",
			expected: "Only work emails are allowed",
		},
		{
			name:     "missing reason",
			mutate:   func(s *forms.ContactSubmission) { s.Reason = "" },
			field:    "reason",
			expected: "Selecting a reason is required.",
		},
		{
			name:     "missing message",
			mutate:   func(s *forms.ContactSubmission) { s.Message = "" },
			field:    "message",
			expected: "Message is required.",
		},
		{
			name:     "privacy not accepted",
			mutate:   func(s *forms.ContactSubmission) { s.Privacy = false },
			field:    "privacy",
			expected: "You must agree to the privacy policy.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validContact()
			tt.mutate(&sub)

			err := sub.Validate()
			require.Error(t, err)
			msgs := fieldErrors(t, err)
			assert.Equal(t, tt.expected, msgs[tt.field])
		})
	}
}

func TestContactSubmissionWorkEmailAllowsCorporateDomains(t *testing.T) {
	sub := validContact()
	sub.Email = "dana@gmail.example.org"
	assert.NoError(t, sub.Validate())
}

func TestPlanSubmissionValid(t *testing.T) {
	assert.NoError(t, validPlan().Validate())
}

func TestPlanSubmissionRequiresSelections(t *testing.T) {
	sub := validPlan()
	sub.Role = ""
	sub.APICalls = ""
	sub.CompanySize = ""

	err := sub.Validate()
	require.Error(t, err)
	msgs := fieldErrors(t, err)
	assert.Equal(t, "Selecting a role is required.", msgs["role"])
	assert.Equal(t, "Selecting expected API calls is required.", msgs["apiCalls"])
	assert.Equal(t, "Selecting a company size is required.", msgs["companySize"])
}

func TestContactMissingFields(t *testing.T) {
	sub := forms.ContactSubmission{Email: "dana@acme.com", Privacy: true}
	assert.ElementsMatch(t,
		[]string{"name", "company", "reason", "message"},
		sub.MissingFields())

	assert.Empty(t, validContact().MissingFields())
}

func TestPlanMissingFields(t *testing.T) {
	sub := forms.PlanSubmission{Name: "Dana Smith"}
	assert.ElementsMatch(t,
		[]string{"company", "email", "role", "apiCalls", "companySize", "privacy"},
		sub.MissingFields())
}

func TestContactMailMessage(t *testing.T) {
	msg := validContact().MailMessage("forms@site.test", "sales@site.test")

	assert.Equal(t, "forms@site.test", msg.From)
	assert.Equal(t, "sales@site.test", msg.To)
	assert.Equal(t, "dana@acme.com", msg.ReplyTo)
	assert.Contains(t, msg.Subject, "Dana Smith")
	assert.Contains(t, msg.Text, "Reason: pricing")
	assert.Contains(t, msg.Text, "Hi, tell me more.")
}

func TestPlanMailMessage(t *testing.T) {
	msg := validPlan().MailMessage("forms@site.test", "sales@site.test")

	assert.Contains(t, msg.Subject, "Plan request")
	assert.Contains(t, msg.Text, "Expected API calls: 1M-10M")
	assert.Contains(t, msg.Text, "Company size: 51-200")
}

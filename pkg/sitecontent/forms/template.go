package forms

import (
	"fmt"
	"strings"

	"github.com/ybordev/site-content/pkg/sitecontent/mail"
)

// MailMessage renders the submission as a plain-text notification. The
// visitor's address goes into Reply-To so a reply reaches them directly.
func (s ContactSubmission) MailMessage(from, to string) mail.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", s.Name)
	fmt.Fprintf(&b, "Company: %s\n", s.Company)
	fmt.Fprintf(&b, "Email: %s\n", s.Email)
	fmt.Fprintf(&b, "Reason: %s\n", s.Reason)
	fmt.Fprintf(&b, "\n%s\n", s.Message)

	return mail.Message{
		From:    from,
		To:      to,
		ReplyTo: s.Email,
		Subject: fmt.Sprintf("Contact request from %s (%s)", s.Name, s.Company),
		Text:    b.String(),
	}
}

// MailMessage renders the plan-interest submission as a plain-text
// notification.
func (s PlanSubmission) MailMessage(from, to string) mail.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", s.Name)
	fmt.Fprintf(&b, "Company: %s\n", s.Company)
	fmt.Fprintf(&b, "Email: %s\n", s.Email)
	fmt.Fprintf(&b, "Role: %s\n", s.Role)
	fmt.Fprintf(&b, "Expected API calls: %s\n", s.APICalls)
	fmt.Fprintf(&b, "Company size: %s\n", s.CompanySize)

	return mail.Message{
		From:    from,
		To:      to,
		ReplyTo: s.Email,
		Subject: fmt.Sprintf("Plan request from %s (%s)", s.Name, s.Company),
		Text:    b.String(),
	}
}

// internal/email/mailer/team_invitation.go
package mailer

import (
	"fmt"

	"github.com/tracehq/trace/internal/email"
)

// InvitationTemplateData contains data for the invitation email template
type InvitationTemplateData struct {
	OrganizationName string
	InviterName      string
	AcceptURL        string
}

// InviteSender adapts the email service to the invitation flow's
// mailer dependency.
type InviteSender struct {
	Service *email.Service
}

func (m *InviteSender) SendInvitation(to, organizationName, inviterName, acceptURL string) error {
	return SendInvitationEmail(m.Service, to, organizationName, inviterName, acceptURL)
}

// SendInvitationEmail sends a team invitation email
func SendInvitationEmail(s *email.Service, to, organizationName, inviterName, acceptURL string) error {
	templateData := InvitationTemplateData{
		OrganizationName: organizationName,
		InviterName:      inviterName,
		AcceptURL:        acceptURL,
	}

	emailData := email.EmailData{
		To:           to,
		Subject:      fmt.Sprintf("Join %s on Trace", organizationName),
		TemplateName: "team_invitation",
		TemplateData: templateData,
	}

	return s.SendEmail(emailData)
}

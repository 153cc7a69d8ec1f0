// Package email sends interview invitations to shortlisted candidates
// over SMTP.
package email

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// SMTPConfig holds the outgoing mail server settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Invitation describes one interview invitation to deliver.
type Invitation struct {
	To            string
	CandidateName string
	CompanyName   string
	CustomMessage string
	IncludeScore  bool
	Score         float64
}

// Mailer delivers interview invitations.
type Mailer struct {
	cfg    SMTPConfig
	dial   func(m *gomail.Message) error
	logger *zap.Logger
}

// NewMailer builds a Mailer for the given SMTP settings. A nil logger
// disables logging.
func NewMailer(cfg SMTPConfig, logger *zap.Logger) *Mailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &Mailer{
		cfg:    cfg,
		dial:   func(m *gomail.Message) error { return d.DialAndSend(m) },
		logger: logger,
	}
}

// SendInvitation composes and delivers one interview invitation.
func (m *Mailer) SendInvitation(inv Invitation) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", inv.To)
	msg.SetHeader("Subject", fmt.Sprintf("Interview Invitation - %s", companyOrDefault(inv.CompanyName)))
	msg.SetBody("text/plain", BuildInvitationBody(inv))

	if err := m.dial(msg); err != nil {
		m.logger.Warn("failed to send invitation",
			zap.String("to", inv.To),
			zap.Error(err))
		return fmt.Errorf("failed to send invitation to %s: %w", inv.To, err)
	}

	m.logger.Info("invitation sent", zap.String("to", inv.To))
	return nil
}

func companyOrDefault(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Our Company"
	}
	return name
}

// BuildInvitationBody renders the plain-text invitation for a candidate.
func BuildInvitationBody(inv Invitation) string {
	company := companyOrDefault(inv.CompanyName)
	name := inv.CandidateName
	if strings.TrimSpace(name) == "" {
		name = "Candidate"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `Dear %s,

We are pleased to inform you that your application has been selected for further consideration.

You have been shortlisted for an interview with %s. Our team will contact you shortly to schedule the interview.`, name, company)

	if inv.IncludeScore {
		fmt.Fprintf(&b, "\n\nYour application scored %.1f%% in our screening process, which demonstrates a strong match with our requirements.", inv.Score*100)
	}

	if msg := strings.TrimSpace(inv.CustomMessage); msg != "" {
		fmt.Fprintf(&b, "\n\n%s", msg)
	}

	fmt.Fprintf(&b, `

Please ensure you are available for the interview and have all necessary documents ready.

We look forward to speaking with you soon.

Best regards,
%s HR Team`, company)

	return b.String()
}

package notification

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/wb-go/wbf/logger"

	"github.com/mrwnh/eventreg/internal/domain"
)

// SMTPNotifier sends the registration confirmation emails. With an empty
// host it degrades to a logging no-op, which keeps local development free
// of SMTP credentials.
type SMTPNotifier struct {
	addr   string
	host   string
	from   string
	auth   smtp.Auth
	logger logger.Logger
}

func NewSMTPNotifier(host string, addr, username, password, from string, logger logger.Logger) *SMTPNotifier {
	if host == "" {
		logger.Warn("smtp host is empty, email notifications disabled")
		return &SMTPNotifier{logger: logger}
	}

	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	return &SMTPNotifier{
		addr:   addr,
		host:   host,
		from:   from,
		auth:   auth,
		logger: logger,
	}
}

func (n *SMTPNotifier) NotifyRegistrationCreated(ctx context.Context, r *domain.Registration) {
	subject := "Registration received"
	body := fmt.Sprintf(
		"Dear %s %s,\n\n"+
			"We have received your %s registration and it is now pending review.\n"+
			"You will be notified once it has been processed.\n",
		r.FirstName, r.LastName, r.RegistrationType,
	)
	n.send(ctx, r.Email, subject, body)
}

func (n *SMTPNotifier) send(ctx context.Context, to, subject, body string) {
	if n.host == "" {
		n.logger.Debug("email skipped (mailer disabled)", logger.String("to", to))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("email skipped (context cancelled)", logger.String("to", to))
		return
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		n.from, to, subject, body,
	)

	if err := smtp.SendMail(n.addr, n.auth, n.from, []string{to}, []byte(msg)); err != nil {
		n.logger.Error("failed to send email",
			logger.String("to", to),
			logger.String("error", err.Error()),
		)
		return
	}

	n.logger.Info("email sent", logger.String("to", to))
}

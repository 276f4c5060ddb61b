package mail

import (
	"context"
	"log/slog"
	"time"

	"servicehub/config"
	"servicehub/internal/domain/service"
	"servicehub/internal/errors"

	gomail "github.com/wneessen/go-mail"
)

const defaultSMTPTimeout = 15 * time.Second

// smtpMailer implements service.Mailer with go-mail. A connection is dialled per send;
// the relay sends at most a batch at a time.
type smtpMailer struct {
	from     string
	fromName string
	options  []gomail.Option
	host     string
}

// NewSMTPMailer builds a mailer from the mail.smtp settings.
func NewSMTPMailer(cfg *config.MailConfig) (service.Mailer, error) {
	if cfg.SMTP.Host == "" {
		return nil, errors.New("mail.smtp.host is required for the smtp provider")
	}
	if cfg.From == "" {
		return nil, errors.New("mail.from is required")
	}

	timeout := cfg.SMTP.Timeout
	if timeout <= 0 {
		timeout = defaultSMTPTimeout
	}

	options := []gomail.Option{
		gomail.WithTimeout(timeout),
		gomail.WithTLSPolicy(tlsPolicy(cfg.SMTP.TLS)),
	}
	if cfg.SMTP.Port > 0 {
		options = append(options, gomail.WithPort(cfg.SMTP.Port))
	}
	if cfg.SMTP.Username != "" {
		options = append(options,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.SMTP.Username),
			gomail.WithPassword(cfg.SMTP.Password),
		)
	}

	return &smtpMailer{
		from:     cfg.From,
		fromName: cfg.FromName,
		options:  options,
		host:     cfg.SMTP.Host,
	}, nil
}

func tlsPolicy(value string) gomail.TLSPolicy {
	switch value {
	case "none":
		return gomail.NoTLS
	case "opportunistic":
		return gomail.TLSOpportunistic
	default:
		return gomail.TLSMandatory
	}
}

// Send builds a multipart/alternative message and delivers it.
func (m *smtpMailer) Send(ctx context.Context, message service.EmailMessage) error {
	msg, err := m.build(message)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(m.host, m.options...)
	if err != nil {
		return errors.Wrap(err, "failed to create smtp client")
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrapf(err, "failed to send email to %s", message.To)
	}

	return nil
}

func (m *smtpMailer) build(message service.EmailMessage) (*gomail.Msg, error) {
	msg := gomail.NewMsg()

	var err error
	if m.fromName != "" {
		err = msg.FromFormat(m.fromName, m.from)
	} else {
		err = msg.From(m.from)
	}
	if err != nil {
		return nil, errors.Wrap(err, "invalid sender address")
	}
	if err := msg.To(message.To); err != nil {
		return nil, errors.Wrapf(err, "invalid recipient address %q", message.To)
	}

	msg.Subject(message.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, message.TextBody)
	if message.HTMLBody != "" {
		msg.AddAlternativeString(gomail.TypeTextHTML, message.HTMLBody)
	}

	return msg, nil
}

// logMailer writes emails to the logger instead of sending them.
type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer is used in development and tests.
func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) Send(ctx context.Context, message service.EmailMessage) error {
	m.logger.InfoContext(ctx, "Email not sent, log mailer active",
		slog.String("to", message.To),
		slog.String("subject", message.Subject),
		slog.String("body", message.TextBody),
	)

	return nil
}

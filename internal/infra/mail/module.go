package mail

import (
	"log/slog"

	"servicehub/config"
	"servicehub/internal/domain/service"
	"servicehub/internal/errors"

	"go.uber.org/fx"
)

// NewMailer selects the transport named by mail.provider.
func NewMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	switch cfg.Mail.Provider {
	case "", "log":
		logger.Info("Using log mailer")

		return NewLogMailer(logger), nil
	case "smtp":
		logger.Info("Using SMTP mailer", slog.String("host", cfg.Mail.SMTP.Host))

		return NewSMTPMailer(cfg.Mail)
	default:
		return nil, errors.Errorf("unknown mail provider: %s", cfg.Mail.Provider)
	}
}

func newRenderer(cfg *config.Config) (service.EmailRenderer, error) {
	brand := cfg.Mail.FromName
	if brand == "" {
		brand = cfg.Env.ServiceName
	}

	return NewTemplateRenderer(brand)
}

// Module provides the mail FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMailer, newRenderer),
)

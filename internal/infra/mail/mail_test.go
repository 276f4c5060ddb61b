package mail

import (
	"strings"
	"testing"

	"servicehub/config"
	"servicehub/internal/domain/entity"
	"servicehub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"
)

func TestTemplateRenderer_RendersEveryTemplate(t *testing.T) {
	renderer, err := NewTemplateRenderer("ServiceHub")
	require.NoError(t, err)

	for _, name := range knownTemplates {
		msg, err := renderer.Render(entity.EmailJob{
			To:          "jane@example.com",
			Subject:     "Subject " + string(name),
			Template:    name,
			Intro:       "Your order has been accepted.",
			ActionLabel: "Accepted by",
			ActionBy:    "Bob's Plumbing",
			Fields:      []entity.EmailField{{Label: "Order", Value: "#123"}},
			Link:        "https://app.example.com/orders/123",
		})
		require.NoError(t, err, name)

		assert.Equal(t, "jane@example.com", msg.To)
		assert.Contains(t, msg.HTMLBody, "Bob&#39;s Plumbing", "html must be escaped")
		assert.Contains(t, msg.HTMLBody, "https://app.example.com/orders/123")
		assert.Contains(t, msg.TextBody, "Order: #123")
		assert.Contains(t, msg.TextBody, "Accepted by: Bob's Plumbing")
	}
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	renderer, err := NewTemplateRenderer("ServiceHub")
	require.NoError(t, err)

	_, err = renderer.Render(entity.EmailJob{To: "a@example.com", Template: "newsletter"})
	assert.Error(t, err)

	_, err = renderer.Render(entity.EmailJob{Template: entity.EmailTemplateOrder})
	assert.Error(t, err)
}

func TestSMTPMailer_BuildsAlternativeMessage(t *testing.T) {
	cfg := &config.MailConfig{From: "noreply@example.com", FromName: "ServiceHub"}
	cfg.SMTP.Host = "smtp.example.com"
	cfg.SMTP.Port = 587

	mailer, err := NewSMTPMailer(cfg)
	require.NoError(t, err)

	msg, err := mailer.(*smtpMailer).build(service.EmailMessage{
		To:       "jane@example.com",
		Subject:  "Order update",
		HTMLBody: "<p>Hello</p>",
		TextBody: "Hello",
	})
	require.NoError(t, err)

	var buf strings.Builder
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()
	assert.Contains(t, raw, "Subject: Order update")
	assert.Contains(t, raw, "multipart/alternative")
	assert.Contains(t, raw, "jane@example.com")

	_, err = mailer.(*smtpMailer).build(service.EmailMessage{To: "not an address"})
	assert.Error(t, err)
}

func TestNewSMTPMailer_RequiresHost(t *testing.T) {
	_, err := NewSMTPMailer(&config.MailConfig{From: "noreply@example.com"})
	assert.Error(t, err)
}

func TestTLSPolicy(t *testing.T) {
	assert.Equal(t, gomail.NoTLS, tlsPolicy("none"))
	assert.Equal(t, gomail.TLSOpportunistic, tlsPolicy("opportunistic"))
	assert.Equal(t, gomail.TLSMandatory, tlsPolicy(""))
}

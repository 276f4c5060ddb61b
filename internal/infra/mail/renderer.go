// Package mail renders queued email jobs and delivers them over SMTP.
package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"servicehub/internal/domain/entity"
	"servicehub/internal/domain/service"
	"servicehub/internal/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

var knownTemplates = []entity.EmailTemplate{
	entity.EmailTemplateOrder,
	entity.EmailTemplateDispute,
	entity.EmailTemplateRefund,
	entity.EmailTemplateAccount,
	entity.EmailTemplatePasswordReset,
}

type templateData struct {
	entity.EmailJob
	Year  int
	Brand string
}

// templateRenderer implements service.EmailRenderer with one html/template set per job template.
type templateRenderer struct {
	brand     string
	templates map[entity.EmailTemplate]*template.Template
	now       func() time.Time
}

// NewTemplateRenderer parses the embedded templates.
func NewTemplateRenderer(brand string) (service.EmailRenderer, error) {
	templates := make(map[entity.EmailTemplate]*template.Template, len(knownTemplates))
	for _, name := range knownTemplates {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", fmt.Sprintf("templates/%s.html", name))
		if err != nil {
			return nil, errors.Wrapf(err, "parse email template %s", name)
		}
		templates[name] = tmpl
	}

	return &templateRenderer{brand: brand, templates: templates, now: time.Now}, nil
}

// Render produces the HTML and plain-text bodies of a job.
func (r *templateRenderer) Render(job entity.EmailJob) (service.EmailMessage, error) {
	if job.To == "" {
		return service.EmailMessage{}, errors.New("email job has no recipient")
	}

	tmpl, ok := r.templates[job.Template]
	if !ok {
		return service.EmailMessage{}, errors.Errorf("unknown email template %q", job.Template)
	}

	var html bytes.Buffer
	data := templateData{EmailJob: job, Year: r.now().Year(), Brand: r.brand}
	if err := tmpl.ExecuteTemplate(&html, "layout", data); err != nil {
		return service.EmailMessage{}, errors.Wrapf(err, "render email template %s", job.Template)
	}

	return service.EmailMessage{
		To:       job.To,
		Subject:  job.Subject,
		HTMLBody: html.String(),
		TextBody: plainText(job),
	}, nil
}

func plainText(job entity.EmailJob) string {
	var b strings.Builder

	b.WriteString(job.Intro)
	b.WriteString("\n\n")
	for _, f := range job.Fields {
		fmt.Fprintf(&b, "%s: %s\n", f.Label, f.Value)
	}
	if job.ActionBy != "" {
		fmt.Fprintf(&b, "\n%s: %s\n", job.ActionLabel, job.ActionBy)
	}
	if job.Link != "" {
		fmt.Fprintf(&b, "\n%s\n", job.Link)
	}

	return b.String()
}

package contact

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/amoxtli/school-contact/pkg/email"
	"github.com/amoxtli/school-contact/pkg/email/templates"
)

const (
	confirmationSubject = "Confirmación: Hemos recibido tu consulta - Amoxtli School"
	replySubject        = "Re: Tu consulta en Amoxtli School"
	footerTimeLayout    = "02/01/2006, 15:04:05"

	tagNotification = "contact-notification"
	tagConfirmation = "contact-confirmation"
)

var nextSteps = []string{"Análisis de necesidades", "Propuesta personalizada", "Inicio de capacitación"}

// composer turns a valid, normalised submission into the two outbound messages.
type composer struct {
	from     email.Address
	business string
	siteURL  string
	siteHost string
	loc      *time.Location
	now      func() time.Time
}

func newComposer(cfg Config) (*composer, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", ErrInvalidConfig, cfg.Timezone, err)
	}
	if !email.ValidAddress(cfg.BusinessEmail) {
		return nil, fmt.Errorf("%w: CONTACT_EMAIL %q", ErrInvalidConfig, cfg.BusinessEmail)
	}
	if !email.ValidAddress(cfg.FromEmail) {
		return nil, fmt.Errorf("%w: FROM_EMAIL %q", ErrInvalidConfig, cfg.FromEmail)
	}
	host := cfg.SiteURL
	if u, err := url.Parse(cfg.SiteURL); err == nil && u.Host != "" {
		host = u.Host
	}
	return &composer{
		from:     email.Address{Email: cfg.FromEmail, Name: cfg.FromName},
		business: cfg.BusinessEmail,
		siteURL:  cfg.SiteURL,
		siteHost: host,
		loc:      loc,
		now:      time.Now,
	}, nil
}

func notificationSubject(s Submission) string {
	return fmt.Sprintf("Nueva consulta de %s - %s", s.Name, s.Company)
}

func (c *composer) notification(ctx context.Context, s Submission) (email.Message, error) {
	industry := Label(Industries, s.Industry)
	size := Label(CompanySizes, s.CompanySize)

	var text strings.Builder
	text.WriteString("Nueva consulta desde Amoxtli School\n\n")
	text.WriteString("Información de contacto:\n")
	fmt.Fprintf(&text, "- Nombre: %s\n", s.Name)
	fmt.Fprintf(&text, "- Email: %s\n", s.Email)
	fmt.Fprintf(&text, "- Empresa: %s\n", s.Company)
	fmt.Fprintf(&text, "- Industria: %s\n", industry)
	fmt.Fprintf(&text, "- Tamaño de empresa: %s\n\n", size)
	fmt.Fprintf(&text, "Mensaje:\n%s\n\n", s.Message)
	fmt.Fprintf(&text, "---\nEsta consulta fue enviada desde el formulario de contacto en %s\n", c.siteHost)

	replyHref := "mailto:" + s.Email + "?subject=" + url.PathEscape(replySubject)
	html, err := templates.Render(ctx, templates.Layout("Nueva consulta - Amoxtli School",
		templates.Banner("Nueva Consulta", "Amoxtli School"),
		templates.Details("Información de Contacto",
			templates.Field{Label: "Nombre", Value: s.Name},
			templates.Field{Label: "Email", Value: s.Email, Href: "mailto:" + s.Email},
			templates.Field{Label: "Empresa", Value: s.Company},
			templates.Field{Label: "Industria", Value: industry},
			templates.Field{Label: "Tamaño", Value: size},
		),
		templates.MessageBlock("Mensaje", s.Message),
		templates.Button(replyHref, "Responder Consulta"),
		templates.Footer(
			"Esta consulta fue enviada desde "+c.siteHost,
			c.now().In(c.loc).Format(footerTimeLayout),
		),
	))
	if err != nil {
		return email.Message{}, fmt.Errorf("render notification: %w", err)
	}

	return email.Message{
		To:      c.business,
		From:    c.from,
		ReplyTo: s.Email,
		Subject: notificationSubject(s),
		HTML:    html,
		Text:    text.String(),
		Tag:     tagNotification,
	}, nil
}

func (c *composer) confirmation(ctx context.Context, s Submission) (email.Message, error) {
	industry := Label(Industries, s.Industry)
	size := Label(CompanySizes, s.CompanySize)

	var text strings.Builder
	fmt.Fprintf(&text, "Hola %s,\n\n", s.Name)
	text.WriteString("¡Gracias por contactarnos! Hemos recibido tu consulta y nos pondremos en contacto contigo pronto.\n\n")
	text.WriteString("Resumen de tu consulta:\n")
	fmt.Fprintf(&text, "- Empresa: %s\n", s.Company)
	fmt.Fprintf(&text, "- Industria: %s\n", industry)
	fmt.Fprintf(&text, "- Tamaño: %s\n", size)
	fmt.Fprintf(&text, "- Mensaje: %s\n\n", s.Message)
	text.WriteString("Nuestro equipo revisará tu consulta y te responderá dentro de las próximas 24 horas.\n\n")
	fmt.Fprintf(&text, "Saludos,\nEl equipo de Amoxtli School\n%s\n", c.siteURL)

	html, err := templates.Render(ctx, templates.Layout("Confirmación - Amoxtli School",
		templates.Banner("¡Gracias por contactarnos!", "Tu consulta ha sido recibida exitosamente"),
		templates.Heading("Hola, "+s.Name),
		templates.Paragraph("Hemos recibido tu consulta y nuestro equipo la revisará cuidadosamente para brindarte la mejor propuesta de capacitación."),
		templates.Details("Resumen de tu consulta",
			templates.Field{Label: "Empresa", Value: s.Company},
			templates.Field{Label: "Industria", Value: industry},
			templates.Field{Label: "Tamaño", Value: size},
		),
		templates.MessageBlock("Tu mensaje", s.Message),
		templates.Heading("Tiempo de Respuesta"),
		templates.Paragraph("Nuestro equipo de expertos revisará tu consulta y te responderá dentro de las próximas 24 horas con una propuesta personalizada."),
		templates.Steps("¿Qué sigue?", nextSteps...),
		templates.Button(c.siteURL, c.siteHost),
		templates.Footer(
			"El equipo de Amoxtli School",
			"Especialistas en capacitación tecnológica e IA",
			"Si no solicitaste esta información, puedes ignorar este email.",
			"Este mensaje fue enviado automáticamente, por favor no respondas a este correo.",
		),
	))
	if err != nil {
		return email.Message{}, fmt.Errorf("render confirmation: %w", err)
	}

	return email.Message{
		To:      s.Email,
		From:    c.from,
		Subject: confirmationSubject,
		HTML:    html,
		Text:    text.String(),
		Tag:     tagConfirmation,
	}, nil
}

package templates_test

import (
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amoxtli/school-contact/pkg/email/templates"
)

func TestRender_Layout(t *testing.T) {
	t.Parallel()

	html, err := templates.Render(context.Background(), templates.Layout("Título <x>",
		templates.Banner("Nueva Consulta", "Amoxtli School"),
		templates.Heading("Hola"),
		templates.Paragraph("a & b"),
	))
	require.NoError(t, err)

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "<title>Título &lt;x&gt;</title>")
	assert.Contains(t, html, ">Nueva Consulta</h1>")
	assert.Contains(t, html, ">Hola</h2>")
	assert.Contains(t, html, "a &amp; b")
	assert.Contains(t, html, "</div></div></body></html>")
}

func TestLines(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"uno", "dos", "tres"}, templates.Lines("uno\r\ndos\rtres"))
	assert.Equal(t, []string{""}, templates.Lines(""))
}

func TestMessageBlock_KeepsLineBreaks(t *testing.T) {
	t.Parallel()

	html, err := templates.Render(context.Background(), templates.MessageBlock("Mensaje", "uno\r\ndos\n<b>tres</b>"))
	require.NoError(t, err)
	assert.Contains(t, html, "uno<br>dos<br>&lt;b&gt;tres&lt;/b&gt;</p>")
}

func TestURLsAreSanitized(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		c    templ.Component
	}{
		{"button", templates.Button("javascript:alert(1)", "Click")},
		{"details link", templates.Details("", templates.Field{Label: "Email", Value: "x", Href: "javascript:alert(1)"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			html, err := templates.Render(context.Background(), tt.c)
			require.NoError(t, err)
			assert.NotContains(t, html, "javascript:")
			assert.Contains(t, html, `href="about:invalid#TemplFailedSanitizationURL"`)
		})
	}
}

func TestDetails_EscapesValuesAndLinks(t *testing.T) {
	t.Parallel()

	html, err := templates.Render(context.Background(), templates.Details("Datos",
		templates.Field{Label: "Nombre", Value: `<script>alert(1)</script>`},
		templates.Field{Label: "Email", Value: "ana@example.com", Href: `mailto:ana@example.com?x="y"`},
	))
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, `href="mailto:ana@example.com?x=&#34;y&#34;"`)
	assert.Contains(t, html, "Nombre:")
}

func TestButtonStepsFooter(t *testing.T) {
	t.Parallel()

	html, err := templates.Render(context.Background(), templates.Layout("x", nil,
		templates.Steps("¿Qué sigue?", "uno", "dos"),
		templates.Button("https://amoxtli.tech", "Visitar"),
		templates.Footer("línea 1", "línea 2"),
	))
	require.NoError(t, err)
	assert.Contains(t, html, "<li>uno</li><li>dos</li>")
	assert.Contains(t, html, `href="https://amoxtli.tech"`)
	assert.Contains(t, html, ">Visitar</a>")
	assert.Contains(t, html, "línea 2")
}

package email_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amoxtli/school-contact/pkg/email"
)

func TestDevSender_Send(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "emails")
	sender := email.NewDevSender(dir)

	msg := validMessage()
	msg.Tag = "contact-notification"
	require.NoError(t, sender.Send(context.Background(), msg))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	byExt := map[string]string{}
	for _, e := range entries {
		assert.Contains(t, e.Name(), "contact-notification")
		byExt[filepath.Ext(e.Name())] = filepath.Join(dir, e.Name())
	}

	html, err := os.ReadFile(byExt[".html"])
	require.NoError(t, err)
	assert.Equal(t, msg.HTML, string(html))

	text, err := os.ReadFile(byExt[".txt"])
	require.NoError(t, err)
	assert.Equal(t, msg.Text, string(text))

	raw, err := os.ReadFile(byExt[".json"])
	require.NoError(t, err)
	var meta map[string]any
	require.NoError(t, json.Unmarshal(raw, &meta))
	assert.Equal(t, msg.To, meta["to"])
	assert.Equal(t, msg.Subject, meta["subject"])
	assert.NotEmpty(t, meta["id"])
}

func TestDevSender_FilenameFromSubject(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	msg := validMessage()
	msg.Subject = "Nueva consulta de Ana / ACME?"
	msg.HTML = ""
	require.NoError(t, email.NewDevSender(dir).Send(context.Background(), msg))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2, "no html file when the body is text only")
	for _, e := range entries {
		assert.True(t, strings.Contains(e.Name(), "nueva_consulta_de_ana__acme"), e.Name())
	}
}

func TestDevSender_RejectsInvalid(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	msg := validMessage()
	msg.To = "nope"
	err := email.NewDevSender(dir).Send(context.Background(), msg)
	assert.ErrorIs(t, err, email.ErrInvalidMessage)

	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

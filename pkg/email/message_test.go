package email_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amoxtli/school-contact/pkg/email"
)

func validMessage() email.Message {
	return email.Message{
		To:      "ana@example.com",
		From:    email.Address{Email: "noreply@amoxtli.tech", Name: "Amoxtli School"},
		ReplyTo: "ana@example.com",
		Subject: "Hola",
		HTML:    "<p>Hola</p>",
		Text:    "Hola",
	}
}

func TestMessage_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*email.Message)
		wantErr string
	}{
		{name: "valid", mutate: func(*email.Message) {}},
		{name: "text only", mutate: func(m *email.Message) { m.HTML = "" }},
		{name: "no reply-to", mutate: func(m *email.Message) { m.ReplyTo = "" }},
		{name: "bad recipient", mutate: func(m *email.Message) { m.To = "ana@example" }, wantErr: "invalid recipient"},
		{name: "bad sender", mutate: func(m *email.Message) { m.From.Email = "" }, wantErr: "invalid sender"},
		{name: "bad reply-to", mutate: func(m *email.Message) { m.ReplyTo = "a b@c.d" }, wantErr: "invalid reply-to"},
		{name: "blank subject", mutate: func(m *email.Message) { m.Subject = "  " }, wantErr: "empty subject"},
		{name: "no body", mutate: func(m *email.Message) { m.HTML, m.Text = "", "" }, wantErr: "empty body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			msg := validMessage()
			tt.mutate(&msg)

			err := msg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, email.ErrInvalidMessage)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidAddress(t *testing.T) {
	t.Parallel()
	assert.True(t, email.ValidAddress("a@b.co"))
	assert.True(t, email.ValidAddress("first.last+tag@sub.example.mx"))
	assert.False(t, email.ValidAddress("a@b"))
	assert.False(t, email.ValidAddress("a @b.co"))
	assert.False(t, email.ValidAddress("@b.co"))
	assert.False(t, email.ValidAddress(""))
	assert.False(t, email.ValidAddress("ana\u00a0lopez@x.com"))
	assert.False(t, email.ValidAddress("ana\vlopez@x.com"))
	assert.False(t, email.ValidAddress("ana\u2028x@x.com"))
	assert.False(t, email.ValidAddress("ana@x\u3000y.com"))
}

func TestAddress_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "noreply@amoxtli.tech", email.Address{Email: "noreply@amoxtli.tech"}.String())
	assert.Equal(t, `"Amoxtli School" <noreply@amoxtli.tech>`,
		email.Address{Email: "noreply@amoxtli.tech", Name: "Amoxtli School"}.String())
}

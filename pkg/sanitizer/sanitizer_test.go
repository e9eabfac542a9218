package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amoxtli/school-contact/pkg/sanitizer"
)

func TestSingleLine(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in, want string
	}{
		{"Ana", "Ana"},
		{"  Ana  María ", "Ana María"},
		{"Acme\r\nBcc: evil@example.com", "Acme Bcc: evil@example.com"},
		{"tab\tand\x00null", "tab andnull"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizer.SingleLine(tt.in))
		})
	}
}

func TestNFC(t *testing.T) {
	t.Parallel()
	decomposed := "Jose\u0301 Mari\u0301a"
	assert.Equal(t, "José María", sanitizer.NFC(decomposed))
	assert.Equal(t, "plain", sanitizer.NFC("plain"))
}

func TestNormalizeNewlines(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a\nb\nc", sanitizer.NormalizeNewlines("a\r\nb\rc"))
}

func TestRemoveControlChars(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "line\nnext\tcol", sanitizer.RemoveControlChars("li\x07ne\nnext\tcol\x1b"))
}

func TestTrimToLower(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ana@x.com", sanitizer.TrimToLower("  Ana@X.com "))
	assert.Equal(t, "x", sanitizer.Trim(" x\n"))
}

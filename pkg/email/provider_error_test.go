package email_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amoxtli/school-contact/pkg/email"
)

func TestCategoryOf(t *testing.T) {
	t.Parallel()

	auth := &email.ProviderError{Category: email.CategoryAuth, Code: 10, Message: "bad token"}

	assert.Equal(t, email.Category(""), email.CategoryOf(nil))
	assert.Equal(t, email.CategoryAuth, email.CategoryOf(auth))
	assert.Equal(t, email.CategoryAuth, email.CategoryOf(fmt.Errorf("leg notification: %w", auth)))
	assert.Equal(t, email.CategoryRequest, email.CategoryOf(fmt.Errorf("%w: empty body", email.ErrInvalidMessage)))
	assert.Equal(t, email.CategoryUnknown, email.CategoryOf(errors.New("dial tcp: timeout")))
}

func TestProviderError(t *testing.T) {
	t.Parallel()
	err := &email.ProviderError{Category: email.CategoryRequest, Code: 300, Message: "Invalid 'To' address"}
	assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
	assert.Contains(t, err.Error(), "300")
	assert.Contains(t, err.Error(), "request")
}

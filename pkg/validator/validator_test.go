package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amoxtli/school-contact/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("no failures returns nil", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.RequiredString("name", "Ana"),
			validator.MaxLenString("name", "Ana", 10),
		)
		assert.NoError(t, err)
	})

	t.Run("failures keep rule order", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.RequiredString("name", "  "),
			validator.RequiredString("email", "a@b.co"),
			validator.RequiredString("message", "\n\t"),
		)
		require.Error(t, err)
		ve := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"name", "message"}, ve.Fields())
		assert.Equal(t, "validation failed: name: field is required; message: field is required", err.Error())
	})

	t.Run("fields are deduplicated", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.RequiredString("email", ""),
			validator.MaxLenString("email", "", -1),
		)
		assert.Equal(t, []string{"email"}, validator.ExtractValidationErrors(err).Fields())
	})
}

func TestRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule validator.Rule
		want bool
	}{
		{"max len counts runes", validator.MaxLenString("f", "ñññ", 3), true},
		{"max len exceeded", validator.MaxLenString("f", "abcd", 3), false},
		{"one of", validator.OneOfString("f", "retail", []string{"retail", "legal"}), true},
		{"not one of", validator.OneOfString("f", "space", []string{"retail", "legal"}), false},
		{"when false skips", validator.When(false, validator.RequiredString("f", "")), true},
		{"when true applies", validator.When(true, validator.RequiredString("f", "")), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.rule.Check())
		})
	}
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()
	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("plain")))

	wrapped := fmt.Errorf("ctx: %w", validator.Apply(validator.RequiredString("name", "")))
	assert.Equal(t, []string{"name"}, validator.ExtractValidationErrors(wrapped).Fields())
}

package contact

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/amoxtli/school-contact/pkg/email"
	"github.com/amoxtli/school-contact/pkg/sanitizer"
	"github.com/amoxtli/school-contact/pkg/validator"
)

// Submission is the JSON body posted by the contact form.
type Submission struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	Industry    string `json:"industry"`
	CompanySize string `json:"companySize"`
	Message     string `json:"message"`
	Honeypot    string `json:"honeypot,omitempty"`
}

// Field length caps, in runes.
const (
	MaxNameLen    = 200
	MaxEmailLen   = 254
	MaxCompanyLen = 200
	MaxChoiceLen  = 100
	MaxMessageLen = 5000
)

// Normalize trims every field, strips control characters and composes
// Unicode to NFC. Line breaks survive in Message only. Honeypot is left
// untouched.
func (s Submission) Normalize() Submission {
	return Submission{
		Name:        sanitizer.SingleLine(sanitizer.NFC(s.Name)),
		Email:       sanitizer.Trim(s.Email),
		Company:     sanitizer.SingleLine(sanitizer.NFC(s.Company)),
		Industry:    sanitizer.Trim(s.Industry),
		CompanySize: sanitizer.Trim(s.CompanySize),
		Message:     sanitizer.Trim(sanitizer.NormalizeNewlines(sanitizer.RemoveControlChars(sanitizer.NFC(s.Message)))),
		Honeypot:    s.Honeypot,
	}
}

// Validate runs the checks in order and returns the first failing class:
// ErrSpam, ErrMissingFields, ErrInvalidEmail, ErrFieldTooLong, then
// ErrInvalidChoice when strict is set. The missing, too-long and
// invalid-choice errors carry validator.ValidationErrors naming the fields.
func (s Submission) Validate(strict bool) error {
	if s.Honeypot != "" {
		return ErrSpam
	}

	if err := validator.Apply(
		validator.RequiredString("name", s.Name),
		validator.RequiredString("email", s.Email),
		validator.RequiredString("company", s.Company),
		validator.RequiredString("industry", s.Industry),
		validator.RequiredString("companySize", s.CompanySize),
		validator.RequiredString("message", s.Message),
	); err != nil {
		return errors.Join(ErrMissingFields, err)
	}

	if !email.ValidAddress(s.Email) {
		return errors.Join(ErrInvalidEmail, validator.ValidationErrors{
			{Field: "email", Message: "must be a valid email address"},
		})
	}

	if err := validator.Apply(
		validator.MaxLenString("name", s.Name, MaxNameLen),
		validator.MaxLenString("email", s.Email, MaxEmailLen),
		validator.MaxLenString("company", s.Company, MaxCompanyLen),
		validator.MaxLenString("industry", s.Industry, MaxChoiceLen),
		validator.MaxLenString("companySize", s.CompanySize, MaxChoiceLen),
		validator.MaxLenString("message", s.Message, MaxMessageLen),
	); err != nil {
		return errors.Join(ErrFieldTooLong, err)
	}

	if strict {
		if err := validator.Apply(
			validator.OneOfString("industry", s.Industry, Codes(Industries)),
			validator.OneOfString("companySize", s.CompanySize, Codes(CompanySizes)),
		); err != nil {
			return errors.Join(ErrInvalidChoice, err)
		}
	}
	return nil
}

// Fingerprint identifies a submission by content. Email case and
// surrounding whitespace do not matter.
func (s Submission) Fingerprint() string {
	h := sha256.New()
	for _, v := range []string{
		strings.ToLower(s.Name),
		sanitizer.TrimToLower(s.Email),
		strings.ToLower(s.Company),
		s.Industry,
		s.CompanySize,
		s.Message,
	} {
		fmt.Fprintf(h, "%d:%s|", len(v), v)
	}
	return hex.EncodeToString(h.Sum(nil))
}

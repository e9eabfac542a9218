package contactform

import (
	"github.com/amoxtli/school-contact/pkg/email"
	"github.com/amoxtli/school-contact/pkg/validator"
)

// FormData holds the field values as typed by the user.
type FormData struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	Industry    string `json:"industry"`
	CompanySize string `json:"companySize"`
	Message     string `json:"message"`
	Honeypot    string `json:"honeypot,omitempty"`
}

// FieldErrors lists failing fields in form order with their display message.
type FieldErrors = validator.ValidationErrors

const (
	MsgNameRequired     = "El nombre es requerido"
	MsgEmailRequired    = "El email es requerido"
	MsgEmailInvalid     = "El email no es válido"
	MsgCompanyRequired  = "La empresa es requerida"
	MsgIndustryRequired = "La industria es requerida"
	MsgSizeRequired     = "El tamaño de empresa es requerido"
	MsgMessageRequired  = "El mensaje es requerido"
	MsgSpam             = "Spam detected"
)

// Validate checks every field and returns the failures in form order. The
// email format is only checked when an email was entered.
func Validate(d FormData) (bool, FieldErrors) {
	emailPresent := validator.RequiredString("email", d.Email).Check()

	err := validator.Apply(
		message(validator.RequiredString("name", d.Name), MsgNameRequired),
		message(validator.RequiredString("email", d.Email), MsgEmailRequired),
		validator.When(emailPresent, validator.Rule{
			Check: func() bool { return email.ValidAddress(d.Email) },
			Error: validator.ValidationError{Field: "email", Message: MsgEmailInvalid},
		}),
		message(validator.RequiredString("company", d.Company), MsgCompanyRequired),
		message(validator.RequiredString("industry", d.Industry), MsgIndustryRequired),
		message(validator.RequiredString("companySize", d.CompanySize), MsgSizeRequired),
		message(validator.RequiredString("message", d.Message), MsgMessageRequired),
		validator.Rule{
			Check: func() bool { return d.Honeypot == "" },
			Error: validator.ValidationError{Field: "honeypot", Message: MsgSpam},
		},
	)
	if err == nil {
		return true, nil
	}
	return false, validator.ExtractValidationErrors(err)
}

// FirstError returns the message of the first failing field, or "".
func FirstError(errs FieldErrors) string {
	if len(errs) == 0 {
		return ""
	}
	return errs[0].Message
}

// FieldError returns the message for field, or "".
func FieldError(errs FieldErrors, field string) string {
	for _, e := range errs {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

func message(r validator.Rule, msg string) validator.Rule {
	r.Error.Message = msg
	return r
}

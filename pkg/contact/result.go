package contact

import (
	"net/http"
	"strings"

	"github.com/amoxtli/school-contact/pkg/email"
)

// User-facing messages. They are part of the HTTP contract.
const (
	MsgSuccess       = "Consulta enviada exitosamente. Recibirás una confirmación por email."
	MsgSpam          = "Spam detected"
	MsgMissingPrefix = "Campos requeridos faltantes: "
	MsgInvalidEmail  = "Formato de email inválido"
	MsgInvalidPrefix = "Valor inválido: "
	MsgTooLongPrefix = "Campo demasiado largo: "
	MsgEmailConfig   = "Error de configuración del servicio de email"
	MsgEmailData     = "Error en los datos del email"
	MsgInternal      = "Error interno del servidor"
	MsgTooMany       = "Demasiadas solicitudes. Por favor, intenta de nuevo más tarde."
	MsgAlive         = "Contact API endpoint is working"
)

// Outcome is the terminal state of one submission.
type Outcome string

const (
	OutcomeSpam      Outcome = "spam"
	OutcomeInvalid   Outcome = "invalid"
	OutcomeDelivered Outcome = "delivered"
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeFailed    Outcome = "failed"
)

// Result is what Submit decided, ready to be written as a response.
type Result struct {
	Status   int
	Success  bool
	Message  string
	Outcome  Outcome
	Category email.Category // set when Outcome is OutcomeFailed
}

// Response is the JSON body of POST /api/contact.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (r Result) Response() Response {
	return Response{Success: r.Success, Message: r.Message}
}

func rejected(outcome Outcome, msg string) Result {
	return Result{Status: http.StatusBadRequest, Message: msg, Outcome: outcome}
}

func delivered(outcome Outcome) Result {
	return Result{Status: http.StatusOK, Success: true, Message: MsgSuccess, Outcome: outcome}
}

func internalError() Result {
	return Result{Status: http.StatusInternalServerError, Message: MsgInternal, Outcome: OutcomeFailed, Category: email.CategoryUnknown}
}

func failed(category email.Category) Result {
	switch category {
	case email.CategoryAuth:
		return Result{Status: http.StatusInternalServerError, Message: MsgEmailConfig, Outcome: OutcomeFailed, Category: category}
	case email.CategoryRequest:
		return Result{Status: http.StatusBadRequest, Message: MsgEmailData, Outcome: OutcomeFailed, Category: category}
	default:
		return internalError()
	}
}

func joinFields(fields []string) string {
	return strings.Join(fields, ", ")
}

package contact

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/amoxtli/school-contact/pkg/handler"
	"github.com/amoxtli/school-contact/pkg/logger"
	"github.com/amoxtli/school-contact/pkg/ratelimit"
)

// Routes returns a router serving /api/contact. submitMiddleware applies to
// POST only, which is where the rate limiter goes.
func Routes(svc *Service, submitMiddleware ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/api/contact", func(w http.ResponseWriter, _ *http.Request) {
		handler.WriteJSON(w, http.StatusOK, map[string]string{"message": MsgAlive})
	})

	r.With(submitMiddleware...).Post("/api/contact", handler.Wrap(
		handler.HandlerFunc[handler.Context, Submission](svc.handleSubmit),
		handler.WithBinder[handler.Context, Submission](handler.BindJSON(svc.maxBody)),
		handler.WithErrorHandler[handler.Context, Submission](svc.handleError),
	))

	return r
}

func (s *Service) handleSubmit(ctx handler.Context, sub Submission) handler.Response {
	res := s.Submit(ctx, sub)
	return handler.JSON(res.Status, res.Response())
}

// handleError answers requests whose body could not be decoded. They are
// reported as internal errors, the same as any other unexpected failure.
// Render failures happen after the header is written and are only logged.
func (s *Service) handleError(ctx handler.Context, err error) {
	if !errors.Is(err, handler.ErrInvalidJSON) && !errors.Is(err, handler.ErrBodyTooLarge) {
		s.log.ErrorContext(ctx, "failed to write contact response", logger.Error(err))
		return
	}
	s.log.ErrorContext(ctx, "failed to decode contact request", logger.Error(err))
	handler.WriteJSON(ctx.ResponseWriter(), http.StatusInternalServerError, internalError().Response())
}

// TooManyRequests is the ratelimit.LimitHandler for the submit route.
func TooManyRequests(w http.ResponseWriter, _ *http.Request, _ *ratelimit.Result) {
	handler.WriteJSON(w, http.StatusTooManyRequests, Response{Success: false, Message: MsgTooMany})
}

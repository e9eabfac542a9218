package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amoxtli/school-contact/pkg/handler"
)

type greetRequest struct {
	Name string `json:"name"`
}

type greetReply struct {
	Message string `json:"message"`
}

func greet(_ handler.Context, req greetRequest) handler.Response {
	return handler.JSON(http.StatusOK, greetReply{Message: "hola " + req.Name})
}

func TestWrap_BindsAndRenders(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(handler.HandlerFunc[handler.Context, greetRequest](greet),
		handler.WithBinder[handler.Context, greetRequest](handler.BindJSON(1024)),
	)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ana","extra":true}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"hola Ana"}`, rec.Body.String())
}

func TestWrap_BindErrorGoesToErrorHandler(t *testing.T) {
	t.Parallel()

	var got error
	h := handler.Wrap(handler.HandlerFunc[handler.Context, greetRequest](greet),
		handler.WithBinder[handler.Context, greetRequest](handler.BindJSON(1024)),
		handler.WithErrorHandler[handler.Context, greetRequest](func(ctx handler.Context, err error) {
			got = err
			handler.WriteJSON(ctx.ResponseWriter(), http.StatusInternalServerError, greetReply{Message: "fallo"})
		}),
	)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`)))

	assert.ErrorIs(t, got, handler.ErrInvalidJSON)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"fallo"}`, rec.Body.String())
}

func TestWrap_NilResponse(t *testing.T) {
	t.Parallel()

	var got error
	h := handler.Wrap(
		handler.HandlerFunc[handler.Context, greetRequest](func(handler.Context, greetRequest) handler.Response { return nil }),
		handler.WithErrorHandler[handler.Context, greetRequest](func(ctx handler.Context, err error) {
			got = err
			ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
		}),
	)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, got, handler.ErrNilResponse)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestBindJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "valid", body: `{"name":"Ana"}`},
		{name: "unknown fields allowed", body: `{"name":"Ana","honeypot":""}`},
		{name: "empty", body: ``, wantErr: handler.ErrInvalidJSON},
		{name: "truncated", body: `{"name":"A`, wantErr: handler.ErrInvalidJSON},
		{name: "wrong type", body: `{"name":42}`, wantErr: handler.ErrInvalidJSON},
		{name: "not an object", body: `hola`, wantErr: handler.ErrInvalidJSON},
		{name: "leading whitespace", body: " \n{\"name\":\"Ana\"}"},
		{name: "literal null", body: `null`, wantErr: handler.ErrInvalidJSON},
		{name: "padded null", body: "  null\n", wantErr: handler.ErrInvalidJSON},
		{name: "array", body: `[{"name":"Ana"}]`, wantErr: handler.ErrInvalidJSON},
		{name: "string", body: `"Ana"`, wantErr: handler.ErrInvalidJSON},
		{name: "whitespace only", body: "  \n", wantErr: handler.ErrInvalidJSON},
		{name: "too large", body: `{"name":"` + strings.Repeat("a", 100) + `"}`, wantErr: handler.ErrBodyTooLarge},
	}

	bind := handler.BindJSON(64)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var req greetRequest
			err := bind(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body)), &req)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, "Ana", req.Name)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

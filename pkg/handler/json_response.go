package handler

import (
	"encoding/json"
	"net/http"
)

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON responds with v encoded as JSON.
func JSON(status int, v any) Response {
	return jsonResponse{status: status, body: v}
}

// WriteJSON writes v directly, for code paths outside Wrap such as
// middleware and error handlers.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	_ = JSON(status, v).Render(w, nil)
}

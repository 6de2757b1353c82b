// Package responder centralizes JSON request decoding and response writing.
package responder

import (
	"encoding/json"
	"net/http"
)

type Responder interface {
	Respond(w http.ResponseWriter, status int, data interface{})
	Error(w http.ResponseWriter, status int, message string)
	Decode(r *http.Request, v interface{}) error
}

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

type JSONResponder struct{}

func NewJSONResponder() *JSONResponder {
	return &JSONResponder{}
}

func (j *JSONResponder) Respond(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func (j *JSONResponder) Error(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func (j *JSONResponder) Decode(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// Package jsonutil provides helper functions for JSON API responses.
//
// Every API endpoint responds with the same envelope:
//
//	{"status": bool, "message": string, "data": <payload or null>}
//
// Use these helpers in handlers to keep Content-Type headers and the
// envelope shape consistent.
package jsonutil

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response body for all API endpoints.
type Envelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// OK writes a 200 envelope with status=true.
func OK(w http.ResponseWriter, message string, data any) {
	JSON(w, http.StatusOK, Envelope{Status: true, Message: message, Data: data})
}

// Created writes a 201 envelope with status=true.
func Created(w http.ResponseWriter, message string, data any) {
	JSON(w, http.StatusCreated, Envelope{Status: true, Message: message, Data: data})
}

// Fail writes an envelope with status=false and a null data field.
func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{Status: false, Message: message, Data: nil})
}

// BadRequest writes a 400 failure envelope.
func BadRequest(w http.ResponseWriter, message string) {
	Fail(w, http.StatusBadRequest, message)
}

// NotFound writes a 404 failure envelope.
func NotFound(w http.ResponseWriter, message string) {
	Fail(w, http.StatusNotFound, message)
}

// Conflict writes a 409 failure envelope.
func Conflict(w http.ResponseWriter, message string) {
	Fail(w, http.StatusConflict, message)
}

// InternalError writes a 500 failure envelope. Keep the message generic;
// log the underlying error separately.
func InternalError(w http.ResponseWriter, message string) {
	Fail(w, http.StatusInternalServerError, message)
}

// Decode reads and decodes JSON from the request body into v.
//
// Usage:
//
//	var in CreateCategoryRequest
//	if err := jsonutil.Decode(r, &in); err != nil {
//	    jsonutil.BadRequest(w, "Invalid JSON payload")
//	    return
//	}
func Decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

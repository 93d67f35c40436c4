// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package types carries the JSON envelopes shared by all HTTP handlers.
package types

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Status  int    `json:"status"`
}

// ErrorResponse is the body for every non-2xx reply. MissingPermissions is
// set only on authorization failures.
type ErrorResponse struct {
	Error              string   `json:"error"`
	MissingPermissions []string `json:"missing_permissions,omitempty"`
}

// WriteJSON serializes body with the given status. Encoding failures are
// ignored, the status line has already been sent.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteError replies with the standard error envelope.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Error: message})
}

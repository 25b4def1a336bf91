// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every API endpoint replies with, for data and
// errors alike, so clients parse one shape.
type Response struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Status  int    `json:"status"`
}

// WriteResponse serializes the envelope onto w. Encoding happens after
// the header is written, so an encode fault cannot change the status
// anymore; it is the caller's logger that surfaces it.
func WriteResponse(w http.ResponseWriter, status int, data any, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(Response{
		Data:    data,
		Message: message,
		Status:  status,
	})
}

// WriteErrorResponse is WriteResponse without a data payload.
func WriteErrorResponse(w http.ResponseWriter, status int, message string) error {
	return WriteResponse(w, status, nil, message)
}

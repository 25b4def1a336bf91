// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestWriteResponse(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		data     any
		message  string
		expected map[string]any
	}{
		{
			name:    "Data payload",
			status:  http.StatusOK,
			data:    map[string]any{"id": "42"},
			message: "",
			expected: map[string]any{
				"data":   map[string]any{"id": "42"},
				"status": float64(http.StatusOK),
			},
		},
		{
			name:    "Message only",
			status:  http.StatusCreated,
			data:    nil,
			message: "created",
			expected: map[string]any{
				"message": "created",
				"status":  float64(http.StatusCreated),
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			if err := WriteResponse(w, test.status, test.data, test.message); err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}

			if w.Code != test.status {
				t.Errorf("expected status: %d, got: %d", test.status, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected content type application/json, got: %s", ct)
			}

			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to unmarshal body: %v", err)
			}
			if !reflect.DeepEqual(body, test.expected) {
				t.Errorf("expected body: %v, got: %v", test.expected, body)
			}
		})
	}
}

func TestWriteErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()

	if err := WriteErrorResponse(w, http.StatusNotFound, "user not found"); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	var envelope Response
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to unmarshal body: %v", err)
	}

	if envelope.Status != http.StatusNotFound || envelope.Message != "user not found" || envelope.Data != nil {
		t.Errorf("unexpected envelope: %+v", envelope)
	}
}

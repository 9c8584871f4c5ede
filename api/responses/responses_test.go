package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/mobimart/mobimart-backend/pkg/errors"
	"github.com/mobimart/mobimart-backend/pkg/types"
)

func TestWriteSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccess(rec, map[string]any{"count": 3})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
	var envelope types.SuccessEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	data, ok := envelope.Data.(map[string]any)
	if !ok || data["count"] != float64(3) {
		t.Fatalf("unexpected payload: %v", envelope.Data)
	}
}

func TestWriteErrorMapsCodes(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantStatus    int
		wantCode      string
		wantMessage   string
		wantRetryable bool
	}{
		{
			name:        "validation passes through message",
			err:         pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_ERROR",
			wantMessage: "quantity must be positive",
		},
		{
			name:        "not found passes through message",
			err:         pkgerrors.New(pkgerrors.CodeNotFound, "invalid discount code"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "invalid discount code",
		},
		{
			name:        "expired maps to gone",
			err:         pkgerrors.New(pkgerrors.CodeExpired, "this offer has expired"),
			wantStatus:  http.StatusGone,
			wantCode:    "OFFER_EXPIRED",
			wantMessage: "this offer has expired",
		},
		{
			name:          "storage hides internals",
			err:           pkgerrors.Wrap(pkgerrors.CodeStorage, errors.New("redis: connection refused"), "write cart"),
			wantStatus:    http.StatusInternalServerError,
			wantCode:      "STORAGE_ERROR",
			wantMessage:   "storage unavailable",
			wantRetryable: true,
		},
		{
			name:          "unknown errors become internal",
			err:           errors.New("boom"),
			wantStatus:    http.StatusInternalServerError,
			wantCode:      "INTERNAL_ERROR",
			wantMessage:   "internal server error",
			wantRetryable: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(context.Background(), nil, rec, tc.err)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}
			var envelope types.ErrorEnvelope
			if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
				t.Fatalf("unexpected body: %v", err)
			}
			if envelope.Error.Code != tc.wantCode {
				t.Fatalf("expected code %q, got %q", tc.wantCode, envelope.Error.Code)
			}
			if envelope.Error.Message != tc.wantMessage {
				t.Fatalf("expected message %q, got %q", tc.wantMessage, envelope.Error.Message)
			}
			if envelope.Error.Retryable != tc.wantRetryable {
				t.Fatalf("expected retryable=%v, got %v", tc.wantRetryable, envelope.Error.Retryable)
			}
		})
	}
}

func TestWriteErrorIncludesValidationDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
		WithDetails(map[string]string{"email": "is required"})
	WriteError(context.Background(), nil, rec, err)

	var envelope types.ErrorEnvelope
	if jsonErr := json.Unmarshal(rec.Body.Bytes(), &envelope); jsonErr != nil {
		t.Fatalf("unexpected body: %v", jsonErr)
	}
	details, ok := envelope.Error.Details.(map[string]any)
	if !ok {
		t.Fatalf("expected details map, got %T", envelope.Error.Details)
	}
	if details["email"] != "is required" {
		t.Fatalf("unexpected details: %v", details)
	}
}

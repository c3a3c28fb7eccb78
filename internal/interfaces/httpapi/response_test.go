package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/league-api/internal/platform/validation"
	"github.com/riskibarqy/league-api/internal/usecase"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	return body
}

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestWriteError_ValidationErrorsCarryLocation(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("create team: %w", validation.Errors{
		{Field: "name", Message: "name is required"},
		{Field: "description", Message: "description must be no more than 1000 characters"},
	}))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	errorObj, _ := decodeEnvelope(t, rec)["error"].(map[string]any)
	items, _ := errorObj["errors"].([]any)
	if len(items) != 2 {
		t.Fatalf("expected 2 error items, got %d", len(items))
	}
	first, _ := items[0].(map[string]any)
	if first["location"] != "name" || first["locationType"] != "body" || first["message"] != "name is required" {
		t.Fatalf("unexpected first error item: %v", first)
	}
}

func TestWriteError_HidesUnexpectedErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, errors.New("pq: connection refused"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	errorObj, _ := decodeEnvelope(t, rec)["error"].(map[string]any)
	if got := errorObj["message"]; got != "internal server error" {
		t.Fatalf("expected generic message, got %v", got)
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "not found", err: fmt.Errorf("%w: team", usecase.ErrNotFound), status: http.StatusNotFound},
		{name: "nothing to update", err: usecase.ErrNothingToUpdate, status: http.StatusBadRequest},
		{name: "conflict", err: usecase.ErrConflict, status: http.StatusBadRequest},
		{name: "unexpected", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapError(context.Background(), tt.err).HTTPStatus; got != tt.status {
				t.Fatalf("mapError(%v)=%d want=%d", tt.err, got, tt.status)
			}
		})
	}
}

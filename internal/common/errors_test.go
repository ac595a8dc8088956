package common

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"euler_offline/internal/corpus"
	"euler_offline/internal/domain/model"
)

func TestHTTPStatusFromError(t *testing.T) {
	_, parseErr := corpus.Parse("Problem 1\n=\n")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "not found", err: Errorf("problem %q: %w", "x", ErrNotFound), want: http.StatusNotFound},
		{name: "unauthorized", err: ErrUnauthorized, want: http.StatusUnauthorized},
		{name: "forbidden", err: ErrForbidden, want: http.StatusForbidden},
		{name: "bad request", err: Errorf("empty answer: %w", ErrBadRequest), want: http.StatusBadRequest},
		{name: "validation", err: ErrValidation, want: http.StatusBadRequest},
		{name: "rate limited", err: ErrTooManyRequests, want: http.StatusTooManyRequests},
		{name: "no known answer", err: Errorf("check: %w", model.ErrNoKnownAnswer), want: http.StatusConflict},
		{name: "parse error", err: Errorf("reload: %w", parseErr), want: http.StatusUnprocessableEntity},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusFromError(tt.err))
		})
	}
}

func TestRespondWithDomainError_ParseDetails(t *testing.T) {
	_, err := corpus.Parse("Problem 1\n=\nBody\nAnswer: x\nProblem 2\n=\n")
	require.Error(t, err)

	rec := httptest.NewRecorder()
	RespondWithDomainError(rec, err)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Segment)
	assert.Equal(t, []string{"Problem 2", "=", ""}, body.Lines)
	assert.Contains(t, body.Error, "no description")
}

func TestRespondWithDomainError_HidesInternalErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithDomainError(rec, Errorf("failed to read corpus: %w", errors.New("open /srv/problems.txt: permission denied")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}

func TestRespondWithDomainError_KeepsMappedMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithDomainError(rec, Errorf("page %d out of range: %w", 7, ErrValidation))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"page 7 out of range: validation failed"}`, rec.Body.String())
}

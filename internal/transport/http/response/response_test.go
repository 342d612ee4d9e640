package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go-user-api/internal/domain"
	"go-user-api/internal/transport/http/response"
)

func TestFromError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not found", domain.NewNotFound(42), http.StatusNotFound, "User with ID 42 not found."},
		{"username exists", domain.ErrUsernameExists, http.StatusConflict, "Username already exists"},
		{"email exists", domain.ErrEmailExists, http.StatusConflict, "Email already exists"},
		{"no fields to update", domain.ErrNoFieldsToUpdate, http.StatusConflict, "No fields to update"},
		{"store unavailable", fmt.Errorf("%w: connection refused", domain.ErrStoreUnavailable), http.StatusInternalServerError, "Internal server error"},
		{"unclassified", errors.New("pq: deadlock detected"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := response.FromError(tc.err)
			require.Equal(t, tc.wantStatus, status)
			require.Equal(t, response.StatusError, body.Status)
			require.Equal(t, tc.wantMsg, body.Message)
			require.Nil(t, body.Data)
			require.NotEmpty(t, body.ResponseTime)
		})
	}
}

func TestFromError_NeverLeaksInternals(t *testing.T) {
	status, body := response.FromError(errors.New("dial tcp 10.0.0.5:5432: i/o timeout"))
	require.Equal(t, http.StatusInternalServerError, status)
	require.NotContains(t, body.Message, "10.0.0.5")
}

func TestEnvelopeTimestampLayout(t *testing.T) {
	body := response.Success(nil, "ok")
	_, err := time.Parse(response.TimeLayout, body.ResponseTime)
	require.NoError(t, err)
}

func TestFromBindError_DecoderTextNotExposed(t *testing.T) {
	status, body := response.FromBindError(errors.New("invalid character 'x' looking for beginning of value"))
	require.Equal(t, http.StatusUnprocessableEntity, status)
	require.Equal(t, "Validation error", body.Message)
	violations, ok := body.Data.([]response.FieldViolation)
	require.True(t, ok)
	require.Len(t, violations, 1)
	require.Equal(t, "body", violations[0].Field)
	require.Equal(t, "invalid request body", violations[0].Message)
	require.NotContains(t, violations[0].Message, "invalid character")
}

func TestFromBindError_BodyTooLarge(t *testing.T) {
	status, body := response.FromBindError(&http.MaxBytesError{Limit: 16})
	require.Equal(t, http.StatusRequestEntityTooLarge, status)
	require.Equal(t, "Request body too large", body.Message)
	require.Nil(t, body.Data)
}

func TestViolation(t *testing.T) {
	status, body := response.Violation("id", "value is not a valid integer")
	require.Equal(t, http.StatusUnprocessableEntity, status)
	require.Equal(t, "Validation error", body.Message)
	violations, ok := body.Data.([]response.FieldViolation)
	require.True(t, ok)
	require.Len(t, violations, 1)
	require.Equal(t, "id", violations[0].Field)
}

package errors

import (
	"fmt"
	"net/http"
	"testing"

	"estatesync-listings/internal/normalize"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{
			"unrecognized payload",
			fmt.Errorf("decode: %w", normalize.ErrUnrecognizedPayload),
			ErrCodeUnrecognizedPayload,
			http.StatusBadRequest,
		},
		{
			"not found",
			fmt.Errorf("listing not found"),
			ErrCodeListingNotFound,
			http.StatusNotFound,
		},
		{
			"insert failure",
			fmt.Errorf("failed to insert listing: connection refused"),
			ErrCodeStorageFailure,
			http.StatusInternalServerError,
		},
		{
			"query failure",
			fmt.Errorf("failed to query listings: timeout"),
			ErrCodeStorageFailure,
			http.StatusInternalServerError,
		},
		{
			"unknown error",
			fmt.Errorf("something unexpected"),
			"INTERNAL_ERROR",
			http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := MapError(tt.err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Equal(t, tt.wantStatus, appErr.HTTPStatus)
			assert.NotEmpty(t, appErr.UserMessage)
		})
	}
}

func TestMapErrorPassthrough(t *testing.T) {
	original := NewAppError("boom", "user message", ErrCodeStorageFailure, http.StatusInternalServerError, nil)
	mapped := MapError(fmt.Errorf("wrapped: %w", original))
	assert.Same(t, original, mapped)
}

func TestMapErrorNil(t *testing.T) {
	assert.Nil(t, MapError(nil))
}

package errors

import (
	"errors"
	"net/http"
	"strings"

	"estatesync-listings/internal/normalize"
)

// MapError converts a technical error into a user-friendly AppError.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	technicalMessage := err.Error()

	switch {
	case errors.Is(err, normalize.ErrUnrecognizedPayload):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgUnrecognizedPayload,
			Code:             ErrCodeUnrecognizedPayload,
			HTTPStatus:       http.StatusBadRequest,
			OriginalError:    err,
		}
	case strings.Contains(technicalMessage, "listing not found"):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgListingNotFound,
			Code:             ErrCodeListingNotFound,
			HTTPStatus:       http.StatusNotFound,
			OriginalError:    err,
		}
	case strings.Contains(technicalMessage, "failed to insert"),
		strings.Contains(technicalMessage, "failed to query"),
		strings.Contains(technicalMessage, "failed to count"):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgStorageFailure,
			Code:             ErrCodeStorageFailure,
			HTTPStatus:       http.StatusInternalServerError,
			OriginalError:    err,
		}
	default:
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgInternalError,
			Code:             "INTERNAL_ERROR",
			HTTPStatus:       http.StatusInternalServerError,
			OriginalError:    err,
		}
	}
}

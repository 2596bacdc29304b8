// Package apperror defines the error taxonomy surfaced by the API. Every
// error is a kratos *errors.Error so the HTTP status travels with it.
package apperror

import (
	"net/http"
	"strconv"

	"github.com/go-kratos/kratos/v2/errors"
)

const (
	ReasonInvalidRequest = "INVALID_REQUEST"
	ReasonAuth           = "AUTH_ERROR"
	ReasonNotFound       = "NOT_FOUND"
	ReasonProvider       = "PROVIDER_ERROR"
	ReasonTransport      = "TRANSPORT_ERROR"
	ReasonValidation     = "VALIDATION_ERROR"
	ReasonConflict       = "CONFLICT"

	MetadataProviderStatus = "provider_status"
)

func InvalidRequest(message string) *errors.Error {
	return errors.BadRequest(ReasonInvalidRequest, message)
}

func Auth(message string) *errors.Error {
	return errors.Unauthorized(ReasonAuth, message)
}

func NotFound(message string) *errors.Error {
	return errors.NotFound(ReasonNotFound, message)
}

// Conflict marks a uniqueness violation (e.g. duplicate email). It is
// rendered as 400 to match the register contract.
func Conflict(message string) *errors.Error {
	return errors.BadRequest(ReasonConflict, message)
}

// Provider reports a non-success answer from the upstream news API.
func Provider(status int, message string) *errors.Error {
	return errors.BadRequest(ReasonProvider, message).
		WithMetadata(map[string]string{MetadataProviderStatus: strconv.Itoa(status)})
}

// Transport reports a network-level failure talking to an upstream API.
func Transport(cause error) *errors.Error {
	return errors.New(http.StatusInternalServerError, ReasonTransport, cause.Error()).WithCause(cause)
}

// Validation carries field-level messages, keyed by request field name.
func Validation(fields map[string]string) *errors.Error {
	return errors.BadRequest(ReasonValidation, "validation failed").WithMetadata(fields)
}

// Is reports whether err is an apperror with the given reason.
func Is(err error, reason string) bool {
	if err == nil {
		return false
	}
	return errors.Reason(err) == reason
}

// Status maps any error to its HTTP status. Unclassified errors become 500.
func Status(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return int(errors.FromError(err).Code)
}

// Message returns the user-facing message of err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	return errors.FromError(err).Message
}

// Fields returns the field errors of a validation error, or nil.
func Fields(err error) map[string]string {
	if !Is(err, ReasonValidation) {
		return nil
	}
	return errors.FromError(err).Metadata
}

package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/taskgate/internal/credential"
	"github.com/adanyl0v/taskgate/internal/remote"
)

var (
	errInvalidRequestBody = errors.New("invalid request body")
	errNotFound           = errors.New("not found")
	errMethodNotAllowed   = errors.New("method not allowed")
)

type apiError struct {
	Code    int
	Message string
}

func newAPIError(code int, message string) apiError {
	return apiError{
		Code:    code,
		Message: message,
	}
}

func (e apiError) Error() string {
	return e.Message
}

func abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(err.Code, gin.H{"ok": false, "error": err.Message})
}

// errorKind maps one class of failure to the status it is rendered with.
type errorKind struct {
	name   string
	match  func(err error) bool
	status func(err error) int
}

func fixedStatus(code int) func(error) int {
	return func(error) int { return code }
}

// errorKinds is checked in order; the first match wins.
var errorKinds = []errorKind{
	{
		name:   "invalid_request_body",
		match:  func(err error) bool { return errors.Is(err, errInvalidRequestBody) },
		status: fixedStatus(http.StatusBadRequest),
	},
	{
		// The credential belongs to the gateway, not the caller.
		name:   "no_credential",
		match:  func(err error) bool { return errors.Is(err, credential.ErrNoCredential) },
		status: fixedStatus(http.StatusInternalServerError),
	},
	{
		name: "remote_error",
		match: func(err error) bool {
			var remoteErr *remote.RemoteError
			return errors.As(err, &remoteErr)
		},
		status: func(err error) int {
			var remoteErr *remote.RemoteError
			errors.As(err, &remoteErr)
			if remoteErr.StatusCode >= 400 && remoteErr.StatusCode < 500 {
				return remoteErr.StatusCode
			}
			return http.StatusBadGateway
		},
	},
	{
		name:   "invalid_response",
		match:  func(err error) bool { return errors.Is(err, remote.ErrInvalidResponse) },
		status: fixedStatus(http.StatusBadGateway),
	},
	{
		name: "transport_error",
		match: func(err error) bool {
			var transportErr *remote.TransportError
			return errors.As(err, &transportErr)
		},
		status: func(err error) int {
			var transportErr *remote.TransportError
			errors.As(err, &transportErr)
			if transportErr.Timeout() {
				return http.StatusGatewayTimeout
			}
			return http.StatusBadGateway
		},
	},
}

// classify returns the kind name and status for err, defaulting to 500.
func classify(err error) (string, int) {
	for _, kind := range errorKinds {
		if kind.match(err) {
			return kind.name, kind.status(err)
		}
	}
	return "internal", http.StatusInternalServerError
}

// abortWithError logs err once and renders it as {ok:false,error}.
func (h *handlerImpl) abortWithError(c *gin.Context, err error) {
	kind, status := classify(err)
	h.logger.Error().Ctx(c.Request.Context()).
		Err(err).
		Str("kind", kind).
		Int("status", status).
		Str("path", c.Request.URL.Path).
		Msg("request failed")
	abort(c, newAPIError(status, err.Error()))
}

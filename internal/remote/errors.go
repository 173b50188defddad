package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var ErrInvalidResponse = errors.New("invalid response from remote")

// RemoteError is returned when the remote answers with ok=false.
type RemoteError struct {
	Message string
	// StatusCode is the HTTP status of the remote response.
	StatusCode int
}

func (e *RemoteError) Error() string {
	return e.Message
}

// TransportError wraps failures reaching the remote at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("remote unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the call gave up waiting.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/jobboardhq/backoffice/internal/common"
)

// serverMessage is the error envelope the backend uses for non-2xx
// responses.
type serverMessage struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func extractMessage(body []byte) string {
	var m serverMessage
	if err := json.Unmarshal(body, &m); err != nil {
		return ""
	}
	if m.Message != "" {
		return m.Message
	}
	return m.Error
}

// classifyStatus maps a non-2xx response to the shared taxonomy.
func classifyStatus(status int, body []byte) error {
	msg := extractMessage(body)
	switch status {
	case http.StatusUnauthorized:
		return &common.AuthenticationError{Message: msg}
	case http.StatusForbidden:
		return &common.AuthorizationError{Message: msg}
	default:
		return &common.StatusError{Status: status, Message: msg}
	}
}

// classifyTransport wraps errors where no usable response was produced.
// Context cancellation passes through untouched so callers can tell a
// deliberate abort from a dead server.
func classifyTransport(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &common.NetworkError{Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return &common.NetworkError{Err: err}
	}
	return fmt.Errorf("sending request: %w", err)
}

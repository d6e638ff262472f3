package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/rentadmin/internal/common"
)

// ValidationError carries the server's own message for a rejected request
// (e.g. a missing required field), echoed verbatim to the operator.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// errorBody is the backend's error envelope.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// mapStatus translates a non-2xx response into the client error taxonomy.
func mapStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode < http.StatusMultipleChoices:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return common.ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return common.ErrNotFound
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return &ValidationError{Message: serverMessage(resp)}
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("status %d: %w", resp.StatusCode, common.ErrServerFailure)
	default:
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
}

func serverMessage(resp *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil {
		var body errorBody
		if json.Unmarshal(data, &body) == nil {
			if body.Message != "" {
				return body.Message
			}
			if body.Error != "" {
				return body.Error
			}
		}
	}
	return "request rejected: " + resp.Status
}

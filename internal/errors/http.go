package errors

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse is the JSON body written for failed requests
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WriteError maps an error to its HTTP status and writes a JSON body.
// Internal causes are logged but never leak to the client; the caller
// sees only the code and the user-facing message.
func WriteError(w http.ResponseWriter, err error) {
	code := GetCode(err)
	message := GetMessage(err)

	if code == CodeInternal {
		slog.Error("Internal error surfaced to client", "error", err)
		message = "internal error"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code.HTTPStatus())
	if encodeErr := json.NewEncoder(w).Encode(ErrorResponse{
		Code:    code.String(),
		Message: message,
	}); encodeErr != nil {
		slog.Error("Failed to encode error response", "error", encodeErr)
	}
}

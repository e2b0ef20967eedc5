// internal/response/response.go
//
// JSON response envelopes.
//
// Context
// -------
// Every endpoint answers with JSON.  Success bodies carry `success: true`
// plus endpoint-specific fields.  Failures always share one shape:
//
//	{ "success": false, "error": "Validation failed",
//	  "code": "VALIDATION_ERROR", "details": [ … ] }
//
// `details` appears only for validation failures.  Body issues use the key
// `field`, query issues use `param`.
//
// Notes
// -----
// • WriteJSON sets Content-Type before WriteHeader, then encodes.
// • Codes are constants so a typo fails to compile.

package response

import (
	"encoding/json"
	"net/http"

	"github.com/yanizio/apidemo/internal/validation"
)

// Stable failure codes.
const (
	CodeValidation           = "VALIDATION_ERROR"
	CodeQueryValidation      = "QUERY_VALIDATION_ERROR"
	CodeValidationFault      = "VALIDATION_MIDDLEWARE_ERROR"
	CodeQueryValidationFault = "QUERY_VALIDATION_MIDDLEWARE_ERROR"
	CodeInvalidJSON          = "INVALID_JSON"
	CodeInvalidID            = "INVALID_ID"
	CodeConflict             = "CONFLICT"
	CodePayloadTooLarge      = "PAYLOAD_TOO_LARGE"
	CodeNotFound             = "NOT_FOUND"
	CodeMethodNotAllowed     = "METHOD_NOT_ALLOWED"
	CodeInternal             = "INTERNAL_ERROR"
)

// Envelope is the success shape for data-bearing endpoints.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Meta    any    `json:"meta,omitempty"`
}

// Failure is the error envelope.
type Failure struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Code    string   `json:"code"`
	Details []Detail `json:"details,omitempty"`
	Stack   string   `json:"stack,omitempty"`
}

// Detail is one validation issue as sent to clients.  Exactly one of Field
// and Param is set.
type Detail struct {
	Field   string `json:"field,omitempty"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// WriteJSON encodes data with the given status.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// Fail writes a failure envelope without details.
func Fail(w http.ResponseWriter, status int, code, msg string) error {
	return WriteJSON(w, status, Failure{Error: msg, Code: code})
}

// FailWithDetails writes a failure envelope that lists validation details.
func FailWithDetails(w http.ResponseWriter, status int, code, msg string, details []Detail) error {
	return WriteJSON(w, status, Failure{Error: msg, Code: code, Details: details})
}

// FieldDetails converts body issues for the client.
func FieldDetails(issues []validation.Issue) []Detail {
	out := make([]Detail, len(issues))
	for i, is := range issues {
		out[i] = Detail{Field: is.Field, Message: is.Message, Value: is.Value}
	}
	return out
}

// QueryDetails converts query issues for the client.
func QueryDetails(issues []validation.Issue) []Detail {
	out := make([]Detail, len(issues))
	for i, is := range issues {
		out[i] = Detail{Param: is.Field, Message: is.Message, Value: is.Value}
	}
	return out
}

package entities

import "time"

// Operation identifies the kind of document operation a history entry records.
type Operation string

// Operations recorded in history.
const (
	OperationValidate Operation = "validate"
	OperationFormat   Operation = "format"
	OperationMinify   Operation = "minify"
)

// Entry is one recorded operation: the raw input exactly as submitted,
// the produced output when the operation succeeded, and the error message
// when it did not.
type Entry struct {
	ID        string    `json:"id"`
	Operation Operation `json:"operation"`
	Input     string    `json:"input"`
	Output    string    `json:"output,omitempty"`
	Valid     bool      `json:"valid"`
	ErrorMsg  string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

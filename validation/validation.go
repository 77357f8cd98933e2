// Package validation turns raw schema-validator output into clean,
// structured diagnostics for the editor's diagnostics surface.
package validation

// Severity is the importance level of a diagnostic.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// RawError is a low-level error as produced by the external schema
// validator: a message plus an optional 1-based source position.
type RawError struct {
	Message string
	Line    *int
	Column  *int
}

// Error is a translated validator diagnostic. Line and Column are nil
// when the validator reported no position; they are never fabricated.
type Error struct {
	Message  string
	Severity Severity
	Line     *int
	Column   *int
}

// Result is the outcome of a single validation check.
type Result struct {
	Valid    bool
	Message  string
	Severity Severity
}

// OK returns the valid result: no message, info severity.
func OK() Result {
	return Result{Valid: true, Severity: SeverityInfo}
}

// Warn returns a still-valid result carrying a warning message.
func Warn(message string) Result {
	return Result{Valid: true, Message: message, Severity: SeverityWarning}
}

// Fail returns an invalid result carrying an error message.
func Fail(message string) Result {
	return Result{Valid: false, Message: message, Severity: SeverityError}
}

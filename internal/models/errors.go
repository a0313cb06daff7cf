package models

import "errors"

// FailureKind classifies why an operation failed.
type FailureKind string

const (
	FailureNone       FailureKind = ""
	ToolNotFound      FailureKind = "tool_not_found"
	InvocationFailure FailureKind = "invocation_failure"
	Timeout           FailureKind = "timeout"
	ParseFailure      FailureKind = "parse_failure"
	UpdateFailed      FailureKind = "update_failed"
	InvalidRequest    FailureKind = "invalid_request"
)

// ErrInvalidRequest is returned before any work starts when a request
// carries neither a URL nor a file, or both.
var ErrInvalidRequest = errors.New("request must carry exactly one of a URL or a file path")

// ErrParseFailure marks a structural parse failure of a batch source
// file. It aborts the whole batch with no partial result.
var ErrParseFailure = errors.New("batch source file could not be parsed")

// ErrUpdateFailed marks a failed self-update attempt. The existing
// installation is left untouched.
var ErrUpdateFailed = errors.New("update failed")

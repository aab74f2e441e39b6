package services

import "fmt"

// ErrorKind classifies a pipeline failure so the handler can pick the right
// HTTP status and user-facing message.
type ErrorKind string

const (
	ErrInvalidUpload          ErrorKind = "invalid_upload"
	ErrUnreadableDocument     ErrorKind = "unreadable_document"
	ErrInsufficientText       ErrorKind = "insufficient_text"
	ErrModelInvocationFailure ErrorKind = "model_invocation_failure"
	ErrResponseParseFailure   ErrorKind = "response_parse_failure"
	ErrUnexpectedFailure      ErrorKind = "unexpected_failure"
)

// PipelineError wraps any failure crossing the roast pipeline boundary.
type PipelineError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// UserMessage is what the client sees. Internal details stay in the logs.
func (e *PipelineError) UserMessage() string {
	return e.Message
}

// StatusCode maps the taxonomy onto HTTP statuses: user-correctable
// failures are 400, everything else 500.
func (e *PipelineError) StatusCode() int {
	switch e.Kind {
	case ErrInvalidUpload, ErrUnreadableDocument, ErrInsufficientText:
		return 400
	default:
		return 500
	}
}

func newPipelineError(kind ErrorKind, message string, err error) *PipelineError {
	return &PipelineError{Kind: kind, Message: message, Err: err}
}

package domain

import "errors"

var (
	ErrSessionBusy         = errors.New("a turn is already in flight")
	ErrEmptySubmission     = errors.New("submission has no text or attachment")
	ErrUnknownAgent        = errors.New("unknown agent label")
	ErrUnknownStage        = errors.New("unknown loan stage")
	ErrUnknownDocumentType = errors.New("unknown document type")
	ErrNotApproved         = errors.New("application is not approved")
	ErrMissingAPIKey       = errors.New("model api key is not configured")
)

package form

import "errors"

var (
	ErrFailedToReadFile  = errors.New("failed to read form file")
	ErrFailedToParseYAML = errors.New("failed to parse form definition")
	ErrInvalidForm       = errors.New("invalid form definition")

	// ErrFailedToWritePrompt is returned by Run when a prompt cannot be written.
	ErrFailedToWritePrompt = errors.New("failed to write prompt")
	// ErrRunCancelled is returned by Run when ctx ends between fields.
	ErrRunCancelled = errors.New("form run cancelled")
)

package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// InvalidSplitError reports a profit split whose percentages do not total 100.
type InvalidSplitError struct {
	Total int64
}

func (e InvalidSplitError) Error() string {
	return fmt.Sprintf("profit split must total 100 percent, got %d", e.Total)
}

// UnknownAgentError reports an agent id outside the configured roster.
type UnknownAgentError struct {
	Agent string
}

func (e UnknownAgentError) Error() string {
	if e.Agent == "" {
		return "unknown agent"
	}
	return fmt.Sprintf("unknown agent %q", e.Agent)
}

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsInvalidSplit(err error) bool {
	var target InvalidSplitError
	return errors.As(err, &target)
}

func IsUnknownAgent(err error) bool {
	var target UnknownAgentError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

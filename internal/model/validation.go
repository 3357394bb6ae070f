package model

import (
	"fmt"
	"strings"
)

// ValidationError reports one invalid attribute of a request.
//
// Code is machine readable and follows <object>.<attribute>.<reason>,
// e.g. project.name.too-short; clients use it to pick a localized text.
// Message is the fallback human-readable text.
type ValidationError struct {
	Attribute string
	Code      string
	Message   string
}

func NewValidationError(attribute, code, message string) *ValidationError {
	return &ValidationError{Attribute: attribute, Code: code, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s value: %s", e.Attribute, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ValidationErrors is the ordered list of every failure found in one request.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, 0, len(errs))
	for i := range errs {
		msgs = append(msgs, errs[i].Error())
	}
	return strings.Join(msgs, "; ")
}

func (errs ValidationErrors) Is(target error) bool { return target == ErrValidation }

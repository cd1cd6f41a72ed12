package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Concept tags the business entity a domain error belongs to
type Concept string

const (
	ConceptMunicipality Concept = "municipality"
	ConceptProfile      Concept = "profile"
	ConceptPhoneType    Concept = "phone type"
)

// Key returns the concept as an identifier safe for keys, labels and event types
func (c Concept) Key() string {
	return strings.ReplaceAll(string(c), " ", "_")
}

// Scenario tags the kind of failure within a concept
type Scenario string

const (
	// ScenarioOperationFailed is a failed persistence or infrastructure operation
	ScenarioOperationFailed Scenario = "operation_failed"

	// ScenarioNotFound is a lookup for a required entity that does not exist
	ScenarioNotFound Scenario = "not_found"

	// ScenarioInvalidInput is a DTO rejected by validation
	ScenarioInvalidInput Scenario = "invalid_input"

	// ScenarioConflict is a write rejected by a uniqueness or reference constraint
	ScenarioConflict Scenario = "conflict"
)

// Operation names used in operation failure messages
const (
	OpInsert = "insert"
	OpFind   = "find"
	OpList   = "list"
	OpCount  = "count"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Message templates. They double as translation keys for the presentation layer.
const (
	TemplateBase            = "domain error"
	TemplateConcept         = "%s error"
	TemplateOperationFailed = "error during the %s operation for %s"
	TemplateNotFound        = "%s with id %s not found"
	TemplateInvalidInput    = "invalid %s data"
	TemplateConflict        = "%s conflicts with existing data"
)

// Sentinels for errors.Is. A zero tag matches any value, so ErrDomain
// matches every domain error and ErrMunicipality every municipality error.
//
// errors.Is also walks causes, so a profile failure caused by a municipality
// lookup matches ErrMunicipality too. Code that acts on the failure itself
// (status codes, retries) reads the outermost error with HasScenario or AsError.
var (
	ErrDomain = sentinel("", "")

	ErrMunicipality = sentinel(ConceptMunicipality, "")
	ErrProfile      = sentinel(ConceptProfile, "")
	ErrPhoneType    = sentinel(ConceptPhoneType, "")

	ErrOperationFailed = sentinel("", ScenarioOperationFailed)
	ErrNotFound        = sentinel("", ScenarioNotFound)
	ErrInvalidInput    = sentinel("", ScenarioInvalidInput)
	ErrConflict        = sentinel("", ScenarioConflict)
)

func sentinel(concept Concept, scenario Scenario) *Error {
	return &Error{concept: concept, scenario: scenario, sentinel: true}
}

// Error is the single domain error type. The concept and scenario tags
// replace a type hierarchy; the payload (operation or identifier) feeds the
// message template when no explicit message was given.
// Values are never mutated after construction.
type Error struct {
	concept    Concept
	scenario   Scenario
	operation  string
	identifier string
	message    string
	cause      error

	// sentinel errors match by tag; constructed errors only by identity
	sentinel bool
}

// New creates a base domain error carrying only a message
func New(message string) *Error {
	return &Error{message: message}
}

// Wrap creates a base domain error that keeps cause for diagnostics
func Wrap(message string, cause error) *Error {
	return &Error{message: message, cause: cause}
}

// NewConceptError creates an error scoped to a concept with no specific scenario
func NewConceptError(concept Concept, message string, cause error) *Error {
	return &Error{concept: concept, message: message, cause: cause}
}

// NewOperationFailure reports that operation failed for concept.
// cause is the lower-level failure and must be passed whenever one exists.
func NewOperationFailure(concept Concept, operation string, cause error) *Error {
	return &Error{
		concept:   concept,
		scenario:  ScenarioOperationFailed,
		operation: operation,
		cause:     cause,
	}
}

// NewNotFound reports that no concept entity exists for id
func NewNotFound(concept Concept, id any) *Error {
	return &Error{
		concept:    concept,
		scenario:   ScenarioNotFound,
		identifier: fmt.Sprint(id),
	}
}

// NewInvalidInput reports that a concept DTO failed validation
func NewInvalidInput(concept Concept, cause error) *Error {
	return &Error{concept: concept, scenario: ScenarioInvalidInput, cause: cause}
}

// NewConflict reports that a write violated a constraint of concept
func NewConflict(concept Concept, cause error) *Error {
	return &Error{concept: concept, scenario: ScenarioConflict, cause: cause}
}

// Concept returns the concept tag, empty for base errors
func (e *Error) Concept() Concept { return e.concept }

// Scenario returns the scenario tag, empty for base and concept errors
func (e *Error) Scenario() Scenario { return e.scenario }

// Operation returns the failed operation name of an operation failure
func (e *Error) Operation() string { return e.operation }

// Identifier returns the textual identifier of a not-found failure
func (e *Error) Identifier() string { return e.identifier }

// Cause returns the wrapped failure, or nil
func (e *Error) Cause() error { return e.cause }

// Template returns the message format and its arguments.
// An explicit message is returned as a format without arguments.
func (e *Error) Template() (string, []any) {
	if e.message != "" {
		return e.message, nil
	}

	switch e.scenario {
	case ScenarioOperationFailed:
		return TemplateOperationFailed, []any{e.operation, string(e.concept)}
	case ScenarioNotFound:
		return TemplateNotFound, []any{string(e.concept), e.identifier}
	case ScenarioInvalidInput:
		return TemplateInvalidInput, []any{string(e.concept)}
	case ScenarioConflict:
		return TemplateConflict, []any{string(e.concept)}
	}

	if e.concept != "" {
		return TemplateConcept, []any{string(e.concept)}
	}
	return TemplateBase, nil
}

// Message renders the human-readable message. It is never empty.
func (e *Error) Message() string {
	format, args := e.Template()
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message() + ": " + e.cause.Error()
	}
	return e.Message()
}

// Unwrap exposes the cause to errors.Is and errors.As
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches a sentinel target when every non-empty tag of target equals
// this error's tag. Constructed errors match only themselves.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || !t.sentinel {
		return false
	}
	if t.concept != "" && t.concept != e.concept {
		return false
	}
	if t.scenario != "" && t.scenario != e.scenario {
		return false
	}
	return true
}

// AsError returns the outermost domain error in err's chain
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// HasScenario reports whether the outermost domain error in err's chain has scenario
func HasScenario(err error, scenario Scenario) bool {
	de, ok := AsError(err)
	return ok && de.scenario == scenario
}

// IsRetryable reports whether err is an operation failure that may succeed
// when repeated. Cancelled or timed-out operations are not retried.
func IsRetryable(err error) bool {
	de, ok := AsError(err)
	if !ok || de.scenario != ScenarioOperationFailed {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

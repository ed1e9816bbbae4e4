package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrObjectNotFound is the sentinel for every "referenced entity is absent" failure.
	ErrObjectNotFound = errors.New("object not found")
	// ErrValueIsInvalid is the sentinel for values rejected by domain validation.
	ErrValueIsInvalid = errors.New("value is invalid")
	// ErrValueIsOutOfRange is the sentinel for numeric values outside their bounds.
	ErrValueIsOutOfRange = errors.New("value is out of range")
	// ErrValueIsRequired is the sentinel for missing mandatory values.
	ErrValueIsRequired = errors.New("value is required")
	// ErrMicroserviceCommunication is the sentinel for failures of remote collaborators.
	ErrMicroserviceCommunication = errors.New("microservice communication failed")
)

// ObjectNotFoundError reports that the object identified by ID could not be found.
// When Cause is set, errors.Is also matches the cause, which lets callers attach an
// entity-specific sentinel (for example order.ErrOrderNotFound) to the generic category.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError reports that no object named paramName has id.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewObjectNotFoundErrorWithCause also matches cause under errors.Is.
//
// Example:
//
//	err := errs.NewObjectNotFoundErrorWithCause("orderID", id, order.ErrOrderNotFound)
//	errors.Is(err, errs.ErrObjectNotFound) // true
//	errors.Is(err, order.ErrOrderNotFound) // true
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(fmt.Sprintf("%s", e.ID)), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(fmt.Sprintf("%s", e.ID)))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// Is matches the category sentinel and, if present, anything the cause matches.
func (e *ObjectNotFoundError) Is(target error) bool {
	if target == ErrObjectNotFound {
		return true
	}
	return e.Cause != nil && errors.Is(e.Cause, target)
}

// ValueIsInvalidError reports that a named value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError reports that paramName was rejected.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause keeps the underlying reason in the message.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside of [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError reports value outside of [minValue, maxValue].
func NewValueIsOutOfRangeError(paramName string, value any, minValue any, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
	}
}

// NewValueIsOutOfRangeErrorWithCause is NewValueIsOutOfRangeError with a cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value any,
	minValue any,
	maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
		Cause:     cause,
	}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(fmt.Sprintf("%v", e.Value)), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError reports that paramName is missing.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause keeps the underlying reason in the message.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// MicroserviceCommunicationError reports that a remote collaborator could not serve a call,
// either because the transport failed or because it answered without the expected data.
type MicroserviceCommunicationError struct {
	Service   string
	Operation string
	Cause     error
}

// NewMicroserviceCommunicationError reports that service could not serve operation.
func NewMicroserviceCommunicationError(service string, operation string) *MicroserviceCommunicationError {
	return &MicroserviceCommunicationError{
		Service:   service,
		Operation: operation,
	}
}

// NewMicroserviceCommunicationErrorWithCause wraps the transport or decoding failure.
func NewMicroserviceCommunicationErrorWithCause(
	service string,
	operation string,
	cause error,
) *MicroserviceCommunicationError {
	return &MicroserviceCommunicationError{
		Service:   service,
		Operation: operation,
		Cause:     cause,
	}
}

func (e *MicroserviceCommunicationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s.%s (cause: %v)", ErrMicroserviceCommunication, e.Service, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s.%s", ErrMicroserviceCommunication, e.Service, e.Operation)
}

func (e *MicroserviceCommunicationError) Unwrap() error {
	return ErrMicroserviceCommunication
}

// sanitize flattens a formatted value into a single log-safe line.
func sanitize(s string) string {
	return strings.NewReplacer("\n", " ", "\r", " ").Replace(s)
}

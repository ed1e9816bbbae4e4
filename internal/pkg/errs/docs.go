// Package errs provides the typed errors shared by the tracking service.
//
// Every error type follows the same pattern:
//   - a sentinel variable naming the category (ErrObjectNotFound, ErrValueIsInvalid, ...)
//   - a struct carrying the details of one failure
//   - New... and New...WithCause constructors
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The categories are kept apart on purpose: callers branch with errors.Is on the sentinel
// (not found, invalid value, remote failure) and never on message text.
package errs

// Package apierr converts heterogeneous failure values into one uniform
// shape for rendering: a human-readable message plus an optional field-keyed
// list of validation messages.
//
// The API reports failures as JSON bodies: validation failures (422) carry
// {message, errors}, everything else carries {message}. The Error type is
// the in-process representation of such a response; Normalize folds it,
// plain Go errors and unknown values into a Normalized value with a
// guaranteed non-empty Message.
//
// The IsValidation and IsAuth predicates are pure functions of the failure
// value and hold no state.
package apierr

// Package validator provides a small declarative rule-evaluation engine for
// form input. Each helper constructs a Rule value pairing a boolean Check
// closure with the field-level error to report when the check fails; rules
// are evaluated with Apply or ApplyGrouped.
//
// There is no schema DSL and no hidden state: a schema is just a slice of
// rules built from the current input snapshot, which keeps the package
// stateless and goroutine-safe.
//
// # Usage
//
//	rules := []validator.Rule{
//	    validator.Required("name", form.Name),
//	    validator.ValidEmail("email", form.Email),
//	}
//	rules = append(rules, validator.When(form.Type == "transfer",
//	    validator.Required("to_account_id", form.ToAccountID),
//	)...)
//
//	if err := validator.ApplyGrouped(rules...); err != nil {
//	    fieldErrs := validator.ExtractFieldErrors(err)
//	    // render per-field messages
//	}
//
// ApplyGrouped keeps only the first violated constraint per field while still
// evaluating every field, which is the behavior form rendering expects.
// Apply collects every violation and exists for callers that want the full
// picture.
package validator

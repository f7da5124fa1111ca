// Package validators contains the pure input validators used by the
// registration flow, abstracted away from the handler code
package validators

// ValidationError carries the offending field together with a message
// that is safe to return to the client as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

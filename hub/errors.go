package hub

import "fmt"

// DeliveryError records the failure of a single subscriber during one
// notification round. SetState joins all of a round's DeliveryErrors with
// errors.Join; callers can recover individual failures with errors.As.
type DeliveryError struct {
	// Token identifies the subscription whose callback failed.
	Token Token
	// Err is the error returned by the callback, or a synthesized error if
	// the callback panicked.
	Err error
}

// Error implements the error interface.
func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery to %s failed: %v", e.Token, e.Err)
}

// Unwrap returns the underlying callback error.
func (e *DeliveryError) Unwrap() error {
	return e.Err
}

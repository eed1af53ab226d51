package verification

import (
	"fmt"
	"time"
)

// RetryExhaustedError means the request ran through the whole retry budget
// without the decryption callback ever landing.
type RetryExhaustedError struct {
	RequestID  string
	RetryCount uint8
	MaxRetries uint8
}

func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("request %s exhausted %d of %d decryption retries", e.RequestID, e.RetryCount, e.MaxRetries)
}

// RetryNotEligibleError means the request went quiet but is still inside its
// on-chain window or the retry cooldown. The run ends here; a later run can
// adopt the request once EligibleIn has passed.
type RetryNotEligibleError struct {
	RequestID  string
	EligibleIn time.Duration
}

func (e *RetryNotEligibleError) Error() string {
	return fmt.Sprintf("request %s is not retry-eligible for another %s, check back later", e.RequestID, e.EligibleIn)
}

// CallbackTimeoutError means the gateway reported the decryption done but the
// on-chain callback was not observed within the reconciliation budget.
type CallbackTimeoutError struct {
	RequestID string
	Waited    time.Duration
}

func (e *CallbackTimeoutError) Error() string {
	return fmt.Sprintf("callback for request %s not observed after %s", e.RequestID, e.Waited)
}

// InvalidEncryptionResultError means the decrypted payload was not the clean
// boolean the contract's encrypted comparison produces.
type InvalidEncryptionResultError struct {
	Value string
}

func (e *InvalidEncryptionResultError) Error() string {
	return fmt.Sprintf("decryption produced a non-boolean result %q", e.Value)
}

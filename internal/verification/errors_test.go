package verification

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Callers match on these types through wrapped chains, so the identities have
// to survive errors.Wrap.
func TestErrorTypesSurviveWrapping(t *testing.T) {
	t.Parallel()

	exhausted := errors.Wrap(&RetryExhaustedError{RequestID: "7", RetryCount: 3, MaxRetries: 3}, "process job")
	var re *RetryExhaustedError
	require.ErrorAs(t, exhausted, &re)
	assert.EqualValues(t, 3, re.RetryCount)
	assert.Contains(t, exhausted.Error(), "exhausted 3 of 3 decryption retries")

	notEligible := errors.Wrap(&RetryNotEligibleError{RequestID: "7", EligibleIn: 5 * time.Minute}, "process job")
	var ne *RetryNotEligibleError
	require.ErrorAs(t, notEligible, &ne)
	assert.Equal(t, 5*time.Minute, ne.EligibleIn)
	assert.Contains(t, notEligible.Error(), "check back later")

	callback := errors.Wrap(&CallbackTimeoutError{RequestID: "7", Waited: 8 * time.Second}, "await callback")
	var ce *CallbackTimeoutError
	require.ErrorAs(t, callback, &ce)
	assert.Equal(t, 8*time.Second, ce.Waited)
}

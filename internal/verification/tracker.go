package verification

import (
	"time"

	"code.cloudfoundry.org/clock"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/log"
	verifiercontract "github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/internal/contract"
)

// Decision classifies what should happen next with a subject's on-chain
// request.
type Decision int

const (
	// DecisionFresh: no usable request on-chain, submit a new one.
	DecisionFresh Decision = iota
	// DecisionAdopt: a live request is in flight, poll it instead of
	// submitting a competing one.
	DecisionAdopt
	// DecisionCompleted: the callback already landed, read the verdict.
	DecisionCompleted
	// DecisionRetry: the request went quiet and may be re-queued.
	DecisionRetry
	// DecisionWait: the request went quiet but is not retry-eligible yet,
	// either still inside its on-chain window or inside the cooldown.
	DecisionWait
	// DecisionExhausted: the retry budget is spent, the request is dead.
	DecisionExhausted
)

func (d Decision) String() string {
	switch d {
	case DecisionFresh:
		return "fresh"
	case DecisionAdopt:
		return "adopt"
	case DecisionCompleted:
		return "completed"
	case DecisionRetry:
		return "retry"
	case DecisionWait:
		return "wait"
	case DecisionExhausted:
		return "exhausted"
	}
	return "unknown"
}

// RetryPolicy carries the windows gating retryDecryption. MaxRetries and
// RequestTimeout track the contract's own constants, the cooldown is purely
// service-side throttling.
type RetryPolicy struct {
	MaxRetries     uint8
	RequestTimeout time.Duration
	RetryCooldown  time.Duration
}

var DefaultRetryPolicy = RetryPolicy{
	MaxRetries:     3,
	RequestTimeout: 30 * time.Minute,
	RetryCooldown:  5 * time.Minute,
}

// Tracker evaluates retry eligibility for decryption requests.
type Tracker struct {
	policy RetryPolicy
	clk    clock.Clock
	logger log.Logger
}

func NewTracker(policy RetryPolicy, clk clock.Clock, logger log.Logger) *Tracker {
	if policy.MaxRetries == 0 {
		policy.MaxRetries = DefaultRetryPolicy.MaxRetries
	}
	if policy.RequestTimeout == 0 {
		policy.RequestTimeout = DefaultRetryPolicy.RequestTimeout
	}
	if policy.RetryCooldown == 0 {
		policy.RetryCooldown = DefaultRetryPolicy.RetryCooldown
	}
	return &Tracker{
		policy: policy,
		clk:    clk,
		logger: logger,
	}
}

func (t *Tracker) Policy() RetryPolicy {
	return t.policy
}

// Evaluate maps a request's on-chain status onto the next action. quiet marks
// that a full polling round already came up empty for this request.
// lastAttempt is when the service last submitted or retried it, zero when the
// request was adopted and only the chain's timestamp is known.
func (t *Tracker) Evaluate(status verifiercontract.RequestStatus, lastAttempt time.Time, quiet bool) Decision {
	if !status.Exists {
		return DecisionFresh
	}
	if status.Processed {
		return DecisionCompleted
	}
	if !quiet && !t.Expired(status) {
		return DecisionAdopt
	}

	// The request has gone quiet, either by polling it dry or by outliving
	// its on-chain window.
	if status.RetryCount >= t.policy.MaxRetries {
		return DecisionExhausted
	}
	if remaining := t.RetryEligibleIn(status, lastAttempt); remaining > 0 {
		return DecisionWait
	}
	return DecisionRetry
}

// Expired reports whether the request outlived its on-chain window, trusting
// the contract's flag first and deriving from the request timestamp when the
// flag lags behind.
func (t *Tracker) Expired(status verifiercontract.RequestStatus) bool {
	if status.Expired {
		return true
	}
	if status.Timestamp == nil || status.Timestamp.Sign() <= 0 {
		return false
	}
	requestedAt := time.Unix(status.Timestamp.Int64(), 0)
	return t.clk.Now().Sub(requestedAt) >= t.policy.RequestTimeout
}

// RetryEligibleIn returns how long before the request may be retried, zero
// when it is already eligible. Two gates apply and both must be spent: the
// request has to outlive its on-chain window, and the cooldown since the last
// submission has to elapse even for a request that is nominally expired.
func (t *Tracker) RetryEligibleIn(status verifiercontract.RequestStatus, lastAttempt time.Time) time.Duration {
	remaining := time.Duration(0)
	if at := t.attemptTime(status, lastAttempt); !at.IsZero() {
		if d := t.policy.RetryCooldown - t.clk.Now().Sub(at); d > remaining {
			remaining = d
		}
	}
	if !status.Expired && status.Timestamp != nil && status.Timestamp.Sign() > 0 {
		requestedAt := time.Unix(status.Timestamp.Int64(), 0)
		if d := t.policy.RequestTimeout - t.clk.Now().Sub(requestedAt); d > remaining {
			remaining = d
		}
	}
	return remaining
}

func (t *Tracker) attemptTime(status verifiercontract.RequestStatus, lastAttempt time.Time) time.Time {
	if !lastAttempt.IsZero() {
		return lastAttempt
	}
	if status.Timestamp != nil && status.Timestamp.Sign() > 0 {
		return time.Unix(status.Timestamp.Int64(), 0)
	}
	return time.Time{}
}

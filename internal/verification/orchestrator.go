package verification

import (
	"context"
	"math/big"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/chain"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/errors"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/log"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/util"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/gateway"
	verifiercontract "github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/internal/contract"
)

// Phase names the stations a verification passes through.
type Phase int

const (
	PhaseRequesting Phase = iota
	PhasePolling
	PhaseAwaitingCallback
	PhaseRetrying
	PhaseSuccess
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseRequesting:
		return "Requesting"
	case PhasePolling:
		return "Polling"
	case PhaseAwaitingCallback:
		return "AwaitingCallback"
	case PhaseRetrying:
		return "Retrying"
	case PhaseSuccess:
		return "Success"
	case PhaseFailed:
		return "Failed"
	}
	return "Unknown"
}

// Terminal reports whether the phase ends a run.
func (p Phase) Terminal() bool {
	return p == PhaseSuccess || p == PhaseFailed
}

// LedgerClient is the slice of the operator contract a verification run
// drives.
type LedgerClient interface {
	SubmitVerification(ctx context.Context, encryptedAge [32]byte, inputProof []byte) (*big.Int, error)
	RetryDecryption(ctx context.Context, requestID *big.Int) (*big.Int, uint8, error)
	GetRequestStatus(ctx context.Context, requestID *big.Int) (verifiercontract.RequestStatus, error)
	GetActiveRequestID(ctx context.Context, subject common.Address) (*big.Int, error)
	IsVerified(ctx context.Context, subject common.Address) (bool, error)
	DecryptionHandle(requestID *big.Int) string
}

// ResultPoller is the gateway-facing half of the loop.
type ResultPoller interface {
	Poll(ctx context.Context, handle string, opts *gateway.PollOptions) (*gateway.PollResult, error)
}

// CredentialMinter issues the soulbound credential after a positive outcome.
type CredentialMinter interface {
	EnsureCredential(ctx context.Context, subject common.Address) (*big.Int, error)
}

// ProgressFunc receives phase transitions as they happen. requestID is nil
// until the first submission lands.
type ProgressFunc func(phase Phase, requestID *big.Int, retryCount uint8)

// Outcome is the terminal state of one verification run.
type Outcome struct {
	Verified   bool
	RequestID  *big.Int
	RetryCount uint8
	Phase      Phase
}

// Options tunes one verification run. Zero values fall back to the package
// defaults.
type Options struct {
	PollOptions gateway.PollOptions
	SubmitRetry util.BackoffOption
	Reconcile   ReconcileOptions

	// PhaseBudget is a hard ceiling on one polling plus callback-wait cycle.
	// A cycle that burns it is treated exactly like a poll timeout.
	PhaseBudget time.Duration

	OnProgress ProgressFunc
}

// Orchestrator walks a verification from ciphertext submission to a terminal
// outcome, riding out gateway silence with bounded on-chain retries.
type Orchestrator struct {
	ledger     LedgerClient
	poller     ResultPoller
	tracker    *Tracker
	reconciler *Reconciler
	minter     CredentialMinter
	clk        clock.Clock
	logger     log.Logger
}

// NewOrchestrator wires a run loop. minter may be nil when credential issuance
// is handled elsewhere.
func NewOrchestrator(ledger LedgerClient, poller ResultPoller, tracker *Tracker, minter CredentialMinter, clk clock.Clock, logger log.Logger) *Orchestrator {
	return &Orchestrator{
		ledger:     ledger,
		poller:     poller,
		tracker:    tracker,
		reconciler: NewReconciler(ledger, clk, logger),
		minter:     minter,
		clk:        clk,
		logger:     logger,
	}
}

// Run performs one verification for subject. An in-flight on-chain request is
// adopted rather than collided with, so input may go unused. Every run ends
// with exactly one terminal progress report, panics included.
func (o *Orchestrator) Run(ctx context.Context, subject common.Address, input *EncryptedInput, opts *Options) (outcome *Outcome, err error) {
	if opts == nil {
		opts = &Options{}
	}

	var requestID *big.Int
	var retryCount uint8
	var lastAttempt time.Time

	emit := func(phase Phase) {
		if opts.OnProgress != nil {
			opts.OnProgress(phase, requestID, retryCount)
		}
	}

	defer func() {
		if r := recover(); r != nil {
			o.logger.WithFields(logrus.Fields{"subject": subject.Hex(), "panic": r}).Error("Verification run panicked")
			emit(PhaseFailed)
			outcome = &Outcome{RequestID: requestID, RetryCount: retryCount, Phase: PhaseFailed}
			err = errors.Errorf("verification run panicked: %v", r)
		}
	}()

	fail := func(ferr error) (*Outcome, error) {
		emit(PhaseFailed)
		return &Outcome{RequestID: requestID, RetryCount: retryCount, Phase: PhaseFailed}, ferr
	}
	succeed := func(verified bool) (*Outcome, error) {
		emit(PhaseSuccess)
		if verified && o.minter != nil {
			if _, merr := o.minter.EnsureCredential(ctx, subject); merr != nil {
				o.logger.WithFields(logrus.Fields{"subject": subject.Hex(), "error": merr}).Error("Failed to mint credential after verification")
			}
		}
		return &Outcome{Verified: verified, RequestID: requestID, RetryCount: retryCount, Phase: PhaseSuccess}, nil
	}

	// retry re-queues the decryption and rebases the run onto the fresh id.
	retry := func() error {
		emit(PhaseRetrying)
		var newID *big.Int
		var newCount uint8
		rerr := util.Retry(ctx, o.clk, &opts.SubmitRetry, func() error {
			id, count, terr := o.ledger.RetryDecryption(ctx, requestID)
			if terr == nil {
				newID, newCount = id, count
				return nil
			}
			if adopted := o.adoptAfterConfirmationTimeout(ctx, subject, terr, requestID); adopted != nil {
				newID = adopted
				if st, serr := o.ledger.GetRequestStatus(ctx, adopted); serr == nil {
					newCount = st.RetryCount
				}
				return nil
			}
			o.logger.WithFields(logrus.Fields{"requestID": requestID, "error": terr}).Warn("Retry transaction failed, retrying transmission")
			return terr
		})
		if rerr != nil {
			return errors.Wrap(rerr, "retry decryption")
		}
		o.logger.WithFields(logrus.Fields{"old": requestID, "new": newID, "retryCount": newCount}).Info("Decryption re-queued under a new request id")
		requestID = newID
		retryCount = newCount
		lastAttempt = o.clk.Now()
		return nil
	}

	emit(PhaseRequesting)

	// Adopt the subject's in-flight request instead of colliding with it.
	activeID, aerr := o.ledger.GetActiveRequestID(ctx, subject)
	if aerr != nil {
		return fail(errors.Wrap(aerr, "read active request"))
	}
	if activeID != nil && activeID.Sign() > 0 {
		status, serr := o.ledger.GetRequestStatus(ctx, activeID)
		if serr != nil {
			return fail(errors.Wrap(serr, "read request status"))
		}
		requestID = activeID
		retryCount = status.RetryCount

		switch o.tracker.Evaluate(status, lastAttempt, false) {
		case DecisionCompleted:
			verified, verr := o.ledger.IsVerified(ctx, subject)
			if verr != nil {
				return fail(errors.Wrap(verr, "read verification verdict"))
			}
			return succeed(verified)
		case DecisionExhausted:
			return fail(&RetryExhaustedError{RequestID: activeID.String(), RetryCount: status.RetryCount, MaxRetries: o.tracker.policy.MaxRetries})
		case DecisionRetry:
			// Expired before this run even started, re-queue first.
			if rerr := retry(); rerr != nil {
				return fail(rerr)
			}
		case DecisionWait:
			return fail(&RetryNotEligibleError{RequestID: activeID.String(), EligibleIn: o.tracker.RetryEligibleIn(status, lastAttempt)})
		case DecisionAdopt:
			o.logger.WithFields(logrus.Fields{"subject": subject.Hex(), "requestID": activeID}).Info("Adopting in-flight verification request")
		default:
			// Stale pointer, fall through to a fresh submission.
			requestID = nil
			retryCount = 0
		}
	}

	if requestID == nil {
		if input == nil {
			return fail(errors.New("no encrypted input and no adoptable request"))
		}
		var submitted *big.Int
		serr := util.Retry(ctx, o.clk, &opts.SubmitRetry, func() error {
			id, terr := o.ledger.SubmitVerification(ctx, input.Handle, input.Proof)
			if terr == nil {
				submitted = id
				return nil
			}
			if adopted := o.adoptAfterConfirmationTimeout(ctx, subject, terr, nil); adopted != nil {
				submitted = adopted
				return nil
			}
			o.logger.WithFields(logrus.Fields{"subject": subject.Hex(), "error": terr}).Warn("Verification submission failed, retrying transmission")
			return terr
		})
		if serr != nil {
			return fail(errors.Wrap(serr, "submit verification"))
		}
		requestID = submitted
		lastAttempt = o.clk.Now()
	}

	emit(PhasePolling)

	for {
		verdict, cerr := o.runCycle(ctx, subject, requestID, opts, emit)
		if cerr != nil {
			return fail(cerr)
		}
		if verdict != nil {
			return succeed(*verdict)
		}

		// The request went quiet. Decide between re-queueing it and ending
		// the run with a status a later run can act on.
		status, serr := o.ledger.GetRequestStatus(ctx, requestID)
		if serr != nil {
			return fail(errors.Wrap(serr, "read request status"))
		}

		decision := o.tracker.Evaluate(status, lastAttempt, true)
		o.logger.WithFields(logrus.Fields{"requestID": requestID, "decision": decision.String(), "retryCount": status.RetryCount}).Debug("Evaluated quiet request")

		switch decision {
		case DecisionCompleted:
			// The callback landed while we were timing out.
			verified, verr := o.ledger.IsVerified(ctx, subject)
			if verr != nil {
				return fail(errors.Wrap(verr, "read verification verdict"))
			}
			retryCount = status.RetryCount
			return succeed(verified)
		case DecisionExhausted:
			retryCount = status.RetryCount
			return fail(&RetryExhaustedError{RequestID: requestID.String(), RetryCount: status.RetryCount, MaxRetries: o.tracker.policy.MaxRetries})
		case DecisionFresh:
			return fail(errors.New("request no longer tracked on-chain"))
		case DecisionWait:
			// Not eligible yet. The request stays live on-chain, so the next
			// run for this subject adopts it instead of starting over.
			retryCount = status.RetryCount
			return fail(&RetryNotEligibleError{RequestID: requestID.String(), EligibleIn: o.tracker.RetryEligibleIn(status, lastAttempt)})
		default:
			if rerr := retry(); rerr != nil {
				return fail(rerr)
			}
			emit(PhasePolling)
		}
	}
}

// runCycle runs one polling plus callback-wait pass under the phase budget. A
// nil verdict with a nil error means the request went quiet and needs an
// eligibility check.
func (o *Orchestrator) runCycle(ctx context.Context, subject common.Address, requestID *big.Int, opts *Options, emit func(Phase)) (*bool, error) {
	cycleCtx := ctx
	cancel := func() {}
	if opts.PhaseBudget > 0 {
		cycleCtx, cancel = context.WithTimeout(ctx, opts.PhaseBudget)
	}
	defer cancel()

	handle := o.ledger.DecryptionHandle(requestID)
	result, err := o.poller.Poll(cycleCtx, handle, &opts.PollOptions)
	if err != nil {
		var pollTimeout *gateway.PollTimeoutError
		switch {
		case errors.As(err, &pollTimeout):
			return nil, nil
		case ctx.Err() != nil:
			return nil, ctx.Err()
		case cycleCtx.Err() != nil:
			o.logger.WithFields(logrus.Fields{"requestID": requestID}).Warn("Cycle budget spent while polling")
			return nil, nil
		default:
			return nil, err
		}
	}

	gatewayVerdict, decodeErr := DecodeVerifiedFlag(result.Payload.Value)
	if decodeErr != nil {
		o.logger.WithFields(logrus.Fields{"requestID": requestID, "value": result.Payload.Value}).Error("Gateway payload failed validation, deferring to the on-chain callback")
	}

	emit(PhaseAwaitingCallback)
	verified, rerr := o.reconciler.AwaitCallback(cycleCtx, subject, requestID, &opts.Reconcile)
	if rerr == nil {
		if decodeErr == nil && gatewayVerdict != verified {
			o.logger.WithFields(logrus.Fields{"requestID": requestID, "gateway": gatewayVerdict, "chain": verified}).Warn("Gateway payload disagrees with the on-chain verdict")
		}
		return &verified, nil
	}

	var cbTimeout *CallbackTimeoutError
	switch {
	case errors.As(rerr, &cbTimeout):
		return nil, nil
	case ctx.Err() != nil:
		return nil, ctx.Err()
	case cycleCtx.Err() != nil:
		o.logger.WithFields(logrus.Fields{"requestID": requestID}).Warn("Cycle budget spent awaiting callback")
		return nil, nil
	default:
		return nil, rerr
	}
}

// adoptAfterConfirmationTimeout resolves the case where a write's receipt
// never showed up but the transaction itself may have landed. It returns the
// request id to adopt, nil when resubmitting is the right move. prior is the
// id being replaced, nil for first submissions.
func (o *Orchestrator) adoptAfterConfirmationTimeout(ctx context.Context, subject common.Address, err error, prior *big.Int) *big.Int {
	var confirmErr *chain.ConfirmationTimeoutError
	if !errors.As(err, &confirmErr) {
		return nil
	}
	active, aerr := o.ledger.GetActiveRequestID(ctx, subject)
	if aerr != nil || active == nil || active.Sign() == 0 {
		return nil
	}
	if prior != nil && active.Cmp(prior) == 0 {
		// Still pointing at the old request, the replacement never landed.
		return nil
	}
	o.logger.WithFields(logrus.Fields{"subject": subject.Hex(), "requestID": active, "tx": confirmErr.TxHash.Hex()}).Warn("Receipt never arrived but the write landed, adopting its request id")
	return active
}

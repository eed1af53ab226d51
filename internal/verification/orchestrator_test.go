package verification

import (
	"context"
	"math/big"
	"testing"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/chain"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/log"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/util"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/gateway"
	verifiercontract "github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/internal/contract"
)

func testLogger(t *testing.T) log.Logger {
	t.Helper()
	logger, err := log.GetLogger(nil)
	require.NoError(t, err)
	return logger
}

type fakeLedger struct {
	submitFn   func(ctx context.Context, encryptedAge [32]byte, inputProof []byte) (*big.Int, error)
	retryFn    func(ctx context.Context, requestID *big.Int) (*big.Int, uint8, error)
	statusFn   func(ctx context.Context, requestID *big.Int) (verifiercontract.RequestStatus, error)
	activeFn   func(ctx context.Context, subject common.Address) (*big.Int, error)
	verifiedFn func(ctx context.Context, subject common.Address) (bool, error)
}

func (f *fakeLedger) SubmitVerification(ctx context.Context, encryptedAge [32]byte, inputProof []byte) (*big.Int, error) {
	return f.submitFn(ctx, encryptedAge, inputProof)
}

func (f *fakeLedger) RetryDecryption(ctx context.Context, requestID *big.Int) (*big.Int, uint8, error) {
	return f.retryFn(ctx, requestID)
}

func (f *fakeLedger) GetRequestStatus(ctx context.Context, requestID *big.Int) (verifiercontract.RequestStatus, error) {
	return f.statusFn(ctx, requestID)
}

func (f *fakeLedger) GetActiveRequestID(ctx context.Context, subject common.Address) (*big.Int, error) {
	return f.activeFn(ctx, subject)
}

func (f *fakeLedger) IsVerified(ctx context.Context, subject common.Address) (bool, error) {
	return f.verifiedFn(ctx, subject)
}

func (f *fakeLedger) DecryptionHandle(requestID *big.Int) string {
	return util.ToHexHandle(requestID)
}

type fakePoller struct {
	pollFn func(ctx context.Context, handle string, opts *gateway.PollOptions) (*gateway.PollResult, error)
}

func (f *fakePoller) Poll(ctx context.Context, handle string, opts *gateway.PollOptions) (*gateway.PollResult, error) {
	return f.pollFn(ctx, handle, opts)
}

type fakeMinter struct {
	minted []common.Address
	err    error
}

func (f *fakeMinter) EnsureCredential(ctx context.Context, subject common.Address) (*big.Int, error) {
	f.minted = append(f.minted, subject)
	if f.err != nil {
		return nil, f.err
	}
	return big.NewInt(int64(len(f.minted))), nil
}

var runSubject = common.HexToAddress("0x00000000000000000000000000000000000000aa")

type runFixture struct {
	clk    *fakeclock.FakeClock
	ledger *fakeLedger
	poller *fakePoller
	minter *fakeMinter
	orch   *Orchestrator
	phases []Phase
	opts   *Options
}

func newRunFixture(t *testing.T) *runFixture {
	t.Helper()
	f := &runFixture{
		clk:    fakeclock.NewFakeClock(trackerEpoch),
		ledger: &fakeLedger{},
		poller: &fakePoller{},
		minter: &fakeMinter{},
	}
	tracker := NewTracker(trackerPolicy, f.clk, testLogger(t))
	f.orch = NewOrchestrator(f.ledger, f.poller, tracker, f.minter, f.clk, testLogger(t))
	f.opts = &Options{
		// A single transmission attempt keeps transport retries out of the
		// picture unless a test opts in.
		SubmitRetry: util.BackoffOption{Attempts: 1, BaseDelay: time.Second},
		OnProgress: func(phase Phase, requestID *big.Int, retryCount uint8) {
			f.phases = append(f.phases, phase)
		},
	}
	return f
}

func countTerminal(phases []Phase) int {
	n := 0
	for _, phase := range phases {
		if phase.Terminal() {
			n++
		}
	}
	return n
}

func readyResult(value string) *gateway.PollResult {
	return &gateway.PollResult{
		Payload:  &gateway.DecryptionPayload{Value: value},
		Attempts: 1,
	}
}

func TestRunHappyPath(t *testing.T) {
	t.Parallel()
	f := newRunFixture(t)

	input := &EncryptedInput{Handle: [32]byte{1, 2, 3}, Proof: []byte{0xaa, 0xbb}}
	var submittedHandle [32]byte
	var polledHandle string

	f.ledger.activeFn = func(ctx context.Context, subject common.Address) (*big.Int, error) {
		return big.NewInt(0), nil
	}
	f.ledger.submitFn = func(ctx context.Context, encryptedAge [32]byte, inputProof []byte) (*big.Int, error) {
		submittedHandle = encryptedAge
		return big.NewInt(7), nil
	}
	f.poller.pollFn = func(ctx context.Context, handle string, opts *gateway.PollOptions) (*gateway.PollResult, error) {
		polledHandle = handle
		return readyResult("0x01"), nil
	}
	f.ledger.statusFn = func(ctx context.Context, requestID *big.Int) (verifiercontract.RequestStatus, error) {
		return verifiercontract.RequestStatus{Exists: true, Processed: true}, nil
	}
	f.ledger.verifiedFn = func(ctx context.Context, subject common.Address) (bool, error) {
		return true, nil
	}

	outcome, err := f.orch.Run(context.Background(), runSubject, input, f.opts)
	require.NoError(t, err)
	require.True(t, outcome.Verified)
	require.Equal(t, PhaseSuccess, outcome.Phase)
	require.Zero(t, outcome.RequestID.Cmp(big.NewInt(7)))
	require.EqualValues(t, 0, outcome.RetryCount)

	require.Equal(t, input.Handle, submittedHandle)
	require.Equal(t, util.ToHexHandle(big.NewInt(7)), polledHandle)
	require.Equal(t, []Phase{PhaseRequesting, PhasePolling, PhaseAwaitingCallback, PhaseSuccess}, f.phases)
	require.Equal(t, []common.Address{runSubject}, f.minter.minted)
}

func TestRunDeniedVerdictSkipsMint(t *testing.T) {
	t.Parallel()
	f := newRunFixture(t)

	f.ledger.activeFn = func(ctx context.Context, subject common.Address) (*big.Int, error) {
		return big.NewInt(0), nil
	}
	f.ledger.submitFn = func(ctx context.Context, encryptedAge [32]byte, inputProof []byte) (*big.Int, error) {
		return big.NewInt(7), nil
	}
	f.poller.pollFn = func(ctx context.Context, handle string, opts *gateway.PollOptions) (*gateway.PollResult, error) {
		return readyResult("0x00"), nil
	}
	f.ledger.statusFn = func(ctx context.Context, requestID *big.Int) (verifiercontract.RequestStatus, error) {
		return verifiercontract.RequestStatus{Exists: true, Processed: true}, nil
	}
	f.ledger.verifiedFn = func(ctx context.Context, subject common.Address) (bool, error) {
		return false, nil
	}

	outcome, err := f.orch.Run(context.Background(), runSubject, &EncryptedInput{}, f.opts)
	require.NoError(t, err)
	require.False(t, outcome.Verified)
	require.Equal(t, PhaseSuccess, outcome.Phase)
	require.Empty(t, f.minter.minted)
}

func TestRunRetriesQuietRequest(t *testing.T) {
	t.Parallel()
	f := newRunFixture(t)

	pollCalls := 0
	var retriedID *big.Int

	f.ledger.activeFn = func(ctx context.Context, subject common.Address) (*big.Int, error) {
		return big.NewInt(0), nil
	}
	f.ledger.submitFn = func(ctx context.Context, encryptedAge [32]byte, inputProof []byte) (*big.Int, error) {
		return big.NewInt(7), nil
	}
	f.poller.pollFn = func(ctx context.Context, handle string, opts *gateway.PollOptions) (*gateway.PollResult, error) {
		pollCalls++
		if pollCalls == 1 {
			// The polling round rode out the cooldown in simulated time.
			f.clk.Increment(trackerPolicy.RetryCooldown + time.Minute)
			return nil, &gateway.PollTimeoutError{Attempts: 3, Elapsed: trackerPolicy.RetryCooldown}
		}
		return readyResult("0x01"), nil
	}
	f.ledger.statusFn = func(ctx context.Context, requestID *big.Int) (verifiercontract.RequestStatus, error) {
		if requestID.Cmp(big.NewInt(7)) == 0 {
			return verifiercontract.RequestStatus{Exists: true, Expired: true}, nil
		}
		return verifiercontract.RequestStatus{Exists: true, Processed: true, RetryCount: 1}, nil
	}
	f.ledger.retryFn = func(ctx context.Context, requestID *big.Int) (*big.Int, uint8, error) {
		retriedID = requestID
		return big.NewInt(8), 1, nil
	}
	f.ledger.verifiedFn = func(ctx context.Context, subject common.Address) (bool, error) {
		return true, nil
	}

	outcome, err := f.orch.Run(context.Background(), runSubject, &EncryptedInput{}, f.opts)
	require.NoError(t, err)
	require.True(t, outcome.Verified)
	require.Zero(t, outcome.RequestID.Cmp(big.NewInt(8)))
	require.EqualValues(t, 1, outcome.RetryCount)

	require.Equal(t, 2, pollCalls)
	require.Zero(t, retriedID.Cmp(big.NewInt(7)))
	require.Equal(t, []Phase{PhaseRequesting, PhasePolling, PhaseRetrying, PhasePolling, PhaseAwaitingCallback, PhaseSuccess}, f.phases)
	require.Equal(t, 1, countTerminal(f.phases))
}

func TestRunQuietNotEligibleFailsTerminally(t *testing.T) {
	t.Parallel()
	f := newRunFixture(t)

	f.ledger.activeFn = func(ctx context.Context, subject common.Address) (*big.Int, error) {
		return big.NewInt(0), nil
	}
	f.ledger.submitFn = func(ctx context.Context, encryptedAge [32]byte, inputProof []byte) (*big.Int, error) {
		return big.NewInt(7), nil
	}
	f.poller.pollFn = func(ctx context.Context, handle string, opts *gateway.PollOptions) (*gateway.PollResult, error) {
		return nil, &gateway.PollTimeoutError{Attempts: 3}
	}
	f.ledger.statusFn = func(ctx context.Context, requestID *big.Int) (verifiercontract.RequestStatus, error) {
		return verifiercontract.RequestStatus{Exists: true, Expired: true, RetryCount: 1}, nil
	}

	outcome, err := f.orch.Run(context.Background(), runSubject, &EncryptedInput{}, f.opts)
	require.Error(t, err)

	var notEligible *RetryNotEligibleError
	require.ErrorAs(t, err, &notEligible)
	require.Equal(t, "7", notEligible.RequestID)
	require.Equal(t, trackerPolicy.RetryCooldown, notEligible.EligibleIn)
	require.ErrorContains(t, err, "check back later")

	require.Equal(t, PhaseFailed, outcome.Phase)
	require.EqualValues(t, 1, outcome.RetryCount)
	require.Equal(t, []Phase{PhaseRequesting, PhasePolling, PhaseFailed}, f.phases)
	require.Empty(t, f.minter.minted)
}

func TestRunExhaustedBudgetFailsTerminally(t *testing.T) {
	t.Parallel()
	f := newRunFixture(t)

	f.ledger.activeFn = func(ctx context.Context, subject common.Address) (*big.Int, error) {
		return big.NewInt(0), nil
	}
	f.ledger.submitFn = func(ctx context.Context, encryptedAge [32]byte, inputProof []byte) (*big.Int, error) {
		return big.NewInt(7), nil
	}
	f.poller.pollFn = func(ctx context.Context, handle string, opts *gateway.PollOptions) (*gateway.PollResult, error) {
		f.clk.Increment(trackerPolicy.RetryCooldown + time.Minute)
		return nil, &gateway.PollTimeoutError{Attempts: 3}
	}
	f.ledger.statusFn = func(ctx context.Context, requestID *big.Int) (verifiercontract.RequestStatus, error) {
		return verifiercontract.RequestStatus{Exists: true, Expired: true, RetryCount: trackerPolicy.MaxRetries}, nil
	}

	outcome, err := f.orch.Run(context.Background(), runSubject, &EncryptedInput{}, f.opts)
	require.Error(t, err)

	var exhausted *RetryExhaustedError
	require.ErrorAs(t, err, &exhausted)
	require.Equal(t, "7", exhausted.RequestID)
	require.Equal(t, trackerPolicy.MaxRetries, exhausted.RetryCount)
	require.Equal(t, trackerPolicy.MaxRetries, exhausted.MaxRetries)

	require.Equal(t, PhaseFailed, outcome.Phase)
	require.EqualValues(t, trackerPolicy.MaxRetries, outcome.RetryCount)
	require.Equal(t, []Phase{PhaseRequesting, PhasePolling, PhaseFailed}, f.phases)
}

func TestRunAdoptsActiveRequest(t *testing.T) {
	t.Parallel()
	f := newRunFixture(t)

	submitCalls := 0
	polled := false

	f.ledger.activeFn = func(ctx context.Context, subject common.Address) (*big.Int, error) {
		return big.NewInt(42), nil
	}
	f.ledger.submitFn = func(ctx context.Context, encryptedAge [32]byte, inputProof []byte) (*big.Int, error) {
		submitCalls++
		return nil, context.Canceled
	}
	f.ledger.statusFn = func(ctx context.Context, requestID *big.Int) (verifiercontract.RequestStatus, error) {
		status := verifiercontract.RequestStatus{Exists: true, Timestamp: big.NewInt(f.clk.Now().Unix())}
		status.Processed = polled
		return status, nil
	}
	f.poller.pollFn = func(ctx context.Context, handle string, opts *gateway.PollOptions) (*gateway.PollResult, error) {
		require.Equal(t, util.ToHexHandle(big.NewInt(42)), handle)
		polled = true
		return readyResult("0x01"), nil
	}
	f.ledger.verifiedFn = func(ctx context.Context, subject common.Address) (bool, error) {
		return true, nil
	}

	// No ciphertext at all: the in-flight request carries the run.
	outcome, err := f.orch.Run(context.Background(), runSubject, nil, f.opts)
	require.NoError(t, err)
	require.True(t, outcome.Verified)
	require.Zero(t, outcome.RequestID.Cmp(big.NewInt(42)))
	require.Zero(t, submitCalls)
	require.Equal(t, []Phase{PhaseRequesting, PhasePolling, PhaseAwaitingCallback, PhaseSuccess}, f.phases)
}

func TestRunShortCircuitsCompletedRequest(t *testing.T) {
	t.Parallel()
	f := newRunFixture(t)

	pollCalls := 0

	f.ledger.activeFn = func(ctx context.Context, subject common.Address) (*big.Int, error) {
		return big.NewInt(42), nil
	}
	f.ledger.statusFn = func(ctx context.Context, requestID *big.Int) (verifiercontract.RequestStatus, error) {
		return verifiercontract.RequestStatus{Exists: true, Processed: true, RetryCount: 2}, nil
	}
	f.poller.pollFn = func(ctx context.Context, handle string, opts *gateway.PollOptions) (*gateway.PollResult, error) {
		pollCalls++
		return nil, &gateway.PollTimeoutError{}
	}
	f.ledger.verifiedFn = func(ctx context.Context, subject common.Address) (bool, error) {
		return true, nil
	}

	outcome, err := f.orch.Run(context.Background(), runSubject, nil, f.opts)
	require.NoError(t, err)
	require.True(t, outcome.Verified)
	require.Zero(t, outcome.RequestID.Cmp(big.NewInt(42)))
	require.EqualValues(t, 2, outcome.RetryCount)
	require.Zero(t, pollCalls)
	require.Equal(t, []Phase{PhaseRequesting, PhaseSuccess}, f.phases)
	require.Equal(t, []common.Address{runSubject}, f.minter.minted)
}

func TestRunStartNotEligibleFailsTerminally(t *testing.T) {
	t.Parallel()
	f := newRunFixture(t)

	f.ledger.activeFn = func(ctx context.Context, subject common.Address) (*big.Int, error) {
		return big.NewInt(42), nil
	}
	f.ledger.statusFn = func(ctx context.Context, requestID *big.Int) (verifiercontract.RequestStatus, error) {
		// Expired two minutes into the cooldown, known only from the
		// chain's own timestamp.
		return verifiercontract.RequestStatus{
			Exists:     true,
			Expired:    true,
			RetryCount: 1,
			Timestamp:  big.NewInt(f.clk.Now().Add(-2 * time.Minute).Unix()),
		}, nil
	}

	outcome, err := f.orch.Run(context.Background(), runSubject, nil, f.opts)
	require.Error(t, err)

	var notEligible *RetryNotEligibleError
	require.ErrorAs(t, err, &notEligible)
	require.Equal(t, "42", notEligible.RequestID)
	require.Equal(t, 3*time.Minute, notEligible.EligibleIn)
	require.Equal(t, PhaseFailed, outcome.Phase)
	require.Equal(t, []Phase{PhaseRequesting, PhaseFailed}, f.phases)
}

func TestRunStartRetriesExpiredRequest(t *testing.T) {
	t.Parallel()
	f := newRunFixture(t)

	f.ledger.activeFn = func(ctx context.Context, subject common.Address) (*big.Int, error) {
		return big.NewInt(42), nil
	}
	f.ledger.statusFn = func(ctx context.Context, requestID *big.Int) (verifiercontract.RequestStatus, error) {
		if requestID.Cmp(big.NewInt(42)) == 0 {
			return verifiercontract.RequestStatus{
				Exists:     true,
				Expired:    true,
				RetryCount: 1,
				Timestamp:  big.NewInt(f.clk.Now().Add(-10 * time.Minute).Unix()),
			}, nil
		}
		return verifiercontract.RequestStatus{Exists: true, Processed: true, RetryCount: 2}, nil
	}
	f.ledger.retryFn = func(ctx context.Context, requestID *big.Int) (*big.Int, uint8, error) {
		require.Zero(t, requestID.Cmp(big.NewInt(42)))
		return big.NewInt(43), 2, nil
	}
	f.poller.pollFn = func(ctx context.Context, handle string, opts *gateway.PollOptions) (*gateway.PollResult, error) {
		require.Equal(t, util.ToHexHandle(big.NewInt(43)), handle)
		return readyResult("0x01"), nil
	}
	f.ledger.verifiedFn = func(ctx context.Context, subject common.Address) (bool, error) {
		return true, nil
	}

	outcome, err := f.orch.Run(context.Background(), runSubject, nil, f.opts)
	require.NoError(t, err)
	require.True(t, outcome.Verified)
	require.Zero(t, outcome.RequestID.Cmp(big.NewInt(43)))
	require.EqualValues(t, 2, outcome.RetryCount)
	require.Equal(t, []Phase{PhaseRequesting, PhaseRetrying, PhasePolling, PhaseAwaitingCallback, PhaseSuccess}, f.phases)
}

func TestRunAdoptsWriteAfterConfirmationTimeout(t *testing.T) {
	t.Parallel()
	f := newRunFixture(t)

	activeCalls := 0
	submitCalls := 0

	f.ledger.activeFn = func(ctx context.Context, subject common.Address) (*big.Int, error) {
		activeCalls++
		if activeCalls == 1 {
			return big.NewInt(0), nil
		}
		return big.NewInt(99), nil
	}
	f.ledger.submitFn = func(ctx context.Context, encryptedAge [32]byte, inputProof []byte) (*big.Int, error) {
		submitCalls++
		return nil, &chain.ConfirmationTimeoutError{
			TxHash:   common.HexToHash("0x01"),
			Attempts: 10,
			Elapsed:  time.Minute,
		}
	}
	f.ledger.statusFn = func(ctx context.Context, requestID *big.Int) (verifiercontract.RequestStatus, error) {
		return verifiercontract.RequestStatus{Exists: true, Processed: true}, nil
	}
	f.poller.pollFn = func(ctx context.Context, handle string, opts *gateway.PollOptions) (*gateway.PollResult, error) {
		require.Equal(t, util.ToHexHandle(big.NewInt(99)), handle)
		return readyResult("0x01"), nil
	}
	f.ledger.verifiedFn = func(ctx context.Context, subject common.Address) (bool, error) {
		return true, nil
	}

	outcome, err := f.orch.Run(context.Background(), runSubject, &EncryptedInput{}, f.opts)
	require.NoError(t, err)
	require.True(t, outcome.Verified)
	require.Zero(t, outcome.RequestID.Cmp(big.NewInt(99)))

	// The ambiguous write landed, so there was no second submission.
	require.Equal(t, 1, submitCalls)
}

func TestRunSurvivesPanicWithTerminalFailure(t *testing.T) {
	t.Parallel()
	f := newRunFixture(t)

	f.ledger.activeFn = func(ctx context.Context, subject common.Address) (*big.Int, error) {
		return big.NewInt(0), nil
	}
	f.ledger.submitFn = func(ctx context.Context, encryptedAge [32]byte, inputProof []byte) (*big.Int, error) {
		return big.NewInt(7), nil
	}
	f.poller.pollFn = func(ctx context.Context, handle string, opts *gateway.PollOptions) (*gateway.PollResult, error) {
		panic("gateway driver exploded")
	}

	outcome, err := f.orch.Run(context.Background(), runSubject, &EncryptedInput{}, f.opts)
	require.Error(t, err)
	require.ErrorContains(t, err, "verification run panicked")
	require.NotNil(t, outcome)
	require.Equal(t, PhaseFailed, outcome.Phase)
	require.Equal(t, PhaseFailed, f.phases[len(f.phases)-1])
	require.Equal(t, 1, countTerminal(f.phases))
}

func TestRunTrustsChainOverGatewayPayload(t *testing.T) {
	t.Parallel()
	f := newRunFixture(t)

	f.ledger.activeFn = func(ctx context.Context, subject common.Address) (*big.Int, error) {
		return big.NewInt(0), nil
	}
	f.ledger.submitFn = func(ctx context.Context, encryptedAge [32]byte, inputProof []byte) (*big.Int, error) {
		return big.NewInt(7), nil
	}
	// Garbage cleartext from the gateway must not decide the outcome.
	f.poller.pollFn = func(ctx context.Context, handle string, opts *gateway.PollOptions) (*gateway.PollResult, error) {
		return readyResult("0xdeadbeef"), nil
	}
	f.ledger.statusFn = func(ctx context.Context, requestID *big.Int) (verifiercontract.RequestStatus, error) {
		return verifiercontract.RequestStatus{Exists: true, Processed: true}, nil
	}
	f.ledger.verifiedFn = func(ctx context.Context, subject common.Address) (bool, error) {
		return true, nil
	}

	outcome, err := f.orch.Run(context.Background(), runSubject, &EncryptedInput{}, f.opts)
	require.NoError(t, err)
	require.True(t, outcome.Verified)
	require.Equal(t, []common.Address{runSubject}, f.minter.minted)
}

func TestRunWithoutInputOrActiveRequest(t *testing.T) {
	t.Parallel()
	f := newRunFixture(t)

	f.ledger.activeFn = func(ctx context.Context, subject common.Address) (*big.Int, error) {
		return big.NewInt(0), nil
	}

	outcome, err := f.orch.Run(context.Background(), runSubject, nil, f.opts)
	require.Error(t, err)
	require.ErrorContains(t, err, "no encrypted input")
	require.Equal(t, PhaseFailed, outcome.Phase)
	require.Equal(t, []Phase{PhaseRequesting, PhaseFailed}, f.phases)
}

package verification

import (
	"context"
	"math/big"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/log"
)

var defaultCallbackInterval = 2 * time.Second
var defaultCallbackBudget = 120 * time.Second

// ReconcileOptions bounds the wait for the on-chain callback after the
// gateway reports the decryption done.
type ReconcileOptions struct {
	Interval time.Duration
	Budget   time.Duration

	// OnProgress, when set, receives the consumed fraction of the budget
	// after every check, 1 on completion.
	OnProgress func(fraction float64)
}

// Reconciler watches the contract for the decryption callback. The gateway's
// payload is advisory, only the chain's state settles the outcome.
type Reconciler struct {
	ledger LedgerClient
	clk    clock.Clock
	logger log.Logger
}

func NewReconciler(ledger LedgerClient, clk clock.Clock, logger log.Logger) *Reconciler {
	return &Reconciler{
		ledger: ledger,
		clk:    clk,
		logger: logger,
	}
}

// AwaitCallback blocks until the request flips processed or the subject reads
// verified, whichever the chain shows first. Transient read failures burn
// budget, not the wait.
func (r *Reconciler) AwaitCallback(ctx context.Context, subject common.Address, requestID *big.Int, opts *ReconcileOptions) (bool, error) {
	if opts == nil {
		opts = &ReconcileOptions{}
	}
	interval := opts.Interval
	if interval == 0 {
		interval = defaultCallbackInterval
	}
	budget := opts.Budget
	if budget == 0 {
		budget = defaultCallbackBudget
	}

	start := r.clk.Now()
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		if verdict, ok := r.check(ctx, subject, requestID); ok {
			if opts.OnProgress != nil {
				opts.OnProgress(1)
			}
			return verdict, nil
		}

		elapsed := r.clk.Since(start)
		if opts.OnProgress != nil {
			fraction := float64(elapsed) / float64(budget)
			if fraction > 1 {
				fraction = 1
			}
			opts.OnProgress(fraction)
		}

		// Stop before a wait that would overshoot the budget.
		if elapsed+interval >= budget {
			return false, &CallbackTimeoutError{RequestID: requestID.String(), Waited: elapsed}
		}

		timer := r.clk.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false, ctx.Err()
		case <-timer.C():
		}
	}
}

// check performs one reconciliation pass. ok is false while the callback has
// not been observed or the reads failed.
func (r *Reconciler) check(ctx context.Context, subject common.Address, requestID *big.Int) (verdict bool, ok bool) {
	status, err := r.ledger.GetRequestStatus(ctx, requestID)
	if err != nil {
		r.logger.WithFields(logrus.Fields{"requestID": requestID, "error": err}).Debug("Status read failed, retrying")
		return false, false
	}

	if status.Processed {
		verified, err := r.ledger.IsVerified(ctx, subject)
		if err != nil {
			r.logger.WithFields(logrus.Fields{"subject": subject.Hex(), "error": err}).Debug("Verdict read failed, retrying")
			return false, false
		}
		return verified, true
	}

	// A positive verdict can show up before the processed flag on providers
	// with lagging state reads.
	verified, err := r.ledger.IsVerified(ctx, subject)
	if err == nil && verified {
		return true, true
	}
	return false, false
}

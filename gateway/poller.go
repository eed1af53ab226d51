package gateway

import (
	"context"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/sirupsen/logrus"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/errors"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/log"
)

var defaultPollAttempts = uint(60)
var defaultPollInterval = 5 * time.Second

// PollOptions bounds one polling run. The interval stays fixed across the run,
// decryption latency is set by the gateway's queue and backing off would only
// delay pickup of a result that is already there.
type PollOptions struct {
	MaxAttempts uint
	Interval    time.Duration

	// OnProgress, when set, is called once per attempt before the request
	// goes out.
	OnProgress func(attempt uint)
}

// PollResult records the payload together with how many attempts it took.
type PollResult struct {
	Payload  *DecryptionPayload
	Attempts uint
}

// Poller drives fixed-interval decryption polling against one contract.
type Poller struct {
	client          *Client
	contractAddress string
	chainID         int64
	clk             clock.Clock
	logger          log.Logger
}

func NewPoller(client *Client, contractAddress string, chainID int64, clk clock.Clock, logger log.Logger) *Poller {
	return &Poller{
		client:          client,
		contractAddress: contractAddress,
		chainID:         chainID,
		clk:             clk,
		logger:          logger,
	}
}

// Poll requests the handle's result until it is ready or the attempt budget is
// spent. The first attempt fires immediately, waits only separate attempts, so
// a budget of n attempts issues exactly n requests.
func (p *Poller) Poll(ctx context.Context, handle string, opts *PollOptions) (*PollResult, error) {
	if opts == nil {
		opts = &PollOptions{}
	}
	attempts := opts.MaxAttempts
	if attempts == 0 {
		attempts = defaultPollAttempts
	}
	interval := opts.Interval
	if interval == 0 {
		interval = defaultPollInterval
	}

	start := p.clk.Now()
	for attempt := uint(1); attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if opts.OnProgress != nil {
			opts.OnProgress(attempt)
		}

		payload, err := p.client.DecryptionStatus(ctx, handle, p.contractAddress, p.chainID)
		if err == nil {
			return &PollResult{Payload: payload, Attempts: attempt}, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if errors.Is(err, ErrNotReady) {
			p.logger.WithFields(logrus.Fields{"handle": handle, "attempt": attempt}).Debug("Decryption result not ready")
		} else {
			// Gateway trouble burns the attempt but not the run.
			p.logger.WithFields(logrus.Fields{"handle": handle, "attempt": attempt, "error": err}).Warn("Gateway poll failed, keeping schedule")
		}

		if attempt == attempts {
			break
		}

		timer := p.clk.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C():
		}
	}

	return nil, &PollTimeoutError{Attempts: attempts, Elapsed: p.clk.Since(start)}
}

package services

import (
	"context"
	"time"

	"code.cloudfoundry.org/clock"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/log"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/config"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/internal/db"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/monitor"
)

// Sweeper fails jobs that stopped making progress, e.g. rows stranded by a
// crash between requeue and pickup. Live jobs refresh updated_at on every
// phase transition and never match.
type Sweeper struct {
	db *db.DB

	sweepInterval time.Duration
	staleAfter    time.Duration

	clk    clock.Clock
	logger log.Logger

	enableMonitor bool
}

func NewSweeper(conf *config.Config, database *db.DB, clk clock.Clock, logger log.Logger) *Sweeper {
	return &Sweeper{
		db:            database,
		sweepInterval: time.Duration(conf.StaleJobSweepIntervalSecs) * time.Second,
		staleAfter:    time.Duration(conf.RequestTimeoutSecs) * time.Second * time.Duration(conf.MaxDecryptionRetries+1),
		clk:           clk,
		logger:        logger,
		enableMonitor: conf.Monitor.Enable,
	}
}

func (s *Sweeper) Start(ctx context.Context) error {
	ticker := s.clk.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C():
			s.sweep()
		}
	}
}

func (s *Sweeper) sweep() {
	swept, err := s.db.MarkStaleJobsFailed(s.clk.Now().Add(-s.staleAfter))
	if err != nil {
		s.logger.Errorf("stale job sweep failed: %v", err)
		return
	}
	if swept > 0 {
		s.logger.Warnf("failed %d stale jobs", swept)
		if s.enableMonitor {
			monitor.StaleJobCount.Add(float64(swept))
		}
	}
}

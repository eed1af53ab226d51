package services

import (
	"context"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/gammazero/workerpool"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/errors"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/log"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/config"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/internal/db"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/model"
)

var (
	ErrNoJobAvailable = errors.New("no job found")
	ErrJobTimeout     = errors.New("job timeout reached")
)

// JobProcessor runs one job to a terminal status.
type JobProcessor interface {
	ProcessJob(ctx context.Context, job model.VerificationJob) error
}

// Worker polls the queue and dispatches jobs onto a bounded pool. One picker
// goroutine feeds the pool, so a job is dispatched at most once.
type Worker struct {
	mu         sync.RWMutex
	workerPool *workerpool.WorkerPool

	pollInterval time.Duration
	jobTimeout   time.Duration

	db        *db.DB
	processor JobProcessor
	clk       clock.Clock
	logger    log.Logger
}

func NewWorker(conf *config.Config, database *db.DB, processor JobProcessor, clk clock.Clock, logger log.Logger) *Worker {
	// A run may ride out the full request window once per retry, budget for
	// all of them before calling a job dead.
	jobTimeout := time.Duration(conf.RequestTimeoutSecs) * time.Second * time.Duration(conf.MaxDecryptionRetries+1)

	return &Worker{
		workerPool:   workerpool.New(conf.VerificationWorkerCount),
		pollInterval: time.Duration(conf.JobPollIntervalSecs) * time.Second,
		jobTimeout:   jobTimeout,
		db:           database,
		processor:    processor,
		clk:          clk,
		logger:       logger,
	}
}

func (w *Worker) Start(ctx context.Context) error {
	// Jobs that were mid-run when the process died go back to the queue, the
	// next run adopts whatever request is still tracked on-chain.
	requeued, err := w.db.RequeueInterruptedJobs()
	if err != nil {
		return errors.Wrap(err, "requeue interrupted jobs")
	}
	if requeued > 0 {
		w.logger.Infof("requeued %d interrupted jobs", requeued)
	}

	go func() {
		w.logger.Info("verification worker started")
		defer w.logger.Info("verification worker stopped")

		ticker := w.clk.NewTicker(w.pollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C():
				job, err := w.fetchNextJob()
				if err != nil {
					if !errors.Is(err, ErrNoJobAvailable) {
						w.logger.Warnf("failed to fetch job: %v", err)
					}
					continue
				}

				w.queueJob(ctx, job)
			}
		}
	}()

	return nil
}

func (w *Worker) fetchNextJob() (*model.VerificationJob, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	job, err := w.db.GetNextQueuedJob()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get job from db")
	}

	if job.ID == nil {
		return nil, ErrNoJobAvailable
	}

	if err := w.db.UpdateJobStatus(job.ID, model.JobStatusQueued, model.JobStatusRequesting); err != nil {
		return nil, errors.Wrap(err, "failed to update job status")
	}

	w.logger.Infof("fetched next job: %s", job.ID)
	return &job, nil
}

func (w *Worker) queueJob(ctx context.Context, job *model.VerificationJob) {
	if w.workerPool.WaitingQueueSize() > 0 {
		w.logger.Infof("worker pool queue size: %d", w.workerPool.WaitingQueueSize())
	}

	w.workerPool.Submit(func() {
		if err := w.processJob(ctx, job); err != nil {
			w.logger.Errorf("job processing failed: %v", err)
		}
	})
}

func (w *Worker) processJob(ctx context.Context, job *model.VerificationJob) error {
	w.logger.Infof("processing job: %s", job.ID)

	if err := w.runJobWithTimeout(ctx, job); err != nil {
		// The processor persists its own failures, this catches the timeout
		// case where it never got to.
		if derr := w.db.MarkJobFailed(job.ID, err.Error()); derr != nil {
			w.logger.Errorf("failed to mark job failed: %v", derr)
		}
		return err
	}

	return nil
}

func (w *Worker) runJobWithTimeout(ctx context.Context, job *model.VerificationJob) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, w.jobTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- w.processor.ProcessJob(ctxWithTimeout, *job)
	}()

	select {
	case err := <-done:
		if err != nil {
			return err
		}

		w.logger.Infof("job %s completed", job.ID)
		return nil
	case <-ctxWithTimeout.Done():
		return ErrJobTimeout
	}
}

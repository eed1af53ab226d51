package ctrl

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/errors"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/util"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/gateway"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/internal/verification"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/model"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/monitor"
)

// CreateVerificationJob encrypts the age and queues a job for the worker. The
// plaintext age lives only for the duration of this call.
func (c *Ctrl) CreateVerificationJob(ctx context.Context, req model.VerificationRequest) (model.VerificationJob, error) {
	count, err := c.db.InProgressJobCount()
	if err != nil {
		return model.VerificationJob{}, errors.Wrap(err, "count in-progress jobs")
	}
	if count >= int64(c.conf.MaxJobQueueSize) {
		return model.VerificationJob{}, errors.NewHTTPError(http.StatusTooManyRequests, "verification queue is full, try again later")
	}

	input, err := c.encryptor.EncryptAge(ctx, req.Age, c.conf.ContractAddress, c.contract.OperatorAddress)
	if err != nil {
		return model.VerificationJob{}, errors.Wrap(err, "encrypt age")
	}

	id := uuid.New()
	job := model.VerificationJob{
		ID:         &id,
		Subject:    c.contract.OperatorAddress,
		Status:     model.JobStatusQueued.String(),
		Handle:     hexutil.Encode(input.Handle[:]),
		InputProof: hexutil.Encode(input.Proof),
	}
	if err := c.db.AddJob(&job); err != nil {
		return model.VerificationJob{}, errors.Wrap(err, "create job in db")
	}
	c.recordEvent(job.ID, model.JobStatusQueued, "", 0, "verification job accepted")
	return job, nil
}

func (c *Ctrl) GetJob(id *uuid.UUID) (model.VerificationJob, error) {
	job, err := c.db.GetJob(id)
	return job, errors.Wrap(err, "get job from db")
}

func (c *Ctrl) ListJobs(q model.VerificationJobListOptions) (model.VerificationJobList, error) {
	items, total, err := c.db.ListJobs(q)
	if err != nil {
		return model.VerificationJobList{}, errors.Wrap(err, "list jobs from db")
	}
	return model.VerificationJobList{
		Metadata: model.ListMeta{Total: uint64(total)},
		Items:    items,
	}, nil
}

func (c *Ctrl) ListJobEvents(id *uuid.UUID) (model.RequestEventList, error) {
	items, err := c.db.ListRequestEvents(id)
	if err != nil {
		return model.RequestEventList{}, errors.Wrap(err, "list request events from db")
	}
	return model.RequestEventList{
		Metadata: model.ListMeta{Total: uint64(len(items))},
		Items:    items,
	}, nil
}

// ProcessJob drives one queued job to a terminal status. Runs against the
// same chain subject serialize so in-flight requests are adopted, never
// raced.
func (c *Ctrl) ProcessJob(ctx context.Context, job model.VerificationJob) error {
	input, err := decodeEncryptedInput(&job)
	if err != nil {
		c.failJob(&job, errors.Wrap(err, "decode stored ciphertext"))
		return err
	}

	lock := c.subjectLock(job.Subject)
	lock.Lock()
	defer lock.Unlock()

	c.incrementMonitorCounter(monitor.VerificationStartedCount)
	outcome, runErr := c.orchestrator.Run(ctx, common.HexToAddress(job.Subject), input, c.runOptions(&job))

	requestID := ""
	if outcome.RequestID != nil {
		requestID = outcome.RequestID.String()
	}

	if runErr != nil {
		c.incrementMonitorCounter(monitor.VerificationFailedCount)
		if err := c.db.UpdateJob(job.ID, model.VerificationJob{
			Status:     model.JobStatusFailed.String(),
			RequestID:  requestID,
			RetryCount: outcome.RetryCount,
			Error:      runErr.Error(),
		}); err != nil {
			c.logger.WithFields(logrus.Fields{"job": job.ID, "error": err}).Error("Failed to record job failure")
		}
		c.recordEvent(job.ID, model.JobStatusFailed, requestID, outcome.RetryCount, runErr.Error())
		return runErr
	}

	c.incrementMonitorCounter(monitor.VerificationSucceededCount)
	verified := outcome.Verified
	if err := c.db.UpdateJob(job.ID, model.VerificationJob{
		Status:     model.JobStatusSucceeded.String(),
		RequestID:  requestID,
		RetryCount: outcome.RetryCount,
		Verified:   &verified,
	}); err != nil {
		c.logger.WithFields(logrus.Fields{"job": job.ID, "error": err}).Error("Failed to record job completion")
	}
	c.recordEvent(job.ID, model.JobStatusSucceeded, requestID, outcome.RetryCount, fmt.Sprintf("completed with verdict %t", verified))
	return nil
}

// EnsureCredential satisfies the orchestrator's minter dependency while
// keeping the mint counter in one place.
func (c *Ctrl) EnsureCredential(ctx context.Context, subject common.Address) (*big.Int, error) {
	tokenID, err := c.minter.EnsureCredential(ctx, subject)
	if err == nil {
		c.incrementMonitorCounter(monitor.CredentialMintCount)
	}
	return tokenID, err
}

func (c *Ctrl) runOptions(job *model.VerificationJob) *verification.Options {
	return &verification.Options{
		PollOptions: gateway.PollOptions{
			MaxAttempts: c.conf.Gateway.PollMaxAttempts,
			Interval:    time.Duration(c.conf.Gateway.PollIntervalSecs) * time.Second,
			OnProgress: func(attempt uint) {
				c.incrementMonitorCounter(monitor.GatewayPollCount)
			},
		},
		SubmitRetry: util.BackoffOption{
			Attempts:  c.conf.SubmitRetryAttempts,
			BaseDelay: time.Duration(c.conf.SubmitRetryBaseDelaySecs) * time.Second,
		},
		Reconcile: verification.ReconcileOptions{
			Interval: time.Duration(c.conf.CallbackPollIntervalSecs) * time.Second,
			Budget:   time.Duration(c.conf.CallbackBudgetSecs) * time.Second,
		},
		PhaseBudget: time.Duration(c.conf.DecryptionBudgetSecs) * time.Second,
		OnProgress:  c.progressRecorder(job),
	}
}

// progressRecorder persists non-terminal phase transitions as they happen.
// Terminal states are written by ProcessJob, which also knows the verdict and
// the error.
func (c *Ctrl) progressRecorder(job *model.VerificationJob) verification.ProgressFunc {
	return func(phase verification.Phase, requestID *big.Int, retryCount uint8) {
		status := statusForPhase(phase)
		if status.Terminal() {
			return
		}
		if phase == verification.PhaseRetrying {
			c.incrementMonitorCounter(monitor.DecryptionRetryCount)
		}

		reqStr := ""
		if requestID != nil {
			reqStr = requestID.String()
		}
		if err := c.db.UpdateJob(job.ID, model.VerificationJob{
			Status:     status.String(),
			RequestID:  reqStr,
			RetryCount: retryCount,
		}); err != nil {
			c.logger.WithFields(logrus.Fields{"job": job.ID, "status": status, "error": err}).Error("Failed to record job progress")
		}
		c.recordEvent(job.ID, status, reqStr, retryCount, "")
	}
}

func (c *Ctrl) failJob(job *model.VerificationJob, reason error) {
	c.incrementMonitorCounter(monitor.VerificationFailedCount)
	if err := c.db.MarkJobFailed(job.ID, reason.Error()); err != nil {
		c.logger.WithFields(logrus.Fields{"job": job.ID, "error": err}).Error("Failed to record job failure")
	}
	c.recordEvent(job.ID, model.JobStatusFailed, job.RequestID, job.RetryCount, reason.Error())
}

// recordEvent appends to the job's audit trail. Auditing is best-effort, a
// failed insert never interrupts the run.
func (c *Ctrl) recordEvent(jobID *uuid.UUID, status model.JobStatus, requestID string, retryCount uint8, detail string) {
	event := model.RequestEvent{
		JobID:      jobID,
		Status:     status.String(),
		RequestID:  requestID,
		RetryCount: retryCount,
		Detail:     detail,
	}
	if err := c.db.AddRequestEvent(&event); err != nil {
		c.logger.WithFields(logrus.Fields{"job": jobID, "status": status, "error": err}).Error("Failed to record request event")
	}
}

func decodeEncryptedInput(job *model.VerificationJob) (*verification.EncryptedInput, error) {
	if job.Handle == "" {
		// Requeued job whose request already lives on-chain, the run adopts
		// it without resubmitting.
		return nil, nil
	}
	handleBytes, err := hexutil.Decode(job.Handle)
	if err != nil {
		return nil, errors.Wrap(err, "decode handle")
	}
	if len(handleBytes) != 32 {
		return nil, errors.Errorf("handle is %d bytes, want 32", len(handleBytes))
	}
	proof, err := hexutil.Decode(job.InputProof)
	if err != nil {
		return nil, errors.Wrap(err, "decode input proof")
	}

	input := &verification.EncryptedInput{Proof: proof}
	copy(input.Handle[:], handleBytes)
	return input, nil
}

func statusForPhase(phase verification.Phase) model.JobStatus {
	switch phase {
	case verification.PhaseRequesting:
		return model.JobStatusRequesting
	case verification.PhasePolling:
		return model.JobStatusPolling
	case verification.PhaseAwaitingCallback:
		return model.JobStatusAwaitingCallback
	case verification.PhaseRetrying:
		return model.JobStatusRetrying
	case verification.PhaseSuccess:
		return model.JobStatusSucceeded
	}
	return model.JobStatusFailed
}

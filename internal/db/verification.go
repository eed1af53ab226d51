package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/model"
)

func (d *DB) AddJob(job *model.VerificationJob) error {
	ret := d.db.Create(&job)
	return ret.Error
}

func (d *DB) GetJob(id *uuid.UUID) (model.VerificationJob, error) {
	job := model.VerificationJob{}
	ret := d.db.Where(&model.VerificationJob{ID: id}).First(&job)
	return job, ret.Error
}

func (d *DB) ListJobs(q model.VerificationJobListOptions) ([]model.VerificationJob, int64, error) {
	list := []model.VerificationJob{}
	var total int64

	err := d.db.Transaction(func(tx *gorm.DB) error {
		ret := tx.Model(model.VerificationJob{})
		if q.Status != nil {
			ret = ret.Where("status = ?", *q.Status)
		}
		if err := ret.Count(&total).Error; err != nil {
			return err
		}
		if q.Sort != nil {
			ret = ret.Order(*q.Sort)
		} else {
			ret = ret.Order("created_at DESC")
		}
		return ret.Find(&list).Error
	})
	return list, total, err
}

func (d *DB) GetNextQueuedJob() (model.VerificationJob, error) {
	job := model.VerificationJob{}
	ret := d.db.Where(&model.VerificationJob{Status: model.JobStatusQueued.String()}).
		Order("created_at").
		Limit(1).
		Find(&job)
	return job, ret.Error
}

func (d *DB) InProgressJobCount() (int64, error) {
	var count int64
	ret := d.db.Model(&model.VerificationJob{}).
		Where("status <> ? AND status <> ?", model.JobStatusSucceeded.String(), model.JobStatusFailed.String()).
		Count(&count)

	if ret.Error != nil {
		return 0, ret.Error
	}
	return count, nil
}

// UpdateJob applies the non-zero fields of new. Jobs already in a terminal
// status are left untouched so a late writer cannot resurrect them.
func (d *DB) UpdateJob(id *uuid.UUID, new model.VerificationJob) error {
	ret := d.db.Where(&model.VerificationJob{ID: id}).
		Where("status <> ? AND status <> ?", model.JobStatusSucceeded.String(), model.JobStatusFailed.String()).
		Updates(new)
	return ret.Error
}

// UpdateJobStatus moves a job from one status to another and is a no-op when
// the job is no longer in oldStatus.
func (d *DB) UpdateJobStatus(id *uuid.UUID, oldStatus, newStatus model.JobStatus) error {
	ret := d.db.Model(&model.VerificationJob{}).
		Where(&model.VerificationJob{ID: id, Status: oldStatus.String()}).
		Update("status", newStatus.String())
	return ret.Error
}

func (d *DB) MarkJobFailed(id *uuid.UUID, reason string) error {
	return d.UpdateJob(id, model.VerificationJob{
		Status: model.JobStatusFailed.String(),
		Error:  reason,
	})
}

// RequeueInterruptedJobs puts jobs that were mid-run when the process died
// back into Queued. The request id is kept so the next run can adopt the
// request still tracked on-chain instead of submitting a duplicate.
func (d *DB) RequeueInterruptedJobs() (int64, error) {
	ret := d.db.Model(&model.VerificationJob{}).
		Where("status NOT IN (?, ?, ?)",
			model.JobStatusQueued.String(), model.JobStatusSucceeded.String(), model.JobStatusFailed.String()).
		Update("status", model.JobStatusQueued.String())
	return ret.RowsAffected, ret.Error
}

func (d *DB) MarkStaleJobsFailed(olderThan time.Time) (int64, error) {
	ret := d.db.Model(&model.VerificationJob{}).
		Where("status <> ? AND status <> ?", model.JobStatusSucceeded.String(), model.JobStatusFailed.String()).
		Where("updated_at < ?", olderThan).
		Updates(model.VerificationJob{
			Status: model.JobStatusFailed.String(),
			Error:  "job made no progress before the stale sweep",
		})
	return ret.RowsAffected, ret.Error
}

func (d *DB) AddRequestEvent(event *model.RequestEvent) error {
	ret := d.db.Create(&event)
	return ret.Error
}

func (d *DB) ListRequestEvents(jobID *uuid.UUID) ([]model.RequestEvent, error) {
	var events []model.RequestEvent
	ret := d.db.Where(&model.RequestEvent{JobID: jobID}).Order("created_at").Find(&events)
	return events, ret.Error
}

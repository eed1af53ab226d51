package model

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/plugin/soft_delete"
)

// JobStatus mirrors the orchestration phases plus the pre-run Queued state.
// The database stores the string form so rows stay readable without a decoder.
type JobStatus string

const (
	JobStatusQueued           JobStatus = "Queued"
	JobStatusRequesting       JobStatus = "Requesting"
	JobStatusPolling          JobStatus = "Polling"
	JobStatusAwaitingCallback JobStatus = "AwaitingCallback"
	JobStatusRetrying         JobStatus = "Retrying"
	JobStatusSucceeded        JobStatus = "Succeeded"
	JobStatusFailed           JobStatus = "Failed"
)

func (s JobStatus) String() string {
	return string(s)
}

// Terminal reports whether a job in this status will never change again.
func (s JobStatus) Terminal() bool {
	return s == JobStatusSucceeded || s == JobStatusFailed
}

// VerificationJob is the persisted record of one verification run. The age
// itself is never written here; only the ciphertext handle and proof survive
// the request, so a queued job can be picked up after a restart.
type VerificationJob struct {
	ID *uuid.UUID `gorm:"type:char(36);primaryKey" json:"id" readonly:"true"`
	Model
	Subject    string                `gorm:"type:varchar(255);not null;index:subject_status" json:"subject" readonly:"true"`
	Status     string                `gorm:"type:varchar(255);not null;default:'Queued';index:subject_status" json:"status" readonly:"true"`
	Handle     string                `gorm:"type:varchar(255);not null;default:''" json:"-"`
	InputProof string                `gorm:"type:text" json:"-"`
	RequestID  string                `gorm:"type:varchar(255);not null;default:''" json:"requestId" readonly:"true"`
	RetryCount uint8                 `gorm:"type:tinyint unsigned;not null;default:0" json:"retryCount" readonly:"true"`
	Verified   *bool                 `gorm:"type:tinyint(1)" json:"verified,omitempty" readonly:"true"`
	Error      string                `gorm:"type:text" json:"error,omitempty" readonly:"true"`
	DeletedAt  soft_delete.DeletedAt `gorm:"softDelete:nano;not null;default:0" json:"-" readonly:"true"`
}

type VerificationJobList struct {
	Metadata ListMeta          `json:"metadata"`
	Items    []VerificationJob `json:"items"`
}

type VerificationJobListOptions struct {
	Status *string `form:"status"`
	Sort   *string `form:"sort"`
}

// VerificationRequest is the inbound body for creating a job. It is bound and
// handed to the encryptor, never persisted.
type VerificationRequest struct {
	Age uint8 `json:"age" binding:"required"`
}

func (r *VerificationRequest) Bind(ctx *gin.Context) error {
	var in VerificationRequest
	if err := ctx.ShouldBindJSON(&in); err != nil {
		return err
	}
	r.Age = in.Age
	return nil
}

// SubjectState is the live on-chain view of one address.
type SubjectState struct {
	Subject         string `json:"subject"`
	Verified        bool   `json:"verified"`
	HasCredential   bool   `json:"hasCredential"`
	ActiveRequestID string `json:"activeRequestId,omitempty"`
}

// RequestEvent is an append-only audit row recording each phase transition of
// a job together with the decryption request id current at that moment, so the
// id lineage across retries can be reconstructed afterwards.
type RequestEvent struct {
	ID uint `gorm:"primaryKey" json:"id" readonly:"true"`
	Model
	JobID      *uuid.UUID `gorm:"type:char(36);not null;index:job_id" json:"jobId"`
	Status     string     `gorm:"type:varchar(255);not null" json:"status"`
	RequestID  string     `gorm:"type:varchar(255);not null;default:''" json:"requestId"`
	RetryCount uint8      `gorm:"type:tinyint unsigned;not null;default:0" json:"retryCount"`
	Detail     string     `gorm:"type:text" json:"detail,omitempty"`
}

type RequestEventList struct {
	Metadata ListMeta       `json:"metadata"`
	Items    []RequestEvent `json:"items"`
}

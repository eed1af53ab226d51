package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/errors"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/model"
)

// createVerification
//
//	@Description  This endpoint allows you to submit an age for confidential verification
//	@ID			createVerification
//	@Tags		verification
//	@Accept		json
//	@Produce	json
//	@Param		body	body	model.VerificationRequest	true	"Verification request"
//	@Router		/verification [post]
//	@Success	200	{object}	model.VerificationJob
func (h *Handler) CreateVerification(ctx *gin.Context) {
	var req model.VerificationRequest
	if err := req.Bind(ctx); err != nil {
		handleOperatorError(ctx, err, "bind request")
		return
	}

	job, err := h.ctrl.CreateVerificationJob(ctx, req)
	if err != nil {
		handleOperatorError(ctx, err, "create verification job")
		return
	}

	ctx.JSON(http.StatusOK, job)
}

// listVerifications
//
//	@Description  This endpoint allows you to list verification jobs
//	@ID			listVerifications
//	@Tags		verification
//	@Router		/verification [get]
//	@Param		status	query	string	false	"Filter by job status"
//	@Param		sort	query	string	false	"Sort order, default created_at DESC"
//	@Success	200	{object}	model.VerificationJobList
func (h *Handler) ListVerifications(ctx *gin.Context) {
	var q model.VerificationJobListOptions
	if err := ctx.ShouldBindQuery(&q); err != nil {
		handleOperatorError(ctx, err, "bind query")
		return
	}

	list, err := h.ctrl.ListJobs(q)
	if err != nil {
		handleOperatorError(ctx, err, "list verification jobs")
		return
	}

	ctx.JSON(http.StatusOK, list)
}

// getVerification
//
//	@Description  This endpoint allows you to get a verification job by id
//	@ID			getVerification
//	@Tags		verification
//	@Router		/verification/{id} [get]
//	@Param		id	path	string	true	"job ID"
//	@Success	200	{object}	model.VerificationJob
func (h *Handler) GetVerification(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		handleOperatorError(ctx, errors.NewHTTPError(http.StatusBadRequest, err.Error()), "parse job id")
		return
	}

	job, err := h.ctrl.GetJob(&id)
	if err != nil {
		handleOperatorError(ctx, err, "get verification job")
		return
	}

	ctx.JSON(http.StatusOK, job)
}

// listVerificationEvents
//
//	@Description  This endpoint allows you to list the request lifecycle events of a verification job
//	@ID			listVerificationEvents
//	@Tags		verification
//	@Router		/verification/{id}/events [get]
//	@Param		id	path	string	true	"job ID"
//	@Success	200	{object}	model.RequestEventList
func (h *Handler) ListVerificationEvents(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		handleOperatorError(ctx, errors.NewHTTPError(http.StatusBadRequest, err.Error()), "parse job id")
		return
	}

	list, err := h.ctrl.ListJobEvents(&id)
	if err != nil {
		handleOperatorError(ctx, err, "list verification events")
		return
	}

	ctx.JSON(http.StatusOK, list)
}

package handler

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/errors"
)

// getSubjectState
//
//	@Description  This endpoint allows you to read the on-chain verification state of a subject
//	@ID			getSubjectState
//	@Tags		subject
//	@Router		/subject/{subject} [get]
//	@Param		subject	path	string	true	"subject address"
//	@Success	200	{object}	model.SubjectState
func (h *Handler) GetSubjectState(ctx *gin.Context) {
	subject := ctx.Param("subject")
	if !common.IsHexAddress(subject) {
		handleOperatorError(ctx, errors.NewHTTPError(http.StatusBadRequest, "invalid subject address"), "parse subject")
		return
	}

	state, err := h.ctrl.SubjectState(ctx, common.HexToAddress(subject))
	if err != nil {
		handleOperatorError(ctx, err, "get subject state")
		return
	}

	ctx.JSON(http.StatusOK, state)
}

// getSubjectCredential
//
//	@Description  This endpoint allows you to read the credential token of a verified subject
//	@ID			getSubjectCredential
//	@Tags		subject
//	@Router		/credential/{subject} [get]
//	@Param		subject	path	string	true	"subject address"
//	@Success	200	{object}	credential.CredentialInfo
func (h *Handler) GetSubjectCredential(ctx *gin.Context) {
	subject := ctx.Param("subject")
	if !common.IsHexAddress(subject) {
		handleOperatorError(ctx, errors.NewHTTPError(http.StatusBadRequest, "invalid subject address"), "parse subject")
		return
	}

	info, err := h.ctrl.SubjectCredential(ctx, common.HexToAddress(subject))
	if err != nil {
		handleOperatorError(ctx, err, "get subject credential")
		return
	}

	ctx.JSON(http.StatusOK, info)
}

// getGatewayStatus
//
//	@Description  This endpoint allows you to check the decryption gateway health
//	@ID			getGatewayStatus
//	@Tags		gateway
//	@Router		/gateway [get]
//	@Success	200	{object}	gateway.Status
func (h *Handler) GetGatewayStatus(ctx *gin.Context) {
	status, err := h.ctrl.GatewayState(ctx)
	if err != nil {
		handleOperatorError(ctx, err, "get gateway status")
		return
	}

	ctx.JSON(http.StatusOK, status)
}

package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/errors"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/internal/ctrl"
)

type Handler struct {
	ctrl *ctrl.Ctrl
}

func New(ctrl *ctrl.Ctrl) *Handler {
	h := &Handler{
		ctrl: ctrl,
	}
	return h
}

// corsMiddleware handles CORS for individual routes
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func (h *Handler) Register(r *gin.Engine) {
	group := r.Group("/v1")

	// verification
	group.POST("/verification", corsMiddleware(), h.CreateVerification)
	group.GET("/verification", corsMiddleware(), h.ListVerifications)
	group.GET("/verification/:id", corsMiddleware(), h.GetVerification)
	group.GET("/verification/:id/events", corsMiddleware(), h.ListVerificationEvents)

	// subject
	group.GET("/subject/:subject", corsMiddleware(), h.GetSubjectState)
	group.GET("/credential/:subject", corsMiddleware(), h.GetSubjectCredential)

	// gateway
	group.GET("/gateway", corsMiddleware(), h.GetGatewayStatus)
}

func handleOperatorError(ctx *gin.Context, err error, context string) {
	info := "Operator"
	if context != "" {
		info += (": " + context)
	}
	errors.Response(ctx, errors.Wrap(err, info))
}

package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError carries an HTTP status code through an error chain.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// Response writes err as a JSON error response. If an *HTTPError is found
// anywhere in the chain its status code is used, otherwise 500.
func Response(ctx *gin.Context, err error) {
	code := http.StatusInternalServerError
	var httpErr *HTTPError
	if As(err, &httpErr) {
		code = httpErr.Code
	}
	ctx.JSON(code, gin.H{"error": err.Error()})
}

package chain

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// EndpointError records the failure of a single read endpoint.
type EndpointError struct {
	Endpoint string
	Err      error
}

func (e EndpointError) Error() string {
	return fmt.Sprintf("%s: %v", e.Endpoint, e.Err)
}

func (e EndpointError) Unwrap() error {
	return e.Err
}

// AllEndpointsError means every configured read endpoint failed for one
// operation. The per-endpoint errors are kept so callers can report exactly
// what went wrong where.
type AllEndpointsError struct {
	Op     string
	Errors []EndpointError
}

func (e *AllEndpointsError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, underlying := range e.Errors {
		parts = append(parts, underlying.Error())
	}
	return fmt.Sprintf("all %d read endpoints unavailable for %s: %s", len(e.Errors), e.Op, strings.Join(parts, "; "))
}

// ConfirmationTimeoutError means a submitted transaction produced no receipt
// within the polling budget. The write may still land later, so callers must
// re-check on-chain state before resubmitting.
type ConfirmationTimeoutError struct {
	TxHash   common.Hash
	Attempts uint
	Elapsed  time.Duration
}

func (e *ConfirmationTimeoutError) Error() string {
	return fmt.Sprintf("no receipt for transaction %s after %d attempts (%s)", e.TxHash.Hex(), e.Attempts, e.Elapsed)
}

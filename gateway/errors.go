package gateway

import (
	"fmt"
	"time"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/errors"
)

// ErrNotReady reports that the gateway has no result for the handle yet. It is
// the normal answer while the decryption is still queued.
var ErrNotReady = errors.New("decryption result not ready")

// StatusError is any gateway answer other than success or the not-ready 404.
// Callers treat it as transient and keep polling.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gateway returned status %d: %s", e.Code, e.Body)
}

// PollTimeoutError means the attempt budget ran out without a result. The
// decryption may still land on-chain afterwards, so callers re-check the
// contract before writing the request off.
type PollTimeoutError struct {
	Attempts uint
	Elapsed  time.Duration
}

func (e *PollTimeoutError) Error() string {
	return fmt.Sprintf("no decryption result after %d attempts (%s)", e.Attempts, e.Elapsed)
}

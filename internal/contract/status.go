package verifiercontract

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/util"
)

// RequestStatus mirrors the contract's per-request bookkeeping. Processed
// flips exactly once, when the decryption callback lands.
type RequestStatus struct {
	Exists     bool
	Processed  bool
	RetryCount uint8
	Expired    bool
	Timestamp  *big.Int
}

func (c *OperatorContract) GetRequestStatus(ctx context.Context, requestID *big.Int) (RequestStatus, error) {
	callOpts := &bind.CallOpts{
		Context: ctx,
	}
	out, err := c.Contract.Read().GetRequestStatus(callOpts, requestID)
	if err != nil {
		return RequestStatus{}, err
	}
	return RequestStatus{
		Exists:     out.Exists,
		Processed:  out.Processed,
		RetryCount: out.RetryCount,
		Expired:    out.Expired,
		Timestamp:  out.Timestamp,
	}, nil
}

// GetActiveRequestID returns the subject's pending request id, zero when the
// subject has none in flight.
func (c *OperatorContract) GetActiveRequestID(ctx context.Context, subject common.Address) (*big.Int, error) {
	callOpts := &bind.CallOpts{
		Context: ctx,
	}
	return c.Contract.Read().GetActiveRequestId(callOpts, subject)
}

func (c *OperatorContract) IsVerified(ctx context.Context, subject common.Address) (bool, error) {
	callOpts := &bind.CallOpts{
		Context: ctx,
	}
	return c.Contract.Read().IsVerified(callOpts, subject)
}

func (c *OperatorContract) HasCredential(ctx context.Context, subject common.Address) (bool, error) {
	callOpts := &bind.CallOpts{
		Context: ctx,
	}
	return c.Contract.Read().HasCredential(callOpts, subject)
}

func (c *OperatorContract) TokenOf(ctx context.Context, subject common.Address) (*big.Int, error) {
	callOpts := &bind.CallOpts{
		Context: ctx,
	}
	return c.Contract.Read().TokenOf(callOpts, subject)
}

func (c *OperatorContract) TokenURI(ctx context.Context, tokenID *big.Int) (string, error) {
	callOpts := &bind.CallOpts{
		Context: ctx,
	}
	return c.Contract.Read().TokenURI(callOpts, tokenID)
}

func (c *OperatorContract) MaxRetries(ctx context.Context) (uint8, error) {
	callOpts := &bind.CallOpts{
		Context: ctx,
	}
	return c.Contract.Read().MaxRetries(callOpts)
}

func (c *OperatorContract) RequestTimeout(ctx context.Context) (*big.Int, error) {
	callOpts := &bind.CallOpts{
		Context: ctx,
	}
	return c.Contract.Read().RequestTimeout(callOpts)
}

// DecryptionHandle renders the request id as the 32-byte hex handle the
// decryption gateway keys its results by.
func (c *OperatorContract) DecryptionHandle(requestID *big.Int) string {
	return util.ToHexHandle(requestID)
}

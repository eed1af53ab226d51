package ctrl

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/errors"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/gateway"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/internal/credential"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/model"
)

const gatewayStatusCacheKey = "gateway-status"

// SubjectState reads the live on-chain view of an address. Reads go over the
// public endpoint fan-out, any address can be inspected.
func (c *Ctrl) SubjectState(ctx context.Context, subject common.Address) (model.SubjectState, error) {
	state := model.SubjectState{Subject: subject.Hex()}

	verified, err := c.contract.IsVerified(ctx, subject)
	if err != nil {
		return state, errors.Wrap(err, "read verification flag")
	}
	state.Verified = verified

	hasCredential, err := c.contract.HasCredential(ctx, subject)
	if err != nil {
		return state, errors.Wrap(err, "read credential flag")
	}
	state.HasCredential = hasCredential

	active, err := c.contract.GetActiveRequestID(ctx, subject)
	if err != nil {
		return state, errors.Wrap(err, "read active request")
	}
	if active != nil && active.Sign() > 0 {
		state.ActiveRequestID = active.String()
	}
	return state, nil
}

// GatewayState reports gateway health, cached so status endpoints do not turn
// into a probe amplifier.
func (c *Ctrl) GatewayState(ctx context.Context) (*gateway.Status, error) {
	value, found := c.svcCache.Get(gatewayStatusCacheKey)
	if found {
		status, ok := value.(*gateway.Status)
		if !ok {
			return nil, errors.New("cached object is not a gateway status")
		}
		return status, nil
	}

	status, err := c.gateway.Health(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "probe gateway")
	}
	c.svcCache.Set(gatewayStatusCacheKey, status, time.Duration(c.conf.Gateway.HealthCacheSecs)*time.Second)
	return status, nil
}

// SubjectCredential returns the credential held by subject with its decoded
// metadata, nil when none is held.
func (c *Ctrl) SubjectCredential(ctx context.Context, subject common.Address) (*credential.CredentialInfo, error) {
	return c.minter.Info(ctx, subject)
}

// Package credential issues and reads the soulbound credential that records a
// positive age verification on-chain.
package credential

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/errors"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/log"
	verifiercontract "github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/internal/contract"
)

// CredentialInfo pairs a token id with its decoded metadata.
type CredentialInfo struct {
	TokenID  string    `json:"tokenID"`
	Metadata *Metadata `json:"metadata"`
}

type Minter struct {
	contract *verifiercontract.OperatorContract
	logger   log.Logger
}

func NewMinter(contract *verifiercontract.OperatorContract, logger log.Logger) *Minter {
	return &Minter{
		contract: contract,
		logger:   logger,
	}
}

// EnsureCredential mints the credential unless the subject already holds one.
// The token id comes back either way, so callers can treat it as idempotent.
func (m *Minter) EnsureCredential(ctx context.Context, subject common.Address) (*big.Int, error) {
	has, err := m.contract.HasCredential(ctx, subject)
	if err != nil {
		return nil, errors.Wrap(err, "check credential")
	}
	if has {
		return m.contract.TokenOf(ctx, subject)
	}

	tokenID, err := m.contract.MintCredential(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "mint credential")
	}
	m.logger.WithFields(logrus.Fields{"subject": subject.Hex(), "tokenID": tokenID}).Info("Credential minted")
	return tokenID, nil
}

// Info returns the subject's credential with decoded metadata, nil when none
// is minted.
func (m *Minter) Info(ctx context.Context, subject common.Address) (*CredentialInfo, error) {
	has, err := m.contract.HasCredential(ctx, subject)
	if err != nil {
		return nil, errors.Wrap(err, "check credential")
	}
	if !has {
		return nil, nil
	}

	tokenID, err := m.contract.TokenOf(ctx, subject)
	if err != nil {
		return nil, errors.Wrap(err, "read token id")
	}
	uri, err := m.contract.TokenURI(ctx, tokenID)
	if err != nil {
		return nil, errors.Wrap(err, "read token uri")
	}
	meta, err := ParseTokenURI(uri)
	if err != nil {
		return nil, errors.Wrap(err, "parse token uri")
	}

	return &CredentialInfo{
		TokenID:  tokenID.String(),
		Metadata: meta,
	}, nil
}

package verifiercontract

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/errors"
)

// SubmitVerification sends the encrypted age and its input proof to the
// verifier contract and returns the decryption request id the contract
// allocated for it.
func (c *OperatorContract) SubmitVerification(ctx context.Context, encryptedAge [32]byte, inputProof []byte) (*big.Int, error) {
	txHash, err := c.Contract.Transact(ctx, nil, "submitAgeVerification", encryptedAge, inputProof)
	if err != nil {
		return nil, errors.Wrap(err, "call submitAgeVerification")
	}

	receipt, err := c.Contract.WaitForReceipt(ctx, txHash)
	if err != nil {
		return nil, errors.Wrap(err, "wait for receipt")
	}

	for _, vLog := range receipt.Logs {
		event, err := c.Contract.ParseVerificationRequested(*vLog)
		if err != nil {
			// Not a VerificationRequested event, skip
			continue
		}
		return event.RequestId, nil
	}

	// Some providers trim logs from receipts. The contract keeps the active
	// request per subject, so read it back instead of failing the submission.
	c.logger.WithFields(logrus.Fields{"tx": txHash.Hex()}).Warn("Receipt carried no VerificationRequested log, reading active request id back")
	requestID, err := c.GetActiveRequestID(ctx, common.HexToAddress(c.OperatorAddress))
	if err != nil {
		return nil, errors.Wrap(err, "read back active request id")
	}
	return requestID, nil
}

// RetryDecryption re-queues the decryption under a fresh request id. The old
// id stays on-chain for audit, the returned id supersedes it.
func (c *OperatorContract) RetryDecryption(ctx context.Context, requestID *big.Int) (*big.Int, uint8, error) {
	txHash, err := c.Contract.Transact(ctx, nil, "retryDecryption", requestID)
	if err != nil {
		return nil, 0, errors.Wrap(err, "call retryDecryption")
	}

	receipt, err := c.Contract.WaitForReceipt(ctx, txHash)
	if err != nil {
		return nil, 0, errors.Wrap(err, "wait for receipt")
	}

	for _, vLog := range receipt.Logs {
		event, err := c.Contract.ParseDecryptionRetried(*vLog)
		if err != nil {
			continue
		}
		return event.NewRequestId, event.RetryCount, nil
	}

	c.logger.WithFields(logrus.Fields{"tx": txHash.Hex(), "requestID": requestID}).Warn("Receipt carried no DecryptionRetried log, reading active request id back")
	newID, err := c.GetActiveRequestID(ctx, common.HexToAddress(c.OperatorAddress))
	if err != nil {
		return nil, 0, errors.Wrap(err, "read back active request id")
	}
	status, err := c.GetRequestStatus(ctx, newID)
	if err != nil {
		c.logger.WithFields(logrus.Fields{"requestID": newID, "error": err}).Warn("Failed to read retry count for replacement request")
		return newID, 0, nil
	}
	return newID, status.RetryCount, nil
}

// MintCredential mints the soulbound credential for the operator wallet and
// returns its token id.
func (c *OperatorContract) MintCredential(ctx context.Context) (*big.Int, error) {
	txHash, err := c.Contract.Transact(ctx, nil, "mintCredential")
	if err != nil {
		return nil, errors.Wrap(err, "call mintCredential")
	}

	receipt, err := c.Contract.WaitForReceipt(ctx, txHash)
	if err != nil {
		return nil, errors.Wrap(err, "wait for receipt")
	}

	for _, vLog := range receipt.Logs {
		event, err := c.Contract.ParseCredentialMinted(*vLog)
		if err != nil {
			continue
		}
		return event.TokenId, nil
	}

	return c.TokenOf(ctx, common.HexToAddress(c.OperatorAddress))
}

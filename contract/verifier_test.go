package contract

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
)

var (
	logSubject  = common.HexToAddress("0x1111111111111111111111111111111111111111")
	logContract = common.HexToAddress("0x8bA32A1C44B7f4D27f9ad4F797035Ad20dD6Df73")
)

func verifierEvent(t *testing.T, name string) abi.Event {
	t.Helper()
	parsed, err := AgeVerifierMetaData.GetAbi()
	require.NoError(t, err)
	event, ok := parsed.Events[name]
	require.True(t, ok, "event %s not in ABI", name)
	return event
}

func newFilterer(t *testing.T) *AgeVerifierFilterer {
	t.Helper()
	filterer, err := NewAgeVerifierFilterer(logContract, nil)
	require.NoError(t, err)
	return filterer
}

func TestParseVerificationRequestedLog(t *testing.T) {
	t.Parallel()

	event := verifierEvent(t, "VerificationRequested")
	log := types.Log{
		Address: logContract,
		Topics: []common.Hash{
			event.ID,
			common.BytesToHash(logSubject.Bytes()),
			common.BigToHash(big.NewInt(7)),
		},
	}

	parsed, err := newFilterer(t).ParseVerificationRequested(log)
	require.NoError(t, err)
	require.Equal(t, logSubject, parsed.Subject)
	require.Equal(t, int64(7), parsed.RequestId.Int64())
}

func TestParseDecryptionRetriedLog(t *testing.T) {
	t.Parallel()

	event := verifierEvent(t, "DecryptionRetried")
	data, err := event.Inputs.NonIndexed().Pack(big.NewInt(8), uint8(2))
	require.NoError(t, err)

	log := types.Log{
		Address: logContract,
		Topics: []common.Hash{
			event.ID,
			common.BytesToHash(logSubject.Bytes()),
			common.BigToHash(big.NewInt(7)),
		},
		Data: data,
	}

	parsed, err := newFilterer(t).ParseDecryptionRetried(log)
	require.NoError(t, err)
	require.Equal(t, logSubject, parsed.Subject)
	require.Equal(t, int64(7), parsed.OldRequestId.Int64())
	require.Equal(t, int64(8), parsed.NewRequestId.Int64())
	require.Equal(t, uint8(2), parsed.RetryCount)
}

func TestParseCredentialMintedLog(t *testing.T) {
	t.Parallel()

	event := verifierEvent(t, "CredentialMinted")
	data, err := event.Inputs.NonIndexed().Pack(big.NewInt(42))
	require.NoError(t, err)

	log := types.Log{
		Address: logContract,
		Topics: []common.Hash{
			event.ID,
			common.BytesToHash(logSubject.Bytes()),
		},
		Data: data,
	}

	parsed, err := newFilterer(t).ParseCredentialMinted(log)
	require.NoError(t, err)
	require.Equal(t, logSubject, parsed.Subject)
	require.Equal(t, int64(42), parsed.TokenId.Int64())
}

// Receipt scans identify the interesting log by parse failure on everything
// else, so a log from another event must come back as an error.
func TestParseRejectsForeignLog(t *testing.T) {
	t.Parallel()

	event := verifierEvent(t, "VerificationRequested")
	log := types.Log{
		Address: logContract,
		Topics: []common.Hash{
			event.ID,
			common.BytesToHash(logSubject.Bytes()),
			common.BigToHash(big.NewInt(7)),
		},
	}

	_, err := newFilterer(t).ParseCredentialMinted(log)
	require.Error(t, err)
}

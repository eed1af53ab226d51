package contract

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"code.cloudfoundry.org/clock"
	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	providers "github.com/openweb3/go-rpc-provider/provider_wrapper"

	client "github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/chain"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/config"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/errors"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/log"
)

// SpecifiedBlockError matches the lowercased node error returned while the RPC
// endpoint is still syncing. Submissions hitting it are retried without a gas bump.
var SpecifiedBlockError = "specified block header does not exist"

var defaultTimeout = 30 * time.Second
var defaultMaxNonGasRetries = 10
var defaultInterval = 10 * time.Second

// VerifierContract wraps the EthereumClient to interact with the age verifier
// contract deployed in an EVM based blockchain. Writes go through the wallet
// endpoint, reads fan out over the configured read endpoints.
type VerifierContract struct {
	*Contract
	*AgeVerifier
	readCaller  *AgeVerifierCaller
	maxGasPrice *big.Int
}

type RetryOption struct {
	Rounds   uint
	Interval time.Duration

	Timeout          time.Duration
	MaxNonGasRetries int
	MaxGasPrice      *big.Int
}

func NewVerifierContract(verifierAddress common.Address, conf *config.Networks, network string, gasPrice, maxGasPrice string, readOpt providers.Option, clk clock.Clock, logger log.Logger) (*VerifierContract, error) {
	var networkConfig client.BlockchainNetwork
	var err error
	if network == "hardhat" {
		networkConfig, err = client.NewHardhatNetwork(conf)
	} else {
		networkConfig, err = client.NewFhevmNetwork(conf)
	}
	if err != nil {
		return nil, err
	}

	ethereumClient, err := client.NewEthereumClient(networkConfig, gasPrice)
	if err != nil {
		return nil, err
	}

	reader := client.NewReadClient(networkConfig, readOpt, clk, logger)

	parsed, err := AgeVerifierMetaData.GetAbi()
	if err != nil {
		return nil, err
	}

	contract := &Contract{
		Client:  *ethereumClient,
		Reader:  reader,
		address: verifierAddress,
		abi:     *parsed,
		clk:     clk,
	}

	verifier, err := NewAgeVerifier(verifierAddress, ethereumClient.Client)
	if err != nil {
		return nil, err
	}

	readCaller, err := NewAgeVerifierCaller(verifierAddress, reader)
	if err != nil {
		return nil, err
	}

	var defaultMaxGasPrice *big.Int = nil
	if maxGasPrice != "" {
		price, ok := new(big.Int).SetString(maxGasPrice, 10)
		if !ok {
			return nil, fmt.Errorf("invalid max gas price: %s", maxGasPrice)
		}
		defaultMaxGasPrice = price
	}

	return &VerifierContract{contract, verifier, readCaller, defaultMaxGasPrice}, nil
}

// Read returns the caller bound to the read endpoints rather than the wallet's
// own provider.
func (s *VerifierContract) Read() *AgeVerifierCaller {
	return s.readCaller
}

func (s *VerifierContract) Transact(ctx context.Context, retryOpts *RetryOption, method string, params ...interface{}) (common.Hash, error) {
	// Set timeout and max non-gas retries from retryOpts if provided.
	if retryOpts == nil {
		retryOpts = &RetryOption{
			Interval:         defaultInterval,
			Timeout:          defaultTimeout,
			MaxNonGasRetries: defaultMaxNonGasRetries,
			MaxGasPrice:      s.maxGasPrice,
		}
	}

	opts, err := s.CreateTransactOpts()
	if err != nil {
		return common.Hash{}, err
	}

	nRetries := 0
	for {
		// Create a fresh context per iteration.
		ctx, cancel := context.WithTimeout(ctx, retryOpts.Timeout)
		defer cancel() // cancel this iteration's context

		opts.Context = ctx
		txHash, err := s.submit(ctx, opts, method, params...)
		if err == nil {
			return txHash, nil
		}

		errStr := strings.ToLower(err.Error())

		if strings.Contains(errStr, "mempool") || strings.Contains(errStr, "timeout") {
			if retryOpts.MaxGasPrice == nil {
				return common.Hash{}, fmt.Errorf("mempool full and no max gas price is set, failed to send transaction: %w", err)
			}
			if opts.GasPrice == nil {
				opts.GasPrice, err = s.GetGasPrice(ctx)
				if err != nil {
					return common.Hash{}, fmt.Errorf("failed to get gas price: %w", err)
				}
			}
			newGasPrice := new(big.Int).Mul(opts.GasPrice, big.NewInt(11))
			newGasPrice.Div(newGasPrice, big.NewInt(10))
			if newGasPrice.Cmp(retryOpts.MaxGasPrice) > 0 {
				opts.GasPrice = new(big.Int).Set(retryOpts.MaxGasPrice)
			} else {
				opts.GasPrice = newGasPrice
			}
		} else if strings.Contains(errStr, SpecifiedBlockError) {
			nRetries++
			if nRetries >= retryOpts.MaxNonGasRetries {
				return common.Hash{}, fmt.Errorf("failed to send transaction after %d retries: %w", nRetries, err)
			}
		} else {
			return common.Hash{}, fmt.Errorf("failed to send transaction: %w", err)
		}

		s.clk.Sleep(retryOpts.Interval)
	}
}

// submit dispatches one send over the submitter style probed at connection
// time. All three styles resolve to a transaction hash.
func (s *VerifierContract) submit(ctx context.Context, opts *bind.TransactOpts, method string, params ...interface{}) (common.Hash, error) {
	switch s.Client.Submitter {
	case client.SubmitterNodeManaged:
		return s.submitNodeManaged(ctx, opts, method, params...)
	case client.SubmitterRawKey:
		return s.submitRaw(ctx, opts, method, params...)
	default:
		tx, err := s.AgeVerifierTransactor.contract.Transact(opts, method, params...)
		if err != nil {
			return common.Hash{}, err
		}
		return tx.Hash(), nil
	}
}

// submitRaw builds, signs and sends the transaction by hand instead of going
// through the generated binding.
func (s *VerifierContract) submitRaw(ctx context.Context, opts *bind.TransactOpts, method string, params ...interface{}) (common.Hash, error) {
	input, err := s.abi.Pack(method, params...)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "pack calldata")
	}

	nonce, err := s.Client.Client.PendingNonceAt(ctx, opts.From)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "get pending nonce")
	}

	gasPrice := opts.GasPrice
	if gasPrice == nil {
		gasPrice, err = s.Client.Client.SuggestGasPrice(ctx)
		if err != nil {
			return common.Hash{}, errors.Wrap(err, "suggest gas price")
		}
	}

	value := opts.Value
	if value == nil {
		value = new(big.Int)
	}

	gasLimit, err := s.Client.Client.EstimateGas(ctx, ethereum.CallMsg{
		From:     opts.From,
		To:       &s.address,
		GasPrice: gasPrice,
		Value:    value,
		Data:     input,
	})
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "estimate gas")
	}

	rawTx := types.NewTransaction(nonce, s.address, value, gasLimit, gasPrice, input)
	signedTx, err := opts.Signer(opts.From, rawTx)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "sign transaction")
	}

	if err := s.Client.Client.SendTransaction(ctx, signedTx); err != nil {
		return common.Hash{}, err
	}
	return signedTx.Hash(), nil
}

// submitNodeManaged delegates signing to the node's unlocked account via
// eth_sendTransaction. Only the transaction hash comes back.
func (s *VerifierContract) submitNodeManaged(ctx context.Context, opts *bind.TransactOpts, method string, params ...interface{}) (common.Hash, error) {
	input, err := s.abi.Pack(method, params...)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "pack calldata")
	}

	arg := map[string]interface{}{
		"from": opts.From,
		"to":   s.address,
		"data": hexutil.Bytes(input),
	}
	if opts.GasPrice != nil {
		arg["gasPrice"] = (*hexutil.Big)(opts.GasPrice)
	}
	if opts.Value != nil {
		arg["value"] = (*hexutil.Big)(opts.Value)
	}

	var txHash common.Hash
	if err := s.Client.RPC.CallContext(ctx, &txHash, "eth_sendTransaction", arg); err != nil {
		return common.Hash{}, errors.Wrap(err, "send transaction via node account")
	}
	return txHash, nil
}

type Contract struct {
	Client  client.EthereumClient
	Reader  *client.ReadClient
	address common.Address
	abi     abi.ABI
	clk     clock.Clock
}

func (c *Contract) CreateTransactOpts() (*bind.TransactOpts, error) {
	wallets, err := c.Client.Network.Wallets()
	if err != nil {
		return nil, err
	}
	opt, err := c.Client.TransactionOpts(wallets.Default(), c.address, nil, nil)
	if err != nil {
		return nil, err
	}
	return opt, nil
}

func (c *Contract) GetGasPrice(ctx context.Context) (*big.Int, error) {
	gasPrice, err := c.Client.Client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, err
	}

	return gasPrice, nil
}

func (c *Contract) WaitForReceipt(ctx context.Context, txHash common.Hash, opts ...RetryOption) (*types.Receipt, error) {
	if len(opts) > 0 {
		return c.Reader.WaitForReceipt(ctx, txHash, client.ReceiptOption{
			Rounds:   opts[0].Rounds,
			Interval: opts[0].Interval,
		})
	}
	return c.Reader.WaitForReceipt(ctx, txHash)
}

func (c *Contract) Close() {
	c.Client.Close()
	c.Reader.Close()
}

package chain

import (
	"context"
	"math/big"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	providers "github.com/openweb3/go-rpc-provider/provider_wrapper"
	"github.com/sirupsen/logrus"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/errors"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/log"
)

var (
	defaultReadTimeout     = 10 * time.Second
	defaultReceiptRounds   = uint(10)
	defaultReceiptInterval = 10 * time.Second
)

// ReceiptOption bounds receipt polling: Rounds attempts at a fixed Interval.
type ReceiptOption struct {
	Rounds   uint
	Interval time.Duration
}

// ReadClient fans read calls out over an ordered list of public endpoints.
// Each call walks the list until one endpoint answers; only when every
// endpoint fails does the call surface an AllEndpointsError. It satisfies
// bind.ContractCaller so generated bindings can read through it.
type ReadClient struct {
	endpoints []string
	passes    int
	interval  time.Duration
	timeout   time.Duration
	clk       clock.Clock
	logger    log.Logger

	mu      sync.Mutex
	clients map[string]*ethclient.Client
}

func NewReadClient(network BlockchainNetwork, opt providers.Option, clk clock.Clock, logger log.Logger) *ReadClient {
	passes := opt.RetryCount
	if passes <= 0 {
		passes = 1
	}
	timeout := opt.RequestTimeout
	if timeout <= 0 {
		timeout = defaultReadTimeout
	}
	return &ReadClient{
		endpoints: network.ReadURLs(),
		passes:    passes,
		interval:  opt.RetryInterval,
		timeout:   timeout,
		clk:       clk,
		logger:    logger,
		clients:   make(map[string]*ethclient.Client),
	}
}

func (r *ReadClient) client(endpoint string) (*ethclient.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if client, ok := r.clients[endpoint]; ok {
		return client, nil
	}
	client, err := ethclient.Dial(endpoint)
	if err != nil {
		return nil, err
	}
	r.clients[endpoint] = client
	return client, nil
}

// forEach runs fn against each endpoint in order and returns on the first
// success. Endpoint failures are collected, never surfaced individually.
func (r *ReadClient) forEach(ctx context.Context, op string, fn func(ctx context.Context, client *ethclient.Client) error) error {
	var endpointErrs []EndpointError
	for pass := 0; pass < r.passes; pass++ {
		if pass > 0 && r.interval > 0 {
			timer := r.clk.NewTimer(r.interval)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C():
			}
		}
		for _, endpoint := range r.endpoints {
			if err := ctx.Err(); err != nil {
				return err
			}
			client, err := r.client(endpoint)
			if err != nil {
				endpointErrs = append(endpointErrs, EndpointError{Endpoint: endpoint, Err: err})
				continue
			}
			callCtx, cancel := context.WithTimeout(ctx, r.timeout)
			err = fn(callCtx, client)
			cancel()
			if err == nil {
				return nil
			}
			r.logger.WithFields(logrus.Fields{
				"op":       op,
				"endpoint": endpoint,
				"error":    err,
			}).Debug("read endpoint failed, trying next")
			endpointErrs = append(endpointErrs, EndpointError{Endpoint: endpoint, Err: err})
		}
	}
	return &AllEndpointsError{Op: op, Errors: endpointErrs}
}

func (r *ReadClient) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	var out []byte
	err := r.forEach(ctx, "eth_call", func(ctx context.Context, client *ethclient.Client) error {
		result, err := client.CallContract(ctx, msg, blockNumber)
		if err != nil {
			return err
		}
		out = result
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReadClient) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	var out []byte
	err := r.forEach(ctx, "eth_getCode", func(ctx context.Context, client *ethclient.Client) error {
		result, err := client.CodeAt(ctx, account, blockNumber)
		if err != nil {
			return err
		}
		out = result
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReadClient) BlockNumber(ctx context.Context) (uint64, error) {
	var out uint64
	err := r.forEach(ctx, "eth_blockNumber", func(ctx context.Context, client *ethclient.Client) error {
		result, err := client.BlockNumber(ctx)
		if err != nil {
			return err
		}
		out = result
		return nil
	})
	if err != nil {
		return 0, err
	}
	return out, nil
}

// liveEndpoint probes the endpoint list with eth_blockNumber and returns the
// first healthy endpoint, used to pin receipt polling to a node that answers.
func (r *ReadClient) liveEndpoint(ctx context.Context) (*ethclient.Client, string, error) {
	var endpointErrs []EndpointError
	for _, endpoint := range r.endpoints {
		client, err := r.client(endpoint)
		if err != nil {
			endpointErrs = append(endpointErrs, EndpointError{Endpoint: endpoint, Err: err})
			continue
		}
		callCtx, cancel := context.WithTimeout(ctx, r.timeout)
		_, err = client.BlockNumber(callCtx)
		cancel()
		if err == nil {
			return client, endpoint, nil
		}
		endpointErrs = append(endpointErrs, EndpointError{Endpoint: endpoint, Err: err})
	}
	return nil, "", &AllEndpointsError{Op: "eth_blockNumber", Errors: endpointErrs}
}

// WaitForReceipt polls a live read endpoint for the transaction receipt at a
// fixed interval. The wallet provider's own confirmation primitive is not
// used because it can hang indefinitely on degraded connections. Exceeding
// the attempt budget yields ConfirmationTimeoutError; whether the write
// landed stays ambiguous and callers must re-check state.
func (r *ReadClient) WaitForReceipt(ctx context.Context, txHash common.Hash, opts ...ReceiptOption) (*types.Receipt, error) {
	var opt ReceiptOption
	if len(opts) > 0 {
		opt = opts[0]
	}
	if opt.Rounds == 0 {
		opt.Rounds = defaultReceiptRounds
	}
	if opt.Interval <= 0 {
		opt.Interval = defaultReceiptInterval
	}

	client, endpoint, err := r.liveEndpoint(ctx)
	if err != nil {
		return nil, err
	}

	start := r.clk.Now()
	for attempt := uint(1); attempt <= opt.Rounds; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, r.timeout)
		receipt, err := client.TransactionReceipt(callCtx, txHash)
		cancel()
		if err == nil {
			return checkReceiptStatus(receipt)
		}
		if !errors.Is(err, ethereum.NotFound) {
			r.logger.WithFields(logrus.Fields{
				"endpoint": endpoint,
				"tx":       txHash.Hex(),
				"error":    err,
			}).Debug("receipt query failed")
		}
		if attempt == opt.Rounds {
			break
		}
		timer := r.clk.NewTimer(opt.Interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C():
		}
	}
	return nil, &ConfirmationTimeoutError{TxHash: txHash, Attempts: opt.Rounds, Elapsed: r.clk.Since(start)}
}

func checkReceiptStatus(receipt *types.Receipt) (*types.Receipt, error) {
	switch receipt.Status {
	case types.ReceiptStatusSuccessful:
		return receipt, nil
	case types.ReceiptStatusFailed:
		return receipt, errors.New("transaction execution failed")
	default:
		return receipt, errors.Errorf("unknown receipt status %d", receipt.Status)
	}
}

func (r *ReadClient) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, client := range r.clients {
		client.Close()
	}
	r.clients = make(map[string]*ethclient.Client)
}

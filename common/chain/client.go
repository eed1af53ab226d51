package chain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/errors"
)

// SubmitterKind is the transaction submission style for a connection,
// determined once by probing at connection time rather than by shape
// checking on every write.
type SubmitterKind int

const (
	// SubmitterBoundContract signs locally and submits through the bound
	// contract abstraction.
	SubmitterBoundContract SubmitterKind = iota
	// SubmitterRawKey signs locally but encodes calldata by hand and submits
	// the raw transaction, for nodes that mishandle the contract abstraction.
	SubmitterRawKey
	// SubmitterNodeManaged delegates signing to the node via
	// eth_sendTransaction with an explicit sender account.
	SubmitterNodeManaged
)

func (k SubmitterKind) String() string {
	switch k {
	case SubmitterBoundContract:
		return "contract"
	case SubmitterRawKey:
		return "raw"
	case SubmitterNodeManaged:
		return "node"
	default:
		return "unknown"
	}
}

type EthereumClient struct {
	Client    *ethclient.Client
	RPC       *rpc.Client
	Network   BlockchainNetwork
	Submitter SubmitterKind

	nodeAccounts []common.Address
	gasPrice     *big.Int
}

func NewEthereumClient(network BlockchainNetwork, gasPrice string) (*EthereumClient, error) {
	rpcClient, err := rpc.Dial(network.URL())
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", network.URL())
	}

	var price *big.Int
	if gasPrice != "" {
		parsed, ok := new(big.Int).SetString(gasPrice, 10)
		if !ok {
			rpcClient.Close()
			return nil, errors.Errorf("invalid gas price: %s", gasPrice)
		}
		price = parsed
	}

	client := &EthereumClient{
		Client:   ethclient.NewClient(rpcClient),
		RPC:      rpcClient,
		Network:  network,
		gasPrice: price,
	}
	if err := client.probeSubmitter(); err != nil {
		rpcClient.Close()
		return nil, err
	}
	return client, nil
}

// probeSubmitter resolves the submission style once. An explicit config
// override wins; otherwise a configured signing key selects the bound
// contract path and a keyless config falls back to node-managed accounts.
func (c *EthereumClient) probeSubmitter() error {
	conf := c.Network.Config()
	switch conf.Submitter {
	case "contract":
		c.Submitter = SubmitterBoundContract
		return c.requireWallet()
	case "raw":
		c.Submitter = SubmitterRawKey
		return c.requireWallet()
	case "node":
		c.Submitter = SubmitterNodeManaged
		return c.fetchNodeAccounts()
	case "":
	default:
		return errors.Errorf("unknown submitter style: %s", conf.Submitter)
	}

	wallets, err := c.Network.Wallets()
	if err != nil {
		return err
	}
	if wallets.Default() != nil {
		c.Submitter = SubmitterBoundContract
		return nil
	}

	c.Submitter = SubmitterNodeManaged
	return c.fetchNodeAccounts()
}

func (c *EthereumClient) requireWallet() error {
	wallets, err := c.Network.Wallets()
	if err != nil {
		return err
	}
	if wallets.Default() == nil {
		return errors.Errorf("submitter style %q requires a configured private key", c.Submitter)
	}
	return nil
}

func (c *EthereumClient) fetchNodeAccounts() error {
	var accounts []common.Address
	if err := c.RPC.Call(&accounts, "eth_accounts"); err != nil {
		return errors.Wrap(err, "list node accounts")
	}
	if len(accounts) == 0 {
		return errors.New("no signing key configured and node exposes no accounts")
	}
	c.nodeAccounts = accounts
	return nil
}

// From returns the sender address for writes: the default wallet for locally
// signed styles, the first node account otherwise.
func (c *EthereumClient) From() (common.Address, error) {
	if c.Submitter == SubmitterNodeManaged {
		return c.nodeAccounts[0], nil
	}
	wallets, err := c.Network.Wallets()
	if err != nil {
		return common.Address{}, err
	}
	wallet := wallets.Default()
	if wallet == nil {
		return common.Address{}, errors.New("no wallet configured")
	}
	return wallet.Address(), nil
}

func (c *EthereumClient) TransactionOpts(wallet *EthereumWallet, to common.Address, value *big.Int, data []byte) (*bind.TransactOpts, error) {
	if c.Submitter == SubmitterNodeManaged {
		from, err := c.From()
		if err != nil {
			return nil, err
		}
		opts := &bind.TransactOpts{From: from, Value: value}
		if c.gasPrice != nil {
			opts.GasPrice = new(big.Int).Set(c.gasPrice)
		}
		return opts, nil
	}
	if wallet == nil {
		return nil, errors.New("no wallet configured")
	}
	opts, err := bind.NewKeyedTransactorWithChainID(wallet.PrivateKey(), c.Network.ChainID())
	if err != nil {
		return nil, errors.Wrap(err, "create transactor")
	}
	opts.Value = value
	if c.gasPrice != nil {
		opts.GasPrice = new(big.Int).Set(c.gasPrice)
	}
	return opts, nil
}

func (c *EthereumClient) Close() {
	c.Client.Close()
}

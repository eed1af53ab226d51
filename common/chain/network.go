package chain

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/config"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/errors"
)

// BlockchainNetwork describes one configured EVM network.
type BlockchainNetwork interface {
	Name() string
	ChainID() *big.Int
	URL() string
	// ReadURLs is the ordered endpoint list used for read calls and receipt
	// polling. Falls back to the wallet URL when none are configured.
	ReadURLs() []string
	Wallets() (EthereumWallets, error)
	Config() *config.NetworkConf
}

type EthereumWallets interface {
	Default() *EthereumWallet
	All() []*EthereumWallet
}

type EthereumWallet struct {
	privateKey *ecdsa.PrivateKey
	address    common.Address
}

func (w *EthereumWallet) Address() common.Address {
	return w.address
}

func (w *EthereumWallet) PrivateKey() *ecdsa.PrivateKey {
	return w.privateKey
}

type walletSet struct {
	wallets []*EthereumWallet
}

func (s *walletSet) Default() *EthereumWallet {
	if len(s.wallets) == 0 {
		return nil
	}
	return s.wallets[0]
}

func (s *walletSet) All() []*EthereumWallet {
	return s.wallets
}

type ethereumNetwork struct {
	name string
	conf *config.NetworkConf
}

// NewFhevmNetwork selects the "fhevm" entry from the networks config.
func NewFhevmNetwork(conf *config.Networks) (BlockchainNetwork, error) {
	return newNetwork("fhevm", conf)
}

// NewHardhatNetwork selects the "hardhat" entry, used for local development.
func NewHardhatNetwork(conf *config.Networks) (BlockchainNetwork, error) {
	return newNetwork("hardhat", conf)
}

func newNetwork(name string, conf *config.Networks) (BlockchainNetwork, error) {
	if conf == nil {
		return nil, errors.New("networks config is nil")
	}
	networkConf, ok := (*conf)[name]
	if !ok || networkConf == nil {
		return nil, errors.Errorf("network %q not configured", name)
	}
	if networkConf.URL == "" {
		return nil, errors.Errorf("network %q has no url", name)
	}
	if networkConf.PrivateKeyStore == nil {
		networkConf.PrivateKeyStore = config.NewPrivateKeyStore(networkConf)
	}
	return &ethereumNetwork{name: name, conf: networkConf}, nil
}

func (n *ethereumNetwork) Name() string {
	return n.name
}

func (n *ethereumNetwork) ChainID() *big.Int {
	return big.NewInt(n.conf.ChainID)
}

func (n *ethereumNetwork) URL() string {
	return n.conf.URL
}

func (n *ethereumNetwork) ReadURLs() []string {
	if len(n.conf.ReadURLs) > 0 {
		return n.conf.ReadURLs
	}
	return []string{n.conf.URL}
}

func (n *ethereumNetwork) Wallets() (EthereumWallets, error) {
	keys := n.conf.PrivateKeyStore.Fetch()
	wallets := make([]*EthereumWallet, 0, len(keys))
	for _, key := range keys {
		privateKey, err := crypto.HexToECDSA(key)
		if err != nil {
			return nil, errors.Wrap(err, "parse private key")
		}
		wallets = append(wallets, &EthereumWallet{
			privateKey: privateKey,
			address:    crypto.PubkeyToAddress(privateKey.PublicKey),
		})
	}
	return &walletSet{wallets: wallets}, nil
}

func (n *ethereumNetwork) Config() *config.NetworkConf {
	return n.conf
}

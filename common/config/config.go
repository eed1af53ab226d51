package config

import (
	"os"
	"strings"
)

// Networks maps a network name ("fhevm", "hardhat") to its connection config.
type Networks map[string]*NetworkConf

type NetworkConf struct {
	URL      string `mapstructure:"url" yaml:"url"`
	ChainID  int64  `mapstructure:"chainId" yaml:"chainId"`
	// ReadURLs are independent public endpoints used for read calls and
	// receipt polling. Reads never go through the wallet's own provider.
	ReadURLs []string `mapstructure:"readUrls" yaml:"readUrls"`
	// Submitter optionally forces a submission style: "contract", "raw" or
	// "node". Empty means probe at connection time.
	Submitter       string           `mapstructure:"submitter" yaml:"submitter"`
	PrivateKeys     []string         `mapstructure:"privateKeys" yaml:"privateKeys"`
	PrivateKeyStore *PrivateKeyStore `yaml:"-"`
}

// PrivateKeyStore resolves signing keys for a network. Keys come from the
// yaml config, with an environment override so deployments can keep keys out
// of config files.
type PrivateKeyStore struct {
	network *NetworkConf
}

func NewPrivateKeyStore(network *NetworkConf) *PrivateKeyStore {
	return &PrivateKeyStore{network: network}
}

// Fetch returns the configured private keys, hex encoded without the 0x
// prefix. The WALLET_PRIVATE_KEY environment variable, when set, replaces
// the configured list.
func (s *PrivateKeyStore) Fetch() []string {
	if env := os.Getenv("WALLET_PRIVATE_KEY"); env != "" {
		return []string{strings.TrimPrefix(env, "0x")}
	}
	keys := make([]string, 0, len(s.network.PrivateKeys))
	for _, key := range s.network.PrivateKeys {
		keys = append(keys, strings.TrimPrefix(key, "0x"))
	}
	return keys
}

type LoggerConfig struct {
	Format        string `yaml:"format"`
	Level         string `yaml:"level"`
	Path          string `yaml:"path"`
	RotationCount uint   `yaml:"rotationCount"`
}

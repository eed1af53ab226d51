package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// GetConfig loads once per process, so everything rides on a single test.
func TestGetConfigAppliesOverridesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `contractAddress: "0x00000000000000000000000000000000000000cc"
maxDecryptionRetries: 5
retryCooldownSecs: 60
gateway:
  url: "http://gateway.test:7077"
encryption:
  provider: "relayer"
  relayerUrl: "http://relayer.test:8545"
monitor:
  enable: true
networks:
  fhevm:
    url: "http://fhevm.test:8545"
    chainId: 8009
    readUrls:
      - "http://read-a.test:8545"
      - "http://read-b.test:8545"
    privateKeys:
      - "0x59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("WALLET_PRIVATE_KEY", "")

	conf := GetConfig()

	assert.Equal(t, "0x00000000000000000000000000000000000000cc", conf.ContractAddress)
	assert.EqualValues(t, 5, conf.MaxDecryptionRetries)
	assert.EqualValues(t, 60, conf.RetryCooldownSecs)
	assert.Equal(t, "http://gateway.test:7077", conf.Gateway.URL)
	assert.Equal(t, "relayer", conf.Encryption.Provider)
	assert.Equal(t, "http://relayer.test:8545", conf.Encryption.RelayerURL)
	assert.True(t, conf.Monitor.Enable)

	// Fields the file does not mention keep their defaults.
	assert.EqualValues(t, 5, conf.Gateway.PollIntervalSecs)
	assert.EqualValues(t, 60, conf.Gateway.PollMaxAttempts)
	assert.EqualValues(t, 1800, conf.RequestTimeoutSecs)
	assert.Equal(t, 4, conf.VerificationWorkerCount)
	assert.Equal(t, "age-verifier-event:3081", conf.Monitor.EventAddress)

	network := conf.Networks["fhevm"]
	require.NotNil(t, network)
	assert.EqualValues(t, 8009, network.ChainID)
	assert.Equal(t, []string{"http://read-a.test:8545", "http://read-b.test:8545"}, network.ReadURLs)

	// Key stores are wired during load and strip the 0x prefix on fetch.
	require.NotNil(t, network.PrivateKeyStore)
	keys := network.PrivateKeyStore.Fetch()
	require.Len(t, keys, 1)
	assert.Equal(t, "59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d", keys[0])
}

package config

import (
	"log"
	"os"
	"sync"

	providers "github.com/openweb3/go-rpc-provider/provider_wrapper"
	"gopkg.in/yaml.v2"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/config"
)

type Gateway struct {
	URL              string `yaml:"url"`
	PollIntervalSecs int64  `yaml:"pollIntervalSecs"`
	PollMaxAttempts  uint   `yaml:"pollMaxAttempts"`
	HealthCacheSecs  int64  `yaml:"healthCacheSecs"`
}

type Encryption struct {
	// Provider selects how plaintext ages are turned into ciphertext handles:
	// "mock" for local development, "relayer" for a real fhEVM relayer.
	Provider   string `yaml:"provider"`
	RelayerURL string `yaml:"relayerUrl"`
}

type Config struct {
	AllowOrigins    []string `yaml:"allowOrigins"`
	ContractAddress string   `yaml:"contractAddress"`
	Database        struct {
		Verification string `yaml:"verification"`
	} `yaml:"database"`
	Networks       config.Networks     `mapstructure:"networks" yaml:"networks"`
	ProviderOption providers.Option    `mapstructure:"providerOption" yaml:"providerOption"`
	Logger         config.LoggerConfig `yaml:"logger"`
	Gateway        Gateway             `yaml:"gateway"`
	Encryption     Encryption          `yaml:"encryption"`
	GasPrice       string              `yaml:"gasPrice"`
	MaxGasPrice    string              `yaml:"maxGasPrice"`

	MaxDecryptionRetries      uint  `yaml:"maxDecryptionRetries"`
	RequestTimeoutSecs        int64 `yaml:"requestTimeoutSecs"`
	RetryCooldownSecs         int64 `yaml:"retryCooldownSecs"`
	DecryptionBudgetSecs      int64 `yaml:"decryptionBudgetSecs"`
	SubmitRetryAttempts       uint  `yaml:"submitRetryAttempts"`
	SubmitRetryBaseDelaySecs  int64 `yaml:"submitRetryBaseDelaySecs"`
	CallbackPollIntervalSecs  int64 `yaml:"callbackPollIntervalSecs"`
	CallbackBudgetSecs        int64 `yaml:"callbackBudgetSecs"`
	VerificationWorkerCount   int   `yaml:"verificationWorkerCount"`
	JobPollIntervalSecs       int64 `yaml:"jobPollIntervalSecs"`
	MaxJobQueueSize           uint  `yaml:"maxJobQueueSize"`
	StaleJobSweepIntervalSecs int64 `yaml:"staleJobSweepIntervalSecs"`

	Monitor struct {
		Enable       bool   `yaml:"enable"`
		EventAddress string `yaml:"eventAddress"`
	} `yaml:"monitor"`
}

var (
	instance *Config
	once     sync.Once
)

func loadConfig(config *Config) error {
	configPath := "/etc/config/config.yaml"
	if envPath := os.Getenv("CONFIG_FILE"); envPath != "" {
		configPath = envPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	return yaml.UnmarshalStrict(data, config)
}

func GetConfig() *Config {
	once.Do(func() {
		instance = &Config{
			AllowOrigins:    []string{"*"},
			ContractAddress: "0x8bA32A1C44B7f4D27f9ad4F797035Ad20dD6Df73",
			Database: struct {
				Verification string `yaml:"verification"`
			}{
				Verification: "root:123456@tcp(age-verifier-db:3306)/verification?parseTime=true",
			},
			Gateway: Gateway{
				URL:              "http://127.0.0.1:7077",
				PollIntervalSecs: 5,
				PollMaxAttempts:  60,
				HealthCacheSecs:  30,
			},
			Encryption: Encryption{
				Provider:   "mock",
				RelayerURL: "",
			},
			Logger: config.LoggerConfig{
				Format:        "text",
				Level:         "info",
				Path:          "",
				RotationCount: 50,
			},
			GasPrice:    "",
			MaxGasPrice: "1000000000000",

			MaxDecryptionRetries:      3,
			RequestTimeoutSecs:        1800,
			RetryCooldownSecs:         300,
			DecryptionBudgetSecs:      120,
			SubmitRetryAttempts:       3,
			SubmitRetryBaseDelaySecs:  5,
			CallbackPollIntervalSecs:  2,
			CallbackBudgetSecs:        120,
			VerificationWorkerCount:   4,
			JobPollIntervalSecs:       3,
			MaxJobQueueSize:           20,
			StaleJobSweepIntervalSecs: 600,

			Monitor: struct {
				Enable       bool   `yaml:"enable"`
				EventAddress string `yaml:"eventAddress"`
			}{
				Enable:       false,
				EventAddress: "age-verifier-event:3081",
			},
		}

		if err := loadConfig(instance); err != nil {
			log.Fatalf("Error loading configuration: %v", err)
		}

		for _, networkConf := range instance.Networks {
			networkConf.PrivateKeyStore = config.NewPrivateKeyStore(networkConf)
		}

		validateRetryWindows(instance)
	})

	return instance
}

// validateRetryWindows flags a cooldown that can never fire before the request
// itself expires. The service still starts; retries just degrade to fresh
// submissions.
func validateRetryWindows(conf *Config) {
	if conf.RetryCooldownSecs >= conf.RequestTimeoutSecs {
		log.Printf("Warning: retryCooldownSecs (%d) >= requestTimeoutSecs (%d), requests will expire before becoming retry-eligible", conf.RetryCooldownSecs, conf.RequestTimeoutSecs)
	}
}

package verification

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/errors"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/log"
)

type ClientType int

const (
	Mock ClientType = iota
	Relayer
)

// ParseClientType maps the configured encryption provider onto a client type.
func ParseClientType(provider string) (ClientType, error) {
	switch strings.ToLower(provider) {
	case "", "mock":
		return Mock, nil
	case "relayer":
		return Relayer, nil
	default:
		return Mock, errors.Errorf("unknown encryption provider %q", provider)
	}
}

const maxPlausibleAge = 120

// EncryptedInput is a ciphertext handle plus the input proof binding it to the
// contract and submitting wallet.
type EncryptedInput struct {
	Handle [32]byte
	Proof  []byte
}

// Encryptor turns a plaintext age into the ciphertext input the verifier
// contract accepts. The plaintext never goes further than the encryptor.
type Encryptor interface {
	EncryptAge(ctx context.Context, age uint8, contractAddress, userAddress string) (*EncryptedInput, error)
}

func NewEncryptor(clientType ClientType, relayerURL string, logger log.Logger) (Encryptor, error) {
	switch clientType {
	case Mock:
		return &MockEncryptor{}, nil
	case Relayer:
		if relayerURL == "" {
			return nil, errors.New("relayer encryptor requires a relayer url")
		}
		return NewRelayerEncryptor(relayerURL, logger), nil
	default:
		return nil, errors.New("unsupported client type")
	}
}

// validateAge rejects inputs no living person could have before anything gets
// encrypted or submitted. The value itself is kept out of the error.
func validateAge(age uint8) error {
	if age == 0 || age > maxPlausibleAge {
		return errors.New("age outside the accepted range")
	}
	return nil
}

// MockEncryptor derives a deterministic handle from its inputs. It exists for
// development against the hardhat mock, no coprocessor ever sees its output.
type MockEncryptor struct{}

func (e *MockEncryptor) EncryptAge(ctx context.Context, age uint8, contractAddress, userAddress string) (*EncryptedInput, error) {
	if err := validateAge(age); err != nil {
		return nil, err
	}

	var handle [32]byte
	sum := crypto.Keccak256([]byte(strings.ToLower(contractAddress)), []byte(strings.ToLower(userAddress)), []byte{age})
	copy(handle[:], sum)

	return &EncryptedInput{
		Handle: handle,
		Proof:  crypto.Keccak256(sum, []byte("input-proof")),
	}, nil
}

// RelayerEncryptor asks an fhEVM relayer to produce the ciphertext and proof.
type RelayerEncryptor struct {
	baseURL string
	client  *http.Client
	logger  log.Logger
}

func NewRelayerEncryptor(baseURL string, logger log.Logger) *RelayerEncryptor {
	return &RelayerEncryptor{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

type encryptRequest struct {
	Value           uint8  `json:"value"`
	ContractAddress string `json:"contractAddress"`
	UserAddress     string `json:"userAddress"`
}

type encryptResponse struct {
	Handle     string `json:"handle"`
	InputProof string `json:"inputProof"`
}

func (e *RelayerEncryptor) EncryptAge(ctx context.Context, age uint8, contractAddress, userAddress string) (*EncryptedInput, error) {
	if err := validateAge(age); err != nil {
		return nil, err
	}

	jsonData, err := json.Marshal(encryptRequest{
		Value:           age,
		ContractAddress: contractAddress,
		UserAddress:     userAddress,
	})
	if err != nil {
		return nil, errors.Wrap(err, "encoding json")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/encrypt", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, errors.Wrap(err, "creating request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "sending request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response body")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("relayer returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	ret := encryptResponse{}
	if err := json.Unmarshal(body, &ret); err != nil {
		return nil, errors.Wrap(err, "decoding relayer response")
	}

	handleBytes, err := hexutil.Decode(ret.Handle)
	if err != nil {
		return nil, errors.Wrap(err, "decoding ciphertext handle")
	}
	if len(handleBytes) != 32 {
		return nil, errors.Errorf("ciphertext handle must be 32 bytes, got %d", len(handleBytes))
	}
	proof, err := hexutil.Decode(ret.InputProof)
	if err != nil {
		return nil, errors.Wrap(err, "decoding input proof")
	}
	if len(proof) == 0 {
		return nil, errors.New("relayer returned an empty input proof")
	}

	input := EncryptedInput{Proof: proof}
	copy(input.Handle[:], handleBytes)
	return &input, nil
}

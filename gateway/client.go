package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/errors"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/log"
)

const defaultRequestTimeout = 30 * time.Second

// A well-formed uncompressed secp256k1 key is 65 bytes, 130 hex chars plus the
// 0x prefix.
const minPublicKeyLen = 130

// DecryptionPayload is the gateway's answer for a completed decryption. Value
// carries the cleartext as the gateway encodes it, callers decode it.
type DecryptionPayload struct {
	Handle     string   `json:"handle"`
	Value      string   `json:"value"`
	Signatures []string `json:"signatures"`
}

// Status is a point-in-time health reading of the gateway.
type Status struct {
	Healthy   bool
	PublicKey string
	CheckedAt time.Time
}

// Client talks to the decryption gateway over plain HTTP.
type Client struct {
	baseURL string
	client  *http.Client
	logger  log.Logger
}

func NewClient(baseURL string, logger log.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: defaultRequestTimeout,
		},
		logger: logger,
	}
}

type decryptionRequest struct {
	Handle          string `json:"handle"`
	ContractAddress string `json:"contractAddress"`
	ChainID         int64  `json:"chainId"`
}

// DecryptionStatus asks the gateway for the result keyed by handle. ErrNotReady
// comes back while the decryption is still queued.
func (c *Client) DecryptionStatus(ctx context.Context, handle, contractAddress string, chainID int64) (*DecryptionPayload, error) {
	jsonData, err := json.Marshal(decryptionRequest{
		Handle:          handle,
		ContractAddress: contractAddress,
		ChainID:         chainID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "encoding json")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/decrypt", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, errors.Wrap(err, "creating request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "sending request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response body")
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotReady
	case resp.StatusCode != http.StatusOK:
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	payload := DecryptionPayload{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrap(err, "decoding decryption payload")
	}
	return &payload, nil
}

// Health probes the gateway's public key endpoint. A reachable gateway serving
// a malformed key counts as unhealthy rather than as a probe failure.
func (c *Client) Health(ctx context.Context) (*Status, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/public-key", nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating request")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "sending request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response body")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	key := strings.Trim(strings.TrimSpace(string(body)), "\"")
	status := &Status{
		PublicKey: key,
		CheckedAt: time.Now(),
	}
	if !strings.HasPrefix(key, "0x") || len(key) < minPublicKeyLen {
		c.logger.Warnf("Gateway served malformed public key (%d chars)", len(key))
		return status, nil
	}
	status.Healthy = true
	return status, nil
}

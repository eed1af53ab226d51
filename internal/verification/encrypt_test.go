package verification

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	encryptContract = "0x00000000000000000000000000000000000000CC"
	encryptUser     = "0x00000000000000000000000000000000000000AA"
)

func TestParseClientType(t *testing.T) {
	t.Parallel()

	for _, provider := range []string{"", "mock", "Mock"} {
		clientType, err := ParseClientType(provider)
		require.NoError(t, err)
		assert.Equal(t, Mock, clientType)
	}

	clientType, err := ParseClientType("relayer")
	require.NoError(t, err)
	assert.Equal(t, Relayer, clientType)

	_, err = ParseClientType("tee")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown encryption provider "tee"`)
}

func TestNewEncryptorRelayerNeedsURL(t *testing.T) {
	t.Parallel()

	_, err := NewEncryptor(Relayer, "", testLogger(t))
	require.Error(t, err)

	encryptor, err := NewEncryptor(Relayer, "http://relayer:8545", testLogger(t))
	require.NoError(t, err)
	require.IsType(t, &RelayerEncryptor{}, encryptor)
}

func TestMockEncryptAgeIsDeterministic(t *testing.T) {
	t.Parallel()
	encryptor := &MockEncryptor{}

	first, err := encryptor.EncryptAge(context.Background(), 21, encryptContract, encryptUser)
	require.NoError(t, err)
	again, err := encryptor.EncryptAge(context.Background(), 21, encryptContract, encryptUser)
	require.NoError(t, err)
	require.Equal(t, first.Handle, again.Handle)
	require.Equal(t, first.Proof, again.Proof)

	// Address case must not change the ciphertext identity.
	lowered, err := encryptor.EncryptAge(context.Background(), 21, strings.ToLower(encryptContract), strings.ToLower(encryptUser))
	require.NoError(t, err)
	require.Equal(t, first.Handle, lowered.Handle)

	other, err := encryptor.EncryptAge(context.Background(), 22, encryptContract, encryptUser)
	require.NoError(t, err)
	require.NotEqual(t, first.Handle, other.Handle)
	require.NotEmpty(t, first.Proof)
}

func TestEncryptAgeRejectsImplausibleValues(t *testing.T) {
	t.Parallel()
	encryptor := &MockEncryptor{}

	for _, age := range []uint8{0, 121, 255} {
		_, err := encryptor.EncryptAge(context.Background(), age, encryptContract, encryptUser)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "age outside the accepted range")
		// The plaintext stays out of the error text.
		assert.NotContains(t, err.Error(), fmt.Sprintf("%d", age))
	}
}

func TestRelayerEncryptAge(t *testing.T) {
	t.Parallel()

	handle := "0x" + strings.Repeat("ab", 32)
	proof := "0x" + strings.Repeat("cd", 64)

	var mu sync.Mutex
	var gotBody encryptRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/encrypt", r.URL.Path)
		mu.Lock()
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		mu.Unlock()
		json.NewEncoder(w).Encode(encryptResponse{Handle: handle, InputProof: proof})
	}))
	defer srv.Close()

	input, err := NewRelayerEncryptor(srv.URL, testLogger(t)).EncryptAge(context.Background(), 30, encryptContract, encryptUser)
	require.NoError(t, err)
	assert.Equal(t, byte(0xab), input.Handle[0])
	assert.Equal(t, byte(0xab), input.Handle[31])
	assert.Len(t, input.Proof, 64)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, encryptRequest{Value: 30, ContractAddress: encryptContract, UserAddress: encryptUser}, gotBody)
}

func TestRelayerEncryptAgeRejectsBadHandles(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		handle  string
		proof   string
		wantErr string
	}{
		{name: "short handle", handle: "0xabcd", proof: "0x01", wantErr: "must be 32 bytes"},
		{name: "unparseable handle", handle: "zz", proof: "0x01", wantErr: "decoding ciphertext handle"},
		{name: "empty proof", handle: "0x" + strings.Repeat("ab", 32), proof: "0x", wantErr: "empty input proof"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(encryptResponse{Handle: tc.handle, InputProof: tc.proof})
			}))
			defer srv.Close()

			_, err := NewRelayerEncryptor(srv.URL, testLogger(t)).EncryptAge(context.Background(), 30, encryptContract, encryptUser)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestRelayerEncryptAgeSurfacesServerErrors(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "coprocessor queue full", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewRelayerEncryptor(srv.URL, testLogger(t)).EncryptAge(context.Background(), 30, encryptContract, encryptUser)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "relayer returned status 503")
	assert.Contains(t, err.Error(), "coprocessor queue full")
}

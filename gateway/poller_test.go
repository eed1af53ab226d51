package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/log"
)

const (
	testContract = "0x00000000000000000000000000000000000000cc"
	testHandle   = "0x00000000000000000000000000000000000000000000000000000000000000aa"
	testChainID  = int64(8009)
)

func testLogger(t *testing.T) log.Logger {
	t.Helper()
	logger, err := log.GetLogger(nil)
	require.NoError(t, err)
	return logger
}

type pollOutcome struct {
	result *PollResult
	err    error
}

func servePayload(w http.ResponseWriter, value string) {
	json.NewEncoder(w).Encode(DecryptionPayload{Handle: testHandle, Value: value})
}

func TestPollFirstAttemptSuccess(t *testing.T) {
	t.Parallel()
	clk := fakeclock.NewFakeClock(time.Now())

	var mu sync.Mutex
	requests := 0
	var gotBody decryptionRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests++
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		mu.Unlock()
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/decrypt", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		servePayload(w, "0x01")
	}))
	defer srv.Close()

	poller := NewPoller(NewClient(srv.URL, testLogger(t)), testContract, testChainID, clk, testLogger(t))
	result, err := poller.Poll(context.Background(), testHandle, &PollOptions{MaxAttempts: 3, Interval: 5 * time.Second})
	require.NoError(t, err)
	require.EqualValues(t, 1, result.Attempts)
	require.Equal(t, "0x01", result.Payload.Value)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 1, requests)
	require.Equal(t, decryptionRequest{Handle: testHandle, ContractAddress: testContract, ChainID: testChainID}, gotBody)
}

func TestPollExhaustsAttemptBudget(t *testing.T) {
	t.Parallel()
	clk := fakeclock.NewFakeClock(time.Now())

	var mu sync.Mutex
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests++
		mu.Unlock()
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	var progress []uint
	opts := &PollOptions{
		MaxAttempts: 3,
		Interval:    5 * time.Second,
		OnProgress:  func(attempt uint) { progress = append(progress, attempt) },
	}

	poller := NewPoller(NewClient(srv.URL, testLogger(t)), testContract, testChainID, clk, testLogger(t))
	res := make(chan pollOutcome, 1)
	go func() {
		result, err := poller.Poll(context.Background(), testHandle, opts)
		res <- pollOutcome{result, err}
	}()

	// The first attempt fires immediately, only the gaps wait.
	clk.WaitForWatcherAndIncrement(5 * time.Second)
	clk.WaitForWatcherAndIncrement(5 * time.Second)

	got := <-res
	require.Nil(t, got.result)

	var timeout *PollTimeoutError
	require.ErrorAs(t, got.err, &timeout)
	require.EqualValues(t, 3, timeout.Attempts)
	require.Equal(t, 10*time.Second, timeout.Elapsed)

	require.Equal(t, []uint{1, 2, 3}, progress)
	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 3, requests)
}

func TestPollRidesOutServerErrors(t *testing.T) {
	t.Parallel()
	clk := fakeclock.NewFakeClock(time.Now())

	var mu sync.Mutex
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests++
		n := requests
		mu.Unlock()
		if n < 3 {
			http.Error(w, "gateway overloaded", http.StatusInternalServerError)
			return
		}
		servePayload(w, "0x01")
	}))
	defer srv.Close()

	poller := NewPoller(NewClient(srv.URL, testLogger(t)), testContract, testChainID, clk, testLogger(t))
	res := make(chan pollOutcome, 1)
	go func() {
		result, err := poller.Poll(context.Background(), testHandle, &PollOptions{MaxAttempts: 5, Interval: 5 * time.Second})
		res <- pollOutcome{result, err}
	}()

	clk.WaitForWatcherAndIncrement(5 * time.Second)
	clk.WaitForWatcherAndIncrement(5 * time.Second)

	got := <-res
	require.NoError(t, got.err)
	require.EqualValues(t, 3, got.result.Attempts)
	require.Equal(t, "0x01", got.result.Payload.Value)
}

func TestPollResultReadyOnSecondAttempt(t *testing.T) {
	t.Parallel()
	clk := fakeclock.NewFakeClock(time.Now())

	var mu sync.Mutex
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests++
		n := requests
		mu.Unlock()
		if n == 1 {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		servePayload(w, "0x00")
	}))
	defer srv.Close()

	poller := NewPoller(NewClient(srv.URL, testLogger(t)), testContract, testChainID, clk, testLogger(t))
	res := make(chan pollOutcome, 1)
	go func() {
		result, err := poller.Poll(context.Background(), testHandle, &PollOptions{MaxAttempts: 3, Interval: 5 * time.Second})
		res <- pollOutcome{result, err}
	}()

	clk.WaitForWatcherAndIncrement(5 * time.Second)

	got := <-res
	require.NoError(t, got.err)
	require.EqualValues(t, 2, got.result.Attempts)
}

func TestPollPreCanceledContext(t *testing.T) {
	t.Parallel()
	clk := fakeclock.NewFakeClock(time.Now())

	var mu sync.Mutex
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests++
		mu.Unlock()
		servePayload(w, "0x01")
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	poller := NewPoller(NewClient(srv.URL, testLogger(t)), testContract, testChainID, clk, testLogger(t))
	_, err := poller.Poll(ctx, testHandle, &PollOptions{MaxAttempts: 3, Interval: 5 * time.Second})
	require.ErrorIs(t, err, context.Canceled)

	mu.Lock()
	defer mu.Unlock()
	require.Zero(t, requests)
}

func TestPollCanceledBetweenAttempts(t *testing.T) {
	t.Parallel()
	clk := fakeclock.NewFakeClock(time.Now())

	requested := make(chan struct{}, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case requested <- struct{}{}:
		default:
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	poller := NewPoller(NewClient(srv.URL, testLogger(t)), testContract, testChainID, clk, testLogger(t))
	res := make(chan pollOutcome, 1)
	go func() {
		result, err := poller.Poll(ctx, testHandle, &PollOptions{MaxAttempts: 10, Interval: 5 * time.Second})
		res <- pollOutcome{result, err}
	}()

	<-requested
	cancel()

	got := <-res
	require.ErrorIs(t, got.err, context.Canceled)
	require.Nil(t, got.result)
}

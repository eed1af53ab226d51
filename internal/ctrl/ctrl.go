package ctrl

import (
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/log"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/config"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/gateway"
	verifiercontract "github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/internal/contract"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/internal/credential"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/internal/db"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/internal/verification"
)

type Ctrl struct {
	mu       sync.Mutex
	db       *db.DB
	contract *verifiercontract.OperatorContract
	gateway  *gateway.Client
	svcCache *cache.Cache

	encryptor    verification.Encryptor
	orchestrator *verification.Orchestrator
	minter       *credential.Minter

	conf          *config.Config
	enableMonitor bool

	clk    clock.Clock
	logger log.Logger

	// subjectLocks serializes runs per chain subject, the ledger tracks a
	// single active request per address.
	subjectLocks map[string]*sync.Mutex
}

func New(
	conf *config.Config,
	database *db.DB,
	contract *verifiercontract.OperatorContract,
	encryptor verification.Encryptor,
	gatewayClient *gateway.Client,
	poller *gateway.Poller,
	svcCache *cache.Cache,
	clk clock.Clock,
	logger log.Logger,
) *Ctrl {
	tracker := verification.NewTracker(verification.RetryPolicy{
		MaxRetries:     uint8(conf.MaxDecryptionRetries),
		RequestTimeout: time.Duration(conf.RequestTimeoutSecs) * time.Second,
		RetryCooldown:  time.Duration(conf.RetryCooldownSecs) * time.Second,
	}, clk, logger)

	p := &Ctrl{
		db:            database,
		contract:      contract,
		gateway:       gatewayClient,
		svcCache:      svcCache,
		encryptor:     encryptor,
		minter:        credential.NewMinter(contract, logger),
		conf:          conf,
		enableMonitor: conf.Monitor.Enable,
		clk:           clk,
		logger:        logger,
		subjectLocks:  map[string]*sync.Mutex{},
	}
	p.orchestrator = verification.NewOrchestrator(contract, poller, tracker, p, clk, logger)

	return p
}

func (c *Ctrl) subjectLock(subject string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	lock, ok := c.subjectLocks[subject]
	if !ok {
		lock = &sync.Mutex{}
		c.subjectLocks[subject] = lock
	}
	return lock
}

func (c *Ctrl) incrementMonitorCounter(counter prometheus.Counter) {
	if c.enableMonitor {
		counter.Inc()
	}
}

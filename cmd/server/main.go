package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/log"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/config"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/gateway"
	verifiercontract "github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/internal/contract"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/internal/ctrl"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/internal/db"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/internal/handler"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/internal/services"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/internal/verification"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/monitor"
)

//go:generate swag fmt
//go:generate swag init --dir ./,../../ --output ../../doc

//	@title			Confidential Age Verifier Operator API
//	@version		0.1.0
//	@description	These APIs allow clients to submit confidential age verifications and read the resulting on-chain state. The host is localhost, config port with PORT=X, defaulting to 8080.
//	@host			localhost:8080
//	@BasePath		/v1
//	@in				header

func Main() {
	conf, logger, err := initializeBaseComponents()
	if err != nil {
		panic(err)
	}
	logger.Info("Starting age verifier operator")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	services, err := initializeServices(ctx, conf, logger)
	if err != nil {
		logger.Errorf("Failed to initialize services: %v", err)
		panic(err)
	}
	defer services.contract.Close()

	if err := runApplication(ctx, conf, services, logger); err != nil {
		panic(err)
	}
}

type ApplicationServices struct {
	db       *db.DB
	contract *verifiercontract.OperatorContract
	gateway  *gateway.Client
	ctrl     *ctrl.Ctrl
	worker   *services.Worker
	sweeper  *services.Sweeper
}

func initializeBaseComponents() (*config.Config, log.Logger, error) {
	config := config.GetConfig()
	logger, err := log.GetLogger(&config.Logger)
	return config, logger, err
}

func initializeServices(ctx context.Context, conf *config.Config, logger log.Logger) (*ApplicationServices, error) {
	database, err := db.NewDB(conf, logger)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(); err != nil {
		return nil, err
	}

	clk := clock.NewClock()

	contract, err := verifiercontract.NewOperatorContract(conf, clk, logger)
	if err != nil {
		return nil, err
	}

	// The verifier contract owns the retry policy. Configured values only
	// apply when the chain cannot be read at boot.
	syncRetryPolicy(ctx, conf, contract, logger)

	clientType, err := verification.ParseClientType(conf.Encryption.Provider)
	if err != nil {
		contract.Close()
		return nil, err
	}
	encryptor, err := verification.NewEncryptor(clientType, conf.Encryption.RelayerURL, logger)
	if err != nil {
		contract.Close()
		return nil, err
	}

	gatewayClient := gateway.NewClient(conf.Gateway.URL, logger)
	chainID := contract.Contract.Client.Network.ChainID().Int64()
	poller := gateway.NewPoller(gatewayClient, conf.ContractAddress, chainID, clk, logger)

	svcCache := cache.New(5*time.Minute, 10*time.Minute)

	ctrl := ctrl.New(conf, database, contract, encryptor, gatewayClient, poller, svcCache, clk, logger)

	return &ApplicationServices{
		db:       database,
		contract: contract,
		gateway:  gatewayClient,
		ctrl:     ctrl,
		worker:   services.NewWorker(conf, database, ctrl, clk, logger),
		sweeper:  services.NewSweeper(conf, database, clk, logger),
	}, nil
}

// syncRetryPolicy aligns the configured retry window with the contract's
// constants so the tracker never disagrees with the on-chain eligibility
// checks.
func syncRetryPolicy(ctx context.Context, conf *config.Config, contract *verifiercontract.OperatorContract, logger log.Logger) {
	maxRetries, err := contract.MaxRetries(ctx)
	if err != nil {
		logger.Warnf("Keeping configured retry policy, failed to read maxRetries: %v", err)
		return
	}
	requestTimeout, err := contract.RequestTimeout(ctx)
	if err != nil {
		logger.Warnf("Keeping configured retry policy, failed to read requestTimeout: %v", err)
		return
	}
	conf.MaxDecryptionRetries = uint(maxRetries)
	conf.RequestTimeoutSecs = requestTimeout.Int64()
	logger.Infof("Retry policy from chain: maxRetries=%d requestTimeout=%ds", maxRetries, requestTimeout)
}

func runApplication(ctx context.Context, conf *config.Config, services *ApplicationServices, logger log.Logger) error {
	if err := services.worker.Start(ctx); err != nil {
		return err
	}
	go func() {
		if err := services.sweeper.Start(ctx); err != nil && err != context.Canceled {
			logger.Errorf("Stale job sweeper stopped: %v", err)
		}
	}()

	engine := gin.New()

	if conf.Monitor.Enable {
		monitor.InitPrometheus(conf.ContractAddress)
		engine.Use(monitor.TrackMetrics())
		go monitor.StartMetricsServer(conf.Monitor.EventAddress)
		logger.Info("Prometheus monitoring enabled")
	}

	h := handler.New(services.ctrl)
	h.Register(engine)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Listen and Serve, config port with PORT=X
	go func() {
		logger.Info("starting http server...")
		if err := engine.Run(); err != nil {
			logger.Errorf("HTTP server error: %v", err)
			stop <- os.Interrupt
		}
	}()

	<-stop
	logger.Info("shutting down server...")
	return nil
}

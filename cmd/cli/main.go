package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/log"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/util"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/config"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/gateway"
	verifiercontract "github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/internal/contract"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/internal/credential"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/internal/verification"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/model"
)

// printHelp prints the usage instructions
func printHelp() {
	help := `Usage:
  verify --age=N                      # Encrypt an age and drive one verification to a terminal outcome
  verify --handle=0x.. --proof=0x..   # Same, starting from pre-encrypted input
  status --subject=0x..               # Read the on-chain verification state of a subject
  --help                              # Show help
`
	fmt.Print(help)
}

// Main is the entry point of the operator CLI
func Main() {
	if len(os.Args) < 2 || os.Args[1] == "--help" || os.Args[1] == "help" {
		printHelp()
		return
	}

	cmd := os.Args[1]
	switch cmd {
	case "verify":
		runVerify(os.Args[2:])
	case "status":
		runStatus(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printHelp()
		os.Exit(1)
	}
}

func runVerify(args []string) {
	verifyFlag := flag.NewFlagSet("verify", flag.ExitOnError)
	age := verifyFlag.Uint("age", 0, "Plaintext age to encrypt and verify")
	handleHex := verifyFlag.String("handle", "", "Pre-encrypted age handle, 32 bytes hex")
	proofHex := verifyFlag.String("proof", "", "Input proof matching the handle, hex")
	_ = verifyFlag.Parse(args)

	conf := config.GetConfig()
	logger, err := log.GetLogger(&conf.Logger)
	if err != nil {
		fatal(err)
	}

	clk := clock.NewClock()
	contract, err := verifiercontract.NewOperatorContract(conf, clk, logger)
	if err != nil {
		fatal(err)
	}
	defer contract.Close()

	ctx := context.Background()
	input, err := resolveInput(ctx, conf, contract, *age, *handleHex, *proofHex, logger)
	if err != nil {
		fatal(err)
	}

	gatewayClient := gateway.NewClient(conf.Gateway.URL, logger)
	chainID := contract.Contract.Client.Network.ChainID().Int64()
	poller := gateway.NewPoller(gatewayClient, conf.ContractAddress, chainID, clk, logger)
	tracker := verification.NewTracker(verification.RetryPolicy{
		MaxRetries:     uint8(conf.MaxDecryptionRetries),
		RequestTimeout: time.Duration(conf.RequestTimeoutSecs) * time.Second,
		RetryCooldown:  time.Duration(conf.RetryCooldownSecs) * time.Second,
	}, clk, logger)
	minter := credential.NewMinter(contract, logger)
	orchestrator := verification.NewOrchestrator(contract, poller, tracker, minter, clk, logger)

	opts := &verification.Options{
		PollOptions: gateway.PollOptions{
			MaxAttempts: conf.Gateway.PollMaxAttempts,
			Interval:    time.Duration(conf.Gateway.PollIntervalSecs) * time.Second,
		},
		SubmitRetry: util.BackoffOption{
			Attempts:  conf.SubmitRetryAttempts,
			BaseDelay: time.Duration(conf.SubmitRetryBaseDelaySecs) * time.Second,
		},
		Reconcile: verification.ReconcileOptions{
			Interval: time.Duration(conf.CallbackPollIntervalSecs) * time.Second,
			Budget:   time.Duration(conf.CallbackBudgetSecs) * time.Second,
		},
		PhaseBudget: time.Duration(conf.DecryptionBudgetSecs) * time.Second,
		OnProgress: func(phase verification.Phase, requestID *big.Int, retryCount uint8) {
			if requestID != nil {
				fmt.Printf("%s (request %s, retries %d)\n", phase, requestID, retryCount)
				return
			}
			fmt.Printf("%s\n", phase)
		},
	}

	outcome, err := orchestrator.Run(ctx, common.HexToAddress(contract.OperatorAddress), input, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Verification failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Verified: %t\n", outcome.Verified)
}

// resolveInput turns the flags into ciphertext. With --age set the input is
// encrypted here; with --handle/--proof the caller already has ciphertext.
func resolveInput(ctx context.Context, conf *config.Config, contract *verifiercontract.OperatorContract, age uint, handleHex, proofHex string, logger log.Logger) (*verification.EncryptedInput, error) {
	if handleHex != "" {
		handleBytes, err := hexutil.Decode(handleHex)
		if err != nil {
			return nil, err
		}
		if len(handleBytes) != 32 {
			return nil, fmt.Errorf("handle is %d bytes, want 32", len(handleBytes))
		}
		proof, err := hexutil.Decode(proofHex)
		if err != nil {
			return nil, err
		}
		input := &verification.EncryptedInput{Proof: proof}
		copy(input.Handle[:], handleBytes)
		return input, nil
	}

	if age == 0 || age > 255 {
		return nil, fmt.Errorf("--age must be between 1 and 255, or pass --handle and --proof")
	}

	clientType, err := verification.ParseClientType(conf.Encryption.Provider)
	if err != nil {
		return nil, err
	}
	encryptor, err := verification.NewEncryptor(clientType, conf.Encryption.RelayerURL, logger)
	if err != nil {
		return nil, err
	}
	return encryptor.EncryptAge(ctx, uint8(age), conf.ContractAddress, contract.OperatorAddress)
}

func runStatus(args []string) {
	statusFlag := flag.NewFlagSet("status", flag.ExitOnError)
	subjectHex := statusFlag.String("subject", "", "Subject address to inspect")
	_ = statusFlag.Parse(args)

	if !common.IsHexAddress(*subjectHex) {
		fmt.Fprintf(os.Stderr, "--subject must be a hex address\n")
		os.Exit(1)
	}

	conf := config.GetConfig()
	logger, err := log.GetLogger(&conf.Logger)
	if err != nil {
		fatal(err)
	}

	contract, err := verifiercontract.NewOperatorContract(conf, clock.NewClock(), logger)
	if err != nil {
		fatal(err)
	}
	defer contract.Close()

	ctx := context.Background()
	subject := common.HexToAddress(*subjectHex)

	verified, err := contract.IsVerified(ctx, subject)
	if err != nil {
		fatal(err)
	}
	hasCredential, err := contract.HasCredential(ctx, subject)
	if err != nil {
		fatal(err)
	}
	state := model.SubjectState{
		Subject:       subject.Hex(),
		Verified:      verified,
		HasCredential: hasCredential,
	}
	active, err := contract.GetActiveRequestID(ctx, subject)
	if err != nil {
		fatal(err)
	}
	if active != nil && active.Sign() > 0 {
		state.ActiveRequestID = active.String()
	}

	out, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(out))
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

package verifiercontract

import (
	"os"

	"code.cloudfoundry.org/clock"
	"github.com/ethereum/go-ethereum/common"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/log"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/config"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/contract"
)

// OperatorContract is the service's view of the on-chain verifier. All writes
// are signed as the operator wallet, so the subject of every submission is the
// operator address itself.
type OperatorContract struct {
	Contract        *contract.VerifierContract
	OperatorAddress string
	logger          log.Logger
}

func NewOperatorContract(conf *config.Config, clk clock.Clock, logger log.Logger) (*OperatorContract, error) {
	verifier, err := contract.NewVerifierContract(common.HexToAddress(conf.ContractAddress), &conf.Networks, os.Getenv("NETWORK"), conf.GasPrice, conf.MaxGasPrice, conf.ProviderOption, clk, logger)
	if err != nil {
		return nil, err
	}
	operator, err := verifier.Client.From()
	if err != nil {
		verifier.Close()
		return nil, err
	}
	return &OperatorContract{
		Contract:        verifier,
		OperatorAddress: operator.Hex(),
		logger:          logger,
	}, nil
}

func (u *OperatorContract) Close() {
	u.Contract.Close()
}

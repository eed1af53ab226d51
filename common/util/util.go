package util

import (
	"fmt"
	"math/big"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/errors"
)

func ConvertToBigInt(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.Errorf("invalid number: %s", s)
	}
	return n, nil
}

// ToHexHandle renders id as a 0x-prefixed 32-byte hex string, the handle
// format the decryption gateway expects.
func ToHexHandle(id *big.Int) string {
	return fmt.Sprintf("0x%064x", id)
}

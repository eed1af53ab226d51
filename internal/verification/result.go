package verification

import (
	"strings"
)

// DecodeVerifiedFlag interprets the gateway's cleartext as the boolean the
// encrypted age comparison produced. Gateways encode it as a bare or
// hex-prefixed 0/1, anything else fails validation.
func DecodeVerifiedFlag(value string) (bool, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false, &InvalidEncryptionResultError{Value: value}
	}

	digits := strings.TrimPrefix(trimmed, "0x")
	if digits == "" {
		return false, &InvalidEncryptionResultError{Value: value}
	}
	switch strings.TrimLeft(digits, "0") {
	case "":
		return false, nil
	case "1":
		return true, nil
	}
	return false, &InvalidEncryptionResultError{Value: value}
}

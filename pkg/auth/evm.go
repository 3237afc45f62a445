package auth

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

const maxWalletLength = 128

var (
	ErrEmptyWallet   = errors.New("wallet address is empty")
	ErrInvalidWallet = errors.New("wallet address is invalid")
)

// ValidateEVMAddress checks if a string is a valid EVM address
func ValidateEVMAddress(address string) bool {
	if !strings.HasPrefix(address, "0x") && !strings.HasPrefix(address, "0X") {
		return false
	}
	if len(address) != 42 {
		return false
	}
	_, err := hex.DecodeString(address[2:])
	return err == nil
}

// NormalizeAddress returns a checksummed EVM address
func NormalizeAddress(address string) string {
	return common.HexToAddress(address).Hex()
}

// NormalizeWallet returns the canonical form of a wallet address.
// EVM addresses are checksummed so that differently-cased inputs resolve to the
// same identity. Addresses of other chains are only trimmed.
func NormalizeWallet(address string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", ErrEmptyWallet
	}
	if len(address) > maxWalletLength || strings.ContainsAny(address, " \t\r\n") {
		return "", ErrInvalidWallet
	}
	if ValidateEVMAddress(address) {
		return NormalizeAddress(address), nil
	}
	return address, nil
}

// ShortWallet abbreviates a wallet address for log output.
func ShortWallet(address string) string {
	if len(address) <= 12 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}

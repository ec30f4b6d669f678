package ledger

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// IsAddress reports whether s is a 20 byte hex address. All-lowercase and
// all-uppercase forms are accepted as is; mixed case must carry a valid
// EIP-55 checksum.
func IsAddress(s string) bool {
	if !common.IsHexAddress(s) {
		return false
	}

	hex := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if hex == strings.ToLower(hex) || hex == strings.ToUpper(hex) {
		return true
	}
	return common.HexToAddress(s).Hex()[2:] == hex
}

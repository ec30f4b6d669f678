package ledger

import (
	"os"
	"strings"

	"github.com/DIN-center/din-ccip-tasks/lib/taskerrors"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/umbracle/ethgo"
	"github.com/umbracle/ethgo/wallet"
)

const (
	PrimaryPrivateKeyEnv   = "PRIVATE_KEY"
	SecondaryPrivateKeyEnv = "SECONDARY_PRIVATE_KEY"
)

// ParsePrivateKey turns a hex encoded secp256k1 key (0x prefix optional) into a signing key.
func ParsePrivateKey(hexKey string) (ethgo.Key, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	if trimmed == "" {
		return nil, taskerrors.New(taskerrors.ErrConfiguration, "private key is empty")
	}

	privateKey, err := crypto.HexToECDSA(trimmed)
	if err != nil {
		return nil, taskerrors.Wrap(taskerrors.ErrConfiguration, err, "failed to decode private key")
	}

	key, err := wallet.NewWalletFromPrivKey(crypto.FromECDSA(privateKey))
	if err != nil {
		return nil, taskerrors.Wrap(taskerrors.ErrConfiguration, err, "failed to load private key")
	}
	return key, nil
}

// GetPrivateKeysFromEnv returns the configured keys in signer order: the
// primary key from PRIVATE_KEY, then the CCIP admin key from
// SECONDARY_PRIVATE_KEY when it is set.
func GetPrivateKeysFromEnv() []string {
	var keys []string
	for _, env := range []string{PrimaryPrivateKeyEnv, SecondaryPrivateKeyEnv} {
		value := strings.TrimSpace(os.Getenv(env))
		if value == "" {
			break
		}
		keys = append(keys, value)
	}
	return keys
}

// ParsePrivateKeys parses keys in order, keeping index 0 as the primary signer.
func ParsePrivateKeys(hexKeys []string) ([]ethgo.Key, error) {
	signers := make([]ethgo.Key, 0, len(hexKeys))
	for i, hexKey := range hexKeys {
		key, err := ParsePrivateKey(hexKey)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid signer at index %d", i)
		}
		signers = append(signers, key)
	}
	return signers, nil
}

package tasks

import (
	"context"

	"github.com/DIN-center/din-ccip-tasks/lib/config"
	"github.com/DIN-center/din-ccip-tasks/lib/ledger"
	"github.com/DIN-center/din-ccip-tasks/lib/taskerrors"
	"github.com/DIN-center/din-ccip-tasks/pkg/contracts"
	"github.com/umbracle/ethgo"
	"go.uber.org/zap"
)

// parseAddress checks s with the ledger's well-formedness predicate.
func parseAddress(client ledger.ILedgerClient, label, s string) (ethgo.Address, error) {
	if s == "" || !client.IsAddress(s) {
		return ethgo.Address{}, taskerrors.New(taskerrors.ErrValidation, "invalid %s address: %q", label, s)
	}
	return ethgo.HexToAddress(s), nil
}

func primarySigner(client ledger.ILedgerClient) (ethgo.Key, error) {
	signers := client.GetSigners()
	if len(signers) == 0 || signers[0] == nil {
		return nil, taskerrors.New(taskerrors.ErrConfiguration, "no primary signer configured")
	}
	return signers[0], nil
}

func secondarySigner(client ledger.ILedgerClient) (ethgo.Key, error) {
	signers := client.GetSigners()
	if len(signers) < 2 || signers[1] == nil {
		return nil, taskerrors.New(taskerrors.ErrConfiguration, "no secondary signer configured for the CCIP admin")
	}
	return signers[1], nil
}

func requireProfile(profile *config.NetworkProfile) error {
	if profile == nil {
		return taskerrors.New(taskerrors.ErrConfiguration, "network profile is missing")
	}
	return nil
}

// registryModule returns the profile's RegistryModuleOwnerCustom address.
func registryModule(profile *config.NetworkProfile, isAddress func(string) bool) (ethgo.Address, error) {
	address, err := profile.GetRegistryModuleOwnerCustom()
	if err != nil {
		return ethgo.Address{}, err
	}
	if !isAddress(address) {
		return ethgo.Address{}, taskerrors.New(taskerrors.ErrConfiguration, "invalid registryModuleOwnerCustom address for %s: %q", profile.Name, address)
	}
	return ethgo.HexToAddress(address), nil
}

// CheckProfile reports the first profile field the task needs but the profile
// lacks, without contacting the ledger.
func CheckProfile(task string, profile *config.NetworkProfile) error {
	if err := requireProfile(profile); err != nil {
		return err
	}
	switch task {
	case TaskClaimAdmin:
		if _, err := registryModule(profile, ledger.IsAddress); err != nil {
			return err
		}
	case TaskSetApprovers, TaskSetChainToLimit:
		if err := profile.RequireRouterAndRMNProxy(); err != nil {
			return err
		}
	}
	_, err := profile.GetConfirmations()
	return err
}

// hashedTxn is implemented by pending transactions that know their broadcast hash.
type hashedTxn interface {
	Hash() (ethgo.Hash, bool)
}

// awaitConfirmation waits for pending. When the wait fails the transaction may
// still land, so its hash is logged for the operator to look up.
func awaitConfirmation(ctx context.Context, pending contracts.IPendingTxn, confirmations uint64, logger *zap.Logger) (*contracts.TxnReference, error) {
	ref, err := pending.AwaitConfirmation(ctx, confirmations)
	if err == nil {
		return ref, nil
	}
	if hashed, ok := pending.(hashedTxn); ok {
		if hash, known := hashed.Hash(); known {
			logger.Warn("transaction outcome unknown, check it on the ledger", zap.String("txn", hash.String()), zap.Error(err))
		}
	}
	return nil, err
}

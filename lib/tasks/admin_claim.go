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

// AdminClaimResolver registers a signer as the token admin in the token admin
// registry through the RegistryModuleOwnerCustom contract.
type AdminClaimResolver struct {
	ledger ledger.ILedgerClient
	logger *zap.Logger
}

func NewAdminClaimResolver(ledgerClient ledger.ILedgerClient, logger *zap.Logger) *AdminClaimResolver {
	return &AdminClaimResolver{
		ledger: ledgerClient,
		logger: logger,
	}
}

// SelectStrategy picks the first declared capability in priority order,
// falling back to the AccessControl default admin.
func SelectStrategy(declaration CapabilityDeclaration) Strategy {
	switch {
	case declaration.HasCCIPAdmin:
		return StrategyCCIPAdmin
	case declaration.HasOwner:
		return StrategyOwner
	default:
		return StrategyDefaultAdminRole
	}
}

// ClaimAdmin resolves the strategy, verifies what can be verified with reads,
// submits exactly one registration and waits for the profile's confirmation depth.
func (r *AdminClaimResolver) ClaimAdmin(ctx context.Context, profile *config.NetworkProfile, tokenAddress string, declaration CapabilityDeclaration) (*AdminClaim, error) {
	token, err := parseAddress(r.ledger, "token", tokenAddress)
	if err != nil {
		return nil, err
	}
	if err := requireProfile(profile); err != nil {
		return nil, err
	}
	registryModuleAddress, err := registryModule(profile, r.ledger.IsAddress)
	if err != nil {
		return nil, err
	}
	confirmations, err := profile.GetConfirmations()
	if err != nil {
		return nil, err
	}

	claim := &AdminClaim{
		Token:    token,
		Strategy: SelectStrategy(declaration),
	}
	logger := r.logger.With(
		zap.String("network", profile.Name),
		zap.String("token", token.String()),
		zap.String("strategy", claim.Strategy.String()),
	)
	logger.Info("resolved admin claim strategy")

	signer, err := r.verify(claim, logger)
	if err != nil {
		logger.Error("admin claim precondition failed", zap.Error(err))
		return nil, err
	}
	claim.ExpectedAuthority = signer.Address()

	registryModule, err := r.ledger.NewRegistryModuleHandler(registryModuleAddress, signer)
	if err != nil {
		return nil, taskerrors.Wrap(taskerrors.ErrConfiguration, err, "failed to load registry module contract")
	}

	pending, err := r.submit(registryModule, claim)
	if err != nil {
		logger.Error("admin claim rejected", zap.Error(err))
		return nil, taskerrors.Wrapf(taskerrors.ErrRemoteRejection, err, "failed to register admin via %s", claim.Strategy)
	}

	ref, err := awaitConfirmation(ctx, pending, confirmations, logger)
	if err != nil {
		logger.Error("admin claim did not confirm", zap.Error(err))
		return nil, taskerrors.Wrapf(taskerrors.ErrRemoteRejection, err, "admin registration via %s did not confirm", claim.Strategy)
	}
	claim.Txn = ref

	logger.Info("admin claimed",
		zap.String("authority", claim.ExpectedAuthority.String()),
		zap.String("txn", ref.Hash.String()),
		zap.Uint64("block", ref.BlockNumber),
	)
	return claim, nil
}

// verify returns the signer for the claim's strategy once its read-side
// precondition holds.
func (r *AdminClaimResolver) verify(claim *AdminClaim, logger *zap.Logger) (ethgo.Key, error) {
	switch claim.Strategy {
	case StrategyCCIPAdmin:
		signer, err := secondarySigner(r.ledger)
		if err != nil {
			return nil, err
		}
		token, err := r.tokenHandler(claim.Token)
		if err != nil {
			return nil, err
		}
		admin, err := token.GetCCIPAdmin()
		if err != nil {
			return nil, taskerrors.Wrap(taskerrors.ErrRemoteRead, err, "failed to read CCIP admin")
		}
		logger.Info("read CCIP admin", zap.String("ccipAdmin", admin.String()))
		if *admin != signer.Address() {
			return nil, taskerrors.New(taskerrors.ErrAuthorizationMismatch, "CCIP admin of %s is %s, expected secondary signer %s", claim.Token, admin, signer.Address())
		}
		return signer, nil

	case StrategyOwner:
		signer, err := primarySigner(r.ledger)
		if err != nil {
			return nil, err
		}
		token, err := r.tokenHandler(claim.Token)
		if err != nil {
			return nil, err
		}
		// the registry module enforces ownership; the read is informational
		owner, err := token.GetOwner()
		if err != nil {
			return nil, taskerrors.Wrap(taskerrors.ErrRemoteRead, err, "failed to read owner")
		}
		if *owner != signer.Address() {
			logger.Warn("token owner differs from signer, registration is expected to revert",
				zap.String("owner", owner.String()),
				zap.String("signer", signer.Address().String()),
			)
		} else {
			logger.Info("read token owner", zap.String("owner", owner.String()))
		}
		return signer, nil

	case StrategyDefaultAdminRole:
		signer, err := primarySigner(r.ledger)
		if err != nil {
			return nil, err
		}
		token, err := r.tokenHandler(claim.Token)
		if err != nil {
			return nil, err
		}
		role, err := token.GetDefaultAdminRole()
		if err != nil {
			return nil, taskerrors.Wrap(taskerrors.ErrRemoteRead, err, "failed to read DEFAULT_ADMIN_ROLE")
		}
		hasRole, err := token.HasRole(role, signer.Address())
		if err != nil {
			return nil, taskerrors.Wrap(taskerrors.ErrRemoteRead, err, "failed to read default admin membership")
		}
		if !hasRole {
			return nil, taskerrors.New(taskerrors.ErrAuthorizationMismatch, "signer %s does not hold DEFAULT_ADMIN_ROLE on %s", signer.Address(), claim.Token)
		}
		return signer, nil
	}

	return nil, taskerrors.New(taskerrors.ErrConfiguration, "unsupported admin claim strategy %d", claim.Strategy)
}

func (r *AdminClaimResolver) submit(registryModule contracts.IRegistryModuleHandler, claim *AdminClaim) (contracts.IPendingTxn, error) {
	switch claim.Strategy {
	case StrategyCCIPAdmin:
		return registryModule.RegisterAdminViaGetCCIPAdmin(claim.Token)
	case StrategyOwner:
		return registryModule.RegisterAdminViaOwner(claim.Token)
	default:
		return registryModule.RegisterAccessControlDefaultAdmin(claim.Token)
	}
}

// tokenHandler binds the token for reads only.
func (r *AdminClaimResolver) tokenHandler(token ethgo.Address) (contracts.ITokenHandler, error) {
	handler, err := r.ledger.NewTokenHandler(token, nil)
	if err != nil {
		return nil, taskerrors.Wrap(taskerrors.ErrConfiguration, err, "failed to load token contract")
	}
	return handler, nil
}

package tasks

import (
	"bytes"
	"context"
	"encoding/json"
	"math/big"
	"strconv"
	"strings"

	"github.com/DIN-center/din-ccip-tasks/lib/config"
	"github.com/DIN-center/din-ccip-tasks/lib/ledger"
	"github.com/DIN-center/din-ccip-tasks/lib/taskerrors"
	"github.com/DIN-center/din-ccip-tasks/pkg/contracts"
	"github.com/umbracle/ethgo"
	"go.uber.org/zap"
)

// PoolConfigurator configures the approval requirements of a
// BurnMintTokenPoolWithApproval.
type PoolConfigurator struct {
	ledger   ledger.ILedgerClient
	profiles config.IProfileProvider
	logger   *zap.Logger
}

func NewPoolConfigurator(ledgerClient ledger.ILedgerClient, profiles config.IProfileProvider, logger *zap.Logger) *PoolConfigurator {
	return &PoolConfigurator{
		ledger:   ledgerClient,
		profiles: profiles,
		logger:   logger,
	}
}

// SetApprovers registers the off-ramp as the pool's only approver.
func (c *PoolConfigurator) SetApprovers(ctx context.Context, profile *config.NetworkProfile, poolAddress, offRampAddress string) (*contracts.TxnReference, error) {
	pool, err := parseAddress(c.ledger, "token pool", poolAddress)
	if err != nil {
		return nil, err
	}
	offRamp, err := parseAddress(c.ledger, "off ramp", offRampAddress)
	if err != nil {
		return nil, err
	}
	confirmations, err := c.poolPreconditions(profile)
	if err != nil {
		return nil, err
	}

	logger := c.logger.With(
		zap.String("network", profile.Name),
		zap.String("pool", pool.String()),
		zap.String("offRamp", offRamp.String()),
	)

	poolHandler, err := c.poolHandler(pool)
	if err != nil {
		return nil, err
	}

	pending, err := poolHandler.SetApprovers([]ethgo.Address{offRamp})
	if err != nil {
		logger.Error("adding approval failed", zap.Error(err))
		return nil, taskerrors.Wrap(taskerrors.ErrRemoteRejection, err, "failed to set approvers")
	}
	ref, err := awaitConfirmation(ctx, pending, confirmations, logger)
	if err != nil {
		logger.Error("adding approval failed", zap.Error(err))
		return nil, taskerrors.Wrap(taskerrors.ErrRemoteRejection, err, "set approvers did not confirm")
	}

	logger.Info("approver added", zap.String("txn", ref.Hash.String()), zap.Uint64("block", ref.BlockNumber))
	return ref, nil
}

// SetChainToLimit sets the amount thresholds, and the approvers each
// threshold requires, for transfers arriving from the source chain.
// Arrays of unequal length are sent as given; the pool decides.
func (c *PoolConfigurator) SetChainToLimit(ctx context.Context, profile *config.NetworkProfile, input ThresholdInput) (*ThresholdConfig, *contracts.TxnReference, error) {
	thresholds, err := c.ParseThresholdConfig(input)
	if err != nil {
		return nil, nil, err
	}
	confirmations, err := c.poolPreconditions(profile)
	if err != nil {
		return nil, nil, err
	}

	logger := c.logger.With(
		zap.String("network", profile.Name),
		zap.String("pool", thresholds.Pool.String()),
		zap.Uint64("sourceChainSelector", thresholds.SourceChainSelector),
	)
	if len(thresholds.Amounts) != len(thresholds.NumOfApprovers) {
		logger.Warn("amounts and num-of-approvers differ in length, passing through unchanged",
			zap.Int("amounts", len(thresholds.Amounts)),
			zap.Int("numOfApprovers", len(thresholds.NumOfApprovers)),
		)
	}

	poolHandler, err := c.poolHandler(thresholds.Pool)
	if err != nil {
		return nil, nil, err
	}

	pending, err := poolHandler.SetChainToLimit(thresholds.SourceChainSelector, thresholds.Amounts, thresholds.NumOfApprovers)
	if err != nil {
		logger.Error("setting thresholds failed", zap.Error(err))
		return thresholds, nil, taskerrors.Wrap(taskerrors.ErrRemoteRejection, err, "failed to set chain to limit")
	}
	ref, err := awaitConfirmation(ctx, pending, confirmations, logger)
	if err != nil {
		logger.Error("setting thresholds failed", zap.Error(err))
		return thresholds, nil, taskerrors.Wrap(taskerrors.ErrRemoteRejection, err, "set chain to limit did not confirm")
	}

	logger.Info("thresholds set", zap.String("txn", ref.Hash.String()), zap.Uint64("block", ref.BlockNumber))
	return thresholds, ref, nil
}

// ParseThresholdConfig validates and decodes the command line form of a
// threshold configuration without touching the ledger.
func (c *PoolConfigurator) ParseThresholdConfig(input ThresholdInput) (*ThresholdConfig, error) {
	pool, err := parseAddress(c.ledger, "token pool", input.PoolAddress)
	if err != nil {
		return nil, err
	}
	selector, err := ResolveSourceChain(c.profiles, input.SourceChain)
	if err != nil {
		return nil, err
	}
	amounts, err := ParseUintArray("amounts", input.Amounts)
	if err != nil {
		return nil, err
	}
	numOfApprovers, err := ParseUintArray("num-of-approvers", input.NumOfApprovers)
	if err != nil {
		return nil, err
	}

	return &ThresholdConfig{
		Pool:                pool,
		SourceChainSelector: selector,
		Amounts:             amounts,
		NumOfApprovers:      numOfApprovers,
	}, nil
}

// ParseUintArray decodes a JSON array such as "[10,100]" into uint256 values.
// Elements may be JSON numbers, including integral exponent forms like 1e18,
// or decimal strings.
func ParseUintArray(name, encoded string) ([]*big.Int, error) {
	decoder := json.NewDecoder(bytes.NewReader([]byte(encoded)))
	decoder.UseNumber()

	var raw []interface{}
	if err := decoder.Decode(&raw); err != nil {
		return nil, taskerrors.Wrapf(taskerrors.ErrValidation, err, "%s must be a JSON array", name)
	}
	if decoder.More() {
		return nil, taskerrors.New(taskerrors.ErrValidation, "%s has trailing data after the array", name)
	}
	if raw == nil {
		return nil, taskerrors.New(taskerrors.ErrValidation, "%s must be a JSON array", name)
	}

	values := make([]*big.Int, 0, len(raw))
	for i, element := range raw {
		var (
			text  string
			value *big.Int
			ok    bool
		)
		switch v := element.(type) {
		case json.Number:
			text = v.String()
			value, ok = parseIntegralNumber(text)
		case string:
			text = strings.TrimSpace(v)
			value, ok = new(big.Int).SetString(text, 10)
		default:
			return nil, taskerrors.New(taskerrors.ErrValidation, "%s[%d] is not a number", name, i)
		}

		if !ok || value.Sign() < 0 || value.BitLen() > 256 {
			return nil, taskerrors.New(taskerrors.ErrValidation, "%s[%d] is not a uint256: %s", name, i, text)
		}
		values = append(values, value)
	}
	return values, nil
}

// parseIntegralNumber decodes a JSON number. Fractions and exponents such as
// 1e18 or 2.5e3 are accepted when the value is an exact integer.
func parseIntegralNumber(text string) (*big.Int, bool) {
	mantissa, exponent := text, 0
	if i := strings.IndexAny(text, "eE"); i >= 0 {
		exp, err := strconv.Atoi(text[i+1:])
		if err != nil {
			return nil, false
		}
		mantissa, exponent = text[:i], exp
	}
	if i := strings.IndexByte(mantissa, '.'); i >= 0 {
		exponent -= len(mantissa) - i - 1
		mantissa = mantissa[:i] + mantissa[i+1:]
	}

	digits, ok := new(big.Int).SetString(mantissa, 10)
	if !ok {
		return nil, false
	}
	if digits.Sign() == 0 || exponent == 0 {
		return digits, true
	}

	ten := big.NewInt(10)
	if exponent < 0 {
		// a nonzero mantissa cannot absorb more powers of ten than it has digits
		if -exponent > len(mantissa) {
			return nil, false
		}
		quotient, remainder := new(big.Int).QuoRem(digits, new(big.Int).Exp(ten, big.NewInt(int64(-exponent)), nil), new(big.Int))
		if remainder.Sign() != 0 {
			return nil, false
		}
		return quotient, true
	}
	// 10^78 already exceeds uint256
	if exponent > 77 {
		return nil, false
	}
	return digits.Mul(digits, new(big.Int).Exp(ten, big.NewInt(int64(exponent)), nil)), true
}

// ResolveSourceChain accepts a configured network name, resolved to its chain
// selector, or a decimal chain selector.
func ResolveSourceChain(profiles config.IProfileProvider, sourceChain string) (uint64, error) {
	sourceChain = strings.TrimSpace(sourceChain)
	if sourceChain == "" {
		return 0, taskerrors.New(taskerrors.ErrValidation, "source chain is empty")
	}

	if profiles != nil {
		if profile, err := profiles.GetNetworkProfile(sourceChain); err == nil {
			return profile.GetChainSelector()
		}
	}

	selector, err := strconv.ParseUint(sourceChain, 10, 64)
	if err != nil {
		return 0, taskerrors.New(taskerrors.ErrValidation, "source chain %q is neither a configured network nor a chain selector", sourceChain)
	}
	return selector, nil
}

// poolPreconditions checks the profile fields every pool task needs.
func (c *PoolConfigurator) poolPreconditions(profile *config.NetworkProfile) (uint64, error) {
	if err := requireProfile(profile); err != nil {
		return 0, err
	}
	if err := profile.RequireRouterAndRMNProxy(); err != nil {
		return 0, err
	}
	return profile.GetConfirmations()
}

func (c *PoolConfigurator) poolHandler(pool ethgo.Address) (contracts.ITokenPoolHandler, error) {
	signer, err := primarySigner(c.ledger)
	if err != nil {
		return nil, err
	}
	handler, err := c.ledger.NewTokenPoolHandler(pool, signer)
	if err != nil {
		return nil, taskerrors.Wrap(taskerrors.ErrConfiguration, err, "failed to load token pool contract")
	}
	return handler, nil
}

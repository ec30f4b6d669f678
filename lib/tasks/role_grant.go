package tasks

import (
	"context"

	"github.com/DIN-center/din-ccip-tasks/lib/config"
	"github.com/DIN-center/din-ccip-tasks/lib/journal"
	"github.com/DIN-center/din-ccip-tasks/lib/ledger"
	"github.com/DIN-center/din-ccip-tasks/lib/taskerrors"
	"github.com/DIN-center/din-ccip-tasks/pkg/contracts"
	"github.com/umbracle/ethgo"
	"go.uber.org/zap"
)

// RoleGrantOrchestrator grants the burner and minter roles of a token to a pool.
type RoleGrantOrchestrator struct {
	ledger  ledger.ILedgerClient
	journal journal.IStepJournal
	logger  *zap.Logger
}

func NewRoleGrantOrchestrator(ledgerClient ledger.ILedgerClient, stepJournal journal.IStepJournal, logger *zap.Logger) *RoleGrantOrchestrator {
	return &RoleGrantOrchestrator{
		ledger:  ledgerClient,
		journal: stepJournal,
		logger:  logger,
	}
}

// GrantBurnMintRoles grants burner then minter, waiting for each to confirm
// before sending the next. Steps confirmed by an earlier run are skipped. The
// first failure stops the batch; the returned batch names the failed step.
func (o *RoleGrantOrchestrator) GrantBurnMintRoles(ctx context.Context, profile *config.NetworkProfile, tokenAddress, poolAddress string) (*RoleGrantBatch, error) {
	token, err := parseAddress(o.ledger, "token", tokenAddress)
	if err != nil {
		return nil, err
	}
	pool, err := parseAddress(o.ledger, "token pool", poolAddress)
	if err != nil {
		return nil, err
	}
	if err := requireProfile(profile); err != nil {
		return nil, err
	}
	confirmations, err := profile.GetConfirmations()
	if err != nil {
		return nil, err
	}
	signer, err := primarySigner(o.ledger)
	if err != nil {
		return nil, err
	}

	logger := o.logger.With(
		zap.String("network", profile.Name),
		zap.String("token", token.String()),
		zap.String("pool", pool.String()),
	)

	key := journal.GrantKey(profile.Name, token.String(), pool.String())
	previous, err := o.journal.Load(ctx, key)
	if err != nil {
		return nil, taskerrors.Wrap(taskerrors.ErrConfiguration, err, "failed to load role grant journal")
	}

	tokenHandler, err := o.ledger.NewTokenHandler(token, signer)
	if err != nil {
		return nil, taskerrors.Wrap(taskerrors.ErrConfiguration, err, "failed to load token contract")
	}

	burnerRole, err := tokenHandler.GetBurnerRole()
	if err != nil {
		return nil, taskerrors.Wrap(taskerrors.ErrRemoteRead, err, "failed to read BURNER_ROLE")
	}
	minterRole, err := tokenHandler.GetMinterRole()
	if err != nil {
		return nil, taskerrors.Wrap(taskerrors.ErrRemoteRead, err, "failed to read MINTER_ROLE")
	}

	batch := &RoleGrantBatch{
		Token:     token,
		Recipient: pool,
		Steps: []*RoleGrantStep{
			{Name: StepBurner, Role: burnerRole, Status: journal.StepPending},
			{Name: StepMinter, Role: minterRole, Status: journal.StepPending},
		},
	}

	for _, step := range batch.Steps {
		if record, ok := previous[step.Name]; ok && record.Status == journal.StepConfirmed {
			step.Status = journal.StepConfirmed
			step.Resumed = true
			step.Txn = &contracts.TxnReference{Hash: ethgo.HexToHash(record.TxnHash), BlockNumber: record.BlockNumber}
			logger.Info("role already granted by an earlier run", zap.String("step", step.Name), zap.String("txn", record.TxnHash))
			continue
		}

		if err := o.grant(ctx, logger, key, pool, tokenHandler, step, confirmations); err != nil {
			batch.FailedStep = step.Name
			logger.Error("role grant failed", zap.String("step", step.Name), zap.Error(err))
			return batch, err
		}
	}

	logger.Info("burn and mint roles granted")
	return batch, nil
}

func (o *RoleGrantOrchestrator) grant(ctx context.Context, logger *zap.Logger, key string, pool ethgo.Address, token contracts.ITokenHandler, step *RoleGrantStep, confirmations uint64) error {
	o.record(ctx, logger, key, journal.StepRecord{Step: step.Name, Status: journal.StepPending})

	pending, err := token.GrantRole(step.Role, pool)
	if err == nil {
		step.Txn, err = awaitConfirmation(ctx, pending, confirmations, logger)
	}
	if err != nil {
		step.Status = journal.StepFailed
		o.record(ctx, logger, key, journal.StepRecord{Step: step.Name, Status: journal.StepFailed, Error: err.Error()})
		return taskerrors.Wrapf(taskerrors.ErrRemoteRejection, err, "grant of %s role failed", step.Name)
	}

	step.Status = journal.StepConfirmed
	o.record(ctx, logger, key, journal.StepRecord{
		Step:        step.Name,
		Status:      journal.StepConfirmed,
		TxnHash:     step.Txn.Hash.String(),
		BlockNumber: step.Txn.BlockNumber,
	})
	logger.Info("role granted",
		zap.String("step", step.Name),
		zap.String("txn", step.Txn.Hash.String()),
		zap.Uint64("block", step.Txn.BlockNumber),
	)
	return nil
}

// record never fails the batch; the ledger is the source of truth.
func (o *RoleGrantOrchestrator) record(ctx context.Context, logger *zap.Logger, key string, record journal.StepRecord) {
	if err := o.journal.Record(ctx, key, record); err != nil {
		logger.Warn("failed to record role grant step", zap.String("step", record.Step), zap.Error(err))
	}
}

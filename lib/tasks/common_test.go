package tasks

import (
	"context"
	"testing"
	"time"

	"github.com/DIN-center/din-ccip-tasks/lib/config"
	"github.com/DIN-center/din-ccip-tasks/lib/taskerrors"
	"github.com/DIN-center/din-ccip-tasks/pkg/contracts"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umbracle/ethgo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// sentTxn is a broadcast transaction whose receipt never arrives.
type sentTxn struct {
	hash ethgo.Hash
	err  error
}

func (s *sentTxn) Wait() (*ethgo.Receipt, error) {
	return nil, s.err
}

func (s *sentTxn) Hash() ethgo.Hash {
	return s.hash
}

func TestAwaitConfirmationLogsBroadcastHash(t *testing.T) {
	hash := ethgo.HexToHash("0xcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcd")

	t.Run("failed wait logs the hash", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		pending := contracts.NewPendingTxn(&sentTxn{hash: hash, err: errors.New("connection reset")}, nil, time.Millisecond)

		ref, err := awaitConfirmation(context.Background(), pending, 2, zap.New(core))
		assert.Error(t, err)
		assert.Nil(t, ref)

		entries := logs.FilterField(zap.String("txn", hash.String())).All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	})

	t.Run("mocked txn without a hash logs nothing", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		core, logs := observer.New(zapcore.WarnLevel)
		pending := contracts.NewMockIPendingTxn(mockCtrl)
		pending.EXPECT().AwaitConfirmation(gomock.Any(), uint64(2)).Return(nil, errors.New("reverted"))

		_, err := awaitConfirmation(context.Background(), pending, 2, zap.New(core))
		assert.Error(t, err)
		assert.Zero(t, logs.Len())
	})
}

func TestSetApproversCancelledKeepsHash(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	hash := ethgo.HexToHash("0xefefefefefefefefefefefefefefefefefefefefefefefefefefefefefefefef")
	m := newTestMocks(t, mockCtrl)
	m.withSigners(m.primary)
	m.ledger.EXPECT().NewTokenPoolHandler(ethgo.HexToAddress(testPoolAddress), m.primary).Return(m.pool, nil)
	m.pool.EXPECT().SetApprovers(gomock.Any()).Return(
		contracts.NewPendingTxn(&sentTxn{hash: hash, err: context.Canceled}, nil, time.Millisecond), nil)

	core, logs := observer.New(zapcore.WarnLevel)
	configurator := NewPoolConfigurator(m.ledger, nil, zap.New(core))
	_, err := configurator.SetApprovers(context.Background(), testProfile(), testPoolAddress, testOffRampAddress)

	assert.True(t, errors.Is(err, taskerrors.ErrRemoteRejection), "got %v", err)
	assert.Equal(t, 1, logs.FilterField(zap.String("txn", hash.String())).Len())
}

func TestCheckProfile(t *testing.T) {
	without := func(edit func(p *config.NetworkProfile)) *config.NetworkProfile {
		profile := testProfile()
		edit(profile)
		return profile
	}

	tests := []struct {
		name    string
		task    string
		profile *config.NetworkProfile
		wantErr bool
	}{
		{name: "claim-admin complete", task: TaskClaimAdmin, profile: testProfile()},
		{name: "claim-admin without registry module", task: TaskClaimAdmin, profile: without(func(p *config.NetworkProfile) { p.RegistryModuleOwnerCustom = "" }), wantErr: true},
		{name: "claim-admin with malformed registry module", task: TaskClaimAdmin, profile: without(func(p *config.NetworkProfile) { p.RegistryModuleOwnerCustom = testShortAddress }), wantErr: true},
		{name: "claim-admin without confirmations", task: TaskClaimAdmin, profile: without(func(p *config.NetworkProfile) { p.Confirmations = nil }), wantErr: true},
		{name: "grant-burn-mint-roles ignores pool contracts", task: TaskGrantBurnMintRoles, profile: without(func(p *config.NetworkProfile) { p.Router, p.RMNProxy, p.RegistryModuleOwnerCustom = "", "", "" })},
		{name: "grant-burn-mint-roles without confirmations", task: TaskGrantBurnMintRoles, profile: without(func(p *config.NetworkProfile) { p.Confirmations = nil }), wantErr: true},
		{name: "set-approvers without router", task: TaskSetApprovers, profile: without(func(p *config.NetworkProfile) { p.Router = "" }), wantErr: true},
		{name: "set-chain-to-limit without rmn proxy", task: TaskSetChainToLimit, profile: without(func(p *config.NetworkProfile) { p.RMNProxy = "" }), wantErr: true},
		{name: "set-chain-to-limit complete", task: TaskSetChainToLimit, profile: testProfile()},
		{name: "no profile", task: TaskSetApprovers, profile: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckProfile(tt.task, tt.profile)
			if tt.wantErr {
				assert.True(t, errors.Is(err, taskerrors.ErrConfiguration), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

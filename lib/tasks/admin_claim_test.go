package tasks

import (
	"context"
	"testing"

	"github.com/DIN-center/din-ccip-tasks/lib/config"
	"github.com/DIN-center/din-ccip-tasks/lib/taskerrors"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umbracle/ethgo"
	"go.uber.org/zap"
)

func TestSelectStrategy(t *testing.T) {
	tests := []struct {
		name        string
		declaration CapabilityDeclaration
		want        Strategy
	}{
		{name: "ccip admin only", declaration: CapabilityDeclaration{HasCCIPAdmin: true}, want: StrategyCCIPAdmin},
		{name: "ccip admin wins over owner", declaration: CapabilityDeclaration{HasCCIPAdmin: true, HasOwner: true}, want: StrategyCCIPAdmin},
		{name: "owner only", declaration: CapabilityDeclaration{HasOwner: true}, want: StrategyOwner},
		{name: "no flags", declaration: CapabilityDeclaration{}, want: StrategyDefaultAdminRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectStrategy(tt.declaration))
		})
	}
}

func TestClaimAdmin(t *testing.T) {
	token := ethgo.HexToAddress(testTokenAddress)
	registry := ethgo.HexToAddress(testRegistryAddress)
	stranger := ethgo.HexToAddress("0x9999999999999999999999999999999999999999")
	defaultAdminRole := role(0)

	tests := []struct {
		name         string
		declaration  CapabilityDeclaration
		tokenAddress string
		noSecondary  bool
		profile      func(p *config.NetworkProfile)
		setup        func(m *testMocks)
		wantStrategy Strategy
		wantKind     error
	}{
		{
			name:         "ccip admin matches secondary signer",
			declaration:  CapabilityDeclaration{HasCCIPAdmin: true},
			tokenAddress: testTokenAddress,
			setup: func(m *testMocks) {
				admin := m.secondary.Address()
				m.ledger.EXPECT().NewTokenHandler(token, nil).Return(m.token, nil)
				m.token.EXPECT().GetCCIPAdmin().Return(&admin, nil)
				m.ledger.EXPECT().NewRegistryModuleHandler(registry, m.secondary).Return(m.registry, nil)
				m.registry.EXPECT().RegisterAdminViaGetCCIPAdmin(token).Return(m.pending, nil).Times(1)
				m.pending.EXPECT().AwaitConfirmation(gomock.Any(), testConfirmations).Return(testTxn, nil)
			},
			wantStrategy: StrategyCCIPAdmin,
		},
		{
			name:         "ccip admin declared alongside owner",
			declaration:  CapabilityDeclaration{HasCCIPAdmin: true, HasOwner: true},
			tokenAddress: testTokenAddress,
			setup: func(m *testMocks) {
				admin := m.secondary.Address()
				m.ledger.EXPECT().NewTokenHandler(token, nil).Return(m.token, nil)
				m.token.EXPECT().GetCCIPAdmin().Return(&admin, nil)
				m.ledger.EXPECT().NewRegistryModuleHandler(registry, m.secondary).Return(m.registry, nil)
				m.registry.EXPECT().RegisterAdminViaGetCCIPAdmin(token).Return(m.pending, nil).Times(1)
				m.pending.EXPECT().AwaitConfirmation(gomock.Any(), testConfirmations).Return(testTxn, nil)
			},
			wantStrategy: StrategyCCIPAdmin,
		},
		{
			name:         "ccip admin mismatch submits nothing",
			declaration:  CapabilityDeclaration{HasCCIPAdmin: true},
			tokenAddress: testTokenAddress,
			setup: func(m *testMocks) {
				m.ledger.EXPECT().NewTokenHandler(token, nil).Return(m.token, nil)
				m.token.EXPECT().GetCCIPAdmin().Return(&stranger, nil)
			},
			wantKind: taskerrors.ErrAuthorizationMismatch,
		},
		{
			name:         "ccip admin without secondary signer",
			declaration:  CapabilityDeclaration{HasCCIPAdmin: true},
			tokenAddress: testTokenAddress,
			noSecondary:  true,
			setup:        func(m *testMocks) {},
			wantKind:     taskerrors.ErrConfiguration,
		},
		{
			name:         "ccip admin read failure",
			declaration:  CapabilityDeclaration{HasCCIPAdmin: true},
			tokenAddress: testTokenAddress,
			setup: func(m *testMocks) {
				m.ledger.EXPECT().NewTokenHandler(token, nil).Return(m.token, nil)
				m.token.EXPECT().GetCCIPAdmin().Return(nil, errors.New("connection refused"))
			},
			wantKind: taskerrors.ErrRemoteRead,
		},
		{
			name:         "owner matches primary signer",
			declaration:  CapabilityDeclaration{HasOwner: true},
			tokenAddress: testTokenAddress,
			setup: func(m *testMocks) {
				owner := m.primary.Address()
				m.ledger.EXPECT().NewTokenHandler(token, nil).Return(m.token, nil)
				m.token.EXPECT().GetOwner().Return(&owner, nil)
				m.ledger.EXPECT().NewRegistryModuleHandler(registry, m.primary).Return(m.registry, nil)
				m.registry.EXPECT().RegisterAdminViaOwner(token).Return(m.pending, nil).Times(1)
				m.pending.EXPECT().AwaitConfirmation(gomock.Any(), testConfirmations).Return(testTxn, nil)
			},
			wantStrategy: StrategyOwner,
		},
		{
			name:         "owner mismatch still submits and surfaces the revert",
			declaration:  CapabilityDeclaration{HasOwner: true},
			tokenAddress: testTokenAddress,
			setup: func(m *testMocks) {
				m.ledger.EXPECT().NewTokenHandler(token, nil).Return(m.token, nil)
				m.token.EXPECT().GetOwner().Return(&stranger, nil)
				m.ledger.EXPECT().NewRegistryModuleHandler(registry, m.primary).Return(m.registry, nil)
				m.registry.EXPECT().RegisterAdminViaOwner(token).Return(m.pending, nil).Times(1)
				m.pending.EXPECT().AwaitConfirmation(gomock.Any(), testConfirmations).Return(nil, errors.New("transaction reverted"))
			},
			wantKind: taskerrors.ErrRemoteRejection,
		},
		{
			name:         "owner registration rejected on submission",
			declaration:  CapabilityDeclaration{HasOwner: true},
			tokenAddress: testTokenAddress,
			setup: func(m *testMocks) {
				owner := m.primary.Address()
				m.ledger.EXPECT().NewTokenHandler(token, nil).Return(m.token, nil)
				m.token.EXPECT().GetOwner().Return(&owner, nil)
				m.ledger.EXPECT().NewRegistryModuleHandler(registry, m.primary).Return(m.registry, nil)
				m.registry.EXPECT().RegisterAdminViaOwner(token).Return(nil, errors.New("insufficient funds"))
			},
			wantKind: taskerrors.ErrRemoteRejection,
		},
		{
			name:         "owner read failure",
			declaration:  CapabilityDeclaration{HasOwner: true},
			tokenAddress: testTokenAddress,
			setup: func(m *testMocks) {
				m.ledger.EXPECT().NewTokenHandler(token, nil).Return(m.token, nil)
				m.token.EXPECT().GetOwner().Return(nil, errors.New("execution reverted"))
			},
			wantKind: taskerrors.ErrRemoteRead,
		},
		{
			name:         "default admin role held",
			tokenAddress: testTokenAddress,
			setup: func(m *testMocks) {
				m.ledger.EXPECT().NewTokenHandler(token, nil).Return(m.token, nil)
				m.token.EXPECT().GetDefaultAdminRole().Return(defaultAdminRole, nil)
				m.token.EXPECT().HasRole(defaultAdminRole, m.primary.Address()).Return(true, nil)
				m.ledger.EXPECT().NewRegistryModuleHandler(registry, m.primary).Return(m.registry, nil)
				m.registry.EXPECT().RegisterAccessControlDefaultAdmin(token).Return(m.pending, nil).Times(1)
				m.pending.EXPECT().AwaitConfirmation(gomock.Any(), testConfirmations).Return(testTxn, nil)
			},
			wantStrategy: StrategyDefaultAdminRole,
		},
		{
			name:         "default admin role not held submits nothing",
			tokenAddress: testTokenAddress,
			setup: func(m *testMocks) {
				m.ledger.EXPECT().NewTokenHandler(token, nil).Return(m.token, nil)
				m.token.EXPECT().GetDefaultAdminRole().Return(defaultAdminRole, nil)
				m.token.EXPECT().HasRole(defaultAdminRole, m.primary.Address()).Return(false, nil)
			},
			wantKind: taskerrors.ErrAuthorizationMismatch,
		},
		{
			name:         "default admin role read failure",
			tokenAddress: testTokenAddress,
			setup: func(m *testMocks) {
				m.ledger.EXPECT().NewTokenHandler(token, nil).Return(m.token, nil)
				m.token.EXPECT().GetDefaultAdminRole().Return(defaultAdminRole, errors.New("execution reverted"))
			},
			wantKind: taskerrors.ErrRemoteRead,
		},
		{
			name:         "token address too short",
			tokenAddress: testShortAddress,
			setup:        func(m *testMocks) {},
			wantKind:     taskerrors.ErrValidation,
		},
		{
			name:         "token address with invalid characters",
			declaration:  CapabilityDeclaration{HasCCIPAdmin: true},
			tokenAddress: testInvalidAddress,
			setup:        func(m *testMocks) {},
			wantKind:     taskerrors.ErrValidation,
		},
		{
			name:         "confirmations missing from profile",
			tokenAddress: testTokenAddress,
			profile:      func(p *config.NetworkProfile) { p.Confirmations = nil },
			setup:        func(m *testMocks) {},
			wantKind:     taskerrors.ErrConfiguration,
		},
		{
			name:         "registry module missing from profile",
			declaration:  CapabilityDeclaration{HasOwner: true},
			tokenAddress: testTokenAddress,
			profile:      func(p *config.NetworkProfile) { p.RegistryModuleOwnerCustom = "" },
			setup:        func(m *testMocks) {},
			wantKind:     taskerrors.ErrConfiguration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()

			m := newTestMocks(t, mockCtrl)
			if tt.noSecondary {
				m.withSigners(m.primary)
			} else {
				m.withSigners(m.primary, m.secondary)
			}
			tt.setup(m)

			profile := testProfile()
			if tt.profile != nil {
				tt.profile(profile)
			}

			resolver := NewAdminClaimResolver(m.ledger, zap.NewNop())
			claim, err := resolver.ClaimAdmin(context.Background(), profile, tt.tokenAddress, tt.declaration)

			if tt.wantKind != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantKind), "got %v", err)
				assert.Nil(t, claim)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStrategy, claim.Strategy)
			assert.Equal(t, token, claim.Token)
			assert.Equal(t, testTxn, claim.Txn)
		})
	}
}

// With the ccip admin flag set and the token reporting the secondary signer as
// its CCIP admin, exactly one registration is sent, signed by the secondary
// signer, and awaited to the profile depth.
func TestClaimAdminCCIPAdminScenario(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	m := newTestMocks(t, mockCtrl)
	m.withSigners(m.primary, m.secondary)

	token := ethgo.HexToAddress(testTokenAddress)
	admin := m.secondary.Address()

	gomock.InOrder(
		m.ledger.EXPECT().NewTokenHandler(token, nil).Return(m.token, nil),
		m.token.EXPECT().GetCCIPAdmin().Return(&admin, nil),
		m.ledger.EXPECT().NewRegistryModuleHandler(ethgo.HexToAddress(testRegistryAddress), m.secondary).Return(m.registry, nil),
		m.registry.EXPECT().RegisterAdminViaGetCCIPAdmin(token).Return(m.pending, nil).Times(1),
		m.pending.EXPECT().AwaitConfirmation(gomock.Any(), testConfirmations).Return(testTxn, nil).Times(1),
	)

	resolver := NewAdminClaimResolver(m.ledger, zap.NewNop())
	claim, err := resolver.ClaimAdmin(context.Background(), testProfile(), testTokenAddress, CapabilityDeclaration{HasCCIPAdmin: true})
	require.NoError(t, err)

	assert.Equal(t, StrategyCCIPAdmin, claim.Strategy)
	assert.Equal(t, admin, claim.ExpectedAuthority)
	assert.Equal(t, testTxn, claim.Txn)
}

// With no flags and a primary signer lacking DEFAULT_ADMIN_ROLE the claim is
// refused before any write.
func TestClaimAdminDefaultAdminRoleScenario(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	m := newTestMocks(t, mockCtrl)
	m.withSigners(m.primary)

	token := ethgo.HexToAddress(testTokenAddress)
	defaultAdminRole := role(0)

	m.ledger.EXPECT().NewTokenHandler(token, nil).Return(m.token, nil)
	m.token.EXPECT().GetDefaultAdminRole().Return(defaultAdminRole, nil)
	m.token.EXPECT().HasRole(defaultAdminRole, m.primary.Address()).Return(false, nil)
	m.ledger.EXPECT().NewRegistryModuleHandler(gomock.Any(), gomock.Any()).Times(0)
	m.registry.EXPECT().RegisterAccessControlDefaultAdmin(gomock.Any()).Times(0)
	m.registry.EXPECT().RegisterAdminViaOwner(gomock.Any()).Times(0)
	m.registry.EXPECT().RegisterAdminViaGetCCIPAdmin(gomock.Any()).Times(0)

	resolver := NewAdminClaimResolver(m.ledger, zap.NewNop())
	claim, err := resolver.ClaimAdmin(context.Background(), testProfile(), testTokenAddress, CapabilityDeclaration{})

	assert.Nil(t, claim)
	assert.True(t, errors.Is(err, taskerrors.ErrAuthorizationMismatch))
	assert.Equal(t, taskerrors.ErrAuthorizationMismatch, taskerrors.Kind(err))
}

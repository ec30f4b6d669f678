package tasks

import (
	"testing"

	"github.com/DIN-center/din-ccip-tasks/lib/config"
	"github.com/DIN-center/din-ccip-tasks/lib/ledger"
	"github.com/DIN-center/din-ccip-tasks/pkg/contracts"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"github.com/umbracle/ethgo"
	"github.com/umbracle/ethgo/wallet"
)

const (
	testTokenAddress    = "0x1111111111111111111111111111111111111111"
	testPoolAddress     = "0x2222222222222222222222222222222222222222"
	testOffRampAddress  = "0x3333333333333333333333333333333333333333"
	testRegistryAddress = "0x4444444444444444444444444444444444444444"
	testRouterAddress   = "0x5555555555555555555555555555555555555555"
	testRMNProxyAddress = "0x6666666666666666666666666666666666666666"

	// wrong length and invalid characters
	testShortAddress   = "0x12345"
	testInvalidAddress = "0xZZ11111111111111111111111111111111111111"

	testConfirmations uint64 = 2
)

var testTxn = &contracts.TxnReference{
	Hash:        ethgo.HexToHash("0xabababababababababababababababababababababababababababababababab"),
	BlockNumber: 42,
}

type testMocks struct {
	ledger    *ledger.MockILedgerClient
	token     *contracts.MockITokenHandler
	registry  *contracts.MockIRegistryModuleHandler
	pool      *contracts.MockITokenPoolHandler
	pending   *contracts.MockIPendingTxn
	primary   ethgo.Key
	secondary ethgo.Key
}

func newTestMocks(t *testing.T, mockCtrl *gomock.Controller) *testMocks {
	t.Helper()

	primary, err := wallet.GenerateKey()
	require.NoError(t, err)
	secondary, err := wallet.GenerateKey()
	require.NoError(t, err)

	m := &testMocks{
		ledger:    ledger.NewMockILedgerClient(mockCtrl),
		token:     contracts.NewMockITokenHandler(mockCtrl),
		registry:  contracts.NewMockIRegistryModuleHandler(mockCtrl),
		pool:      contracts.NewMockITokenPoolHandler(mockCtrl),
		pending:   contracts.NewMockIPendingTxn(mockCtrl),
		primary:   primary,
		secondary: secondary,
	}
	m.ledger.EXPECT().IsAddress(gomock.Any()).DoAndReturn(ledger.IsAddress).AnyTimes()
	return m
}

func (m *testMocks) withSigners(signers ...ethgo.Key) {
	m.ledger.EXPECT().GetSigners().Return(signers).AnyTimes()
}

func testProfile() *config.NetworkProfile {
	return &config.NetworkProfile{
		Name:                      "sepolia",
		ChainID:                   aws.Uint64(11155111),
		ChainSelector:             "16015286601757825753",
		Router:                    testRouterAddress,
		RMNProxy:                  testRMNProxyAddress,
		RegistryModuleOwnerCustom: testRegistryAddress,
		Confirmations:             aws.Uint64(testConfirmations),
		NativeCurrencySymbol:      "ETH",
	}
}

func role(b byte) contracts.Role {
	var r contracts.Role
	r[31] = b
	return r
}

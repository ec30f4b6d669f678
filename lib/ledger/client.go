package ledger

import (
	"github.com/DIN-center/din-ccip-tasks/lib/taskerrors"
	"github.com/DIN-center/din-ccip-tasks/pkg/contracts"
	"github.com/pkg/errors"
	"github.com/umbracle/ethgo"
	"github.com/umbracle/ethgo/jsonrpc"
	"go.uber.org/zap"
)

// Compile time check to ensure that the LedgerClient implements the ILedgerClient interface
var _ ILedgerClient = &LedgerClient{}

// LedgerClient binds CCIP contract handlers to one RPC endpoint and a fixed,
// ordered set of signers.
type LedgerClient struct {
	ethClient *jsonrpc.Client
	signers   []ethgo.Key
	logger    *zap.Logger
}

func NewLedgerClient(logger *zap.Logger, rpcEndpointURL string, hexKeys []string) (*LedgerClient, error) {
	signers, err := ParsePrivateKeys(hexKeys)
	if err != nil {
		return nil, err
	}

	ethClient, err := setupEthClient(rpcEndpointURL)
	if err != nil {
		return nil, taskerrors.Wrap(taskerrors.ErrConfiguration, err, "error calling setupEthClient")
	}

	for i, signer := range signers {
		logger.Debug("loaded signer", zap.Int("index", i), zap.String("address", signer.Address().String()))
	}

	return &LedgerClient{
		ethClient: ethClient,
		signers:   signers,
		logger:    logger,
	}, nil
}

// setupEthClient sets up the json-rpc client for the given endpoint
func setupEthClient(rpcEndpointURL string) (*jsonrpc.Client, error) {
	ethClient, err := jsonrpc.NewClient(rpcEndpointURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed call to jsonrpc.NewClient")
	}
	return ethClient, nil
}

func (l *LedgerClient) IsAddress(address string) bool {
	return IsAddress(address)
}

// GetSigners returns the available identities; index 0 is the primary signer
// and index 1, when present, the secondary one.
func (l *LedgerClient) GetSigners() []ethgo.Key {
	return l.signers
}

func (l *LedgerClient) GetChainID() (uint64, error) {
	chainID, err := l.ethClient.Eth().ChainID()
	if err != nil {
		return 0, taskerrors.Wrap(taskerrors.ErrRemoteRead, err, "failed call to eth_chainId")
	}
	return chainID.Uint64(), nil
}

func (l *LedgerClient) NewTokenHandler(address ethgo.Address, signer ethgo.Key) (contracts.ITokenHandler, error) {
	return contracts.NewTokenHandler(l.ethClient, address.String(), signer)
}

func (l *LedgerClient) NewRegistryModuleHandler(address ethgo.Address, signer ethgo.Key) (contracts.IRegistryModuleHandler, error) {
	return contracts.NewRegistryModuleHandler(l.ethClient, address.String(), signer)
}

func (l *LedgerClient) NewTokenPoolHandler(address ethgo.Address, signer ethgo.Key) (contracts.ITokenPoolHandler, error) {
	return contracts.NewTokenPoolHandler(l.ethClient, address.String(), signer)
}

// Close releases the underlying transport.
func (l *LedgerClient) Close() error {
	return l.ethClient.Close()
}

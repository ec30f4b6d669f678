package contracts

import (
	"embed"
	"io/fs"
	"time"

	"github.com/pkg/errors"
	"github.com/umbracle/ethgo"
	"github.com/umbracle/ethgo/abi"
	"github.com/umbracle/ethgo/contract"
	"github.com/umbracle/ethgo/jsonrpc"
)

//go:embed abi/*.abi
var abiFS embed.FS

// DefaultPollInterval is how often a pending transaction re-reads the chain head.
var DefaultPollInterval = 2 * time.Second

// ContractHandler holds common fields for contract interaction.
type ContractHandler struct {
	Contract  *contract.Contract
	ethClient *jsonrpc.Client
}

// NewContractHandler creates a new ContractHandler struct.
// Writes are signed by sender; a nil sender gives a read-only handler.
func NewContractHandler(ethClient *jsonrpc.Client, contractAddress string, abiPath string, sender ethgo.Key) (*ContractHandler, error) {
	abiBytes, err := fs.ReadFile(abiFS, abiPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed call to NewContractHandler ReadFile %s", abiPath)
	}

	parsedABI, err := abi.NewABI(string(abiBytes))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse ABI %s", abiPath)
	}

	address := ethgo.HexToAddress(contractAddress)
	opts := []contract.ContractOption{contract.WithJsonRPC(ethClient.Eth())}
	if sender != nil {
		opts = append(opts, contract.WithSender(sender))
	}

	return &ContractHandler{
		Contract:  contract.NewContract(address, parsedABI, opts...),
		ethClient: ethClient,
	}, nil
}

func (c *ContractHandler) Call(method string, args ...interface{}) (interface{}, error) {
	return c.Contract.Call(method, ethgo.Latest, args...)
}

// Txn builds, signs and broadcasts a transaction. The returned handle waits for
// the receipt and the requested number of confirmations.
func (c *ContractHandler) Txn(method string, args ...interface{}) (IPendingTxn, error) {
	txn, err := c.Contract.Txn(method, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build %s transaction", method)
	}
	if err := txn.Do(); err != nil {
		return nil, errors.Wrapf(err, "failed to send %s transaction", method)
	}
	return NewPendingTxn(txn, c.ethClient.Eth(), DefaultPollInterval), nil
}

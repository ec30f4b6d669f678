package contracts

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/umbracle/ethgo"
	"github.com/umbracle/ethgo/jsonrpc"
)

// TokenPoolHandler talks to a burn/mint token pool that gates releases behind approvers.
type TokenPoolHandler struct {
	ContractHandler IContractHandler
}

func NewTokenPoolHandler(ethClient *jsonrpc.Client, contractAddress string, sender ethgo.Key) (*TokenPoolHandler, error) {
	contractHandler, err := NewContractHandler(ethClient, contractAddress, ABITokenPoolPath, sender)
	if err != nil {
		return nil, errors.Wrap(err, "failed call to NewTokenPoolHandler")
	}
	return &TokenPoolHandler{ContractHandler: contractHandler}, nil
}

func (p *TokenPoolHandler) SetApprovers(approvers []ethgo.Address) (IPendingTxn, error) {
	txn, err := p.ContractHandler.Txn(SetApprovers, approvers)
	if err != nil {
		return nil, errors.Wrap(err, "failed call to TokenPoolHandler SetApprovers")
	}
	return txn, nil
}

// SetChainToLimit sends the thresholds as given. Equal lengths are enforced,
// if at all, by the pool contract.
func (p *TokenPoolHandler) SetChainToLimit(remoteChainSelector uint64, amounts []*big.Int, numOfApprovers []*big.Int) (IPendingTxn, error) {
	txn, err := p.ContractHandler.Txn(SetChainToLimit, remoteChainSelector, amounts, numOfApprovers)
	if err != nil {
		return nil, errors.Wrap(err, "failed call to TokenPoolHandler SetChainToLimit")
	}
	return txn, nil
}

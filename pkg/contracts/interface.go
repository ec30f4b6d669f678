package contracts

import (
	"context"
	"math/big"

	"github.com/umbracle/ethgo"
)

type ITokenHandler interface {
	GetCCIPAdmin() (*ethgo.Address, error)
	GetOwner() (*ethgo.Address, error)
	GetDefaultAdminRole() (Role, error)
	GetBurnerRole() (Role, error)
	GetMinterRole() (Role, error)
	HasRole(role Role, account ethgo.Address) (bool, error)
	GrantRole(role Role, account ethgo.Address) (IPendingTxn, error)
}

type IRegistryModuleHandler interface {
	RegisterAdminViaGetCCIPAdmin(token ethgo.Address) (IPendingTxn, error)
	RegisterAdminViaOwner(token ethgo.Address) (IPendingTxn, error)
	RegisterAccessControlDefaultAdmin(token ethgo.Address) (IPendingTxn, error)
}

type ITokenPoolHandler interface {
	SetApprovers(approvers []ethgo.Address) (IPendingTxn, error)
	SetChainToLimit(remoteChainSelector uint64, amounts []*big.Int, numOfApprovers []*big.Int) (IPendingTxn, error)
}

type IPendingTxn interface {
	AwaitConfirmation(ctx context.Context, confirmations uint64) (*TxnReference, error)
}

type IContractHandler interface {
	Call(method string, args ...interface{}) (interface{}, error)
	Txn(method string, args ...interface{}) (IPendingTxn, error)
}

// IBlockNumberReader is the part of the eth namespace needed to count confirmations.
type IBlockNumberReader interface {
	BlockNumber() (uint64, error)
}

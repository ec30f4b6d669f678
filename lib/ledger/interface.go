package ledger

import (
	"github.com/DIN-center/din-ccip-tasks/pkg/contracts"
	"github.com/umbracle/ethgo"
)

type ILedgerClient interface {
	IsAddress(address string) bool
	GetSigners() []ethgo.Key
	GetChainID() (uint64, error)
	NewTokenHandler(address ethgo.Address, signer ethgo.Key) (contracts.ITokenHandler, error)
	NewRegistryModuleHandler(address ethgo.Address, signer ethgo.Key) (contracts.IRegistryModuleHandler, error)
	NewTokenPoolHandler(address ethgo.Address, signer ethgo.Key) (contracts.ITokenPoolHandler, error)
}

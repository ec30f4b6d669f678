package contracts

import (
	"github.com/pkg/errors"
	"github.com/umbracle/ethgo"
	"github.com/umbracle/ethgo/jsonrpc"
)

// RegistryModuleHandler talks to RegistryModuleOwnerCustom, the module that
// proposes token administrators to the TokenAdminRegistry.
type RegistryModuleHandler struct {
	ContractHandler IContractHandler
}

func NewRegistryModuleHandler(ethClient *jsonrpc.Client, contractAddress string, sender ethgo.Key) (*RegistryModuleHandler, error) {
	contractHandler, err := NewContractHandler(ethClient, contractAddress, ABIRegistryModulePath, sender)
	if err != nil {
		return nil, errors.Wrap(err, "failed call to NewRegistryModuleHandler")
	}
	return &RegistryModuleHandler{ContractHandler: contractHandler}, nil
}

func (r *RegistryModuleHandler) RegisterAdminViaGetCCIPAdmin(token ethgo.Address) (IPendingTxn, error) {
	return r.register(RegisterAdminViaGetCCIPAdmin, token)
}

func (r *RegistryModuleHandler) RegisterAdminViaOwner(token ethgo.Address) (IPendingTxn, error) {
	return r.register(RegisterAdminViaOwner, token)
}

func (r *RegistryModuleHandler) RegisterAccessControlDefaultAdmin(token ethgo.Address) (IPendingTxn, error) {
	return r.register(RegisterAccessControlDefaultAdmin, token)
}

func (r *RegistryModuleHandler) register(method string, token ethgo.Address) (IPendingTxn, error) {
	txn, err := r.ContractHandler.Txn(method, token)
	if err != nil {
		return nil, errors.Wrapf(err, "failed call to RegistryModuleHandler %s", method)
	}
	return txn, nil
}

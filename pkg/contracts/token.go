package contracts

import (
	"github.com/pkg/errors"
	"github.com/umbracle/ethgo"
	"github.com/umbracle/ethgo/jsonrpc"
)

// Compile time checks that the handlers implement their interfaces
var _ ITokenHandler = &TokenHandler{}
var _ IRegistryModuleHandler = &RegistryModuleHandler{}
var _ ITokenPoolHandler = &TokenPoolHandler{}
var _ IContractHandler = &ContractHandler{}
var _ IPendingTxn = &PendingTxn{}

// TokenHandler talks to a BurnMint token. The ABI covers the AccessControl
// surface plus the optional getCCIPAdmin() and owner() getters.
type TokenHandler struct {
	ContractHandler IContractHandler
}

func NewTokenHandler(ethClient *jsonrpc.Client, contractAddress string, sender ethgo.Key) (*TokenHandler, error) {
	contractHandler, err := NewContractHandler(ethClient, contractAddress, ABITokenPath, sender)
	if err != nil {
		return nil, errors.Wrap(err, "failed call to NewTokenHandler")
	}
	return &TokenHandler{ContractHandler: contractHandler}, nil
}

// GetCCIPAdmin returns the address recorded by the token's getCCIPAdmin()
func (t *TokenHandler) GetCCIPAdmin() (*ethgo.Address, error) {
	admin, err := t.ContractHandler.Call(GetCCIPAdmin)
	if err != nil {
		return nil, errors.Wrap(err, "failed call to TokenHandler GetCCIPAdmin")
	}
	return decodeAddress(admin, GetCCIPAdmin)
}

// GetOwner returns the address recorded by the token's owner()
func (t *TokenHandler) GetOwner() (*ethgo.Address, error) {
	owner, err := t.ContractHandler.Call(Owner)
	if err != nil {
		return nil, errors.Wrap(err, "failed call to TokenHandler Owner")
	}
	return decodeAddress(owner, Owner)
}

func (t *TokenHandler) GetDefaultAdminRole() (Role, error) {
	return t.getRole(DefaultAdminRole)
}

func (t *TokenHandler) GetBurnerRole() (Role, error) {
	return t.getRole(BurnerRole)
}

func (t *TokenHandler) GetMinterRole() (Role, error) {
	return t.getRole(MinterRole)
}

func (t *TokenHandler) getRole(method string) (Role, error) {
	role, err := t.ContractHandler.Call(method)
	if err != nil {
		return Role{}, errors.Wrapf(err, "failed call to TokenHandler %s", method)
	}
	return decodeRole(role, method)
}

// HasRole reports whether account holds role on the token
func (t *TokenHandler) HasRole(role Role, account ethgo.Address) (bool, error) {
	hasRole, err := t.ContractHandler.Call(HasRole, [32]byte(role), account)
	if err != nil {
		return false, errors.Wrap(err, "failed call to TokenHandler HasRole")
	}
	return decodeBool(hasRole, HasRole)
}

// GrantRole sends grantRole(role, account)
func (t *TokenHandler) GrantRole(role Role, account ethgo.Address) (IPendingTxn, error) {
	txn, err := t.ContractHandler.Txn(GrantRole, [32]byte(role), account)
	if err != nil {
		return nil, errors.Wrap(err, "failed call to TokenHandler GrantRole")
	}
	return txn, nil
}

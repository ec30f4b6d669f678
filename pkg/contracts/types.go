package contracts

import "github.com/umbracle/ethgo"

const (
	// Contract calls
	// Token (BurnMintERC20 / BurnMintERC677WithCCIPAdmin)
	DefaultAdminRole = "DEFAULT_ADMIN_ROLE"
	BurnerRole       = "BURNER_ROLE"
	MinterRole       = "MINTER_ROLE"
	HasRole          = "hasRole"
	GrantRole        = "grantRole"
	GetCCIPAdmin     = "getCCIPAdmin"
	Owner            = "owner"

	// RegistryModuleOwnerCustom Functions
	RegisterAdminViaGetCCIPAdmin      = "registerAdminViaGetCCIPAdmin"
	RegisterAdminViaOwner             = "registerAdminViaOwner"
	RegisterAccessControlDefaultAdmin = "registerAccessControlDefaultAdmin"

	// Token Pool Functions
	SetApprovers    = "setApprovers"
	SetChainToLimit = "setChainToLimit"

	// ABI Paths
	ABITokenPath          = "abi/burn_mint_erc20.abi"
	ABIRegistryModulePath = "abi/registry_module_owner_custom.abi"
	ABITokenPoolPath      = "abi/burn_mint_token_pool_with_approval.abi"

	// Receipt status of a reverted transaction
	ReceiptStatusFailed uint64 = 0
)

// Role is a 32 byte AccessControl role identifier.
type Role [32]byte

// TxnReference identifies a confirmed transaction.
type TxnReference struct {
	Hash        ethgo.Hash
	BlockNumber uint64
}

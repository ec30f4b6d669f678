package tasks

import (
	"math/big"

	"github.com/DIN-center/din-ccip-tasks/lib/journal"
	"github.com/DIN-center/din-ccip-tasks/pkg/contracts"
	"github.com/umbracle/ethgo"
)

// Task names, used as CLI commands and metric labels.
const (
	TaskClaimAdmin         = "claim-admin"
	TaskGrantBurnMintRoles = "grant-burn-mint-roles"
	TaskSetApprovers       = "set-approvers"
	TaskSetChainToLimit    = "set-chain-to-limit"
)

// CapabilityDeclaration is what the operator says the token supports. It is
// trusted for strategy selection only; preconditions are still read on chain.
type CapabilityDeclaration struct {
	HasCCIPAdmin bool
	HasOwner     bool
}

type Strategy int

const (
	StrategyCCIPAdmin Strategy = iota
	StrategyOwner
	StrategyDefaultAdminRole
)

func (s Strategy) String() string {
	switch s {
	case StrategyCCIPAdmin:
		return "ccip-admin"
	case StrategyOwner:
		return "owner"
	case StrategyDefaultAdminRole:
		return "default-admin-role"
	default:
		return "unknown"
	}
}

// AdminClaim describes one claim-admin invocation.
type AdminClaim struct {
	Token             ethgo.Address
	Strategy          Strategy
	ExpectedAuthority ethgo.Address
	Txn               *contracts.TxnReference
}

const (
	StepBurner = "burner"
	StepMinter = "minter"
)

type RoleGrantStep struct {
	Name   string
	Role   contracts.Role
	Status journal.StepStatus
	Txn    *contracts.TxnReference
	// Resumed is set when the step was already confirmed by an earlier run.
	Resumed bool
}

// RoleGrantBatch grants every step's role on Token to Recipient, in order.
// Confirmed steps are never rolled back.
type RoleGrantBatch struct {
	Token      ethgo.Address
	Recipient  ethgo.Address
	Steps      []*RoleGrantStep
	FailedStep string
}

// ThresholdConfig pairs amount thresholds with the approvers each requires, by position.
type ThresholdConfig struct {
	Pool                ethgo.Address
	SourceChainSelector uint64
	Amounts             []*big.Int
	NumOfApprovers      []*big.Int
}

// ThresholdInput is the string encoded form of a ThresholdConfig as given on the command line.
type ThresholdInput struct {
	PoolAddress    string
	SourceChain    string
	Amounts        string
	NumOfApprovers string
}

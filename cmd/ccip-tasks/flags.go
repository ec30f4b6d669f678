package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/DIN-center/din-ccip-tasks/lib/taskerrors"
	"github.com/DIN-center/din-ccip-tasks/lib/tasks"
)

const cmdPrintNetwork = "print-network"

// commonFlags are accepted by every command.
type commonFlags struct {
	network     string
	rpcURL      string
	networksCfg string
}

type commandFlags struct {
	commonFlags

	tokenAddress     string
	tokenPoolAddress string
	poolAddress      string
	offRampAddress   string
	sourceChain      string
	amounts          string
	numOfApprovers   string
	withCCIPAdmin    bool
	withOwner        bool

	required []string
	set      *flag.FlagSet
}

var commandUsage = map[string]string{
	tasks.TaskClaimAdmin:         "Claims the token admin registry admin role for a token",
	tasks.TaskGrantBurnMintRoles: "Grants burn and mint roles on a token to a token pool",
	tasks.TaskSetApprovers:       "Registers the off ramp as an approver of a token pool",
	tasks.TaskSetChainToLimit:    "Sets the per source chain amount thresholds of a token pool",
	cmdPrintNetwork:              "Prints the resolved network profile",
}

// parseCommandFlags builds and parses the flag set of one command.
func parseCommandFlags(command string, args []string, output io.Writer) (*commandFlags, error) {
	if _, ok := commandUsage[command]; !ok {
		return nil, taskerrors.New(taskerrors.ErrValidation, "unknown command %q", command)
	}

	f := &commandFlags{set: flag.NewFlagSet(command, flag.ContinueOnError)}
	fs := f.set
	fs.SetOutput(output)
	fs.StringVar(&f.network, "network", "", "network name from the networks config (defaults to $NETWORK)")
	fs.StringVar(&f.rpcURL, "rpc-url", "", "RPC endpoint (defaults to $<NETWORK>_RPC_URL, then the profile url)")
	fs.StringVar(&f.networksCfg, "networks-config", "", "path to a networks YAML file (defaults to $NETWORKS_CONFIG_PATH, then the built-in networks)")

	switch command {
	case tasks.TaskClaimAdmin:
		fs.StringVar(&f.tokenAddress, "token-address", "", "the address of the token")
		fs.BoolVar(&f.withCCIPAdmin, "with-ccip-admin", false, "the token exposes getCCIPAdmin()")
		fs.BoolVar(&f.withOwner, "with-owner", false, "the token exposes owner()")
		f.required = []string{"token-address"}
	case tasks.TaskGrantBurnMintRoles:
		fs.StringVar(&f.tokenAddress, "token-address", "", "the address of the token")
		fs.StringVar(&f.tokenPoolAddress, "token-pool-address", "", "the address of the token pool")
		f.required = []string{"token-address", "token-pool-address"}
	case tasks.TaskSetApprovers:
		fs.StringVar(&f.poolAddress, "pool-address", "", "the address of the token pool")
		fs.StringVar(&f.offRampAddress, "offramp-address", "", "the address of the off ramp contract")
		f.required = []string{"pool-address", "offramp-address"}
	case tasks.TaskSetChainToLimit:
		fs.StringVar(&f.poolAddress, "pool-address", "", "the address of the token pool")
		fs.StringVar(&f.sourceChain, "source-chain", "", "the chain to set the threshold for, as a network name or chain selector")
		fs.StringVar(&f.amounts, "amounts", "", "JSON array of ascending amount thresholds, e.g. [10,100]")
		fs.StringVar(&f.numOfApprovers, "num-of-approvers", "", "JSON array of approvals needed per threshold, e.g. [1,2]")
		f.required = []string{"pool-address", "source-chain", "amounts", "num-of-approvers"}
	}

	if err := fs.Parse(args); err != nil {
		return nil, taskerrors.Wrap(taskerrors.ErrValidation, err, "invalid arguments for "+command)
	}
	if fs.NArg() > 0 {
		return nil, taskerrors.New(taskerrors.ErrValidation, "unexpected arguments for %s: %s", command, strings.Join(fs.Args(), " "))
	}

	missing := []string{}
	for _, name := range f.required {
		if strings.TrimSpace(fs.Lookup(name).Value.String()) == "" {
			missing = append(missing, "--"+name)
		}
	}
	if len(missing) > 0 {
		return nil, taskerrors.New(taskerrors.ErrValidation, "%s requires %s", command, strings.Join(missing, ", "))
	}
	return f, nil
}

func printUsage(output io.Writer) {
	fmt.Fprintln(output, "usage: ccip-tasks <command> [flags]")
	fmt.Fprintln(output, "")
	fmt.Fprintln(output, "commands:")
	for _, command := range []string{tasks.TaskClaimAdmin, tasks.TaskGrantBurnMintRoles, tasks.TaskSetApprovers, tasks.TaskSetChainToLimit, cmdPrintNetwork} {
		fmt.Fprintf(output, "  %-24s %s\n", command, commandUsage[command])
	}
}

package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DIN-center/din-ccip-tasks/lib/config"
	"github.com/DIN-center/din-ccip-tasks/lib/journal"
	"github.com/DIN-center/din-ccip-tasks/lib/ledger"
	"github.com/DIN-center/din-ccip-tasks/lib/prometheus"
	"github.com/DIN-center/din-ccip-tasks/lib/taskerrors"
	"github.com/DIN-center/din-ccip-tasks/lib/tasks"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	LogLevelEnv = "LOG_LEVEL"
	RedisURLEnv = "REDIS_URL"

	metricsPushTimeout = 10 * time.Second
)

func main() {
	logger, err := newLogger(os.Getenv(LogLevelEnv))
	if err != nil {
		os.Stderr.WriteString("failed to build logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{
		logger:     logger,
		out:        os.Stdout,
		newLedger:  newLedgerFromEnv,
		newJournal: newJournalFromEnv,
		metrics:    prometheus.NewPrometheusClient(os.Getenv(prometheus.PushGatewayURLEnv)),
	}
	if err := a.run(ctx, os.Args[1:]); err != nil {
		logger.Error("task failed", zap.String("kind", kindLabel(err)), zap.Error(err))
		logger.Sync()
		stop()
		os.Exit(1)
	}
}

// newLogger builds a production zap logger at the given level, info by default.
func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if level != "" {
		atomicLevel, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, errors.Wrap(err, "invalid "+LogLevelEnv)
		}
		cfg.Level = atomicLevel
	}
	return cfg.Build()
}

func newLedgerFromEnv(logger *zap.Logger, rpcURL string) (ledger.ILedgerClient, error) {
	return ledger.NewLedgerClient(logger, rpcURL, ledger.GetPrivateKeysFromEnv())
}

// newJournalFromEnv keeps role grant progress in redis when REDIS_URL is set,
// otherwise only for the lifetime of the process.
func newJournalFromEnv() (journal.IStepJournal, error) {
	redisURL := os.Getenv(RedisURLEnv)
	if redisURL == "" {
		return journal.NewMemoryStepJournal(), nil
	}
	stepJournal, err := journal.NewRedisStepJournalFromURL(redisURL)
	if err != nil {
		return nil, taskerrors.Wrap(taskerrors.ErrConfiguration, err, "invalid "+RedisURLEnv)
	}
	return stepJournal, nil
}

type app struct {
	logger     *zap.Logger
	out        io.Writer
	newLedger  func(logger *zap.Logger, rpcURL string) (ledger.ILedgerClient, error)
	newJournal func() (journal.IStepJournal, error)
	metrics    prometheus.IPrometheusClient
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		printUsage(a.out)
		if len(args) == 0 {
			return taskerrors.New(taskerrors.ErrValidation, "no command given")
		}
		return nil
	}

	command := args[0]
	f, err := parseCommandFlags(command, args[1:], a.out)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	profiles, profile, err := loadProfile(f)
	if err != nil {
		return err
	}
	if command == cmdPrintNetwork {
		spew.Fdump(a.out, profile)
		return nil
	}

	start := time.Now()
	strategy, err := a.runTask(ctx, command, f, profiles, profile)
	a.metrics.HandleTaskMetric(&prometheus.PromTaskMetricData{
		Task:     command,
		Network:  profile.Name,
		Strategy: strategy,
		Err:      err,
		Duration: time.Since(start),
	})

	pushCtx, cancel := context.WithTimeout(context.Background(), metricsPushTimeout)
	defer cancel()
	if pushErr := a.metrics.Push(pushCtx); pushErr != nil {
		a.logger.Warn("failed to push task metrics", zap.Error(pushErr))
	}
	return err
}

func loadProfile(f *commandFlags) (config.IProfileProvider, *config.NetworkProfile, error) {
	network, err := config.NetworkFromEnv(f.network)
	if err != nil {
		return nil, nil, err
	}
	profiles, err := config.NewProfileProvider(f.networksCfg)
	if err != nil {
		return nil, nil, err
	}
	profile, err := profiles.GetNetworkProfile(network)
	if err != nil {
		return nil, nil, err
	}
	return profiles, profile, nil
}

// runTask executes one task and returns the strategy label used for metrics.
func (a *app) runTask(ctx context.Context, command string, f *commandFlags, profiles config.IProfileProvider, profile *config.NetworkProfile) (string, error) {
	logger := a.logger.With(zap.String("task", command), zap.String("network", profile.Name))

	if err := preflight(command, f, profiles, profile); err != nil {
		return "", err
	}

	ledgerClient, err := a.newLedger(logger, profile.GetRPCURL(f.rpcURL))
	if err != nil {
		return "", err
	}
	if closer, ok := ledgerClient.(io.Closer); ok {
		defer closer.Close()
	}
	if err := checkChainID(ledgerClient, profile); err != nil {
		return "", err
	}

	switch command {
	case tasks.TaskClaimAdmin:
		declaration := tasks.CapabilityDeclaration{HasCCIPAdmin: f.withCCIPAdmin, HasOwner: f.withOwner}
		strategy := tasks.SelectStrategy(declaration).String()
		claim, err := tasks.NewAdminClaimResolver(ledgerClient, logger).ClaimAdmin(ctx, profile, f.tokenAddress, declaration)
		if err != nil {
			return strategy, errors.Wrapf(err, "claiming admin of %s via %s failed", f.tokenAddress, strategy)
		}
		logger.Info("admin claimed successfully", zap.String("txn", claim.Txn.Hash.String()), zap.Uint64("block", claim.Txn.BlockNumber))
		return strategy, nil

	case tasks.TaskGrantBurnMintRoles:
		stepJournal, err := a.newJournal()
		if err != nil {
			return "", err
		}
		if closer, ok := stepJournal.(io.Closer); ok {
			defer closer.Close()
		}
		batch, err := tasks.NewRoleGrantOrchestrator(ledgerClient, stepJournal, logger).GrantBurnMintRoles(ctx, profile, f.tokenAddress, f.tokenPoolAddress)
		if err != nil {
			return "", errors.Wrapf(err, "granting burn and mint roles on %s to %s failed", f.tokenAddress, f.tokenPoolAddress)
		}
		for _, step := range batch.Steps {
			logger.Info("role granted successfully", zap.String("step", step.Name), zap.String("txn", step.Txn.Hash.String()), zap.Bool("resumed", step.Resumed))
		}
		return "", nil

	case tasks.TaskSetApprovers:
		ref, err := tasks.NewPoolConfigurator(ledgerClient, nil, logger).SetApprovers(ctx, profile, f.poolAddress, f.offRampAddress)
		if err != nil {
			return "", errors.Wrap(err, "adding approval failed")
		}
		logger.Info("approver added successfully", zap.String("txn", ref.Hash.String()), zap.Uint64("block", ref.BlockNumber))
		return "", nil

	case tasks.TaskSetChainToLimit:
		_, ref, err := tasks.NewPoolConfigurator(ledgerClient, profiles, logger).SetChainToLimit(ctx, profile, tasks.ThresholdInput{
			PoolAddress:    f.poolAddress,
			SourceChain:    f.sourceChain,
			Amounts:        f.amounts,
			NumOfApprovers: f.numOfApprovers,
		})
		if err != nil {
			return "", errors.Wrap(err, "setting thresholds failed")
		}
		logger.Info("thresholds set successfully", zap.String("txn", ref.Hash.String()), zap.Uint64("block", ref.BlockNumber))
		return "", nil
	}

	return "", taskerrors.New(taskerrors.ErrValidation, "unknown command %q", command)
}

// preflight rejects malformed command line input and incomplete profiles
// before the RPC endpoint is contacted. The tasks validate the same input again.
func preflight(command string, f *commandFlags, profiles config.IProfileProvider, profile *config.NetworkProfile) error {
	addresses := map[string]string{}
	switch command {
	case tasks.TaskClaimAdmin:
		addresses["token"] = f.tokenAddress
	case tasks.TaskGrantBurnMintRoles:
		addresses["token"] = f.tokenAddress
		addresses["token pool"] = f.tokenPoolAddress
	case tasks.TaskSetApprovers:
		addresses["token pool"] = f.poolAddress
		addresses["off ramp"] = f.offRampAddress
	case tasks.TaskSetChainToLimit:
		addresses["token pool"] = f.poolAddress
		if _, err := tasks.ParseUintArray("amounts", f.amounts); err != nil {
			return err
		}
		if _, err := tasks.ParseUintArray("num-of-approvers", f.numOfApprovers); err != nil {
			return err
		}
		if _, err := tasks.ResolveSourceChain(profiles, f.sourceChain); err != nil {
			return err
		}
	}

	for label, address := range addresses {
		if !ledger.IsAddress(address) {
			return taskerrors.New(taskerrors.ErrValidation, "invalid %s address: %q", label, address)
		}
	}
	return tasks.CheckProfile(command, profile)
}

// checkChainID refuses to send anything when the RPC endpoint serves a
// different chain than the profile names.
func checkChainID(ledgerClient ledger.ILedgerClient, profile *config.NetworkProfile) error {
	if profile.ChainID == nil {
		return nil
	}
	chainID, err := ledgerClient.GetChainID()
	if err != nil {
		return err
	}
	if chainID != *profile.ChainID {
		return taskerrors.New(taskerrors.ErrConfiguration, "RPC endpoint serves chain %d, %s expects %d", chainID, profile.Name, *profile.ChainID)
	}
	return nil
}

func kindLabel(err error) string {
	if kind := taskerrors.Kind(err); kind != nil {
		return kind.Error()
	}
	return prometheus.StatusUnknown
}

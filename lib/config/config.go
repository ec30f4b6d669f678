package config

import (
	_ "embed"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/DIN-center/din-ccip-tasks/lib/taskerrors"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	NetworksConfigPathEnv = "NETWORKS_CONFIG_PATH"
	NetworkEnv            = "NETWORK"
	DefaultRPCURL         = "http://localhost:8545"
)

//go:embed networks.yaml
var defaultNetworks []byte

// NetworkProfile holds the CCIP contract addresses and finality settings of one chain.
type NetworkProfile struct {
	Name                      string  `yaml:"-"`
	ChainID                   *uint64 `yaml:"chainId,omitempty"`
	ChainSelector             string  `yaml:"chainSelector"`
	Router                    string  `yaml:"router"`
	RMNProxy                  string  `yaml:"rmnProxy"`
	TokenAdminRegistry        string  `yaml:"tokenAdminRegistry"`
	RegistryModuleOwnerCustom string  `yaml:"registryModuleOwnerCustom"`
	Link                      string  `yaml:"link"`
	// Confirmations stays nil when the document omits it; zero is a valid depth.
	Confirmations        *uint64 `yaml:"confirmations"`
	NativeCurrencySymbol string  `yaml:"nativeCurrencySymbol"`
	URL                  string  `yaml:"url,omitempty"`
}

type networksDocument struct {
	Networks map[string]*NetworkProfile `yaml:"networks"`
}

type IProfileProvider interface {
	GetNetworkProfile(network string) (*NetworkProfile, error)
	GetNetworkNames() []string
}

var _ IProfileProvider = &ProfileProvider{}

// ProfileProvider serves network profiles from a parsed networks document. It
// is read-only after construction.
type ProfileProvider struct {
	profiles map[string]*NetworkProfile
}

// NewProfileProvider loads the networks document.
// Priority is given first to the function argument `configPath` (if provided),
// then to the environment variable `NETWORKS_CONFIG_PATH`, and finally to the
// document compiled into the binary.
func NewProfileProvider(configPath string) (*ProfileProvider, error) {
	path := configPath
	if path == "" {
		path = os.Getenv(NetworksConfigPathEnv)
	}
	if path == "" {
		return ParseProfiles(defaultNetworks)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, taskerrors.Wrap(taskerrors.ErrConfiguration, err, "failed to read networks config")
	}
	return ParseProfiles(data)
}

// ParseProfiles decodes a YAML networks document.
func ParseProfiles(data []byte) (*ProfileProvider, error) {
	var doc networksDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, taskerrors.Wrap(taskerrors.ErrConfiguration, err, "failed to decode networks config")
	}
	if len(doc.Networks) == 0 {
		return nil, taskerrors.New(taskerrors.ErrConfiguration, "networks config defines no networks")
	}

	profiles := make(map[string]*NetworkProfile, len(doc.Networks))
	for name, profile := range doc.Networks {
		if profile == nil {
			return nil, taskerrors.New(taskerrors.ErrConfiguration, "network %s has an empty profile", name)
		}
		profile.Name = name
		profiles[name] = profile
	}
	return &ProfileProvider{profiles: profiles}, nil
}

// GetNetworkProfile returns a copy of the named profile.
func (p *ProfileProvider) GetNetworkProfile(network string) (*NetworkProfile, error) {
	if network == "" {
		return nil, taskerrors.New(taskerrors.ErrConfiguration, "network name is empty")
	}
	profile, ok := p.profiles[network]
	if !ok {
		return nil, taskerrors.New(taskerrors.ErrConfiguration, "network %s not found in config", network)
	}
	copied := *profile
	return &copied, nil
}

func (p *ProfileProvider) GetNetworkNames() []string {
	names := make([]string, 0, len(p.profiles))
	for name := range p.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetConfirmations returns the confirmation depth, which must be configured
// before any write is sent.
func (n *NetworkProfile) GetConfirmations() (uint64, error) {
	if n.Confirmations == nil {
		return 0, taskerrors.New(taskerrors.ErrConfiguration, "confirmations is not defined for %s", n.Name)
	}
	return aws.ToUint64(n.Confirmations), nil
}

func (n *NetworkProfile) GetRegistryModuleOwnerCustom() (string, error) {
	if n.RegistryModuleOwnerCustom == "" {
		return "", taskerrors.New(taskerrors.ErrConfiguration, "registryModuleOwnerCustom is not defined for %s", n.Name)
	}
	return n.RegistryModuleOwnerCustom, nil
}

// RequireRouterAndRMNProxy fails unless the pool-facing CCIP contracts are configured.
func (n *NetworkProfile) RequireRouterAndRMNProxy() error {
	if n.Router == "" || n.RMNProxy == "" {
		return taskerrors.New(taskerrors.ErrConfiguration, "router or RMN proxy not defined for %s", n.Name)
	}
	return nil
}

func (n *NetworkProfile) GetChainSelector() (uint64, error) {
	selector, err := strconv.ParseUint(n.ChainSelector, 10, 64)
	if err != nil {
		return 0, taskerrors.Wrap(taskerrors.ErrConfiguration, err, "invalid chainSelector for "+n.Name)
	}
	return selector, nil
}

// GetRPCURL returns the RPC endpoint for the network.
// Priority is given first to the function argument `rpcEndpointURL` (if provided),
// then to the environment variable `<NETWORK>_RPC_URL`, then to the profile url,
// and finally to a local default.
func (n *NetworkProfile) GetRPCURL(rpcEndpointURL string) string {
	if rpcEndpointURL != "" {
		return rpcEndpointURL
	}
	if envURL := os.Getenv(RPCURLEnvKey(n.Name)); envURL != "" {
		return envURL
	}
	if n.URL != "" {
		return n.URL
	}

	// default rpc value
	return DefaultRPCURL
}

// RPCURLEnvKey converts a network name such as avalancheFuji into AVALANCHE_FUJI_RPC_URL.
func RPCURLEnvKey(network string) string {
	var b strings.Builder
	for i, r := range network {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	b.WriteString("_RPC_URL")
	return b.String()
}

// NetworkFromEnv returns the network flag value, falling back to $NETWORK.
func NetworkFromEnv(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if network := os.Getenv(NetworkEnv); network != "" {
		return network, nil
	}
	return "", errors.Wrap(taskerrors.New(taskerrors.ErrConfiguration, "no network selected"), "set --network or NETWORK")
}

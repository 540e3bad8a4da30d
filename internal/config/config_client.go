package config

import (
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Client defaults.
const (
	DefaultAdapterAddress        = "http://localhost:8080"
	DefaultAdapterRequestTimeout = 10 * time.Second
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the server (scheme optional).
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientCredentials is the login pair the client authenticates with. When
// Login is empty the client sends requests without a token.
type ClientCredentials struct {
	// Env: CLIENT_LOGIN
	Login string `env:"LOGIN"`
	// Env: CLIENT_PASSWORD
	Password string `env:"PASSWORD"`
}

// ClientConfig is the top-level configuration of the command-line client.
type ClientConfig struct {
	// Adapter contains the server address and request timeout.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
	// Credentials contains the login pair.
	Credentials ClientCredentials `envPrefix:"CLIENT_"`
	// Verbose enables debug logging to stderr.
	// Env: CLIENT_VERBOSE
	Verbose bool `env:"CLIENT_VERBOSE"`
}

// GetClientConfig builds and validates the client configuration from
// defaults, environment variables and the flags found in args.
//
// It returns the positional arguments left after flag parsing (the command
// and its operands).
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg, err := parseEnv[ClientConfig]()
	if err != nil {
		return nil, nil, err
	}

	flagsCfg, rest, err := parseClientFlags(args)
	if err != nil {
		return nil, nil, err
	}

	cfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterRequestTimeout,
		},
	}
	for _, layer := range []*ClientConfig{envCfg, flagsCfg} {
		if err := mergo.Merge(cfg, layer, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	return cfg, rest, nil
}

// parseClientFlags parses the client flags.
//
// Flags:
//
//	-a server base URL or host:port
//	-u login
//	-p password
//	-request-timeout request timeout (e.g., "10s")
//	-v verbose logging
func parseClientFlags(args []string) (*ClientConfig, []string, error) {
	cfg := new(ClientConfig)

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", "", "Server address")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&cfg.Credentials.Login, "u", "", "Login")
	fs.StringVar(&cfg.Credentials.Password, "p", "", "Password")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose logging")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, fs.Args(), nil
}

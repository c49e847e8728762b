package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (normally os.Args[1:]).
//
// Flags:
//
//	-a                     server address in format [host]:[port]
//	-server-timeout        inbound request timeout (e.g. "10m")
//	-api-key               scan API key
//	-region                scan API region: us, eu, in, custom
//	-endpoint              custom scan API base URL (region=custom)
//	-profile               default security profile name or id
//	-request-timeout       outbound call timeout (e.g. "30s")
//	-max-retries           retries after the first attempt
//	-polling-interval      async poll interval (e.g. "2s")
//	-max-polling-duration  async polling budget (e.g. "1m")
//	-app-name              metadata application name
//	-ai-model              metadata AI model
//	-app-user              metadata application user
//	-continue-on-fail      record per-item errors instead of aborting
//	-token-sign-key        host bearer token verification key
//	-token-issuer          expected host bearer token issuer
//	-log-level             log level (debug, info, warn, error)
//	-c/-config             json file path with configs
//	-i/-input              items file for the CLI ("-" for stdin)
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("airs-adapter", flag.ContinueOnError)

	var serverAddress NetAddress
	var serverTimeout, requestTimeout, pollingInterval, maxPollingDuration time.Duration
	var apiKey, region, endpoint, profile string
	var appName, aiModel, appUser string
	var tokenSignKey, tokenIssuer, logLevel string
	var jsonConfigPath, inputPath string
	var continueOnFail bool
	var maxRetries int

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&serverTimeout, "server-timeout", 0, "Inbound request timeout (e.g., 10m)")
	fs.StringVar(&apiKey, "api-key", "", "Scan API key")
	fs.StringVar(&region, "region", "", "Scan API region (us, eu, in, custom)")
	fs.StringVar(&endpoint, "endpoint", "", "Custom scan API base URL")
	fs.StringVar(&profile, "profile", "", "Default security profile name or id")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound call timeout (e.g., 30s)")
	fs.IntVar(&maxRetries, "max-retries", -1, "Retries after the first attempt")
	fs.DurationVar(&pollingInterval, "polling-interval", 0, "Async poll interval (e.g., 2s)")
	fs.DurationVar(&maxPollingDuration, "max-polling-duration", 0, "Async polling budget (e.g., 1m)")
	fs.StringVar(&appName, "app-name", "", "Metadata application name")
	fs.StringVar(&aiModel, "ai-model", "", "Metadata AI model")
	fs.StringVar(&appUser, "app-user", "", "Metadata application user")
	fs.BoolVar(&continueOnFail, "continue-on-fail", false, "Record item errors instead of aborting")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Host token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Host token issuer")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&inputPath, "i", "", "Items file path")
	fs.StringVar(&inputPath, "input", "", "Items file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel:     logLevel,
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: serverTimeout,
		},
		Adapter: Adapter{
			APIKey:         apiKey,
			Region:         region,
			CustomEndpoint: endpoint,
			Profile:        profile,
			RequestTimeout: requestTimeout,
		},
		Scan: Scan{
			PollingInterval:    pollingInterval,
			MaxPollingDuration: maxPollingDuration,
			AppName:            appName,
			AIModel:            aiModel,
			AppUser:            appUser,
			ContinueOnFail:     continueOnFail,
		},
		CLI:          CLI{InputPath: inputPath},
		JSONFilePath: jsonConfigPath,
	}
	if maxRetries >= 0 {
		cfg.Scan.MaxRetries = &maxRetries
	}

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is empty or
// "localhost", and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
